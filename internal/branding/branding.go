// Package branding provides compile-time identity values for the CLI.
//
// Values come from the embedded branding.yaml. When the file is empty or
// missing a key, the hard defaults below are used.
package branding

import (
	_ "embed"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName             string `yaml:"cli_name"`
	DisplayName         string `yaml:"display_name"`
	Description         string `yaml:"description"`
	HomeDir             string `yaml:"home_dir"`
	EnvPrefix           string `yaml:"env_prefix"`
	FallbackProjectName string `yaml:"fallback_project_name"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:             "hossam-react-app",
			DisplayName:         "Hossam React App",
			Description:         "Bootstrap a React project with yarn berry, PnP and a curated template set",
			HomeDir:             ".hossam",
			EnvPrefix:           "HOSSAM",
			FallbackProjectName: "hello-react-app",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "hossam-react-app").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".hossam").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "HOSSAM").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// FallbackProjectName is the project name used when the requested one looks
// like a path.
func FallbackProjectName() string { load(); return defaults.FallbackProjectName }
