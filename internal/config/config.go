package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hossam-labs/hossam-react-app/internal/branding"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Configuration keys.
const (
	KeyPackageManager = "package_manager"
	KeyGenerator      = "generator"
	KeyKind           = "kind"
	KeyLinkerVariant  = "linker_variant"
	KeyTemplateDir    = "template_dir"
)

var defaultValues = map[string]string{
	KeyPackageManager: "yarn",
	KeyGenerator:      "yarn",
	KeyKind:           "react-app",
	KeyLinkerVariant:  "berry",
	KeyTemplateDir:    "",
}

// Settings is the resolved configuration consumed by the pipeline.
type Settings struct {
	PackageManager string // executable used for set version / install / add
	Generator      string // executable used for `<generator> create <kind> <name>`
	Kind           string // generator template kind, e.g. "react-app"
	LinkerVariant  string // package manager version to switch to, e.g. "berry"
	TemplateDir    string // empty means the embedded template set
}

// Keys returns all known configuration keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaultValues))
	for k := range defaultValues {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsKnownKey reports whether key is a recognized configuration key.
func IsKnownKey(key string) bool {
	_, ok := defaultValues[key]
	return ok
}

// Dir returns the path to the config directory (~/.hossam/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.hossam/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	for k, v := range defaultValues {
		viper.SetDefault(k, v)
	}
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// BindFlag binds a command-line flag to a configuration key so an explicitly
// set flag overrides the environment and the config file.
func BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("binding %s: flag not defined", key)
	}
	if err := viper.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("binding %s: %w", key, err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Current returns the resolved Settings.
func Current() Settings {
	return Settings{
		PackageManager: viper.GetString(KeyPackageManager),
		Generator:      viper.GetString(KeyGenerator),
		Kind:           viper.GetString(KeyKind),
		LinkerVariant:  viper.GetString(KeyLinkerVariant),
		TemplateDir:    viper.GetString(KeyTemplateDir),
	}
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
