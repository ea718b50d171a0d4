// Package resolver derives the target project name and working directory from
// the process invocation.
package resolver

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hossam-labs/hossam-react-app/internal/branding"
)

var lower = cases.Lower(language.Und)

// Invocation is the run configuration for one pipeline run.
type Invocation struct {
	Name    string // normalized project name
	WorkDir string // directory the project is created in, forward slashes
	Target  string // WorkDir/Name
}

// ProjectName returns the project name requested by the last positional
// argument. A name containing a path separator resolves to the fallback
// name instead of failing, and so does a missing or blank argument.
func ProjectName(args []string) string {
	if len(args) == 0 {
		return branding.FallbackProjectName()
	}
	name := strings.TrimSpace(args[len(args)-1])
	if name == "" || strings.ContainsAny(name, `/\`) {
		return branding.FallbackProjectName()
	}
	return lower.String(name)
}

// NormalizePath replaces backslashes with forward slashes.
func NormalizePath(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// WorkDir returns the current working directory with normalized separators.
func WorkDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return NormalizePath(cwd), nil
}

// Resolve builds the Invocation for args relative to the current directory.
func Resolve(args []string) (*Invocation, error) {
	cwd, err := WorkDir()
	if err != nil {
		return nil, err
	}
	return ResolveIn(cwd, args), nil
}

// ResolveIn builds the Invocation for args relative to dir.
func ResolveIn(dir string, args []string) *Invocation {
	dir = strings.TrimSuffix(NormalizePath(dir), "/")
	name := ProjectName(args)
	return &Invocation{
		Name:    name,
		WorkDir: dir,
		Target:  dir + "/" + name,
	}
}
