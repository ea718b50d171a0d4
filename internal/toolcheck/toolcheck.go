// Package toolcheck verifies that the external tools the pipeline shells out
// to are installed and recent enough.
package toolcheck

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/hossam-labs/hossam-react-app/internal/runtime"
)

var versionPattern = regexp.MustCompile(`v?\d+(\.\d+){0,2}([-+][0-9A-Za-z.\-+]*)?`)

// Requirement names a tool and the semver constraint it must satisfy.
type Requirement struct {
	Name       string
	Constraint string
}

// Report is the outcome of checking one tool.
type Report struct {
	Name       string
	Path       string
	Version    string
	Constraint string
	Found      bool
	OK         bool
	Message    string
}

// Checker runs `<tool> --version` through Runner.
type Checker struct {
	Runner   runtime.Runner
	LookPath func(file string) (string, error)
}

// New returns a Checker that resolves binaries on PATH.
func New(r runtime.Runner) *Checker {
	return &Checker{Runner: r, LookPath: exec.LookPath}
}

// Check locates req.Name, reads its version and evaluates the constraint.
// Problems are reported in the Report instead of as errors so every tool can
// be checked in one pass.
func (c *Checker) Check(ctx context.Context, req Requirement) Report {
	rep := Report{Name: req.Name, Constraint: req.Constraint}

	path, err := c.LookPath(req.Name)
	if err != nil {
		rep.Message = fmt.Sprintf("%s not found", req.Name)
		return rep
	}
	rep.Path = path
	rep.Found = true

	out, err := c.Runner.Run(ctx, "", req.Name, "--version")
	if err != nil {
		rep.Message = fmt.Sprintf("running %s --version: %v", req.Name, err)
		return rep
	}

	v, err := ParseVersion(out.Stdout)
	if err != nil {
		rep.Message = err.Error()
		return rep
	}
	rep.Version = v.String()

	ok, err := Satisfies(v, req.Constraint)
	if err != nil {
		rep.Message = err.Error()
		return rep
	}
	rep.OK = ok
	if ok {
		rep.Message = fmt.Sprintf("%s %s found at %s", req.Name, rep.Version, path)
	} else {
		rep.Message = fmt.Sprintf("%s %s does not satisfy %s", req.Name, rep.Version, req.Constraint)
	}
	return rep
}

// ParseVersion extracts the first version number in output. A leading "v"
// is tolerated.
func ParseVersion(output string) (*semver.Version, error) {
	match := versionPattern.FindString(strings.TrimSpace(output))
	if match == "" {
		return nil, fmt.Errorf("no version found in %q", strings.TrimSpace(output))
	}
	v, err := semver.NewVersion(strings.TrimPrefix(match, "v"))
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", match, err)
	}
	return v, nil
}

// Satisfies reports whether v meets constraint. An empty constraint always
// passes.
func Satisfies(v *semver.Version, constraint string) (bool, error) {
	if strings.TrimSpace(constraint) == "" {
		return true, nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	return c.Check(v), nil
}
