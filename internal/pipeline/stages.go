package pipeline

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hossam-labs/hossam-react-app/internal/logger"
	"github.com/hossam-labs/hossam-react-app/internal/scaffold"
)

// ─── scaffold ──────────────────────────────────────────────────────

// ScaffoldStage creates the base project with the external generator.
type ScaffoldStage struct{}

func (s *ScaffoldStage) Name() string { return "scaffold" }
func (s *ScaffoldStage) Steps() int   { return 1 }

func (s *ScaffoldStage) Run(ctx context.Context, run *Run) error {
	name := run.Invocation.Name
	target := filepath.Join(run.Dir, name)

	if _, err := os.Lstat(target); err == nil {
		return &StageError{
			Kind:    ErrDirectoryExists,
			Stage:   s.Name(),
			Subject: name,
			Message: fmt.Sprintf("directory %s already exists. Remove it and try again.\n\twindows: rmdir /q/s %s\n\tmac: rm -rf %s", name, name, name),
		}
	}

	run.Reporter.Advance("Creating the project.")
	gen := run.Settings.Generator
	if _, err := run.Runner.Run(ctx, run.Dir, gen, "create", run.Settings.Kind, name); err != nil {
		return &StageError{
			Kind:    ErrGenerator,
			Stage:   s.Name(),
			Subject: name,
			Message: fmt.Sprintf("creating the %s project failed", run.Settings.Kind),
			Err:     err,
		}
	}

	run.Dir = target
	return nil
}

// ─── package manager migration ─────────────────────────────────────

// MigrateStage switches the package manager to its next-generation release
// and reinstalls dependencies.
type MigrateStage struct{}

func (s *MigrateStage) Name() string { return "migrate" }
func (s *MigrateStage) Steps() int   { return 2 }

func (s *MigrateStage) Run(ctx context.Context, run *Run) error {
	pm := run.Settings.PackageManager
	variant := run.Settings.LinkerVariant

	steps := []struct {
		label string
		args  []string
	}{
		{fmt.Sprintf("Switching the project to %s %s.", pm, variant), []string{"set", "version", variant}},
		{fmt.Sprintf("Reinstalling dependencies. $ %s install", pm), []string{"install"}},
	}

	for _, step := range steps {
		run.Reporter.Advance(step.label)
		if _, err := run.Runner.Run(ctx, run.Dir, pm, step.args...); err != nil {
			sub := pm + " " + strings.Join(step.args, " ")
			return &StageError{
				Kind:    ErrPackageManager,
				Stage:   s.Name(),
				Subject: sub,
				Message: fmt.Sprintf("%s failed", sub),
				Err:     err,
			}
		}
	}
	return nil
}

// ─── linkage mode ──────────────────────────────────────────────────

// Rewrite is one literal substitution applied to a whole config file.
type Rewrite struct {
	File string
	Old  string
	New  string
}

// DefaultRewrites switch the linker from node-modules to Plug'n'Play and move
// the generator's eslintConfig key out of the way.
var DefaultRewrites = []Rewrite{
	{File: ".yarnrc.yml", Old: "node-modules", New: "pnp"},
	{File: "package.json", Old: "eslintConfig", New: "x-eslintConfig"},
}

// LinkageStage rewrites the package manager and package config files.
type LinkageStage struct {
	// Rewrites defaults to DefaultRewrites.
	Rewrites []Rewrite
}

func (s *LinkageStage) Name() string { return "linkage" }
func (s *LinkageStage) Steps() int   { return 1 }

func (s *LinkageStage) Run(_ context.Context, run *Run) error {
	run.Reporter.Advance("Switching the linker to pnp mode.")

	rewrites := s.Rewrites
	if rewrites == nil {
		rewrites = DefaultRewrites
	}
	for _, rw := range rewrites {
		if err := rewriteFile(filepath.Join(run.Dir, rw.File), rw.Old, rw.New); err != nil {
			return &StageError{
				Kind:    ErrConfigRewrite,
				Stage:   s.Name(),
				Subject: rw.File,
				Message: fmt.Sprintf("setting pnp mode failed (%s)", rw.File),
				Err:     err,
			}
		}
	}
	return nil
}

// ReplaceLiteral replaces every occurrence of old with new. No pattern
// matching is involved.
func ReplaceLiteral(text, old, new string) string {
	return strings.ReplaceAll(text, old, new)
}

func rewriteFile(path, old, new string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	out := ReplaceLiteral(string(data), old, new)
	logger.Debug("[DEBUG] Rewrote %d occurrence(s) of %q in %s\n", strings.Count(string(data), old), old, path)
	return os.WriteFile(path, []byte(out), info.Mode().Perm())
}

// ─── dependency installation ───────────────────────────────────────

// InstallStage adds each addon package with its own package manager call.
type InstallStage struct {
	Packages []string
}

func (s *InstallStage) Name() string { return "install" }
func (s *InstallStage) Steps() int   { return 1 + len(s.Packages) }

func (s *InstallStage) Run(ctx context.Context, run *Run) error {
	pm := run.Settings.PackageManager
	run.Reporter.Advance("Installing required packages.")

	for _, pkg := range s.Packages {
		run.Reporter.Advance(fmt.Sprintf("Installing required packages. $ %s add %s", pm, pkg))
		if _, err := run.Runner.Run(ctx, run.Dir, pm, "add", pkg); err != nil {
			return &StageError{
				Kind:    ErrPackageInstall,
				Stage:   s.Name(),
				Subject: pkg,
				Message: fmt.Sprintf("installing package %s failed", pkg),
				Err:     err,
			}
		}
	}
	return nil
}

// ─── template materialization ──────────────────────────────────────

// MaterializeStage replaces generator boilerplate with the template set.
type MaterializeStage struct {
	Plan      *scaffold.Plan
	Templates fs.FS
}

func (s *MaterializeStage) Name() string { return "materialize" }
func (s *MaterializeStage) Steps() int   { return s.Plan.Steps() }

func (s *MaterializeStage) Run(_ context.Context, run *Run) error {
	data := scaffold.Data{ProjectName: run.Invocation.Name}
	result, err := scaffold.Materialize(run.Dir, s.Templates, s.Plan, data, run.Reporter.Advance)
	run.Result = result
	if err != nil {
		return &StageError{
			Kind:    ErrTemplateMaterialization,
			Stage:   s.Name(),
			Message: "configuring project defaults failed",
			Err:     err,
		}
	}
	for _, o := range result.Skipped() {
		logger.Debug("[DEBUG] Skipped %s: %v\n", o.Path, o.Reason)
	}
	return nil
}
