package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Placeholder is replaced with the project name in substituted templates.
const Placeholder = "{projectName}"

// Data holds the values injected into substituted templates.
type Data struct {
	ProjectName string
}

// Action is what happened to one path during materialization.
type Action string

const (
	ActionRemoved Action = "removed"
	ActionPlaced  Action = "placed"
	ActionSkipped Action = "skipped"
)

// Op is the plan section an Outcome came from.
type Op string

const (
	OpRemove  Op = "remove"
	OpPlace   Op = "place"
	OpCleanup Op = "cleanup"
)

// Outcome records the result of one optional file operation. A skipped
// outcome keeps the reason so callers can log it; it is never an error.
type Outcome struct {
	Path   string
	Op     Op
	Action Action
	Reason error
}

// Result holds the outcome of a materialization run.
type Result struct {
	Root        string
	Directories []string
	Outcomes    []Outcome
}

// Placed returns the destinations of every template written.
func (r *Result) Placed() []string {
	return r.paths(ActionPlaced)
}

// Removed returns the boilerplate paths that were deleted.
func (r *Result) Removed() []string {
	return r.paths(ActionRemoved)
}

// Skipped returns every optional operation that did not happen.
func (r *Result) Skipped() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Action == ActionSkipped {
			out = append(out, o)
		}
	}
	return out
}

// SkippedTemplates returns the template placements that did not happen.
// Skipped removals are left out: generators differ in what boilerplate
// they leave behind.
func (r *Result) SkippedTemplates() []Outcome {
	var out []Outcome
	for _, o := range r.Skipped() {
		if o.Op == OpPlace {
			out = append(out, o)
		}
	}
	return out
}

func (r *Result) paths(a Action) []string {
	var out []string
	for _, o := range r.Outcomes {
		if o.Action == a {
			out = append(out, o.Path)
		}
	}
	return out
}

// Substitute replaces every literal {projectName} in text with name.
func Substitute(text, name string) string {
	return strings.ReplaceAll(text, Placeholder, name)
}

// Materialize applies plan to the project at root, reading templates from
// templates. report is called Plan.Steps() times with a status label and may
// be nil.
//
// Only directory creation can fail the run: the project was just generated,
// so an existing or uncreatable directory is a real problem. Every removal,
// template placement and cleanup is optional and reported as an Outcome.
func Materialize(root string, templates fs.FS, plan *Plan, data Data, report func(label string)) (*Result, error) {
	if report == nil {
		report = func(string) {}
	}
	result := &Result{Root: root}

	report("Configuring project defaults.")
	for _, rel := range plan.Remove {
		result.Outcomes = append(result.Outcomes, removeOptional(root, rel))
	}

	for _, rel := range plan.Directories {
		if err := os.Mkdir(filepath.Join(root, filepath.FromSlash(rel)), 0755); err != nil {
			return result, fmt.Errorf("creating directory %s: %w", rel, err)
		}
		result.Directories = append(result.Directories, rel)
	}

	for _, file := range plan.Files {
		report(fmt.Sprintf("Configuring project defaults. (%s)", path.Base(file.Dest)))
		result.Outcomes = append(result.Outcomes, placeOptional(root, templates, file, data))
	}

	for _, c := range plan.Cleanup {
		report(fmt.Sprintf("Configuring project defaults. (remove %s)", c.Path))
		result.Outcomes = append(result.Outcomes, cleanupOptional(root, c))
	}

	return result, nil
}

// removeOptional deletes one boilerplate file. A missing file is expected.
func removeOptional(root, rel string) Outcome {
	if err := os.Remove(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
		return Outcome{Path: rel, Op: OpRemove, Action: ActionSkipped, Reason: err}
	}
	return Outcome{Path: rel, Op: OpRemove, Action: ActionRemoved}
}

// placeOptional writes one template into the project. A template missing
// from the set, or a destination that cannot be written, skips the file.
func placeOptional(root string, templates fs.FS, file FileSpec, data Data) Outcome {
	content, err := fs.ReadFile(templates, file.Template)
	if err != nil {
		return Outcome{Path: file.Dest, Op: OpPlace, Action: ActionSkipped, Reason: fmt.Errorf("reading template %s: %w", file.Template, err)}
	}
	if file.Substitute {
		content = []byte(Substitute(string(content), data.ProjectName))
	}

	dest := filepath.Join(root, filepath.FromSlash(file.Dest))
	if err := os.WriteFile(dest, content, 0644); err != nil {
		return Outcome{Path: file.Dest, Op: OpPlace, Action: ActionSkipped, Reason: fmt.Errorf("writing %s: %w", file.Dest, err)}
	}
	return Outcome{Path: file.Dest, Op: OpPlace, Action: ActionPlaced}
}

// cleanupOptional removes generator metadata on a best-effort basis.
func cleanupOptional(root string, c CleanupSpec) Outcome {
	target := filepath.Join(root, filepath.FromSlash(c.Path))
	var err error
	if c.Recursive {
		if _, statErr := os.Lstat(target); statErr != nil {
			err = statErr
		} else {
			err = os.RemoveAll(target)
		}
	} else {
		err = os.Remove(target)
	}
	if err != nil {
		return Outcome{Path: c.Path, Op: OpCleanup, Action: ActionSkipped, Reason: err}
	}
	return Outcome{Path: c.Path, Op: OpCleanup, Action: ActionRemoved}
}
