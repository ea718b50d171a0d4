package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hossam-labs/hossam-react-app/internal/config"
	"github.com/hossam-labs/hossam-react-app/internal/resolver"
	"github.com/hossam-labs/hossam-react-app/internal/runtime"
)

// call is one recorded Runner invocation.
type call struct {
	Dir  string
	Name string
	Args []string
}

func (c call) String() string { return runtime.CommandLine(c.Name, c.Args...) }

// fakeYarn emulates the generator and package manager in-process.
type fakeYarn struct {
	calls []call
	// failOn maps a command line (e.g. "yarn add axios") to the stderr it fails with.
	failOn map[string]string
}

func (f *fakeYarn) Run(_ context.Context, dir, name string, args ...string) (*runtime.Output, error) {
	c := call{Dir: dir, Name: name, Args: args}
	f.calls = append(f.calls, c)

	if stderr, ok := f.failOn[c.String()]; ok {
		return &runtime.Output{ExitCode: 1, Stderr: stderr}, &runtime.CommandError{
			Command: c.String(), ExitCode: 1, Stderr: stderr,
		}
	}

	switch {
	case len(args) == 3 && args[0] == "create":
		if err := generateProject(filepath.Join(dir, args[2])); err != nil {
			return nil, err
		}
	case len(args) == 3 && args[0] == "set" && args[1] == "version":
		rc := "enableGlobalCache: false\nnodeLinker: node-modules\nyarnPath: .yarn/releases/yarn-4.1.0.cjs\n"
		if err := os.WriteFile(filepath.Join(dir, ".yarnrc.yml"), []byte(rc), 0644); err != nil {
			return nil, err
		}
	}
	return &runtime.Output{}, nil
}

func (f *fakeYarn) commandLines() []string {
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.String()
	}
	return out
}

const generatedPackageJSON = `{
  "name": "app",
  "private": true,
  "eslintConfig": {
    "extends": ["react-app", "react-app/jest"]
  }
}
`

// generateProject lays out what `yarn create react-app` leaves behind.
func generateProject(root string) error {
	files := map[string]string{
		"package.json":               generatedPackageJSON,
		"public/index.html":          "<title>React App</title>",
		"public/manifest.json":       "{}",
		"src/App.js":                 "boilerplate",
		"src/index.js":               "boilerplate",
		"src/App.css":                "boilerplate",
		"src/App.test.js":            "boilerplate",
		"src/index.css":              "boilerplate",
		"src/logo.svg":               "<svg/>",
		"src/setupTests.js":          "boilerplate",
		"src/reportWebVitals.js":     "boilerplate",
		".gitignore":                 "/node_modules\n",
		".git/HEAD":                  "ref: refs/heads/main\n",
		".git/objects/info/.keep":    "",
		"node_modules/.package-lock": "",
	}
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

// recorder is a progress.Reporter that keeps every update.
type recorder struct {
	total    int
	count    int
	labels   []string
	starts   int
	stops    int
	complete string
}

func (r *recorder) Start(total int) { r.starts++; r.total = total; r.count = 0 }
func (r *recorder) Advance(label string) {
	r.count++
	r.labels = append(r.labels, label)
}
func (r *recorder) Complete(label string) { r.count = r.total; r.complete = label }
func (r *recorder) Stop()                 { r.stops++ }

func defaultSettings() config.Settings {
	return config.Settings{
		PackageManager: "yarn",
		Generator:      "yarn",
		Kind:           "react-app",
		LinkerVariant:  "berry",
	}
}

func newRun(t *testing.T, name string, runner runtime.Runner) (*Run, *recorder) {
	t.Helper()
	rec := &recorder{}
	inv := resolver.ResolveIn(t.TempDir(), []string{name})
	return &Run{
		Invocation: inv,
		Settings:   defaultSettings(),
		Runner:     runner,
		Reporter:   rec,
	}, rec
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

func assertMissing(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to be absent, stat err = %v", path, err)
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("expected content to contain %q, got:\n%s", substr, content)
	}
}

func mustEqual(t *testing.T, what string, got, want any) {
	t.Helper()
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("%s = %v, want %v", what, got, want)
	}
}
