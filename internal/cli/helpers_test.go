package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hossam-labs/hossam-react-app/internal/runtime"
	"github.com/hossam-labs/hossam-react-app/internal/toolcheck"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// fakeTools stands in for node, yarn and the project generator.
type fakeTools struct {
	calls    []string
	versions map[string]string // stdout of `<tool> --version`
}

func (f *fakeTools) Run(_ context.Context, dir, name string, args ...string) (*runtime.Output, error) {
	f.calls = append(f.calls, runtime.CommandLine(name, args...))

	switch {
	case len(args) == 1 && args[0] == "--version":
		if v, ok := f.versions[name]; ok {
			return &runtime.Output{Stdout: v}, nil
		}
		return nil, &runtime.CommandError{Command: name + " --version", ExitCode: 127}
	case len(args) == 3 && args[0] == "create":
		root := filepath.Join(dir, args[2])
		files := map[string]string{
			"package.json":      `{"name":"app","eslintConfig":{"extends":["react-app"]}}`,
			"src/App.js":        "boilerplate",
			"public/index.html": "<title>React App</title>",
			".gitignore":        "/node_modules\n",
		}
		for rel, content := range files {
			p := filepath.Join(root, filepath.FromSlash(rel))
			if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
				return nil, err
			}
			if err := os.WriteFile(p, []byte(content), 0644); err != nil {
				return nil, err
			}
		}
	case len(args) == 3 && args[0] == "set":
		if err := os.WriteFile(filepath.Join(dir, ".yarnrc.yml"), []byte("nodeLinker: node-modules\n"), 0644); err != nil {
			return nil, err
		}
	}
	return &runtime.Output{}, nil
}

// useFakeTools swaps the external command runner for fakeTools.
func useFakeTools(t *testing.T) *fakeTools {
	t.Helper()
	fake := &fakeTools{versions: map[string]string{
		"node": "v18.17.1\n",
		"yarn": "1.22.19\n",
	}}
	prevRunner, prevChecker := newRunner, newChecker
	newRunner = func() runtime.Runner { return fake }
	newChecker = func() *toolcheck.Checker {
		return &toolcheck.Checker{
			Runner: fake,
			LookPath: func(file string) (string, error) {
				if _, ok := fake.versions[file]; !ok {
					return "", os.ErrNotExist
				}
				return "/usr/local/bin/" + file, nil
			},
		}
	}
	t.Cleanup(func() { newRunner, newChecker = prevRunner, prevChecker })
	return fake
}

// isolate points HOME at a temp dir and resets viper's global state.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("CI", "true")
	viper.Reset()
	t.Cleanup(viper.Reset)
	return home
}

// resetFlags restores every flag in the tree to its default so commands can
// be executed repeatedly in one process.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}
