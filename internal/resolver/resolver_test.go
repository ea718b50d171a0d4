package resolver

import (
	"os"
	"testing"
)

func TestProjectName(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bare name lower-cased", []string{"MyApp"}, "myapp"},
		{"already lower", []string{"shop"}, "shop"},
		{"last argument wins", []string{"--verbose", "first", "Second"}, "second"},
		{"forward slash falls back", []string{"../evil"}, "hello-react-app"},
		{"backslash falls back", []string{`..\evil`}, "hello-react-app"},
		{"absolute path falls back", []string{"/usr/local/bin/hossam-react-app"}, "hello-react-app"},
		{"no arguments falls back", nil, "hello-react-app"},
		{"blank argument falls back", []string{"  "}, "hello-react-app"},
		{"hyphens kept", []string{"My-Cool-App"}, "my-cool-app"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProjectName(tt.args); got != tt.want {
				t.Errorf("ProjectName(%q) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	if got := NormalizePath(`C:\Users\dev\work`); got != "C:/Users/dev/work" {
		t.Errorf("NormalizePath() = %q", got)
	}
}

func TestResolveIn(t *testing.T) {
	inv := ResolveIn(`C:\work\`, []string{"MyApp"})
	if inv.Name != "myapp" {
		t.Errorf("Name = %q, want %q", inv.Name, "myapp")
	}
	if inv.WorkDir != "C:/work" {
		t.Errorf("WorkDir = %q, want %q", inv.WorkDir, "C:/work")
	}
	if inv.Target != "C:/work/myapp" {
		t.Errorf("Target = %q, want %q", inv.Target, "C:/work/myapp")
	}
}

func TestResolve_UsesCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	inv, err := Resolve([]string{"Demo"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	cwd, _ := os.Getwd()
	if inv.WorkDir != NormalizePath(cwd) {
		t.Errorf("WorkDir = %q, want %q", inv.WorkDir, NormalizePath(cwd))
	}
	if inv.Name != "demo" {
		t.Errorf("Name = %q, want %q", inv.Name, "demo")
	}
}
