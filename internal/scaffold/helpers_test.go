package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// generatedProject lays out the files a freshly generated React project has.
func generatedProject(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "myapp")

	files := map[string]string{
		"public/index.html":      "<title>React App</title>",
		"public/favicon.ico":     "ico",
		"src/App.js":             "boilerplate",
		"src/index.js":           "boilerplate",
		"src/App.css":            "boilerplate",
		"src/App.test.js":        "boilerplate",
		"src/index.css":          "boilerplate",
		"src/logo.svg":           "<svg/>",
		"src/reportWebVitals.js": "boilerplate",
		".gitignore":             "node_modules\n",
		".git/HEAD":              "ref: refs/heads/main\n",
		"package.json":           "{}",
	}
	for rel, content := range files {
		writeFile(t, filepath.Join(root, rel), content)
	}
	return root
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readGenerated(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}

func assertExists(t *testing.T, root, rel string) {
	t.Helper()
	if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
		t.Errorf("expected %s to exist: %v", rel, err)
	}
}

func assertMissing(t *testing.T, root, rel string) {
	t.Helper()
	if _, err := os.Lstat(filepath.Join(root, filepath.FromSlash(rel))); !os.IsNotExist(err) {
		t.Errorf("expected %s to be absent, stat err = %v", rel, err)
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("expected content to contain %q", substr)
	}
}

func assertNotContains(t *testing.T, content, substr string) {
	t.Helper()
	if strings.Contains(content, substr) {
		t.Errorf("expected content NOT to contain %q", substr)
	}
}
