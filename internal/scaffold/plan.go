package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

//go:embed plan.yaml
var defaultPlan []byte

//go:embed templates
var templatesFS embed.FS

// Plan describes how a generated project is turned into the curated layout.
type Plan struct {
	Remove      []string      `yaml:"remove"`
	Directories []string      `yaml:"directories"`
	Files       []FileSpec    `yaml:"files"`
	Cleanup     []CleanupSpec `yaml:"cleanup"`
}

// FileSpec places one template at a project-relative destination.
type FileSpec struct {
	Template   string `yaml:"template"`
	Dest       string `yaml:"dest"`
	Substitute bool   `yaml:"substitute"` // replace {projectName} before writing
}

// CleanupSpec names generator output removed after templates are placed.
type CleanupSpec struct {
	Path      string `yaml:"path"`
	Recursive bool   `yaml:"recursive"`
}

// Steps returns how many progress reports Materialize makes for this plan:
// one for the removal/directory phase, one per file and one per cleanup entry.
func (p *Plan) Steps() int {
	return 1 + len(p.Files) + len(p.Cleanup)
}

// DefaultPlan returns the embedded plan.
func DefaultPlan() (*Plan, error) {
	return ParsePlan(defaultPlan)
}

// TemplatesFS returns the embedded template set rooted at its top directory.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}

// OpenTemplates returns the template set at dir, or the embedded set when dir
// is empty.
func OpenTemplates(dir string) (fs.FS, error) {
	if strings.TrimSpace(dir) == "" {
		return TemplatesFS(), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("opening template directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template path %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}

// ParsePlan validates data against the plan schema and decodes it.
func ParsePlan(data []byte) (*Plan, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid() {
		return nil, fmt.Errorf("invalid plan: %s", result.Summary())
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan: %w", err)
	}
	return &p, nil
}

// LoadPlanFile reads and parses a plan from disk.
func LoadPlanFile(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return ParsePlan(data)
}
