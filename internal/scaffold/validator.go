package scaffold

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/plan.schema.json
var schemaBytes []byte

var (
	planSchema     *jsonschema.Schema
	planSchemaErr  error
	planSchemaOnce sync.Once
	printer        = message.NewPrinter(language.English)
)

// GeneratorDirs are the project directories the generator always creates.
// Plan entries may write into them without listing them under directories.
var GeneratorDirs = []string{".", "src", "public"}

// binaryExts are destinations that must be copied byte for byte.
var binaryExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
	".ico": true, ".bmp": true, ".woff": true, ".woff2": true, ".ttf": true,
	".eot": true, ".mp3": true, ".mp4": true,
}

// Issue is one problem found in a plan. Field locates the entry the way it
// is written in the plan, e.g. "files[3].dest".
type Issue struct {
	Field   string
	Message string
}

func (i Issue) String() string {
	if i.Field == "" {
		return i.Message
	}
	return i.Field + ": " + i.Message
}

// ValidationResult lists every issue found in a plan.
type ValidationResult struct {
	Issues []Issue
}

// Valid reports whether the plan had no issues.
func (r *ValidationResult) Valid() bool { return len(r.Issues) == 0 }

// Summary joins all issues into one line.
func (r *ValidationResult) Summary() string {
	parts := make([]string, len(r.Issues))
	for i, issue := range r.Issues {
		parts[i] = issue.String()
	}
	return strings.Join(parts, "; ")
}

// Validate checks plan YAML in two passes. The JSON schema catches shape
// errors such as unknown keys or absolute paths; only a plan that passes it
// is decoded and checked against the layout it will be applied to.
// The error return is for unreadable YAML or a broken embedded schema.
func Validate(data []byte) (*ValidationResult, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	issues, err := schemaIssues(doc)
	if err != nil {
		return nil, err
	}
	if len(issues) > 0 {
		return &ValidationResult{Issues: issues}, nil
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding plan: %w", err)
	}
	return &ValidationResult{Issues: Check(&p)}, nil
}

// ValidateFile reads a file and validates it as a plan.
func ValidateFile(file string) (*ValidationResult, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", file, err)
	}
	return Validate(data)
}

// Check reports layout problems the schema cannot express:
//   - a directory whose parent is neither generator-owned nor listed before it
//     (directories are created one level at a time)
//   - a file written into a directory nobody creates
//   - two files with the same destination
//   - substitution requested for a binary destination
//   - a cleanup entry that would delete a placed file
func Check(p *Plan) []Issue {
	var issues []Issue
	add := func(field, format string, a ...any) {
		issues = append(issues, Issue{Field: field, Message: fmt.Sprintf(format, a...)})
	}

	created := map[string]bool{}
	for _, d := range GeneratorDirs {
		created[d] = true
	}
	for i, d := range p.Directories {
		field := fmt.Sprintf("directories[%d]", i)
		d = path.Clean(d)
		if created[d] {
			add(field, "%s already exists when this entry runs", d)
			continue
		}
		if parent := path.Dir(d); !created[parent] {
			add(field, "parent %s is not created before %s", parent, d)
		}
		created[d] = true
	}

	placed := map[string]int{}
	for i, f := range p.Files {
		field := fmt.Sprintf("files[%d]", i)
		dest := path.Clean(f.Dest)
		if parent := path.Dir(dest); !created[parent] {
			add(field+".dest", "directory %s is neither generated nor listed under directories", parent)
		}
		if j, dup := placed[dest]; dup {
			add(field+".dest", "%s is already written by files[%d]", dest, j)
		} else {
			placed[dest] = i
		}
		if f.Substitute && binaryExts[strings.ToLower(path.Ext(dest))] {
			add(field+".substitute", "%s is binary and cannot be substituted", dest)
		}
	}

	for i, c := range p.Cleanup {
		target := path.Clean(c.Path)
		for j, f := range p.Files {
			dest := path.Clean(f.Dest)
			if dest == target || (c.Recursive && strings.HasPrefix(dest, target+"/")) {
				add(fmt.Sprintf("cleanup[%d].path", i), "removes %s placed by files[%d]", dest, j)
			}
		}
	}
	return issues
}

func compiledPlanSchema() (*jsonschema.Schema, error) {
	planSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			planSchemaErr = fmt.Errorf("reading plan schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("plan.schema.json", doc); err != nil {
			planSchemaErr = fmt.Errorf("registering plan schema: %w", err)
			return
		}
		if planSchema, err = c.Compile("plan.schema.json"); err != nil {
			planSchemaErr = fmt.Errorf("compiling plan schema: %w", err)
		}
	})
	return planSchema, planSchemaErr
}

// schemaIssues validates doc and flattens the error tree into one issue
// per failing leaf, keyed by plan field.
func schemaIssues(doc any) ([]Issue, error) {
	schema, err := compiledPlanSchema()
	if err != nil {
		return nil, err
	}

	// The validator works on JSON values, so YAML scalars go through JSON once.
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("converting plan to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("converting plan to JSON: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil, nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("validating plan: %w", err)
	}

	var issues []Issue
	seen := map[Issue]bool{}
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		for _, cause := range e.Causes {
			walk(cause)
		}
		if len(e.Causes) > 0 || e.ErrorKind == nil {
			return
		}
		issue := Issue{Field: fieldName(e.InstanceLocation), Message: e.ErrorKind.LocalizedString(printer)}
		if !seen[issue] {
			seen[issue] = true
			issues = append(issues, issue)
		}
	}
	walk(ve)

	if len(issues) == 0 {
		issues = append(issues, Issue{Message: ve.Error()})
	}
	return issues, nil
}

// fieldName turns a JSON pointer location like [files 3 dest] into
// files[3].dest.
func fieldName(location []string) string {
	var b strings.Builder
	for _, seg := range location {
		if _, err := strconv.Atoi(seg); err == nil {
			b.WriteString("[" + seg + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}
