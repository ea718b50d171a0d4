package pipeline

import (
	"context"
	"io/fs"

	"github.com/hossam-labs/hossam-react-app/internal/config"
	"github.com/hossam-labs/hossam-react-app/internal/logger"
	"github.com/hossam-labs/hossam-react-app/internal/progress"
	"github.com/hossam-labs/hossam-react-app/internal/resolver"
	"github.com/hossam-labs/hossam-react-app/internal/runtime"
	"github.com/hossam-labs/hossam-react-app/internal/scaffold"
)

// CompletedLabel is shown when every stage has succeeded.
const CompletedLabel = "Project created."

// Stage is one step of the bootstrap.
type Stage interface {
	// Name identifies the stage in logs and errors.
	Name() string
	// Steps is the exact number of times Run calls Reporter.Advance.
	Steps() int
	// Run performs the stage. It returns a *StageError on failure.
	Run(ctx context.Context, run *Run) error
}

// Run is the state threaded through every stage of one bootstrap.
type Run struct {
	Invocation *resolver.Invocation
	Settings   config.Settings
	Runner     runtime.Runner
	Reporter   progress.Reporter

	// Dir is where the next command runs. It starts at Invocation.WorkDir and
	// moves into the new project once it has been scaffolded.
	Dir string

	// Result is set by the materialize stage.
	Result *scaffold.Result
}

// Pipeline is an ordered list of stages.
type Pipeline struct {
	Stages []Stage
}

// New returns the standard five-stage pipeline.
func New(addons []string, plan *scaffold.Plan, templates fs.FS) *Pipeline {
	return &Pipeline{Stages: []Stage{
		&ScaffoldStage{},
		&MigrateStage{},
		&LinkageStage{},
		&InstallStage{Packages: addons},
		&MaterializeStage{Plan: plan, Templates: templates},
	}}
}

// TotalSteps returns the progress total: every stage's steps plus one for
// the completion update.
func (p *Pipeline) TotalSteps() int {
	total := 1
	for _, s := range p.Stages {
		total += s.Steps()
	}
	return total
}

// Execute runs every stage in order and stops at the first error. The
// reporter is stopped on every exit path.
func (p *Pipeline) Execute(ctx context.Context, run *Run) error {
	if run.Dir == "" {
		run.Dir = run.Invocation.WorkDir
	}

	run.Reporter.Start(p.TotalSteps())
	defer run.Reporter.Stop()

	for _, s := range p.Stages {
		logger.Debug("[DEBUG] Stage %s starting in %s\n", s.Name(), run.Dir)
		if err := s.Run(ctx, run); err != nil {
			logger.Debug("[DEBUG] Stage %s failed: %v\n", s.Name(), err)
			return err
		}
	}

	run.Reporter.Complete(CompletedLabel)
	return nil
}
