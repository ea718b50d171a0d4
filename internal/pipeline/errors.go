package pipeline

import "errors"

// Failure kinds. Use errors.Is against a returned error to tell them apart.
var (
	ErrDirectoryExists         = errors.New("target directory already exists")
	ErrGenerator               = errors.New("project generator failed")
	ErrPackageManager          = errors.New("package manager migration failed")
	ErrConfigRewrite           = errors.New("config rewrite failed")
	ErrPackageInstall          = errors.New("package install failed")
	ErrTemplateMaterialization = errors.New("template materialization failed")
)

// StageError is the error every stage returns. Message is the human-readable
// description, Subject names the file, package or sub-command involved, and
// Err is the underlying cause (the external tool's error text when there is one).
type StageError struct {
	Kind    error
	Stage   string
	Subject string
	Message string
	Err     error
}

func (e *StageError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + " >> " + e.Err.Error()
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *StageError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
