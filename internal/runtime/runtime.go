package runtime

import (
	"context"
	"fmt"
	"strings"
)

// Runner executes an external command in dir and waits for it to finish.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (*Output, error)
}

// Output captures the result of a command execution.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// CommandError is returned when a command exits with a non-zero status.
type CommandError struct {
	Command  string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *CommandError) Error() string {
	detail := strings.TrimSpace(e.Stderr)
	if detail == "" {
		detail = strings.TrimSpace(e.Stdout)
	}
	if detail == "" {
		return fmt.Sprintf("command failed: %s (exit code %d)", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("command failed: %s (exit code %d): %s", e.Command, e.ExitCode, detail)
}

// CommandLine renders name and args as a single display string.
func CommandLine(name string, args ...string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
