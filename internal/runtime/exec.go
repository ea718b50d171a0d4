package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/hossam-labs/hossam-react-app/internal/logger"
)

// ExecRunner executes commands with os/exec.
type ExecRunner struct {
	// Stdout and Stderr, when set, receive a live copy of the command output.
	// Output is always captured regardless.
	Stdout io.Writer
	Stderr io.Writer
	// Env, when non-nil, replaces the inherited process environment.
	Env []string
}

// Run resolves name on PATH and executes it in dir.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (*Output, error) {
	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%s not found on PATH: %w", name, err)
	}

	line := CommandLine(name, args...)
	logger.Debug("[DEBUG] Running %s (dir=%s)\n", line, dir)

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	if r.Env != nil {
		cmd.Env = r.Env
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = captureTo(&stdoutBuf, r.Stdout)
	cmd.Stderr = captureTo(&stderrBuf, r.Stderr)

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			logger.Debug("[DEBUG] %s exited with %d\n%s", line, output.ExitCode, output.Stderr)
			return output, &CommandError{
				Command:  line,
				ExitCode: output.ExitCode,
				Stdout:   output.Stdout,
				Stderr:   output.Stderr,
			}
		}
		return output, fmt.Errorf("executing %s: %w", line, err)
	}

	return output, nil
}

func captureTo(buf *bytes.Buffer, live io.Writer) io.Writer {
	if live == nil {
		return buf
	}
	return io.MultiWriter(live, buf)
}
