// Package shell runs command lines through the system shell and captures
// their combined output.
package shell

import (
	"context"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/d-kuro/fsprobe/internal/errors"
	"github.com/d-kuro/fsprobe/internal/stopwatch"
)

// DefaultTimeout bounds a command when the executor has none configured.
const DefaultTimeout = 2 * time.Minute

// Executor runs command lines with a timeout.
type Executor struct {
	timeout time.Duration
	shell   []string
	dir     string
}

// Result is the outcome of a command that ran to completion, whatever its
// exit status.
type Result struct {
	Output   string        `json:"output"`
	ExitCode int           `json:"exit_code"`
	Duration time.Duration `json:"-"`
	Elapsed  string        `json:"duration"`
}

// NewExecutor creates an executor. A non-positive timeout means DefaultTimeout.
func NewExecutor(timeout time.Duration) *Executor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Executor{
		timeout: timeout,
		shell:   defaultShell(),
	}
}

// WithDir sets the working directory commands run in.
func (e *Executor) WithDir(dir string) *Executor {
	e.dir = dir
	return e
}

// Timeout returns the configured timeout.
func (e *Executor) Timeout() time.Duration {
	return e.timeout
}

func defaultShell() []string {
	if runtime.GOOS == "windows" {
		return []string{"cmd", "/C"}
	}
	return []string{"/bin/sh", "-c"}
}

// ReadOutput runs cmdline with stderr merged into stdout and returns
// everything it printed. A non-zero exit status is reported in the result,
// not as an error.
func (e *Executor) ReadOutput(ctx context.Context, cmdline string) (*Result, error) {
	return e.ReadOutputTimeout(ctx, cmdline, e.timeout)
}

// ReadOutputTimeout is ReadOutput with a per-call timeout.
func (e *Executor) ReadOutputTimeout(ctx context.Context, cmdline string, timeout time.Duration) (*Result, error) {
	if strings.TrimSpace(cmdline) == "" {
		return nil, errors.Validation("command cannot be empty")
	}
	if timeout <= 0 {
		timeout = e.timeout
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := append(append([]string{}, e.shell[1:]...), cmdline)
	cmd := exec.CommandContext(timeoutCtx, e.shell[0], args...)
	cmd.Dir = e.dir
	cmd.WaitDelay = time.Second

	sw := stopwatch.Started()
	out, err := cmd.CombinedOutput()
	sw.End()

	if timeoutCtx.Err() == context.DeadlineExceeded {
		return nil, errors.Timeout("command timed out after " + timeout.String())
	}

	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, errors.ExecutionWithCause("failed to execute command", err)
		}
		exitCode = exitErr.ExitCode()
	}

	return &Result{
		Output:   string(out),
		ExitCode: exitCode,
		Duration: sw.Elapsed(),
		Elapsed:  sw.String(),
	}, nil
}
