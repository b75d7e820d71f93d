package sweep

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"
)

// ToolError reports a failed external tool run. It carries the child's exit
// code so the process can propagate it.
type ToolError struct {
	Command  string
	ExitCode int
	Err      error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("analysis tool failed (exit %d): %s", e.ExitCode, e.Command)
}

func (e *ToolError) Unwrap() error { return e.Err }

// RunTiming holds the measured wall-clock window of one tool run.
type RunTiming struct {
	Start time.Time
	End   time.Time
}

// ElapsedSeconds returns the whole-second duration of the run, never
// negative.
func (t RunTiming) ElapsedSeconds() int64 {
	s := int64(t.End.Sub(t.Start) / time.Second)
	if s < 0 {
		return 0
	}
	return s
}

// Executor runs external tool invocations sequentially, one at a time.
// The working directory is set on the child process itself, so the driver's
// own working directory never changes between runs.
type Executor struct {
	Logger *slog.Logger

	// Stdout and Stderr receive the child's output; nil means the
	// driver's own streams.
	Stdout io.Writer
	Stderr io.Writer

	// NumCPU reports available cores for the oversubscription advisory;
	// zero means runtime.NumCPU.
	NumCPU int
}

// NewExecutor creates an Executor. A nil logger falls back to slog.Default.
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{Logger: logger}
}

// Execute runs one invocation to completion and returns its timing. The
// command line is logged before the run, the way a person running the sweep
// by hand would see it. A non-zero exit from the tool is returned as a
// *ToolError; the sweep treats that as fatal.
func (e *Executor) Execute(ctx context.Context, inv Invocation) (RunTiming, error) {
	if ncpu := e.numCPU(); inv.Threads > ncpu {
		e.Logger.Warn("requested threads exceed available cores",
			"threads", inv.Threads, "cores", ncpu)
	}

	cmd := exec.CommandContext(ctx, inv.Tool, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Env = os.Environ()
	cmd.Stdout = e.stdout()
	cmd.Stderr = e.stderr()

	e.Logger.Info("running analysis tool", "command", inv.String(), "dir", inv.Dir)

	timing := RunTiming{Start: time.Now()}
	err := cmd.Run()
	timing.End = time.Now()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return timing, &ToolError{
				Command:  inv.String(),
				ExitCode: exitErr.ExitCode(),
				Err:      err,
			}
		}
		return timing, fmt.Errorf("start analysis tool %s: %w", inv.Tool, err)
	}
	return timing, nil
}

func (e *Executor) numCPU() int {
	if e.NumCPU > 0 {
		return e.NumCPU
	}
	return runtime.NumCPU()
}

func (e *Executor) stdout() io.Writer {
	if e.Stdout != nil {
		return e.Stdout
	}
	return os.Stdout
}

func (e *Executor) stderr() io.Writer {
	if e.Stderr != nil {
		return e.Stderr
	}
	return os.Stderr
}
