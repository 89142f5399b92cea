package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	m "mutman.dev/pkg/mutman/internal/model"
)

// ProcessRunner abstracts subprocess execution for the orchestrator.
type ProcessRunner interface {
	// Run spawns the invocation and blocks until exit or timeout.
	// A nonzero exit code is returned inside ProcessResult, not as an
	// error; interpretation belongs to the caller.
	Run(ctx context.Context, invocation m.Invocation) (m.ProcessResult, error)
}

// ProcessErrorKind distinguishes the two ways a subprocess can fail
// below the exit-code level.
type ProcessErrorKind string

const (
	// LaunchFailure means the executable could not be started.
	LaunchFailure ProcessErrorKind = "launch"
	// Timeout means the subprocess exceeded its time budget and was
	// terminated.
	Timeout ProcessErrorKind = "timeout"
	// Canceled means the caller's context ended before the subprocess
	// finished, e.g. on shutdown.
	Canceled ProcessErrorKind = "canceled"
)

// processWaitGrace bounds how long Run keeps waiting for the output
// pipes after the child is signaled. The tool's own children inherit
// the pipes and would otherwise hold Wait open indefinitely.
const processWaitGrace = 3 * time.Second

// ProcessError reports a failed subprocess invocation. On timeout it
// carries whatever partial output was captured before termination.
type ProcessError struct {
	Kind    ProcessErrorKind
	Cause   error
	Partial m.ProcessResult
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("process %s: %v", e.Kind, e.Cause)
}

func (e *ProcessError) Unwrap() error { return e.Cause }

// LocalProcessRunner executes invocations via os/exec. One OS process
// per call, no retries.
type LocalProcessRunner struct{}

// NewLocalProcessRunner constructs a LocalProcessRunner.
func NewLocalProcessRunner() *LocalProcessRunner {
	return &LocalProcessRunner{}
}

// Run executes the invocation, buffering stdout and stderr until the
// child exits. Environment overrides are merged on top of the parent
// environment, overrides winning on collision.
func (r *LocalProcessRunner) Run(ctx context.Context, invocation m.Invocation) (m.ProcessResult, error) {
	runCtx := ctx
	if invocation.Timeout > 0 {
		var cancel context.CancelFunc

		runCtx, cancel = context.WithTimeout(ctx, invocation.Timeout)
		defer cancel()
	}

	// #nosec G204 - the executable comes from the env resolver, the
	// arguments from the orchestrator's command construction.
	cmd := exec.CommandContext(runCtx, invocation.Context.Executable, invocation.Args...)
	cmd.Dir = string(invocation.Context.WorkDir)
	cmd.Env = mergeEnv(os.Environ(), invocation.Context.Env)

	// The mutation tool spawns the test runner as its own child. Put
	// the whole tree in one process group and take it down together on
	// cancellation, and cap the pipe wait so an escaped grandchild
	// cannot hold Run open past the deadline.
	setProcessGroup(cmd)
	cmd.Cancel = func() error { return terminateProcess(cmd) }
	cmd.WaitDelay = processWaitGrace

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := m.ProcessResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if err == nil {
		return result, nil
	}

	if ctxErr := runCtx.Err(); ctxErr != nil {
		kind := Canceled
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			kind = Timeout
		}

		return m.ProcessResult{}, &ProcessError{Kind: kind, Cause: ctxErr, Partial: result}
	}

	// The tool exited but an inherited pipe stayed open past the grace
	// period; the captured output is complete enough to use.
	if errors.Is(err, exec.ErrWaitDelay) {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// Tool ran and exited nonzero; not an error at this layer.
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	return m.ProcessResult{}, &ProcessError{Kind: LaunchFailure, Cause: err}
}

func mergeEnv(parent []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return parent
	}

	merged := make([]string, 0, len(parent)+len(overrides))

	for _, entry := range parent {
		key, _, ok := splitEnvEntry(entry)
		if ok {
			if _, overridden := overrides[key]; overridden {
				continue
			}
		}

		merged = append(merged, entry)
	}

	for key, value := range overrides {
		merged = append(merged, key+"="+value)
	}

	return merged
}

func splitEnvEntry(entry string) (key, value string, ok bool) {
	for i := 0; i < len(entry); i++ {
		if entry[i] == '=' {
			return entry[:i], entry[i+1:], true
		}
	}

	return "", "", false
}
