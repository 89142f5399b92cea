package adapter

import (
	"context"
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "mutman.dev/pkg/mutman/internal/model"
)

func shellInvocation(script string) m.Invocation {
	return m.Invocation{
		Args:    []string{"-c", script},
		Context: m.ExecutionContext{Executable: "sh"},
	}
}

func requirePOSIXShell(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
}

func TestLocalRun_CapturesBothStreams(t *testing.T) {
	requirePOSIXShell(t)

	runner := NewLocalProcessRunner()

	result, err := runner.Run(context.Background(), shellInvocation("echo out; echo err 1>&2"))

	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "out\n", result.Stdout)
	assert.Equal(t, "err\n", result.Stderr)
}

func TestLocalRun_NonzeroExitIsNotAnError(t *testing.T) {
	requirePOSIXShell(t)

	runner := NewLocalProcessRunner()

	result, err := runner.Run(context.Background(), shellInvocation("exit 3"))

	require.NoError(t, err)
	assert.Equal(t, 3, result.ExitCode)
}

func TestLocalRun_MissingExecutableIsLaunchFailure(t *testing.T) {
	runner := NewLocalProcessRunner()

	invocation := m.Invocation{
		Args:    []string{"run"},
		Context: m.ExecutionContext{Executable: "mutman-test-no-such-binary"},
	}

	_, err := runner.Run(context.Background(), invocation)

	var procErr *ProcessError
	require.ErrorAs(t, err, &procErr)
	assert.Equal(t, LaunchFailure, procErr.Kind)
}

func TestLocalRun_TimeoutKillsAndReportsPartialOutput(t *testing.T) {
	requirePOSIXShell(t)

	runner := NewLocalProcessRunner()

	invocation := shellInvocation("echo started; sleep 10")
	invocation.Timeout = 200 * time.Millisecond

	start := time.Now()
	_, err := runner.Run(context.Background(), invocation)

	assert.Less(t, time.Since(start), 5*time.Second)

	var procErr *ProcessError
	require.ErrorAs(t, err, &procErr)
	assert.Equal(t, Timeout, procErr.Kind)
	assert.True(t, errors.Is(procErr, context.DeadlineExceeded))
	assert.Equal(t, "started\n", procErr.Partial.Stdout)
}

func TestLocalRun_TimeoutNotHeldOpenByGrandchild(t *testing.T) {
	requirePOSIXShell(t)

	runner := NewLocalProcessRunner()

	// The backgrounded sleep inherits the output pipes, the way the
	// mutation tool's test-runner child does.
	invocation := shellInvocation("sleep 8 & echo started; sleep 8")
	invocation.Timeout = 200 * time.Millisecond

	start := time.Now()
	_, err := runner.Run(context.Background(), invocation)

	assert.Less(t, time.Since(start), processWaitGrace+2*time.Second)

	var procErr *ProcessError
	require.ErrorAs(t, err, &procErr)
	assert.Equal(t, Timeout, procErr.Kind)
	assert.Equal(t, "started\n", procErr.Partial.Stdout)
}

func TestLocalRun_CancellationIsNotAnExitCode(t *testing.T) {
	requirePOSIXShell(t)

	runner := NewLocalProcessRunner()

	ctx, cancel := context.WithCancel(context.Background())
	timer := time.AfterFunc(100*time.Millisecond, cancel)
	defer timer.Stop()
	defer cancel()

	start := time.Now()
	_, err := runner.Run(ctx, shellInvocation("echo partial; sleep 10"))

	assert.Less(t, time.Since(start), processWaitGrace+2*time.Second)

	var procErr *ProcessError
	require.ErrorAs(t, err, &procErr)
	assert.Equal(t, Canceled, procErr.Kind)
	assert.True(t, errors.Is(procErr, context.Canceled))
	assert.Equal(t, "partial\n", procErr.Partial.Stdout)
}

func TestLocalRun_EnvOverridesWin(t *testing.T) {
	requirePOSIXShell(t)

	t.Setenv("MUTMAN_TEST_VAR", "parent")

	runner := NewLocalProcessRunner()

	invocation := shellInvocation(`printf "%s" "$MUTMAN_TEST_VAR"`)
	invocation.Context.Env = map[string]string{"MUTMAN_TEST_VAR": "override"}

	result, err := runner.Run(context.Background(), invocation)

	require.NoError(t, err)
	assert.Equal(t, "override", result.Stdout)
}

func TestLocalRun_WorkDirIsApplied(t *testing.T) {
	requirePOSIXShell(t)

	dir := t.TempDir()
	runner := NewLocalProcessRunner()

	invocation := shellInvocation("pwd")
	invocation.Context.WorkDir = m.Path(dir)

	result, err := runner.Run(context.Background(), invocation)

	require.NoError(t, err)
	assert.Contains(t, result.Stdout, dir)
}

func TestMergeEnv(t *testing.T) {
	parent := []string{"A=1", "B=2", "MALFORMED"}

	merged := mergeEnv(parent, map[string]string{"B": "override", "C": "3"})

	assert.Contains(t, merged, "A=1")
	assert.Contains(t, merged, "B=override")
	assert.Contains(t, merged, "C=3")
	assert.Contains(t, merged, "MALFORMED")
	assert.NotContains(t, merged, "B=2")
}
