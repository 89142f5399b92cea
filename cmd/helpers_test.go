package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/mock"
	m "mutman.dev/pkg/mutman/internal/model"
)

// mockOperations is a testify mock for the operations surface the
// commands depend on.
type mockOperations struct {
	mock.Mock
}

func newMockOperations(t *testing.T) *mockOperations {
	t.Helper()

	mockOps := &mockOperations{}
	mockOps.Mock.Test(t)
	t.Cleanup(func() { mockOps.AssertExpectations(t) })

	original := orchestrator
	orchestrator = mockOps
	t.Cleanup(func() { orchestrator = original })

	return mockOps
}

func (o *mockOperations) Run(ctx context.Context, target, testCommand, options, venvPath string) m.Outcome {
	args := o.Called(ctx, target, testCommand, options, venvPath)

	return args.Get(0).(m.Outcome)
}

func (o *mockOperations) Results(ctx context.Context, venvPath string) m.Outcome {
	args := o.Called(ctx, venvPath)

	return args.Get(0).(m.Outcome)
}

func (o *mockOperations) Survivors(ctx context.Context, venvPath string) m.Outcome {
	args := o.Called(ctx, venvPath)

	return args.Get(0).(m.Outcome)
}

func (o *mockOperations) Suggest(ctx context.Context, venvPath string) m.Outcome {
	args := o.Called(ctx, venvPath)

	return args.Get(0).(m.Outcome)
}

func (o *mockOperations) PrioritizeSurvivors(ctx context.Context, venvPath string) m.Outcome {
	args := o.Called(ctx, venvPath)

	return args.Get(0).(m.Outcome)
}

func (o *mockOperations) Rerun(ctx context.Context, mutationID, venvPath string) m.Outcome {
	args := o.Called(ctx, mutationID, venvPath)

	return args.Get(0).(m.Outcome)
}

func (o *mockOperations) Show(ctx context.Context, mutationID, venvPath string) m.Outcome {
	args := o.Called(ctx, mutationID, venvPath)

	return args.Get(0).(m.Outcome)
}

func (o *mockOperations) Clean(ctx context.Context, venvPath string) m.Outcome {
	args := o.Called(ctx, venvPath)

	return args.Get(0).(m.Outcome)
}

// newTestRoot builds a fresh root with the given subcommand and
// capturing buffers for stdout and stderr.
func newTestRoot(sub *cobra.Command) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	root := newRootCmd()
	root.AddCommand(sub)

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(errOut)

	return root, out, errOut
}
