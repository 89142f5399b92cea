package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	m "mutman.dev/pkg/mutman/internal/model"
)

func TestPrioritizeCmd_MaterialFirst(t *testing.T) {
	mockOps := newMockOperations(t)
	root, out, _ := newTestRoot(newPrioritizeCmd())

	mockOps.On("PrioritizeSurvivors", mock.Anything, "").
		Return(m.SuccessPrioritized([]m.PrioritizedSurvivor{
			{Survivor: m.Survivor{ID: "pkg.core:1"}, Score: 10, Reason: "core logic"},
			{Survivor: m.Survivor{ID: "pkg.log:2"}, Score: 0, Reason: "logging only"},
		}))

	root.SetArgs([]string{"prioritize"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "pkg.core:1")
	assert.Contains(t, out.String(), "logging only")
}

func TestPrioritizeCmd_NoSurvivors(t *testing.T) {
	mockOps := newMockOperations(t)
	root, out, _ := newTestRoot(newPrioritizeCmd())

	mockOps.On("PrioritizeSurvivors", mock.Anything, "").
		Return(m.SuccessPrioritized(nil))

	root.SetArgs([]string{"prioritize"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "No surviving mutants.")
}
