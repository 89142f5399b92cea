package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	m "mutman.dev/pkg/mutman/internal/model"
)

func TestSurvivorsCmd_ListsInEmissionOrder(t *testing.T) {
	mockOps := newMockOperations(t)
	root, out, _ := newTestRoot(newSurvivorsCmd())

	mockOps.On("Survivors", mock.Anything, "").
		Return(m.SuccessSurvivors([]m.Survivor{
			{ID: "pkg.a:1", Location: "pkg.a:1"},
			{ID: "pkg.b:2", Location: "pkg.b:2"},
		}))

	root.SetArgs([]string{"survivors"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "pkg.a:1")
	assert.Contains(t, out.String(), "pkg.b:2")
}

func TestSurvivorsCmd_EmptyListing(t *testing.T) {
	mockOps := newMockOperations(t)
	root, out, _ := newTestRoot(newSurvivorsCmd())

	mockOps.On("Survivors", mock.Anything, "").
		Return(m.SuccessSurvivors(nil))

	root.SetArgs([]string{"survivors"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "No surviving mutants.")
}

func TestSurvivorsCmd_InteractiveFallsBackWithoutTTY(t *testing.T) {
	mockOps := newMockOperations(t)
	root, out, _ := newTestRoot(newSurvivorsCmd())

	mockOps.On("Survivors", mock.Anything, "").
		Return(m.SuccessSurvivors([]m.Survivor{{ID: "pkg.a:1", Location: "pkg.a:1"}}))

	// Test stdout is not a terminal, so -i degrades to the plain table.
	root.SetArgs([]string{"survivors", "-i"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "pkg.a:1")
}
