package controller

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "mutman.dev/pkg/mutman/internal/model"
)

func newCaptureUI() (*SimpleUI, *bytes.Buffer, *bytes.Buffer) {
	cmd := &cobra.Command{}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	return NewSimpleUI(cmd), out, errOut
}

func TestDisplaySummary_TableContents(t *testing.T) {
	ui, out, _ := newCaptureUI()

	err := ui.DisplaySummary(m.Summary{Total: 124, Killed: 98, Survived: 20, Timeout: 4, Suspicious: 2})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Killed")
	assert.Contains(t, out.String(), "98")
	assert.Contains(t, out.String(), "124")
}

func TestDisplaySurvivors_EmptyListing(t *testing.T) {
	ui, out, _ := newCaptureUI()

	err := ui.DisplaySurvivors(nil)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "No surviving mutants.")
}

func TestDisplaySurvivors_RowsAndCount(t *testing.T) {
	ui, out, _ := newCaptureUI()

	err := ui.DisplaySurvivors([]m.Survivor{
		{ID: "pkg.a:1", Location: "pkg.a:1"},
		{ID: "pkg.b:2", Location: "pkg.b:2"},
	})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "pkg.a:1")
	assert.Contains(t, out.String(), "pkg.b:2")
	assert.Contains(t, out.String(), "2")
}

func TestDisplaySuggestion_PrintsRenderedText(t *testing.T) {
	ui, out, _ := newCaptureUI()

	err := ui.DisplaySuggestion(nil, "Modules most in need of tests:\n1. pkg.a (3 surviving mutants)")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "1. pkg.a (3 surviving mutants)")
}

func TestDisplayPrioritized_ShowsScoresAndReasons(t *testing.T) {
	ui, out, _ := newCaptureUI()

	err := ui.DisplayPrioritized([]m.PrioritizedSurvivor{
		{Survivor: m.Survivor{ID: "pkg.core:1"}, Score: 10, Reason: "core logic"},
		{Survivor: m.Survivor{ID: "pkg.log:2"}, Score: 0, Reason: "logging only"},
	})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "pkg.core:1")
	assert.Contains(t, out.String(), "logging only")
}

func TestDisplayText_TrimsTrailingNewlines(t *testing.T) {
	ui, out, _ := newCaptureUI()

	err := ui.DisplayText("done\n\n")

	require.NoError(t, err)
	assert.Equal(t, "done\n", out.String())
}

func TestDisplayFailure_WritesToStderr(t *testing.T) {
	ui, out, errOut := newCaptureUI()

	err := ui.DisplayFailure(m.FailStderr(m.FailureTool, "run exited with code 2", "boom"))

	require.NoError(t, err)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "error (tool)")
	assert.Contains(t, errOut.String(), "run exited with code 2")
	assert.Contains(t, errOut.String(), "boom")
}

func TestDisplayFailure_OmitsEmptyStderrSection(t *testing.T) {
	ui, _, errOut := newCaptureUI()

	err := ui.DisplayFailure(m.Fail(m.FailureValidation, "target is required"))

	require.NoError(t, err)
	assert.NotContains(t, errOut.String(), "tool stderr")
}
