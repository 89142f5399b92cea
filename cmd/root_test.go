package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mutman.dev/pkg/mutman/internal/controller"
	m "mutman.dev/pkg/mutman/internal/model"
)

func TestRootCmd_ShowsHelpWithoutArguments(t *testing.T) {
	root := newRootCmd()

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "mutman")
}

func TestRootCmd_RegistersAllSubcommands(t *testing.T) {
	expected := []string{
		"run", "results", "survivors", "suggest", "prioritize",
		"rerun", "show", "clean", "report", "serve", "init", "version",
	}

	registered := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		registered[sub.Name()] = true
	}

	for _, name := range expected {
		assert.True(t, registered[name], "missing subcommand %q", name)
	}
}

func TestVenvPath_ReadsEnvironment(t *testing.T) {
	t.Setenv("MUTMAN_VENV", "/opt/project/.venv")

	assert.Equal(t, "/opt/project/.venv", venvPath())
}

func TestRender_FailureReturnsSentinel(t *testing.T) {
	ui, _, errOut := newCaptureRenderUI()

	err := render(ui, m.Fail(m.FailureValidation, "target is required"), nil)

	require.ErrorIs(t, err, errOperationFailed)
	assert.Contains(t, errOut.String(), "target is required")
}

func TestRender_SuccessWithoutDisplay(t *testing.T) {
	ui, _, _ := newCaptureRenderUI()

	assert.NoError(t, render(ui, m.SuccessText("ok"), nil))
}

func TestRender_SuccessInvokesDisplay(t *testing.T) {
	ui, out, _ := newCaptureRenderUI()

	err := render(ui, m.SuccessText("ok"), func() error {
		return ui.DisplayText("rendered")
	})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "rendered")
}

func newCaptureRenderUI() (controller.UI, *bytes.Buffer, *bytes.Buffer) {
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	return controller.NewSimpleUI(cmd), out, errOut
}
