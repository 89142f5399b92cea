package controller

import (
	"bytes"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "mutman.dev/pkg/mutman/internal/model"
)

func newTestTUI() (*TUI, *bytes.Buffer) {
	cmd := &cobra.Command{}
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)

	return NewTUI(NewSimpleUI(cmd), out), out
}

func TestTUIDisplaySurvivors_ShortListingPrintsDirectly(t *testing.T) {
	tui, out := newTestTUI()

	err := tui.DisplaySurvivors([]m.Survivor{
		{ID: "pkg.a:1"},
		{ID: "pkg.b:2"},
	})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Surviving mutants (2)")
	assert.Contains(t, out.String(), "pkg.a:1")
	assert.Contains(t, out.String(), "pkg.b:2")
}

func TestTUIDisplaySurvivors_EmptyListingFallsBack(t *testing.T) {
	tui, out := newTestTUI()

	err := tui.DisplaySurvivors(nil)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "No surviving mutants.")
}

func TestTUIDelegatesPlainRendering(t *testing.T) {
	tui, out := newTestTUI()

	require.NoError(t, tui.DisplayText("done"))
	require.NoError(t, tui.DisplaySummary(m.Summary{Total: 1, Killed: 1}))
	require.NoError(t, tui.DisplaySuggestion(nil, "nothing to suggest"))

	assert.Contains(t, out.String(), "done")
	assert.Contains(t, out.String(), "nothing to suggest")
}

func TestSurvivorBrowser_QuitKeys(t *testing.T) {
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			browser := newSurvivorBrowser([]m.Survivor{{ID: "pkg.a:1"}})

			msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
			switch key {
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			case "ctrl+c":
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			}

			model, cmd := browser.Update(msg)

			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
			assert.Empty(t, model.View())
		})
	}
}

func TestSurvivorBrowser_ResizeAdjustsViewport(t *testing.T) {
	browser := newSurvivorBrowser([]m.Survivor{{ID: "pkg.a:1"}})

	model, _ := browser.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	resized, ok := model.(survivorBrowser)
	require.True(t, ok)
	assert.Equal(t, 120, resized.viewport.Width)
	assert.Equal(t, 36, resized.viewport.Height)
}

func TestSurvivorBrowser_ViewListsEveryMutant(t *testing.T) {
	survivors := make([]m.Survivor, 5)
	for i := range survivors {
		survivors[i] = m.Survivor{ID: fmt.Sprintf("pkg.mod:%d", i+1)}
	}

	browser := newSurvivorBrowser(survivors)

	view := browser.View()

	assert.Contains(t, view, "Surviving mutants (5)")
	assert.Contains(t, view, "pkg.mod:1")
	assert.Contains(t, view, "q quit")
}

func TestSurvivorBrowser_RowsIncludeDiffWhenPresent(t *testing.T) {
	browser := newSurvivorBrowser([]m.Survivor{
		{ID: "pkg.a:1", Diff: "-x = 1\n+x = 2"},
	})

	assert.Contains(t, browser.content(), "+x = 2")
}
