package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "mutman.dev/pkg/mutman/internal/model"
)

const (
	tuiDefaultWidth  = 80
	tuiDefaultHeight = 24
	// Lists shorter than this are printed directly without entering
	// the alternate screen.
	tuiPaginationThreshold = 20
)

var (
	tuiTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			PaddingLeft(1)

	tuiRowStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	tuiHelpStyle = lipgloss.NewStyle().
			Faint(true).
			PaddingLeft(1)
)

// TUI implements UI with an interactive survivor browser. Everything
// except the survivor listing falls back to plain text output.
type TUI struct {
	simple SimpleUI
	output io.Writer
}

// NewTUI creates a TUI that writes to output and delegates plain
// rendering to fallback.
func NewTUI(fallback *SimpleUI, output io.Writer) *TUI {
	return &TUI{simple: *fallback, output: output}
}

// DisplaySummary delegates to the plain renderer.
func (t *TUI) DisplaySummary(summary m.Summary) error {
	return t.simple.DisplaySummary(summary)
}

// DisplaySurvivors opens a scrollable browser over the survivor
// listing. Short listings are printed directly.
func (t *TUI) DisplaySurvivors(survivors []m.Survivor) error {
	if len(survivors) == 0 {
		return t.simple.DisplaySurvivors(survivors)
	}

	browser := newSurvivorBrowser(survivors)

	if len(survivors) <= tuiPaginationThreshold {
		_, err := fmt.Fprint(t.output, browser.content())
		return err
	}

	program := tea.NewProgram(browser, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplaySuggestion delegates to the plain renderer.
func (t *TUI) DisplaySuggestion(gaps []m.ModuleGap, rendered string) error {
	return t.simple.DisplaySuggestion(gaps, rendered)
}

// DisplayPrioritized delegates to the plain renderer.
func (t *TUI) DisplayPrioritized(prioritized []m.PrioritizedSurvivor) error {
	return t.simple.DisplayPrioritized(prioritized)
}

// DisplayText delegates to the plain renderer.
func (t *TUI) DisplayText(text string) error {
	return t.simple.DisplayText(text)
}

// DisplayFailure delegates to the plain renderer.
func (t *TUI) DisplayFailure(outcome m.Outcome) error {
	return t.simple.DisplayFailure(outcome)
}

// survivorBrowser is the Bubble Tea model for scrolling through
// surviving mutants.
type survivorBrowser struct {
	survivors []m.Survivor
	viewport  viewport.Model
	quitting  bool
}

func newSurvivorBrowser(survivors []m.Survivor) survivorBrowser {
	vp := viewport.New(tuiDefaultWidth, tuiDefaultHeight-4)

	browser := survivorBrowser{
		survivors: survivors,
		viewport:  vp,
	}
	browser.viewport.SetContent(browser.rows())

	return browser
}

// Init implements tea.Model.
func (b survivorBrowser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b survivorBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			b.quitting = true
			return b, tea.Quit
		}

	case tea.WindowSizeMsg:
		b.viewport.Width = msg.Width
		b.viewport.Height = msg.Height - 4
	}

	var cmd tea.Cmd
	b.viewport, cmd = b.viewport.Update(msg)

	return b, cmd
}

// View implements tea.Model.
func (b survivorBrowser) View() string {
	if b.quitting {
		return ""
	}

	var view strings.Builder

	view.WriteString(b.header())
	view.WriteString("\n")
	view.WriteString(b.viewport.View())
	view.WriteString("\n")
	view.WriteString(tuiHelpStyle.Render("↑/↓ scroll · q quit"))
	view.WriteString("\n")

	return view.String()
}

func (b survivorBrowser) header() string {
	return tuiTitleStyle.Render(fmt.Sprintf("Surviving mutants (%d)", len(b.survivors)))
}

func (b survivorBrowser) rows() string {
	var rows strings.Builder

	for i, survivor := range b.survivors {
		rows.WriteString(tuiRowStyle.Render(fmt.Sprintf("%3d. %s", i+1, survivor.ID)))
		rows.WriteString("\n")

		if survivor.Diff != "" {
			rows.WriteString(tuiRowStyle.Render(survivor.Diff))
			rows.WriteString("\n")
		}
	}

	return rows.String()
}

// content renders the full listing for the non-interactive fast path.
func (b survivorBrowser) content() string {
	return b.header() + "\n" + b.rows()
}
