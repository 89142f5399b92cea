// Package controller provides output controllers for displaying
// orchestration results.
package controller

import (
	"os"

	m "mutman.dev/pkg/mutman/internal/model"
)

// UI defines the interface for displaying operation outcomes.
// Implementations can use different output methods (simple text, TUI).
type UI interface {
	// DisplaySummary renders a parsed results summary.
	DisplaySummary(summary m.Summary) error
	// DisplaySurvivors renders the survivor listing.
	DisplaySurvivors(survivors []m.Survivor) error
	// DisplaySuggestion renders the ranked coverage-gap advice.
	DisplaySuggestion(gaps []m.ModuleGap, rendered string) error
	// DisplayPrioritized renders survivors scored by materiality.
	DisplayPrioritized(prioritized []m.PrioritizedSurvivor) error
	// DisplayText prints an opaque status string.
	DisplayText(text string) error
	// DisplayFailure renders a failure outcome with its kind, message
	// and any captured stderr.
	DisplayFailure(outcome m.Outcome) error
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	info, err := f.Stat()

	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
