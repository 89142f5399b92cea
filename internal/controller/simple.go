package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "mutman.dev/pkg/mutman/internal/model"
)

// SimpleUI implements UI using cobra Command's Println.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySummary renders the summary counts as a table.
func (s *SimpleUI) DisplaySummary(summary m.Summary) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Outcome", "Mutants"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	table.Append([]string{"Killed", fmt.Sprintf("%d", summary.Killed)})
	table.Append([]string{"Survived", fmt.Sprintf("%d", summary.Survived)})
	table.Append([]string{"Timeout", fmt.Sprintf("%d", summary.Timeout)})
	table.Append([]string{"Suspicious", fmt.Sprintf("%d", summary.Suspicious)})
	table.SetFooter([]string{"Total", fmt.Sprintf("%d", summary.Total)})

	table.Render()

	s.cmd.Printf("\n%s", tableBuffer.String())

	return nil
}

// DisplaySurvivors renders the survivor listing as a table, preserving
// the tool's emission order.
func (s *SimpleUI) DisplaySurvivors(survivors []m.Survivor) error {
	if len(survivors) == 0 {
		s.cmd.Println("No surviving mutants.")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Mutant", "Location"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, survivor := range survivors {
		table.Append([]string{survivor.ID, survivor.Location})
	}

	table.SetFooter([]string{"Survivors", fmt.Sprintf("%d", len(survivors))})
	table.Render()

	s.cmd.Printf("\n%s", tableBuffer.String())

	return nil
}

// DisplaySuggestion prints the rendered suggestion text.
func (s *SimpleUI) DisplaySuggestion(_ []m.ModuleGap, rendered string) error {
	s.cmd.Println(rendered)

	return nil
}

// DisplayPrioritized renders scored survivors, material first.
func (s *SimpleUI) DisplayPrioritized(prioritized []m.PrioritizedSurvivor) error {
	if len(prioritized) == 0 {
		s.cmd.Println("No surviving mutants.")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Score", "Mutant", "Reason"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, entry := range prioritized {
		table.Append([]string{
			fmt.Sprintf("%d", entry.Score),
			entry.Survivor.ID,
			entry.Reason,
		})
	}

	table.Render()

	s.cmd.Printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayText prints an opaque tool status string.
func (s *SimpleUI) DisplayText(text string) error {
	s.cmd.Println(strings.TrimRight(text, "\n"))

	return nil
}

// DisplayFailure prints the failure kind, message and captured stderr.
func (s *SimpleUI) DisplayFailure(outcome m.Outcome) error {
	s.cmd.PrintErrf("error (%s): %s\n", outcome.Kind, outcome.Message)

	if strings.TrimSpace(outcome.Stderr) != "" {
		s.cmd.PrintErrf("\ntool stderr:\n%s\n", strings.TrimRight(outcome.Stderr, "\n"))
	}

	return nil
}
