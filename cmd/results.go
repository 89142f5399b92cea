package cmd

import (
	"github.com/spf13/cobra"
	"mutman.dev/pkg/mutman/internal/controller"
)

// resultsCmd represents the results command.
var resultsCmd = newResultsCmd()

func newResultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "results",
		Short: "Show the summary of the last mutation run",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui := controller.NewSimpleUI(cmd)
			outcome := orchestrator.Results(cmd.Context(), venvPath())

			return render(ui, outcome, func() error {
				return ui.DisplaySummary(*outcome.Summary)
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(resultsCmd)
}
