package cmd

import (
	"github.com/spf13/cobra"
	"mutman.dev/pkg/mutman/internal/controller"
)

// suggestCmd represents the suggest command.
var suggestCmd = newSuggestCmd()

func newSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Rank modules most in need of additional test coverage",
		Long: `Group surviving mutants by module and rank the groups by survivor
count, so test-writing effort goes where it pays off most.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui := controller.NewSimpleUI(cmd)
			outcome := orchestrator.Suggest(cmd.Context(), venvPath())

			return render(ui, outcome, func() error {
				return ui.DisplaySuggestion(outcome.Gaps, outcome.Text)
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}
