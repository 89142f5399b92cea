package cmd

import (
	"github.com/spf13/cobra"
	"mutman.dev/pkg/mutman/internal/controller"
)

// cleanCmd represents the clean command.
var cleanCmd = newCleanCmd()

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Delete the persisted mutation cache",
		Long: `Delete the mutation tool's on-disk cache. Irreversible: the next run
starts from scratch. No confirmation is asked.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui := controller.NewSimpleUI(cmd)
			outcome := orchestrator.Clean(cmd.Context(), venvPath())

			return render(ui, outcome, func() error {
				return ui.DisplayText(outcome.Text)
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
