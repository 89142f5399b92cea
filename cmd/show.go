package cmd

import (
	"github.com/spf13/cobra"
	"mutman.dev/pkg/mutman/internal/controller"
)

// showCmd represents the show command.
var showCmd = newShowCmd()

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <mutation-id>",
		Short: "Show the code diff for a specific mutant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ui := controller.NewSimpleUI(cmd)
			outcome := orchestrator.Show(cmd.Context(), args[0], venvPath())

			return render(ui, outcome, func() error {
				return ui.DisplayText(outcome.Text)
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}
