package cmd

import (
	"github.com/spf13/cobra"
	"mutman.dev/pkg/mutman/internal/controller"
)

// rerunCmd represents the rerun command.
var rerunCmd = newRerunCmd()

func newRerunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rerun [mutation-id]",
		Short: "Rerun mutation testing on survivors",
		Long: `Rerun the mutation tool on a specific surviving mutant, or on every
current survivor when no mutation id is given. Useful after adding
tests to check whether the new assertions kill them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mutationID := ""
			if len(args) == 1 {
				mutationID = args[0]
			}

			ui := controller.NewSimpleUI(cmd)
			outcome := orchestrator.Rerun(cmd.Context(), mutationID, venvPath())

			return render(ui, outcome, func() error {
				return ui.DisplayText(outcome.Text)
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(rerunCmd)
}
