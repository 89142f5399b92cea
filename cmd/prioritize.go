package cmd

import (
	"github.com/spf13/cobra"
	"mutman.dev/pkg/mutman/internal/controller"
)

// prioritizeCmd represents the prioritize command.
var prioritizeCmd = newPrioritizeCmd()

func newPrioritizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prioritize",
		Short: "Score surviving mutants by likely materiality",
		Long: `Score survivors so mutants touching only logging or debug output sink
to the bottom and material logic rises to the top.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui := controller.NewSimpleUI(cmd)
			outcome := orchestrator.PrioritizeSurvivors(cmd.Context(), venvPath())

			return render(ui, outcome, func() error {
				return ui.DisplayPrioritized(outcome.Prioritized)
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(prioritizeCmd)
}
