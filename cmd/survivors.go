package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"mutman.dev/pkg/mutman/internal/controller"
)

var survivorsInteractiveFlag bool

// survivorsCmd represents the survivors command.
var survivorsCmd = newSurvivorsCmd()

func newSurvivorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "survivors",
		Short: "List surviving mutants from the last run",
		Long: `List the mutants the test suite failed to catch, in the order the
mutation tool reported them. With --interactive and a terminal, opens
a scrollable browser.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui := survivorsUI(cmd)
			outcome := orchestrator.Survivors(cmd.Context(), venvPath())

			return render(ui, outcome, func() error {
				return ui.DisplaySurvivors(outcome.Survivors)
			})
		},
	}

	cmd.Flags().BoolVarP(&survivorsInteractiveFlag, interactiveFlagName, "i", false, "browse survivors in an interactive view")

	return cmd
}

func survivorsUI(cmd *cobra.Command) controller.UI {
	simple := controller.NewSimpleUI(cmd)

	if survivorsInteractiveFlag && controller.IsTTY(os.Stdout) {
		return controller.NewTUI(simple, cmd.OutOrStdout())
	}

	return simple
}

func init() {
	rootCmd.AddCommand(survivorsCmd)
}
