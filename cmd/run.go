package cmd

import (
	"github.com/spf13/cobra"
	"mutman.dev/pkg/mutman/internal/controller"
)

// DefaultTestCommand is the test runner forwarded to the mutation tool
// when none is given.
const DefaultTestCommand = "pytest"

var runTestCommandFlag string
var runOptionsFlag string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <target>",
		Short: "Run a full mutation testing session",
		Long: `Run mutation testing on the given module or package. The session can
take a while; its timeout is governed by the run.timeout config key.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ui := controller.NewSimpleUI(cmd)
			outcome := orchestrator.Run(cmd.Context(), args[0], runTestCommandFlag, runOptionsFlag, venvPath())

			return render(ui, outcome, func() error {
				return ui.DisplayText(outcome.Text)
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&runTestCommandFlag, "test-command", "t", DefaultTestCommand, "test runner forwarded to the mutation tool")
	cmd.Flags().StringVar(&runOptionsFlag, "options", "", "additional command-line options passed through to the tool")
}
