package cmd

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"mutman.dev/pkg/mutman/internal/controller"
	"mutman.dev/pkg/mutman/internal/domain"
	m "mutman.dev/pkg/mutman/internal/model"
)

var reportOutputFlag string
var reportAgainstFlag string

// reportCmd represents the report command.
var reportCmd = newReportCmd()

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Full session report: summary, survivors and coverage advice",
		Long: `Fetch the results summary and the survivor listing in one go, render
both with the coverage suggestion, and optionally save the report as a
YAML snapshot (-o) or diff it against a previously saved one
(--against).`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui := controller.NewSimpleUI(cmd)
			venv := venvPath()

			// The two tool invocations are independent; fetch them
			// concurrently.
			var summaryOutcome, survivorsOutcome m.Outcome

			group, ctx := errgroup.WithContext(cmd.Context())
			group.Go(func() error {
				summaryOutcome = orchestrator.Results(ctx, venv)
				return nil
			})
			group.Go(func() error {
				survivorsOutcome = orchestrator.Survivors(ctx, venv)
				return nil
			})

			if err := group.Wait(); err != nil {
				return err
			}

			if !summaryOutcome.OK {
				return render(ui, summaryOutcome, nil)
			}

			if !survivorsOutcome.OK {
				return render(ui, survivorsOutcome, nil)
			}

			gaps := domain.RankGaps(survivorsOutcome.Survivors)

			if err := ui.DisplaySummary(*summaryOutcome.Summary); err != nil {
				return err
			}

			if err := ui.DisplaySurvivors(survivorsOutcome.Survivors); err != nil {
				return err
			}

			if err := ui.DisplaySuggestion(gaps, domain.RenderSuggestion(gaps)); err != nil {
				return err
			}

			snapshot := m.NewSnapshot(summaryOutcome.Summary, survivorsOutcome.Survivors, gaps)

			if reportAgainstFlag != "" {
				baseline, err := reportStore.Load(m.Path(reportAgainstFlag))
				if err != nil {
					return err
				}

				diff, err := domain.CompareSnapshots(baseline, snapshot)
				if err != nil {
					return err
				}

				if diff == "" {
					cmd.Println("\nNo survivor changes against baseline.")
				} else {
					cmd.Printf("\nSurvivor changes against baseline:\n%s", diff)
				}
			}

			if reportOutputFlag != "" {
				if err := reportStore.Save(m.Path(reportOutputFlag), snapshot); err != nil {
					return err
				}

				cmd.Printf("\nReport saved to %s\n", reportOutputFlag)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&reportOutputFlag, outputFlagName, "o", "", "save the report snapshot to this YAML file")
	cmd.Flags().StringVar(&reportAgainstFlag, againstFlagName, "", "diff the survivor list against a saved snapshot")

	return cmd
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
