package cli

import (
	"context"
	"fmt"

	"github.com/mvestberg/phaseplan/internal/cli/formatter"
	"github.com/mvestberg/phaseplan/internal/contract"
	"github.com/spf13/cobra"
)

func newSummaryCmd(app *App) *cobra.Command {
	var studentFlag string

	cmd := &cobra.Command{
		Use:   "summary [phase]",
		Short: "Show progress analytics for one phase or the whole plan",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			student, err := resolveStudent(ctx, app, studentFlag)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				summary, err := app.Progress.OverallSummary(ctx, contract.OverallSummaryRequest{StudentID: student.ID})
				if err != nil {
					return err
				}
				fmt.Print(formatter.FormatOverallSummary(summary))
				return nil
			}

			phase, err := resolvePhase(ctx, app, student.ID, args[0])
			if err != nil {
				return err
			}
			summary, err := app.Progress.PhaseSummary(ctx, contract.PhaseSummaryRequest{PhaseID: phase.ID})
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatPhaseSummary(summary))
			return nil
		},
	}

	cmd.Flags().StringVar(&studentFlag, "student", "", "Student ID prefix or name")

	return cmd
}
