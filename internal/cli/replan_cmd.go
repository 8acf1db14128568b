package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/mvestberg/phaseplan/internal/cli/formatter"
	"github.com/mvestberg/phaseplan/internal/contract"
	"github.com/mvestberg/phaseplan/internal/domain"
	"github.com/spf13/cobra"
)

func newReplanCmd(app *App) *cobra.Command {
	var studentFlag string

	cmd := &cobra.Command{
		Use:   "replan <phase> <new-deadline>",
		Short: "Move a phase deadline and reflow its remaining tasks",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			student, err := resolveStudent(ctx, app, studentFlag)
			if err != nil {
				return err
			}
			phase, err := resolvePhase(ctx, app, student.ID, args[0])
			if err != nil {
				return err
			}
			newDeadline, err := time.Parse(domain.DateLayout, args[1])
			if err != nil {
				return fmt.Errorf("parsing new deadline: use YYYY-MM-DD")
			}

			result, err := app.Coordinator.RedistributeAfterDeadlineChange(ctx, contract.RedistributeRequest{
				PhaseID:     phase.ID,
				NewDeadline: newDeadline,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Deadline updated: %s now due %s, rescheduled %d task(s)\n",
				formatter.Bold(result.PhaseName),
				formatter.FullDate(result.NewDeadline),
				result.TasksMoved)
			for _, w := range result.Warnings {
				fmt.Println(formatter.StyleYellow.Render("⚠ " + w))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&studentFlag, "student", "", "Student ID prefix or name")

	return cmd
}
