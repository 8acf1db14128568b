package cli

import (
	"context"
	"fmt"

	"github.com/mvestberg/phaseplan/internal/cli/formatter"
	"github.com/mvestberg/phaseplan/internal/contract"
	"github.com/spf13/cobra"
)

func newTimelineCmd(app *App) *cobra.Command {
	var studentFlag string

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show the integrated cross-phase timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			student, err := resolveStudent(ctx, app, studentFlag)
			if err != nil {
				return err
			}

			resp, err := app.Coordinator.Timeline(ctx, contract.TimelineRequest{StudentID: student.ID})
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatTimeline(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&studentFlag, "student", "", "Student ID prefix or name")

	return cmd
}
