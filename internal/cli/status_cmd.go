package cli

import (
	"context"
	"fmt"

	"github.com/mvestberg/phaseplan/internal/cli/formatter"
	"github.com/mvestberg/phaseplan/internal/contract"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var studentFlag string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show per-phase progress and pacing",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			student, err := resolveStudent(ctx, app, studentFlag)
			if err != nil {
				return err
			}

			resp, err := app.Coordinator.Status(ctx, contract.StatusRequest{StudentID: student.ID})
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatStatus(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&studentFlag, "student", "", "Student ID prefix or name")

	return cmd
}
