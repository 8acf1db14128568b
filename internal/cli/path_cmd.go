package cli

import (
	"context"
	"fmt"

	"github.com/mvestberg/phaseplan/internal/cli/formatter"
	"github.com/mvestberg/phaseplan/internal/contract"
	"github.com/spf13/cobra"
)

func newPathCmd(app *App) *cobra.Command {
	var studentFlag string

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Show the critical path through the phases",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			student, err := resolveStudent(ctx, app, studentFlag)
			if err != nil {
				return err
			}

			resp, err := app.Coordinator.CriticalPath(ctx, contract.CriticalPathRequest{StudentID: student.ID})
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatCriticalPath(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&studentFlag, "student", "", "Student ID prefix or name")

	return cmd
}
