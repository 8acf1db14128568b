package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	var studentFlag string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Interactive dashboard cycling status, timeline, and path views",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("dashboard needs a terminal")
			}

			ctx := context.Background()
			student, err := resolveStudent(ctx, app, studentFlag)
			if err != nil {
				return err
			}

			program := tea.NewProgram(newDashboardModel(app, student.ID), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("running dashboard: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&studentFlag, "student", "", "Student ID prefix or name")

	return cmd
}
