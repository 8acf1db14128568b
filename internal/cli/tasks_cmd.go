package cli

import (
	"context"
	"fmt"

	"github.com/mvestberg/phaseplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	var studentFlag string
	var showAll bool

	cmd := &cobra.Command{
		Use:   "tasks [phase]",
		Short: "List the scheduled tasks of a phase",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			student, err := resolveStudent(ctx, app, studentFlag)
			if err != nil {
				return err
			}
			phaseID, err := pickPhase(ctx, app, student.ID, args, "Which phase's tasks?")
			if err != nil {
				return err
			}

			tasks, err := app.Schedules.ListTasks(ctx, phaseID)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println(formatter.Dim("No tasks yet. Run `phaseplan plan` to generate a schedule."))
				return nil
			}

			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				if t.Completed && !showAll {
					continue
				}
				rows = append(rows, []string{
					formatter.TaskCheckbox(t.Completed),
					formatter.TruncID(t.ID),
					formatter.ShortDate(t.Date),
					formatter.Truncate(t.Description, 56),
					formatter.PriorityPill(t.Priority),
					formatter.IntensityBadge(t.DayIntensity),
				})
			}
			if len(rows) == 0 {
				fmt.Println(formatter.Dim("All tasks done. Try --all to include completed ones."))
				return nil
			}
			fmt.Print(formatter.RenderTable([]string{"", "ID", "Date", "Task", "Priority", "Day"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&studentFlag, "student", "", "Student ID prefix or name")
	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "Include completed tasks")

	return cmd
}
