package cli

import (
	"context"
	"fmt"

	"github.com/mvestberg/phaseplan/internal/cli/formatter"
	"github.com/mvestberg/phaseplan/internal/contract"
	"github.com/mvestberg/phaseplan/internal/domain"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	var studentFlag, phaseFlag, note string

	cmd := &cobra.Command{
		Use:   "log [task-id...]",
		Short: "Mark tasks complete and record progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			student, err := resolveStudent(ctx, app, studentFlag)
			if err != nil {
				return err
			}

			var phaseID string
			var taskIDs []string
			if len(args) > 0 {
				phaseID, taskIDs, err = resolveTaskArgs(ctx, app, student.ID, phaseFlag, args)
			} else {
				phaseID, taskIDs, err = logWizard(ctx, app, student.ID, phaseFlag)
			}
			if err != nil {
				return err
			}

			result, err := app.Progress.LogProgress(ctx, contract.LogProgressRequest{
				PhaseID: phaseID,
				TaskIDs: taskIDs,
				Note:    note,
			})
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatLogResult(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&studentFlag, "student", "", "Student ID prefix or name")
	cmd.Flags().StringVar(&phaseFlag, "phase", "", "Phase ID prefix, type, or name")
	cmd.Flags().StringVarP(&note, "note", "n", "", "Note to attach to the progress entry")

	return cmd
}

// resolveTaskArgs expands task ID prefixes to full IDs within one phase. The
// phase comes from --phase, or from the unique phase owning the first prefix.
func resolveTaskArgs(ctx context.Context, app *App, studentID, phaseFlag string, args []string) (string, []string, error) {
	var phaseIDs []string
	if phaseFlag != "" {
		phase, err := resolvePhase(ctx, app, studentID, phaseFlag)
		if err != nil {
			return "", nil, err
		}
		phaseIDs = []string{phase.ID}
	} else {
		phases, err := app.Phases.ListPhases(ctx, studentID)
		if err != nil {
			return "", nil, err
		}
		for _, p := range phases {
			phaseIDs = append(phaseIDs, p.ID)
		}
	}

	for _, phaseID := range phaseIDs {
		tasks, err := app.Schedules.ListTasks(ctx, phaseID)
		if err != nil {
			return "", nil, err
		}
		ids, ok := matchTaskPrefixes(tasks, args)
		if ok {
			return phaseID, ids, nil
		}
	}
	return "", nil, fmt.Errorf("no single phase contains all of the given task IDs")
}

func matchTaskPrefixes(tasks []*domain.Task, prefixes []string) ([]string, bool) {
	ids := make([]string, 0, len(prefixes))
	for _, prefix := range prefixes {
		found := ""
		for _, t := range tasks {
			if len(t.ID) >= len(prefix) && t.ID[:len(prefix)] == prefix {
				if found != "" {
					return nil, false // ambiguous prefix
				}
				found = t.ID
			}
		}
		if found == "" {
			return nil, false
		}
		ids = append(ids, found)
	}
	return ids, true
}

// logWizard selects the phase and tasks interactively.
func logWizard(ctx context.Context, app *App, studentID, phaseFlag string) (string, []string, error) {
	if !app.interactive() {
		return "", nil, fmt.Errorf("task IDs required (or run in a terminal for the wizard)")
	}

	var phaseID string
	if phaseFlag != "" {
		phase, err := resolvePhase(ctx, app, studentID, phaseFlag)
		if err != nil {
			return "", nil, err
		}
		phaseID = phase.ID
	} else {
		var err error
		phaseID, err = pickPhase(ctx, app, studentID, nil, "Which phase did you work on?")
		if err != nil {
			return "", nil, err
		}
	}

	tasks, err := app.Schedules.ListTasks(ctx, phaseID)
	if err != nil {
		return "", nil, err
	}

	var taskIDs []string
	form := wizardSelectTasks(tasks, &taskIDs)
	if form == nil {
		return "", nil, fmt.Errorf("no incomplete tasks in that phase")
	}
	if err := form.Run(); err != nil {
		return "", nil, err
	}
	if len(taskIDs) == 0 {
		return "", nil, fmt.Errorf("no tasks selected")
	}
	return phaseID, taskIDs, nil
}
