package cli

import (
	"context"
	"fmt"

	"github.com/mvestberg/phaseplan/internal/cli/formatter"
	"github.com/mvestberg/phaseplan/internal/contract"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var studentFlag string

	cmd := &cobra.Command{
		Use:   "plan [phase]",
		Short: "Generate the task schedule for a phase",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			student, err := resolveStudent(ctx, app, studentFlag)
			if err != nil {
				return err
			}

			phaseID, err := pickPhase(ctx, app, student.ID, args, "Which phase should I schedule?")
			if err != nil {
				return err
			}

			result, err := app.Schedules.Generate(ctx, contract.GenerateScheduleRequest{PhaseID: phaseID})
			if err != nil {
				return err
			}

			fmt.Printf("Scheduled %s for %s: %s through %s\n",
				formatter.Bold(fmt.Sprintf("%d tasks", result.TasksCreated)),
				result.PhaseName,
				formatter.FullDate(result.FirstDate),
				formatter.FullDate(result.LastDate))
			return nil
		},
	}

	cmd.Flags().StringVar(&studentFlag, "student", "", "Student ID prefix or name")

	return cmd
}

// pickPhase resolves the phase argument, falling back to a selection wizard
// when interactive and no argument was given.
func pickPhase(ctx context.Context, app *App, studentID string, args []string, title string) (string, error) {
	if len(args) > 0 {
		phase, err := resolvePhase(ctx, app, studentID, args[0])
		if err != nil {
			return "", err
		}
		return phase.ID, nil
	}

	if !app.interactive() {
		return "", fmt.Errorf("phase argument required (ID prefix, type, or name)")
	}

	phases, err := app.Phases.ListPhases(ctx, studentID)
	if err != nil {
		return "", err
	}
	if len(phases) == 0 {
		return "", fmt.Errorf("no phases yet; run `phaseplan onboard` or `phaseplan phase add`")
	}

	var phaseID string
	if err := wizardSelectPhase(phases, title, &phaseID).Run(); err != nil {
		return "", err
	}
	return phaseID, nil
}
