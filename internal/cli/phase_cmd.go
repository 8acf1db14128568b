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

func newPhaseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phase",
		Short: "Manage the phases of a student's plan",
	}

	cmd.AddCommand(
		newPhaseListCmd(app),
		newPhaseAddCmd(app),
		newPhaseRemoveCmd(app),
	)

	return cmd
}

func newPhaseListCmd(app *App) *cobra.Command {
	var studentFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active phases",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			student, err := resolveStudent(ctx, app, studentFlag)
			if err != nil {
				return err
			}
			phases, err := app.Phases.ListPhases(ctx, student.ID)
			if err != nil {
				return err
			}
			if len(phases) == 0 {
				fmt.Println(formatter.Dim("No phases yet."))
				return nil
			}

			rows := make([][]string, 0, len(phases))
			for _, p := range phases {
				rows = append(rows, []string{
					formatter.TruncID(p.ID),
					fmt.Sprintf("%d", p.OrderIndex),
					p.Name,
					formatter.FullDate(p.Deadline),
				})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "#", "Phase", "Deadline"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&studentFlag, "student", "", "Student ID prefix or name")

	return cmd
}

func newPhaseAddCmd(app *App) *cobra.Command {
	var studentFlag, deadlineFlag string

	cmd := &cobra.Command{
		Use:   "add <type>",
		Short: "Append a phase to the plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			student, err := resolveStudent(ctx, app, studentFlag)
			if err != nil {
				return err
			}
			deadline, err := time.Parse(domain.DateLayout, deadlineFlag)
			if err != nil {
				return fmt.Errorf("parsing --deadline: use YYYY-MM-DD")
			}

			phase, err := app.Phases.AddPhase(ctx, contract.AddPhaseRequest{
				StudentID: student.ID,
				Type:      domain.PhaseType(args[0]),
				Deadline:  deadline,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Added %s %s\n", formatter.Bold(phase.Name),
				formatter.Dim(fmt.Sprintf("(due %s)", formatter.FullDate(phase.Deadline))))
			return nil
		},
	}

	cmd.Flags().StringVar(&studentFlag, "student", "", "Student ID prefix or name")
	cmd.Flags().StringVar(&deadlineFlag, "deadline", "", "Phase deadline (YYYY-MM-DD)")
	cmd.MarkFlagRequired("deadline")

	return cmd
}

func newPhaseRemoveCmd(app *App) *cobra.Command {
	var studentFlag string

	cmd := &cobra.Command{
		Use:   "remove <phase>",
		Short: "Remove a phase together with its tasks and history",
		Args:  cobra.ExactArgs(1),
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
			if err := app.Phases.RemovePhase(ctx, phase.ID); err != nil {
				return err
			}
			fmt.Printf("Removed %s\n", formatter.Bold(phase.Name))
			return nil
		},
	}

	cmd.Flags().StringVar(&studentFlag, "student", "", "Student ID prefix or name")

	return cmd
}
