package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/mvestberg/phaseplan/internal/domain"
)

// resolveStudent resolves the student a command operates on:
//   - the --student flag value if given (ID prefix or name),
//   - otherwise the configured default student,
//   - otherwise the sole student in the database.
func resolveStudent(ctx context.Context, app *App, flagValue string) (*domain.Student, error) {
	input := flagValue
	if input == "" {
		input = app.DefaultStudent
	}

	students, err := app.Phases.ListStudents(ctx)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, fmt.Errorf("no students yet; run `phaseplan onboard` first")
	}

	if input == "" {
		if len(students) == 1 {
			return students[0], nil
		}
		names := make([]string, len(students))
		for i, s := range students {
			names[i] = s.Name
		}
		return nil, fmt.Errorf("multiple students found (%s); pass --student or set PHASEPLAN_STUDENT", strings.Join(names, ", "))
	}

	for _, s := range students {
		if strings.HasPrefix(s.ID, input) || strings.EqualFold(s.Name, input) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("student %q not found", input)
}

// resolvePhase resolves a phase identifier for a student: an ID prefix, a
// phase type string, or a phase name (case-insensitive).
func resolvePhase(ctx context.Context, app *App, studentID, input string) (*domain.Phase, error) {
	phases, err := app.Phases.ListPhases(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if len(phases) == 0 {
		return nil, fmt.Errorf("no phases yet; run `phaseplan onboard` or `phaseplan phase add`")
	}

	for _, p := range phases {
		if strings.HasPrefix(p.ID, input) ||
			strings.EqualFold(string(p.Type), input) ||
			strings.EqualFold(p.Name, input) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("phase %q not found (use an ID prefix, type, or name)", input)
}
