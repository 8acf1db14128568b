package importer

import (
	"fmt"
	"time"

	"github.com/mvestberg/phaseplan/internal/contract"
	"github.com/mvestberg/phaseplan/internal/domain"
)

// Convert transforms a validated plan into an onboarding request. Call
// ValidatePlan first; Convert assumes the plan is structurally valid.
// Chronology and future-deadline rules are enforced by the service.
func Convert(plan *Plan) (*contract.OnboardRequest, error) {
	prefs := make(domain.WorkDayPreferences, len(plan.WorkDays))
	for day, intensity := range plan.WorkDays {
		prefs[day] = domain.Intensity(intensity)
	}

	var thesis *time.Time
	if plan.Student.ThesisDeadline != nil && *plan.Student.ThesisDeadline != "" {
		t, err := time.Parse(domain.DateLayout, *plan.Student.ThesisDeadline)
		if err != nil {
			return nil, fmt.Errorf("parsing thesis_deadline: %w", err)
		}
		thesis = &t
	}

	selections := make([]contract.PhaseSelection, 0, len(plan.Phases))
	for _, p := range plan.Phases {
		deadline, err := time.Parse(domain.DateLayout, p.Deadline)
		if err != nil {
			return nil, fmt.Errorf("parsing deadline for %q: %w", p.Type, err)
		}
		selections = append(selections, contract.PhaseSelection{
			Type:     domain.PhaseType(p.Type),
			Deadline: deadline,
		})
	}

	return &contract.OnboardRequest{
		StudentName:    plan.Student.Name,
		Preferences:    prefs,
		ThesisDeadline: thesis,
		Phases:         selections,
	}, nil
}
