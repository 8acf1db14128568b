package importer

import (
	"fmt"
	"time"

	"github.com/mvestberg/phaseplan/internal/domain"
)

var validIntensities = map[string]bool{"none": true, "light": true, "heavy": true}

var validWeekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// ValidatePlan checks the plan for errors before conversion. Returns every
// validation error found, not just the first.
func ValidatePlan(plan *Plan) []error {
	var errs []error

	errs = append(errs, validateStudent(&plan.Student)...)
	errs = append(errs, validateWorkDays(plan.WorkDays)...)
	errs = append(errs, validatePhases(plan.Phases)...)

	return errs
}

func validateStudent(s *StudentPlan) []error {
	var errs []error

	if s.Name == "" {
		errs = append(errs, fmt.Errorf("student.name is required"))
	}
	if s.ThesisDeadline != nil && *s.ThesisDeadline != "" {
		if _, err := time.Parse(domain.DateLayout, *s.ThesisDeadline); err != nil {
			errs = append(errs, fmt.Errorf("student.thesis_deadline: invalid date format %q (expected YYYY-MM-DD)", *s.ThesisDeadline))
		}
	}
	return errs
}

func validateWorkDays(days map[string]string) []error {
	var errs []error

	if len(days) == 0 {
		errs = append(errs, fmt.Errorf("work_days is required"))
		return errs
	}

	hasCapacity := false
	for day, intensity := range days {
		if !validWeekdays[day] {
			errs = append(errs, fmt.Errorf("work_days: unknown weekday %q", day))
		}
		if !validIntensities[intensity] {
			errs = append(errs, fmt.Errorf("work_days.%s: invalid intensity %q", day, intensity))
			continue
		}
		if intensity != "none" {
			hasCapacity = true
		}
	}
	if !hasCapacity {
		errs = append(errs, fmt.Errorf("work_days: at least one day must have light or heavy intensity"))
	}
	return errs
}

func validatePhases(phases []PhasePlan) []error {
	var errs []error

	if len(phases) == 0 {
		errs = append(errs, fmt.Errorf("phases: at least one phase is required"))
		return errs
	}

	seen := make(map[string]bool)
	for i, p := range phases {
		prefix := fmt.Sprintf("phases[%d]", i)

		if p.Type == "" {
			errs = append(errs, fmt.Errorf("%s.type is required", prefix))
		} else if !domain.ValidPhaseTypes[p.Type] {
			errs = append(errs, fmt.Errorf("%s.type: invalid value %q", prefix, p.Type))
		} else if seen[p.Type] {
			errs = append(errs, fmt.Errorf("%s.type: duplicate phase %q", prefix, p.Type))
		} else {
			seen[p.Type] = true
		}

		if p.Deadline == "" {
			errs = append(errs, fmt.Errorf("%s.deadline is required", prefix))
		} else if _, err := time.Parse(domain.DateLayout, p.Deadline); err != nil {
			errs = append(errs, fmt.Errorf("%s.deadline: invalid date format %q (expected YYYY-MM-DD)", prefix, p.Deadline))
		}
	}
	return errs
}
