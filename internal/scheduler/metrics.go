package scheduler

import (
	"math"
	"time"

	"github.com/mvestberg/phaseplan/internal/domain"
)

// PhaseMetrics holds the computed schedule metrics for one phase.
type PhaseMetrics struct {
	PhaseID             string
	PhaseName           string
	StartDate           time.Time
	Deadline            time.Time
	TotalTasks          int
	CompletedTasks      int
	RemainingTasks      int
	ProgressPct         float64
	DaysRemaining       int
	RequiredTasksPerDay float64
	Criticality         domain.Criticality
	OnTrack             bool
	BufferDays          int
}

// ComputePhaseMetrics calculates metrics for every phase. Phases must be in
// order-index order; tasksByPhase maps phase ID to its full task list.
func ComputePhaseMetrics(phases []*domain.Phase, tasksByPhase map[string][]*domain.Task, thesisDeadline *time.Time, today time.Time) []PhaseMetrics {
	metrics := make([]PhaseMetrics, 0, len(phases))
	for _, phase := range phases {
		tasks := tasksByPhase[phase.ID]

		total := len(tasks)
		completed := 0
		for _, task := range tasks {
			if task.Completed {
				completed++
			}
		}
		remaining := total - completed

		var progressPct float64
		if total > 0 {
			progressPct = float64(completed) / float64(total) * 100
		}

		daysRemaining := phase.DaysRemaining(today)

		var required float64
		if daysRemaining > 0 && remaining > 0 {
			workDays := CountWorkDays(today, phase.Deadline)
			if workDays > 0 {
				required = float64(remaining) / float64(workDays)
			} else {
				required = math.Inf(1)
			}
		}

		metrics = append(metrics, PhaseMetrics{
			PhaseID:             phase.ID,
			PhaseName:           phase.Name,
			StartDate:           EstimateStartDate(phase, phases, today),
			Deadline:            domain.DateOnly(phase.Deadline),
			TotalTasks:          total,
			CompletedTasks:      completed,
			RemainingTasks:      remaining,
			ProgressPct:         progressPct,
			DaysRemaining:       daysRemaining,
			RequiredTasksPerDay: required,
			Criticality:         ComputeCriticality(phase, tasks, today),
			OnTrack:             IsOnTrack(phase, progressPct, daysRemaining, today),
			BufferDays:          BufferDays(phase, phases, thesisDeadline),
		})
	}
	return metrics
}

// ComputeCriticality derives a phase's urgency level from time remaining and
// the gap between actual and expected progress. A phase with no tasks is LOW.
func ComputeCriticality(phase *domain.Phase, tasks []*domain.Task, today time.Time) domain.Criticality {
	if len(tasks) == 0 {
		return domain.CriticalityLow
	}

	daysRemaining := phase.DaysRemaining(today)
	if daysRemaining <= 3 {
		return domain.CriticalityCritical
	}
	if daysRemaining <= 7 {
		return domain.CriticalityHigh
	}

	completed := 0
	for _, task := range tasks {
		if task.Completed {
			completed++
		}
	}
	progressPct := float64(completed) / float64(len(tasks)) * 100

	// Rough expected-progress estimate over a nominal 30-day runway.
	expected := math.Max(0, 100-float64(daysRemaining)/30*100)
	switch {
	case progressPct < expected-30:
		return domain.CriticalityCritical
	case progressPct < expected-15:
		return domain.CriticalityHigh
	case progressPct < expected:
		return domain.CriticalityMedium
	}
	return domain.CriticalityLow
}

// IsOnTrack reports whether actual progress keeps pace with the time elapsed
// over the phase's active span, with a 20% tolerance band. Past the deadline
// only full completion counts as on track.
//
// The progress tracker applies a stricter 10% band for its own summaries;
// the two bands are deliberately distinct.
func IsOnTrack(phase *domain.Phase, progressPct float64, daysRemaining int, today time.Time) bool {
	if daysRemaining <= 0 {
		return progressPct >= 100
	}

	totalDays := domain.DaysBetween(phase.StartDate(), phase.Deadline)
	if totalDays <= 0 {
		return true
	}
	daysElapsed := totalDays - daysRemaining
	expected := float64(daysElapsed) / float64(totalDays) * 100
	return progressPct >= expected*0.8
}

// BufferDays computes the slack between a phase's deadline and the next
// constraint: the earliest deadline among later phases, or the thesis
// deadline for the last phase. Floored at zero; zero when no constraint.
func BufferDays(phase *domain.Phase, phases []*domain.Phase, thesisDeadline *time.Time) int {
	var next *time.Time
	for _, other := range phases {
		if other.OrderIndex <= phase.OrderIndex {
			continue
		}
		if next == nil || other.Deadline.Before(*next) {
			d := other.Deadline
			next = &d
		}
	}
	if next == nil {
		next = thesisDeadline
	}
	if next == nil {
		return 0
	}
	buffer := domain.DaysBetween(phase.Deadline, *next)
	if buffer < 0 {
		return 0
	}
	return buffer
}

// EstimateStartDate estimates when a phase begins: today for the first phase,
// otherwise the day after the latest earlier deadline.
func EstimateStartDate(phase *domain.Phase, phases []*domain.Phase, today time.Time) time.Time {
	var latest *time.Time
	for _, other := range phases {
		if other.OrderIndex >= phase.OrderIndex {
			continue
		}
		if latest == nil || other.Deadline.After(*latest) {
			d := other.Deadline
			latest = &d
		}
	}
	if latest == nil {
		return domain.DateOnly(today)
	}
	return domain.DateOnly(latest.AddDate(0, 0, 1))
}

// CriticalityReason explains in plain language why a phase carries its
// criticality, in the same precedence order the critical path uses.
func CriticalityReason(m PhaseMetrics) string {
	switch {
	case m.DaysRemaining <= 3:
		return "Deadline is within 3 days"
	case m.DaysRemaining <= 7:
		return "Deadline is within 1 week"
	case !m.OnTrack:
		return "Behind schedule based on progress"
	case m.BufferDays < 7:
		return "Limited buffer time before next phase"
	case m.RequiredTasksPerDay > 3:
		return "High task density required"
	}
	return "On track"
}
