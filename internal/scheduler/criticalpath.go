package scheduler

import (
	"time"

	"github.com/mvestberg/phaseplan/internal/domain"
)

// PathDependency is an edge from a path item to a phase it depends on.
type PathDependency struct {
	PhaseID      string
	PhaseName    string
	Relationship string
}

// PathItem is one phase on the critical path with its timing and urgency.
type PathItem struct {
	PhaseID           string
	PhaseName         string
	StartDate         time.Time
	Deadline          time.Time
	DurationDays      int
	BufferDays        int
	IsCritical        bool
	CriticalityReason string
	Dependencies      []PathDependency
	ProgressPct       float64
	TasksRemaining    int
}

// CriticalPath derives the critical path through all phases: each phase's
// metrics, whether it sits on the critical path (elevated criticality, thin
// buffer, or behind schedule), and a prerequisite edge to the phase that
// precedes it by order index.
func CriticalPath(phases []*domain.Phase, tasksByPhase map[string][]*domain.Task, thesisDeadline *time.Time, today time.Time) []PathItem {
	metrics := ComputePhaseMetrics(phases, tasksByPhase, thesisDeadline, today)
	byPhase := make(map[string]PhaseMetrics, len(metrics))
	for _, m := range metrics {
		byPhase[m.PhaseID] = m
	}

	items := make([]PathItem, 0, len(phases))
	for i, phase := range phases {
		m, ok := byPhase[phase.ID]
		if !ok {
			continue
		}

		isCritical := m.Criticality == domain.CriticalityHigh ||
			m.Criticality == domain.CriticalityCritical ||
			m.BufferDays < 7 ||
			!m.OnTrack

		var deps []PathDependency
		if i > 0 {
			prev := phases[i-1]
			deps = append(deps, PathDependency{
				PhaseID:      prev.ID,
				PhaseName:    prev.Name,
				Relationship: "prerequisite",
			})
		}

		items = append(items, PathItem{
			PhaseID:           phase.ID,
			PhaseName:         phase.Name,
			StartDate:         m.StartDate,
			Deadline:          m.Deadline,
			DurationDays:      domain.DaysBetween(m.StartDate, m.Deadline),
			BufferDays:        m.BufferDays,
			IsCritical:        isCritical,
			CriticalityReason: CriticalityReason(m),
			Dependencies:      deps,
			ProgressPct:       m.ProgressPct,
			TasksRemaining:    m.RemainingTasks,
		})
	}
	return items
}
