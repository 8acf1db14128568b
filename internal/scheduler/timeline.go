package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/mvestberg/phaseplan/internal/domain"
)

// TimelineEvent is one entry in the integrated cross-phase timeline: a phase
// deadline, or a cluster of tasks sharing one date.
type TimelineEvent struct {
	Date        time.Time
	Type        domain.EventType
	PhaseID     string
	PhaseName   string
	Description string
	Criticality domain.Criticality
	BufferDays  int
}

// TimelineSummary aggregates the state of all phases for presentation.
type TimelineSummary struct {
	TotalPhases        int
	PhasesOnTrack      int
	CriticalPhases     int
	TotalBufferDays    int
	OverallProgressPct float64
}

// BuildTimeline produces the integrated timeline across all phases: one
// deadline event per phase, plus a cluster event for every future date with
// more than one task scheduled. Events come back sorted by date ascending.
func BuildTimeline(phases []*domain.Phase, tasksByPhase map[string][]*domain.Task, thesisDeadline *time.Time, today time.Time) []TimelineEvent {
	var events []TimelineEvent
	today = domain.DateOnly(today)

	for _, phase := range phases {
		tasks := tasksByPhase[phase.ID]

		events = append(events, TimelineEvent{
			Date:        domain.DateOnly(phase.Deadline),
			Type:        domain.EventDeadline,
			PhaseID:     phase.ID,
			PhaseName:   phase.Name,
			Description: fmt.Sprintf("%s deadline", phase.Name),
			Criticality: ComputeCriticality(phase, tasks, today),
			BufferDays:  BufferDays(phase, phases, thesisDeadline),
		})

		for date, count := range taskClusters(tasks) {
			if date.Before(today) {
				continue
			}
			criticality := domain.CriticalityLow
			if count > 2 {
				criticality = domain.CriticalityMedium
			}
			events = append(events, TimelineEvent{
				Date:        date,
				Type:        domain.EventTaskCluster,
				PhaseID:     phase.ID,
				PhaseName:   phase.Name,
				Description: fmt.Sprintf("%d tasks scheduled", count),
				Criticality: criticality,
			})
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
	return events
}

// taskClusters returns the dates holding more than one task.
func taskClusters(tasks []*domain.Task) map[time.Time]int {
	counts := make(map[time.Time]int)
	for _, task := range tasks {
		counts[domain.DateOnly(task.Date)]++
	}
	for date, count := range counts {
		if count <= 1 {
			delete(counts, date)
		}
	}
	return counts
}

// Summarize condenses per-phase metrics into the timeline summary block.
func Summarize(metrics []PhaseMetrics) TimelineSummary {
	summary := TimelineSummary{TotalPhases: len(metrics)}
	for _, m := range metrics {
		if m.OnTrack {
			summary.PhasesOnTrack++
		}
		if m.Criticality == domain.CriticalityHigh || m.Criticality == domain.CriticalityCritical {
			summary.CriticalPhases++
		}
		summary.TotalBufferDays += m.BufferDays
		summary.OverallProgressPct += m.ProgressPct
	}
	if len(metrics) > 0 {
		summary.OverallProgressPct /= float64(len(metrics))
	}
	return summary
}
