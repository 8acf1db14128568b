package service

import (
	"time"

	"github.com/mvestberg/phaseplan/internal/domain"
)

// resolveToday returns the caller-supplied clock override or the current UTC
// date, truncated to midnight either way.
func resolveToday(override *time.Time) time.Time {
	if override != nil {
		return domain.DateOnly(*override)
	}
	return domain.DateOnly(time.Now().UTC())
}

// tasksByPhase groups each phase's tasks by phase ID for the scheduler.
func tasksByPhase(phases []*domain.Phase, load func(phaseID string) ([]*domain.Task, error)) (map[string][]*domain.Task, error) {
	byPhase := make(map[string][]*domain.Task, len(phases))
	for _, phase := range phases {
		tasks, err := load(phase.ID)
		if err != nil {
			return nil, err
		}
		byPhase[phase.ID] = tasks
	}
	return byPhase, nil
}

func countCompleted(tasks []*domain.Task) int {
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	return completed
}

func progressPct(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}
