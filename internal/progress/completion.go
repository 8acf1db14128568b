package progress

import (
	"fmt"
	"time"

	"github.com/mvestberg/phaseplan/internal/domain"
)

// NextPhase points at the phase that follows a completed one.
type NextPhase struct {
	PhaseID   string
	PhaseName string
	Deadline  time.Time
}

// Completion is the celebration payload for a fully completed phase.
type Completion struct {
	PhaseID        string
	PhaseName      string
	CompletionDate time.Time
	TotalTasks     int
	DaysEarly      int
	Message        string
	Badges         []string
	NextPhase      *NextPhase
}

// DetectPhaseCompletion returns the celebration payload when every task of
// the phase is complete, nil otherwise. A phase with no tasks never counts as
// complete. longestStreak feeds the streak badges.
func DetectPhaseCompletion(phase *domain.Phase, tasks []*domain.Task, phases []*domain.Phase, longestStreak int, today time.Time) *Completion {
	total := len(tasks)
	completed := 0
	for _, task := range tasks {
		if task.Completed {
			completed++
		}
	}
	if total == 0 || completed != total {
		return nil
	}

	today = domain.DateOnly(today)
	daysEarly := domain.DaysBetween(today, domain.DateOnly(phase.Deadline))

	c := &Completion{
		PhaseID:        phase.ID,
		PhaseName:      phase.Name,
		CompletionDate: today,
		TotalTasks:     total,
		Message:        completionMessage(phase.Name, daysEarly),
		Badges:         achievementBadges(daysEarly, longestStreak),
		NextPhase:      nextPhase(phase, phases),
	}
	if daysEarly > 0 {
		c.DaysEarly = daysEarly
	}
	return c
}

func completionMessage(phaseName string, daysEarly int) string {
	msg := fmt.Sprintf("🎉 Congratulations! You've completed the %s phase!", phaseName)
	if daysEarly > 0 {
		msg += fmt.Sprintf(" And you finished %d days early! Outstanding time management! ⏰", daysEarly)
	}
	return msg
}

func achievementBadges(daysEarly, longestStreak int) []string {
	badges := []string{"Phase Completed 🏆"}
	if daysEarly > 0 {
		badges = append(badges, "Early Bird 🐦")
	}
	if daysEarly >= 7 {
		badges = append(badges, "Time Master ⏰")
	}
	if longestStreak >= 7 {
		badges = append(badges, "Consistency Champion 🔥")
	}
	if longestStreak >= 14 {
		badges = append(badges, "Dedication Master 💎")
	}
	return badges
}

func nextPhase(current *domain.Phase, phases []*domain.Phase) *NextPhase {
	var next *domain.Phase
	for _, p := range phases {
		if p.OrderIndex <= current.OrderIndex {
			continue
		}
		if next == nil || p.OrderIndex < next.OrderIndex {
			next = p
		}
	}
	if next == nil {
		return nil
	}
	return &NextPhase{PhaseID: next.ID, PhaseName: next.Name, Deadline: domain.DateOnly(next.Deadline)}
}
