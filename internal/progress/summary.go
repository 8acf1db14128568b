package progress

import (
	"time"

	"github.com/mvestberg/phaseplan/internal/domain"
)

// PhaseSummary is the detailed progress picture for one phase.
type PhaseSummary struct {
	PhaseID              string
	PhaseName            string
	PhaseType            domain.PhaseType
	StartDate            time.Time
	Deadline             time.Time
	TotalTasks           int
	CompletedTasks       int
	ProgressPct          float64
	DaysActive           int
	DaysRemaining        int
	AvgTasksPerDay       float64
	CurrentStreak        int
	LongestStreak        int
	MilestonesAchieved   []domain.MilestoneType
	OnTrack              bool
	CompletionPrediction *time.Time
}

// NextMilestone describes the closest unreached threshold across all phases.
type NextMilestone struct {
	PhaseID      string
	PhaseName    string
	ThresholdPct float64
	TasksNeeded  int
	CurrentPct   float64
}

// OverallSummary aggregates progress across every active phase.
type OverallSummary struct {
	OverallProgressPct  float64
	TotalTasks          int
	TotalCompleted      int
	TotalPhases         int
	PhasesOnTrack       int
	MilestonesAchieved  int
	MostActivePhaseID   string
	MostActivePhaseName string
	MostActivePhasePct  float64
	NextMilestone       *NextMilestone
	Phases              []PhaseSummary
}

// ComputePhaseSummary builds the progress summary for one phase from its
// tasks and its progress history. Entries may arrive in any order.
func ComputePhaseSummary(phase *domain.Phase, tasks []*domain.Task, entries []*domain.ProgressEntry, today time.Time) PhaseSummary {
	today = domain.DateOnly(today)

	total := len(tasks)
	completed := 0
	for _, task := range tasks {
		if task.Completed {
			completed++
		}
	}
	var pct float64
	if total > 0 {
		pct = float64(completed) / float64(total) * 100
	}

	startDate := today
	daysActive := 0
	if len(entries) > 0 {
		startDate = domain.DateOnly(entries[0].Date)
		for _, e := range entries {
			if d := domain.DateOnly(e.Date); d.Before(startDate) {
				startDate = d
			}
		}
		daysActive = domain.DaysBetween(startDate, today) + 1
	}

	var avg float64
	if daysActive > 0 {
		avg = float64(completed) / float64(daysActive)
	}

	current, longest := Streaks(entries, today)
	daysRemaining := phase.DaysRemaining(today)

	return PhaseSummary{
		PhaseID:              phase.ID,
		PhaseName:            phase.Name,
		PhaseType:            phase.Type,
		StartDate:            startDate,
		Deadline:             domain.DateOnly(phase.Deadline),
		TotalTasks:           total,
		CompletedTasks:       completed,
		ProgressPct:          pct,
		DaysActive:           daysActive,
		DaysRemaining:        daysRemaining,
		AvgTasksPerDay:       avg,
		CurrentStreak:        current,
		LongestStreak:        longest,
		MilestonesAchieved:   achievedMilestones(entries),
		OnTrack:              isOnTrack(pct, daysRemaining, domain.DateOnly(phase.Deadline), startDate),
		CompletionPrediction: predictCompletion(completed, total, avg, today),
	}
}

// ComputeOverallSummary rolls per-phase summaries into the cross-phase view.
func ComputeOverallSummary(summaries []PhaseSummary) OverallSummary {
	overall := OverallSummary{TotalPhases: len(summaries), Phases: summaries}

	for _, s := range summaries {
		overall.TotalTasks += s.TotalTasks
		overall.TotalCompleted += s.CompletedTasks
		overall.MilestonesAchieved += len(s.MilestonesAchieved)
		if s.OnTrack {
			overall.PhasesOnTrack++
		}
		if overall.MostActivePhaseID == "" || s.ProgressPct > overall.MostActivePhasePct {
			overall.MostActivePhaseID = s.PhaseID
			overall.MostActivePhaseName = s.PhaseName
			overall.MostActivePhasePct = s.ProgressPct
		}
	}
	if overall.TotalTasks > 0 {
		overall.OverallProgressPct = float64(overall.TotalCompleted) / float64(overall.TotalTasks) * 100
	}
	overall.NextMilestone = nextMilestoneOpportunity(summaries)
	return overall
}

func achievedMilestones(entries []*domain.ProgressEntry) []domain.MilestoneType {
	var achieved []domain.MilestoneType
	for _, e := range entries {
		if e.Milestone != nil {
			achieved = append(achieved, *e.Milestone)
		}
	}
	return achieved
}

// isOnTrack pairs actual progress against time elapsed since the first log,
// with a 10% tolerance band. Past the deadline only completion counts.
func isOnTrack(pct float64, daysRemaining int, deadline, startDate time.Time) bool {
	if daysRemaining <= 0 {
		return pct >= 100
	}
	totalDays := domain.DaysBetween(startDate, deadline)
	if totalDays <= 0 {
		return true
	}
	expected := float64(totalDays-daysRemaining) / float64(totalDays) * 100
	return pct >= expected*0.9
}

// predictCompletion extrapolates the current pace to a completion date; nil
// when the phase is already complete or no pace is established.
func predictCompletion(completed, total int, avg float64, today time.Time) *time.Time {
	if avg <= 0 || completed >= total {
		return nil
	}
	daysNeeded := int(float64(total-completed) / avg)
	predicted := today.AddDate(0, 0, daysNeeded)
	return &predicted
}

// nextMilestoneOpportunity finds, across all phases, the unreached threshold
// needing the fewest additional completed tasks.
func nextMilestoneOpportunity(summaries []PhaseSummary) *NextMilestone {
	var best *NextMilestone
	for _, s := range summaries {
		for _, t := range milestoneThresholds {
			if s.ProgressPct >= t.pct {
				continue
			}
			needed := int((t.pct - s.ProgressPct) / 100 * float64(s.TotalTasks))
			candidate := &NextMilestone{
				PhaseID:      s.PhaseID,
				PhaseName:    s.PhaseName,
				ThresholdPct: t.pct,
				TasksNeeded:  needed,
				CurrentPct:   s.ProgressPct,
			}
			if best == nil || candidate.TasksNeeded < best.TasksNeeded {
				best = candidate
			}
			break
		}
	}
	return best
}
