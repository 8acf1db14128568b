package progress

import (
	"testing"

	"github.com/mvestberg/phaseplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phaseTasks(phaseID string, completed, remaining int) []*domain.Task {
	var tasks []*domain.Task
	for i := 0; i < completed; i++ {
		tasks = append(tasks, &domain.Task{ID: "done", PhaseID: phaseID, Completed: true})
	}
	for i := 0; i < remaining; i++ {
		tasks = append(tasks, &domain.Task{ID: "todo", PhaseID: phaseID})
	}
	return tasks
}

func TestComputePhaseSummary(t *testing.T) {
	today := date(2026, 3, 11)
	phase := litReviewPhase() // deadline Apr 1
	tasks := phaseTasks("ph-1", 6, 4)
	entries := entriesOn(date(2026, 3, 2), date(2026, 3, 3), date(2026, 3, 10))

	s := ComputePhaseSummary(phase, tasks, entries, today)

	assert.Equal(t, "ph-1", s.PhaseID)
	assert.Equal(t, date(2026, 3, 2), s.StartDate, "first entry date")
	assert.Equal(t, 10, s.TotalTasks)
	assert.Equal(t, 6, s.CompletedTasks)
	assert.InDelta(t, 60.0, s.ProgressPct, 0.001)
	assert.Equal(t, 10, s.DaysActive, "Mar 2 through Mar 11 inclusive")
	assert.Equal(t, 21, s.DaysRemaining)
	assert.InDelta(t, 0.6, s.AvgTasksPerDay, 0.001)
	assert.Equal(t, 2, s.LongestStreak)
	assert.Equal(t, 1, s.CurrentStreak, "Mar 10 entry still alive on Mar 11")

	// 30-day span, 9 elapsed: expected 30%, band 27%; 60% clears it.
	assert.True(t, s.OnTrack)

	// 4 remaining at 0.6/day: int(6.67) = 6 days out.
	require.NotNil(t, s.CompletionPrediction)
	assert.Equal(t, date(2026, 3, 17), *s.CompletionPrediction)
}

func TestComputePhaseSummary_NoEntries(t *testing.T) {
	today := date(2026, 3, 11)
	s := ComputePhaseSummary(litReviewPhase(), phaseTasks("ph-1", 0, 10), nil, today)

	assert.Equal(t, today, s.StartDate)
	assert.Zero(t, s.DaysActive)
	assert.Zero(t, s.AvgTasksPerDay)
	assert.Nil(t, s.CompletionPrediction, "no pace established")
	assert.Zero(t, s.CurrentStreak)
}

func TestComputePhaseSummary_CompleteHasNoPrediction(t *testing.T) {
	today := date(2026, 3, 11)
	entries := entriesOn(date(2026, 3, 2))
	s := ComputePhaseSummary(litReviewPhase(), phaseTasks("ph-1", 10, 0), entries, today)

	assert.Nil(t, s.CompletionPrediction)
	assert.InDelta(t, 100.0, s.ProgressPct, 0.001)
	assert.True(t, s.OnTrack)
}

func TestComputePhaseSummary_TrackedMilestones(t *testing.T) {
	half := domain.MilestoneHalfComplete
	entries := []*domain.ProgressEntry{
		{ID: "e1", PhaseID: "ph-1", Date: date(2026, 3, 2)},
		{ID: "e2", PhaseID: "ph-1", Date: date(2026, 3, 5), Milestone: &half},
	}

	s := ComputePhaseSummary(litReviewPhase(), phaseTasks("ph-1", 5, 5), entries, date(2026, 3, 6))

	require.Len(t, s.MilestonesAchieved, 1)
	assert.Equal(t, domain.MilestoneHalfComplete, s.MilestonesAchieved[0])
}

func TestComputeOverallSummary(t *testing.T) {
	summaries := []PhaseSummary{
		{
			PhaseID: "ph-1", PhaseName: "Literature Review",
			TotalTasks: 10, CompletedTasks: 8, ProgressPct: 80, OnTrack: true,
			MilestonesAchieved: []domain.MilestoneType{domain.MilestoneQuarterComplete, domain.MilestoneHalfComplete},
		},
		{
			PhaseID: "ph-2", PhaseName: "Research Question",
			TotalTasks: 10, CompletedTasks: 2, ProgressPct: 20, OnTrack: false,
		},
	}

	overall := ComputeOverallSummary(summaries)

	assert.InDelta(t, 50.0, overall.OverallProgressPct, 0.001)
	assert.Equal(t, 20, overall.TotalTasks)
	assert.Equal(t, 10, overall.TotalCompleted)
	assert.Equal(t, 2, overall.TotalPhases)
	assert.Equal(t, 1, overall.PhasesOnTrack)
	assert.Equal(t, 2, overall.MilestonesAchieved)
	assert.Equal(t, "Literature Review", overall.MostActivePhaseName)
	assert.InDelta(t, 80.0, overall.MostActivePhasePct, 0.001)

	// ph-2 needs int((25-20)/100*10) = 0 tasks to reach 25%; ph-1 needs
	// int((100-80)/100*10) = 2 for 100%. The cheaper one wins.
	require.NotNil(t, overall.NextMilestone)
	assert.Equal(t, "ph-2", overall.NextMilestone.PhaseID)
	assert.InDelta(t, 25.0, overall.NextMilestone.ThresholdPct, 0.001)
	assert.Equal(t, 0, overall.NextMilestone.TasksNeeded)
}

func TestComputeOverallSummary_Empty(t *testing.T) {
	overall := ComputeOverallSummary(nil)
	assert.Zero(t, overall.OverallProgressPct)
	assert.Nil(t, overall.NextMilestone)
	assert.Empty(t, overall.MostActivePhaseName)
}
