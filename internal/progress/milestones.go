// Package progress implements milestone detection, streak accounting, and
// progress summaries over append-only progress entries. All functions are
// pure; persistence lives in the service layer.
package progress

import (
	"fmt"
	"time"

	"github.com/mvestberg/phaseplan/internal/domain"
)

// Milestone records one progress threshold crossed by a logging event.
type Milestone struct {
	Type           domain.MilestoneType
	PhaseID        string
	PhaseName      string
	AchievedAt     time.Time
	Description    string
	Celebration    string
	ProgressPct    float64
	CompletedTasks int
	TotalTasks     int
}

var milestoneThresholds = []struct {
	pct         float64
	kind        domain.MilestoneType
	celebration string
}{
	{25, domain.MilestoneQuarterComplete, "Quarter Complete! 🎯"},
	{50, domain.MilestoneHalfComplete, "Halfway There! 🚀"},
	{75, domain.MilestoneThreeQuarterComplete, "Three Quarters Done! 💪"},
	{100, domain.MilestonePhaseComplete, "Phase Complete! 🎉"},
}

// DetectMilestones returns every threshold newly crossed by moving from
// prevPct to newPct. A threshold fires when newPct reaches it and prevPct had
// not; a single large jump can fire several at once, in ascending order.
func DetectMilestones(phase *domain.Phase, prevPct, newPct float64, completed, total int, now time.Time) []Milestone {
	var milestones []Milestone
	for _, t := range milestoneThresholds {
		if newPct >= t.pct && prevPct < t.pct {
			milestones = append(milestones, Milestone{
				Type:           t.kind,
				PhaseID:        phase.ID,
				PhaseName:      phase.Name,
				AchievedAt:     now,
				Description:    fmt.Sprintf("Reached %.0f%% completion in %s", t.pct, phase.Name),
				Celebration:    t.celebration,
				ProgressPct:    newPct,
				CompletedTasks: completed,
				TotalTasks:     total,
			})
		}
	}
	return milestones
}
