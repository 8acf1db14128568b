package progress

import (
	"testing"
	"time"

	"github.com/mvestberg/phaseplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func litReviewPhase() *domain.Phase {
	return &domain.Phase{
		ID:         "ph-1",
		StudentID:  "st-1",
		Type:       domain.PhaseLiteratureReview,
		Name:       "Literature Review",
		Deadline:   date(2026, 4, 1),
		OrderIndex: 1,
		Active:     true,
		CreatedAt:  date(2026, 3, 1),
	}
}

func TestDetectMilestones_SingleThreshold(t *testing.T) {
	now := date(2026, 3, 10)
	milestones := DetectMilestones(litReviewPhase(), 20, 30, 3, 10, now)

	require.Len(t, milestones, 1)
	m := milestones[0]
	assert.Equal(t, domain.MilestoneQuarterComplete, m.Type)
	assert.Equal(t, "Reached 25% completion in Literature Review", m.Description)
	assert.Equal(t, "Quarter Complete! 🎯", m.Celebration)
	assert.InDelta(t, 30.0, m.ProgressPct, 0.001)
	assert.Equal(t, 3, m.CompletedTasks)
	assert.Equal(t, 10, m.TotalTasks)
}

func TestDetectMilestones_BigJumpFiresSeveral(t *testing.T) {
	milestones := DetectMilestones(litReviewPhase(), 10, 80, 8, 10, date(2026, 3, 10))

	require.Len(t, milestones, 3)
	assert.Equal(t, domain.MilestoneQuarterComplete, milestones[0].Type)
	assert.Equal(t, domain.MilestoneHalfComplete, milestones[1].Type)
	assert.Equal(t, domain.MilestoneThreeQuarterComplete, milestones[2].Type)
}

func TestDetectMilestones_Boundaries(t *testing.T) {
	phase := litReviewPhase()
	now := date(2026, 3, 10)

	tests := []struct {
		name          string
		prev, next    float64
		wantCount     int
		wantFirstType domain.MilestoneType
	}{
		{"exact threshold fires", 24, 25, 1, domain.MilestoneQuarterComplete},
		{"already past does not refire", 25, 40, 0, ""},
		{"no movement", 50, 50, 0, ""},
		{"completion", 90, 100, 1, domain.MilestonePhaseComplete},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			milestones := DetectMilestones(phase, tt.prev, tt.next, 0, 10, now)
			require.Len(t, milestones, tt.wantCount)
			if tt.wantCount > 0 {
				assert.Equal(t, tt.wantFirstType, milestones[0].Type)
			}
		})
	}
}
