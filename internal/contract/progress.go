package contract

import (
	"time"

	"github.com/mvestberg/phaseplan/internal/progress"
)

// LogProgressRequest marks tasks complete and appends a progress entry.
type LogProgressRequest struct {
	PhaseID string
	TaskIDs []string
	Note    string
	Now     *time.Time
}

// LogProgressResult reports the new progress level, any milestones crossed by
// this logging event, and the completion celebration when the phase finished.
type LogProgressResult struct {
	PhaseID        string
	PhaseName      string
	ProgressPct    float64
	CompletedTasks int
	TotalTasks     int
	Milestones     []progress.Milestone
	Completion     *progress.Completion
}

// PhaseSummaryRequest asks for the detailed progress picture of one phase.
type PhaseSummaryRequest struct {
	PhaseID string
	Now     *time.Time
}

// OverallSummaryRequest asks for the cross-phase progress summary.
type OverallSummaryRequest struct {
	StudentID string
	Now       *time.Time
}
