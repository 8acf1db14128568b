package domain

import "time"

// ProgressEntry is an append-only record of one progress-logging event for a
// phase. Milestone holds the first milestone crossed by that event, if any.
type ProgressEntry struct {
	ID               string
	StudentID        string
	PhaseID          string
	Date             time.Time
	CompletedTaskIDs []string
	Note             string
	ProgressPct      float64
	Milestone        *MilestoneType
	CreatedAt        time.Time
}
