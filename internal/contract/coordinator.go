package contract

import (
	"time"

	"github.com/mvestberg/phaseplan/internal/scheduler"
)

// StatusRequest asks for the per-phase schedule metrics of one student.
type StatusRequest struct {
	StudentID string
	Now       *time.Time
}

// StatusResponse carries per-phase metrics plus the cross-phase summary.
type StatusResponse struct {
	GeneratedAt time.Time
	Phases      []scheduler.PhaseMetrics
	Summary     scheduler.TimelineSummary
}

// TimelineRequest asks for the integrated cross-phase timeline.
type TimelineRequest struct {
	StudentID string
	Now       *time.Time
}

type TimelineResponse struct {
	GeneratedAt time.Time
	Events      []scheduler.TimelineEvent
	Summary     scheduler.TimelineSummary
}

// CriticalPathRequest asks for the dependency-annotated critical path.
type CriticalPathRequest struct {
	StudentID string
	Now       *time.Time
}

type CriticalPathResponse struct {
	GeneratedAt time.Time
	Items       []scheduler.PathItem
}

// RedistributeRequest moves a phase deadline and reflows its open tasks.
type RedistributeRequest struct {
	PhaseID     string
	NewDeadline time.Time
	Now         *time.Time
}

// RedistributeResult reports the reflow. Warnings flag capacity shortfalls,
// overflow stacking, and deadline conflicts with later phases; they never
// abort the operation.
type RedistributeResult struct {
	PhaseID     string
	PhaseName   string
	NewDeadline time.Time
	TasksMoved  int
	Warnings    []string
}
