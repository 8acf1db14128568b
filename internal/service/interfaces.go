package service

import (
	"context"

	"github.com/mvestberg/phaseplan/internal/contract"
	"github.com/mvestberg/phaseplan/internal/domain"
	"github.com/mvestberg/phaseplan/internal/progress"
)

// PhaseService manages students and their phase plans.
type PhaseService interface {
	Onboard(ctx context.Context, req contract.OnboardRequest) (*contract.OnboardResult, error)
	AddPhase(ctx context.Context, req contract.AddPhaseRequest) (*domain.Phase, error)
	GetStudent(ctx context.Context, studentID string) (*domain.Student, error)
	ListStudents(ctx context.Context) ([]*domain.Student, error)
	ListPhases(ctx context.Context, studentID string) ([]*domain.Phase, error)
	GetPhase(ctx context.Context, phaseID string) (*domain.Phase, error)
	// RemovePhase deletes a phase together with its tasks and progress history.
	RemovePhase(ctx context.Context, phaseID string) error
}

// ScheduleService turns phase templates into dated tasks.
type ScheduleService interface {
	Generate(ctx context.Context, req contract.GenerateScheduleRequest) (*contract.GenerateScheduleResult, error)
	// ListTasks returns a phase's tasks ordered by date.
	ListTasks(ctx context.Context, phaseID string) ([]*domain.Task, error)
}

// CoordinatorService provides the cross-phase schedule views and handles
// deadline changes.
type CoordinatorService interface {
	Status(ctx context.Context, req contract.StatusRequest) (*contract.StatusResponse, error)
	Timeline(ctx context.Context, req contract.TimelineRequest) (*contract.TimelineResponse, error)
	CriticalPath(ctx context.Context, req contract.CriticalPathRequest) (*contract.CriticalPathResponse, error)
	RedistributeAfterDeadlineChange(ctx context.Context, req contract.RedistributeRequest) (*contract.RedistributeResult, error)
}

// ProgressService records progress and reports on it.
type ProgressService interface {
	LogProgress(ctx context.Context, req contract.LogProgressRequest) (*contract.LogProgressResult, error)
	PhaseSummary(ctx context.Context, req contract.PhaseSummaryRequest) (*progress.PhaseSummary, error)
	OverallSummary(ctx context.Context, req contract.OverallSummaryRequest) (*progress.OverallSummary, error)
}
