// Package contract defines the request and result types exchanged between
// the service layer and its callers (CLI, importer, tests). Results carry
// warnings as data; errors are reserved for failed operations.
package contract

import (
	"time"

	"github.com/mvestberg/phaseplan/internal/domain"
)

// PhaseSelection names one phase to create during onboarding, with its
// deadline.
type PhaseSelection struct {
	Type     domain.PhaseType
	Deadline time.Time
}

// OnboardRequest sets up a student with their work day preferences and the
// phases of their project. Now overrides the clock for deterministic tests.
type OnboardRequest struct {
	StudentName    string
	Preferences    domain.WorkDayPreferences
	ThesisDeadline *time.Time
	Phases         []PhaseSelection
	Now            *time.Time
}

// OnboardResult reports the created student and phases.
type OnboardResult struct {
	Student *domain.Student
	Phases  []*domain.Phase
}

// AddPhaseRequest appends one phase to an existing student's plan.
type AddPhaseRequest struct {
	StudentID string
	Type      domain.PhaseType
	Deadline  time.Time
	Now       *time.Time
}

// GenerateScheduleRequest builds and persists the task schedule for a phase.
type GenerateScheduleRequest struct {
	PhaseID string
	Now     *time.Time
}

// GenerateScheduleResult reports the schedule written for a phase.
type GenerateScheduleResult struct {
	PhaseID      string
	PhaseName    string
	TasksCreated int
	FirstDate    time.Time
	LastDate     time.Time
}
