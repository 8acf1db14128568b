package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/mvestberg/phaseplan/internal/domain"
)

// Student options
type StudentOption func(*domain.Student)

func WithThesisDeadline(d time.Time) StudentOption {
	return func(s *domain.Student) {
		s.ThesisDeadline = &d
	}
}

func WithPreferences(p domain.WorkDayPreferences) StudentOption {
	return func(s *domain.Student) {
		s.Preferences = p
	}
}

func NewTestStudent(name string, opts ...StudentOption) *domain.Student {
	now := time.Now().UTC()
	s := &domain.Student{
		ID:   uuid.New().String(),
		Name: name,
		Preferences: domain.WorkDayPreferences{
			"monday":    domain.IntensityLight,
			"tuesday":   domain.IntensityLight,
			"wednesday": domain.IntensityHeavy,
			"thursday":  domain.IntensityLight,
			"friday":    domain.IntensityLight,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Phase options
type PhaseOption func(*domain.Phase)

func WithPhaseType(pt domain.PhaseType) PhaseOption {
	return func(p *domain.Phase) {
		p.Type = pt
	}
}

func WithOrderIndex(i int) PhaseOption {
	return func(p *domain.Phase) {
		p.OrderIndex = i
	}
}

func WithInactive() PhaseOption {
	return func(p *domain.Phase) {
		p.Active = false
	}
}

func WithPhaseCreatedAt(t time.Time) PhaseOption {
	return func(p *domain.Phase) {
		p.CreatedAt = t
		p.UpdatedAt = t
	}
}

func NewTestPhase(studentID, name string, deadline time.Time, opts ...PhaseOption) *domain.Phase {
	now := time.Now().UTC()
	p := &domain.Phase{
		ID:         uuid.New().String(),
		StudentID:  studentID,
		Type:       domain.PhaseLiteratureReview,
		Name:       name,
		Deadline:   domain.DateOnly(deadline),
		OrderIndex: 1,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithCompleted() TaskOption {
	return func(t *domain.Task) {
		t.Completed = true
	}
}

func WithTaskType(tt domain.TaskType) TaskOption {
	return func(t *domain.Task) {
		t.Type = tt
	}
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithIntensity(i domain.Intensity) TaskOption {
	return func(t *domain.Task) {
		t.DayIntensity = i
	}
}

func NewTestTask(phaseID, description string, date time.Time, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:           uuid.New().String(),
		PhaseID:      phaseID,
		Date:         domain.DateOnly(date),
		Description:  description,
		Type:         domain.TaskGeneral,
		DayIntensity: domain.IntensityLight,
		Priority:     domain.PriorityMedium,
		CreatedAt:    time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ProgressEntry options
type EntryOption func(*domain.ProgressEntry)

func WithMilestone(m domain.MilestoneType) EntryOption {
	return func(e *domain.ProgressEntry) {
		e.Milestone = &m
	}
}

func WithNote(n string) EntryOption {
	return func(e *domain.ProgressEntry) {
		e.Note = n
	}
}

func WithCompletedTaskIDs(ids ...string) EntryOption {
	return func(e *domain.ProgressEntry) {
		e.CompletedTaskIDs = ids
	}
}

func NewTestEntry(studentID, phaseID string, date time.Time, pct float64, opts ...EntryOption) *domain.ProgressEntry {
	e := &domain.ProgressEntry{
		ID:          uuid.New().String(),
		StudentID:   studentID,
		PhaseID:     phaseID,
		Date:        domain.DateOnly(date),
		ProgressPct: pct,
		CreatedAt:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
