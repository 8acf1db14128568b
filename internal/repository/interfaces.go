package repository

import (
	"context"
	"errors"
	"time"

	"github.com/mvestberg/phaseplan/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist. Callers check
// it with errors.Is; repositories wrap it with context.
var ErrNotFound = errors.New("not found")

type StudentRepo interface {
	Create(ctx context.Context, s *domain.Student) error
	GetByID(ctx context.Context, id string) (*domain.Student, error)
	List(ctx context.Context) ([]*domain.Student, error)
	Update(ctx context.Context, s *domain.Student) error
	Delete(ctx context.Context, id string) error
}

type PhaseRepo interface {
	Create(ctx context.Context, p *domain.Phase) error
	GetByID(ctx context.Context, id string) (*domain.Phase, error)
	// ListByStudent returns the student's phases ordered by order_index.
	// Inactive phases are excluded unless includeInactive is set.
	ListByStudent(ctx context.Context, studentID string, includeInactive bool) ([]*domain.Phase, error)
	Update(ctx context.Context, p *domain.Phase) error
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	CreateBatch(ctx context.Context, tasks []*domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	// ListByPhase returns the phase's tasks ordered by date, then creation time.
	ListByPhase(ctx context.Context, phaseID string) ([]*domain.Task, error)
	MarkCompleted(ctx context.Context, ids []string) error
	UpdateDate(ctx context.Context, id string, date time.Time) error
	DeleteByPhase(ctx context.Context, phaseID string) error
}

type ProgressRepo interface {
	Create(ctx context.Context, e *domain.ProgressEntry) error
	// ListByPhase returns the phase's entries ordered by date ascending.
	ListByPhase(ctx context.Context, phaseID string) ([]*domain.ProgressEntry, error)
	ListByStudent(ctx context.Context, studentID string) ([]*domain.ProgressEntry, error)
	// LatestByPhase returns the most recent entry, or ErrNotFound when the
	// phase has no history yet.
	LatestByPhase(ctx context.Context, phaseID string) (*domain.ProgressEntry, error)
}
