package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mvestberg/phaseplan/internal/contract"
	"github.com/mvestberg/phaseplan/internal/db"
	"github.com/mvestberg/phaseplan/internal/domain"
	"github.com/mvestberg/phaseplan/internal/repository"
	"github.com/mvestberg/phaseplan/internal/template"
)

type phaseService struct {
	students repository.StudentRepo
	phases   repository.PhaseRepo
	uow      db.UnitOfWork
	locker   *studentLocker
	observer UseCaseObserver
}

func NewPhaseService(students repository.StudentRepo, phases repository.PhaseRepo, uow db.UnitOfWork, observers ...UseCaseObserver) PhaseService {
	return &phaseService{
		students: students,
		phases:   phases,
		uow:      uow,
		locker:   sharedStudentLocker,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Onboard validates the whole request before any write, then creates the
// student and phases in one transaction.
func (s *phaseService) Onboard(ctx context.Context, req contract.OnboardRequest) (result *contract.OnboardResult, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "onboard", started, err, map[string]any{"phases": len(req.Phases)})
	}()

	today := resolveToday(req.Now)
	if err := validateOnboard(req, today); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	student := &domain.Student{
		ID:             uuid.New().String(),
		Name:           req.StudentName,
		Preferences:    req.Preferences,
		ThesisDeadline: req.ThesisDeadline,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	phases := make([]*domain.Phase, 0, len(req.Phases))
	for i, sel := range req.Phases {
		tmpl, ok := template.Get(sel.Type)
		name := string(sel.Type)
		if ok {
			name = tmpl.Name
		}
		phases = append(phases, &domain.Phase{
			ID:         uuid.New().String(),
			StudentID:  student.ID,
			Type:       sel.Type,
			Name:       name,
			Deadline:   domain.DateOnly(sel.Deadline),
			OrderIndex: i + 1,
			Active:     true,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txStudents := repository.NewSQLiteStudentRepo(tx)
		txPhases := repository.NewSQLitePhaseRepo(tx)

		if err := txStudents.Create(ctx, student); err != nil {
			return err
		}
		for _, phase := range phases {
			if err := txPhases.Create(ctx, phase); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("onboarding student: %w", err)
	}

	return &contract.OnboardResult{Student: student, Phases: phases}, nil
}

func validateOnboard(req contract.OnboardRequest, today time.Time) error {
	if req.StudentName == "" {
		return invalidInput("student name is required")
	}
	if len(req.Phases) == 0 {
		return invalidInput("select at least one phase")
	}
	if !req.Preferences.HasCapacity() {
		return invalidInput("work day preferences allow no work at all")
	}

	seen := make(map[domain.PhaseType]bool, len(req.Phases))
	order := make(map[domain.PhaseType]int, len(domain.CanonicalPhaseOrder))
	for i, pt := range domain.CanonicalPhaseOrder {
		order[pt] = i
	}

	prevRank := -1
	var prevDeadline time.Time
	for _, sel := range req.Phases {
		rank, known := order[sel.Type]
		if !known {
			return invalidInput(fmt.Sprintf("unknown phase type %q", sel.Type))
		}
		if seen[sel.Type] {
			return invalidInput(fmt.Sprintf("phase %q selected twice", sel.Type))
		}
		seen[sel.Type] = true

		if rank < prevRank {
			return invalidInput("phases must follow the canonical research order")
		}
		deadline := domain.DateOnly(sel.Deadline)
		if !deadline.After(today) {
			return invalidInput(fmt.Sprintf("deadline for %q must be in the future", sel.Type))
		}
		if prevRank >= 0 && deadline.Before(prevDeadline) {
			return invalidInput("phase deadlines must be chronological")
		}
		prevRank = rank
		prevDeadline = deadline
	}

	if req.ThesisDeadline != nil {
		thesis := domain.DateOnly(*req.ThesisDeadline)
		if thesis.Before(prevDeadline) {
			return invalidInput("thesis deadline falls before the last phase deadline")
		}
	}
	return nil
}

// AddPhase appends one phase after the student's existing plan.
func (s *phaseService) AddPhase(ctx context.Context, req contract.AddPhaseRequest) (phase *domain.Phase, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "add_phase", started, err, map[string]any{"phase_type": string(req.Type)})
	}()

	unlock := s.locker.lock(req.StudentID)
	defer unlock()

	today := resolveToday(req.Now)
	deadline := domain.DateOnly(req.Deadline)
	if !deadline.After(today) {
		return nil, invalidInput("deadline must be in the future")
	}
	tmpl, ok := template.Get(req.Type)
	if !ok {
		return nil, invalidInput(fmt.Sprintf("unknown phase type %q", req.Type))
	}

	if _, err = s.students.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}
	existing, err := s.phases.ListByStudent(ctx, req.StudentID, true)
	if err != nil {
		return nil, err
	}

	maxOrder := 0
	for _, p := range existing {
		if p.Type == req.Type && p.Active {
			return nil, invalidInput(fmt.Sprintf("phase %q already exists", req.Type))
		}
		if p.OrderIndex > maxOrder {
			maxOrder = p.OrderIndex
		}
		if p.Active && deadline.Before(domain.DateOnly(p.Deadline)) {
			return nil, invalidInput("new phase deadline must come after existing phase deadlines")
		}
	}

	now := time.Now().UTC()
	phase = &domain.Phase{
		ID:         uuid.New().String(),
		StudentID:  req.StudentID,
		Type:       req.Type,
		Name:       tmpl.Name,
		Deadline:   deadline,
		OrderIndex: maxOrder + 1,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err = s.phases.Create(ctx, phase); err != nil {
		return nil, fmt.Errorf("adding phase: %w", err)
	}
	return phase, nil
}

func (s *phaseService) GetStudent(ctx context.Context, studentID string) (*domain.Student, error) {
	return s.students.GetByID(ctx, studentID)
}

func (s *phaseService) ListStudents(ctx context.Context) ([]*domain.Student, error) {
	return s.students.List(ctx)
}

func (s *phaseService) ListPhases(ctx context.Context, studentID string) ([]*domain.Phase, error) {
	return s.phases.ListByStudent(ctx, studentID, false)
}

func (s *phaseService) GetPhase(ctx context.Context, phaseID string) (*domain.Phase, error) {
	return s.phases.GetByID(ctx, phaseID)
}

// RemovePhase deletes the phase row; tasks and progress entries go with it
// through the foreign key cascade, inside one transaction.
func (s *phaseService) RemovePhase(ctx context.Context, phaseID string) (err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "remove_phase", started, err, map[string]any{"phase_id": phaseID})
	}()

	phase, err := s.phases.GetByID(ctx, phaseID)
	if err != nil {
		return err
	}

	unlock := s.locker.lock(phase.StudentID)
	defer unlock()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txPhases := repository.NewSQLitePhaseRepo(tx)

		// Explicit task delete alongside the FK cascade keeps the intent
		// visible and covers databases opened without the pragma.
		if err := txTasks.DeleteByPhase(ctx, phaseID); err != nil {
			return err
		}
		return txPhases.Delete(ctx, phaseID)
	})
	if err != nil {
		return fmt.Errorf("removing phase: %w", err)
	}
	return nil
}
