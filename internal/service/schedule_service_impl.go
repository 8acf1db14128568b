package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mvestberg/phaseplan/internal/contract"
	"github.com/mvestberg/phaseplan/internal/db"
	"github.com/mvestberg/phaseplan/internal/domain"
	"github.com/mvestberg/phaseplan/internal/repository"
	"github.com/mvestberg/phaseplan/internal/scheduler"
	"github.com/mvestberg/phaseplan/internal/template"
)

type scheduleService struct {
	students repository.StudentRepo
	phases   repository.PhaseRepo
	tasks    repository.TaskRepo
	uow      db.UnitOfWork
	locker   *studentLocker
	observer UseCaseObserver
}

func NewScheduleService(students repository.StudentRepo, phases repository.PhaseRepo, tasks repository.TaskRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ScheduleService {
	return &scheduleService{
		students: students,
		phases:   phases,
		tasks:    tasks,
		uow:      uow,
		locker:   sharedStudentLocker,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Generate distributes the phase's task templates across the student's
// available days and persists the schedule. Regenerating replaces any
// previously generated tasks for the phase.
func (s *scheduleService) Generate(ctx context.Context, req contract.GenerateScheduleRequest) (result *contract.GenerateScheduleResult, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "generate_schedule", started, err, map[string]any{"phase_id": req.PhaseID})
	}()

	phase, err := s.phases.GetByID(ctx, req.PhaseID)
	if err != nil {
		return nil, err
	}
	student, err := s.students.GetByID(ctx, phase.StudentID)
	if err != nil {
		return nil, err
	}

	unlock := s.locker.lock(phase.StudentID)
	defer unlock()

	today := resolveToday(req.Now)
	if !domain.DateOnly(phase.Deadline).After(today) {
		return nil, invalidInput("phase deadline has already passed")
	}
	if !student.Preferences.HasCapacity() {
		return nil, invalidInput("work day preferences allow no work at all")
	}

	templates := template.TaskTemplates(phase.Type)
	if len(templates) == 0 {
		return nil, invalidInput(fmt.Sprintf("no task templates for phase type %q", phase.Type))
	}

	existing, err := s.tasks.ListByPhase(ctx, req.PhaseID)
	if err != nil {
		return nil, err
	}
	for _, t := range existing {
		if t.Completed {
			return nil, invalidInput("phase already has completed tasks; refusing to regenerate")
		}
	}

	distributed := scheduler.Distribute(templates, student.Preferences, today, phase.Deadline, phase.ID)
	if len(distributed) == 0 {
		return nil, invalidInput("no available work days before the deadline")
	}

	tasks := make([]*domain.Task, len(distributed))
	for i := range distributed {
		tasks[i] = &distributed[i]
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		if err := txTasks.DeleteByPhase(ctx, phase.ID); err != nil {
			return err
		}
		return txTasks.CreateBatch(ctx, tasks)
	})
	if err != nil {
		return nil, fmt.Errorf("persisting schedule: %w", err)
	}

	first, last := tasks[0].Date, tasks[0].Date
	for _, t := range tasks[1:] {
		if t.Date.Before(first) {
			first = t.Date
		}
		if t.Date.After(last) {
			last = t.Date
		}
	}

	return &contract.GenerateScheduleResult{
		PhaseID:      phase.ID,
		PhaseName:    phase.Name,
		TasksCreated: len(tasks),
		FirstDate:    first,
		LastDate:     last,
	}, nil
}

func (s *scheduleService) ListTasks(ctx context.Context, phaseID string) ([]*domain.Task, error) {
	if _, err := s.phases.GetByID(ctx, phaseID); err != nil {
		return nil, err
	}
	return s.tasks.ListByPhase(ctx, phaseID)
}
