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
)

type coordinatorService struct {
	students repository.StudentRepo
	phases   repository.PhaseRepo
	tasks    repository.TaskRepo
	uow      db.UnitOfWork
	locker   *studentLocker
	observer UseCaseObserver
}

func NewCoordinatorService(students repository.StudentRepo, phases repository.PhaseRepo, tasks repository.TaskRepo, uow db.UnitOfWork, observers ...UseCaseObserver) CoordinatorService {
	return &coordinatorService{
		students: students,
		phases:   phases,
		tasks:    tasks,
		uow:      uow,
		locker:   sharedStudentLocker,
		observer: useCaseObserverOrNoop(observers),
	}
}

// loadPlan fetches the student, their active phases in order, and every
// phase's tasks. All three read views start here.
func (s *coordinatorService) loadPlan(ctx context.Context, studentID string) (*domain.Student, []*domain.Phase, map[string][]*domain.Task, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, nil, nil, err
	}
	phases, err := s.phases.ListByStudent(ctx, studentID, false)
	if err != nil {
		return nil, nil, nil, err
	}
	byPhase, err := tasksByPhase(phases, func(phaseID string) ([]*domain.Task, error) {
		return s.tasks.ListByPhase(ctx, phaseID)
	})
	if err != nil {
		return nil, nil, nil, err
	}
	return student, phases, byPhase, nil
}

func (s *coordinatorService) Status(ctx context.Context, req contract.StatusRequest) (resp *contract.StatusResponse, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "status", started, err, map[string]any{"student_id": req.StudentID})
	}()

	student, phases, byPhase, err := s.loadPlan(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	today := resolveToday(req.Now)
	metrics := scheduler.ComputePhaseMetrics(phases, byPhase, student.ThesisDeadline, today)
	return &contract.StatusResponse{
		GeneratedAt: today,
		Phases:      metrics,
		Summary:     scheduler.Summarize(metrics),
	}, nil
}

func (s *coordinatorService) Timeline(ctx context.Context, req contract.TimelineRequest) (resp *contract.TimelineResponse, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "timeline", started, err, map[string]any{"student_id": req.StudentID})
	}()

	student, phases, byPhase, err := s.loadPlan(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	today := resolveToday(req.Now)
	metrics := scheduler.ComputePhaseMetrics(phases, byPhase, student.ThesisDeadline, today)
	return &contract.TimelineResponse{
		GeneratedAt: today,
		Events:      scheduler.BuildTimeline(phases, byPhase, student.ThesisDeadline, today),
		Summary:     scheduler.Summarize(metrics),
	}, nil
}

func (s *coordinatorService) CriticalPath(ctx context.Context, req contract.CriticalPathRequest) (resp *contract.CriticalPathResponse, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "critical_path", started, err, map[string]any{"student_id": req.StudentID})
	}()

	student, phases, byPhase, err := s.loadPlan(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	today := resolveToday(req.Now)
	return &contract.CriticalPathResponse{
		GeneratedAt: today,
		Items:       scheduler.CriticalPath(phases, byPhase, student.ThesisDeadline, today),
	}, nil
}

// taskMove records one pending date change for the redistribution.
type taskMove struct {
	taskID string
	date   time.Time
}

// RedistributeAfterDeadlineChange moves a phase deadline and reflows its
// incomplete tasks over the weekdays left before the new deadline. Completed
// tasks keep their dates. Shortfalls and conflicts with later phases surface
// as warnings on the result, never as errors; the deadline change and every
// task move commit in one transaction.
func (s *coordinatorService) RedistributeAfterDeadlineChange(ctx context.Context, req contract.RedistributeRequest) (result *contract.RedistributeResult, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "redistribute", started, err, map[string]any{"phase_id": req.PhaseID})
	}()

	phase, err := s.phases.GetByID(ctx, req.PhaseID)
	if err != nil {
		return nil, err
	}

	unlock := s.locker.lock(phase.StudentID)
	defer unlock()

	today := resolveToday(req.Now)
	newDeadline := domain.DateOnly(req.NewDeadline)
	if !newDeadline.After(today) {
		return nil, invalidInput("new deadline must be in the future")
	}

	tasks, err := s.tasks.ListByPhase(ctx, req.PhaseID)
	if err != nil {
		return nil, err
	}
	siblings, err := s.phases.ListByStudent(ctx, phase.StudentID, false)
	if err != nil {
		return nil, err
	}

	var incomplete []*domain.Task
	for _, t := range tasks {
		if !t.Completed {
			incomplete = append(incomplete, t)
		}
	}

	var warnings []string
	moves := planReflow(incomplete, today, newDeadline, &warnings)

	for _, sibling := range siblings {
		if sibling.OrderIndex <= phase.OrderIndex || sibling.ID == phase.ID {
			continue
		}
		if !newDeadline.Before(domain.DateOnly(sibling.Deadline)) {
			warnings = append(warnings, fmt.Sprintf("New deadline conflicts with %s (due %s)",
				sibling.Name, sibling.Deadline.Format(domain.DateLayout)))
		}
	}

	phase.Deadline = newDeadline
	phase.UpdatedAt = time.Now().UTC()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPhases := repository.NewSQLitePhaseRepo(tx)
		txTasks := repository.NewSQLiteTaskRepo(tx)

		if err := txPhases.Update(ctx, phase); err != nil {
			return err
		}
		for _, move := range moves {
			if err := txTasks.UpdateDate(ctx, move.taskID, move.date); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("redistributing tasks: %w", err)
	}

	return &contract.RedistributeResult{
		PhaseID:     phase.ID,
		PhaseName:   phase.Name,
		NewDeadline: newDeadline,
		TasksMoved:  len(moves),
		Warnings:    warnings,
	}, nil
}

// planReflow spreads incomplete tasks one per weekday between today and the
// new deadline, both inclusive. Tasks beyond the day count stack on the last
// available day, each with its own warning. Only tasks whose date actually
// changes produce a move.
func planReflow(incomplete []*domain.Task, today, newDeadline time.Time, warnings *[]string) []taskMove {
	if len(incomplete) == 0 {
		return nil
	}

	days := scheduler.WorkDays(today, newDeadline)
	if len(days) < len(incomplete) {
		*warnings = append(*warnings, fmt.Sprintf("Not enough work days (%d) for all tasks (%d)",
			len(days), len(incomplete)))
	}

	overflow := newDeadline
	if len(days) > 0 {
		overflow = days[len(days)-1]
	}

	var moves []taskMove
	for i, task := range incomplete {
		if i < len(days) {
			target := days[i]
			if !domain.DateOnly(task.Date).Equal(target) {
				moves = append(moves, taskMove{taskID: task.ID, date: target})
			}
			continue
		}
		// Overflow tasks are rescheduled even when they already sit on the
		// overflow day, so the move count reflects the crunch.
		*warnings = append(*warnings, fmt.Sprintf("Task '%s' scheduled on deadline day due to time constraints",
			task.Description))
		moves = append(moves, taskMove{taskID: task.ID, date: overflow})
	}
	return moves
}
