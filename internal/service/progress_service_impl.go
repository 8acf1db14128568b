package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mvestberg/phaseplan/internal/contract"
	"github.com/mvestberg/phaseplan/internal/db"
	"github.com/mvestberg/phaseplan/internal/domain"
	"github.com/mvestberg/phaseplan/internal/progress"
	"github.com/mvestberg/phaseplan/internal/repository"
)

type progressService struct {
	phases   repository.PhaseRepo
	tasks    repository.TaskRepo
	entries  repository.ProgressRepo
	uow      db.UnitOfWork
	locker   *studentLocker
	observer UseCaseObserver
}

func NewProgressService(phases repository.PhaseRepo, tasks repository.TaskRepo, entries repository.ProgressRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ProgressService {
	return &progressService{
		phases:   phases,
		tasks:    tasks,
		entries:  entries,
		uow:      uow,
		locker:   sharedStudentLocker,
		observer: useCaseObserverOrNoop(observers),
	}
}

// LogProgress marks the given tasks complete, appends a progress entry, and
// reports any milestones the jump crossed. Milestones compare against the
// previous entry's progress level, so re-logging never re-fires them. Task
// completion and the entry commit together.
func (s *progressService) LogProgress(ctx context.Context, req contract.LogProgressRequest) (result *contract.LogProgressResult, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "log_progress", started, err, map[string]any{
			"phase_id": req.PhaseID,
			"tasks":    len(req.TaskIDs),
		})
	}()

	if len(req.TaskIDs) == 0 {
		return nil, invalidInput("no tasks to log")
	}

	phase, err := s.phases.GetByID(ctx, req.PhaseID)
	if err != nil {
		return nil, err
	}

	unlock := s.locker.lock(phase.StudentID)
	defer unlock()

	tasks, err := s.tasks.ListByPhase(ctx, req.PhaseID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}
	seen := make(map[string]bool, len(req.TaskIDs))
	for _, id := range req.TaskIDs {
		task, ok := byID[id]
		if !ok {
			return nil, invalidInput(fmt.Sprintf("task %s does not belong to this phase", id))
		}
		if task.Completed {
			return nil, invalidInput(fmt.Sprintf("task %s is already completed", id))
		}
		if seen[id] {
			return nil, invalidInput(fmt.Sprintf("task %s listed twice", id))
		}
		seen[id] = true
	}

	prevPct := 0.0
	if latest, err := s.entries.LatestByPhase(ctx, req.PhaseID); err == nil {
		prevPct = latest.ProgressPct
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	today := resolveToday(req.Now)
	total := len(tasks)
	completed := countCompleted(tasks) + len(req.TaskIDs)
	newPct := progressPct(completed, total)

	milestones := progress.DetectMilestones(phase, prevPct, newPct, completed, total, today)

	entry := &domain.ProgressEntry{
		ID:               uuid.New().String(),
		StudentID:        phase.StudentID,
		PhaseID:          phase.ID,
		Date:             today,
		CompletedTaskIDs: req.TaskIDs,
		Note:             req.Note,
		ProgressPct:      newPct,
		CreatedAt:        time.Now().UTC(),
	}
	if len(milestones) > 0 {
		kind := milestones[0].Type
		entry.Milestone = &kind
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txEntries := repository.NewSQLiteProgressRepo(tx)

		if err := txTasks.MarkCompleted(ctx, req.TaskIDs); err != nil {
			return err
		}
		return txEntries.Create(ctx, entry)
	})
	if err != nil {
		return nil, fmt.Errorf("logging progress: %w", err)
	}

	var completion *progress.Completion
	if completed == total {
		for _, t := range tasks {
			if !t.Completed {
				t.Completed = true
			}
		}
		siblings, err := s.phases.ListByStudent(ctx, phase.StudentID, false)
		if err != nil {
			return nil, err
		}
		history, err := s.entries.ListByPhase(ctx, req.PhaseID)
		if err != nil {
			return nil, err
		}
		_, longest := progress.Streaks(history, today)
		completion = progress.DetectPhaseCompletion(phase, tasks, siblings, longest, today)
	}

	return &contract.LogProgressResult{
		PhaseID:        phase.ID,
		PhaseName:      phase.Name,
		ProgressPct:    newPct,
		CompletedTasks: completed,
		TotalTasks:     total,
		Milestones:     milestones,
		Completion:     completion,
	}, nil
}

func (s *progressService) PhaseSummary(ctx context.Context, req contract.PhaseSummaryRequest) (summary *progress.PhaseSummary, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "phase_summary", started, err, map[string]any{"phase_id": req.PhaseID})
	}()

	phase, err := s.phases.GetByID(ctx, req.PhaseID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListByPhase(ctx, req.PhaseID)
	if err != nil {
		return nil, err
	}
	entries, err := s.entries.ListByPhase(ctx, req.PhaseID)
	if err != nil {
		return nil, err
	}

	out := progress.ComputePhaseSummary(phase, tasks, entries, resolveToday(req.Now))
	return &out, nil
}

func (s *progressService) OverallSummary(ctx context.Context, req contract.OverallSummaryRequest) (summary *progress.OverallSummary, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "overall_summary", started, err, map[string]any{"student_id": req.StudentID})
	}()

	phases, err := s.phases.ListByStudent(ctx, req.StudentID, false)
	if err != nil {
		return nil, err
	}

	today := resolveToday(req.Now)
	summaries := make([]progress.PhaseSummary, 0, len(phases))
	for _, phase := range phases {
		tasks, err := s.tasks.ListByPhase(ctx, phase.ID)
		if err != nil {
			return nil, err
		}
		entries, err := s.entries.ListByPhase(ctx, phase.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, progress.ComputePhaseSummary(phase, tasks, entries, today))
	}

	out := progress.ComputeOverallSummary(summaries)
	return &out, nil
}
