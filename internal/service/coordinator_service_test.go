package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/mvestberg/phaseplan/internal/contract"
	"github.com/mvestberg/phaseplan/internal/domain"
	"github.com/mvestberg/phaseplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_ReportsPerPhaseMetrics(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewCoordinatorService(env.students, env.phases, env.tasks, env.uow)
	ctx := context.Background()
	today := date(2026, time.March, 2)

	student, phase1 := env.seedStudentWithPhase(t, date(2026, time.April, 1))
	phase2 := testutil.NewTestPhase(student.ID, "Research Question Development", date(2026, time.April, 20),
		testutil.WithPhaseType(domain.PhaseResearchQuestion), testutil.WithOrderIndex(2))
	require.NoError(t, env.phases.Create(ctx, phase2))

	for i, opts := range [][]testutil.TaskOption{
		{testutil.WithCompleted()},
		{testutil.WithCompleted()},
		nil,
		nil,
	} {
		task := testutil.NewTestTask(phase1.ID, fmt.Sprintf("Task %d", i+1), date(2026, time.March, 9+i), opts...)
		require.NoError(t, env.tasks.Create(ctx, task))
	}

	resp, err := svc.Status(ctx, contract.StatusRequest{StudentID: student.ID, Now: &today})
	require.NoError(t, err)
	assert.Equal(t, today, resp.GeneratedAt)
	require.Len(t, resp.Phases, 2)

	first := resp.Phases[0]
	assert.Equal(t, phase1.ID, first.PhaseID)
	assert.Equal(t, 4, first.TotalTasks)
	assert.Equal(t, 2, first.CompletedTasks)
	assert.InDelta(t, 50.0, first.ProgressPct, 0.001)
	assert.Equal(t, 30, first.DaysRemaining)

	assert.Equal(t, 2, resp.Summary.TotalPhases)
}

func TestTimeline_IncludesDeadlinesAndClusters(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewCoordinatorService(env.students, env.phases, env.tasks, env.uow)
	ctx := context.Background()
	today := date(2026, time.March, 2)

	student, phase1 := env.seedStudentWithPhase(t, date(2026, time.April, 1))
	phase2 := testutil.NewTestPhase(student.ID, "Research Question Development", date(2026, time.April, 20),
		testutil.WithPhaseType(domain.PhaseResearchQuestion), testutil.WithOrderIndex(2))
	require.NoError(t, env.phases.Create(ctx, phase2))

	// Two tasks share March 10th, forming a cluster.
	require.NoError(t, env.tasks.Create(ctx, testutil.NewTestTask(phase1.ID, "Skim articles", date(2026, time.March, 10))))
	require.NoError(t, env.tasks.Create(ctx, testutil.NewTestTask(phase1.ID, "Take notes", date(2026, time.March, 10))))

	resp, err := svc.Timeline(ctx, contract.TimelineRequest{StudentID: student.ID, Now: &today})
	require.NoError(t, err)
	require.Len(t, resp.Events, 3)

	assert.Equal(t, domain.EventTaskCluster, resp.Events[0].Type)
	assert.Equal(t, date(2026, time.March, 10), resp.Events[0].Date)
	assert.Equal(t, "2 tasks scheduled", resp.Events[0].Description)
	assert.Equal(t, domain.EventDeadline, resp.Events[1].Type)
	assert.Equal(t, date(2026, time.April, 1), resp.Events[1].Date)
	assert.Equal(t, domain.EventDeadline, resp.Events[2].Type)
}

func TestCriticalPath_LinksPrerequisites(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewCoordinatorService(env.students, env.phases, env.tasks, env.uow)
	ctx := context.Background()
	today := date(2026, time.March, 2)

	student, phase1 := env.seedStudentWithPhase(t, date(2026, time.April, 1))
	phase2 := testutil.NewTestPhase(student.ID, "Research Question Development", date(2026, time.April, 20),
		testutil.WithPhaseType(domain.PhaseResearchQuestion), testutil.WithOrderIndex(2))
	require.NoError(t, env.phases.Create(ctx, phase2))

	resp, err := svc.CriticalPath(ctx, contract.CriticalPathRequest{StudentID: student.ID, Now: &today})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)

	assert.Empty(t, resp.Items[0].Dependencies)
	require.Len(t, resp.Items[1].Dependencies, 1)
	assert.Equal(t, phase1.ID, resp.Items[1].Dependencies[0].PhaseID)
	assert.Equal(t, "prerequisite", resp.Items[1].Dependencies[0].Relationship)
}

func TestRedistribute_ReflowsIncompleteTasks(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewCoordinatorService(env.students, env.phases, env.tasks, env.uow)
	ctx := context.Background()
	today := date(2026, time.March, 2) // Monday

	_, phase := env.seedStudentWithPhase(t, date(2026, time.April, 1))
	for i := 0; i < 3; i++ {
		task := testutil.NewTestTask(phase.ID, fmt.Sprintf("Task %d", i+1), date(2026, time.March, 20+i))
		require.NoError(t, env.tasks.Create(ctx, task))
	}

	result, err := svc.RedistributeAfterDeadlineChange(ctx, contract.RedistributeRequest{
		PhaseID:     phase.ID,
		NewDeadline: date(2026, time.March, 4), // Wednesday: exactly 3 work days
		Now:         &today,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.TasksMoved)
	assert.Empty(t, result.Warnings)

	updated, err := env.phases.GetByID(ctx, phase.ID)
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.March, 4), updated.Deadline)

	tasks, err := env.tasks.ListByPhase(ctx, phase.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, date(2026, time.March, 2), tasks[0].Date)
	assert.Equal(t, date(2026, time.March, 3), tasks[1].Date)
	assert.Equal(t, date(2026, time.March, 4), tasks[2].Date)
}

func TestRedistribute_WarnsWhenDaysRunOut(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewCoordinatorService(env.students, env.phases, env.tasks, env.uow)
	ctx := context.Background()
	today := date(2026, time.March, 2)

	_, phase := env.seedStudentWithPhase(t, date(2026, time.April, 1))
	for i := 0; i < 3; i++ {
		task := testutil.NewTestTask(phase.ID, fmt.Sprintf("Task %d", i+1), date(2026, time.March, 20+i))
		require.NoError(t, env.tasks.Create(ctx, task))
	}

	result, err := svc.RedistributeAfterDeadlineChange(ctx, contract.RedistributeRequest{
		PhaseID:     phase.ID,
		NewDeadline: date(2026, time.March, 3), // Tuesday: only 2 work days
		Now:         &today,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.TasksMoved)
	assert.Contains(t, result.Warnings, "Not enough work days (2) for all tasks (3)")
	assert.Contains(t, result.Warnings, "Task 'Task 3' scheduled on deadline day due to time constraints")

	tasks, err := env.tasks.ListByPhase(ctx, phase.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	// The overflow task stacks on the last available day.
	assert.Equal(t, date(2026, time.March, 3), tasks[2].Date)
}

func TestRedistribute_LeavesCompletedTasksAlone(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewCoordinatorService(env.students, env.phases, env.tasks, env.uow)
	ctx := context.Background()
	today := date(2026, time.March, 2)

	_, phase := env.seedStudentWithPhase(t, date(2026, time.April, 1))
	done := testutil.NewTestTask(phase.ID, "Finished early", date(2026, time.February, 20), testutil.WithCompleted())
	require.NoError(t, env.tasks.Create(ctx, done))
	open := testutil.NewTestTask(phase.ID, "Still open", date(2026, time.March, 20))
	require.NoError(t, env.tasks.Create(ctx, open))

	result, err := svc.RedistributeAfterDeadlineChange(ctx, contract.RedistributeRequest{
		PhaseID:     phase.ID,
		NewDeadline: date(2026, time.March, 4),
		Now:         &today,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.TasksMoved)

	kept, err := env.tasks.GetByID(ctx, done.ID)
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.February, 20), kept.Date, "completed task must keep its date")

	moved, err := env.tasks.GetByID(ctx, open.ID)
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.March, 2), moved.Date)
}

func TestRedistribute_WarnsOnConflictWithLaterPhase(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewCoordinatorService(env.students, env.phases, env.tasks, env.uow)
	ctx := context.Background()
	today := date(2026, time.March, 2)

	student, phase1 := env.seedStudentWithPhase(t, date(2026, time.March, 5))
	phase2 := testutil.NewTestPhase(student.ID, "Research Question Development", date(2026, time.March, 10),
		testutil.WithPhaseType(domain.PhaseResearchQuestion), testutil.WithOrderIndex(2))
	require.NoError(t, env.phases.Create(ctx, phase2))

	result, err := svc.RedistributeAfterDeadlineChange(ctx, contract.RedistributeRequest{
		PhaseID:     phase1.ID,
		NewDeadline: date(2026, time.March, 15),
		Now:         &today,
	})
	require.NoError(t, err)
	assert.Contains(t, result.Warnings, "New deadline conflicts with Research Question Development (due 2026-03-10)")
}

func TestRedistribute_InvalidNewDeadline(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewCoordinatorService(env.students, env.phases, env.tasks, env.uow)
	ctx := context.Background()
	today := date(2026, time.March, 2)

	_, phase := env.seedStudentWithPhase(t, date(2026, time.April, 1))

	_, err := svc.RedistributeAfterDeadlineChange(ctx, contract.RedistributeRequest{
		PhaseID:     phase.ID,
		NewDeadline: date(2026, time.March, 1),
		Now:         &today,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRedistribute_RollbackOnTaskMoveFailure(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()
	today := date(2026, time.March, 2)

	_, phase := env.seedStudentWithPhase(t, date(2026, time.April, 1))
	task := testutil.NewTestTask(phase.ID, "Still open", date(2026, time.March, 20))
	require.NoError(t, env.tasks.Create(ctx, task))

	// Exec #1 updates the phase deadline, #2 moves the first task.
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     env.db,
		FailOn: 2,
		Err:    fmt.Errorf("injected move failure"),
	}
	svc := NewCoordinatorService(env.students, env.phases, env.tasks, failUoW)

	_, err := svc.RedistributeAfterDeadlineChange(ctx, contract.RedistributeRequest{
		PhaseID:     phase.ID,
		NewDeadline: date(2026, time.March, 4),
		Now:         &today,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected move failure")

	unchanged, err := env.phases.GetByID(ctx, phase.ID)
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.April, 1), unchanged.Deadline, "deadline change must roll back")

	kept, err := env.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.March, 20), kept.Date)
}
