package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mvestberg/phaseplan/internal/contract"
	"github.com/mvestberg/phaseplan/internal/domain"
	"github.com/mvestberg/phaseplan/internal/repository"
	"github.com/mvestberg/phaseplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultPrefs() domain.WorkDayPreferences {
	return domain.WorkDayPreferences{
		"monday":    domain.IntensityLight,
		"tuesday":   domain.IntensityLight,
		"wednesday": domain.IntensityHeavy,
		"thursday":  domain.IntensityLight,
		"friday":    domain.IntensityLight,
	}
}

func TestOnboard_CreatesStudentAndPhases(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewPhaseService(env.students, env.phases, env.uow)
	ctx := context.Background()
	today := date(2026, time.March, 2)

	result, err := svc.Onboard(ctx, contract.OnboardRequest{
		StudentName:    "Maya",
		Preferences:    defaultPrefs(),
		ThesisDeadline: ptr(date(2026, time.June, 1)),
		Phases: []contract.PhaseSelection{
			{Type: domain.PhaseLiteratureReview, Deadline: date(2026, time.April, 1)},
			{Type: domain.PhaseResearchQuestion, Deadline: date(2026, time.April, 20)},
		},
		Now: &today,
	})
	require.NoError(t, err)
	require.Len(t, result.Phases, 2)

	stored, err := env.students.GetByID(ctx, result.Student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maya", stored.Name)
	require.NotNil(t, stored.ThesisDeadline)
	assert.Equal(t, date(2026, time.June, 1), domain.DateOnly(*stored.ThesisDeadline))

	phases, err := env.phases.ListByStudent(ctx, result.Student.ID, false)
	require.NoError(t, err)
	require.Len(t, phases, 2)
	assert.Equal(t, "Literature Review", phases[0].Name)
	assert.Equal(t, 1, phases[0].OrderIndex)
	assert.Equal(t, date(2026, time.April, 1), phases[0].Deadline)
	assert.Equal(t, "Research Question Development", phases[1].Name)
	assert.Equal(t, 2, phases[1].OrderIndex)
}

func TestOnboard_ValidationFailures(t *testing.T) {
	today := date(2026, time.March, 2)
	base := func() contract.OnboardRequest {
		return contract.OnboardRequest{
			StudentName: "Maya",
			Preferences: defaultPrefs(),
			Phases: []contract.PhaseSelection{
				{Type: domain.PhaseLiteratureReview, Deadline: date(2026, time.April, 1)},
			},
			Now: &today,
		}
	}

	tests := []struct {
		name   string
		mutate func(*contract.OnboardRequest)
	}{
		{"empty name", func(r *contract.OnboardRequest) { r.StudentName = "" }},
		{"no phases", func(r *contract.OnboardRequest) { r.Phases = nil }},
		{"no work capacity", func(r *contract.OnboardRequest) {
			r.Preferences = domain.WorkDayPreferences{"monday": domain.IntensityNone}
		}},
		{"past deadline", func(r *contract.OnboardRequest) {
			r.Phases[0].Deadline = date(2026, time.February, 1)
		}},
		{"deadline today", func(r *contract.OnboardRequest) {
			r.Phases[0].Deadline = today
		}},
		{"unknown phase type", func(r *contract.OnboardRequest) {
			r.Phases[0].Type = "writing_sprint"
		}},
		{"duplicate phase", func(r *contract.OnboardRequest) {
			r.Phases = append(r.Phases, contract.PhaseSelection{
				Type: domain.PhaseLiteratureReview, Deadline: date(2026, time.April, 20),
			})
		}},
		{"phases out of canonical order", func(r *contract.OnboardRequest) {
			r.Phases = []contract.PhaseSelection{
				{Type: domain.PhaseResearchQuestion, Deadline: date(2026, time.April, 1)},
				{Type: domain.PhaseLiteratureReview, Deadline: date(2026, time.April, 20)},
			}
		}},
		{"deadlines not chronological", func(r *contract.OnboardRequest) {
			r.Phases = []contract.PhaseSelection{
				{Type: domain.PhaseLiteratureReview, Deadline: date(2026, time.April, 20)},
				{Type: domain.PhaseResearchQuestion, Deadline: date(2026, time.April, 1)},
			}
		}},
		{"thesis deadline before last phase", func(r *contract.OnboardRequest) {
			r.ThesisDeadline = ptr(date(2026, time.March, 15))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newServiceEnv(t)
			svc := NewPhaseService(env.students, env.phases, env.uow)
			ctx := context.Background()

			req := base()
			tt.mutate(&req)

			_, err := svc.Onboard(ctx, req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)

			students, err := env.students.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, students, "validation failure must not persist anything")
		})
	}
}

func TestOnboard_RollbackOnPhaseInsertFailure(t *testing.T) {
	env := newServiceEnv(t)
	ctx := context.Background()
	today := date(2026, time.March, 2)

	// Exec #1 inserts the student, #2 the first phase. Failing #2 must roll
	// the student insert back too.
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     env.db,
		FailOn: 2,
		Err:    fmt.Errorf("injected phase insert failure"),
	}
	svc := NewPhaseService(env.students, env.phases, failUoW)

	_, err := svc.Onboard(ctx, contract.OnboardRequest{
		StudentName: "Maya",
		Preferences: defaultPrefs(),
		Phases: []contract.PhaseSelection{
			{Type: domain.PhaseLiteratureReview, Deadline: date(2026, time.April, 1)},
		},
		Now: &today,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected phase insert failure")

	students, err := env.students.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, students)
}

func TestAddPhase_AppendsAfterExistingPlan(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewPhaseService(env.students, env.phases, env.uow)
	ctx := context.Background()
	today := date(2026, time.March, 2)

	student, _ := env.seedStudentWithPhase(t, date(2026, time.April, 1))

	phase, err := svc.AddPhase(ctx, contract.AddPhaseRequest{
		StudentID: student.ID,
		Type:      domain.PhaseResearchQuestion,
		Deadline:  date(2026, time.April, 20),
		Now:       &today,
	})
	require.NoError(t, err)
	assert.Equal(t, "Research Question Development", phase.Name)
	assert.Equal(t, 2, phase.OrderIndex)

	phases, err := env.phases.ListByStudent(ctx, student.ID, false)
	require.NoError(t, err)
	assert.Len(t, phases, 2)
}

func TestAddPhase_Rejections(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewPhaseService(env.students, env.phases, env.uow)
	ctx := context.Background()
	today := date(2026, time.March, 2)

	student, _ := env.seedStudentWithPhase(t, date(2026, time.April, 1))

	t.Run("duplicate active phase type", func(t *testing.T) {
		_, err := svc.AddPhase(ctx, contract.AddPhaseRequest{
			StudentID: student.ID,
			Type:      domain.PhaseLiteratureReview,
			Deadline:  date(2026, time.May, 1),
			Now:       &today,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("deadline before existing phases", func(t *testing.T) {
		_, err := svc.AddPhase(ctx, contract.AddPhaseRequest{
			StudentID: student.ID,
			Type:      domain.PhaseResearchQuestion,
			Deadline:  date(2026, time.March, 15),
			Now:       &today,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("past deadline", func(t *testing.T) {
		_, err := svc.AddPhase(ctx, contract.AddPhaseRequest{
			StudentID: student.ID,
			Type:      domain.PhaseResearchQuestion,
			Deadline:  date(2026, time.January, 1),
			Now:       &today,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown student", func(t *testing.T) {
		_, err := svc.AddPhase(ctx, contract.AddPhaseRequest{
			StudentID: "missing",
			Type:      domain.PhaseResearchQuestion,
			Deadline:  date(2026, time.April, 20),
			Now:       &today,
		})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestRemovePhase_CascadesTasksAndHistory(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewPhaseService(env.students, env.phases, env.uow)
	ctx := context.Background()

	student, phase := env.seedStudentWithPhase(t, date(2026, time.April, 1))

	task := testutil.NewTestTask(phase.ID, "Skim two articles", date(2026, time.March, 5))
	require.NoError(t, env.tasks.Create(ctx, task))
	entry := testutil.NewTestEntry(student.ID, phase.ID, date(2026, time.March, 3), 25)
	require.NoError(t, env.entries.Create(ctx, entry))

	require.NoError(t, svc.RemovePhase(ctx, phase.ID))

	_, err := env.phases.GetByID(ctx, phase.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	tasks, err := env.tasks.ListByPhase(ctx, phase.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	entries, err := env.entries.ListByPhase(ctx, phase.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRemovePhase_UnknownPhase(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewPhaseService(env.students, env.phases, env.uow)

	err := svc.RemovePhase(context.Background(), "missing")
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}
