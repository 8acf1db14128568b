package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/mvestberg/phaseplan/internal/db"
	"github.com/mvestberg/phaseplan/internal/domain"
	"github.com/mvestberg/phaseplan/internal/repository"
	"github.com/mvestberg/phaseplan/internal/testutil"
	"github.com/stretchr/testify/require"
)

// serviceEnv bundles a test database with repositories and a real UnitOfWork.
type serviceEnv struct {
	db       *sql.DB
	uow      db.UnitOfWork
	students *repository.SQLiteStudentRepo
	phases   *repository.SQLitePhaseRepo
	tasks    *repository.SQLiteTaskRepo
	entries  *repository.SQLiteProgressRepo
}

func newServiceEnv(t *testing.T) *serviceEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &serviceEnv{
		db:       database,
		uow:      testutil.NewTestUoW(database),
		students: repository.NewSQLiteStudentRepo(database),
		phases:   repository.NewSQLitePhaseRepo(database),
		tasks:    repository.NewSQLiteTaskRepo(database),
		entries:  repository.NewSQLiteProgressRepo(database),
	}
}

// seedStudentWithPhase persists one student with a single literature review
// phase due on the given deadline.
func (e *serviceEnv) seedStudentWithPhase(t *testing.T, deadline time.Time, opts ...testutil.StudentOption) (*domain.Student, *domain.Phase) {
	t.Helper()
	ctx := context.Background()

	student := testutil.NewTestStudent("Maya", opts...)
	require.NoError(t, e.students.Create(ctx, student))

	phase := testutil.NewTestPhase(student.ID, "Literature Review", deadline)
	require.NoError(t, e.phases.Create(ctx, phase))
	return student, phase
}

// date builds a UTC midnight timestamp. March 2nd 2026 is a Monday; most
// tests anchor there so work-day math stays readable.
func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }
