package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mvestberg/phaseplan/internal/db"
	"github.com/mvestberg/phaseplan/internal/domain"
)

// SQLiteProgressRepo implements ProgressRepo over a db.DBTX.
type SQLiteProgressRepo struct {
	db db.DBTX
}

// NewSQLiteProgressRepo creates a new SQLiteProgressRepo.
func NewSQLiteProgressRepo(conn db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: conn}
}

const progressColumns = `id, student_id, phase_id, date, completed_task_ids, note, progress_pct, milestone, created_at`

func (r *SQLiteProgressRepo) Create(ctx context.Context, e *domain.ProgressEntry) error {
	ids, err := marshalTaskIDs(e.CompletedTaskIDs)
	if err != nil {
		return err
	}
	var milestone any
	if e.Milestone != nil {
		milestone = string(*e.Milestone)
	}

	query := `INSERT INTO progress_entries (` + progressColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		e.ID,
		e.StudentID,
		e.PhaseID,
		e.Date.Format(dateLayout),
		ids,
		e.Note,
		e.ProgressPct,
		milestone,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting progress entry: %w", err)
	}
	return nil
}

func (r *SQLiteProgressRepo) ListByPhase(ctx context.Context, phaseID string) ([]*domain.ProgressEntry, error) {
	query := `SELECT ` + progressColumns + ` FROM progress_entries WHERE phase_id = ? ORDER BY date, created_at`
	return r.list(ctx, query, phaseID)
}

func (r *SQLiteProgressRepo) ListByStudent(ctx context.Context, studentID string) ([]*domain.ProgressEntry, error) {
	query := `SELECT ` + progressColumns + ` FROM progress_entries WHERE student_id = ? ORDER BY date, created_at`
	return r.list(ctx, query, studentID)
}

func (r *SQLiteProgressRepo) LatestByPhase(ctx context.Context, phaseID string) (*domain.ProgressEntry, error) {
	query := `SELECT ` + progressColumns + ` FROM progress_entries
		WHERE phase_id = ? ORDER BY date DESC, created_at DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, phaseID)
	e, err := scanProgressEntry(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("progress for phase %s: %w", phaseID, ErrNotFound)
	}
	return e, err
}

func (r *SQLiteProgressRepo) list(ctx context.Context, query string, arg any) ([]*domain.ProgressEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("listing progress entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.ProgressEntry
	for rows.Next() {
		e, err := scanProgressEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating progress entries: %w", err)
	}
	return entries, nil
}

func scanProgressEntry(scan func(dest ...any) error) (*domain.ProgressEntry, error) {
	var e domain.ProgressEntry
	var dateStr, idsRaw, createdAtStr string
	var milestoneStr sql.NullString

	err := scan(&e.ID, &e.StudentID, &e.PhaseID, &dateStr, &idsRaw, &e.Note, &e.ProgressPct, &milestoneStr, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning progress entry: %w", err)
	}

	if e.CompletedTaskIDs, err = unmarshalTaskIDs(idsRaw); err != nil {
		return nil, err
	}
	if milestoneStr.Valid && milestoneStr.String != "" {
		m := domain.MilestoneType(milestoneStr.String)
		e.Milestone = &m
	}

	if e.Date, err = time.Parse(dateLayout, dateStr); err != nil {
		return nil, fmt.Errorf("parsing date: %w", err)
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &e, nil
}
