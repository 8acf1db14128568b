package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mvestberg/phaseplan/internal/db"
	"github.com/mvestberg/phaseplan/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo over a db.DBTX.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

const taskColumns = `id, phase_id, date, description, task_type, day_intensity, priority, completed, created_at`

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.PhaseID,
		t.Date.Format(dateLayout),
		t.Description,
		string(t.Type),
		string(t.DayIntensity),
		string(t.Priority),
		boolToInt(t.Completed),
		t.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

// CreateBatch inserts every task. Callers run it inside a transaction so a
// generated schedule lands all at once or not at all.
func (r *SQLiteTaskRepo) CreateBatch(ctx context.Context, tasks []*domain.Task) error {
	for _, t := range tasks {
		if err := r.Create(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	t, err := scanTask(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return t, err
}

func (r *SQLiteTaskRepo) ListByPhase(ctx context.Context, phaseID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE phase_id = ? ORDER BY date, created_at`
	rows, err := r.db.QueryContext(ctx, query, phaseID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) MarkCompleted(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	query := `UPDATE tasks SET completed = 1 WHERE id IN (` + placeholders + `)`
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("marking tasks completed: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && int(n) != len(ids) {
		return fmt.Errorf("marking tasks completed: %d of %d ids matched: %w", n, len(ids), ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) UpdateDate(ctx context.Context, id string, date time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET date = ? WHERE id = ?`, date.Format(dateLayout), id)
	if err != nil {
		return fmt.Errorf("moving task: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) DeleteByPhase(ctx context.Context, phaseID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE phase_id = ?`, phaseID)
	if err != nil {
		return fmt.Errorf("deleting phase tasks: %w", err)
	}
	return nil
}

func scanTask(scan func(dest ...any) error) (*domain.Task, error) {
	var t domain.Task
	var dateStr, typeStr, intensityStr, priorityStr, createdAtStr string
	var completed int

	err := scan(&t.ID, &t.PhaseID, &dateStr, &t.Description, &typeStr, &intensityStr, &priorityStr, &completed, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.Type = domain.TaskType(typeStr)
	t.DayIntensity = domain.Intensity(intensityStr)
	t.Priority = domain.Priority(priorityStr)
	t.Completed = intToBool(completed)

	if t.Date, err = time.Parse(dateLayout, dateStr); err != nil {
		return nil, fmt.Errorf("parsing date: %w", err)
	}
	if t.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &t, nil
}
