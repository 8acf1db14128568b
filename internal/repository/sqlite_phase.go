package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mvestberg/phaseplan/internal/db"
	"github.com/mvestberg/phaseplan/internal/domain"
)

// SQLitePhaseRepo implements PhaseRepo over a db.DBTX.
type SQLitePhaseRepo struct {
	db db.DBTX
}

// NewSQLitePhaseRepo creates a new SQLitePhaseRepo.
func NewSQLitePhaseRepo(conn db.DBTX) *SQLitePhaseRepo {
	return &SQLitePhaseRepo{db: conn}
}

func (r *SQLitePhaseRepo) Create(ctx context.Context, p *domain.Phase) error {
	query := `INSERT INTO phases (id, student_id, phase_type, name, deadline, order_index, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.StudentID,
		string(p.Type),
		p.Name,
		p.Deadline.Format(dateLayout),
		p.OrderIndex,
		boolToInt(p.Active),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting phase: %w", err)
	}
	return nil
}

func (r *SQLitePhaseRepo) GetByID(ctx context.Context, id string) (*domain.Phase, error) {
	query := `SELECT id, student_id, phase_type, name, deadline, order_index, active, created_at, updated_at
		FROM phases WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	p, err := scanPhase(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("phase %s: %w", id, ErrNotFound)
	}
	return p, err
}

func (r *SQLitePhaseRepo) ListByStudent(ctx context.Context, studentID string, includeInactive bool) ([]*domain.Phase, error) {
	query := `SELECT id, student_id, phase_type, name, deadline, order_index, active, created_at, updated_at
		FROM phases WHERE student_id = ?`
	if !includeInactive {
		query += ` AND active = 1`
	}
	query += ` ORDER BY order_index, created_at`

	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("listing phases: %w", err)
	}
	defer rows.Close()

	var phases []*domain.Phase
	for rows.Next() {
		p, err := scanPhase(rows.Scan)
		if err != nil {
			return nil, err
		}
		phases = append(phases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating phases: %w", err)
	}
	return phases, nil
}

func (r *SQLitePhaseRepo) Update(ctx context.Context, p *domain.Phase) error {
	query := `UPDATE phases SET name = ?, deadline = ?, order_index = ?, active = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Deadline.Format(dateLayout),
		p.OrderIndex,
		boolToInt(p.Active),
		nowUTC(),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating phase: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("phase %s: %w", p.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLitePhaseRepo) Deactivate(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE phases SET active = 0, updated_at = ? WHERE id = ?`, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("deactivating phase: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("phase %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLitePhaseRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM phases WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting phase: %w", err)
	}
	return nil
}

func scanPhase(scan func(dest ...any) error) (*domain.Phase, error) {
	var p domain.Phase
	var typeStr, deadlineStr, createdAtStr, updatedAtStr string
	var active int

	err := scan(&p.ID, &p.StudentID, &typeStr, &p.Name, &deadlineStr, &p.OrderIndex, &active, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning phase: %w", err)
	}

	p.Type = domain.PhaseType(typeStr)
	p.Active = intToBool(active)

	if p.Deadline, err = time.Parse(dateLayout, deadlineStr); err != nil {
		return nil, fmt.Errorf("parsing deadline: %w", err)
	}
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}
