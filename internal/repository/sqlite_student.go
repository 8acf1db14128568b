package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mvestberg/phaseplan/internal/db"
	"github.com/mvestberg/phaseplan/internal/domain"
)

// SQLiteStudentRepo implements StudentRepo over a db.DBTX, so the same code
// serves both direct reads and transaction-scoped writes.
type SQLiteStudentRepo struct {
	db db.DBTX
}

// NewSQLiteStudentRepo creates a new SQLiteStudentRepo.
func NewSQLiteStudentRepo(conn db.DBTX) *SQLiteStudentRepo {
	return &SQLiteStudentRepo{db: conn}
}

func (r *SQLiteStudentRepo) Create(ctx context.Context, s *domain.Student) error {
	prefs, err := marshalPreferences(s.Preferences)
	if err != nil {
		return err
	}
	query := `INSERT INTO students (id, name, work_day_preferences, thesis_deadline, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		prefs,
		nullableTimeToString(s.ThesisDeadline, dateLayout),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting student: %w", err)
	}
	return nil
}

func (r *SQLiteStudentRepo) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	query := `SELECT id, name, work_day_preferences, thesis_deadline, created_at, updated_at
		FROM students WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	s, err := scanStudent(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("student %s: %w", id, ErrNotFound)
	}
	return s, err
}

func (r *SQLiteStudentRepo) List(ctx context.Context) ([]*domain.Student, error) {
	query := `SELECT id, name, work_day_preferences, thesis_deadline, created_at, updated_at
		FROM students ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing students: %w", err)
	}
	defer rows.Close()

	var students []*domain.Student
	for rows.Next() {
		s, err := scanStudent(rows.Scan)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating students: %w", err)
	}
	return students, nil
}

func (r *SQLiteStudentRepo) Update(ctx context.Context, s *domain.Student) error {
	prefs, err := marshalPreferences(s.Preferences)
	if err != nil {
		return err
	}
	query := `UPDATE students SET name = ?, work_day_preferences = ?, thesis_deadline = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Name,
		prefs,
		nullableTimeToString(s.ThesisDeadline, dateLayout),
		nowUTC(),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating student: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("student %s: %w", s.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteStudentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting student: %w", err)
	}
	return nil
}

func scanStudent(scan func(dest ...any) error) (*domain.Student, error) {
	var s domain.Student
	var prefsRaw, createdAtStr, updatedAtStr string
	var thesisStr sql.NullString

	err := scan(&s.ID, &s.Name, &prefsRaw, &thesisStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning student: %w", err)
	}

	s.Preferences, err = unmarshalPreferences(prefsRaw)
	if err != nil {
		return nil, err
	}
	s.ThesisDeadline = parseNullableTime(thesisStr, dateLayout)

	if s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &s, nil
}
