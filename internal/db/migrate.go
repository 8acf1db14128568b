package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS students (
		id                   TEXT PRIMARY KEY,
		name                 TEXT NOT NULL,
		work_day_preferences TEXT NOT NULL DEFAULT '{}',
		thesis_deadline      TEXT,
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS phases (
		id          TEXT PRIMARY KEY,
		student_id  TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		phase_type  TEXT NOT NULL
		            CHECK(phase_type IN ('literature_review','research_question','methods_planning','irb_proposal')),
		name        TEXT NOT NULL,
		deadline    TEXT NOT NULL,
		order_index INTEGER NOT NULL DEFAULT 0,
		active      INTEGER NOT NULL DEFAULT 1,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_phases_student ON phases(student_id)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id            TEXT PRIMARY KEY,
		phase_id      TEXT NOT NULL REFERENCES phases(id) ON DELETE CASCADE,
		date          TEXT NOT NULL,
		description   TEXT NOT NULL,
		task_type     TEXT NOT NULL DEFAULT 'general'
		              CHECK(task_type IN ('documentation','consultation','writing','reading','research','analysis','design','general')),
		day_intensity TEXT NOT NULL DEFAULT 'light'
		              CHECK(day_intensity IN ('none','light','heavy')),
		priority      TEXT NOT NULL DEFAULT 'medium'
		              CHECK(priority IN ('high','medium','low')),
		completed     INTEGER NOT NULL DEFAULT 0,
		created_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_phase ON tasks(phase_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_date ON tasks(date)`,

	`CREATE TABLE IF NOT EXISTS progress_entries (
		id                 TEXT PRIMARY KEY,
		student_id         TEXT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		phase_id           TEXT NOT NULL REFERENCES phases(id) ON DELETE CASCADE,
		date               TEXT NOT NULL,
		completed_task_ids TEXT NOT NULL DEFAULT '[]',
		note               TEXT NOT NULL DEFAULT '',
		progress_pct       REAL NOT NULL DEFAULT 0,
		milestone          TEXT
		                   CHECK(milestone IS NULL OR milestone IN ('quarter_complete','half_complete','three_quarter_complete','phase_complete')),
		created_at         TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_progress_student ON progress_entries(student_id)`,
	`CREATE INDEX IF NOT EXISTS idx_progress_phase ON progress_entries(phase_id)`,
	`CREATE INDEX IF NOT EXISTS idx_progress_date ON progress_entries(date)`,
}
