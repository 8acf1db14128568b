// Package testutil provides the shared test database, failure-injecting unit
// of work, and entity fixtures used across repository, service, and CLI tests.
package testutil

import (
	"database/sql"
	"testing"

	"github.com/mvestberg/phaseplan/internal/db"
)

// NewTestDB returns a migrated in-memory SQLite database that is closed when
// the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

// NewTestUoW wraps the test database in a real unit of work.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
