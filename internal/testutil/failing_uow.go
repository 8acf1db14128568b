package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/mvestberg/phaseplan/internal/db"
)

// FailOnNthExecUoW is a unit of work that fails the Nth write inside the
// transaction, for tests asserting that multi-write operations roll back
// cleanly. Writes are counted from 1; reads pass through uncounted.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	counted := &execCounter{DBTX: tx, failOn: u.FailOn, err: u.Err}
	if fnErr := fn(ctx, counted); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type execCounter struct {
	db.DBTX
	calls  atomic.Int32
	failOn int32
	err    error
}

func (c *execCounter) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if c.calls.Add(1) == c.failOn {
		return nil, c.err
	}
	return c.DBTX.ExecContext(ctx, query, args...)
}
