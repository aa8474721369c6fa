package pgutils

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

// WithTx runs fn inside a transaction.
// It commits if fn returns nil, otherwise it rolls back and returns fn's error
// as is. Canceling ctx aborts the transaction.
func WithTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil) // READ COMMITTED; row locks serialize writers
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	err = fn(tx)
	if err != nil {
		rollback(ctx, tx, err)

		return err
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

type rollbacker interface {
	Rollback() error
}

// rollback only logs a failed rollback. The driver text stays out of the
// returned error, which callers may show to clients.
func rollback(ctx context.Context, tx rollbacker, cause error) {
	rbErr := tx.Rollback()
	if rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
		slog.ErrorContext(ctx, "rollback failed", "error", rbErr, "cause", cause)
	}
}
