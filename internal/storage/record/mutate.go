// Package record maps record structs onto single database tables and
// performs every write under its own explicit transaction.
//
// A write either affects at least one row and is committed, affects no
// row and leaves nothing behind, or fails and is rolled back before the
// error reaches the caller.
package record

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aanand-mishra/records-console/internal/storage"
)

const (
	stateBegin    = "BEGIN"
	stateCommit   = "COMMIT"
	stateRollback = "ROLLBACK"
)

// DB is the subset of *sql.DB used by this package.
type DB interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Mutate executes one parameterized write statement inside a transaction
// and returns the number of affected rows.
//
// A zero count is not an error: the transaction is closed without
// committing anything and (0, nil) is returned. Any failure while
// executing rolls the transaction back and returns an error wrapping
// storage.ErrRolledBack and the driver error.
func Mutate(ctx context.Context, db DB, query string, args ...any) (rows int64, err error) {
	log := zerolog.Ctx(ctx).With().
		Str("tx", uuid.NewString()).
		Str("prepare", query).
		Logger()
	startAt := time.Now()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	log.Debug().Str("state", stateBegin).Msg("transaction started")

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			log.Error().Str("state", stateRollback).Interface("panic", r).Msg("transaction aborted")
			panic(r)
		}
	}()

	result, err := tx.ExecContext(ctx, query, args...)
	if err == nil {
		rows, err = result.RowsAffected()
	}
	if err != nil {
		return 0, rollback(tx, log, startAt, err)
	}

	if rows == 0 {
		// Nothing matched; closing the empty transaction discards nothing.
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			return 0, fmt.Errorf("close empty transaction: %w", err)
		}
		log.Debug().
			Str("state", stateRollback).
			Int64("rows", 0).
			Str("cost", time.Since(startAt).String()).
			Msg("no rows affected")
		return 0, nil
	}

	if err := tx.Commit(); err != nil {
		log.Error().Err(err).Str("state", stateCommit).Msg("commit failed")
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	log.Debug().
		Str("state", stateCommit).
		Int64("rows", rows).
		Str("cost", time.Since(startAt).String()).
		Msg("transaction committed")
	return rows, nil
}

// rollback undoes tx after cause and returns the error to surface.
func rollback(tx *sql.Tx, log zerolog.Logger, startAt time.Time, cause error) error {
	err := fmt.Errorf("%w: %w", storage.ErrRolledBack, cause)

	// The driver has already rolled back when the context was cancelled.
	if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
		err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
	}

	log.Error().
		Err(cause).
		Str("state", stateRollback).
		Str("cost", time.Since(startAt).String()).
		Msg("transaction rolled back")
	return err
}
