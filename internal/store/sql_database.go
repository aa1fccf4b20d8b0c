// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements a local SQL vault that the import engine can
// write into instead of a remote vault. SQLite and PostgreSQL are
// supported; the driver is selected from the DSN.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-import/internal/config"
	"github.com/MKhiriev/go-pass-import/internal/logger"
	"github.com/MKhiriev/go-pass-import/migrations"
)

const (
	dialectSQLite   = "sqlite3"
	dialectPostgres = "pgx"

	maxAttempts  = 3
	retryBackoff = 50 * time.Millisecond
)

type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the local vault database named by cfg.DSN.
// "postgres://" and "postgresql://" DSNs use PostgreSQL; everything else is
// treated as a SQLite database file, with an optional "sqlite://" prefix.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	switch {
	case dsn == "":
		return nil, ErrUnsupportedDSN
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, dsn, log)
	default:
		return NewConnectSQLite(ctx, strings.TrimPrefix(dsn, "sqlite://"), log)
	}
}

// Dialect returns the database/sql driver name of the connection.
func (db *DB) Dialect() string { return db.dialect }

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// builder returns a statement builder using the placeholder format of the
// connected database.
func (db *DB) builder() sq.StatementBuilderType {
	return statementBuilder(db.dialect)
}

func statementBuilder(dialect string) sq.StatementBuilderType {
	if dialect == dialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// withRetry runs op up to maxAttempts times while the classifier reports
// the error as retryable.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = op()
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		db.logger.Warn().Err(err).Int("attempt", attempt).Msg("retryable database error")
		if attempt == maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
	return fmt.Errorf("giving up after %d attempts: %w", maxAttempts, err)
}

// inTx runs fn inside a transaction, rolling back on error.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

// mapWriteError turns driver errors of a failed write into store sentinels.
func (db *DB) mapWriteError(err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %w", ErrDuplicateRecord, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

func isUniqueViolation(err error) bool {
	return postgresError(err) == pgUniqueViolation || sqliteUniqueViolation(err)
}

// execUpdate runs a single-row UPDATE and reports [ErrRecordNotFound] when
// no row matched.
func (db *DB) execUpdate(ctx context.Context, caller, id, query string, args []any) error {
	var affected int64
	err := db.withRetry(ctx, func() error {
		res, execErr := db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", caller).Str("id", id).Msg("failed to update record")
		return db.mapWriteError(err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}
	return nil
}
