// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/migrations"
)

type dialect string

// Statement builders of both dialects. Repositories pick the one matching
// the database they run on.
var (
	sqliteSQL   = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	postgresSQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
)

const (
	dialectSQLite   dialect = "sqlite3"
	dialectPostgres dialect = "postgres"
)

// Querier is the subset of *sql.DB and *sql.Tx used by repositories, so
// the same repository code runs inside and outside a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DB is an open database together with its dialect specific helpers.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	dialect            dialect
}

// Migrate applies the migrations of the database role: the site schema on
// SQLite and the central schema on PostgreSQL.
func (db *DB) Migrate() error {
	if db.dialect == dialectPostgres {
		return migrations.MigrateCentral(db.DB)
	}
	return migrations.MigrateSite(db.DB)
}

// ErrorClassificator decides whether a failed statement may succeed when
// attempted again.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a lock timeout or a connection loss).
	Retryable
)

// Classify reports whether err is worth retrying on this database.
func (db *DB) Classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

// withTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "DB.withTx").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "DB.withTx").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// collectRows drains rows into a slice, scanning each row with scan.
func collectRows[T any](rows *sql.Rows, capacity int, scan func(*sql.Rows) (T, error)) ([]T, error) {
	defer rows.Close()

	result := make([]T, 0, capacity)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}
