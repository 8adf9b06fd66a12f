// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRowNotFound is returned when a domain row looked up by id does not
	// exist.
	ErrRowNotFound = errors.New("row was not found")

	// ErrSyncBufferRowNotFound is returned when no buffered record matches
	// the requested table and record id.
	ErrSyncBufferRowNotFound = errors.New("sync buffer row was not found")

	// ErrSiteAlreadyExists is returned when a site with the same id, uuid or
	// name is already registered on the central server.
	ErrSiteAlreadyExists = errors.New("site already exists")

	// ErrSiteNotFound is returned when a site lookup produces no rows.
	ErrSiteNotFound = errors.New("site was not found")

	// ErrNothingToSave is returned when a write completes without error but
	// affects zero rows.
	ErrNothingToSave = errors.New("no rows were affected")

	// ErrUnsupportedColumn is returned when a dynamic query names a column
	// the target table does not have.
	ErrUnsupportedColumn = errors.New("unsupported column")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrDecodingData is returned when a stored JSON column cannot be decoded.
	ErrDecodingData = errors.New("failed to decode stored data")
)
