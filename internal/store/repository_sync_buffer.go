// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/models"
)

type syncBufferRepository struct {
	q Querier
}

// NewSyncBufferRepository constructs a [SyncBufferRepository] running its
// statements on q.
func NewSyncBufferRepository(q Querier) SyncBufferRepository {
	return &syncBufferRepository{q: q}
}

// Upsert stores rows, overwriting earlier versions of the same records and
// resetting their integration state.
func (r *syncBufferRepository) Upsert(ctx context.Context, rows []models.SyncBufferRow) error {
	log := logger.FromContext(ctx)

	for i, row := range rows {
		received := row.ReceivedDatetime
		if received.IsZero() {
			received = time.Now()
		}

		_, err := r.q.ExecContext(ctx, upsertSyncBuffer,
			row.RecordID,
			row.TableName,
			string(row.Action),
			string(row.Data),
			received.UTC(),
			row.SourceSiteID,
		)
		if err != nil {
			log.Err(err).
				Str("func", "syncBufferRepository.Upsert").
				Int("iteration", i).
				Str("table_name", row.TableName).
				Str("record_id", row.RecordID).
				Msg("failed to upsert sync buffer row")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return nil
}

// Get returns one buffered row or [ErrSyncBufferRowNotFound].
func (r *syncBufferRepository) Get(ctx context.Context, table, recordID string) (models.SyncBufferRow, error) {
	row := r.q.QueryRowContext(ctx, getSyncBufferRow, table, recordID)

	item, err := scanSyncBufferRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncBufferRow{}, ErrSyncBufferRowNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncBufferRepository.Get").
			Str("table_name", table).
			Str("record_id", recordID).
			Msg("failed to get sync buffer row")
		return models.SyncBufferRow{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// Find returns the rows matching filter ordered by received datetime, then
// record id.
func (r *syncBufferRepository) Find(ctx context.Context, filter models.SyncBufferFilter) ([]models.SyncBufferRow, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSyncBufferQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "syncBufferRepository.Find").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "syncBufferRepository.Find").Msg("failed to execute query for sync buffer rows")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	result, err := collectRows(rows, 100, func(rows *sql.Rows) (models.SyncBufferRow, error) {
		return scanSyncBufferRow(rows)
	})
	if err != nil {
		log.Err(err).Str("func", "syncBufferRepository.Find").Msg("failed to scan sync buffer rows")
		return nil, err
	}

	return result, nil
}

// MarkIntegrated records a successful (or deliberately ignored) integration.
func (r *syncBufferRepository) MarkIntegrated(ctx context.Context, table, recordID string, at time.Time, ignoredReason *string) error {
	return r.update(ctx, "syncBufferRepository.MarkIntegrated", markSyncBufferIntegrated, at.UTC(), ignoredReason, table, recordID)
}

// MarkIntegrationError records why integrating a row failed. The row stays
// pending.
func (r *syncBufferRepository) MarkIntegrationError(ctx context.Context, table, recordID, message string) error {
	return r.update(ctx, "syncBufferRepository.MarkIntegrationError", markSyncBufferError, message, table, recordID)
}

func (r *syncBufferRepository) update(ctx context.Context, funcName, query string, args ...any) error {
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to update sync buffer row")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrSyncBufferRowNotFound
	}

	return nil
}

// CountPending returns the number of rows not integrated yet.
func (r *syncBufferRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	if err := r.q.QueryRowContext(ctx, countPendingSyncBuffer).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "syncBufferRepository.CountPending").Msg("failed to count pending rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSyncBufferRow(s rowScanner) (models.SyncBufferRow, error) {
	var (
		item   models.SyncBufferRow
		action string
		data   []byte
	)

	err := s.Scan(
		&item.RecordID,
		&item.TableName,
		&action,
		&data,
		&item.ReceivedDatetime,
		&item.IntegrationDatetime,
		&item.IntegrationError,
		&item.SourceSiteID,
	)
	if err != nil {
		return models.SyncBufferRow{}, err
	}

	item.Action = models.SyncBufferAction(action)
	item.Data = data
	return item, nil
}
