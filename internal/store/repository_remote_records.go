// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/models"
)

type remoteRecordRepository struct {
	q Querier
}

// NewRemoteRecordRepository constructs a [RemoteRecordRepository] running
// its statements on q.
func NewRemoteRecordRepository(q Querier) RemoteRecordRepository {
	return &remoteRecordRepository{q: q}
}

// Upsert stores the latest pushed version of a record.
func (r *remoteRecordRepository) Upsert(ctx context.Context, rec models.RemoteRecordEntry) error {
	_, err := r.q.ExecContext(ctx, upsertRemoteRecord,
		rec.TableName.String(),
		rec.RecordID,
		string(rec.Action),
		rec.StoreID,
		rec.NameID,
		rec.SourceSiteID,
		nullableJSON(rec.Data),
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "remoteRecordRepository.Upsert").
			Str("table_name", rec.TableName.String()).
			Str("record_id", rec.RecordID).
			Msg("failed to upsert remote record")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

// Get returns a stored record or [ErrRowNotFound].
func (r *remoteRecordRepository) Get(ctx context.Context, table models.TableName, recordID string) (models.RemoteRecordEntry, error) {
	rec, err := scanRemoteRecord(r.q.QueryRowContext(ctx, getRemoteRecord, table.String(), recordID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.RemoteRecordEntry{}, ErrRowNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "remoteRecordRepository.Get").Msg("failed to scan remote record")
		return models.RemoteRecordEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return rec, nil
}

// ForStores returns every live record of the given stores.
func (r *remoteRecordRepository) ForStores(ctx context.Context, storeIDs []string) ([]models.RemoteRecordEntry, error) {
	if len(storeIDs) == 0 {
		return nil, nil
	}

	query, args, err := buildRemoteRecordsForStoresQuery(storeIDs)
	if err != nil {
		return nil, err
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "remoteRecordRepository.ForStores").
			Int("stores", len(storeIDs)).
			Msg("failed to read remote records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return collectRows(rows, 100, func(rows *sql.Rows) (models.RemoteRecordEntry, error) {
		return scanRemoteRecord(rows)
	})
}

func scanRemoteRecord(s rowScanner) (models.RemoteRecordEntry, error) {
	var (
		rec    models.RemoteRecordEntry
		table  string
		action string
		data   []byte
	)
	err := s.Scan(&table, &rec.RecordID, &action, &rec.StoreID, &rec.NameID, &rec.SourceSiteID, &data, &rec.UpdatedAt)
	if err != nil {
		return models.RemoteRecordEntry{}, err
	}

	rec.TableName = models.TableName(table)
	rec.Action = models.PushAction(action)
	rec.Data = data
	return rec, nil
}

// nullableJSON stores empty payloads as NULL.
func nullableJSON(data []byte) any {
	if len(data) == 0 {
		return nil
	}
	return string(data)
}
