// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/models"
)

type centralRecordRepository struct {
	q Querier
}

// NewCentralRecordRepository constructs a [CentralRecordRepository] running
// its statements on q.
func NewCentralRecordRepository(q Querier) CentralRecordRepository {
	return &centralRecordRepository{q: q}
}

// Append adds a version of a central record and returns its cursor.
func (r *centralRecordRepository) Append(ctx context.Context, table models.TableName, recordID string, data []byte) (int64, error) {
	var cursor int64
	if err := r.q.QueryRowContext(ctx, appendCentralRecord, table.String(), recordID, string(data)).Scan(&cursor); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "centralRecordRepository.Append").
			Str("table_name", table.String()).
			Str("record_id", recordID).
			Msg("failed to append central record")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return cursor, nil
}

// After returns at most limit records with a cursor greater than cursor.
func (r *centralRecordRepository) After(ctx context.Context, cursor int64, limit uint64) ([]models.CentralRecord, error) {
	rows, err := r.q.QueryContext(ctx, centralRecordsAfter, cursor, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "centralRecordRepository.After").
			Int64("cursor", cursor).
			Msg("failed to read central records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return collectRows(rows, int(min(limit, 1000)), func(rows *sql.Rows) (models.CentralRecord, error) {
		var (
			rec  models.CentralRecord
			data []byte
		)
		if err := rows.Scan(&rec.ID, &rec.TableName, &rec.RecordID, &data); err != nil {
			return models.CentralRecord{}, err
		}
		rec.Data = data
		return rec, nil
	})
}

// MaxCursor returns the greatest assigned cursor, 0 when there is none.
func (r *centralRecordRepository) MaxCursor(ctx context.Context) (int64, error) {
	var cursor int64
	if err := r.q.QueryRowContext(ctx, maxCentralCursor).Scan(&cursor); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "centralRecordRepository.MaxCursor").Msg("failed to read max cursor")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return cursor, nil
}
