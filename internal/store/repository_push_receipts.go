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

type pushReceiptRepository struct {
	q Querier
}

// NewPushReceiptRepository constructs a [PushReceiptRepository] running its
// statements on q.
func NewPushReceiptRepository(q Querier) PushReceiptRepository {
	return &pushReceiptRepository{q: q}
}

// Record stores the receipt of a pushed record. It returns false when the
// same (site, sync id, table) was already received.
func (r *pushReceiptRepository) Record(ctx context.Context, siteID int64, syncID string, table models.TableName) (bool, error) {
	res, err := r.q.ExecContext(ctx, recordPushReceipt, siteID, syncID, table.String())
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "pushReceiptRepository.Record").
			Int64("site_id", siteID).
			Str("sync_id", syncID).
			Msg("failed to record push receipt")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return affected == 1, nil
}

// AddPending remembers a record received in the current push session.
func (r *pushReceiptRepository) AddPending(ctx context.Context, siteID int64, table models.TableName, recordID string) error {
	if _, err := r.q.ExecContext(ctx, addPendingPush, siteID, table.String(), recordID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "pushReceiptRepository.AddPending").Int64("site_id", siteID).Msg("failed to add pending push")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

// DrainPending removes and returns the records of the current push session.
func (r *pushReceiptRepository) DrainPending(ctx context.Context, siteID int64) ([]models.RecordKey, error) {
	rows, err := r.q.QueryContext(ctx, drainPendingPushes, siteID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "pushReceiptRepository.DrainPending").Int64("site_id", siteID).Msg("failed to drain pending pushes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return collectRows(rows, 16, func(rows *sql.Rows) (models.RecordKey, error) {
		var (
			key   models.RecordKey
			table string
		)
		err := rows.Scan(&table, &key.RecordID)
		key.TableName = models.TableName(table)
		return key, err
	})
}

func (r *pushReceiptRepository) Clear(ctx context.Context, siteID int64) error {
	if _, err := r.q.ExecContext(ctx, clearPushReceipts, siteID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "pushReceiptRepository.Clear").Int64("site_id", siteID).Msg("failed to clear push receipts")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}
