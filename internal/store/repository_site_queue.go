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

type siteQueueRepository struct {
	q Querier
}

// NewSiteQueueRepository constructs a [SiteQueueRepository] running its
// statements on q.
func NewSiteQueueRepository(q Querier) SiteQueueRepository {
	return &siteQueueRepository{q: q}
}

// Enqueue appends entries to their site queues in order.
func (r *siteQueueRepository) Enqueue(ctx context.Context, entries []models.QueueEntry) error {
	for i, e := range entries {
		_, err := r.q.ExecContext(ctx, enqueueSiteRecord,
			e.SyncID,
			e.SiteID,
			e.TableName.String(),
			e.RecordID,
			string(e.Action),
			nullableJSON(e.Data),
			e.SourceSiteID,
		)
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "siteQueueRepository.Enqueue").
				Int("iteration", i).
				Int64("site_id", e.SiteID).
				Msg("failed to enqueue record")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}
	return nil
}

// Next returns the oldest limit entries of a site queue without removing
// them.
func (r *siteQueueRepository) Next(ctx context.Context, siteID int64, limit uint64) ([]models.RemoteRecord, error) {
	rows, err := r.q.QueryContext(ctx, nextQueuedRecords, siteID, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "siteQueueRepository.Next").Int64("site_id", siteID).Msg("failed to read site queue")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return collectRows(rows, int(min(limit, 1000)), func(rows *sql.Rows) (models.RemoteRecord, error) {
		var (
			rec    models.RemoteRecord
			action string
			data   []byte
		)
		if err := rows.Scan(&rec.SyncID, &rec.TableName, &rec.RecordID, &action, &data, &rec.SourceSiteID); err != nil {
			return models.RemoteRecord{}, err
		}
		rec.Action = models.RemoteAction(action)
		rec.RecordData = data
		return rec, nil
	})
}

// Length counts the entries of a site queue.
func (r *siteQueueRepository) Length(ctx context.Context, siteID int64) (int64, error) {
	var n int64
	if err := r.q.QueryRowContext(ctx, siteQueueLength, siteID).Scan(&n); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "siteQueueRepository.Length").Int64("site_id", siteID).Msg("failed to count site queue")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return n, nil
}

// Acknowledge removes the given entries from the site queue and returns how
// many were removed. Unknown ids are ignored.
func (r *siteQueueRepository) Acknowledge(ctx context.Context, siteID int64, syncIDs []string) (int64, error) {
	if len(syncIDs) == 0 {
		return 0, nil
	}

	query, args, err := buildAcknowledgeQuery(siteID, syncIDs)
	if err != nil {
		return 0, err
	}

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "siteQueueRepository.Acknowledge").Int64("site_id", siteID).Msg("failed to acknowledge records")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return n, nil
}
