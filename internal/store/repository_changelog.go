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

type changelogRepository struct {
	q Querier
}

// NewChangelogRepository constructs a [ChangelogRepository] running its
// statements on q.
func NewChangelogRepository(q Querier) ChangelogRepository {
	return &changelogRepository{q: q}
}

// Insert appends entry and returns the cursor the database assigned to it.
func (r *changelogRepository) Insert(ctx context.Context, entry models.Changelog) (int64, error) {
	log := logger.FromContext(ctx)

	var cursor int64
	err := r.q.QueryRowContext(ctx, insertChangelog,
		entry.TableName.String(),
		entry.RecordID,
		string(entry.RowAction),
		entry.NameID,
		entry.StoreID,
		entry.IsSyncUpdate,
		entry.SourceSiteID,
	).Scan(&cursor)
	if err != nil {
		log.Err(err).
			Str("func", "changelogRepository.Insert").
			Str("table_name", entry.TableName.String()).
			Str("record_id", entry.RecordID).
			Msg("failed to insert changelog entry")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return cursor, nil
}

// Changelogs returns at most limit deduplicated entries with a cursor of at
// least earliest, ordered by cursor.
func (r *changelogRepository) Changelogs(ctx context.Context, earliest int64, limit uint64, filter *models.ChangelogFilter) ([]models.Changelog, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildChangelogsQuery(earliest, limit, filter)
	if err != nil {
		log.Err(err).Str("func", "changelogRepository.Changelogs").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "changelogRepository.Changelogs").
			Int64("earliest", earliest).
			Msg("failed to execute query for changelogs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	entries, err := collectRows(rows, int(min(limit, 1000)), scanChangelog)
	if err != nil {
		log.Err(err).Str("func", "changelogRepository.Changelogs").Msg("failed to scan changelog rows")
		return nil, err
	}

	return entries, nil
}

// Count returns the number of deduplicated entries Changelogs would walk
// through from earliest on.
func (r *changelogRepository) Count(ctx context.Context, earliest int64, filter *models.ChangelogFilter) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildChangelogCountQuery(earliest, filter)
	if err != nil {
		log.Err(err).Str("func", "changelogRepository.Count").Msg("failed to create query")
		return 0, err
	}

	var count int64
	if err = r.q.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "changelogRepository.Count").Msg("failed to count changelogs")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// LatestCursor returns the greatest cursor, or 0 for an empty changelog.
func (r *changelogRepository) LatestCursor(ctx context.Context) (int64, error) {
	var cursor int64
	if err := r.q.QueryRowContext(ctx, latestChangelogCursor).Scan(&cursor); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "changelogRepository.LatestCursor").Msg("failed to get latest cursor")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return cursor, nil
}

// DeleteFrom removes every entry with a cursor of at least cursor.
func (r *changelogRepository) DeleteFrom(ctx context.Context, cursor int64) error {
	if _, err := r.q.ExecContext(ctx, deleteChangelogFrom, cursor); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "changelogRepository.DeleteFrom").
			Int64("cursor", cursor).
			Msg("failed to delete changelogs")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func scanChangelog(rows *sql.Rows) (models.Changelog, error) {
	var (
		entry     models.Changelog
		tableName string
		action    string
	)

	err := rows.Scan(
		&entry.Cursor,
		&tableName,
		&entry.RecordID,
		&action,
		&entry.NameID,
		&entry.StoreID,
		&entry.IsSyncUpdate,
		&entry.SourceSiteID,
	)
	if err != nil {
		return models.Changelog{}, err
	}

	entry.TableName = models.TableName(tableName)
	entry.RowAction = models.RowAction(action)
	return entry, nil
}
