// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/models"
)

// rowRepository writes domain rows and keeps the changelog in step with
// them. Both use the same querier, so inside a transaction a row and its
// changelog entry commit or roll back together.
type rowRepository struct {
	q         Querier
	changelog ChangelogRepository
}

// NewRowRepository constructs a [RowRepository] running its statements on q.
func NewRowRepository(q Querier) RowRepository {
	return &rowRepository{
		q:         q,
		changelog: NewChangelogRepository(q),
	}
}

// Upsert inserts or overwrites row.
func (r *rowRepository) Upsert(ctx context.Context, row models.Row, meta models.ChangeMeta) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertRowQuery(row)
	if err != nil {
		log.Err(err).Str("func", "rowRepository.Upsert").Msg("failed to create query")
		return err
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "rowRepository.Upsert").
			Str("table_name", row.Table().String()).
			Str("record_id", row.RecordID()).
			Msg("failed to upsert row")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return r.logChange(ctx, row, models.RowActionUpsert, meta)
}

// Delete removes a row. Deleting a missing row is a no-op and writes no
// changelog entry.
func (r *rowRepository) Delete(ctx context.Context, table models.TableName, recordID string, meta models.ChangeMeta) error {
	log := logger.FromContext(ctx)

	row, err := r.Find(ctx, table, recordID)
	if errors.Is(err, ErrRowNotFound) {
		log.Debug().
			Str("func", "rowRepository.Delete").
			Str("table_name", table.String()).
			Str("record_id", recordID).
			Msg("row to delete does not exist")
		return nil
	}
	if err != nil {
		return err
	}

	query, args, err := sqliteSQL.Delete(table.String()).Where(sq.Eq{"id": recordID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "rowRepository.Delete").
			Str("table_name", table.String()).
			Str("record_id", recordID).
			Msg("failed to delete row")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return r.logChange(ctx, row, models.RowActionDelete, meta)
}

// Find returns the row with the given id or [ErrRowNotFound].
func (r *rowRepository) Find(ctx context.Context, table models.TableName, recordID string) (models.Row, error) {
	rows, err := r.FindBy(ctx, table, "id", recordID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrRowNotFound
	}
	return rows[0], nil
}

// FindBy returns the rows of table whose column equals value, ordered by id.
func (r *rowRepository) FindBy(ctx context.Context, table models.TableName, column string, value any) ([]models.Row, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindRowsQuery(table, column, value)
	if err != nil {
		log.Err(err).Str("func", "rowRepository.FindBy").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "rowRepository.FindBy").
			Str("table_name", table.String()).
			Str("column", column).
			Msg("failed to execute query for rows")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return collectRows(rows, 4, func(rows *sql.Rows) (models.Row, error) {
		row, err := models.NewRow(table)
		if err != nil {
			return nil, err
		}
		if err = rows.Scan(row.ScanTargets()...); err != nil {
			return nil, err
		}
		return row, nil
	})
}

// Repoint rewrites ref.Column from one id to another and returns the ids of
// the rows it touched.
func (r *rowRepository) Repoint(ctx context.Context, ref models.Reference, from, to string, meta models.ChangeMeta) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRepointQuery(ref, from, to)
	if err != nil {
		log.Err(err).Str("func", "rowRepository.Repoint").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "rowRepository.Repoint").
			Str("table_name", ref.Table.String()).
			Str("column", ref.Column).
			Msg("failed to repoint references")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	ids, err := collectRows(rows, 4, func(rows *sql.Rows) (string, error) {
		var id string
		err := rows.Scan(&id)
		return id, err
	})
	if err != nil {
		return nil, err
	}

	if !ref.Table.IsRemote() {
		return ids, nil
	}

	for _, id := range ids {
		row, err := r.Find(ctx, ref.Table, id)
		if err != nil {
			return nil, err
		}
		if err = r.logChange(ctx, row, models.RowActionUpsert, meta); err != nil {
			return nil, err
		}
	}

	return ids, nil
}

// logChange appends the changelog entry of a remote table write.
func (r *rowRepository) logChange(ctx context.Context, row models.Row, action models.RowAction, meta models.ChangeMeta) error {
	if !row.Table().IsRemote() {
		return nil
	}

	entry := models.Changelog{
		TableName:    row.Table(),
		RecordID:     row.RecordID(),
		RowAction:    action,
		IsSyncUpdate: meta.IsSyncUpdate,
		SourceSiteID: meta.SourceSiteID,
	}
	if scoped, ok := row.(models.ChangelogScoped); ok {
		entry.StoreID = scoped.ChangelogStoreID()
		entry.NameID = scoped.ChangelogNameID()
	}

	_, err := r.changelog.Insert(ctx, entry)
	return err
}
