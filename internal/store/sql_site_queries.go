// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/site-sync/models"
)

const (
	insertChangelog = `
		INSERT INTO changelog (
			table_name,
			record_id,
			row_action,
			name_id,
			store_id,
			is_sync_update,
			source_site_id
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING cursor;`

	latestChangelogCursor = `SELECT COALESCE(MAX(cursor), 0) FROM changelog;`

	deleteChangelogFrom = `DELETE FROM changelog WHERE cursor >= ?;`

	upsertSyncBuffer = `
		INSERT INTO sync_buffer (
			record_id,
			table_name,
			action,
			data,
			received_datetime,
			integration_datetime,
			integration_error,
			source_site_id
		) VALUES (?, ?, ?, ?, ?, NULL, NULL, ?)
		ON CONFLICT (table_name, record_id) DO UPDATE SET
			action = excluded.action,
			data = excluded.data,
			received_datetime = excluded.received_datetime,
			integration_datetime = NULL,
			integration_error = NULL,
			source_site_id = excluded.source_site_id;`

	getSyncBufferRow = `
		SELECT
			record_id,
			table_name,
			action,
			data,
			received_datetime,
			integration_datetime,
			integration_error,
			source_site_id
		FROM sync_buffer
		WHERE table_name = ? AND record_id = ?;`

	markSyncBufferIntegrated = `
		UPDATE sync_buffer
		SET integration_datetime = ?, integration_error = ?
		WHERE table_name = ? AND record_id = ?;`

	markSyncBufferError = `
		UPDATE sync_buffer
		SET integration_error = ?
		WHERE table_name = ? AND record_id = ?;`

	countPendingSyncBuffer = `SELECT COUNT(*) FROM sync_buffer WHERE integration_datetime IS NULL;`

	getKeyValue = `SELECT value_string, value_int, value_bool FROM key_value_store WHERE id = ?;`

	setKeyValue = `
		INSERT INTO key_value_store (id, value_string, value_int, value_bool)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			value_string = excluded.value_string,
			value_int = excluded.value_int,
			value_bool = excluded.value_bool;`
)

var changelogColumns = []string{
	"cursor",
	"table_name",
	"record_id",
	"row_action",
	"name_id",
	"store_id",
	"is_sync_update",
	"source_site_id",
}

var syncBufferColumns = []string{
	"record_id",
	"table_name",
	"action",
	"data",
	"received_datetime",
	"integration_datetime",
	"integration_error",
	"source_site_id",
}

// applyChangelogFilter adds the non-nil filter fields as WHERE conditions.
func applyChangelogFilter(query sq.SelectBuilder, filter *models.ChangelogFilter) sq.SelectBuilder {
	if filter == nil {
		return query
	}

	if len(filter.TableNames) > 0 {
		tables := make([]string, 0, len(filter.TableNames))
		for _, t := range filter.TableNames {
			tables = append(tables, t.String())
		}
		query = query.Where(sq.Eq{"table_name": tables})
	}
	if filter.NameID != nil {
		query = query.Where(sq.Eq{"name_id": *filter.NameID})
	}
	if filter.StoreID != nil {
		query = query.Where(sq.Eq{"store_id": *filter.StoreID})
	}
	if filter.IsSyncUpdate != nil {
		query = query.Where(sq.Eq{"is_sync_update": *filter.IsSyncUpdate})
	}
	if filter.Action != nil {
		query = query.Where(sq.Eq{"row_action": string(*filter.Action)})
	}
	if filter.SourceSiteID != nil {
		query = query.Where(sq.Eq{"source_site_id": *filter.SourceSiteID})
	}

	return query
}

// buildChangelogsQuery selects deduplicated changelog rows from earliest on,
// in cursor order.
func buildChangelogsQuery(earliest int64, limit uint64, filter *models.ChangelogFilter) (string, []any, error) {
	query := sqliteSQL.
		Select(changelogColumns...).
		From("changelog_deduped").
		Where(sq.GtOrEq{"cursor": earliest})

	query = applyChangelogFilter(query, filter).
		OrderBy("cursor ASC").
		Limit(limit)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlStr, args, nil
}

// buildChangelogCountQuery counts deduplicated changelog rows from earliest on.
func buildChangelogCountQuery(earliest int64, filter *models.ChangelogFilter) (string, []any, error) {
	query := sqliteSQL.
		Select("COUNT(*)").
		From("changelog_deduped").
		Where(sq.GtOrEq{"cursor": earliest})

	sqlStr, args, err := applyChangelogFilter(query, filter).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlStr, args, nil
}

// buildSyncBufferQuery selects buffered rows in integration order.
func buildSyncBufferQuery(filter models.SyncBufferFilter) (string, []any, error) {
	query := sqliteSQL.
		Select(syncBufferColumns...).
		From("sync_buffer")

	if filter.Action != nil {
		query = query.Where(sq.Eq{"action": string(*filter.Action)})
	}
	if len(filter.TableNames) > 0 {
		query = query.Where(sq.Eq{"table_name": filter.TableNames})
	}
	if filter.OnlyPending {
		query = query.Where(sq.Eq{"integration_datetime": nil})
	}

	sqlStr, args, err := query.OrderBy("received_datetime ASC", "record_id ASC").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlStr, args, nil
}

// buildUpsertRowQuery inserts row or, when its id exists, overwrites every
// other column.
func buildUpsertRowQuery(row models.Row) (string, []any, error) {
	columns := row.Columns()

	updates := make([]string, 0, len(columns)-1)
	for _, c := range columns[1:] {
		updates = append(updates, c+" = excluded."+c)
	}

	suffix := "ON CONFLICT (id) DO NOTHING"
	if len(updates) > 0 {
		suffix = "ON CONFLICT (id) DO UPDATE SET " + strings.Join(updates, ", ")
	}

	sqlStr, args, err := sqliteSQL.
		Insert(row.Table().String()).
		Columns(columns...).
		Values(row.Values()...).
		Suffix(suffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlStr, args, nil
}

// buildFindRowsQuery selects rows of table whose column equals value.
func buildFindRowsQuery(table models.TableName, column string, value any) (string, []any, error) {
	row, err := models.NewRow(table)
	if err != nil {
		return "", nil, err
	}
	if !hasColumn(row, column) {
		return "", nil, fmt.Errorf("%w: %s.%s", ErrUnsupportedColumn, table, column)
	}

	sqlStr, args, err := sqliteSQL.
		Select(row.Columns()...).
		From(table.String()).
		Where(sq.Eq{column: value}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlStr, args, nil
}

// buildRepointQuery moves every reference to from over to to and returns the
// ids of the touched rows.
func buildRepointQuery(ref models.Reference, from, to string) (string, []any, error) {
	row, err := models.NewRow(ref.Table)
	if err != nil {
		return "", nil, err
	}
	if !hasColumn(row, ref.Column) {
		return "", nil, fmt.Errorf("%w: %s.%s", ErrUnsupportedColumn, ref.Table, ref.Column)
	}

	sqlStr, args, err := sqliteSQL.
		Update(ref.Table.String()).
		Set(ref.Column, to).
		Where(sq.Eq{ref.Column: from}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlStr, args, nil
}

func hasColumn(row models.Row, column string) bool {
	for _, c := range row.Columns() {
		if c == column {
			return true
		}
	}
	return false
}
