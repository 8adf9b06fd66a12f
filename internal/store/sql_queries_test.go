// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/site-sync/models"
)

func TestBuildChangelogsQuery(t *testing.T) {
	tests := []struct {
		name     string
		filter   *models.ChangelogFilter
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "no filter",
			filter:   nil,
			wantSQL:  "SELECT cursor, table_name, record_id, row_action, name_id, store_id, is_sync_update, source_site_id FROM changelog_deduped WHERE cursor >= ? ORDER BY cursor ASC LIMIT 10",
			wantArgs: []any{int64(3)},
		},
		{
			name:     "local changes of two tables",
			filter:   models.NewChangelogFilter().WithTableNames(models.InvoiceTable, models.InvoiceLineTable).WithIsSyncUpdate(false),
			wantSQL:  "SELECT cursor, table_name, record_id, row_action, name_id, store_id, is_sync_update, source_site_id FROM changelog_deduped WHERE cursor >= ? AND table_name IN (?,?) AND is_sync_update = ? ORDER BY cursor ASC LIMIT 10",
			wantArgs: []any{int64(3), "invoice", "invoice_line", false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildChangelogsQuery(3, 10, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildChangelogCountQuery(t *testing.T) {
	query, args, err := buildChangelogCountQuery(0, models.NewChangelogFilter().WithStoreID("s1"))
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM changelog_deduped WHERE cursor >= ? AND store_id = ?", query)
	assert.Equal(t, []any{int64(0), "s1"}, args)
}

func TestBuildSyncBufferQuery(t *testing.T) {
	merge := models.SyncBufferActionMerge
	query, args, err := buildSyncBufferQuery(models.SyncBufferFilter{Action: &merge, OnlyPending: true})
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT record_id, table_name, action, data, received_datetime, integration_datetime, integration_error, source_site_id FROM sync_buffer WHERE action = ? AND integration_datetime IS NULL ORDER BY received_datetime ASC, record_id ASC",
		query)
	assert.Equal(t, []any{"MERGE"}, args)
}

func TestBuildUpsertRowQuery(t *testing.T) {
	query, args, err := buildUpsertRowQuery(&models.Unit{ID: "u1", Name: "tab", OrderIndex: 2, IsActive: true})
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO unit (id,name,description,order_index,is_active) VALUES (?,?,?,?,?) ON CONFLICT (id) DO UPDATE SET name = excluded.name, description = excluded.description, order_index = excluded.order_index, is_active = excluded.is_active",
		query)
	assert.Len(t, args, 5)
}

func TestBuildRepointQuery(t *testing.T) {
	query, args, err := buildRepointQuery(models.Reference{Table: models.ItemTable, Column: "unit_id"}, "old", "new")
	require.NoError(t, err)
	assert.Equal(t, "UPDATE item SET unit_id = ? WHERE unit_id = ? RETURNING id", query)
	assert.Equal(t, []any{"new", "old"}, args)

	_, _, err = buildRepointQuery(models.Reference{Table: models.ItemTable, Column: "password"}, "a", "b")
	assert.ErrorIs(t, err, ErrUnsupportedColumn)

	_, _, err = buildRepointQuery(models.Reference{Table: "users", Column: "id"}, "a", "b")
	assert.ErrorIs(t, err, models.ErrUnknownTableName)
}

func TestBuildAcknowledgeQuery(t *testing.T) {
	query, args, err := buildAcknowledgeQuery(4, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM site_queue WHERE site_id = $1 AND sync_id IN ($2,$3)", query)
	assert.Equal(t, []any{int64(4), "a", "b"}, args)
}

func TestBuildLatestSyncLogQuery(t *testing.T) {
	query, _, err := buildLatestSyncLogQuery(true)
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE (finished_datetime IS NOT NULL AND error_message IS NULL)")
	assert.Contains(t, query, "ORDER BY started_datetime DESC LIMIT 1")
}

func TestSqliteDSN(t *testing.T) {
	path, dsn := sqliteDSN("site.sqlite")
	assert.Equal(t, "site.sqlite", path)
	assert.Equal(t, "site.sqlite?"+sqliteDefaultParams, dsn)

	// configured parameters win, missing defaults are still added
	path, dsn = sqliteDSN("file:site.sqlite?_busy_timeout=100")
	assert.Equal(t, "site.sqlite", path)
	assert.Equal(t, "file:site.sqlite?_busy_timeout=100&_journal_mode=WAL&_txlock=immediate", dsn)

	path, dsn = sqliteDSN("site.sqlite?cache=shared")
	assert.Equal(t, "site.sqlite", path)
	assert.Equal(t, "site.sqlite?_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate&cache=shared", dsn)
}

func TestErrorClassifiers(t *testing.T) {
	pg := NewPostgresErrorClassifier()
	assert.Equal(t, Retryable, pg.Classify(&pgconn.PgError{Code: pgerrcode.DeadlockDetected}))
	assert.Equal(t, Retryable, pg.Classify(errors.Join(ErrExecutingQuery, &pgconn.PgError{Code: pgerrcode.SerializationFailure})))
	assert.Equal(t, NonRetryable, pg.Classify(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.Equal(t, NonRetryable, pg.Classify(errors.New("plain")))

	lite := NewSQLiteErrorClassifier()
	assert.Equal(t, Retryable, lite.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, NonRetryable, lite.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, lite.Classify(errors.New("plain")))
}
