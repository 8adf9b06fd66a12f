// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/site-sync/internal/config"
	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/models"
)

func newTestSiteStorage(t *testing.T) SiteStorage {
	t.Helper()

	cfg := config.DB{DSN: filepath.Join(t.TempDir(), "site.sqlite"), MaxOpenConns: 1}
	db, err := NewConnectSQLite(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())
	return NewSiteStorage(db)
}

func strPtr(s string) *string { return &s }

func testStockLine(id, storeID string) *models.StockLine {
	return &models.StockLine{
		ID:       id,
		ItemID:   "item1",
		StoreID:  storeID,
		PackSize: 1,
	}
}

// ── Changelog ───────────────────────────────────────────────────────────────

func TestChangelog_OrderAndFloor(t *testing.T) {
	s := newTestSiteStorage(t)
	ctx := context.Background()
	repo := s.Repositories().Changelog

	var cursors []int64
	for _, id := range []string{"a", "b", "c"} {
		c, err := repo.Insert(ctx, models.Changelog{
			TableName: models.StockLineTable,
			RecordID:  id,
			RowAction: models.RowActionUpsert,
		})
		require.NoError(t, err)
		cursors = append(cursors, c)
	}
	assert.Less(t, cursors[0], cursors[1])
	assert.Less(t, cursors[1], cursors[2])

	entries, err := repo.Changelogs(ctx, cursors[1], 10, nil)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].RecordID)
	assert.Equal(t, "c", entries[1].RecordID)

	limited, err := repo.Changelogs(ctx, 0, 1, nil)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "a", limited[0].RecordID)

	latest, err := repo.LatestCursor(ctx)
	require.NoError(t, err)
	assert.Equal(t, cursors[2], latest)
}

func TestChangelog_DedupKeepsLatestAction(t *testing.T) {
	s := newTestSiteStorage(t)
	ctx := context.Background()
	repo := s.Repositories().Changelog

	var last int64
	for _, action := range []models.RowAction{models.RowActionUpsert, models.RowActionUpsert, models.RowActionDelete} {
		c, err := repo.Insert(ctx, models.Changelog{
			TableName: models.InvoiceTable,
			RecordID:  "inv1",
			RowAction: action,
		})
		require.NoError(t, err)
		last = c
	}

	entries, err := repo.Changelogs(ctx, 0, 10, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.RowActionDelete, entries[0].RowAction)
	assert.Equal(t, last, entries[0].Cursor)

	count, err := repo.Count(ctx, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestChangelog_Filter(t *testing.T) {
	s := newTestSiteStorage(t)
	ctx := context.Background()
	repo := s.Repositories().Changelog

	site := int64(7)
	inserts := []models.Changelog{
		{TableName: models.StockLineTable, RecordID: "s1", RowAction: models.RowActionUpsert, StoreID: strPtr("store1")},
		{TableName: models.StockLineTable, RecordID: "s2", RowAction: models.RowActionUpsert, IsSyncUpdate: true, SourceSiteID: &site},
		{TableName: models.InvoiceTable, RecordID: "i1", RowAction: models.RowActionDelete, StoreID: strPtr("store2")},
	}
	for _, e := range inserts {
		_, err := repo.Insert(ctx, e)
		require.NoError(t, err)
	}

	local, err := repo.Changelogs(ctx, 0, 10, models.NewChangelogFilter().WithIsSyncUpdate(false))
	require.NoError(t, err)
	require.Len(t, local, 2)
	assert.Equal(t, "s1", local[0].RecordID)
	assert.Equal(t, "i1", local[1].RecordID)

	stock, err := repo.Count(ctx, 0, models.NewChangelogFilter().WithTableNames(models.StockLineTable))
	require.NoError(t, err)
	assert.Equal(t, int64(2), stock)

	fromSite, err := repo.Changelogs(ctx, 0, 10, models.NewChangelogFilter().WithSourceSiteID(site))
	require.NoError(t, err)
	require.Len(t, fromSite, 1)
	assert.Equal(t, "s2", fromSite[0].RecordID)
	require.NotNil(t, fromSite[0].SourceSiteID)
	assert.Equal(t, site, *fromSite[0].SourceSiteID)

	byStore, err := repo.Changelogs(ctx, 0, 10, models.NewChangelogFilter().WithStoreID("store2").WithAction(models.RowActionDelete))
	require.NoError(t, err)
	require.Len(t, byStore, 1)
	assert.Equal(t, "i1", byStore[0].RecordID)
}

func TestChangelog_DeleteFrom(t *testing.T) {
	s := newTestSiteStorage(t)
	ctx := context.Background()
	repo := s.Repositories().Changelog

	var cursors []int64
	for _, id := range []string{"a", "b", "c"} {
		c, err := repo.Insert(ctx, models.Changelog{TableName: models.StockLineTable, RecordID: id, RowAction: models.RowActionUpsert})
		require.NoError(t, err)
		cursors = append(cursors, c)
	}

	require.NoError(t, repo.DeleteFrom(ctx, cursors[1]))

	entries, err := repo.Changelogs(ctx, 0, 10, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].RecordID)
}

func TestChangelog_LatestCursorEmpty(t *testing.T) {
	s := newTestSiteStorage(t)

	latest, err := s.Repositories().Changelog.LatestCursor(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), latest)
}

// ── Rows ────────────────────────────────────────────────────────────────────

func TestRows_UpsertWritesChangelog(t *testing.T) {
	s := newTestSiteStorage(t)
	ctx := context.Background()
	repos := s.Repositories()

	supplier := "name1"
	line := testStockLine("sl1", "store1")
	line.SupplierID = &supplier
	require.NoError(t, repos.Rows.Upsert(ctx, line, models.LocalChange()))

	line.AvailableNumberOfPacks = 10
	require.NoError(t, repos.Rows.Upsert(ctx, line, models.LocalChange()))

	found, err := repos.Rows.Find(ctx, models.StockLineTable, "sl1")
	require.NoError(t, err)
	assert.Equal(t, float64(10), found.(*models.StockLine).AvailableNumberOfPacks)

	entries, err := repos.Changelog.Changelogs(ctx, 0, 10, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.RowActionUpsert, entries[0].RowAction)
	require.NotNil(t, entries[0].StoreID)
	assert.Equal(t, "store1", *entries[0].StoreID)
	require.NotNil(t, entries[0].NameID)
	assert.Equal(t, supplier, *entries[0].NameID)
	assert.False(t, entries[0].IsSyncUpdate)
}

func TestRows_CentralTableHasNoChangelog(t *testing.T) {
	s := newTestSiteStorage(t)
	ctx := context.Background()
	repos := s.Repositories()

	require.NoError(t, repos.Rows.Upsert(ctx, &models.Unit{ID: "u1", Name: "tab", IsActive: true}, models.LocalChange()))
	require.NoError(t, repos.Rows.Delete(ctx, models.UnitTable, "u1", models.LocalChange()))

	count, err := repos.Changelog.Count(ctx, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestRows_DeleteSyncUpdate(t *testing.T) {
	s := newTestSiteStorage(t)
	ctx := context.Background()
	repos := s.Repositories()

	site := int64(3)
	require.NoError(t, repos.Rows.Upsert(ctx, testStockLine("sl1", "store1"), models.SyncChange(&site)))
	require.NoError(t, repos.Rows.Delete(ctx, models.StockLineTable, "sl1", models.SyncChange(&site)))

	_, err := repos.Rows.Find(ctx, models.StockLineTable, "sl1")
	assert.ErrorIs(t, err, ErrRowNotFound)

	entries, err := repos.Changelog.Changelogs(ctx, 0, 10, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.RowActionDelete, entries[0].RowAction)
	assert.True(t, entries[0].IsSyncUpdate)

	// deleting again is a no-op
	require.NoError(t, repos.Rows.Delete(ctx, models.StockLineTable, "sl1", models.LocalChange()))
	count, err := repos.Changelog.Count(ctx, 0, models.NewChangelogFilter().WithIsSyncUpdate(false))
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestRows_Repoint(t *testing.T) {
	s := newTestSiteStorage(t)
	ctx := context.Background()
	repos := s.Repositories()

	for _, id := range []string{"sl1", "sl2"} {
		line := testStockLine(id, "store1")
		line.SupplierID = strPtr("old")
		require.NoError(t, repos.Rows.Upsert(ctx, line, models.SyncChange(nil)))
	}

	ids, err := repos.Rows.Repoint(ctx, models.Reference{Table: models.StockLineTable, Column: "supplier_id"}, "old", "new", models.SyncChange(nil))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"sl1", "sl2"}, ids)

	rows, err := repos.Rows.FindBy(ctx, models.StockLineTable, "supplier_id", "new")
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	_, err = repos.Rows.FindBy(ctx, models.StockLineTable, "no_such_column", "x")
	assert.ErrorIs(t, err, ErrUnsupportedColumn)
}

func TestSiteStorage_TransactionRollback(t *testing.T) {
	s := newTestSiteStorage(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := s.Transaction(ctx, func(ctx context.Context, repos *SiteRepositories) error {
		if err := repos.Rows.Upsert(ctx, testStockLine("sl1", "store1"), models.LocalChange()); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Repositories().Rows.Find(ctx, models.StockLineTable, "sl1")
	assert.ErrorIs(t, err, ErrRowNotFound)

	count, err := s.Repositories().Changelog.Count(ctx, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

// ── Sync buffer ─────────────────────────────────────────────────────────────

func TestSyncBuffer_UpsertOverwritesAndResets(t *testing.T) {
	s := newTestSiteStorage(t)
	ctx := context.Background()
	repo := s.Repositories().SyncBuffer

	row := models.SyncBufferRow{
		TableName: "item",
		RecordID:  "i1",
		Action:    models.SyncBufferActionUpsert,
		Data:      []byte(`{"ID":"i1"}`),
	}
	require.NoError(t, repo.Upsert(ctx, []models.SyncBufferRow{row}))
	require.NoError(t, repo.MarkIntegrated(ctx, "item", "i1", time.Now(), nil))

	pending, err := repo.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pending)

	row.Data = []byte(`{"ID":"i1","name":"x"}`)
	require.NoError(t, repo.Upsert(ctx, []models.SyncBufferRow{row}))

	got, err := repo.Get(ctx, "item", "i1")
	require.NoError(t, err)
	assert.Nil(t, got.IntegrationDatetime)
	assert.JSONEq(t, `{"ID":"i1","name":"x"}`, string(got.Data))

	pending, err = repo.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending)
}

func TestSyncBuffer_FindOrderAndFilter(t *testing.T) {
	s := newTestSiteStorage(t)
	ctx := context.Background()
	repo := s.Repositories().SyncBuffer

	base := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	rows := []models.SyncBufferRow{
		{TableName: "item", RecordID: "b", Action: models.SyncBufferActionUpsert, Data: []byte(`{}`), ReceivedDatetime: base},
		{TableName: "item", RecordID: "a", Action: models.SyncBufferActionUpsert, Data: []byte(`{}`), ReceivedDatetime: base},
		{TableName: "unit", RecordID: "c", Action: models.SyncBufferActionUpsert, Data: []byte(`{}`), ReceivedDatetime: base.Add(-time.Minute)},
		{TableName: "item", RecordID: "d", Action: models.SyncBufferActionDelete, Data: []byte(`{}`), ReceivedDatetime: base},
	}
	require.NoError(t, repo.Upsert(ctx, rows))

	upsert := models.SyncBufferActionUpsert
	found, err := repo.Find(ctx, models.SyncBufferFilter{Action: &upsert, OnlyPending: true})
	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{found[0].RecordID, found[1].RecordID, found[2].RecordID})

	items, err := repo.Find(ctx, models.SyncBufferFilter{TableNames: []string{"item"}})
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestSyncBuffer_MarkErrors(t *testing.T) {
	s := newTestSiteStorage(t)
	ctx := context.Background()
	repo := s.Repositories().SyncBuffer

	require.NoError(t, repo.Upsert(ctx, []models.SyncBufferRow{
		{TableName: "item", RecordID: "i1", Action: models.SyncBufferActionUpsert, Data: []byte(`{}`)},
	}))

	require.NoError(t, repo.MarkIntegrationError(ctx, "item", "i1", "bad data"))
	got, err := repo.Get(ctx, "item", "i1")
	require.NoError(t, err)
	require.NotNil(t, got.IntegrationError)
	assert.Equal(t, "bad data", *got.IntegrationError)
	assert.Nil(t, got.IntegrationDatetime)

	reason := "store not on this site"
	require.NoError(t, repo.MarkIntegrated(ctx, "item", "i1", time.Now(), &reason))
	got, err = repo.Get(ctx, "item", "i1")
	require.NoError(t, err)
	assert.NotNil(t, got.IntegrationDatetime)
	assert.Equal(t, reason, *got.IntegrationError)

	assert.ErrorIs(t, repo.MarkIntegrationError(ctx, "item", "missing", "x"), ErrSyncBufferRowNotFound)
	_, err = repo.Get(ctx, "item", "missing")
	assert.ErrorIs(t, err, ErrSyncBufferRowNotFound)
}

// ── Key value ───────────────────────────────────────────────────────────────

func TestKeyValue_RoundTrip(t *testing.T) {
	s := newTestSiteStorage(t)
	ctx := context.Background()
	repo := s.Repositories().KeyValue

	cursor, err := repo.GetInt(ctx, models.KeyRemoteSyncPushCursor)
	require.NoError(t, err)
	assert.Nil(t, cursor)

	require.NoError(t, repo.SetInt(ctx, models.KeyRemoteSyncPushCursor, 4))
	require.NoError(t, repo.SetInt(ctx, models.KeyRemoteSyncPushCursor, 5))
	cursor, err = repo.GetInt(ctx, models.KeyRemoteSyncPushCursor)
	require.NoError(t, err)
	require.NotNil(t, cursor)
	assert.Equal(t, int64(5), *cursor)

	require.NoError(t, repo.SetString(ctx, models.KeySettingsSyncSiteUUID, "uuid-1"))
	uuid, err := repo.GetString(ctx, models.KeySettingsSyncSiteUUID)
	require.NoError(t, err)
	assert.Equal(t, "uuid-1", *uuid)

	started, err := repo.GetBool(ctx, models.KeyRemoteSyncInitialisationStarted)
	require.NoError(t, err)
	assert.False(t, started)

	require.NoError(t, repo.SetBool(ctx, models.KeyRemoteSyncInitialisationStarted, true))
	started, err = repo.GetBool(ctx, models.KeyRemoteSyncInitialisationStarted)
	require.NoError(t, err)
	assert.True(t, started)
}

// ── Sync log ────────────────────────────────────────────────────────────────

func TestSyncLog_RoundTrip(t *testing.T) {
	s := newTestSiteStorage(t)
	ctx := context.Background()
	repo := s.Repositories().SyncLog

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)

	started := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	total, done := int64(10), int64(4)

	run := models.SyncLog{ID: "run1", Started: started}
	run.SetStep(models.SyncStepPush, models.SyncStepLog{Started: &started, Total: &total, Done: &done})
	require.NoError(t, repo.Upsert(ctx, run))

	got, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "run1", got.ID)
	assert.True(t, started.Equal(got.Started))
	push := got.Step(models.SyncStepPush)
	require.NotNil(t, push.Total)
	assert.Equal(t, total, *push.Total)
	assert.Equal(t, done, *push.Done)

	successful, err := repo.LatestSuccessful(ctx)
	require.NoError(t, err)
	assert.Nil(t, successful)

	finished := started.Add(time.Minute)
	run.Finished = &finished
	require.NoError(t, repo.Upsert(ctx, run))

	failedStart := started.Add(time.Hour)
	msg := "connection refused"
	code := models.SyncErrorCodeConnection
	require.NoError(t, repo.Upsert(ctx, models.SyncLog{
		ID:           "run2",
		Started:      failedStart,
		Finished:     &failedStart,
		ErrorMessage: &msg,
		ErrorCode:    &code,
	}))

	got, err = repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "run2", got.ID)
	require.NotNil(t, got.ErrorCode)
	assert.Equal(t, code, *got.ErrorCode)

	successful, err = repo.LatestSuccessful(ctx)
	require.NoError(t, err)
	require.NotNil(t, successful)
	assert.Equal(t, "run1", successful.ID)
}
