// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package translator

import (
	"context"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/site-sync/models"
)

// memRows is an in-memory RowWriter that records the calls it receives.
type memRows struct {
	rows  map[models.TableName]map[string]models.Row
	calls []string
}

func newMemRows(rows ...models.Row) *memRows {
	m := &memRows{rows: make(map[models.TableName]map[string]models.Row)}
	for _, r := range rows {
		m.put(r)
	}
	return m
}

func (m *memRows) put(r models.Row) {
	if m.rows[r.Table()] == nil {
		m.rows[r.Table()] = make(map[string]models.Row)
	}
	m.rows[r.Table()][r.RecordID()] = r
}

func (m *memRows) Find(_ context.Context, table models.TableName, recordID string) (models.Row, error) {
	r, ok := m.rows[table][recordID]
	if !ok {
		return nil, fmt.Errorf("%s %s not found", table, recordID)
	}
	return r, nil
}

func (m *memRows) FindBy(_ context.Context, table models.TableName, column string, value any) ([]models.Row, error) {
	var ids []string
	for id, r := range m.rows[table] {
		i := slices.Index(r.Columns(), column)
		if i >= 0 && r.Values()[i] == value {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	out := make([]models.Row, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.rows[table][id])
	}
	return out, nil
}

func (m *memRows) Upsert(_ context.Context, row models.Row, _ models.ChangeMeta) error {
	m.calls = append(m.calls, "upsert "+row.Table().String()+" "+row.RecordID())
	m.put(row)
	return nil
}

func (m *memRows) Delete(_ context.Context, table models.TableName, recordID string, _ models.ChangeMeta) error {
	m.calls = append(m.calls, "delete "+table.String()+" "+recordID)
	delete(m.rows[table], recordID)
	return nil
}

func (m *memRows) Repoint(_ context.Context, ref models.Reference, from, to string, _ models.ChangeMeta) ([]string, error) {
	m.calls = append(m.calls, "repoint "+ref.Table.String()+"."+ref.Column)
	var touched []string
	for id, r := range m.rows[ref.Table] {
		if join, ok := r.(*models.NameStoreJoin); ok && ref.Column == "name_id" && join.NameID == from {
			join.NameID = to
			touched = append(touched, id)
		}
	}
	return touched, nil
}

// stubTranslator only carries a table name and dependencies.
type stubTranslator struct {
	tableTranslator[struct{}]
}

func stub(table models.TableName, deps ...models.TableName) Translator {
	return &stubTranslator{tableTranslator[struct{}]{table: table, deps: deps}}
}

// fanOutTranslator pushes an invoice together with a line built from it.
type fanOutTranslator struct {
	tableTranslator[struct{}]
}

func (f *fanOutTranslator) TryTranslateToUpsert(_ context.Context, _ RowReader, entry models.Changelog) (PushResult, error) {
	if entry.TableName != f.table {
		return PushResult{}, nil
	}
	return PushRecords(
		models.PushRecord{Cursor: entry.Cursor, SyncID: syncID(entry), TableName: models.InvoiceTable, RecordID: entry.RecordID, Action: models.PushActionUpdate},
		models.PushRecord{Cursor: entry.Cursor, SyncID: syncID(entry), TableName: models.InvoiceLineTable, RecordID: entry.RecordID + "-line", Action: models.PushActionUpdate},
		models.PushRecord{Cursor: entry.Cursor, SyncID: syncID(entry), TableName: models.InvoiceLineTable, RecordID: entry.RecordID + "-line2", Action: models.PushActionUpdate},
	), nil
}

// ── Registry ────────────────────────────────────────────────────────────────

func TestNewRegistry_OrdersParentsFirst(t *testing.T) {
	reg, err := NewDefaultRegistry()
	require.NoError(t, err)

	assert.Equal(t, []models.TableName{
		models.NameTable,
		models.StoreTable,
		models.NameStoreJoinTable,
		models.PurchaseOrderTable,
		models.RequisitionTable,
		models.InvoiceTable,
		models.UnitTable,
		models.ItemTable,
		models.PurchaseOrderLineTable,
		models.RequisitionLineTable,
		models.StockLineTable,
		models.InvoiceLineTable,
	}, reg.Tables())

	position := make(map[models.TableName]int)
	for i, table := range reg.Tables() {
		position[table] = i
	}
	for _, tr := range reg.Ordered() {
		for _, dep := range tr.PullDependencies() {
			assert.Less(t, position[dep], position[tr.TableName()], "%s must come before %s", dep, tr.TableName())
		}
	}
}

func TestNewRegistry_OrderIndependentOfRegistration(t *testing.T) {
	forward, err := NewRegistry(All()...)
	require.NoError(t, err)

	reversed := All()
	slices.Reverse(reversed)
	backward, err := NewRegistry(reversed...)
	require.NoError(t, err)

	shuffled := All()
	shuffled[0], shuffled[7] = shuffled[7], shuffled[0]
	shuffled[3], shuffled[11] = shuffled[11], shuffled[3]
	mixed, err := NewRegistry(shuffled...)
	require.NoError(t, err)

	assert.Equal(t, forward.Tables(), backward.Tables())
	assert.Equal(t, forward.Tables(), mixed.Tables())
}

func TestNewRegistry_CircularDependency(t *testing.T) {
	_, err := NewRegistry(
		stub(models.UnitTable),
		stub(models.ItemTable, models.StockLineTable),
		stub(models.StockLineTable, models.ItemTable),
	)

	require.ErrorIs(t, err, ErrCircularDependency)
	assert.Contains(t, err.Error(), "item, stock_line")
}

func TestNewRegistry_UnknownDependency(t *testing.T) {
	_, err := NewRegistry(stub(models.ItemTable, models.UnitTable))
	assert.ErrorIs(t, err, ErrUnknownDependency)
}

func TestNewRegistry_DuplicateTranslator(t *testing.T) {
	_, err := NewRegistry(stub(models.UnitTable), stub(models.UnitTable))
	assert.ErrorIs(t, err, ErrDuplicateTranslator)
}

func TestRegistry_Find(t *testing.T) {
	reg, err := NewDefaultRegistry()
	require.NoError(t, err)

	tr, ok := reg.Find("requisition")
	require.True(t, ok)
	assert.Equal(t, models.RequisitionTable, tr.TableName())

	_, ok = reg.Find("report")
	assert.False(t, ok)
}

func TestRegistry_OnlyRemoteTablesArePushed(t *testing.T) {
	reg, err := NewDefaultRegistry()
	require.NoError(t, err)

	for _, tr := range reg.Ordered() {
		_, pushable := tr.ChangelogTable()
		assert.Equal(t, tr.TableName().IsRemote(), pushable, tr.TableName().String())
	}
}

// ── TranslateChangelog ──────────────────────────────────────────────────────

func TestRegistry_TranslateChangelog_Upsert(t *testing.T) {
	reg, err := NewDefaultRegistry()
	require.NoError(t, err)

	supplier := "supplier1"
	rows := newMemRows(&models.StockLine{
		ID:                 "sl1",
		ItemID:             "item1",
		StoreID:            "store1",
		PackSize:           10,
		TotalNumberOfPacks: 3,
		SupplierID:         &supplier,
	})

	records, err := reg.TranslateChangelog(context.Background(), rows, models.Changelog{
		Cursor:    4,
		TableName: models.StockLineTable,
		RecordID:  "sl1",
		RowAction: models.RowActionUpsert,
	})
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, int64(4), rec.Cursor)
	assert.Equal(t, "4", rec.SyncID)
	assert.Equal(t, models.PushActionUpdate, rec.Action)
	require.NotNil(t, rec.StoreID)
	assert.Equal(t, "store1", *rec.StoreID)
	require.NotNil(t, rec.NameID)
	assert.Equal(t, "supplier1", *rec.NameID)
	assert.JSONEq(t, `{
		"ID": "sl1", "item_ID": "item1", "store_ID": "store1", "batch": "",
		"expiry_date": null, "pack_size": 10, "cost_price": 0, "sell_price": 0,
		"available": 0, "quantity": 3, "hold": false, "note": "", "name_ID": "supplier1"
	}`, string(rec.RecordData))
}

func TestRegistry_TranslateChangelog_Delete(t *testing.T) {
	reg, err := NewDefaultRegistry()
	require.NoError(t, err)

	store := "store1"
	records, err := reg.TranslateChangelog(context.Background(), newMemRows(), models.Changelog{
		Cursor:    9,
		TableName: models.InvoiceTable,
		RecordID:  "inv1",
		RowAction: models.RowActionDelete,
		StoreID:   &store,
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.PushActionDelete, records[0].Action)
	assert.Equal(t, &store, records[0].StoreID)
	assert.Nil(t, records[0].RecordData)
}

func TestRegistry_TranslateChangelog_MissingRow(t *testing.T) {
	reg, err := NewDefaultRegistry()
	require.NoError(t, err)

	_, err = reg.TranslateChangelog(context.Background(), newMemRows(), models.Changelog{
		Cursor:    1,
		TableName: models.StockLineTable,
		RecordID:  "gone",
		RowAction: models.RowActionUpsert,
	})
	assert.ErrorIs(t, err, ErrRowForChangelogNotFound)
}

func TestRegistry_TranslateChangelog_CentralTableNotPushed(t *testing.T) {
	reg, err := NewDefaultRegistry()
	require.NoError(t, err)

	records, err := reg.TranslateChangelog(context.Background(), newMemRows(&models.Unit{ID: "u1"}), models.Changelog{
		Cursor:    1,
		TableName: models.UnitTable,
		RecordID:  "u1",
		RowAction: models.RowActionUpsert,
	})
	require.NoError(t, err)
	assert.Empty(t, records)
}

// ── Pull results ────────────────────────────────────────────────────────────

func TestTranslateFrom_OtherTableNotMatched(t *testing.T) {
	rec := models.SyncBufferRow{TableName: "item", RecordID: "i1", Data: []byte(`{}`)}

	res, err := NewUnitTranslator().TryTranslateFromUpsert(context.Background(), newMemRows(), rec)
	require.NoError(t, err)
	assert.False(t, res.Matched())

	res, err = NewUnitTranslator().TryTranslateFromDelete(context.Background(), newMemRows(), rec)
	require.NoError(t, err)
	assert.False(t, res.Matched())
}

func TestTranslateFromUpsert_BadJSON(t *testing.T) {
	rec := models.SyncBufferRow{TableName: "unit", RecordID: "u1", Data: []byte(`{"ID": 5}`)}

	_, err := NewUnitTranslator().TryTranslateFromUpsert(context.Background(), newMemRows(), rec)
	assert.ErrorIs(t, err, ErrDecodingRecord)
}

func TestTranslateFromDelete(t *testing.T) {
	rec := models.SyncBufferRow{TableName: "stock_line", RecordID: "sl1"}

	res, err := NewStockLineTranslator().TryTranslateFromDelete(context.Background(), newMemRows(), rec)
	require.NoError(t, err)
	require.True(t, res.Matched())
	assert.Equal(t, []Operation{DeleteOperation{Table: models.StockLineTable, RecordID: "sl1"}}, res.Items)
}

func TestStoreTranslator_IgnoresSystemStores(t *testing.T) {
	rec := models.SyncBufferRow{
		TableName: "store",
		RecordID:  "s1",
		Data:      []byte(`{"ID":"s1","name_ID":"n1","code":"HIS","sync_id_remote_site":1,"store_mode":"store","created_date":"0000-00-00","disabled":false}`),
	}

	res, err := NewStoreTranslator().TryTranslateFromUpsert(context.Background(), newMemRows(), rec)
	require.NoError(t, err)
	assert.True(t, res.Ignored())
	assert.Contains(t, res.Reason, "HIS")
}

func TestNameStoreJoinTranslator_InactiveDeletes(t *testing.T) {
	rec := models.SyncBufferRow{
		TableName: "name_store_join",
		RecordID:  "j1",
		Data:      []byte(`{"ID":"j1","name_ID":"n1","store_ID":"s1","inactive":true}`),
	}

	res, err := NewNameStoreJoinTranslator().TryTranslateFromUpsert(context.Background(), newMemRows(), rec)
	require.NoError(t, err)
	assert.Equal(t, []Operation{DeleteOperation{Table: models.NameStoreJoinTable, RecordID: "j1"}}, res.Items)
}

func TestRegistry_TranslateChangelog_SeveralRecordsPerEntry(t *testing.T) {
	reg, err := NewRegistry(&fanOutTranslator{tableTranslator[struct{}]{table: models.InvoiceTable}})
	require.NoError(t, err)

	records, err := reg.TranslateChangelog(context.Background(), newMemRows(), models.Changelog{
		Cursor:    7,
		TableName: models.InvoiceTable,
		RecordID:  "inv1",
		RowAction: models.RowActionUpsert,
	})
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "7", records[0].SyncID)
	assert.Equal(t, "7-1", records[1].SyncID)
	assert.Equal(t, "7-2", records[2].SyncID)
	for _, rec := range records {
		assert.Equal(t, int64(7), rec.Cursor)
	}
}
