// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package translator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/site-sync/models"
)

// route holds the ids the central server routes a pushed record by.
type route struct {
	StoreID *string
	NameID  *string
}

// pullFunc turns a decoded legacy record into the operations integrating it.
type pullFunc[L any] func(ctx context.Context, rows RowReader, legacy L) (PullResult, error)

// pushFunc turns a stored row into its legacy form.
type pushFunc[L any] func(ctx context.Context, rows RowReader, row models.Row) (L, route, error)

// tableTranslator is the translator shared by every table. L is the legacy
// shape of the table. Tables without a push function are central data and
// are never pushed.
type tableTranslator[L any] struct {
	table models.TableName
	deps  []models.TableName
	pull  pullFunc[L]
	push  pushFunc[L]
}

func (t *tableTranslator[L]) TableName() models.TableName { return t.table }

func (t *tableTranslator[L]) PullDependencies() []models.TableName { return t.deps }

func (t *tableTranslator[L]) ChangelogTable() (models.TableName, bool) {
	return t.table, t.push != nil
}

func (t *tableTranslator[L]) TryTranslateFromUpsert(ctx context.Context, rows RowReader, rec models.SyncBufferRow) (PullResult, error) {
	if rec.TableName != t.table.String() {
		return PullResult{}, nil
	}

	var legacy L
	if err := json.Unmarshal(rec.Data, &legacy); err != nil {
		return PullResult{}, fmt.Errorf("%w: %s %s: %w", ErrDecodingRecord, t.table, rec.RecordID, err)
	}
	return t.pull(ctx, rows, legacy)
}

func (t *tableTranslator[L]) TryTranslateFromDelete(_ context.Context, _ RowReader, rec models.SyncBufferRow) (PullResult, error) {
	if rec.TableName != t.table.String() {
		return PullResult{}, nil
	}
	return Operations(DeleteOperation{Table: t.table, RecordID: rec.RecordID}), nil
}

func (t *tableTranslator[L]) TryTranslateToUpsert(ctx context.Context, rows RowReader, entry models.Changelog) (PushResult, error) {
	if entry.TableName != t.table || t.push == nil {
		return PushResult{}, nil
	}

	row, err := rows.Find(ctx, t.table, entry.RecordID)
	if err != nil {
		return PushResult{}, fmt.Errorf("%w: %s %s: %w", ErrRowForChangelogNotFound, t.table, entry.RecordID, err)
	}

	legacy, r, err := t.push(ctx, rows, row)
	if err != nil {
		return PushResult{}, err
	}

	data, err := json.Marshal(legacy)
	if err != nil {
		return PushResult{}, fmt.Errorf("%w: %s %s: %w", ErrEncodingRecord, t.table, entry.RecordID, err)
	}

	return PushRecords(models.PushRecord{
		Cursor:     entry.Cursor,
		SyncID:     syncID(entry),
		TableName:  t.table,
		RecordID:   entry.RecordID,
		Action:     models.PushActionUpdate,
		StoreID:    firstNonNil(r.StoreID, entry.StoreID),
		NameID:     firstNonNil(r.NameID, entry.NameID),
		RecordData: data,
	}), nil
}

func (t *tableTranslator[L]) TryTranslateToDelete(_ context.Context, _ RowReader, entry models.Changelog) (PushResult, error) {
	if entry.TableName != t.table || t.push == nil {
		return PushResult{}, nil
	}

	return PushRecords(models.PushRecord{
		Cursor:    entry.Cursor,
		SyncID:    syncID(entry),
		TableName: t.table,
		RecordID:  entry.RecordID,
		Action:    models.PushActionDelete,
		StoreID:   entry.StoreID,
		NameID:    entry.NameID,
	}), nil
}

// mergeTranslator adds merge support to a table translator.
type mergeTranslator[L any] struct {
	*tableTranslator[L]
}

func (t *mergeTranslator[L]) TryTranslateFromMerge(_ context.Context, _ RowReader, rec models.SyncBufferRow) (PullResult, error) {
	if rec.TableName != t.table.String() {
		return PullResult{}, nil
	}

	var merge models.MergeData
	if err := json.Unmarshal(rec.Data, &merge); err != nil {
		return PullResult{}, fmt.Errorf("%w: %s %s: %w", ErrDecodingRecord, t.table, rec.RecordID, err)
	}
	if merge.MergeIDToKeep == "" || merge.MergeIDToDelete == "" {
		return IgnoredPull("merge record without both ids"), nil
	}

	return Operations(MergeOperation{
		Table:    t.table,
		KeepID:   merge.MergeIDToKeep,
		DeleteID: merge.MergeIDToDelete,
	}), nil
}

// upsert wraps a single row into a pull result.
func upsert(row models.Row) PullResult {
	return Operations(UpsertOperation{Row: row})
}

// parentStore resolves the store of a line through its parent row.
func parentStore(ctx context.Context, rows RowReader, table models.TableName, parentID string) (route, error) {
	parent, err := rows.Find(ctx, table, parentID)
	if err != nil {
		return route{}, fmt.Errorf("%w: parent %s %s: %w", ErrRowForChangelogNotFound, table, parentID, err)
	}
	scoped, ok := parent.(models.ChangelogScoped)
	if !ok {
		return route{}, errors.New("parent row has no store")
	}
	return route{StoreID: scoped.ChangelogStoreID(), NameID: scoped.ChangelogNameID()}, nil
}

// syncID is stable for a changelog entry, so pushing the same entry again
// is recognised by the central server.
func syncID(entry models.Changelog) string {
	return strconv.FormatInt(entry.Cursor, 10)
}

// recordSyncID numbers the records translated from one changelog entry.
// The first keeps the entry's sync id, later ones get "<cursor>-<index>".
func recordSyncID(entry models.Changelog, index int) string {
	if index == 0 {
		return syncID(entry)
	}
	return syncID(entry) + "-" + strconv.Itoa(index)
}

func firstNonNil(values ...*string) *string {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

// rowAs converts a row returned by [RowReader.Find] into its concrete type.
func rowAs[T models.Row](row models.Row) (T, error) {
	v, ok := row.(T)
	if !ok {
		return v, fmt.Errorf("unexpected row type %T", row)
	}
	return v, nil
}

func ptr[T any](v T) *T {
	return &v
}
