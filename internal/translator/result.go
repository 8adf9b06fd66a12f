// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package translator

import (
	"context"
	"fmt"

	"github.com/MKhiriev/site-sync/models"
)

type resultKind int

const (
	notMatched resultKind = iota
	translated
	ignored
)

// Result is the outcome of asking a translator about one record. The zero
// value means the record belongs to another translator.
type Result[T any] struct {
	kind   resultKind
	Items  []T
	Reason string
}

// PullResult holds the operations that integrate a pulled record.
type PullResult = Result[Operation]

// PushResult holds the records a changelog entry is pushed as.
type PushResult = Result[models.PushRecord]

// Operations returns a pull result applying ops in order.
func Operations(ops ...Operation) PullResult {
	return PullResult{kind: translated, Items: ops}
}

// PushRecords returns a push result sending records.
func PushRecords(records ...models.PushRecord) PushResult {
	return PushResult{kind: translated, Items: records}
}

// IgnoredPull marks a pulled record as deliberately skipped.
func IgnoredPull(reason string) PullResult {
	return PullResult{kind: ignored, Reason: reason}
}

// IgnoredPush marks a changelog entry as deliberately not pushed.
func IgnoredPush(reason string) PushResult {
	return PushResult{kind: ignored, Reason: reason}
}

// Matched reports whether the translator handled the record.
func (r Result[T]) Matched() bool { return r.kind != notMatched }

// Ignored reports whether the record was handled and skipped.
func (r Result[T]) Ignored() bool { return r.kind == ignored }

// Operation is one write that integrates a pulled record.
type Operation interface {
	Apply(ctx context.Context, rows RowWriter, meta models.ChangeMeta) error
}

// UpsertOperation inserts or replaces a row.
type UpsertOperation struct {
	Row models.Row
}

func (o UpsertOperation) Apply(ctx context.Context, rows RowWriter, meta models.ChangeMeta) error {
	return rows.Upsert(ctx, o.Row, meta)
}

// DeleteOperation removes a row. A missing row is not an error.
type DeleteOperation struct {
	Table    models.TableName
	RecordID string
}

func (o DeleteOperation) Apply(ctx context.Context, rows RowWriter, meta models.ChangeMeta) error {
	return rows.Delete(ctx, o.Table, o.RecordID, meta)
}

// MergeOperation folds the row DeleteID into KeepID: every column that
// references DeleteID is repointed to KeepID, then DeleteID is removed.
type MergeOperation struct {
	Table    models.TableName
	KeepID   string
	DeleteID string
}

func (o MergeOperation) Apply(ctx context.Context, rows RowWriter, meta models.ChangeMeta) error {
	if o.KeepID == o.DeleteID {
		return nil
	}

	for _, ref := range models.ReferencesTo(o.Table) {
		if _, err := rows.Repoint(ctx, ref, o.DeleteID, o.KeepID, meta); err != nil {
			return fmt.Errorf("repoint %s.%s: %w", ref.Table, ref.Column, err)
		}
	}

	if o.Table == models.NameTable {
		if err := collapseNameStoreJoins(ctx, rows, o.KeepID, meta); err != nil {
			return err
		}
	}

	return rows.Delete(ctx, o.Table, o.DeleteID, meta)
}

// collapseNameStoreJoins keeps one join per store for nameID. After a merge
// both names may have been visible in the same store.
func collapseNameStoreJoins(ctx context.Context, rows RowWriter, nameID string, meta models.ChangeMeta) error {
	joins, err := rows.FindBy(ctx, models.NameStoreJoinTable, "name_id", nameID)
	if err != nil {
		return fmt.Errorf("find name store joins: %w", err)
	}

	seen := make(map[string]bool, len(joins))
	for _, row := range joins {
		join, ok := row.(*models.NameStoreJoin)
		if !ok {
			continue
		}
		if !seen[join.StoreID] {
			seen[join.StoreID] = true
			continue
		}
		if err = rows.Delete(ctx, models.NameStoreJoinTable, join.ID, meta); err != nil {
			return fmt.Errorf("delete duplicate name store join %s: %w", join.ID, err)
		}
	}
	return nil
}
