// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package translator converts records between their legacy JSON form and
// the domain rows of the site database.
//
// Every synced table has one [Translator]. Pulled records are translated
// into integration operations; changelog entries are translated into push
// records. A translator that is asked about a record of another table
// answers "not matched" instead of failing, so the callers can ask every
// translator of a [Registry] in turn.
package translator

import (
	"context"

	"github.com/MKhiriev/site-sync/models"
)

// RowReader looks up domain rows while a record is translated.
type RowReader interface {
	Find(ctx context.Context, table models.TableName, recordID string) (models.Row, error)
	FindBy(ctx context.Context, table models.TableName, column string, value any) ([]models.Row, error)
}

// RowWriter applies integration operations to the site database.
type RowWriter interface {
	RowReader
	Upsert(ctx context.Context, row models.Row, meta models.ChangeMeta) error
	Delete(ctx context.Context, table models.TableName, recordID string, meta models.ChangeMeta) error
	Repoint(ctx context.Context, ref models.Reference, from, to string, meta models.ChangeMeta) ([]string, error)
}

// Translator translates the records of a single table in both directions.
type Translator interface {
	// TableName is the table whose records this translator handles.
	TableName() models.TableName
	// PullDependencies lists the tables whose records must be integrated
	// before the records of this table.
	PullDependencies() []models.TableName
	// ChangelogTable reports the table whose changelog entries are pushed.
	// Central tables return false.
	ChangelogTable() (models.TableName, bool)

	TryTranslateFromUpsert(ctx context.Context, rows RowReader, rec models.SyncBufferRow) (PullResult, error)
	TryTranslateFromDelete(ctx context.Context, rows RowReader, rec models.SyncBufferRow) (PullResult, error)
	TryTranslateToUpsert(ctx context.Context, rows RowReader, entry models.Changelog) (PushResult, error)
	TryTranslateToDelete(ctx context.Context, rows RowReader, entry models.Changelog) (PushResult, error)
}

// Merger is implemented by translators of tables whose rows can be merged
// into one another on the central server.
type Merger interface {
	TryTranslateFromMerge(ctx context.Context, rows RowReader, rec models.SyncBufferRow) (PullResult, error)
}
