// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/site-sync/models"
)

// ChangelogRepository reads and writes the site changelog. Every read goes
// through the deduplicated view, so a record shows up once, at the cursor of
// its latest change, with that change's action.
type ChangelogRepository interface {
	Insert(ctx context.Context, entry models.Changelog) (int64, error)
	Changelogs(ctx context.Context, earliest int64, limit uint64, filter *models.ChangelogFilter) ([]models.Changelog, error)
	Count(ctx context.Context, earliest int64, filter *models.ChangelogFilter) (int64, error)
	LatestCursor(ctx context.Context) (int64, error)
	DeleteFrom(ctx context.Context, cursor int64) error
}

// SyncBufferRepository stores pulled records until they are integrated.
type SyncBufferRepository interface {
	Upsert(ctx context.Context, rows []models.SyncBufferRow) error
	Get(ctx context.Context, table, recordID string) (models.SyncBufferRow, error)
	Find(ctx context.Context, filter models.SyncBufferFilter) ([]models.SyncBufferRow, error)
	// MarkIntegrated sets the integration datetime. A non-nil ignoredReason
	// is stored as the integration error of an ignored record.
	MarkIntegrated(ctx context.Context, table, recordID string, at time.Time, ignoredReason *string) error
	MarkIntegrationError(ctx context.Context, table, recordID, message string) error
	CountPending(ctx context.Context) (int64, error)
}

// KeyValueRepository persists typed sync state.
type KeyValueRepository interface {
	GetInt(ctx context.Context, key models.KeyValueType) (*int64, error)
	SetInt(ctx context.Context, key models.KeyValueType, value int64) error
	GetString(ctx context.Context, key models.KeyValueType) (*string, error)
	SetString(ctx context.Context, key models.KeyValueType, value string) error
	GetBool(ctx context.Context, key models.KeyValueType) (bool, error)
	SetBool(ctx context.Context, key models.KeyValueType, value bool) error
}

// SyncLogRepository persists one row per sync run.
type SyncLogRepository interface {
	Upsert(ctx context.Context, log models.SyncLog) error
	// Latest returns nil when no run was recorded yet.
	Latest(ctx context.Context) (*models.SyncLog, error)
	LatestSuccessful(ctx context.Context) (*models.SyncLog, error)
}

// RowRepository writes domain rows. Writes to remote tables append exactly
// one changelog entry per change through the same connection or
// transaction.
type RowRepository interface {
	Upsert(ctx context.Context, row models.Row, meta models.ChangeMeta) error
	Delete(ctx context.Context, table models.TableName, recordID string, meta models.ChangeMeta) error
	Find(ctx context.Context, table models.TableName, recordID string) (models.Row, error)
	FindBy(ctx context.Context, table models.TableName, column string, value any) ([]models.Row, error)
	Repoint(ctx context.Context, ref models.Reference, from, to string, meta models.ChangeMeta) ([]string, error)
}

// SiteRepository manages the sites registered on the central server.
type SiteRepository interface {
	Create(ctx context.Context, site models.Site) error
	FindByName(ctx context.Context, name string) (models.Site, error)
	FindByID(ctx context.Context, siteID int64) (models.Site, error)
	SetInitialised(ctx context.Context, siteID int64, hardwareID string) error
	SetStatus(ctx context.Context, siteID int64, status models.SiteStatusCode) error
	AssignStores(ctx context.Context, siteID int64, stores []models.StoreAssignment) error
	StoreIDs(ctx context.Context, siteID int64) ([]string, error)
	// Owners returns the site owning each of the given store and name ids.
	Owners(ctx context.Context, storeID, nameID *string) ([]int64, error)
}

// CentralRecordRepository is the append-only log of central data.
type CentralRecordRepository interface {
	Append(ctx context.Context, table models.TableName, recordID string, data []byte) (int64, error)
	After(ctx context.Context, cursor int64, limit uint64) ([]models.CentralRecord, error)
	MaxCursor(ctx context.Context) (int64, error)
}

// RemoteRecordRepository holds the latest pushed version of every remote
// record.
type RemoteRecordRepository interface {
	Upsert(ctx context.Context, rec models.RemoteRecordEntry) error
	Get(ctx context.Context, table models.TableName, recordID string) (models.RemoteRecordEntry, error)
	ForStores(ctx context.Context, storeIDs []string) ([]models.RemoteRecordEntry, error)
}

// PushReceiptRepository remembers which pushed records were already
// accepted.
type PushReceiptRepository interface {
	// Record returns false when the receipt already existed.
	Record(ctx context.Context, siteID int64, syncID string, table models.TableName) (bool, error)
	AddPending(ctx context.Context, siteID int64, table models.TableName, recordID string) error
	DrainPending(ctx context.Context, siteID int64) ([]models.RecordKey, error)
	// Clear forgets every receipt of the site, so a reinstalled site can
	// push its changelog from the start.
	Clear(ctx context.Context, siteID int64) error
}

// SiteQueueRepository is the per-site outgoing queue.
type SiteQueueRepository interface {
	Enqueue(ctx context.Context, entries []models.QueueEntry) error
	Next(ctx context.Context, siteID int64, limit uint64) ([]models.RemoteRecord, error)
	Length(ctx context.Context, siteID int64) (int64, error)
	Acknowledge(ctx context.Context, siteID int64, syncIDs []string) (int64, error)
}
