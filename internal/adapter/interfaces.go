// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the HTTP clients of the sync engine: the client of
// the central server's sync API v5 and the client of a site's control API.
//
// The primary abstraction is [SyncAPI], which decouples the synchronisers
// from HTTP. The package ships a resty based implementation
// ([NewHTTPSyncAPI]). [SiteAPI] is used by the sitectl command line tool
// to drive a running site ([NewHTTPSiteAPI]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401, [ErrConnection] when the central server cannot be reached).
package adapter

import (
	"context"

	"github.com/MKhiriev/site-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sync_api_mock.go -package=mock

// SyncAPI is the central server as seen by a site. Every call authenticates
// with the site credentials and carries the site identification headers.
type SyncAPI interface {
	// Initialise asks the central server to fill the site queue with every
	// record the site must hold. Called once per site installation.
	Initialise(ctx context.Context) (models.InitialiseResponse, error)

	// SiteInfo returns the identity of the authenticated site.
	SiteInfo(ctx context.Context) (models.SiteInfo, error)

	// CentralRecords returns at most limit central records with a cursor
	// greater than cursor, together with the next cursor of the feed.
	CentralRecords(ctx context.Context, cursor int64, limit int) (models.CentralBatch, error)

	// QueuedRecords returns the oldest limit records of the site queue.
	// They stay queued until acknowledged.
	QueuedRecords(ctx context.Context, limit int) (models.RemoteBatch, error)

	// AcknowledgeRecords removes consumed records from the site queue.
	AcknowledgeRecords(ctx context.Context, syncIDs []string) error

	// PushRecords sends one batch of locally authored records.
	PushRecords(ctx context.Context, batch models.PushBatch) (models.PushResponse, error)

	// SiteStatus reports whether the central server is still integrating
	// what the site pushed.
	SiteStatus(ctx context.Context) (models.SiteStatus, error)
}

// SiteAPI is the control API of a running site.
type SiteAPI interface {
	// Version returns the build information of the site binary.
	Version(ctx context.Context) (models.AppBuildInfo, error)

	// SyncStatus returns the persisted sync state and the last runs.
	SyncStatus(ctx context.Context) (models.SyncStatus, error)

	// TriggerSync starts a sync run in the background. Returns
	// [ErrConflict] when a run is already in progress.
	TriggerSync(ctx context.Context) error
}
