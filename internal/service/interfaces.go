// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/site-sync/models"
)

// SyncService is the site sync as seen by the local API and the scheduler.
type SyncService interface {
	// Sync runs one full sync. It returns ErrSyncAlreadyRunning when a run is
	// in progress.
	Sync(ctx context.Context) error

	// Status reports the persisted sync state and the latest runs.
	Status(ctx context.Context) (models.SyncStatus, error)
}

// SyncJob triggers SyncService on a schedule.
type SyncJob interface {
	// Start schedules runs by the cron expression schedule. A run that is
	// still going when the next one is due makes that one skip.
	Start(ctx context.Context, schedule string) error
	// Stop unschedules the job and waits for a running sync to return.
	Stop()
}

// Processor runs after integration and reacts to integrated changes.
type Processor interface {
	Name() string
	Process(ctx context.Context) error
}

// SiteAuthService authenticates sites calling the central sync API.
type SiteAuthService interface {
	// Register creates a site. The password is the plain text password the
	// site is configured with.
	Register(ctx context.Context, req models.RegisterSiteRequest) (models.Site, error)

	// Authenticate checks the basic auth credentials a site sends: its name
	// and the hex sha256 digest of its password.
	Authenticate(ctx context.Context, name, passwordDigest string) (models.Site, error)
}

// CentralSyncService serves the sync API v5 to authenticated sites.
type CentralSyncService interface {
	Initialise(ctx context.Context, site models.Site, hardwareID string) (models.InitialiseResponse, error)
	SiteInfo(ctx context.Context, site models.Site) models.SiteInfo
	SiteStatus(ctx context.Context, site models.Site) (models.SiteStatus, error)

	CentralRecords(ctx context.Context, cursor int64, limit uint64) (models.CentralBatch, error)
	QueuedRecords(ctx context.Context, site models.Site, limit uint64) (models.RemoteBatch, error)
	Acknowledge(ctx context.Context, site models.Site, syncIDs []string) error
	Push(ctx context.Context, site models.Site, batch models.PushBatch) (models.PushResponse, error)

	// AppendCentralRecords adds central data to the feed every site pulls.
	AppendCentralRecords(ctx context.Context, records []models.CentralRecordInput) ([]int64, error)
}
