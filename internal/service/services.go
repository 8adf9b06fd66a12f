// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/site-sync/internal/adapter"
	"github.com/MKhiriev/site-sync/internal/config"
	"github.com/MKhiriev/site-sync/internal/store"
	"github.com/MKhiriev/site-sync/internal/translator"
	"github.com/MKhiriev/site-sync/internal/utils"
)

// SiteServices are the services of a remote site.
type SiteServices struct {
	SyncService SyncService
	SyncJob     SyncJob
}

func NewSiteServices(storage store.SiteStorage, api adapter.SyncAPI, registry *translator.Registry, cfg config.Sync) *SiteServices {
	synchroniser := NewSynchroniser(storage, api, registry, cfg,
		NewRequisitionTransferProcessor(storage, utils.NewUUIDGenerator()),
	)
	return &SiteServices{
		SyncService: synchroniser,
		SyncJob:     NewSyncJob(synchroniser),
	}
}

// CentralServices are the services of the central server.
type CentralServices struct {
	SiteAuthService    SiteAuthService
	CentralSyncService CentralSyncService
}

func NewCentralServices(storage store.CentralStorage) *CentralServices {
	ids := utils.NewUUIDGenerator()
	return &CentralServices{
		SiteAuthService:    NewSiteAuthService(storage, ids),
		CentralSyncService: NewCentralSyncService(storage, ids),
	}
}
