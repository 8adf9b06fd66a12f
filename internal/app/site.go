// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"fmt"

	"github.com/MKhiriev/site-sync/internal/adapter"
	"github.com/MKhiriev/site-sync/internal/config"
	handler "github.com/MKhiriev/site-sync/internal/handler/http"
	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/server"
	"github.com/MKhiriev/site-sync/internal/service"
	"github.com/MKhiriev/site-sync/internal/store"
	"github.com/MKhiriev/site-sync/internal/translator"
	"github.com/MKhiriev/site-sync/internal/workers"
	"github.com/MKhiriev/site-sync/models"
)

type siteApp struct {
	db      *store.DB
	workers *workers.Workers
	logger  *logger.Logger
}

// NewSite opens and migrates the site database and wires the sync
// schedule and the local status API.
func NewSite(ctx context.Context, cfg *config.SiteConfig, build models.AppBuildInfo, log *logger.Logger) (App, error) {
	db, err := store.NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("open site database: %w", err)
	}
	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate site database: %w", err)
	}

	registry, err := translator.NewDefaultRegistry()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create translator registry: %w", err)
	}

	api, err := adapter.NewHTTPSyncAPI(cfg.Sync, cfg.App, log)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create sync api client: %w", err)
	}

	services := service.NewSiteServices(store.NewSiteStorage(db), api, registry, cfg.Sync)

	srv, err := server.NewServer(handler.NewSiteHandler(services, build, log).SiteRoutes(), cfg.Server, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &siteApp{
		db: db,
		workers: workers.NewWorkers(
			workers.NewSyncJobWorker(services.SyncJob, cfg.Sync.Schedule),
			srv,
		),
		logger: log,
	}, nil
}

func (a *siteApp) Run(ctx context.Context) error {
	defer a.db.Close()

	a.logger.Info().Msg("site started")
	err := a.workers.Run(a.logger.WithContext(ctx))
	a.logger.Info().Msg("site stopped")
	return err
}
