// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"fmt"

	"github.com/MKhiriev/site-sync/internal/config"
	handler "github.com/MKhiriev/site-sync/internal/handler/http"
	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/server"
	"github.com/MKhiriev/site-sync/internal/service"
	"github.com/MKhiriev/site-sync/internal/store"
	"github.com/MKhiriev/site-sync/internal/workers"
	"github.com/MKhiriev/site-sync/models"
)

type centralApp struct {
	db      *store.DB
	workers *workers.Workers
	logger  *logger.Logger
}

// NewCentral connects to and migrates the central PostgreSQL database and
// wires the sync API v5.
func NewCentral(ctx context.Context, cfg *config.CentralConfig, build models.AppBuildInfo, log *logger.Logger) (App, error) {
	db, err := store.NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect to central database: %w", err)
	}
	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate central database: %w", err)
	}

	services := service.NewCentralServices(store.NewCentralStorage(db))
	h := handler.NewCentralHandler(services, build, cfg.AdminToken, log)

	srv, err := server.NewServer(h.CentralRoutes(), cfg.Server, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &centralApp{
		db:      db,
		workers: workers.NewWorkers(srv),
		logger:  log,
	}, nil
}

func (a *centralApp) Run(ctx context.Context) error {
	defer a.db.Close()

	a.logger.Info().Msg("central server started")
	err := a.workers.Run(a.logger.WithContext(ctx))
	a.logger.Info().Msg("central server stopped")
	return err
}
