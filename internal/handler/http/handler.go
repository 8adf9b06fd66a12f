// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/service"
	"github.com/MKhiriev/site-sync/models"
)

type Handler struct {
	site    *service.SiteServices
	central *service.CentralServices

	build      models.AppBuildInfo
	adminToken string

	logger *logger.Logger
}

// NewSiteHandler creates the handler of the site status API.
func NewSiteHandler(services *service.SiteServices, build models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("site http handler created")
	return &Handler{
		site:   services,
		build:  build,
		logger: logger,
	}
}

// NewCentralHandler creates the handler of the central sync API. Admin
// routes are served only when adminToken is set.
func NewCentralHandler(services *service.CentralServices, build models.AppBuildInfo, adminToken string, logger *logger.Logger) *Handler {
	logger.Info().Bool("admin_routes", adminToken != "").Msg("central http handler created")
	return &Handler{
		central:    services,
		build:      build,
		adminToken: adminToken,
		logger:     logger,
	}
}
