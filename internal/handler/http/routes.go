// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// SiteRoutes returns the router of the local site API.
func (h *Handler) SiteRoutes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get("/api/v1/version", h.getVersion)
	router.Get("/api/v1/sync/status", h.getSyncStatus)
	router.Post("/api/v1/sync", h.triggerSync)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// CentralRoutes returns the router of the central sync API v5.
func (h *Handler) CentralRoutes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/v1/version", h.getVersion)

	// routes for authenticated sites
	router.Group(func(r chi.Router) {
		r.Use(h.siteAuth)

		r.Post("/sync/v5/initialise", h.initialise)
		r.Get("/sync/v5/site", h.getSiteInfo)
		r.Get("/sync/v5/site_status", h.getSiteStatus)
		r.Get("/sync/v5/central_records", h.getCentralRecords)
		r.Get("/sync/v5/queued_records", h.getQueuedRecords)
		r.Post("/sync/v5/queued_records", h.pushRecords)
		r.Post("/sync/v5/acknowledged_records", h.acknowledgeRecords)
	})

	if h.adminToken != "" {
		router.Group(func(r chi.Router) {
			r.Use(h.adminAuth)

			r.Post("/admin/sites", h.registerSite)
			r.Post("/admin/central_records", h.appendCentralRecords)
		})
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
