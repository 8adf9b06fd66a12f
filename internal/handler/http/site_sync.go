// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/service"
	"github.com/MKhiriev/site-sync/internal/utils"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.build, http.StatusOK)
}

func (h *Handler) getSyncStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	status, err := h.site.SyncService.Status(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getSyncStatus").Msg("error reading sync status")
		writeError(w, err, "error reading sync status")
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

// triggerSync starts one sync run in the background and answers
// 202 Accepted, or 409 Conflict when a run is already going. The run
// outlives the request.
func (h *Handler) triggerSync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	status, err := h.site.SyncService.Status(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.triggerSync").Msg("error reading sync status")
		writeError(w, err, "error reading sync status")
		return
	}
	if status.IsRunning {
		log.Info().Msg("sync requested while a sync is running")
		writeError(w, service.ErrSyncAlreadyRunning, service.ErrSyncAlreadyRunning.Error())
		return
	}

	ctx := context.WithoutCancel(r.Context())
	go func() {
		err := h.site.SyncService.Sync(ctx)
		switch {
		case err == nil:
			log.Info().Msg("requested sync finished")
		case errors.Is(err, service.ErrSyncAlreadyRunning):
			log.Info().Msg("requested sync skipped, a sync is running")
		default:
			log.Err(err).Msg("requested sync ended with error")
		}
	}()

	w.WriteHeader(http.StatusAccepted)
}
