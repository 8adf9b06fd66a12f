// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/utils"
	"github.com/MKhiriev/site-sync/models"
)

const (
	// siteUUIDHeader identifies the installation a site runs on.
	siteUUIDHeader = "msupply-site-uuid"

	defaultBatchLimit = 500
	maxBatchLimit     = 5000
)

var errInvalidQueryParam = errors.New("invalid query parameter")

func (h *Handler) initialise(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	site, ok := h.authenticatedSite(w, r)
	if !ok {
		return
	}

	resp, err := h.central.CentralSyncService.Initialise(r.Context(), site, r.Header.Get(siteUUIDHeader))
	if err != nil {
		log.Err(err).Str("func", "*Handler.initialise").Msg("error initialising site")
		writeError(w, err, "error initialising site")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) getSiteInfo(w http.ResponseWriter, r *http.Request) {
	site, ok := h.authenticatedSite(w, r)
	if !ok {
		return
	}
	utils.WriteJSON(w, h.central.CentralSyncService.SiteInfo(r.Context(), site), http.StatusOK)
}

func (h *Handler) getSiteStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	site, ok := h.authenticatedSite(w, r)
	if !ok {
		return
	}

	status, err := h.central.CentralSyncService.SiteStatus(r.Context(), site)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getSiteStatus").Msg("error reading site status")
		writeError(w, err, "error reading site status")
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) getCentralRecords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	cursor, err := queryInt(r, "cursor", 0)
	if err != nil || cursor < 0 {
		log.Err(err).Str("func", "*Handler.getCentralRecords").Msg("invalid cursor")
		utils.WriteError(w, http.StatusBadRequest, codeBadRequest, "invalid cursor")
		return
	}
	limit, err := queryLimit(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCentralRecords").Msg("invalid limit")
		utils.WriteError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	batch, err := h.central.CentralSyncService.CentralRecords(r.Context(), cursor, limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getCentralRecords").Msg("error reading central records")
		writeError(w, err, "error reading central records")
		return
	}

	utils.WriteJSON(w, batch, http.StatusOK)
}

func (h *Handler) getQueuedRecords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	site, ok := h.authenticatedSite(w, r)
	if !ok {
		return
	}

	limit, err := queryLimit(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getQueuedRecords").Msg("invalid limit")
		utils.WriteError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	batch, err := h.central.CentralSyncService.QueuedRecords(r.Context(), site, limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getQueuedRecords").Msg("error reading queued records")
		writeError(w, err, "error reading queued records")
		return
	}

	utils.WriteJSON(w, batch, http.StatusOK)
}

func (h *Handler) pushRecords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	site, ok := h.authenticatedSite(w, r)
	if !ok {
		return
	}

	var batch models.PushBatch
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		log.Err(err).Str("func", "*Handler.pushRecords").Msg("Invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, codeBadRequest, "Invalid JSON was passed")
		return
	}

	resp, err := h.central.CentralSyncService.Push(r.Context(), site, batch)
	if err != nil {
		log.Err(err).Str("func", "*Handler.pushRecords").Int("records", len(batch.Records)).Msg("error storing pushed records")
		writeError(w, err, err.Error())
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) acknowledgeRecords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	site, ok := h.authenticatedSite(w, r)
	if !ok {
		return
	}

	var req models.AcknowledgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.acknowledgeRecords").Msg("Invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, codeBadRequest, "Invalid JSON was passed")
		return
	}

	if err := h.central.CentralSyncService.Acknowledge(r.Context(), site, req.SyncIDs); err != nil {
		log.Err(err).Str("func", "*Handler.acknowledgeRecords").Msg("error acknowledging records")
		writeError(w, err, "error acknowledging records")
		return
	}

	w.WriteHeader(http.StatusOK)
}

// authenticatedSite reads the site stored by siteAuth. It writes 401 when
// the route was served without the middleware.
func (h *Handler) authenticatedSite(w http.ResponseWriter, r *http.Request) (models.Site, bool) {
	site, ok := utils.GetSiteFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no authenticated site in request context")
		utils.WriteError(w, http.StatusUnauthorized, codeSiteAuthFailed, "site is not authenticated")
	}
	return site, ok
}

func queryInt(r *http.Request, name string, def int64) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errInvalidQueryParam, name, err)
	}
	return v, nil
}

// queryLimit reads the limit parameter, defaulting to defaultBatchLimit and
// capped at maxBatchLimit.
func queryLimit(r *http.Request) (uint64, error) {
	limit, err := queryInt(r, "limit", defaultBatchLimit)
	if err != nil {
		return 0, err
	}
	if limit <= 0 {
		return 0, fmt.Errorf("%w: limit must be positive", errInvalidQueryParam)
	}
	return uint64(min(limit, maxBatchLimit)), nil
}
