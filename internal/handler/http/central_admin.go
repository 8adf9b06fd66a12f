// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/utils"
	"github.com/MKhiriev/site-sync/models"
)

func (h *Handler) registerSite(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.registerSite").Msg("Invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, codeBadRequest, "Invalid JSON was passed")
		return
	}

	site, err := h.central.SiteAuthService.Register(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.registerSite").Msg("error registering site")
		writeError(w, err, err.Error())
		return
	}

	utils.WriteJSON(w, site, http.StatusCreated)
}

type appendCentralRecordsResponse struct {
	Cursors []int64 `json:"cursors"`
}

func (h *Handler) appendCentralRecords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var records []models.CentralRecordInput
	if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
		log.Err(err).Str("func", "*Handler.appendCentralRecords").Msg("Invalid JSON was passed")
		utils.WriteError(w, http.StatusBadRequest, codeBadRequest, "Invalid JSON was passed")
		return
	}

	cursors, err := h.central.CentralSyncService.AppendCentralRecords(r.Context(), records)
	if err != nil {
		log.Err(err).Str("func", "*Handler.appendCentralRecords").Msg("error appending central records")
		writeError(w, err, err.Error())
		return
	}

	utils.WriteJSON(w, appendCentralRecordsResponse{Cursors: cursors}, http.StatusCreated)
}
