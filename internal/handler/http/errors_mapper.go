// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/site-sync/internal/service"
	"github.com/MKhiriev/site-sync/internal/store"
	"github.com/MKhiriev/site-sync/internal/utils"
)

type errorResponse struct {
	status int
	code   string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrInvalidDataProvided: {http.StatusBadRequest, codeBadRequest},
	service.ErrRemoteTablePushed:   {http.StatusBadRequest, codeBadRequest},
	service.ErrWrongPassword:       {http.StatusUnauthorized, codeSiteAuthFailed},
	service.ErrSiteNotInitialised:  {http.StatusConflict, codeSiteNotInitialised},
	service.ErrSyncAlreadyRunning:  {http.StatusConflict, codeSyncAlreadyRunning},

	store.ErrSiteAlreadyExists:    {http.StatusConflict, codeConflict},
	store.ErrSiteNotFound:         {http.StatusNotFound, codeNotFound},
	store.ErrRowNotFound:          {http.StatusNotFound, codeNotFound},
	store.ErrUnsupportedColumn:    {http.StatusBadRequest, codeBadRequest},
	store.ErrDecodingData:         {http.StatusInternalServerError, codeInternal},
	store.ErrExecutingQuery:       {http.StatusInternalServerError, codeInternal},
	store.ErrScanningRow:          {http.StatusInternalServerError, codeInternal},
	store.ErrScanningRows:         {http.StatusInternalServerError, codeInternal},
	store.ErrBuildingSQLQuery:     {http.StatusInternalServerError, codeInternal},
	store.ErrBeginningTransaction: {http.StatusInternalServerError, codeInternal},
	store.ErrCommitingTransaction: {http.StatusInternalServerError, codeInternal},
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, codeInternal}
}

// writeError writes the [models.APIError] body matching err. Server side
// failures never leak their message.
func writeError(w http.ResponseWriter, err error, message string) {
	resp := responseFromError(err)
	if resp.status >= http.StatusInternalServerError {
		message = http.StatusText(resp.status)
	}
	utils.WriteError(w, resp.status, resp.code, message)
}
