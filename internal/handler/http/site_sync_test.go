// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/mock"
	"github.com/MKhiriev/site-sync/internal/service"
	"github.com/MKhiriev/site-sync/models"
)

var testBuild = models.NewAppBuildInfo("site-sync", "1.2.0", "", "abc123")

func newSiteRouter(t *testing.T) (*mock.MockSyncService, http.Handler) {
	t.Helper()
	syncService := mock.NewMockSyncService(gomock.NewController(t))
	h := NewSiteHandler(&service.SiteServices{SyncService: syncService}, testBuild, logger.Nop())
	return syncService, h.SiteRoutes()
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeAPIError(t *testing.T, rr *httptest.ResponseRecorder) models.APIError {
	t.Helper()
	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &apiErr), rr.Body.String())
	return apiErr
}

// ── Site API ────────────────────────────────────────────────────────────────

func TestSiteRoutes_Version(t *testing.T) {
	_, router := newSiteRouter(t)

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/version", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var info models.AppBuildInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &info))
	assert.Equal(t, "1.2.0", info.Version)
	assert.Equal(t, "N/A", info.Date)
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestSiteRoutes_SyncStatus(t *testing.T) {
	syncService, router := newSiteRouter(t)
	siteID := int64(7)
	syncService.EXPECT().Status(gomock.Any()).Return(models.SyncStatus{
		SiteID:           &siteID,
		QueueInitialised: true,
		PushCursor:       12,
	}, nil)

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/sync/status", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var status models.SyncStatus
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &status))
	assert.Equal(t, int64(12), status.PushCursor)
	assert.True(t, status.QueueInitialised)
	require.NotNil(t, status.SiteID)
	assert.Equal(t, int64(7), *status.SiteID)
}

func TestSiteRoutes_SyncStatusError(t *testing.T) {
	syncService, router := newSiteRouter(t)
	syncService.EXPECT().Status(gomock.Any()).Return(models.SyncStatus{}, errors.New("database is locked"))

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/sync/status", nil))
	require.Equal(t, http.StatusInternalServerError, rr.Code)

	apiErr := decodeAPIError(t, rr)
	assert.Equal(t, codeInternal, apiErr.Code)
	assert.NotContains(t, apiErr.Message, "locked")
}

func TestSiteRoutes_TriggerSync(t *testing.T) {
	syncService, router := newSiteRouter(t)

	started := make(chan struct{})
	syncService.EXPECT().Status(gomock.Any()).Return(models.SyncStatus{}, nil)
	syncService.EXPECT().Sync(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		close(started)
		return nil
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil)
	reqCtx, cancel := context.WithCancel(req.Context())
	rr := serve(router, req.WithContext(reqCtx))
	cancel()
	assert.Equal(t, http.StatusAccepted, rr.Code)

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("sync was not started")
	}
}

func TestSiteRoutes_TriggerSyncWhileRunning(t *testing.T) {
	syncService, router := newSiteRouter(t)
	syncService.EXPECT().Status(gomock.Any()).Return(models.SyncStatus{IsRunning: true}, nil)

	rr := serve(router, httptest.NewRequest(http.MethodPost, "/api/v1/sync", nil))
	require.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, codeSyncAlreadyRunning, decodeAPIError(t, rr).Code)
}

func TestSiteRoutes_UnknownMethodIsNotFound(t *testing.T) {
	_, router := newSiteRouter(t)

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/sync", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(router, httptest.NewRequest(http.MethodDelete, "/api/v1/version", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
