// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/site-sync/internal/config"
	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/utils"
	"github.com/MKhiriev/site-sync/models"
)

// newTestAPI creates an httpSyncAPI pointed at the test server.
func newTestAPI(t *testing.T, serverURL string) SyncAPI {
	t.Helper()

	api, err := NewHTTPSyncAPI(config.Sync{
		CentralURL:     serverURL,
		Username:       "clinic",
		Password:       "pass",
		SiteUUID:       "hw-1",
		RequestTimeout: 5 * time.Second,
	}, config.App{Name: "site-sync", Version: "1.2.3"}, logger.Nop())
	require.NoError(t, err)
	return api
}

func assertSyncHeaders(t *testing.T, r *http.Request) {
	t.Helper()

	user, pass, ok := r.BasicAuth()
	assert.True(t, ok)
	assert.Equal(t, "clinic", user)
	assert.Equal(t, utils.PasswordDigest("pass"), pass)
	assert.Equal(t, "hw-1", r.Header.Get("msupply-site-uuid"))
	assert.Equal(t, "1.2.3", r.Header.Get("app-version"))
	assert.Equal(t, "site-sync", r.Header.Get("app-name"))
}

// ── Central records ─────────────────────────────────────────────────────────

func TestCentralRecords_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/sync/v5/central_records", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("cursor"))
		assert.Equal(t, "500", r.URL.Query().Get("limit"))
		assertSyncHeaders(t, r)

		_, _ = w.Write([]byte(`{"maxCursor":10,"data":[{"ID":8,"tableName":"item","recordId":"i1","data":{"ID":"i1"}}]}`))
	}))
	defer srv.Close()

	batch, err := newTestAPI(t, srv.URL).CentralRecords(context.Background(), 7, 500)
	require.NoError(t, err)
	assert.Equal(t, int64(10), batch.MaxCursor)
	require.Len(t, batch.Data, 1)
	assert.Equal(t, int64(8), batch.Data[0].ID)
	assert.JSONEq(t, `{"ID":"i1"}`, string(batch.Data[0].Data))
}

func TestCentralRecords_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusUnauthorized, "site_auth_failed", "wrong password")
	}))
	defer srv.Close()

	_, err := newTestAPI(t, srv.URL).CentralRecords(context.Background(), 0, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "site_auth_failed")

	var apiErr models.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "site_auth_failed", apiErr.Code)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestCentralRecords_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAPI(t, url).CentralRecords(context.Background(), 0, 10)
	assert.ErrorIs(t, err, ErrConnection)
}

func TestCentralRecords_BadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := newTestAPI(t, srv.URL).CentralRecords(context.Background(), 0, 10)
	assert.ErrorIs(t, err, ErrDecodingResponse)
}

// ── Queue ───────────────────────────────────────────────────────────────────

func TestQueuedRecords_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/sync/v5/queued_records", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("limit"))

		_, _ = w.Write([]byte(`{"queueLength":3,"data":[
			{"syncOutId":"q1","tableName":"requisition","recordId":"r1","action":"insert","recordData":{"ID":"r1"}},
			{"syncOutId":"q2","tableName":"requisition","recordId":"r2","action":"delete"}]}`))
	}))
	defer srv.Close()

	batch, err := newTestAPI(t, srv.URL).QueuedRecords(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), batch.QueueLength)
	require.Len(t, batch.Data, 2)
	assert.Equal(t, models.RemoteActionInsert, batch.Data[0].Action)
	assert.Equal(t, []string{"q1", "q2"}, batch.SyncIDs())
}

func TestAcknowledgeRecords(t *testing.T) {
	var got models.AcknowledgeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/sync/v5/acknowledged_records", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newTestAPI(t, srv.URL).AcknowledgeRecords(context.Background(), []string{"q1", "q2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"q1", "q2"}, got.SyncIDs)
}

// ── Push ────────────────────────────────────────────────────────────────────

func TestPushRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/sync/v5/queued_records", r.URL.Path)
		assertSyncHeaders(t, r)

		var body models.PushBatch
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(0), body.TotalRemaining)
		require.Len(t, body.Records, 1)
		assert.Equal(t, models.InvoiceTable, body.Records[0].TableName)

		_, _ = w.Write([]byte(`{"integrationStarted":true}`))
	}))
	defer srv.Close()

	resp, err := newTestAPI(t, srv.URL).PushRecords(context.Background(), models.PushBatch{
		Records: []models.PushRecord{{SyncID: "s1", TableName: models.InvoiceTable, RecordID: "i1", Action: models.PushActionUpdate}},
	})
	require.NoError(t, err)
	assert.True(t, resp.IntegrationStarted)
}

// ── Site ────────────────────────────────────────────────────────────────────

func TestInitialiseAndSiteInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sync/v5/initialise":
			assert.Equal(t, http.MethodPost, r.Method)
			_, _ = w.Write([]byte(`{"queueLength":12}`))
		case "/sync/v5/site":
			_, _ = w.Write([]byte(`{"id":"uuid-2","siteId":2,"name":"clinic"}`))
		case "/sync/v5/site_status":
			_, _ = w.Write([]byte(`{"code":"integration_in_progress"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)

	initResp, err := api.Initialise(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), initResp.QueueLength)

	info, err := api.SiteInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), info.SiteID)
	assert.Equal(t, "uuid-2", info.ID)

	status, err := api.SiteStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.SiteStatusIntegrationInProgress, status.Code)
}

// ── Error mapping ───────────────────────────────────────────────────────────

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusTeapot, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := newTestAPI(t, srv.URL).SiteStatus(context.Background())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL(" central:8080/ ")
	require.NoError(t, err)
	assert.Equal(t, "http://central:8080", got)

	got, err = normalizeBaseURL("https://central.example.org/")
	require.NoError(t, err)
	assert.Equal(t, "https://central.example.org", got)

	_, err = normalizeBaseURL("")
	assert.Error(t, err)

	_, err = NewHTTPSyncAPI(config.Sync{}, config.App{}, logger.Nop())
	assert.Error(t, err)
}
