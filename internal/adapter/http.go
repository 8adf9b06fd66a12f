// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/site-sync/internal/config"
	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/utils"
	"github.com/MKhiriev/site-sync/models"
)

// Header names sent with every sync request.
const (
	headerSiteUUID   = "msupply-site-uuid"
	headerAppVersion = "app-version"
	headerAppName    = "app-name"
)

type httpSyncAPI struct {
	client *utils.HTTPClient

	username       string
	passwordDigest string

	logger *logger.Logger
}

// NewHTTPSyncAPI constructs the HTTP/REST implementation of [SyncAPI].
// It normalises and validates the central server URL, configures the
// underlying HTTP client with the request timeout and the identification
// headers, and derives the password digest used for basic auth.
//
// Returns an error if syncCfg.CentralURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPSyncAPI(syncCfg config.Sync, appCfg config.App, log *logger.Logger) (SyncAPI, error) {
	baseURL, err := normalizeBaseURL(syncCfg.CentralURL)
	if err != nil {
		return nil, fmt.Errorf("invalid central server url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, syncCfg.RequestTimeout)
	client.SetHeaders(map[string]string{
		headerSiteUUID:   syncCfg.SiteUUID,
		headerAppVersion: appCfg.Version,
		headerAppName:    appCfg.Name,
	})

	return &httpSyncAPI{
		client:         client,
		username:       syncCfg.Username,
		passwordDigest: utils.PasswordDigest(syncCfg.Password),
		logger:         log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Initialise implements [SyncAPI]. It POSTs an empty body to
// /sync/v5/initialise; the central server rejects the request without a
// content length.
func (h *httpSyncAPI) Initialise(ctx context.Context) (models.InitialiseResponse, error) {
	var out models.InitialiseResponse
	err := do(ctx, "httpSyncAPI.Initialise", h.request(ctx).SetHeader("Content-Length", "0"), resty.MethodPost, "/sync/v5/initialise", &out)
	return out, err
}

// SiteInfo implements [SyncAPI] with GET /sync/v5/site.
func (h *httpSyncAPI) SiteInfo(ctx context.Context) (models.SiteInfo, error) {
	var out models.SiteInfo
	err := do(ctx, "httpSyncAPI.SiteInfo", h.request(ctx), resty.MethodGet, "/sync/v5/site", &out)
	return out, err
}

// CentralRecords implements [SyncAPI] with
// GET /sync/v5/central_records?cursor=C&limit=N.
func (h *httpSyncAPI) CentralRecords(ctx context.Context, cursor int64, limit int) (models.CentralBatch, error) {
	var out models.CentralBatch
	req := h.request(ctx).SetQueryParams(map[string]string{
		"cursor": strconv.FormatInt(cursor, 10),
		"limit":  strconv.Itoa(limit),
	})
	err := do(ctx, "httpSyncAPI.CentralRecords", req, resty.MethodGet, "/sync/v5/central_records", &out)
	return out, err
}

// QueuedRecords implements [SyncAPI] with GET /sync/v5/queued_records?limit=N.
func (h *httpSyncAPI) QueuedRecords(ctx context.Context, limit int) (models.RemoteBatch, error) {
	var out models.RemoteBatch
	req := h.request(ctx).SetQueryParam("limit", strconv.Itoa(limit))
	err := do(ctx, "httpSyncAPI.QueuedRecords", req, resty.MethodGet, "/sync/v5/queued_records", &out)
	return out, err
}

// AcknowledgeRecords implements [SyncAPI] with
// POST /sync/v5/acknowledged_records.
func (h *httpSyncAPI) AcknowledgeRecords(ctx context.Context, syncIDs []string) error {
	req := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AcknowledgeRequest{SyncIDs: syncIDs})
	return do(ctx, "httpSyncAPI.AcknowledgeRecords", req, resty.MethodPost, "/sync/v5/acknowledged_records", nil)
}

// PushRecords implements [SyncAPI] with POST /sync/v5/queued_records.
func (h *httpSyncAPI) PushRecords(ctx context.Context, batch models.PushBatch) (models.PushResponse, error) {
	var out models.PushResponse
	req := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(batch)
	err := do(ctx, "httpSyncAPI.PushRecords", req, resty.MethodPost, "/sync/v5/queued_records", &out)
	return out, err
}

// SiteStatus implements [SyncAPI] with GET /sync/v5/site_status.
func (h *httpSyncAPI) SiteStatus(ctx context.Context) (models.SiteStatus, error) {
	var out models.SiteStatus
	err := do(ctx, "httpSyncAPI.SiteStatus", h.request(ctx), resty.MethodGet, "/sync/v5/site_status", &out)
	return out, err
}

func (h *httpSyncAPI) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetBasicAuth(h.username, h.passwordDigest)
}

// do sends req and decodes a 2xx body into out when out is not nil.
func do(ctx context.Context, funcName string, req *resty.Request, method, path string, out any) error {
	log := logger.FromContext(ctx)

	resp, err := req.Execute(method, path)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("path", path).Msg("request failed")
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", funcName).Int("status", resp.StatusCode()).Msg("server returned an error")
		return err
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to decode response")
		return fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	return nil
}
