// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/site-sync/internal/utils"
	"github.com/MKhiriev/site-sync/models"
)

type httpSiteAPI struct {
	client *utils.HTTPClient
}

// NewHTTPSiteAPI constructs the HTTP implementation of [SiteAPI] for the
// site listening on address.
func NewHTTPSiteAPI(address string, timeout time.Duration) (SiteAPI, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid site url: %w", err)
	}

	return &httpSiteAPI{client: utils.NewHTTPClient(baseURL, timeout)}, nil
}

func (h *httpSiteAPI) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var out models.AppBuildInfo
	err := do(ctx, "httpSiteAPI.Version", h.client.R().SetContext(ctx), resty.MethodGet, "/api/v1/version", &out)
	return out, err
}

func (h *httpSiteAPI) SyncStatus(ctx context.Context) (models.SyncStatus, error) {
	var out models.SyncStatus
	err := do(ctx, "httpSiteAPI.SyncStatus", h.client.R().SetContext(ctx), resty.MethodGet, "/api/v1/sync/status", &out)
	return out, err
}

func (h *httpSiteAPI) TriggerSync(ctx context.Context) error {
	return do(ctx, "httpSiteAPI.TriggerSync", h.client.R().SetContext(ctx), resty.MethodPost, "/api/v1/sync", nil)
}
