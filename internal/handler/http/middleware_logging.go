// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/models"
)

type requestSiteKey struct{}

// requestSite is filled by siteAuth so the access log names the site a
// sync call came from.
type requestSite struct {
	site *models.Site
}

func withRequestSite(ctx context.Context) (context.Context, *requestSite) {
	rs := &requestSite{}
	return context.WithValue(ctx, requestSiteKey{}, rs), rs
}

// setRequestSite records the authenticated site for the access log. It is
// a no-op outside withLogging.
func setRequestSite(ctx context.Context, site models.Site) {
	if rs, ok := ctx.Value(requestSiteKey{}).(*requestSite); ok {
		rs.site = &site
	}
}

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		ctx, rs := withRequestSite(r.Context())
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r.WithContext(ctx))

		event := log.Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.status).
			Int("size", lw.size).
			Dur("duration", time.Since(start))
		if rs.site != nil {
			event = event.Int64("site_id", rs.site.SiteID).Str("site_name", rs.site.Name)
		}
		event.Msg("request served")
	})
}
