// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader    = "X-Trace-ID"
	appVersionHeader = "app-version"
)

// withTraceID attaches a child logger carrying the request trace id to the
// request context. The id is taken from the X-Trace-ID header or generated,
// and echoed in the response. Sync clients also send their installation
// uuid and build version; both end up on every line logged for the request.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		siteUUID := r.Header.Get(siteUUIDHeader)
		version := r.Header.Get(appVersionHeader)

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			c = c.Str("trace_id", traceID)
			if siteUUID != "" {
				c = c.Str("site_uuid", siteUUID)
			}
			if version != "" {
				c = c.Str("client_version", version)
			}
			return c
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
