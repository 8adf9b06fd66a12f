// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/service"
	"github.com/MKhiriev/site-sync/internal/store"
	"github.com/MKhiriev/site-sync/internal/utils"
)

// siteAuth authenticates a site by the basic auth credentials of the
// request: the site name and the hex sha256 digest of its password. The
// authenticated site is stored in the request context under
// [utils.SiteCtxKey].
//
// All rejections are 401 Unauthorized. The body code is
// site_name_not_found for an unknown name and site_auth_failed otherwise,
// so the site can report which of its credentials is wrong.
func (h *Handler) siteAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		name, digest, ok := r.BasicAuth()
		if !ok {
			log.Warn().Str("func", "*Handler.siteAuth").Msg("request without basic auth")
			utils.WriteError(w, http.StatusUnauthorized, codeSiteAuthFailed, "basic auth credentials are required")
			return
		}

		site, err := h.central.SiteAuthService.Authenticate(r.Context(), name, digest)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrSiteNotFound):
				log.Warn().Str("name", name).Msg("unknown site name")
				utils.WriteError(w, http.StatusUnauthorized, codeSiteNameNotFound, "site name not found")
			case errors.Is(err, service.ErrWrongPassword), errors.Is(err, service.ErrInvalidDataProvided):
				log.Warn().Str("name", name).Msg("site authentication failed")
				utils.WriteError(w, http.StatusUnauthorized, codeSiteAuthFailed, "site authentication failed")
			default:
				log.Err(err).Str("func", "*Handler.siteAuth").Msg("error occurred during site authentication")
				writeError(w, err, "")
			}
			return
		}

		setRequestSite(r.Context(), site)
		siteLog := log.With().Int64("site_id", site.SiteID).Logger()

		ctx := utils.WithSite(siteLog.WithContext(r.Context()), site)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminAuth requires "Authorization: Bearer <admin token>".
func (h *Handler) adminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, http.StatusUnauthorized, codeUnauthorized, ErrEmptyAuthorizationHeader.Error())
			return
		}

		token, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, http.StatusUnauthorized, codeUnauthorized, err.Error())
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(h.adminToken)) != 1 {
			log.Warn().Str("func", "*Handler.adminAuth").Msg("wrong admin token")
			utils.WriteError(w, http.StatusUnauthorized, codeUnauthorized, "invalid admin token")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getTokenFromAuthHeader extracts the token of an "Authorization: <scheme>
// <token>" header value.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
