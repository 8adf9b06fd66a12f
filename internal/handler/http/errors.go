// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the admin middleware when parsing the
// "Authorization" HTTP header.
var (
	// ErrEmptyAuthorizationHeader is returned when the request has no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header cannot be
	// split into a scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Codes of the [models.APIError] bodies written by this package. The site
// sync logger tells an unknown site name from a wrong password by them.
const (
	codeSiteNameNotFound   = "site_name_not_found"
	codeSiteAuthFailed     = "site_auth_failed"
	codeBadRequest         = "bad_request"
	codeNotFound           = "not_found"
	codeConflict           = "conflict"
	codeSiteNotInitialised = "site_not_initialised"
	codeSyncAlreadyRunning = "sync_already_running"
	codeUnauthorized       = "unauthorized"
	codeInternal           = "internal_error"
)
