// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Errors returned by [SyncAPI]. Non-2xx responses map onto the status
// errors, failures below HTTP onto [ErrConnection].
var (
	ErrConnection          = errors.New("connection to central server failed")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("site unauthorized")
	ErrForbidden           = errors.New("site forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("central server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected response status")
	ErrDecodingResponse    = errors.New("failed to decode response")
)
