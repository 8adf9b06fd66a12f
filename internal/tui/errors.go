// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/site-sync/internal/adapter"
)

func humanizeSiteError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrConnection):
		return "site is unreachable"
	case errors.Is(err, adapter.ErrConflict):
		return "a sync run is already in progress"
	default:
		return err.Error()
	}
}
