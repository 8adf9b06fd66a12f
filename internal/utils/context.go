// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/site-sync/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SiteCtxKey is the key used to store the authenticated site in the
// context of a central sync request.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SiteCtxKey, site)
var SiteCtxKey = contextKey("site")

// WithSite returns a copy of ctx carrying site.
func WithSite(ctx context.Context, site models.Site) context.Context {
	return context.WithValue(ctx, SiteCtxKey, site)
}

// GetSiteFromContext retrieves the authenticated site from the context.
//
// Returns the site and an ok flag:
//   - ok == true: value is found and has the correct type
//   - ok == false: value is missing or has an unexpected type
func GetSiteFromContext(ctx context.Context) (models.Site, bool) {
	site, ok := ctx.Value(SiteCtxKey).(models.Site)
	return site, ok
}
