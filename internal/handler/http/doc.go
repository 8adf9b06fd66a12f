// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of both binaries.
//
// SiteRoutes serves the local status API of a remote site. CentralRoutes
// serves the sync API v5 the sites talk to, plus the admin routes used to
// register sites and publish central data. Request tracing, access logging,
// panic recovery, compression and site authentication are handled here
// before requests reach the service layer.
package http
