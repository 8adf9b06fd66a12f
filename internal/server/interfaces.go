// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of a transport server.
type Server interface {
	// Run serves requests until ctx is cancelled, then shuts down
	// gracefully. It returns early with an error when the server cannot
	// listen or stops serving on its own.
	Run(ctx context.Context) error
}
