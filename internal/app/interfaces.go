// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "context"

// App defines the lifecycle contract of a runnable process.
type App interface {
	// Run blocks until ctx is cancelled or a worker fails, then releases
	// the resources of the process.
	Run(ctx context.Context) error
}
