// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the long-lived parts of a binary, such as the sync
// schedule and the HTTP server, side by side.
package workers

import "context"

// Worker is a long-running unit of a process. Run blocks until ctx is
// cancelled or the worker fails.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
