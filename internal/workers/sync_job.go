// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/service"
)

// syncJobWorker keeps a sync job scheduled while it runs.
type syncJobWorker struct {
	job      service.SyncJob
	schedule string
}

// NewSyncJobWorker returns a worker that starts job on schedule and stops
// it, waiting for a running sync, when its context is cancelled.
func NewSyncJobWorker(job service.SyncJob, schedule string) Worker {
	return &syncJobWorker{job: job, schedule: schedule}
}

func (s *syncJobWorker) Run(ctx context.Context) error {
	if err := s.job.Start(ctx, s.schedule); err != nil {
		return fmt.Errorf("start sync job: %w", err)
	}
	logger.FromContext(ctx).Info().Str("schedule", s.schedule).Msg("sync job started")

	<-ctx.Done()
	s.job.Stop()

	logger.FromContext(ctx).Info().Msg("sync job stopped")
	return nil
}
