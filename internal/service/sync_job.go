// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/MKhiriev/site-sync/internal/logger"
)

type syncJob struct {
	syncService SyncService

	mu     sync.Mutex
	cron   *cron.Cron
	cancel context.CancelFunc
}

// NewSyncJob creates a job that calls syncService.Sync on a cron schedule.
// The job is idle until Start is called.
func NewSyncJob(syncService SyncService) SyncJob {
	return &syncJob{syncService: syncService}
}

// Start implements SyncJob. It stops any previously running schedule and
// registers a new one. Runs stop being scheduled when ctx is cancelled or
// Stop is called.
func (j *syncJob) Start(ctx context.Context, schedule string) error {
	j.Stop()

	log := logger.FromContext(ctx)
	c := cron.New(cron.WithChain(
		cron.Recover(cronLogger{log}),
		cron.SkipIfStillRunning(cronLogger{log}),
	))

	jobCtx, cancel := context.WithCancel(ctx)
	if _, err := c.AddFunc(schedule, func() { j.run(jobCtx) }); err != nil {
		cancel()
		return fmt.Errorf("schedule sync %q: %w", schedule, err)
	}

	j.mu.Lock()
	j.cron = c
	j.cancel = cancel
	j.mu.Unlock()

	c.Start()
	log.Info().Str("func", "syncJob.Start").Str("schedule", schedule).Msg("sync scheduled")

	go func() {
		<-jobCtx.Done()
		c.Stop()
	}()
	return nil
}

func (j *syncJob) run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	err := j.syncService.Sync(ctx)
	switch {
	case errors.Is(err, ErrSyncAlreadyRunning):
		logger.FromContext(ctx).Info().Str("func", "syncJob.run").Msg("sync already running, skipping scheduled run")
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "syncJob.run").Msg("scheduled sync failed")
	}
}

// Stop implements SyncJob. Safe to call when the job is not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	c, cancel := j.cron, j.cancel
	j.cron, j.cancel = nil, nil
	j.mu.Unlock()

	if c == nil {
		return
	}
	cancel()
	<-c.Stop().Done()
}

// cronLogger routes cron's own messages through zerolog.
type cronLogger struct {
	log *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug().Str("func", "cron").Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Err(err).Str("func", "cron").Fields(keysAndValues).Msg(msg)
}
