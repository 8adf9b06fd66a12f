// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/site-sync/models"
)

// spySyncService counts Sync calls and can hold each call for a while.
type spySyncService struct {
	calls atomic.Int64
	delay time.Duration
	err   error
}

func (s *spySyncService) Sync(ctx context.Context) error {
	s.calls.Add(1)
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
	}
	return s.err
}

func (s *spySyncService) Status(context.Context) (models.SyncStatus, error) {
	return models.SyncStatus{}, nil
}

// ── NewSyncJob ──────────────────────────────────────────────────────────────

func TestNewSyncJob_ReturnsInterface(t *testing.T) {
	job := NewSyncJob(&spySyncService{})
	require.NotNil(t, job)

	var _ SyncJob = job
}

// ── Start / Stop ────────────────────────────────────────────────────────────

func TestSyncJob_Start_InvalidSchedule(t *testing.T) {
	job := NewSyncJob(&spySyncService{})

	err := job.Start(context.Background(), "every now and then")
	require.Error(t, err)
	assert.NotPanics(t, job.Stop)
}

func TestSyncJob_Start_CallsSync(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy)

	require.NoError(t, job.Start(context.Background(), "@every 1s"))
	time.Sleep(1500 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(1))
}

func TestSyncJob_Stop_StopsSchedule(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy)

	require.NoError(t, job.Start(context.Background(), "@every 1s"))
	job.Stop()

	time.Sleep(1200 * time.Millisecond)
	assert.Equal(t, int64(0), spy.calls.Load(), "no run is scheduled after Stop")
}

func TestSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewSyncJob(&spySyncService{})
	assert.NotPanics(t, job.Stop)
}

func TestSyncJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewSyncJob(&spySyncService{})

	require.NoError(t, job.Start(context.Background(), "@every 1h"))
	job.Stop()
	assert.NotPanics(t, job.Stop)
}

func TestSyncJob_Stop_CancelsRunningSync(t *testing.T) {
	spy := &spySyncService{delay: time.Hour}
	job := NewSyncJob(spy)

	require.NoError(t, job.Start(context.Background(), "@every 1s"))
	require.Eventually(t, func() bool { return spy.calls.Load() == 1 }, 3*time.Second, 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return while a sync was running")
	}
}

func TestSyncJob_SlowRunSkipsNextTick(t *testing.T) {
	spy := &spySyncService{delay: time.Hour}
	job := NewSyncJob(spy)

	require.NoError(t, job.Start(context.Background(), "@every 1s"))
	time.Sleep(3200 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(1), spy.calls.Load(), "ticks during a running sync are skipped")
}

func TestSyncJob_SyncError_DoesNotStopJob(t *testing.T) {
	spy := &spySyncService{err: assert.AnError}
	job := NewSyncJob(spy)

	require.NoError(t, job.Start(context.Background(), "@every 1s"))
	time.Sleep(2500 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(2))
}

func TestSyncJob_ContextCancel_StopsJob(t *testing.T) {
	spy := &spySyncService{}
	job := NewSyncJob(spy)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, job.Start(ctx, "@every 1s"))
	cancel()

	time.Sleep(1200 * time.Millisecond)
	assert.Equal(t, int64(0), spy.calls.Load())
	job.Stop()
}
