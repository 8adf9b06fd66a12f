// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/site-sync/internal/adapter"
	"github.com/MKhiriev/site-sync/internal/config"
	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/store"
	"github.com/MKhiriev/site-sync/internal/translator"
	"github.com/MKhiriev/site-sync/models"
)

// RemoteDataSynchroniser pushes the local changelog to the central server
// and pulls the site queue into the sync buffer.
type RemoteDataSynchroniser struct {
	api      adapter.SyncAPI
	storage  store.SiteStorage
	registry *translator.Registry

	pushBatchSize         uint64
	pullBatchSize         int
	integrationPollPeriod time.Duration
	integrationTimeout    time.Duration

	now func() time.Time
}

// NewRemoteDataSynchroniser creates a synchroniser configured by cfg.
func NewRemoteDataSynchroniser(api adapter.SyncAPI, storage store.SiteStorage, registry *translator.Registry, cfg config.Sync) *RemoteDataSynchroniser {
	return &RemoteDataSynchroniser{
		api:                   api,
		storage:               storage,
		registry:              registry,
		pushBatchSize:         uint64(max(cfg.PushBatchSize, 1)),
		pullBatchSize:         max(cfg.RemotePullBatchSize, 1),
		integrationPollPeriod: cfg.IntegrationPollPeriod,
		integrationTimeout:    cfg.IntegrationTimeout,
		now:                   time.Now,
	}
}

// Push sends every changelog entry after the push cursor that was not
// written by integration. The cursor moves past a batch only after the
// central server accepted it. When anything was pushed Push waits until the
// central server finished integrating it.
func (s *RemoteDataSynchroniser) Push(ctx context.Context, progress func(remaining int64)) error {
	log := logger.FromContext(ctx)
	repos := s.storage.Repositories()

	cursor, err := getCursor(ctx, repos.KeyValue, models.KeyRemoteSyncPushCursor)
	if err != nil {
		return err
	}
	filter := models.NewChangelogFilter().WithIsSyncUpdate(false)

	var (
		pushed   bool
		response models.PushResponse
	)
	for {
		total, err := repos.Changelog.Count(ctx, cursor, filter)
		if err != nil {
			return fmt.Errorf("count changelog from %d: %w", cursor, err)
		}
		progress(total)
		if total == 0 {
			break
		}

		entries, err := repos.Changelog.Changelogs(ctx, cursor, s.pushBatchSize, filter)
		if err != nil {
			return fmt.Errorf("read changelog from %d: %w", cursor, err)
		}
		if len(entries) == 0 {
			break
		}

		records, err := s.registry.TranslateChangelogs(ctx, repos.Rows, entries)
		if err != nil {
			return fmt.Errorf("translate changelog: %w", err)
		}

		remaining := total - int64(len(entries))
		response, err = s.api.PushRecords(ctx, models.PushBatch{
			TotalRemaining: remaining,
			Records:        records,
		})
		if err != nil {
			return fmt.Errorf("push %d records: %w", len(records), err)
		}
		pushed = true

		cursor = entries[len(entries)-1].Cursor + 1
		if err = repos.KeyValue.SetInt(ctx, models.KeyRemoteSyncPushCursor, cursor); err != nil {
			return fmt.Errorf("advance push cursor: %w", err)
		}

		log.Debug().
			Str("func", "RemoteDataSynchroniser.Push").
			Int("changelogs", len(entries)).
			Int("records", len(records)).
			Int64("remaining", remaining).
			Int64("cursor", cursor).
			Msg("changelog batch pushed")

		progress(remaining)
		if remaining <= 0 {
			break
		}
	}

	if !pushed {
		return nil
	}
	if !response.IntegrationStarted {
		return ErrIntegrationNotStarted
	}
	return s.waitForIntegration(ctx)
}

// waitForIntegration polls the site status until the central server is
// idle again.
func (s *RemoteDataSynchroniser) waitForIntegration(ctx context.Context) error {
	deadline := s.now().Add(s.integrationTimeout)
	ticker := time.NewTicker(max(s.integrationPollPeriod, time.Millisecond))
	defer ticker.Stop()

	for {
		status, err := s.api.SiteStatus(ctx)
		if err != nil {
			return fmt.Errorf("poll site status: %w", err)
		}
		if status.Code == models.SiteStatusIdle {
			return nil
		}
		if !s.now().Before(deadline) {
			return fmt.Errorf("%w after %s", ErrIntegrationTimeoutReached, s.integrationTimeout)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Pull moves the site queue into the sync buffer. A batch is acknowledged
// only after it was stored, so an interrupted pull receives it again.
func (s *RemoteDataSynchroniser) Pull(ctx context.Context, progress func(remaining int64)) error {
	log := logger.FromContext(ctx)
	buffer := s.storage.Repositories().SyncBuffer

	for {
		batch, err := s.api.QueuedRecords(ctx, s.pullBatchSize)
		if err != nil {
			return fmt.Errorf("pull queued records: %w", err)
		}
		progress(batch.QueueLength)
		if batch.QueueLength == 0 || len(batch.Data) == 0 {
			return nil
		}

		rows, err := s.bufferRows(batch.Data)
		if err != nil {
			return err
		}
		if err = buffer.Upsert(ctx, rows); err != nil {
			return fmt.Errorf("buffer queued records: %w", err)
		}
		if err = s.api.AcknowledgeRecords(ctx, batch.SyncIDs()); err != nil {
			return fmt.Errorf("acknowledge %d records: %w", len(batch.Data), err)
		}

		remaining := batch.QueueLength - int64(len(batch.Data))
		log.Debug().
			Str("func", "RemoteDataSynchroniser.Pull").
			Int("records", len(batch.Data)).
			Int64("remaining", remaining).
			Msg("queued records pulled")
		progress(remaining)
	}
}

func (s *RemoteDataSynchroniser) bufferRows(records []models.RemoteRecord) ([]models.SyncBufferRow, error) {
	received := s.now().UTC()
	rows := make([]models.SyncBufferRow, 0, len(records))
	for _, r := range records {
		action, err := r.Action.BufferAction()
		if err != nil {
			return nil, fmt.Errorf("queued record %s: %w", r.SyncID, err)
		}
		rows = append(rows, models.SyncBufferRow{
			TableName:        r.TableName,
			RecordID:         r.RecordID,
			Action:           action,
			Data:             r.RecordData,
			ReceivedDatetime: received,
			SourceSiteID:     r.SourceSiteID,
		})
	}
	return rows, nil
}
