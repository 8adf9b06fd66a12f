// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/site-sync/internal/adapter"
	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/store"
	"github.com/MKhiriev/site-sync/models"
)

// CentralDataSynchroniser pulls the central records feed into the sync
// buffer.
type CentralDataSynchroniser struct {
	api       adapter.SyncAPI
	storage   store.SiteStorage
	batchSize int
	now       func() time.Time
}

// NewCentralDataSynchroniser creates a synchroniser pulling batchSize
// records per request.
func NewCentralDataSynchroniser(api adapter.SyncAPI, storage store.SiteStorage, batchSize int) *CentralDataSynchroniser {
	return &CentralDataSynchroniser{
		api:       api,
		storage:   storage,
		batchSize: batchSize,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Pull requests batches after the stored cursor until the feed is drained.
// Each batch is buffered and the cursor advanced in one transaction, so an
// interrupted pull resumes after the last stored batch.
func (s *CentralDataSynchroniser) Pull(ctx context.Context, progress func(remaining int64)) error {
	log := logger.FromContext(ctx)

	cursor, err := getCursor(ctx, s.storage.Repositories().KeyValue, models.KeyCentralSyncPullCursor)
	if err != nil {
		return err
	}

	for {
		batch, err := s.api.CentralRecords(ctx, cursor, s.batchSize)
		if err != nil {
			return fmt.Errorf("pull central records after %d: %w", cursor, err)
		}

		log.Debug().
			Str("func", "CentralDataSynchroniser.Pull").
			Int64("cursor", cursor).
			Int64("max_cursor", batch.MaxCursor).
			Int("records", len(batch.Data)).
			Msg("central records pulled")

		if len(batch.Data) == 0 {
			progress(0)
			return nil
		}

		last := batch.Data[len(batch.Data)-1].ID
		err = s.storage.Transaction(ctx, func(ctx context.Context, repos *store.SiteRepositories) error {
			if err := repos.SyncBuffer.Upsert(ctx, s.bufferRows(batch.Data)); err != nil {
				return fmt.Errorf("buffer central records: %w", err)
			}
			return repos.KeyValue.SetInt(ctx, models.KeyCentralSyncPullCursor, last)
		})
		if err != nil {
			return err
		}
		cursor = last

		progress(max(batch.MaxCursor-1-cursor, 0))
		if cursor >= batch.MaxCursor-1 {
			return nil
		}
	}
}

func (s *CentralDataSynchroniser) bufferRows(records []models.CentralRecord) []models.SyncBufferRow {
	received := s.now()
	rows := make([]models.SyncBufferRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, models.SyncBufferRow{
			TableName:        r.TableName,
			RecordID:         r.RecordID,
			Action:           models.SyncBufferActionUpsert,
			Data:             r.Data,
			ReceivedDatetime: received,
		})
	}
	return rows
}
