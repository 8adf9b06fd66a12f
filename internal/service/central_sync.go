// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/store"
	"github.com/MKhiriev/site-sync/internal/utils"
	"github.com/MKhiriev/site-sync/internal/validators"
	"github.com/MKhiriev/site-sync/models"
)

// centralSyncService is the central side of the sync API v5.
type centralSyncService struct {
	storage   store.CentralStorage
	ids       utils.IDGenerator
	validator validators.Validator
	now       func() time.Time
}

// NewCentralSyncService constructs the service over the central storage.
func NewCentralSyncService(storage store.CentralStorage, ids utils.IDGenerator) CentralSyncService {
	return &centralSyncService{
		storage:   storage,
		ids:       ids,
		validator: validators.NewSyncValidator(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Initialise queues every remote record of the site's stores for the site
// and forgets its push receipts, so a reinstalled site receives its data
// back and may push its changelog from the start.
func (s *centralSyncService) Initialise(ctx context.Context, site models.Site, hardwareID string) (models.InitialiseResponse, error) {
	log := logger.FromContext(ctx)

	var queued int64
	err := s.storage.Transaction(ctx, func(ctx context.Context, repos *store.CentralRepositories) error {
		storeIDs, err := repos.Sites.StoreIDs(ctx, site.SiteID)
		if err != nil {
			return err
		}
		records, err := repos.RemoteRecords.ForStores(ctx, storeIDs)
		if err != nil {
			return err
		}

		entries := make([]models.QueueEntry, 0, len(records))
		for _, rec := range records {
			if rec.Action == models.PushActionDelete {
				continue
			}
			source := rec.SourceSiteID
			entries = append(entries, models.QueueEntry{
				SyncID:       s.ids.Generate(),
				SiteID:       site.SiteID,
				TableName:    rec.TableName,
				RecordID:     rec.RecordID,
				Action:       models.RemoteActionInsert,
				Data:         rec.Data,
				SourceSiteID: &source,
			})
		}
		if len(entries) > 0 {
			if err = repos.SiteQueue.Enqueue(ctx, entries); err != nil {
				return err
			}
		}

		if err = repos.PushReceipts.Clear(ctx, site.SiteID); err != nil {
			return err
		}
		if err = repos.Sites.SetInitialised(ctx, site.SiteID, hardwareID); err != nil {
			return err
		}

		queued, err = repos.SiteQueue.Length(ctx, site.SiteID)
		return err
	})
	if err != nil {
		log.Err(err).Int64("site_id", site.SiteID).Msg("site initialisation ended with error")
		return models.InitialiseResponse{}, fmt.Errorf("initialise site %d: %w", site.SiteID, err)
	}

	log.Info().Int64("site_id", site.SiteID).Int64("queue_length", queued).Msg("site initialised")
	return models.InitialiseResponse{QueueLength: queued}, nil
}

func (s *centralSyncService) SiteInfo(_ context.Context, site models.Site) models.SiteInfo {
	return models.SiteInfo{
		ID:     site.SiteUUID,
		SiteID: site.SiteID,
		Name:   site.Name,
	}
}

// SiteStatus re-reads the site, since its status changes while a push is
// integrated.
func (s *centralSyncService) SiteStatus(ctx context.Context, site models.Site) (models.SiteStatus, error) {
	current, err := s.storage.Repositories().Sites.FindByID(ctx, site.SiteID)
	if err != nil {
		return models.SiteStatus{}, fmt.Errorf("read site %d: %w", site.SiteID, err)
	}
	return models.SiteStatus{Code: current.Status}, nil
}

// CentralRecords returns the records after cursor. MaxCursor is one past
// the largest cursor of the feed.
func (s *centralSyncService) CentralRecords(ctx context.Context, cursor int64, limit uint64) (models.CentralBatch, error) {
	repos := s.storage.Repositories()

	maxCursor, err := repos.CentralRecords.MaxCursor(ctx)
	if err != nil {
		return models.CentralBatch{}, err
	}
	records, err := repos.CentralRecords.After(ctx, cursor, limit)
	if err != nil {
		return models.CentralBatch{}, err
	}
	return models.CentralBatch{MaxCursor: maxCursor + 1, Data: records}, nil
}

func (s *centralSyncService) QueuedRecords(ctx context.Context, site models.Site, limit uint64) (models.RemoteBatch, error) {
	if !site.Initialised {
		return models.RemoteBatch{}, ErrSiteNotInitialised
	}
	repos := s.storage.Repositories()

	length, err := repos.SiteQueue.Length(ctx, site.SiteID)
	if err != nil {
		return models.RemoteBatch{}, err
	}
	records, err := repos.SiteQueue.Next(ctx, site.SiteID, limit)
	if err != nil {
		return models.RemoteBatch{}, err
	}
	return models.RemoteBatch{QueueLength: length, Data: records}, nil
}

func (s *centralSyncService) Acknowledge(ctx context.Context, site models.Site, syncIDs []string) error {
	if len(syncIDs) == 0 {
		return nil
	}
	if err := s.validator.Validate(ctx, models.AcknowledgeRequest{SyncIDs: syncIDs}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	n, err := s.storage.Repositories().SiteQueue.Acknowledge(ctx, site.SiteID, syncIDs)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Debug().
		Int64("site_id", site.SiteID).
		Int("requested", len(syncIDs)).
		Int64("acknowledged", n).
		Msg("queued records acknowledged")
	return nil
}

// Push stores a batch of pushed records. A record whose sync id was already
// received is skipped. The last batch of a push session (TotalRemaining 0)
// routes every record received in the session to the queues of the sites
// owning its store or name.
func (s *centralSyncService) Push(ctx context.Context, site models.Site, batch models.PushBatch) (models.PushResponse, error) {
	log := logger.FromContext(ctx)

	if !site.Initialised {
		return models.PushResponse{}, ErrSiteNotInitialised
	}
	for _, rec := range batch.Records {
		if !rec.TableName.IsRemote() {
			return models.PushResponse{}, fmt.Errorf("%w: %s", ErrRemoteTablePushed, rec.TableName)
		}
	}
	if err := s.validator.Validate(ctx, batch); err != nil {
		log.Error().Err(err).Int64("site_id", site.SiteID).Msg("invalid push batch")
		return models.PushResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	var accepted int
	err := s.storage.Transaction(ctx, func(ctx context.Context, repos *store.CentralRepositories) error {
		accepted = 0
		for _, rec := range batch.Records {
			fresh, err := repos.PushReceipts.Record(ctx, site.SiteID, rec.SyncID, rec.TableName)
			if err != nil {
				return err
			}
			if !fresh {
				continue
			}
			if err = s.storeRecord(ctx, repos, site, rec); err != nil {
				return err
			}
			accepted++
		}
		return nil
	})
	if err != nil {
		log.Err(err).Int64("site_id", site.SiteID).Msg("storing pushed records ended with error")
		return models.PushResponse{}, fmt.Errorf("store pushed records: %w", err)
	}

	log.Debug().
		Int64("site_id", site.SiteID).
		Int("records", len(batch.Records)).
		Int("accepted", accepted).
		Int64("total_remaining", batch.TotalRemaining).
		Msg("push batch received")

	if batch.TotalRemaining > 0 {
		return models.PushResponse{IntegrationStarted: false}, nil
	}
	if err = s.integrate(ctx, site); err != nil {
		return models.PushResponse{}, err
	}
	return models.PushResponse{IntegrationStarted: true}, nil
}

func (s *centralSyncService) storeRecord(ctx context.Context, repos *store.CentralRepositories, site models.Site, rec models.PushRecord) error {
	storeID, nameID := rec.StoreID, rec.NameID
	if rec.Action == models.PushActionDelete && storeID == nil && nameID == nil {
		existing, err := repos.RemoteRecords.Get(ctx, rec.TableName, rec.RecordID)
		switch {
		case err == nil:
			storeID, nameID = existing.StoreID, existing.NameID
		case !errors.Is(err, store.ErrRowNotFound):
			return err
		}
	}

	err := repos.RemoteRecords.Upsert(ctx, models.RemoteRecordEntry{
		TableName:    rec.TableName,
		RecordID:     rec.RecordID,
		Action:       rec.Action,
		StoreID:      storeID,
		NameID:       nameID,
		SourceSiteID: site.SiteID,
		Data:         rec.RecordData,
		UpdatedAt:    s.now(),
	})
	if err != nil {
		return err
	}
	return repos.PushReceipts.AddPending(ctx, site.SiteID, rec.TableName, rec.RecordID)
}

// integrate routes the records of the finished push session. The site
// status reads integration_in_progress until routing is done.
func (s *centralSyncService) integrate(ctx context.Context, site models.Site) error {
	log := logger.FromContext(ctx)
	sites := s.storage.Repositories().Sites

	if err := sites.SetStatus(ctx, site.SiteID, models.SiteStatusIntegrationInProgress); err != nil {
		return err
	}
	defer func() {
		if err := sites.SetStatus(ctx, site.SiteID, models.SiteStatusIdle); err != nil {
			log.Err(err).Int64("site_id", site.SiteID).Msg("failed to reset site status")
		}
	}()

	var routed int
	err := s.storage.Transaction(ctx, func(ctx context.Context, repos *store.CentralRepositories) error {
		keys, err := repos.PushReceipts.DrainPending(ctx, site.SiteID)
		if err != nil {
			return err
		}

		var entries []models.QueueEntry
		for _, key := range keys {
			rec, err := repos.RemoteRecords.Get(ctx, key.TableName, key.RecordID)
			if err != nil {
				return err
			}
			owners, err := repos.Sites.Owners(ctx, rec.StoreID, rec.NameID)
			if err != nil {
				return err
			}
			for _, owner := range owners {
				if owner == site.SiteID {
					continue
				}
				source := site.SiteID
				entries = append(entries, models.QueueEntry{
					SyncID:       s.ids.Generate(),
					SiteID:       owner,
					TableName:    rec.TableName,
					RecordID:     rec.RecordID,
					Action:       queueAction(rec.Action),
					Data:         rec.Data,
					SourceSiteID: &source,
				})
			}
		}

		routed = len(entries)
		if routed == 0 {
			return nil
		}
		return repos.SiteQueue.Enqueue(ctx, entries)
	})
	if err != nil {
		log.Err(err).Int64("site_id", site.SiteID).Msg("routing pushed records ended with error")
		return fmt.Errorf("route pushed records: %w", err)
	}

	log.Info().Int64("site_id", site.SiteID).Int("routed", routed).Msg("push session integrated")
	return nil
}

func queueAction(a models.PushAction) models.RemoteAction {
	if a == models.PushActionDelete {
		return models.RemoteActionDelete
	}
	return models.RemoteActionUpdate
}

// AppendCentralRecords appends central data to the feed in one
// transaction and returns the assigned cursors.
func (s *centralSyncService) AppendCentralRecords(ctx context.Context, records []models.CentralRecordInput) ([]int64, error) {
	if err := s.validator.Validate(ctx, records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	ids := make([]int64, 0, len(records))
	err := s.storage.Transaction(ctx, func(ctx context.Context, repos *store.CentralRepositories) error {
		ids = ids[:0]
		for _, rec := range records {
			id, err := repos.CentralRecords.Append(ctx, rec.TableName, rec.RecordID, rec.Data)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("append central records: %w", err)
	}
	return ids, nil
}
