// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/site-sync/internal/adapter"
	"github.com/MKhiriev/site-sync/internal/config"
	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/store"
	"github.com/MKhiriev/site-sync/internal/translator"
	"github.com/MKhiriev/site-sync/internal/utils"
	"github.com/MKhiriev/site-sync/models"
)

// SyncError is returned by a failed run. Step is the step that failed.
type SyncError struct {
	Step models.SyncStep
	Code models.SyncErrorCode
	Err  error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync step %s failed (%s): %v", e.Step, e.Code, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// Synchroniser runs the steps of a sync in order and records them in the
// sync log.
type Synchroniser struct {
	storage    store.SiteStorage
	api        adapter.SyncAPI
	central    *CentralDataSynchroniser
	remote     *RemoteDataSynchroniser
	integrator *Integrator
	processors []Processor
	ids        utils.IDGenerator

	running atomic.Bool
}

// NewSynchroniser builds the synchroniser of a site and every step it
// runs. processors run after integration in the given order.
func NewSynchroniser(storage store.SiteStorage, api adapter.SyncAPI, registry *translator.Registry, cfg config.Sync, processors ...Processor) *Synchroniser {
	return &Synchroniser{
		storage:    storage,
		api:        api,
		central:    NewCentralDataSynchroniser(api, storage, max(cfg.CentralBatchSize, 1)),
		remote:     NewRemoteDataSynchroniser(api, storage, registry, cfg),
		integrator: NewIntegrator(storage, registry),
		processors: processors,
		ids:        utils.NewUUIDGenerator(),
	}
}

// Sync runs one sync. It returns ErrSyncAlreadyRunning when another run
// of the same synchroniser has not finished.
func (s *Synchroniser) Sync(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrSyncAlreadyRunning
	}
	defer s.running.Store(false)

	log := logger.FromContext(ctx)
	started := time.Now()

	syncLog := NewSyncLogger(s.storage.Repositories().SyncLog, s.ids)
	if err := syncLog.Start(ctx); err != nil {
		return err
	}

	err := s.run(ctx, syncLog)
	if err != nil {
		syncLog.Error(ctx, err)
		log.Err(err).
			Str("func", "Synchroniser.Sync").
			Dur("duration", time.Since(started)).
			Msg("sync failed")
	} else {
		log.Info().
			Str("func", "Synchroniser.Sync").
			Dur("duration", time.Since(started)).
			Msg("sync finished")
	}
	syncLog.Done(ctx)

	return err
}

func (s *Synchroniser) run(ctx context.Context, syncLog *SyncLogger) error {
	state, err := LoadSyncState(ctx, s.storage.Repositories().KeyValue)
	if err != nil {
		return &SyncError{Step: models.SyncStepPrepareInitial, Code: models.SyncErrorCodeUnknown, Err: err}
	}

	err = s.step(ctx, syncLog, models.SyncStepPrepareInitial, func(func(int64)) error {
		return s.prepareInitial(ctx, &state)
	})
	if err != nil {
		return err
	}

	if state.InitialRemoteDataSynced() {
		if err = s.step(ctx, syncLog, models.SyncStepPush, func(progress func(int64)) error {
			return s.remote.Push(ctx, progress)
		}); err != nil {
			return err
		}
	}

	if err = s.step(ctx, syncLog, models.SyncStepPullCentral, func(progress func(int64)) error {
		return s.central.Pull(ctx, progress)
	}); err != nil {
		return err
	}

	if err = s.step(ctx, syncLog, models.SyncStepPullRemote, func(progress func(int64)) error {
		return s.remote.Pull(ctx, progress)
	}); err != nil {
		return err
	}

	strategy := InitialSyncStrategy
	if state.InitialRemoteDataSynced() {
		strategy = SteadyStateStrategy
	}
	if err = s.step(ctx, syncLog, models.SyncStepIntegrate, func(progress func(int64)) error {
		results, err := s.integrator.Integrate(ctx, strategy, progress)
		if err != nil {
			return err
		}
		if n := results.Errors(); n > 0 {
			logger.FromContext(ctx).Warn().
				Str("func", "Synchroniser.run").
				Int64("errors", n).
				Msg("some records failed to integrate")
		}
		return nil
	}); err != nil {
		return err
	}

	// the push cursor must be set before processors author local rows
	if !state.InitialRemoteDataSynced() {
		if err = s.finishInitialisation(ctx, state); err != nil {
			return &SyncError{Step: models.SyncStepIntegrate, Code: models.SyncErrorCodeUnknown, Err: err}
		}
	}

	s.runProcessors(ctx)
	return nil
}

// step wraps fn in the sync log. A failure is returned as a *SyncError.
func (s *Synchroniser) step(ctx context.Context, syncLog *SyncLogger, step models.SyncStep, fn func(progress func(int64)) error) error {
	syncLog.StartStep(ctx, step)

	err := fn(func(remaining int64) {
		syncLog.Progress(ctx, step, remaining)
	})
	if err != nil {
		return &SyncError{Step: step, Code: syncErrorCode(err), Err: err}
	}

	syncLog.DoneStep(ctx, step)
	return nil
}

// prepareInitial asks the central server to fill the site queue the first
// time this installation syncs.
func (s *Synchroniser) prepareInitial(ctx context.Context, state *SyncState) error {
	if state.IsInitialised() && state.SiteID != nil {
		return nil
	}

	if !state.IsInitialised() {
		resp, err := s.api.Initialise(ctx)
		if err != nil {
			return fmt.Errorf("initialise site queue: %w", err)
		}
		logger.FromContext(ctx).Info().
			Str("func", "Synchroniser.prepareInitial").
			Int64("queue_length", resp.QueueLength).
			Msg("site queue initialised")
	}

	info, err := s.api.SiteInfo(ctx)
	if err != nil {
		return fmt.Errorf("get site info: %w", err)
	}

	err = s.storage.Transaction(ctx, func(ctx context.Context, repos *store.SiteRepositories) error {
		if err := saveSiteIdentity(ctx, repos.KeyValue, info); err != nil {
			return err
		}
		return repos.KeyValue.SetBool(ctx, models.KeyRemoteSyncInitialisationStarted, true)
	})
	if err != nil {
		return err
	}

	state.SiteID = &info.SiteID
	state.SiteUUID = &info.ID
	state.InitialisationStarted = true
	return nil
}

// runProcessors runs the downstream processors. A failing processor keeps
// its cursor and is retried by the next run, so it does not fail the sync.
func (s *Synchroniser) runProcessors(ctx context.Context) {
	for _, p := range s.processors {
		if err := p.Process(ctx); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "Synchroniser.runProcessors").
				Str("processor", p.Name()).
				Msg("processor failed")
		}
	}
}

// finishInitialisation moves the push cursor past everything written while
// the initial data was integrated, so none of it is pushed back. Rows
// written after it returns are pushed on the next run.
func (s *Synchroniser) finishInitialisation(ctx context.Context, state SyncState) error {
	return s.storage.Transaction(ctx, func(ctx context.Context, repos *store.SiteRepositories) error {
		latest, err := repos.Changelog.LatestCursor(ctx)
		if err != nil {
			return fmt.Errorf("read latest changelog cursor: %w", err)
		}
		if err = repos.KeyValue.SetInt(ctx, models.KeyRemoteSyncPushCursor, latest+1); err != nil {
			return fmt.Errorf("set push cursor: %w", err)
		}
		if state.SiteID != nil {
			if err = repos.KeyValue.SetInt(ctx, models.KeySettingsSyncSiteID, *state.SiteID); err != nil {
				return fmt.Errorf("save site id: %w", err)
			}
		}
		return repos.KeyValue.SetBool(ctx, models.KeyRemoteSyncInitialisationFinished, true)
	})
}

// Status reports the sync state together with the latest runs.
func (s *Synchroniser) Status(ctx context.Context) (models.SyncStatus, error) {
	repos := s.storage.Repositories()

	state, err := LoadSyncState(ctx, repos.KeyValue)
	if err != nil {
		return models.SyncStatus{}, err
	}

	last, err := repos.SyncLog.Latest(ctx)
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("read latest sync log: %w", err)
	}
	lastSuccessful, err := repos.SyncLog.LatestSuccessful(ctx)
	if err != nil {
		return models.SyncStatus{}, fmt.Errorf("read latest successful sync log: %w", err)
	}

	return models.SyncStatus{
		IsRunning:               s.running.Load(),
		SiteID:                  state.SiteID,
		SiteUUID:                state.SiteUUID,
		QueueInitialised:        state.IsInitialised(),
		InitialRemoteDataSynced: state.InitialRemoteDataSynced(),
		PushCursor:              state.PushCursor,
		CentralCursor:           state.CentralCursor,
		LastRun:                 last,
		LastSuccessfulRun:       lastSuccessful,
	}, nil
}
