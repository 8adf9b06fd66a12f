// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/site-sync/internal/adapter"
	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/store"
	"github.com/MKhiriev/site-sync/internal/utils"
	"github.com/MKhiriev/site-sync/models"
)

// apiCodeSiteNameNotFound is the code of a 401 body sent for an unknown
// site name, as opposed to a wrong password.
const apiCodeSiteNameNotFound = "site_name_not_found"

// SyncLogger records the progress of one sync run in the sync log. Only
// Start reports persistence failures; later calls log them and carry on so
// that a sync is never aborted by its own bookkeeping.
type SyncLogger struct {
	repo store.SyncLogRepository
	ids  utils.IDGenerator
	now  func() time.Time

	entry models.SyncLog
}

// NewSyncLogger creates a logger writing through repo.
func NewSyncLogger(repo store.SyncLogRepository, ids utils.IDGenerator) *SyncLogger {
	return &SyncLogger{
		repo: repo,
		ids:  ids,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Start begins a new run.
func (l *SyncLogger) Start(ctx context.Context) error {
	l.entry = models.SyncLog{
		ID:      l.ids.Generate(),
		Started: l.now(),
		Steps:   make(map[models.SyncStep]models.SyncStepLog),
	}

	if err := l.repo.Upsert(ctx, l.entry); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "SyncLogger.Start").Msg("failed to start sync log")
		return fmt.Errorf("%w: %w", ErrSyncLogger, err)
	}
	return nil
}

// StartStep marks step as started.
func (l *SyncLogger) StartStep(ctx context.Context, step models.SyncStep) {
	s := l.entry.Step(step)
	now := l.now()
	s.Started = &now
	l.entry.SetStep(step, s)
	l.save(ctx, "SyncLogger.StartStep")
}

// DoneStep marks step as finished.
func (l *SyncLogger) DoneStep(ctx context.Context, step models.SyncStep) {
	s := l.entry.Step(step)
	now := l.now()
	s.Finished = &now
	l.entry.SetStep(step, s)
	l.save(ctx, "SyncLogger.DoneStep")
}

// Progress records how much of step is left. The first report of a step
// fixes its total; later reports derive the done count from it.
func (l *SyncLogger) Progress(ctx context.Context, step models.SyncStep, remaining int64) {
	s := l.entry.Step(step)
	if s.Total == nil {
		total := remaining
		s.Total = &total
	}
	done := max(*s.Total-remaining, 0)
	s.Done = &done
	l.entry.SetStep(step, s)
	l.save(ctx, "SyncLogger.Progress")
}

// Error records err as the failure of the run.
func (l *SyncLogger) Error(ctx context.Context, err error) {
	message := err.Error()
	code := syncErrorCode(err)
	l.entry.ErrorMessage = &message
	l.entry.ErrorCode = &code
	l.save(ctx, "SyncLogger.Error")
}

// Done finishes the run.
func (l *SyncLogger) Done(ctx context.Context) {
	now := l.now()
	l.entry.Finished = &now
	l.save(ctx, "SyncLogger.Done")
}

// Current returns a copy of the log of the running sync.
func (l *SyncLogger) Current() models.SyncLog {
	entry := l.entry
	entry.Steps = make(map[models.SyncStep]models.SyncStepLog, len(l.entry.Steps))
	for step, s := range l.entry.Steps {
		entry.Steps[step] = s
	}
	return entry
}

func (l *SyncLogger) save(ctx context.Context, funcName string) {
	if err := l.repo.Upsert(ctx, l.entry); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", funcName).
			Str("sync_log_id", l.entry.ID).
			Msg("failed to update sync log")
	}
}

// syncErrorCode classifies err for the sync log.
func syncErrorCode(err error) models.SyncErrorCode {
	var apiErr models.APIError

	switch {
	case errors.Is(err, adapter.ErrConnection):
		return models.SyncErrorCodeConnection
	case errors.Is(err, adapter.ErrUnauthorized) && errors.As(err, &apiErr) && apiErr.Code == apiCodeSiteNameNotFound:
		return models.SyncErrorCodeSiteNotFound
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return models.SyncErrorCodeSiteAuthFailed
	case errors.Is(err, ErrIntegrationTimeoutReached):
		return models.SyncErrorCodeIntegrationTimeoutReached
	case errors.Is(err, ErrIntegrationNotStarted):
		return models.SyncErrorCodeIntegrationNotStarted
	case errors.Is(err, ErrIntegrationFailed), errors.Is(err, ErrTranslatorNotFound):
		return models.SyncErrorCodeIntegration
	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, adapter.ErrConflict),
		errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrUnexpectedStatus),
		errors.Is(err, adapter.ErrDecodingResponse):
		return models.SyncErrorCodeAPI
	}
	return models.SyncErrorCodeUnknown
}
