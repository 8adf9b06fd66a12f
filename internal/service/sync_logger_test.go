// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/site-sync/internal/adapter"
	"github.com/MKhiriev/site-sync/internal/mock"
	"github.com/MKhiriev/site-sync/models"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

// ── SyncLogger ──────────────────────────────────────────────────────────────

func TestSyncLogger_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSyncLogRepository(ctrl)

	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, l models.SyncLog) error {
			assert.Equal(t, "run-1", l.ID)
			assert.False(t, l.Started.IsZero())
			assert.Nil(t, l.Finished)
			return nil
		})

	l := NewSyncLogger(repo, fixedID("run-1"))
	require.NoError(t, l.Start(context.Background()))
}

func TestSyncLogger_StartFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSyncLogRepository(ctrl)
	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	l := NewSyncLogger(repo, fixedID("run-1"))
	assert.ErrorIs(t, l.Start(context.Background()), ErrSyncLogger)
}

func TestSyncLogger_LaterFailuresAreNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSyncLogRepository(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil),
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("locked")).Times(2),
	)

	l := NewSyncLogger(repo, fixedID("run-1"))
	require.NoError(t, l.Start(ctx))
	assert.NotPanics(t, func() {
		l.StartStep(ctx, models.SyncStepPush)
		l.Done(ctx)
	})
	assert.NotNil(t, l.Current().Finished)
}

func TestSyncLogger_Progress(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSyncLogRepository(ctrl)
	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	ctx := context.Background()

	l := NewSyncLogger(repo, fixedID("run-1"))
	require.NoError(t, l.Start(ctx))

	l.StartStep(ctx, models.SyncStepPullRemote)
	l.Progress(ctx, models.SyncStepPullRemote, 10)
	step := l.Current().Steps[models.SyncStepPullRemote]
	assert.Equal(t, int64(10), *step.Total)
	assert.Equal(t, int64(0), *step.Done)

	l.Progress(ctx, models.SyncStepPullRemote, 4)
	step = l.Current().Steps[models.SyncStepPullRemote]
	assert.Equal(t, int64(10), *step.Total)
	assert.Equal(t, int64(6), *step.Done)

	// the queue grew while pulling
	l.Progress(ctx, models.SyncStepPullRemote, 12)
	step = l.Current().Steps[models.SyncStepPullRemote]
	assert.Equal(t, int64(0), *step.Done)

	l.DoneStep(ctx, models.SyncStepPullRemote)
	step = l.Current().Steps[models.SyncStepPullRemote]
	assert.NotNil(t, step.Started)
	assert.NotNil(t, step.Finished)
}

func TestSyncLogger_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSyncLogRepository(ctrl)
	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	ctx := context.Background()

	l := NewSyncLogger(repo, fixedID("run-1"))
	require.NoError(t, l.Start(ctx))
	l.Error(ctx, fmt.Errorf("push: %w", ErrIntegrationTimeoutReached))

	current := l.Current()
	require.NotNil(t, current.ErrorCode)
	assert.Equal(t, models.SyncErrorCodeIntegrationTimeoutReached, *current.ErrorCode)
	require.NotNil(t, current.ErrorMessage)
	assert.Contains(t, *current.ErrorMessage, "timed out")
}

func TestSyncErrorCode(t *testing.T) {
	siteNotFound := fmt.Errorf("%w: %w", adapter.ErrUnauthorized, models.APIError{Code: apiCodeSiteNameNotFound, Status: 401})
	wrongPassword := fmt.Errorf("%w: %w", adapter.ErrUnauthorized, models.APIError{Code: "site_auth_failed", Status: 401})

	tests := []struct {
		name string
		err  error
		want models.SyncErrorCode
	}{
		{"connection", fmt.Errorf("pull: %w", adapter.ErrConnection), models.SyncErrorCodeConnection},
		{"unknown site name", siteNotFound, models.SyncErrorCodeSiteNotFound},
		{"wrong password", wrongPassword, models.SyncErrorCodeSiteAuthFailed},
		{"forbidden", adapter.ErrForbidden, models.SyncErrorCodeSiteAuthFailed},
		{"timeout", ErrIntegrationTimeoutReached, models.SyncErrorCodeIntegrationTimeoutReached},
		{"not started", ErrIntegrationNotStarted, models.SyncErrorCodeIntegrationNotStarted},
		{"integration", fmt.Errorf("%w: unit u1", ErrIntegrationFailed), models.SyncErrorCodeIntegration},
		{"missing translator", ErrTranslatorNotFound, models.SyncErrorCodeIntegration},
		{"server error", adapter.ErrInternalServerError, models.SyncErrorCodeAPI},
		{"bad body", adapter.ErrDecodingResponse, models.SyncErrorCodeAPI},
		{"other", errors.New("boom"), models.SyncErrorCodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, syncErrorCode(tt.err))
		})
	}
}

// ── SyncState ───────────────────────────────────────────────────────────────

func TestLoadSyncState_Defaults(t *testing.T) {
	storage := newTestSiteStorage(t)

	state, err := LoadSyncState(context.Background(), storage.Repositories().KeyValue)
	require.NoError(t, err)
	assert.Equal(t, SyncState{}, state)
	assert.False(t, state.IsInitialised())
	assert.False(t, state.InitialRemoteDataSynced())
}

func TestLoadSyncState_ReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueRepository(ctrl)
	kv.EXPECT().GetInt(gomock.Any(), models.KeySettingsSyncSiteID).Return(nil, errors.New("closed"))

	_, err := LoadSyncState(context.Background(), kv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "site id")
}
