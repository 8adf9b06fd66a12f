// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/site-sync/internal/adapter"
	"github.com/MKhiriev/site-sync/internal/mock"
	"github.com/MKhiriev/site-sync/internal/store"
	"github.com/MKhiriev/site-sync/models"
)

// ── Synchroniser ────────────────────────────────────────────────────────────

func TestSynchroniser_FirstRunInitialisesSite(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockSyncAPI(ctrl)
	storage := newTestSiteStorage(t)
	ctx := context.Background()

	gomock.InOrder(
		api.EXPECT().Initialise(gomock.Any()).Return(models.InitialiseResponse{QueueLength: 1}, nil),
		api.EXPECT().SiteInfo(gomock.Any()).Return(models.SiteInfo{ID: "site-uuid", SiteID: 7, Name: "clinic"}, nil),
		api.EXPECT().CentralRecords(gomock.Any(), int64(0), 2).Return(models.CentralBatch{
			MaxCursor: 2,
			Data:      []models.CentralRecord{{ID: 1, TableName: "unit", RecordID: "u1", Data: json.RawMessage(unitJSON)}},
		}, nil),
		api.EXPECT().QueuedRecords(gomock.Any(), 5).Return(models.RemoteBatch{
			QueueLength: 1,
			Data: []models.RemoteRecord{
				{SyncID: "q1", TableName: "stock_line", RecordID: "sl1", Action: models.RemoteActionInsert, RecordData: stockLineJSON("sl1")},
			},
		}, nil),
		api.EXPECT().AcknowledgeRecords(gomock.Any(), []string{"q1"}).Return(nil),
		api.EXPECT().QueuedRecords(gomock.Any(), 5).Return(models.RemoteBatch{}, nil),
	)

	s := NewSynchroniser(storage, api, newTestRegistry(t), testSyncConfig())
	require.NoError(t, s.Sync(ctx))

	status, err := s.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.IsRunning)
	assert.True(t, status.QueueInitialised)
	assert.True(t, status.InitialRemoteDataSynced)
	require.NotNil(t, status.SiteID)
	assert.Equal(t, int64(7), *status.SiteID)
	require.NotNil(t, status.SiteUUID)
	assert.Equal(t, "site-uuid", *status.SiteUUID)
	assert.Equal(t, int64(1), status.CentralCursor)
	// the integrated stock line is changelog cursor 1 and must not be pushed
	assert.Equal(t, int64(2), status.PushCursor)

	require.NotNil(t, status.LastRun)
	assert.NotNil(t, status.LastRun.Finished)
	assert.Nil(t, status.LastRun.ErrorMessage)
	require.NotNil(t, status.LastSuccessfulRun)
	assert.Equal(t, status.LastRun.ID, status.LastSuccessfulRun.ID)

	_, push := status.LastRun.Steps[models.SyncStepPush]
	assert.False(t, push, "nothing is pushed before the initial data is synced")
	integrate := status.LastRun.Steps[models.SyncStepIntegrate]
	require.NotNil(t, integrate.Total)
	assert.Equal(t, int64(2), *integrate.Total)
	assert.NotNil(t, integrate.Finished)
}

// localWriter authors a stock line the way a downstream processor does.
type localWriter struct {
	storage store.SiteStorage
}

func (w localWriter) Name() string { return "local writer" }

func (w localWriter) Process(ctx context.Context) error {
	return w.storage.Repositories().Rows.Upsert(ctx, &models.StockLine{
		ID:       "sl-local",
		ItemID:   "item1",
		StoreID:  "store1",
		PackSize: 1,
	}, models.LocalChange())
}

func TestSynchroniser_FirstRunPushesProcessorOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockSyncAPI(ctrl)
	storage := newTestSiteStorage(t)
	ctx := context.Background()

	gomock.InOrder(
		api.EXPECT().Initialise(gomock.Any()).Return(models.InitialiseResponse{QueueLength: 1}, nil),
		api.EXPECT().SiteInfo(gomock.Any()).Return(models.SiteInfo{ID: "site-uuid", SiteID: 7}, nil),
		api.EXPECT().CentralRecords(gomock.Any(), int64(0), 2).Return(models.CentralBatch{}, nil),
		api.EXPECT().QueuedRecords(gomock.Any(), 5).Return(models.RemoteBatch{
			QueueLength: 1,
			Data: []models.RemoteRecord{
				{SyncID: "q1", TableName: "stock_line", RecordID: "sl1", Action: models.RemoteActionInsert, RecordData: stockLineJSON("sl1")},
			},
		}, nil),
		api.EXPECT().AcknowledgeRecords(gomock.Any(), []string{"q1"}).Return(nil),
		api.EXPECT().QueuedRecords(gomock.Any(), 5).Return(models.RemoteBatch{}, nil),
	)

	s := NewSynchroniser(storage, api, newTestRegistry(t), testSyncConfig(), localWriter{storage: storage})
	require.NoError(t, s.Sync(ctx))

	pushCursor := intValue(t, storage, models.KeyRemoteSyncPushCursor)
	require.NotNil(t, pushCursor)
	assert.Equal(t, int64(2), *pushCursor, "the pulled stock line is not pushed back")

	notSynced := false
	pending, err := storage.Repositories().Changelog.Changelogs(ctx, *pushCursor, 10, &models.ChangelogFilter{IsSyncUpdate: &notSynced})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "sl-local", pending[0].RecordID)
}

func TestSynchroniser_SteadyStatePushesLocalChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockSyncAPI(ctrl)
	storage := newTestSiteStorage(t)
	ctx := context.Background()

	kv := storage.Repositories().KeyValue
	require.NoError(t, kv.SetBool(ctx, models.KeyRemoteSyncInitialisationStarted, true))
	require.NoError(t, kv.SetBool(ctx, models.KeyRemoteSyncInitialisationFinished, true))
	require.NoError(t, kv.SetInt(ctx, models.KeySettingsSyncSiteID, 7))
	upsertStockLine(t, storage, "sl1", models.LocalChange())

	gomock.InOrder(
		api.EXPECT().PushRecords(gomock.Any(), gomock.Any()).Return(models.PushResponse{IntegrationStarted: true}, nil),
		api.EXPECT().SiteStatus(gomock.Any()).Return(models.SiteStatus{Code: models.SiteStatusIdle}, nil),
		api.EXPECT().CentralRecords(gomock.Any(), int64(0), 2).Return(models.CentralBatch{MaxCursor: 1}, nil),
		api.EXPECT().QueuedRecords(gomock.Any(), 5).Return(models.RemoteBatch{}, nil),
	)

	s := NewSynchroniser(storage, api, newTestRegistry(t), testSyncConfig())
	require.NoError(t, s.Sync(ctx))

	assert.Equal(t, int64(2), *intValue(t, storage, models.KeyRemoteSyncPushCursor))
}

func TestSynchroniser_FailedStepIsRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockSyncAPI(ctrl)
	storage := newTestSiteStorage(t)
	ctx := context.Background()

	api.EXPECT().Initialise(gomock.Any()).Return(models.InitialiseResponse{}, nil)
	api.EXPECT().SiteInfo(gomock.Any()).Return(models.SiteInfo{ID: "site-uuid", SiteID: 7}, nil)
	api.EXPECT().CentralRecords(gomock.Any(), int64(0), 2).Return(models.CentralBatch{}, adapter.ErrConnection)

	s := NewSynchroniser(storage, api, newTestRegistry(t), testSyncConfig())
	err := s.Sync(ctx)

	var syncErr *SyncError
	require.ErrorAs(t, err, &syncErr)
	assert.Equal(t, models.SyncStepPullCentral, syncErr.Step)
	assert.Equal(t, models.SyncErrorCodeConnection, syncErr.Code)
	assert.ErrorIs(t, err, adapter.ErrConnection)

	status, err := s.Status(ctx)
	require.NoError(t, err)
	require.NotNil(t, status.LastRun)
	require.NotNil(t, status.LastRun.ErrorCode)
	assert.Equal(t, models.SyncErrorCodeConnection, *status.LastRun.ErrorCode)
	assert.Nil(t, status.LastSuccessfulRun)

	// the site stays initialised, the next run does not ask again
	assert.True(t, status.QueueInitialised)
	assert.False(t, status.InitialRemoteDataSynced)
}

func TestSynchroniser_SecondRunIsRejectedWhileRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockSyncAPI(ctrl)
	storage := newTestSiteStorage(t)
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	api.EXPECT().Initialise(gomock.Any()).DoAndReturn(func(context.Context) (models.InitialiseResponse, error) {
		close(entered)
		<-release
		return models.InitialiseResponse{}, adapter.ErrUnauthorized
	})

	s := NewSynchroniser(storage, api, newTestRegistry(t), testSyncConfig())

	done := make(chan error, 1)
	go func() { done <- s.Sync(ctx) }()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("first sync did not start")
	}

	require.ErrorIs(t, s.Sync(ctx), ErrSyncAlreadyRunning)
	status, err := s.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.IsRunning)

	close(release)
	err = <-done
	var syncErr *SyncError
	require.ErrorAs(t, err, &syncErr)
	assert.Equal(t, models.SyncStepPrepareInitial, syncErr.Step)
	assert.Equal(t, models.SyncErrorCodeSiteAuthFailed, syncErr.Code)
}
