// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/site-sync/internal/adapter"
	"github.com/MKhiriev/site-sync/internal/mock"
	"github.com/MKhiriev/site-sync/models"
)

func finishedRun(id string, failure *string) *models.SyncLog {
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	finished := started.Add(1500 * time.Millisecond)
	run := &models.SyncLog{ID: id, Started: started, Finished: &finished, ErrorMessage: failure}
	if failure != nil {
		code := models.SyncErrorCodeConnection
		run.ErrorCode = &code
	}
	return run
}

func TestWaitForSync_WaitsForNewRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockSiteAPI(ctrl)

	gomock.InOrder(
		api.EXPECT().SyncStatus(gomock.Any()).Return(models.SyncStatus{LastRun: finishedRun("old", nil)}, nil),
		api.EXPECT().SyncStatus(gomock.Any()).Return(models.SyncStatus{IsRunning: true, LastRun: &models.SyncLog{ID: "new"}}, nil),
		api.EXPECT().SyncStatus(gomock.Any()).Return(models.SyncStatus{LastRun: finishedRun("new", nil)}, nil),
	)

	var out bytes.Buffer
	require.NoError(t, waitForSync(context.Background(), api, "old", time.Millisecond, &out))
	assert.Equal(t, "sync finished in 1.5s\n", out.String())
}

func TestWaitForSync_FailedRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockSiteAPI(ctrl)

	message := "connection to central server failed"
	api.EXPECT().SyncStatus(gomock.Any()).Return(models.SyncStatus{LastRun: finishedRun("new", &message)}, nil)

	err := waitForSync(context.Background(), api, "", time.Millisecond, &bytes.Buffer{})
	require.ErrorIs(t, err, errSyncFailed)
	assert.Contains(t, err.Error(), string(models.SyncErrorCodeConnection))
}

func TestWaitForSync_StatusError(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockSiteAPI(ctrl)
	api.EXPECT().SyncStatus(gomock.Any()).Return(models.SyncStatus{}, adapter.ErrConnection)

	err := waitForSync(context.Background(), api, "", time.Millisecond, &bytes.Buffer{})
	assert.ErrorIs(t, err, adapter.ErrConnection)
}

func TestWaitForSync_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := waitForSync(ctx, mock.NewMockSiteAPI(gomock.NewController(t)), "", time.Hour, &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}
