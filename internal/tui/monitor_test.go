// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/site-sync/internal/adapter"
	"github.com/MKhiriev/site-sync/internal/mock"
	"github.com/MKhiriev/site-sync/models"
)

func int64Ptr(v int64) *int64 { return &v }

func newTestMonitor(t *testing.T) (monitorModel, *mock.MockSiteAPI) {
	t.Helper()
	api := mock.NewMockSiteAPI(gomock.NewController(t))
	m := newMonitorModel(context.Background(), api, models.NewAppBuildInfo("sitectl", "1.0.0", "", ""), time.Hour)
	return m, api
}

func press(m monitorModel, keyName string) (monitorModel, tea.Cmd) {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keyName)}
	updated, cmd := m.Update(msg)
	return updated.(monitorModel), cmd
}

func update(m monitorModel, msg tea.Msg) monitorModel {
	updated, _ := m.Update(msg)
	return updated.(monitorModel)
}

func runningStatus() models.SyncStatus {
	started := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return models.SyncStatus{
		IsRunning:        true,
		SiteID:           int64Ptr(7),
		QueueInitialised: true,
		PushCursor:       12,
		LastRun: &models.SyncLog{
			ID:      "run-1",
			Started: started,
			Steps: map[models.SyncStep]models.SyncStepLog{
				models.SyncStepPush:        {Started: &started, Finished: &started},
				models.SyncStepPullRemote:  {Started: &started, Total: int64Ptr(10), Done: int64Ptr(4)},
				models.SyncStepPullCentral: {Started: &started, Finished: &started},
			},
		},
	}
}

// ── Monitor ─────────────────────────────────────────────────────────────────

func TestMonitor_RendersStatus(t *testing.T) {
	m, _ := newTestMonitor(t)

	assert.Contains(t, m.View(), "connecting to site")

	m = update(m, statusLoadedMsg{status: runningStatus()})
	view := m.View()
	assert.Contains(t, view, "run-1")
	assert.Contains(t, view, "running")
	assert.Contains(t, view, "4/10")
	assert.Contains(t, view, "push: 12")
	assert.Contains(t, view, string(models.SyncStepIntegrate))
}

func TestMonitor_StatusErrorKeepsLastStatus(t *testing.T) {
	m, _ := newTestMonitor(t)
	m = update(m, statusLoadedMsg{status: runningStatus()})
	m = update(m, statusLoadedMsg{err: adapter.ErrConnection})

	assert.Equal(t, "site is unreachable", m.errMsg)
	assert.Contains(t, m.View(), "run-1")
}

func TestMonitor_TriggerSync(t *testing.T) {
	m, api := newTestMonitor(t)
	m = update(m, statusLoadedMsg{status: models.SyncStatus{}})

	api.EXPECT().TriggerSync(gomock.Any()).Return(nil)

	m, cmd := press(m, "s")
	require.NotNil(t, cmd)
	assert.True(t, m.triggered)
	assert.Equal(t, syncTriggeredMsg{}, cmd())

	// a second press before the run shows up is ignored
	m, cmd = press(m, "s")
	require.NotNil(t, cmd)
	assert.Equal(t, "sync is already running", m.statusMsg)

	m = update(m, syncTriggeredMsg{})
	assert.Equal(t, "sync started", m.statusMsg)
}

func TestMonitor_TriggerSyncConflict(t *testing.T) {
	m, _ := newTestMonitor(t)
	m.triggered = true

	m = update(m, syncTriggeredMsg{err: adapter.ErrConflict})
	assert.False(t, m.triggered)
	assert.Equal(t, "a sync run is already in progress", m.errMsg)
}

func TestMonitor_CopyLastError(t *testing.T) {
	var copied string
	original := writeClipboard
	t.Cleanup(func() { writeClipboard = original })
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}

	m, _ := newTestMonitor(t)

	m, _ = press(m, "c")
	assert.Equal(t, "nothing to copy", m.statusMsg)

	status := runningStatus()
	status.IsRunning = false
	message := "integration failed: unit u1"
	status.LastRun.ErrorMessage = &message
	m = update(m, statusLoadedMsg{status: status})

	m, _ = press(m, "c")
	assert.Equal(t, message, copied)
	assert.Equal(t, "error copied to clipboard", m.statusMsg)

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	m, _ = press(m, "c")
	assert.Contains(t, m.errMsg, "no clipboard")
}

func TestMonitor_BuildInfo(t *testing.T) {
	m, _ := newTestMonitor(t)
	m = update(m, versionLoadedMsg{build: models.NewAppBuildInfo("site-sync", "1.2.0", "", "abc123")})

	m, _ = press(m, "v")
	view := m.View()
	assert.Contains(t, view, "BUILD INFO")
	assert.Contains(t, view, "1.2.0")
	assert.Contains(t, view, "abc123")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, updated.(monitorModel).showBuildInfo)
}

func TestStepPercent(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		step models.SyncStepLog
		want float64
	}{
		{"not started", models.SyncStepLog{}, 0},
		{"half way", models.SyncStepLog{Total: int64Ptr(10), Done: int64Ptr(5)}, 0.5},
		{"finished", models.SyncStepLog{Finished: &now, Total: int64Ptr(10), Done: int64Ptr(2)}, 1},
		{"empty total", models.SyncStepLog{Total: int64Ptr(0), Done: int64Ptr(0)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, stepPercent(tt.step), 0.0001)
		})
	}
}
