// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal monitor of a running site. It polls
// the site control API, renders the progress of the current sync run step by
// step and lets the operator start a run.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/site-sync/internal/adapter"
	"github.com/MKhiriev/site-sync/models"
)

// DefaultRefreshInterval is how often the monitor polls the site.
const DefaultRefreshInterval = time.Second

type TUI struct {
	api     adapter.SiteAPI
	build   models.AppBuildInfo
	refresh time.Duration
}

func New(api adapter.SiteAPI, build models.AppBuildInfo, refresh time.Duration) *TUI {
	if refresh <= 0 {
		refresh = DefaultRefreshInterval
	}
	return &TUI{api: api, build: build, refresh: refresh}
}

// Monitor runs the monitor until the operator quits or ctx is cancelled.
func (t *TUI) Monitor(ctx context.Context) error {
	model := newMonitorModel(ctx, t.api, t.build, t.refresh)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
