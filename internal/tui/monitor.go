// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/site-sync/internal/adapter"
	"github.com/MKhiriev/site-sync/models"
)

const statusMessageTTL = 3 * time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type monitorModel struct {
	ctx     context.Context
	api     adapter.SiteAPI
	build   models.AppBuildInfo
	refresh time.Duration

	siteBuild models.AppBuildInfo
	status    models.SyncStatus
	loaded    bool
	errMsg    string
	statusMsg string
	triggered bool

	showBuildInfo bool

	spinner spinner.Model
	bar     progress.Model
}

func newMonitorModel(ctx context.Context, api adapter.SiteAPI, build models.AppBuildInfo, refresh time.Duration) monitorModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return monitorModel{
		ctx:     ctx,
		api:     api,
		build:   build,
		refresh: refresh,
		spinner: s,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(32)),
	}
}

func (m monitorModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadStatus(), m.cmdLoadVersion(), m.spinner.Tick)
}

func (m monitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeSiteError(msg.err)
		} else {
			m.errMsg = ""
			m.loaded = true
			m.status = msg.status
			if msg.status.IsRunning {
				m.triggered = false
			}
		}
		return m, m.scheduleRefresh()
	case versionLoadedMsg:
		if msg.err == nil {
			m.siteBuild = msg.build
		}
		return m, nil
	case syncTriggeredMsg:
		if msg.err != nil {
			m.triggered = false
			m.errMsg = humanizeSiteError(msg.err)
			return m, nil
		}
		m.statusMsg = "sync started"
		return m, tea.Batch(m.cmdLoadStatus(), clearStatusAfter(statusMessageTTL))
	case refreshMsg:
		return m, m.cmdLoadStatus()
	case clearStatusMsg:
		m.statusMsg = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.bar.Width = min(max(msg.Width/3, 10), 48)
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.showBuildInfo {
		switch {
		case key.Matches(keyMsg, keys.quit):
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.info):
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.info):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdLoadStatus()
	case key.Matches(keyMsg, keys.sync):
		if m.status.IsRunning || m.triggered {
			m.statusMsg = "sync is already running"
			return m, clearStatusAfter(statusMessageTTL)
		}
		m.triggered = true
		m.errMsg = ""
		return m, m.cmdTriggerSync()
	case key.Matches(keyMsg, keys.copy):
		text := m.lastError()
		if text == "" {
			m.statusMsg = "nothing to copy"
			return m, clearStatusAfter(statusMessageTTL)
		}
		if err := writeClipboard(text); err != nil {
			m.errMsg = fmt.Sprintf("copy to clipboard: %v", err)
			return m, nil
		}
		m.statusMsg = "error copied to clipboard"
		return m, clearStatusAfter(statusMessageTTL)
	}

	return m, nil
}

func (m monitorModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.build, m.siteBuild)
	}

	hotKeys := "s: sync │ r: refresh │ c: copy error │ v: version"

	var b strings.Builder
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
	if m.statusMsg != "" {
		b.WriteString("Status: " + m.statusMsg + "\n")
	}
	if !m.loaded {
		b.WriteString(m.spinner.View() + " connecting to site...\n")
		return renderPage("SITE SYNC", strings.TrimRight(b.String(), "\n"), hotKeys)
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}

	b.WriteString(m.viewSite())
	b.WriteString("\n")
	b.WriteString(m.viewRun())

	return renderPage("SITE SYNC", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m monitorModel) viewSite() string {
	s := m.status

	siteID := "-"
	if s.SiteID != nil {
		siteID = fmt.Sprintf("%d", *s.SiteID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Site          │ %s (%s)\n", siteID, valueOrDash(s.SiteUUID))
	fmt.Fprintf(&b, "Initialised   │ queue: %s, remote data: %s\n", yesNo(s.QueueInitialised), yesNo(s.InitialRemoteDataSynced))
	fmt.Fprintf(&b, "Cursors       │ push: %d, central: %d\n", s.PushCursor, s.CentralCursor)
	if s.LastSuccessfulRun != nil {
		fmt.Fprintf(&b, "Last success  │ %s\n", timeOrDash(s.LastSuccessfulRun.Finished))
	} else {
		b.WriteString("Last success  │ -\n")
	}
	return b.String()
}

func (m monitorModel) viewRun() string {
	run := m.status.LastRun
	if run == nil {
		return "No sync run yet\n"
	}

	var b strings.Builder
	state := okStyle.Render("finished")
	switch {
	case m.status.IsRunning:
		state = m.spinner.View() + " running"
	case run.ErrorCode != nil:
		state = errorStyle.Render("failed: " + string(*run.ErrorCode))
	}
	fmt.Fprintf(&b, "Run %s started %s, %s\n\n", fitText(run.ID, 12), timeOrDash(&run.Started), state)

	for _, step := range models.SyncSteps() {
		stepLog, ok := run.Steps[step]
		if !ok {
			fmt.Fprintf(&b, "%-16s %s\n", step, helpStyle.Render("skipped"))
			continue
		}
		fmt.Fprintf(&b, "%-16s %s %s\n", step, m.bar.ViewAs(stepPercent(stepLog)), stepCounter(stepLog))
	}

	if run.ErrorMessage != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(*run.ErrorMessage))
		b.WriteString("\n")
	}
	return b.String()
}

// lastError is the error of the last run, or the error talking to the site.
func (m monitorModel) lastError() string {
	if run := m.status.LastRun; run != nil && run.ErrorMessage != nil {
		return *run.ErrorMessage
	}
	return m.errMsg
}

func (m monitorModel) cmdLoadStatus() tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		status, err := api.SyncStatus(ctx)
		return statusLoadedMsg{status: status, err: err}
	}
}

func (m monitorModel) cmdLoadVersion() tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		build, err := api.Version(ctx)
		return versionLoadedMsg{build: build, err: err}
	}
}

func (m monitorModel) cmdTriggerSync() tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		return syncTriggeredMsg{err: api.TriggerSync(ctx)}
	}
}

func (m monitorModel) scheduleRefresh() tea.Cmd {
	return tea.Tick(m.refresh, func(time.Time) tea.Msg { return refreshMsg{} })
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// stepPercent is 1 for finished steps and done/total while running.
func stepPercent(s models.SyncStepLog) float64 {
	if s.Finished != nil {
		return 1
	}
	if s.Total == nil || s.Done == nil || *s.Total <= 0 {
		return 0
	}
	return min(float64(*s.Done)/float64(*s.Total), 1)
}

func stepCounter(s models.SyncStepLog) string {
	if s.Total == nil {
		return ""
	}
	done := int64(0)
	if s.Done != nil {
		done = *s.Done
	}
	if s.Finished != nil {
		done = *s.Total
	}
	return fmt.Sprintf("%d/%d", done, *s.Total)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
