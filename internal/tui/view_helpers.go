// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

// renderPage lays out a screen: title, body between dividers and the hot
// key line.
func renderPage(title, body, hotKeys string) string {
	if strings.TrimSpace(body) == "" {
		body = "-"
	}
	footer := "q: quit"
	if hotKeys != "" {
		footer = hotKeys + " │ " + footer
	}

	divider := helpStyle.Render(uiDivider)
	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		divider,
		"",
		body,
		"",
		divider,
		helpStyle.Render(footer),
	))
}

func valueOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

func timeOrDash(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.DateTime)
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}
