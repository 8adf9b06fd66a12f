// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/site-sync/models"
)

// renderBuildInfoWindow shows the build of this binary next to the build of
// the site it monitors.
func renderBuildInfoWindow(local, site models.AppBuildInfo) string {
	var b strings.Builder

	row := func(label string, info models.AppBuildInfo) {
		fmt.Fprintf(&b, "%-8s│ %-12s │ %-10s │ %-12s │ %s\n",
			label, fitText(info.Name, 12), fitText(info.Version, 10), fitText(info.Date, 12), fitText(info.Commit, 12))
	}

	b.WriteString("        │ Name         │ Version    │ Date         │ Commit\n")
	b.WriteString("────────┼──────────────┼────────────┼──────────────┼────────────\n")
	row("sitectl", local)
	if site.Name == "" {
		site = models.NewAppBuildInfo("-", "", "", "")
	}
	row("site", site)

	return renderPage("BUILD INFO", strings.TrimRight(b.String(), "\n"), "esc: back")
}
