// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/site-sync/models"

type statusLoadedMsg struct {
	status models.SyncStatus
	err    error
}

type syncTriggeredMsg struct {
	err error
}

type refreshMsg struct{}

type clearStatusMsg struct{}

type versionLoadedMsg struct {
	build models.AppBuildInfo
	err   error
}
