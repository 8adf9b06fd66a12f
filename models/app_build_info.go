// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries the build metadata of a binary. Version, Date and
// Commit are injected by linker flags; Name comes from the configuration.
// It is served by /api/v1/version and printed by sitectl.
type AppBuildInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewAppBuildInfo constructs [AppBuildInfo], replacing missing values with
// "N/A".
func NewAppBuildInfo(name, buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		Name:    name,
		Version: valueOrNA(buildVersion),
		Date:    valueOrNA(buildDate),
		Commit:  valueOrNA(buildCommit),
	}
}

func valueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
