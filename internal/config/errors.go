// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [SiteConfig.validate] and
// [CentralConfig.validate] when required configuration groups are incomplete
// or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or
	// timeouts.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidSyncConfigs indicates invalid site sync settings
	// (for example, missing central URL or a zero batch size).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidAppConfigs indicates invalid application identity settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
