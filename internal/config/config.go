// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by every
// binary of the module. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON/YAML file and the role defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the application name and version reported to the central
	// server and exposed by the local API.
	App App `envPrefix:"APP_"`

	// Storage holds the database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Sync holds everything the site needs to talk to the central server.
	Sync Sync `envPrefix:"SYNC_"`

	// Log holds the log level and the optional rotating log file.
	Log Log `envPrefix:"LOG_"`

	// Central holds settings used only by the central server.
	Central Central `envPrefix:"CENTRAL_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application identity values.
type App struct {
	// Name is sent in the app-name header of every sync request.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is sent in the app-version header and exposed via
	// /api/v1/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the SQLite file path (site) or the PostgreSQL connection string
	// (central).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns limits the pool size. Zero keeps the driver default.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown of the server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Sync holds the site side synchronisation settings.
type Sync struct {
	// CentralURL is the base URL of the central server.
	// Env: SYNC_CENTRAL_URL
	CentralURL string `env:"CENTRAL_URL"`

	// Username and Password are the site credentials. The password is sent
	// as the hex encoded sha256 of its plain text value.
	// Env: SYNC_USERNAME, SYNC_PASSWORD
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`

	// SiteUUID identifies the installation (msupply-site-uuid header).
	// Env: SYNC_SITE_UUID
	SiteUUID string `env:"SITE_UUID"`

	// CentralBatchSize is the page size used when pulling central records.
	// Env: SYNC_CENTRAL_BATCH_SIZE
	CentralBatchSize int `env:"CENTRAL_BATCH_SIZE"`

	// RemotePullBatchSize is the page size used when pulling the site queue.
	// Env: SYNC_REMOTE_PULL_BATCH_SIZE
	RemotePullBatchSize int `env:"REMOTE_PULL_BATCH_SIZE"`

	// PushBatchSize is the number of changelog rows pushed per request.
	// Env: SYNC_PUSH_BATCH_SIZE
	PushBatchSize int `env:"PUSH_BATCH_SIZE"`

	// IntegrationPollPeriod is how often the site status is polled after a
	// push.
	// Env: SYNC_INTEGRATION_POLL_PERIOD
	IntegrationPollPeriod time.Duration `env:"INTEGRATION_POLL_PERIOD"`

	// IntegrationTimeout bounds the wait for central integration.
	// Env: SYNC_INTEGRATION_TIMEOUT
	IntegrationTimeout time.Duration `env:"INTEGRATION_TIMEOUT"`

	// Schedule is a cron expression ("@every 10m", "*/5 * * * *").
	// Env: SYNC_SCHEDULE
	Schedule string `env:"SCHEDULE"`

	// RequestTimeout is the timeout of every outbound sync request.
	// Env: SYNC_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File enables the rotating file writer when non-empty.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Env: LOG_MAX_SIZE_MB
	MaxSizeMB int `env:"MAX_SIZE_MB"`
	// Env: LOG_MAX_BACKUPS
	MaxBackups int `env:"MAX_BACKUPS"`
	// Env: LOG_MAX_AGE_DAYS
	MaxAgeDays int `env:"MAX_AGE_DAYS"`
}

// Central holds central server only settings.
type Central struct {
	// AdminToken protects the /admin routes. Admin routes are not mounted
	// when it is empty.
	// Env: CENTRAL_ADMIN_TOKEN
	AdminToken string `env:"ADMIN_TOKEN"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. args are the command-line arguments without the program name.
// defaults are merged last and only fill fields no other source has set.
func GetStructuredConfig(args []string, defaults *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		withDefaults(defaults).
		build()
}
