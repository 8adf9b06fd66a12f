// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// SiteConfig is the configuration view of the remote site daemon.
type SiteConfig struct {
	App    App
	DB     DB
	Server Server
	Sync   Sync
	Log    Log
}

// CentralConfig is the configuration view of the central server.
type CentralConfig struct {
	App        App
	DB         DB
	Server     Server
	Log        Log
	AdminToken string
}

// SiteDefaults returns the values a site runs with when nothing else is
// configured.
func SiteDefaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:    "site-sync",
			Version: "dev",
		},
		Storage: Storage{
			DB: DB{DSN: "site.sqlite", MaxOpenConns: 1},
		},
		Server: Server{
			HTTPAddress:     "localhost:8000",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Sync: Sync{
			CentralBatchSize:      500,
			RemotePullBatchSize:   500,
			PushBatchSize:         1000,
			IntegrationPollPeriod: 2 * time.Second,
			IntegrationTimeout:    5 * time.Minute,
			Schedule:              "@every 10m",
			RequestTimeout:        60 * time.Second,
		},
		Log: Log{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 5,
			MaxAgeDays: 30,
		},
	}
}

// CentralDefaults returns the values the central server runs with when
// nothing else is configured.
func CentralDefaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:    "site-sync-central",
			Version: "dev",
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: Log{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 5,
			MaxAgeDays: 30,
		},
	}
}

// GetSiteConfig builds and validates the site configuration view from the
// merged structured configuration.
func GetSiteConfig(args []string) (*SiteConfig, error) {
	cfg, err := GetStructuredConfig(args, SiteDefaults())
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	siteCfg := NewSiteConfig(cfg)
	return siteCfg, siteCfg.validate()
}

// NewSiteConfig maps the fields relevant to the site runtime.
func NewSiteConfig(cfg *StructuredConfig) *SiteConfig {
	return &SiteConfig{
		App:    cfg.App,
		DB:     cfg.Storage.DB,
		Server: cfg.Server,
		Sync:   cfg.Sync,
		Log:    cfg.Log,
	}
}

// GetCentralConfig builds and validates the central server configuration
// view from the merged structured configuration.
func GetCentralConfig(args []string) (*CentralConfig, error) {
	cfg, err := GetStructuredConfig(args, CentralDefaults())
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	centralCfg := NewCentralConfig(cfg)
	return centralCfg, centralCfg.validate()
}

// NewCentralConfig maps the fields relevant to the central runtime.
func NewCentralConfig(cfg *StructuredConfig) *CentralConfig {
	return &CentralConfig{
		App:        cfg.App,
		DB:         cfg.Storage.DB,
		Server:     cfg.Server,
		Log:        cfg.Log,
		AdminToken: cfg.Central.AdminToken,
	}
}
