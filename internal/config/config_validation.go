// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
)

func (cfg *SiteConfig) validate() error {
	if cfg.App.Name == "" || cfg.App.Version == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if err := validateSync(cfg.Sync); err != nil {
		return err
	}

	return validateLog(cfg.Log)
}

func (cfg *CentralConfig) validate() error {
	if cfg.App.Name == "" || cfg.App.Version == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return validateLog(cfg.Log)
}

func validateSync(s Sync) error {
	if s.CentralURL == "" || s.Username == "" {
		return ErrInvalidSyncConfigs
	}

	u, err := url.Parse(s.CentralURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: central url %q", ErrInvalidSyncConfigs, s.CentralURL)
	}

	if s.CentralBatchSize <= 0 || s.RemotePullBatchSize <= 0 || s.PushBatchSize <= 0 {
		return fmt.Errorf("%w: batch sizes must be positive", ErrInvalidSyncConfigs)
	}

	if s.IntegrationPollPeriod <= 0 || s.IntegrationTimeout <= 0 || s.RequestTimeout <= 0 {
		return fmt.Errorf("%w: durations must be positive", ErrInvalidSyncConfigs)
	}

	if s.Schedule == "" {
		return fmt.Errorf("%w: empty schedule", ErrInvalidSyncConfigs)
	}

	return nil
}

func validateLog(l Log) error {
	if _, err := zerolog.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}
	return nil
}
