// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type fileConfig struct {
	App struct {
		Name    string `json:"name" yaml:"name"`
		Version string `json:"version" yaml:"version"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn" yaml:"dsn"`
			MaxOpenConns int    `json:"max_open_conns" yaml:"max_open_conns"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server" yaml:"server"`

	Sync struct {
		CentralURL            string   `json:"central_url" yaml:"central_url"`
		Username              string   `json:"username" yaml:"username"`
		Password              string   `json:"password" yaml:"password"`
		SiteUUID              string   `json:"site_uuid" yaml:"site_uuid"`
		CentralBatchSize      int      `json:"central_batch_size" yaml:"central_batch_size"`
		RemotePullBatchSize   int      `json:"remote_pull_batch_size" yaml:"remote_pull_batch_size"`
		PushBatchSize         int      `json:"push_batch_size" yaml:"push_batch_size"`
		IntegrationPollPeriod Duration `json:"integration_poll_period" yaml:"integration_poll_period"`
		IntegrationTimeout    Duration `json:"integration_timeout" yaml:"integration_timeout"`
		Schedule              string   `json:"schedule" yaml:"schedule"`
		RequestTimeout        Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"sync" yaml:"sync"`

	Log struct {
		Level      string `json:"level" yaml:"level"`
		File       string `json:"file" yaml:"file"`
		MaxSizeMB  int    `json:"max_size_mb" yaml:"max_size_mb"`
		MaxBackups int    `json:"max_backups" yaml:"max_backups"`
		MaxAgeDays int    `json:"max_age_days" yaml:"max_age_days"`
	} `json:"log" yaml:"log"`

	Central struct {
		AdminToken string `json:"admin_token" yaml:"admin_token"`
	} `json:"central" yaml:"central"`
}

// parseFile reads a config file. Files ending in .yaml or .yml are decoded
// as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}
	defer file.Close()

	var fileCfg fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(file).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.NewDecoder(file).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			Name:    fileCfg.App.Name,
			Version: fileCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:          fileCfg.Storage.DB.DSN,
				MaxOpenConns: fileCfg.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     fileCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(fileCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(fileCfg.Server.ShutdownTimeout),
		},
		Sync: Sync{
			CentralURL:            fileCfg.Sync.CentralURL,
			Username:              fileCfg.Sync.Username,
			Password:              fileCfg.Sync.Password,
			SiteUUID:              fileCfg.Sync.SiteUUID,
			CentralBatchSize:      fileCfg.Sync.CentralBatchSize,
			RemotePullBatchSize:   fileCfg.Sync.RemotePullBatchSize,
			PushBatchSize:         fileCfg.Sync.PushBatchSize,
			IntegrationPollPeriod: time.Duration(fileCfg.Sync.IntegrationPollPeriod),
			IntegrationTimeout:    time.Duration(fileCfg.Sync.IntegrationTimeout),
			Schedule:              fileCfg.Sync.Schedule,
			RequestTimeout:        time.Duration(fileCfg.Sync.RequestTimeout),
		},
		Log: Log{
			Level:      fileCfg.Log.Level,
			File:       fileCfg.Log.File,
			MaxSizeMB:  fileCfg.Log.MaxSizeMB,
			MaxBackups: fileCfg.Log.MaxBackups,
			MaxAgeDays: fileCfg.Log.MaxAgeDays,
		},
		Central: Central{
			AdminToken: fileCfg.Central.AdminToken,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON and YAML
// unmarshaling from strings like "1h", "30s" or from plain nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var nanos int64
	if err := value.Decode(&nanos); err == nil {
		*d = Duration(time.Duration(nanos))
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
