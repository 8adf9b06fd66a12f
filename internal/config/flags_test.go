// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Host: "", Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    NetAddress
	}{
		{name: "localhost", input: "localhost:8000", expected: NetAddress{Host: "localhost", Port: 8000}},
		{name: "ipv4", input: "0.0.0.0:8080", expected: NetAddress{Host: "0.0.0.0", Port: 8080}},
		{name: "all interfaces", input: ":9000", expected: NetAddress{Host: "", Port: 9000}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "bad host", input: "not-an-ip:8080", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, NetAddress{}, addr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr)
		})
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		assert func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "no flags",
			args: nil,
			assert: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
		{
			name: "site flags",
			args: []string{
				"-a", "localhost:8000",
				"-d", "site.sqlite",
				"-central-url", "http://central:8080",
				"-username", "site_1",
				"-password", "pass",
				"-site-uuid", "uuid-1",
				"-schedule", "@every 1m",
				"-request-timeout", "15s",
				"-log-level", "debug",
				"-log-file", "site.log",
			},
			assert: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "localhost:8000", cfg.Server.HTTPAddress)
				assert.Equal(t, "site.sqlite", cfg.Storage.DB.DSN)
				assert.Equal(t, "http://central:8080", cfg.Sync.CentralURL)
				assert.Equal(t, "site_1", cfg.Sync.Username)
				assert.Equal(t, "pass", cfg.Sync.Password)
				assert.Equal(t, "uuid-1", cfg.Sync.SiteUUID)
				assert.Equal(t, "@every 1m", cfg.Sync.Schedule)
				assert.Equal(t, 15*time.Second, cfg.Sync.RequestTimeout)
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, "site.log", cfg.Log.File)
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "/etc/site.yaml"},
			assert: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/etc/site.yaml", cfg.FilePath)
			},
		},
		{
			name: "central admin token",
			args: []string{"-c", "central.json", "-admin-token", "secret"},
			assert: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "central.json", cfg.FilePath)
				assert.Equal(t, "secret", cfg.Central.AdminToken)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.NoError(t, err)
			tt.assert(t, cfg)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"invalid address", []string{"-a", "localhost"}},
		{"invalid duration", []string{"-request-timeout", "soon"}},
		{"unknown flag", []string{"-grpc-address", "localhost:9090"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
