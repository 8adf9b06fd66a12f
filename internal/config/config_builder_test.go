// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that a field set by an earlier source is
// not overridden by a later one, while unset fields are filled.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Sync: Sync{Username: "from-env"}},
		&StructuredConfig{Sync: Sync{Username: "from-flags", Password: "p"}},
		&StructuredConfig{Sync: Sync{PushBatchSize: 10}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Sync.Username)
	assert.Equal(t, "p", cfg.Sync.Password)
	assert.Equal(t, 10, cfg.Sync.PushBatchSize)
}

// ── withFile / withDefaults ───────────────────────────────────────────────────

func TestWithFile_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withFile()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithFile_LoadsFirstPath(t *testing.T) {
	p := writeConfigFile(t, "site.yaml", "sync:\n  username: from-file\n")

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{FilePath: p},
		&StructuredConfig{FilePath: "/does/not/exist.json"},
	)

	b.withFile()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "from-file", b.configs[2].Sync.Username)
}

func TestWithFile_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: "/does/not/exist.json"})

	_, err := b.withFile().build()
	require.Error(t, err)
}

func TestWithDefaults_NilIsIgnored(t *testing.T) {
	b := newConfigBuilder().withDefaults(nil)
	assert.Empty(t, b.configs)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Precedence checks env > flags > file > defaults.
func TestGetStructuredConfig_Precedence(t *testing.T) {
	p := writeConfigFile(t, "site.json", `{
		"sync": { "username": "file-user", "password": "file-pass", "central_url": "http://file" },
		"log": { "level": "error" }
	}`)
	setEnvVars(t, map[string]string{
		"SYNC_USERNAME": "env-user",
	})

	cfg, err := GetStructuredConfig([]string{
		"-c", p,
		"-username", "flag-user",
		"-password", "flag-pass",
	}, SiteDefaults())
	require.NoError(t, err)

	assert.Equal(t, "env-user", cfg.Sync.Username)
	assert.Equal(t, "flag-pass", cfg.Sync.Password)
	assert.Equal(t, "http://file", cfg.Sync.CentralURL)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, 1000, cfg.Sync.PushBatchSize)
	assert.Equal(t, 5*time.Minute, cfg.Sync.IntegrationTimeout)
}

func TestGetStructuredConfig_BadFlag(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetStructuredConfig([]string{"-nope"}, nil)
	require.Error(t, err)
	assert.Nil(t, cfg)
}
