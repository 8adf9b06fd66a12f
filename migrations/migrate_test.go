// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateCentral_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose talks to the db itself, no expectations are set

	err = MigrateCentral(db)
	if err == nil {
		t.Fatal("expected error from MigrateCentral, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := MigrateSite(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrateSite_CreatesSchema(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "site.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, MigrateSite(db))

	tables := []string{
		"changelog", "sync_buffer", "key_value_store", "sync_log",
		"unit", "item", "name", "store", "name_store_join",
		"stock_line", "requisition", "requisition_line",
		"purchase_order", "purchase_order_line", "invoice", "invoice_line",
	}
	for _, table := range tables {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}

	var view string
	require.NoError(t, db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'view'`).Scan(&view))
	assert.Equal(t, "changelog_deduped", view)

	// applying twice is a no-op
	require.NoError(t, MigrateSite(db))
}
