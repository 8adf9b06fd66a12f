// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the goose SQL migrations of both databases:
// the SQLite store every site keeps and the PostgreSQL store of the central
// server.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed site/*.sql
var siteMigrations embed.FS

//go:embed central/*.sql
var centralMigrations embed.FS

var errNilDB = errors.New("db is nil")

// MigrateSite applies the site schema to a SQLite database.
func MigrateSite(db *sql.DB) error {
	return migrate(db, siteMigrations, "sqlite3", "site")
}

// MigrateCentral applies the central schema to a PostgreSQL database.
func MigrateCentral(db *sql.DB) error {
	return migrate(db, centralMigrations, "pgx", "central")
}

func migrate(db *sql.DB, fsys embed.FS, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
