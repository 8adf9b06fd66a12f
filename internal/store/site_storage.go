// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
)

// SiteRepositories groups the site repositories bound to one querier.
type SiteRepositories struct {
	Changelog  ChangelogRepository
	SyncBuffer SyncBufferRepository
	KeyValue   KeyValueRepository
	SyncLog    SyncLogRepository
	Rows       RowRepository
}

// NewSiteRepositories binds every site repository to q.
func NewSiteRepositories(q Querier) *SiteRepositories {
	return &SiteRepositories{
		Changelog:  NewChangelogRepository(q),
		SyncBuffer: NewSyncBufferRepository(q),
		KeyValue:   NewKeyValueRepository(q),
		SyncLog:    NewSyncLogRepository(q),
		Rows:       NewRowRepository(q),
	}
}

// SiteStorage is the site database as seen by the services.
type SiteStorage interface {
	// Repositories returns repositories running outside any transaction.
	Repositories() *SiteRepositories
	// Transaction runs fn with repositories bound to one transaction. The
	// transaction commits when fn returns nil and rolls back otherwise.
	Transaction(ctx context.Context, fn func(ctx context.Context, repos *SiteRepositories) error) error
}

type siteStorage struct {
	db    *DB
	repos *SiteRepositories
}

// NewSiteStorage wraps an open site database.
func NewSiteStorage(db *DB) SiteStorage {
	return &siteStorage{
		db:    db,
		repos: NewSiteRepositories(db),
	}
}

func (s *siteStorage) Repositories() *SiteRepositories {
	return s.repos
}

func (s *siteStorage) Transaction(ctx context.Context, fn func(ctx context.Context, repos *SiteRepositories) error) error {
	return s.db.withTx(ctx, func(tx *sql.Tx) error {
		return fn(ctx, NewSiteRepositories(tx))
	})
}
