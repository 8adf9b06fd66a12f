// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
)

// maxTransactionAttempts bounds how often a transaction failing with a
// retryable error is run again.
const maxTransactionAttempts = 3

// CentralRepositories groups the central repositories bound to one querier.
type CentralRepositories struct {
	Sites          SiteRepository
	CentralRecords CentralRecordRepository
	RemoteRecords  RemoteRecordRepository
	PushReceipts   PushReceiptRepository
	SiteQueue      SiteQueueRepository
}

// NewCentralRepositories binds every central repository to q.
func NewCentralRepositories(q Querier) *CentralRepositories {
	return &CentralRepositories{
		Sites:          NewSiteRepository(q),
		CentralRecords: NewCentralRecordRepository(q),
		RemoteRecords:  NewRemoteRecordRepository(q),
		PushReceipts:   NewPushReceiptRepository(q),
		SiteQueue:      NewSiteQueueRepository(q),
	}
}

// CentralStorage is the central database as seen by the central services.
type CentralStorage interface {
	Repositories() *CentralRepositories
	// Transaction runs fn in a transaction. Serialization failures and
	// deadlocks run fn again, up to three attempts in total.
	Transaction(ctx context.Context, fn func(ctx context.Context, repos *CentralRepositories) error) error
}

type centralStorage struct {
	db    *DB
	repos *CentralRepositories
}

// NewCentralStorage wraps an open central database.
func NewCentralStorage(db *DB) CentralStorage {
	return &centralStorage{
		db:    db,
		repos: NewCentralRepositories(db),
	}
}

func (s *centralStorage) Repositories() *CentralRepositories {
	return s.repos
}

func (s *centralStorage) Transaction(ctx context.Context, fn func(ctx context.Context, repos *CentralRepositories) error) error {
	var err error
	for attempt := 1; attempt <= maxTransactionAttempts; attempt++ {
		err = s.db.withTx(ctx, func(tx *sql.Tx) error {
			return fn(ctx, NewCentralRepositories(tx))
		})
		if err == nil || s.db.Classify(err) != Retryable {
			return err
		}
		s.db.logger.Warn().Err(err).
			Str("func", "centralStorage.Transaction").
			Int("attempt", attempt).
			Msg("retrying transaction")
	}
	return err
}
