// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/models"
)

type keyValueRepository struct {
	q Querier
}

// NewKeyValueRepository constructs a [KeyValueRepository] running its
// statements on q.
func NewKeyValueRepository(q Querier) KeyValueRepository {
	return &keyValueRepository{q: q}
}

type keyValue struct {
	s *string
	i *int64
	b *bool
}

func (r *keyValueRepository) get(ctx context.Context, key models.KeyValueType) (keyValue, error) {
	var kv keyValue
	err := r.q.QueryRowContext(ctx, getKeyValue, string(key)).Scan(&kv.s, &kv.i, &kv.b)
	if errors.Is(err, sql.ErrNoRows) {
		return keyValue{}, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "keyValueRepository.get").
			Str("key", string(key)).
			Msg("failed to read key value")
		return keyValue{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return kv, nil
}

func (r *keyValueRepository) set(ctx context.Context, key models.KeyValueType, kv keyValue) error {
	if _, err := r.q.ExecContext(ctx, setKeyValue, string(key), kv.s, kv.i, kv.b); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "keyValueRepository.set").
			Str("key", string(key)).
			Msg("failed to write key value")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

// GetInt returns nil when the key was never set.
func (r *keyValueRepository) GetInt(ctx context.Context, key models.KeyValueType) (*int64, error) {
	kv, err := r.get(ctx, key)
	return kv.i, err
}

func (r *keyValueRepository) SetInt(ctx context.Context, key models.KeyValueType, value int64) error {
	return r.set(ctx, key, keyValue{i: &value})
}

// GetString returns nil when the key was never set.
func (r *keyValueRepository) GetString(ctx context.Context, key models.KeyValueType) (*string, error) {
	kv, err := r.get(ctx, key)
	return kv.s, err
}

func (r *keyValueRepository) SetString(ctx context.Context, key models.KeyValueType, value string) error {
	return r.set(ctx, key, keyValue{s: &value})
}

// GetBool returns false when the key was never set.
func (r *keyValueRepository) GetBool(ctx context.Context, key models.KeyValueType) (bool, error) {
	kv, err := r.get(ctx, key)
	if err != nil || kv.b == nil {
		return false, err
	}
	return *kv.b, nil
}

func (r *keyValueRepository) SetBool(ctx context.Context, key models.KeyValueType, value bool) error {
	return r.set(ctx, key, keyValue{b: &value})
}
