// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/models"
)

// siteRepository is the PostgreSQL-backed implementation of
// [SiteRepository]. It manages the "sites" and "store_sites" tables.
type siteRepository struct {
	q Querier
}

// NewSiteRepository constructs a [SiteRepository] running its statements
// on q.
func NewSiteRepository(q Querier) SiteRepository {
	return &siteRepository{q: q}
}

// Create registers a new site.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrSiteAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *siteRepository) Create(ctx context.Context, site models.Site) error {
	log := logger.FromContext(ctx)

	_, err := r.q.ExecContext(ctx, createSite, site.SiteID, site.SiteUUID, site.Name, site.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "siteRepository.Create").Int64("site_id", site.SiteID).Msg("error creating site")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrSiteAlreadyExists
		default:
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return nil
}

// FindByName returns the site registered under name or [ErrSiteNotFound].
func (r *siteRepository) FindByName(ctx context.Context, name string) (models.Site, error) {
	return r.find(ctx, "siteRepository.FindByName", findSiteByName, name)
}

// FindByID returns the site with the given id or [ErrSiteNotFound].
func (r *siteRepository) FindByID(ctx context.Context, siteID int64) (models.Site, error) {
	return r.find(ctx, "siteRepository.FindByID", findSiteByID, siteID)
}

func (r *siteRepository) find(ctx context.Context, funcName, query string, arg any) (models.Site, error) {
	var (
		site   models.Site
		status string
	)

	err := r.q.QueryRowContext(ctx, query, arg).Scan(
		&site.SiteID,
		&site.SiteUUID,
		&site.Name,
		&site.PasswordHash,
		&site.HardwareID,
		&site.Initialised,
		&status,
		&site.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Site{}, ErrSiteNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error: scanning error")
		return models.Site{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	site.Status = models.SiteStatusCode(status)
	return site, nil
}

// SetInitialised marks the site as initialised by the given installation.
func (r *siteRepository) SetInitialised(ctx context.Context, siteID int64, hardwareID string) error {
	return r.exec(ctx, "siteRepository.SetInitialised", setSiteInitialised, siteID, hardwareID)
}

// SetStatus stores the status reported by the site status endpoint.
func (r *siteRepository) SetStatus(ctx context.Context, siteID int64, status models.SiteStatusCode) error {
	return r.exec(ctx, "siteRepository.SetStatus", setSiteStatus, siteID, string(status))
}

func (r *siteRepository) exec(ctx context.Context, funcName, query string, siteID int64, arg any) error {
	res, err := r.q.ExecContext(ctx, query, siteID, arg)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Int64("site_id", siteID).Msg("failed to update site")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrSiteNotFound
	}
	return nil
}

// AssignStores makes the site the owner of the given stores. A store owned
// by another site is moved over.
func (r *siteRepository) AssignStores(ctx context.Context, siteID int64, stores []models.StoreAssignment) error {
	for _, s := range stores {
		if _, err := r.q.ExecContext(ctx, assignStoreToSite, s.StoreID, s.NameID, siteID); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "siteRepository.AssignStores").
				Int64("site_id", siteID).
				Str("store_id", s.StoreID).
				Msg("failed to assign store")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}
	return nil
}

// StoreIDs lists the stores owned by the site.
func (r *siteRepository) StoreIDs(ctx context.Context, siteID int64) ([]string, error) {
	rows, err := r.q.QueryContext(ctx, siteStoreIDs, siteID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "siteRepository.StoreIDs").Int64("site_id", siteID).Msg("failed to list stores")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return collectRows(rows, 4, func(rows *sql.Rows) (string, error) {
		var id string
		err := rows.Scan(&id)
		return id, err
	})
}

// Owners returns the sites owning storeID or a store whose name is nameID.
func (r *siteRepository) Owners(ctx context.Context, storeID, nameID *string) ([]int64, error) {
	if storeID == nil && nameID == nil {
		return nil, nil
	}

	query, args, err := buildOwnersQuery(storeID, nameID)
	if err != nil {
		return nil, err
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "siteRepository.Owners").Msg("failed to find store owners")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return collectRows(rows, 2, func(rows *sql.Rows) (int64, error) {
		var id int64
		err := rows.Scan(&id)
		return id, err
	})
}
