// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/store"
	"github.com/MKhiriev/site-sync/internal/utils"
	"github.com/MKhiriev/site-sync/internal/validators"
	"github.com/MKhiriev/site-sync/models"
)

// siteAuthService is the concrete implementation of SiteAuthService.
// Sites never send their plain password, only its sha256 digest, so the
// stored bcrypt hash is computed over that digest.
type siteAuthService struct {
	storage   store.CentralStorage
	ids       utils.IDGenerator
	validator validators.Validator
}

// NewSiteAuthService constructs a SiteAuthService over the central storage.
func NewSiteAuthService(storage store.CentralStorage, ids utils.IDGenerator) SiteAuthService {
	return &siteAuthService{storage: storage, ids: ids, validator: validators.NewSyncValidator()}
}

// Register creates a site and assigns its stores in one transaction.
//
// Returns the created site or:
//   - ErrInvalidDataProvided if the id, name or password is missing or a
//     store is assigned twice.
//   - store.ErrSiteAlreadyExists if the id or name is taken.
func (s *siteAuthService) Register(ctx context.Context, req models.RegisterSiteRequest) (models.Site, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Int64("site_id", req.SiteID).Str("name", req.Name).Msg("invalid site data provided")
		return models.Site{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(utils.PasswordDigest(req.Password)), bcrypt.DefaultCost)
	if err != nil {
		return models.Site{}, fmt.Errorf("hash site password: %w", err)
	}

	site := models.Site{
		SiteID:       req.SiteID,
		SiteUUID:     s.ids.Generate(),
		Name:         req.Name,
		PasswordHash: string(hash),
		Status:       models.SiteStatusIdle,
		CreatedAt:    time.Now().UTC(),
	}

	err = s.storage.Transaction(ctx, func(ctx context.Context, repos *store.CentralRepositories) error {
		if err := repos.Sites.Create(ctx, site); err != nil {
			return err
		}
		if len(req.Stores) == 0 {
			return nil
		}
		return repos.Sites.AssignStores(ctx, site.SiteID, req.Stores)
	})
	if err != nil {
		log.Err(err).Int64("site_id", req.SiteID).Msg("site registration ended with error")
		return models.Site{}, fmt.Errorf("site registration ended with error: %w", err)
	}

	log.Info().Int64("site_id", site.SiteID).Str("name", site.Name).Msg("site registered")
	return site, nil
}

// Authenticate returns the site registered under name when passwordDigest
// matches its stored hash.
//
// Errors:
//   - store.ErrSiteNotFound (wrapped) for an unknown name.
//   - ErrWrongPassword when the digest does not match.
func (s *siteAuthService) Authenticate(ctx context.Context, name, passwordDigest string) (models.Site, error) {
	if name == "" || passwordDigest == "" {
		return models.Site{}, ErrInvalidDataProvided
	}

	site, err := s.storage.Repositories().Sites.FindByName(ctx, name)
	if err != nil {
		if !errors.Is(err, store.ErrSiteNotFound) {
			logger.FromContext(ctx).Err(err).Str("name", name).Msg("site search by name failed")
		}
		return models.Site{}, fmt.Errorf("site search by name failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(site.PasswordHash), []byte(passwordDigest)); err != nil {
		logger.FromContext(ctx).Warn().Int64("site_id", site.SiteID).Msg("wrong site password")
		return models.Site{}, ErrWrongPassword
	}
	return site, nil
}
