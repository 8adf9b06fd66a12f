// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/site-sync/internal/store"
	"github.com/MKhiriev/site-sync/models"
)

// SyncState is the durable progress of a site. It is loaded at the start of
// every run and each part is advanced in the transaction that makes it
// true.
type SyncState struct {
	SiteID        *int64
	SiteUUID      *string
	PushCursor    int64
	CentralCursor int64
	// InitialisationStarted is set once the central server filled the site
	// queue for this installation.
	InitialisationStarted bool
	// InitialisationFinished is set by the first fully successful run.
	InitialisationFinished bool
}

// IsInitialised reports whether the central server was asked to prepare the
// initial data.
func (s SyncState) IsInitialised() bool {
	return s.InitialisationStarted
}

// InitialRemoteDataSynced reports whether the first run finished. Until
// then nothing is pushed and integration tolerates failing records.
func (s SyncState) InitialRemoteDataSynced() bool {
	return s.InitialisationFinished
}

// LoadSyncState reads every piece of the state. Missing cursors read as 0.
func LoadSyncState(ctx context.Context, kv store.KeyValueRepository) (SyncState, error) {
	var (
		state SyncState
		err   error
	)

	if state.SiteID, err = kv.GetInt(ctx, models.KeySettingsSyncSiteID); err != nil {
		return SyncState{}, fmt.Errorf("load site id: %w", err)
	}
	if state.SiteUUID, err = kv.GetString(ctx, models.KeySettingsSyncSiteUUID); err != nil {
		return SyncState{}, fmt.Errorf("load site uuid: %w", err)
	}
	if state.PushCursor, err = getCursor(ctx, kv, models.KeyRemoteSyncPushCursor); err != nil {
		return SyncState{}, err
	}
	if state.CentralCursor, err = getCursor(ctx, kv, models.KeyCentralSyncPullCursor); err != nil {
		return SyncState{}, err
	}
	if state.InitialisationStarted, err = kv.GetBool(ctx, models.KeyRemoteSyncInitialisationStarted); err != nil {
		return SyncState{}, fmt.Errorf("load initialisation started: %w", err)
	}
	if state.InitialisationFinished, err = kv.GetBool(ctx, models.KeyRemoteSyncInitialisationFinished); err != nil {
		return SyncState{}, fmt.Errorf("load initialisation finished: %w", err)
	}

	return state, nil
}

func getCursor(ctx context.Context, kv store.KeyValueRepository, key models.KeyValueType) (int64, error) {
	v, err := kv.GetInt(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("load %s: %w", key, err)
	}
	if v == nil {
		return 0, nil
	}
	return *v, nil
}

// saveSiteIdentity stores what the central server told the site about
// itself.
func saveSiteIdentity(ctx context.Context, kv store.KeyValueRepository, info models.SiteInfo) error {
	if err := kv.SetInt(ctx, models.KeySettingsSyncSiteID, info.SiteID); err != nil {
		return fmt.Errorf("save site id: %w", err)
	}
	if err := kv.SetString(ctx, models.KeySettingsSyncSiteUUID, info.ID); err != nil {
		return fmt.Errorf("save site uuid: %w", err)
	}
	return nil
}
