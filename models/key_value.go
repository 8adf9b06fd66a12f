// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// KeyValueType names a persisted piece of sync state.
type KeyValueType string

const (
	KeyRemoteSyncPushCursor             KeyValueType = "REMOTE_SYNC_PUSH_CURSOR"
	KeySettingsSyncSiteID               KeyValueType = "SETTINGS_SYNC_SITE_ID"
	KeySettingsSyncSiteUUID             KeyValueType = "SETTINGS_SYNC_SITE_UUID"
	KeyRemoteSyncInitialisationStarted  KeyValueType = "REMOTE_SYNC_INITILISATION_STARTED"
	KeyRemoteSyncInitialisationFinished KeyValueType = "REMOTE_SYNC_INITILISATION_FINISHED"
	KeyCentralSyncPullCursor            KeyValueType = "CENTRAL_SYNC_PULL_CURSOR"
	KeyTransferProcessorCursor          KeyValueType = "TRANSFER_PROCESSOR_CURSOR"
)
