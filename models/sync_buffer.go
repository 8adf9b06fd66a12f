// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// SyncBufferAction is what integration should do with a buffered record.
type SyncBufferAction string

const (
	SyncBufferActionUpsert SyncBufferAction = "UPSERT"
	SyncBufferActionDelete SyncBufferAction = "DELETE"
	SyncBufferActionMerge  SyncBufferAction = "MERGE"
)

// SyncBufferRow is a pulled record waiting for translation and integration.
// Rows are keyed by (TableName, RecordID); a re-pull overwrites the row.
type SyncBufferRow struct {
	TableName           string
	RecordID            string
	Action              SyncBufferAction
	Data                json.RawMessage
	ReceivedDatetime    time.Time
	IntegrationDatetime *time.Time
	IntegrationError    *string
	SourceSiteID        *int64
}

// SyncBufferFilter narrows sync buffer reads.
type SyncBufferFilter struct {
	Action     *SyncBufferAction
	TableNames []string
	// OnlyPending selects rows with no integration datetime.
	OnlyPending bool
}

// MergeData is the payload of a merge record.
type MergeData struct {
	MergeIDToKeep   string `json:"mergeIdToKeep"`
	MergeIDToDelete string `json:"mergeIdToDelete"`
}
