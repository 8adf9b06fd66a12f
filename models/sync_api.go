// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// CentralRecord is one entry of the central records feed.
type CentralRecord struct {
	ID        int64           `json:"ID"`
	TableName string          `json:"tableName"`
	RecordID  string          `json:"recordId"`
	Data      json.RawMessage `json:"data"`
}

// CentralBatch is a page of the central records feed. MaxCursor is the
// cursor the central server will assign next.
type CentralBatch struct {
	MaxCursor int64           `json:"maxCursor"`
	Data      []CentralRecord `json:"data"`
}

// RemoteAction is the action of a queued record.
type RemoteAction string

const (
	RemoteActionInsert RemoteAction = "insert"
	RemoteActionUpdate RemoteAction = "update"
	RemoteActionDelete RemoteAction = "delete"
	RemoteActionMerge  RemoteAction = "merge"
)

// BufferAction maps a queued action onto the sync buffer action.
func (a RemoteAction) BufferAction() (SyncBufferAction, error) {
	switch a {
	case RemoteActionInsert, RemoteActionUpdate:
		return SyncBufferActionUpsert, nil
	case RemoteActionDelete:
		return SyncBufferActionDelete, nil
	case RemoteActionMerge:
		return SyncBufferActionMerge, nil
	}
	return "", fmt.Errorf("unknown remote action %q", a)
}

// RemoteRecord is one entry of the site queue.
type RemoteRecord struct {
	SyncID     string          `json:"syncOutId"`
	TableName  string          `json:"tableName"`
	RecordID   string          `json:"recordId"`
	Action     RemoteAction    `json:"action"`
	RecordData json.RawMessage `json:"recordData,omitempty"`
	// SourceSiteID is set by the central server when the record was
	// authored on another site.
	SourceSiteID *int64 `json:"sourceSiteId,omitempty"`
}

// RemoteBatch is a page of the site queue. QueueLength counts every record
// still queued, including the ones in Data.
type RemoteBatch struct {
	QueueLength int64          `json:"queueLength"`
	Data        []RemoteRecord `json:"data"`
}

// SyncIDs returns the ids to acknowledge once the batch is persisted.
func (b RemoteBatch) SyncIDs() []string {
	ids := make([]string, 0, len(b.Data))
	for _, r := range b.Data {
		ids = append(ids, r.SyncID)
	}
	return ids
}

// AcknowledgeRequest removes consumed records from the site queue.
type AcknowledgeRequest struct {
	SyncIDs []string `json:"syncIDs"`
}

// PushAction is the action of a pushed record.
type PushAction string

const (
	PushActionUpdate PushAction = "update"
	PushActionDelete PushAction = "delete"
)

// PushRecord is one translated changelog entry ready to be sent.
type PushRecord struct {
	Cursor     int64           `json:"-"`
	SyncID     string          `json:"syncId"`
	TableName  TableName       `json:"tableName"`
	RecordID   string          `json:"recordId"`
	Action     PushAction      `json:"action"`
	StoreID    *string         `json:"storeId,omitempty"`
	NameID     *string         `json:"nameId,omitempty"`
	RecordData json.RawMessage `json:"recordData,omitempty"`
}

// PushBatch is the body of a push request.
type PushBatch struct {
	TotalRemaining int64        `json:"totalRemaining"`
	Records        []PushRecord `json:"records"`
}

// PushResponse tells whether the central server started integrating what
// the site has pushed so far.
type PushResponse struct {
	IntegrationStarted bool `json:"integrationStarted"`
}

// SiteInfo identifies the site to itself.
type SiteInfo struct {
	ID     string `json:"id"`
	SiteID int64  `json:"siteId"`
	Name   string `json:"name"`
}

// SiteStatusCode is reported by the central server after a push.
type SiteStatusCode string

const (
	SiteStatusIdle                  SiteStatusCode = "idle"
	SiteStatusIntegrationInProgress SiteStatusCode = "integration_in_progress"
)

// SiteStatus is the body of the site status endpoint.
type SiteStatus struct {
	Code    SiteStatusCode `json:"code"`
	Message string         `json:"message,omitempty"`
}

// InitialiseResponse is returned by the initialisation endpoint.
type InitialiseResponse struct {
	QueueLength int64 `json:"queueLength"`
}

// APIError is the body of every non-2xx sync API response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e APIError) Error() string {
	return fmt.Sprintf("status: %d, code: %s, message: %s", e.Status, e.Code, e.Message)
}
