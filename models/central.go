// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Site is a remote site registered on the central server.
type Site struct {
	SiteID       int64          `json:"siteId"`
	SiteUUID     string         `json:"siteUuid"`
	Name         string         `json:"name"`
	PasswordHash string         `json:"-"`
	HardwareID   *string        `json:"hardwareId,omitempty"`
	Initialised  bool           `json:"initialised"`
	Status       SiteStatusCode `json:"status"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// StoreAssignment makes a site the owner of a store. NameID is the name
// row of the store, used to route records addressed to the store by name.
type StoreAssignment struct {
	StoreID string `json:"storeId"`
	NameID  string `json:"nameId"`
}

// RegisterSiteRequest is the body of the admin site registration endpoint.
type RegisterSiteRequest struct {
	SiteID   int64             `json:"siteId"`
	Name     string            `json:"name"`
	Password string            `json:"password"`
	Stores   []StoreAssignment `json:"stores"`
}

// CentralRecordInput is the body of the admin endpoint that appends central
// data.
type CentralRecordInput struct {
	TableName TableName       `json:"tableName"`
	RecordID  string          `json:"recordId"`
	Data      json.RawMessage `json:"data"`
}

// RemoteRecordEntry is the latest pushed version of a remote record.
type RemoteRecordEntry struct {
	TableName    TableName
	RecordID     string
	Action       PushAction
	StoreID      *string
	NameID       *string
	SourceSiteID int64
	Data         json.RawMessage
	UpdatedAt    time.Time
}

// RecordKey identifies one record of one table.
type RecordKey struct {
	TableName TableName
	RecordID  string
}

// QueueEntry is a record waiting in a site queue.
type QueueEntry struct {
	SyncID       string
	SiteID       int64
	TableName    TableName
	RecordID     string
	Action       RemoteAction
	Data         json.RawMessage
	SourceSiteID *int64
}
