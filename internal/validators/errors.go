// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidSiteID        = errors.New("invalid site id")
	ErrEmptySiteName        = errors.New("site name is required")
	ErrEmptyPassword        = errors.New("password is required")
	ErrInvalidStore         = errors.New("store id and name id are required")
	ErrDuplicateStore       = errors.New("store assigned twice")
	ErrEmptySyncID          = errors.New("sync id is required")
	ErrEmptyRecordID        = errors.New("record id is required")
	ErrInvalidTableName     = errors.New("invalid table name")
	ErrRemoteTable          = errors.New("remote table cannot be central data")
	ErrInvalidAction        = errors.New("invalid action")
	ErrEmptyRecordData      = errors.New("record data is required")
	ErrInvalidRecordData    = errors.New("record data is not a json object")
	ErrNegativeRemaining    = errors.New("total remaining cannot be negative")
	ErrDuplicateSyncID      = errors.New("sync id sent twice for one table in a batch")
	ErrEmptyCentralRecords  = errors.New("central records list cannot be empty")
	ErrEmptyAcknowledgedIDs = errors.New("acknowledged sync id cannot be empty")
)
