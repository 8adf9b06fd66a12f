// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/site-sync/models"
)

const (
	FieldSiteID         = "site_id"
	FieldName           = "name"
	FieldPassword       = "password"
	FieldStores         = "stores"
	FieldSyncID         = "sync_id"
	FieldTableName      = "table_name"
	FieldRecordID       = "record_id"
	FieldAction         = "action"
	FieldRecordData     = "record_data"
	FieldTotalRemaining = "total_remaining"
	FieldRecords        = "records"
	FieldCentralTable   = "central_table"
	FieldSyncIDs        = "sync_ids"
)

type SyncValidator struct {
}

func NewSyncValidator() Validator {
	return &SyncValidator{}
}

func (v *SyncValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterSiteRequest:
		return v.validateRegisterSiteRequest(ctx, value, fields...)
	case *models.RegisterSiteRequest:
		return v.validateRegisterSiteRequest(ctx, *value, fields...)

	case models.PushBatch:
		return v.validatePushBatch(ctx, value, fields...)
	case *models.PushBatch:
		return v.validatePushBatch(ctx, *value, fields...)

	case models.PushRecord:
		return v.validatePushRecord(ctx, value, fields...)
	case *models.PushRecord:
		return v.validatePushRecord(ctx, *value, fields...)

	case models.CentralRecordInput:
		return v.validateCentralRecord(ctx, value, fields...)
	case *models.CentralRecordInput:
		return v.validateCentralRecord(ctx, *value, fields...)

	case []models.CentralRecordInput:
		if len(value) == 0 {
			return ErrEmptyCentralRecords
		}
		for i, rec := range value {
			if err := v.validateCentralRecord(ctx, rec, fields...); err != nil {
				return fmt.Errorf("validation error at index %d: %w", i, err)
			}
		}
		return nil

	case models.AcknowledgeRequest:
		return v.validateAcknowledgeRequest(ctx, value, fields...)
	case *models.AcknowledgeRequest:
		return v.validateAcknowledgeRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SyncValidator) validateRegisterSiteRequest(_ context.Context, req models.RegisterSiteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSiteID, FieldName, FieldPassword, FieldStores}
	}

	for _, f := range fields {
		switch f {
		case FieldSiteID:
			if req.SiteID <= 0 {
				return ErrInvalidSiteID
			}
		case FieldName:
			if req.Name == "" {
				return ErrEmptySiteName
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		case FieldStores:
			seen := make(map[string]struct{}, len(req.Stores))
			for i, s := range req.Stores {
				if s.StoreID == "" || s.NameID == "" {
					return fmt.Errorf("validation error at index %d: %w", i, ErrInvalidStore)
				}
				if _, ok := seen[s.StoreID]; ok {
					return fmt.Errorf("%w: %s", ErrDuplicateStore, s.StoreID)
				}
				seen[s.StoreID] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncValidator) validatePushBatch(ctx context.Context, batch models.PushBatch, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTotalRemaining, FieldRecords}
	}

	for _, f := range fields {
		switch f {
		case FieldTotalRemaining:
			if batch.TotalRemaining < 0 {
				return ErrNegativeRemaining
			}
		case FieldRecords:
			// push receipts are keyed by sync id and table
			type receipt struct {
				syncID string
				table  models.TableName
			}
			seen := make(map[receipt]struct{}, len(batch.Records))
			for i, rec := range batch.Records {
				if err := v.validatePushRecord(ctx, rec); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
				k := receipt{syncID: rec.SyncID, table: rec.TableName}
				if _, ok := seen[k]; ok {
					return fmt.Errorf("%w: %s (%s)", ErrDuplicateSyncID, rec.SyncID, rec.TableName)
				}
				seen[k] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePushRecord accepts update records without data: a site may push
// a row whose translator produced no body.
func (v *SyncValidator) validatePushRecord(_ context.Context, rec models.PushRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSyncID, FieldTableName, FieldRecordID, FieldAction, FieldRecordData}
	}

	for _, f := range fields {
		switch f {
		case FieldSyncID:
			if rec.SyncID == "" {
				return ErrEmptySyncID
			}
		case FieldTableName:
			if !rec.TableName.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidTableName, rec.TableName)
			}
		case FieldRecordID:
			if rec.RecordID == "" {
				return ErrEmptyRecordID
			}
		case FieldAction:
			if rec.Action != models.PushActionUpdate && rec.Action != models.PushActionDelete {
				return fmt.Errorf("%w: %q", ErrInvalidAction, rec.Action)
			}
		case FieldRecordData:
			if len(rec.RecordData) > 0 && !isJSONObject(rec.RecordData) {
				return ErrInvalidRecordData
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncValidator) validateCentralRecord(_ context.Context, rec models.CentralRecordInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTableName, FieldCentralTable, FieldRecordID, FieldRecordData}
	}

	for _, f := range fields {
		switch f {
		case FieldTableName:
			if !rec.TableName.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidTableName, rec.TableName)
			}
		case FieldCentralTable:
			if rec.TableName.IsRemote() {
				return fmt.Errorf("%w: %s", ErrRemoteTable, rec.TableName)
			}
		case FieldRecordID:
			if rec.RecordID == "" {
				return ErrEmptyRecordID
			}
		case FieldRecordData:
			if len(rec.Data) == 0 {
				return ErrEmptyRecordData
			}
			if !isJSONObject(rec.Data) {
				return ErrInvalidRecordData
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SyncValidator) validateAcknowledgeRequest(_ context.Context, req models.AcknowledgeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSyncIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldSyncIDs:
			for i, id := range req.SyncIDs {
				if id == "" {
					return fmt.Errorf("validation error at index %d: %w", i, ErrEmptyAcknowledgedIDs)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isJSONObject(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '{' && json.Valid(trimmed)
}
