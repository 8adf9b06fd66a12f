// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/site-sync/internal/store"
	"github.com/MKhiriev/site-sync/models"
)

type seqIDs struct {
	n int
}

func (s *seqIDs) Generate() string {
	s.n++
	return fmt.Sprintf("gen-%d", s.n)
}

// transferFixture stores a supplying store on site 7 and a requesting store
// on site 9, and makes this database site 7.
func transferFixture(t *testing.T) store.SiteStorage {
	t.Helper()
	storage := newTestSiteStorage(t)
	ctx := context.Background()
	repos := storage.Repositories()

	require.NoError(t, repos.KeyValue.SetInt(ctx, models.KeySettingsSyncSiteID, 7))
	central := models.SyncChange(nil)
	require.NoError(t, repos.Rows.Upsert(ctx, &models.Store{ID: "supplier", NameID: "n-supplier", Code: "SUP", SiteID: 7, StoreMode: models.StoreModeStore}, central))
	require.NoError(t, repos.Rows.Upsert(ctx, &models.Store{ID: "requester", NameID: "n-requester", Code: "REQ", SiteID: 9, StoreMode: models.StoreModeStore}, central))
	return storage
}

func upsertRequest(t *testing.T, s store.SiteStorage, id, supplierNameID string, status models.RequisitionStatus) {
	t.Helper()
	ctx := context.Background()
	meta := models.SyncChange(int64Ptr(9))
	comment := "urgent"

	require.NoError(t, s.Repositories().Rows.Upsert(ctx, &models.Requisition{
		ID:                id,
		RequisitionNumber: 12,
		NameID:            supplierNameID,
		StoreID:           "requester",
		Type:              models.RequisitionTypeRequest,
		Status:            status,
		CreatedDatetime:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Comment:           &comment,
		MaxMonthsOfStock:  3,
		MinMonthsOfStock:  1,
	}, meta))
	for i, qty := range []float64{10, 25} {
		require.NoError(t, s.Repositories().Rows.Upsert(ctx, &models.RequisitionLine{
			ID:                fmt.Sprintf("%s-line%d", id, i),
			RequisitionID:     id,
			ItemID:            fmt.Sprintf("item%d", i),
			RequestedQuantity: qty,
		}, meta))
	}
}

func responsesTo(t *testing.T, s store.SiteStorage, requestID string) []*models.Requisition {
	t.Helper()
	rows, err := s.Repositories().Rows.FindBy(context.Background(), models.RequisitionTable, "linked_requisition_id", requestID)
	require.NoError(t, err)

	var out []*models.Requisition
	for _, row := range rows {
		if r := row.(*models.Requisition); r.Type == models.RequisitionTypeResponse {
			out = append(out, r)
		}
	}
	return out
}

// ── RequisitionTransferProcessor ────────────────────────────────────────────

func TestTransferProcessor_CreatesResponse(t *testing.T) {
	storage := transferFixture(t)
	ctx := context.Background()
	upsertRequest(t, storage, "req1", "n-supplier", models.RequisitionStatusSent)

	p := NewRequisitionTransferProcessor(storage, &seqIDs{})
	require.NoError(t, p.Process(ctx))

	responses := responsesTo(t, storage, "req1")
	require.Len(t, responses, 1)
	response := responses[0]
	assert.Equal(t, "gen-1", response.ID)
	assert.Equal(t, "supplier", response.StoreID)
	assert.Equal(t, "n-requester", response.NameID)
	assert.Equal(t, models.RequisitionStatusNew, response.Status)
	assert.Equal(t, int64(1), response.RequisitionNumber)
	assert.Equal(t, float64(3), response.MaxMonthsOfStock)
	require.NotNil(t, response.Comment)
	assert.Equal(t, "urgent", *response.Comment)

	lines, err := storage.Repositories().Rows.FindBy(ctx, models.RequisitionLineTable, "requisition_id", response.ID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	quantities := []float64{lines[0].(*models.RequisitionLine).RequestedQuantity, lines[1].(*models.RequisitionLine).RequestedQuantity}
	assert.ElementsMatch(t, []float64{10, 25}, quantities)

	request, err := storage.Repositories().Rows.Find(ctx, models.RequisitionTable, "req1")
	require.NoError(t, err)
	require.NotNil(t, request.(*models.Requisition).LinkedRequisitionID)
	assert.Equal(t, response.ID, *request.(*models.Requisition).LinkedRequisitionID)

	// the response is a local change and gets pushed
	count, err := storage.Repositories().Changelog.Count(ctx, 0, models.NewChangelogFilter().
		WithIsSyncUpdate(false).
		WithTableNames(models.RequisitionTable))
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestTransferProcessor_IsIdempotent(t *testing.T) {
	storage := transferFixture(t)
	ctx := context.Background()
	upsertRequest(t, storage, "req1", "n-supplier", models.RequisitionStatusSent)

	p := NewRequisitionTransferProcessor(storage, &seqIDs{})
	require.NoError(t, p.Process(ctx))
	require.NoError(t, p.Process(ctx))

	assert.Len(t, responsesTo(t, storage, "req1"), 1)

	cursor := intValue(t, storage, models.KeyTransferProcessorCursor)
	require.NotNil(t, cursor)
	latest, err := storage.Repositories().Changelog.LatestCursor(ctx)
	require.NoError(t, err)
	assert.Equal(t, latest+1, *cursor)
}

func TestTransferProcessor_SkipsOtherRequisitions(t *testing.T) {
	tests := []struct {
		name           string
		supplierNameID string
		status         models.RequisitionStatus
	}{
		{"draft request", "n-supplier", models.RequisitionStatusDraft},
		{"addressed to another site", "n-requester", models.RequisitionStatusSent},
		{"unknown supplier", "n-nobody", models.RequisitionStatusSent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := transferFixture(t)
			upsertRequest(t, storage, "req1", tt.supplierNameID, tt.status)

			p := NewRequisitionTransferProcessor(storage, &seqIDs{})
			require.NoError(t, p.Process(context.Background()))
			assert.Empty(t, responsesTo(t, storage, "req1"))
		})
	}
}

func TestTransferProcessor_WithoutSiteIdentity(t *testing.T) {
	storage := newTestSiteStorage(t)
	p := NewRequisitionTransferProcessor(storage, &seqIDs{})

	require.NoError(t, p.Process(context.Background()))
	assert.Nil(t, intValue(t, storage, models.KeyTransferProcessorCursor))
	assert.Equal(t, "requisition_transfer", p.Name())
}
