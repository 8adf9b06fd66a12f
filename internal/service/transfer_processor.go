// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/site-sync/internal/logger"
	"github.com/MKhiriev/site-sync/internal/store"
	"github.com/MKhiriev/site-sync/internal/utils"
	"github.com/MKhiriev/site-sync/models"
)

const transferProcessorBatchSize = 100

// RequisitionTransferProcessor answers sent request requisitions addressed
// to a store of this site with a response requisition in that store.
type RequisitionTransferProcessor struct {
	storage store.SiteStorage
	ids     utils.IDGenerator
	now     func() time.Time
}

// NewRequisitionTransferProcessor creates the processor.
func NewRequisitionTransferProcessor(storage store.SiteStorage, ids utils.IDGenerator) *RequisitionTransferProcessor {
	return &RequisitionTransferProcessor{
		storage: storage,
		ids:     ids,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (p *RequisitionTransferProcessor) Name() string {
	return "requisition_transfer"
}

// Process walks the requisition changelog after the processor cursor. Each
// batch and the cursor after it are written in one transaction.
func (p *RequisitionTransferProcessor) Process(ctx context.Context) error {
	kv := p.storage.Repositories().KeyValue

	siteID, err := kv.GetInt(ctx, models.KeySettingsSyncSiteID)
	if err != nil {
		return fmt.Errorf("load site id: %w", err)
	}
	if siteID == nil {
		return nil
	}

	filter := models.NewChangelogFilter().
		WithTableNames(models.RequisitionTable).
		WithAction(models.RowActionUpsert)

	for {
		cursor, err := getCursor(ctx, kv, models.KeyTransferProcessorCursor)
		if err != nil {
			return err
		}

		entries, err := p.storage.Repositories().Changelog.Changelogs(ctx, cursor, transferProcessorBatchSize, filter)
		if err != nil {
			return fmt.Errorf("read requisition changelog: %w", err)
		}
		if len(entries) == 0 {
			return nil
		}

		err = p.storage.Transaction(ctx, func(ctx context.Context, repos *store.SiteRepositories) error {
			for _, entry := range entries {
				if err := p.processRequisition(ctx, repos.Rows, *siteID, entry.RecordID); err != nil {
					return fmt.Errorf("requisition %s: %w", entry.RecordID, err)
				}
			}
			return repos.KeyValue.SetInt(ctx, models.KeyTransferProcessorCursor, entries[len(entries)-1].Cursor+1)
		})
		if err != nil {
			return err
		}
	}
}

func (p *RequisitionTransferProcessor) processRequisition(ctx context.Context, rows store.RowRepository, siteID int64, id string) error {
	log := logger.FromContext(ctx)

	request, err := findRow[*models.Requisition](ctx, rows, models.RequisitionTable, id)
	if errors.Is(err, store.ErrRowNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if request.Type != models.RequisitionTypeRequest ||
		request.Status != models.RequisitionStatusSent ||
		request.LinkedRequisitionID != nil {
		return nil
	}

	supplier, err := p.activeStore(ctx, rows, siteID, request.NameID)
	if err != nil || supplier == nil {
		return err
	}

	existing, err := rows.FindBy(ctx, models.RequisitionTable, "linked_requisition_id", request.ID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	requester, err := findRow[*models.Store](ctx, rows, models.StoreTable, request.StoreID)
	if errors.Is(err, store.ErrRowNotFound) {
		log.Warn().
			Str("func", "RequisitionTransferProcessor.processRequisition").
			Str("requisition_id", request.ID).
			Str("store_id", request.StoreID).
			Msg("requesting store is unknown, response not created")
		return nil
	}
	if err != nil {
		return err
	}

	number, err := p.nextRequisitionNumber(ctx, rows, supplier.ID)
	if err != nil {
		return err
	}

	response := &models.Requisition{
		ID:                   p.ids.Generate(),
		RequisitionNumber:    number,
		NameID:               requester.NameID,
		StoreID:              supplier.ID,
		Type:                 models.RequisitionTypeResponse,
		Status:               models.RequisitionStatusNew,
		CreatedDatetime:      p.now(),
		ExpectedDeliveryDate: request.ExpectedDeliveryDate,
		Comment:              request.Comment,
		TheirReference:       request.TheirReference,
		MaxMonthsOfStock:     request.MaxMonthsOfStock,
		MinMonthsOfStock:     request.MinMonthsOfStock,
		LinkedRequisitionID:  &request.ID,
		ProgramID:            request.ProgramID,
		PeriodID:             request.PeriodID,
		OrderType:            request.OrderType,
	}

	meta := models.LocalChange()
	if err = rows.Upsert(ctx, response, meta); err != nil {
		return fmt.Errorf("create response: %w", err)
	}
	if err = p.copyLines(ctx, rows, request.ID, response.ID, meta); err != nil {
		return err
	}

	request.LinkedRequisitionID = &response.ID
	if err = rows.Upsert(ctx, request, meta); err != nil {
		return fmt.Errorf("link request: %w", err)
	}

	log.Info().
		Str("func", "RequisitionTransferProcessor.processRequisition").
		Str("request_id", request.ID).
		Str("response_id", response.ID).
		Str("store_id", supplier.ID).
		Msg("response requisition created")
	return nil
}

// activeStore returns the enabled store of this site owned by nameID, or
// nil when the requisition is addressed elsewhere.
func (p *RequisitionTransferProcessor) activeStore(ctx context.Context, rows store.RowRepository, siteID int64, nameID string) (*models.Store, error) {
	found, err := rows.FindBy(ctx, models.StoreTable, "name_id", nameID)
	if err != nil {
		return nil, err
	}
	for _, row := range found {
		s, ok := row.(*models.Store)
		if ok && s.SiteID == siteID && !s.Disabled {
			return s, nil
		}
	}
	return nil, nil
}

func (p *RequisitionTransferProcessor) nextRequisitionNumber(ctx context.Context, rows store.RowRepository, storeID string) (int64, error) {
	found, err := rows.FindBy(ctx, models.RequisitionTable, "store_id", storeID)
	if err != nil {
		return 0, err
	}
	var last int64
	for _, row := range found {
		if r, ok := row.(*models.Requisition); ok && r.RequisitionNumber > last {
			last = r.RequisitionNumber
		}
	}
	return last + 1, nil
}

func (p *RequisitionTransferProcessor) copyLines(ctx context.Context, rows store.RowRepository, requestID, responseID string, meta models.ChangeMeta) error {
	lines, err := rows.FindBy(ctx, models.RequisitionLineTable, "requisition_id", requestID)
	if err != nil {
		return fmt.Errorf("read request lines: %w", err)
	}
	for _, row := range lines {
		line, ok := row.(*models.RequisitionLine)
		if !ok {
			continue
		}
		copied := &models.RequisitionLine{
			ID:                        p.ids.Generate(),
			RequisitionID:             responseID,
			ItemID:                    line.ItemID,
			RequestedQuantity:         line.RequestedQuantity,
			SuggestedQuantity:         line.SuggestedQuantity,
			AvailableStockOnHand:      line.AvailableStockOnHand,
			AverageMonthlyConsumption: line.AverageMonthlyConsumption,
			Comment:                   line.Comment,
			SnapshotDatetime:          line.SnapshotDatetime,
		}
		if err = rows.Upsert(ctx, copied, meta); err != nil {
			return fmt.Errorf("copy line %s: %w", line.ID, err)
		}
	}
	return nil
}

func findRow[T models.Row](ctx context.Context, rows store.RowRepository, table models.TableName, id string) (T, error) {
	var zero T
	row, err := rows.Find(ctx, table, id)
	if err != nil {
		return zero, err
	}
	typed, ok := row.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected row type %T for %s", row, table)
	}
	return typed, nil
}
