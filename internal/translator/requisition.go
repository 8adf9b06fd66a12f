// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package translator

import (
	"context"
	"fmt"

	"github.com/MKhiriev/site-sync/internal/legacy"
	"github.com/MKhiriev/site-sync/models"
)

const (
	legacyRequisitionRequest  = "request"
	legacyRequisitionResponse = "response"

	// daysPerMonth converts the legacy daily usage into a monthly one.
	daysPerMonth = 30
)

type legacyRequisition struct {
	ID                  string           `json:"ID"`
	SerialNumber        legacy.Int       `json:"serial_number"`
	NameID              string           `json:"name_ID"`
	StoreID             string           `json:"store_ID"`
	Type                string           `json:"type"`
	Status              string           `json:"status"`
	DateEntered         legacy.Date      `json:"date_entered"`
	DateStockTake       legacy.ZeroDate  `json:"date_stock_take"`
	DateOrderReceived   legacy.ZeroDate  `json:"date_order_received"`
	RequesterReference  legacy.String    `json:"requester_reference"`
	LinkedRequisitionID legacy.String    `json:"linked_requisition_id"`
	ThresholdMOS        legacy.Float     `json:"thresholdMOS"`
	MaxMOS              legacy.Float     `json:"max_months_of_stock"`
	DaysToSupply        legacy.Int       `json:"daysToSupply"`
	Colour              legacy.Int       `json:"colour"`
	Comment             legacy.String    `json:"comment"`
	UserID              legacy.String    `json:"user_ID"`
	FinalisedDatetime   *legacy.DateTime `json:"om_finalised_datetime"`
}

// Legacy requisition colours are indexes into a fixed palette.
var requisitionColours = []string{
	1: "#1A1919",
	2: "#F57231",
	3: "#F982D8",
	4: "#F40E29",
	5: "#8AD6FE",
	6: "#3B10FD",
	7: "#219205",
	8: "#8C000D",
}

func colourFromLegacy(i legacy.Int) *string {
	if i <= 0 || int(i) >= len(requisitionColours) {
		return nil
	}
	return ptr(requisitionColours[i])
}

// colourToLegacy drops colours outside of the palette.
func colourToLegacy(hex *string) legacy.Int {
	if hex == nil {
		return 0
	}
	for i, c := range requisitionColours {
		if c != "" && c == *hex {
			return legacy.Int(i)
		}
	}
	return 0
}

// requisitionStatusFromLegacy maps statuses per type: "cn" is a sent
// request but a new response.
func requisitionStatusFromLegacy(t models.RequisitionType, status string) (models.RequisitionStatus, bool) {
	switch status {
	case "sg":
		if t == models.RequisitionTypeResponse {
			return models.RequisitionStatusNew, true
		}
		return models.RequisitionStatusDraft, true
	case "cn":
		if t == models.RequisitionTypeResponse {
			return models.RequisitionStatusNew, true
		}
		return models.RequisitionStatusSent, true
	case "fn":
		return models.RequisitionStatusFinalised, true
	}
	return "", false
}

func requisitionStatusToLegacy(s models.RequisitionStatus) string {
	switch s {
	case models.RequisitionStatusDraft:
		return "sg"
	case models.RequisitionStatusNew, models.RequisitionStatusSent:
		return "cn"
	}
	return "fn"
}

// NewRequisitionTranslator translates requisitions. Legacy stock history,
// import and report requisitions have no domain counterpart and are
// ignored.
func NewRequisitionTranslator() Translator {
	return &tableTranslator[legacyRequisition]{
		table: models.RequisitionTable,
		deps:  []models.TableName{models.NameTable, models.StoreTable},
		pull: func(_ context.Context, _ RowReader, l legacyRequisition) (PullResult, error) {
			var reqType models.RequisitionType
			switch l.Type {
			case legacyRequisitionRequest:
				reqType = models.RequisitionTypeRequest
			case legacyRequisitionResponse:
				reqType = models.RequisitionTypeResponse
			default:
				return IgnoredPull("unsupported requisition type " + l.Type), nil
			}

			status, ok := requisitionStatusFromLegacy(reqType, l.Status)
			if !ok {
				return PullResult{}, fmt.Errorf("%w: requisition %s status %q", ErrUnsupportedValue, l.ID, l.Status)
			}

			maxMOS := float64(l.MaxMOS)
			if maxMOS == 0 {
				maxMOS = float64(l.DaysToSupply) / daysPerMonth
			}

			return upsert(&models.Requisition{
				ID:                  l.ID,
				RequisitionNumber:   int64(l.SerialNumber),
				NameID:              l.NameID,
				StoreID:             l.StoreID,
				UserID:              l.UserID.Ptr(),
				Type:                reqType,
				Status:              status,
				CreatedDatetime:     l.DateEntered.Time,
				SentDatetime:        l.DateOrderReceived.Ptr(),
				FinalisedDatetime:   l.FinalisedDatetime.TimePtr(),
				Colour:              colourFromLegacy(l.Colour),
				Comment:             l.Comment.Ptr(),
				TheirReference:      l.RequesterReference.Ptr(),
				MaxMonthsOfStock:    maxMOS,
				MinMonthsOfStock:    float64(l.ThresholdMOS),
				LinkedRequisitionID: l.LinkedRequisitionID.Ptr(),
			}), nil
		},
		push: func(_ context.Context, _ RowReader, row models.Row) (legacyRequisition, route, error) {
			r, err := rowAs[*models.Requisition](row)
			if err != nil {
				return legacyRequisition{}, route{}, err
			}

			reqType := legacyRequisitionRequest
			if r.Type == models.RequisitionTypeResponse {
				reqType = legacyRequisitionResponse
			}

			return legacyRequisition{
				ID:                  r.ID,
				SerialNumber:        legacy.Int(r.RequisitionNumber),
				NameID:              r.NameID,
				StoreID:             r.StoreID,
				Type:                reqType,
				Status:              requisitionStatusToLegacy(r.Status),
				DateEntered:         legacy.DateOf(r.CreatedDatetime),
				DateOrderReceived:   legacy.ZeroDateOf(r.SentDatetime),
				RequesterReference:  legacy.StringOf(r.TheirReference),
				LinkedRequisitionID: legacy.StringOf(r.LinkedRequisitionID),
				ThresholdMOS:        legacy.Float(r.MinMonthsOfStock),
				MaxMOS:              legacy.Float(r.MaxMonthsOfStock),
				DaysToSupply:        legacy.Int(r.MaxMonthsOfStock * daysPerMonth),
				Colour:              colourToLegacy(r.Colour),
				Comment:             legacy.StringOf(r.Comment),
				UserID:              legacy.StringOf(r.UserID),
				FinalisedDatetime:   legacy.DateTimeOf(r.FinalisedDatetime),
			}, route{StoreID: &r.StoreID, NameID: &r.NameID}, nil
		},
	}
}

type legacyRequisitionLine struct {
	ID                string           `json:"ID"`
	RequisitionID     string           `json:"requisition_ID"`
	ItemID            string           `json:"item_ID"`
	CustStockOrder    legacy.Float     `json:"Cust_stock_order"`
	SuggestedQuantity legacy.Float     `json:"suggested_quantity"`
	ActualQuan        legacy.Float     `json:"actualQuan"`
	ApprovedQuantity  legacy.Float     `json:"approved_quantity"`
	StockOnHand       legacy.Float     `json:"stock_on_hand"`
	DailyUsage        legacy.Float     `json:"daily_usage"`
	Comment           legacy.String    `json:"comment"`
	SnapshotDatetime  *legacy.DateTime `json:"om_snapshot_datetime"`
}

// NewRequisitionLineTranslator translates requisition lines. Lines are
// routed by the store of their requisition.
func NewRequisitionLineTranslator() Translator {
	return &tableTranslator[legacyRequisitionLine]{
		table: models.RequisitionLineTable,
		deps:  []models.TableName{models.RequisitionTable, models.ItemTable},
		pull: func(_ context.Context, _ RowReader, l legacyRequisitionLine) (PullResult, error) {
			return upsert(&models.RequisitionLine{
				ID:                        l.ID,
				RequisitionID:             l.RequisitionID,
				ItemID:                    l.ItemID,
				RequestedQuantity:         float64(l.CustStockOrder),
				SuggestedQuantity:         float64(l.SuggestedQuantity),
				SupplyQuantity:            float64(l.ActualQuan),
				ApprovedQuantity:          float64(l.ApprovedQuantity),
				AvailableStockOnHand:      float64(l.StockOnHand),
				AverageMonthlyConsumption: float64(l.DailyUsage) * daysPerMonth,
				Comment:                   l.Comment.Ptr(),
				SnapshotDatetime:          l.SnapshotDatetime.TimePtr(),
			}), nil
		},
		push: func(ctx context.Context, rows RowReader, row models.Row) (legacyRequisitionLine, route, error) {
			line, err := rowAs[*models.RequisitionLine](row)
			if err != nil {
				return legacyRequisitionLine{}, route{}, err
			}
			r, err := parentStore(ctx, rows, models.RequisitionTable, line.RequisitionID)
			if err != nil {
				return legacyRequisitionLine{}, route{}, err
			}

			return legacyRequisitionLine{
				ID:                line.ID,
				RequisitionID:     line.RequisitionID,
				ItemID:            line.ItemID,
				CustStockOrder:    legacy.Float(line.RequestedQuantity),
				SuggestedQuantity: legacy.Float(line.SuggestedQuantity),
				ActualQuan:        legacy.Float(line.SupplyQuantity),
				ApprovedQuantity:  legacy.Float(line.ApprovedQuantity),
				StockOnHand:       legacy.Float(line.AvailableStockOnHand),
				DailyUsage:        legacy.Float(line.AverageMonthlyConsumption / daysPerMonth),
				Comment:           legacy.StringOf(line.Comment),
				SnapshotDatetime:  legacy.DateTimeOf(line.SnapshotDatetime),
			}, r, nil
		},
	}
}
