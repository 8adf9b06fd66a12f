// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RequisitionType tells which side of an order a requisition is.
type RequisitionType string

const (
	RequisitionTypeRequest  RequisitionType = "REQUEST"
	RequisitionTypeResponse RequisitionType = "RESPONSE"
)

// RequisitionStatus is the lifecycle state of a requisition.
type RequisitionStatus string

const (
	RequisitionStatusDraft     RequisitionStatus = "DRAFT"
	RequisitionStatusNew       RequisitionStatus = "NEW"
	RequisitionStatusSent      RequisitionStatus = "SENT"
	RequisitionStatusFinalised RequisitionStatus = "FINALISED"
)

// Requisition is an internal order between stores. Remote data.
type Requisition struct {
	ID                   string
	RequisitionNumber    int64
	NameID               string
	StoreID              string
	UserID               *string
	Type                 RequisitionType
	Status               RequisitionStatus
	CreatedDatetime      time.Time
	SentDatetime         *time.Time
	FinalisedDatetime    *time.Time
	ExpectedDeliveryDate *time.Time
	Colour               *string
	Comment              *string
	TheirReference       *string
	MaxMonthsOfStock     float64
	MinMonthsOfStock     float64
	LinkedRequisitionID  *string
	ApprovalStatus       *string
	ProgramID            *string
	PeriodID             *string
	OrderType            *string
}

func (r *Requisition) Table() TableName { return RequisitionTable }
func (r *Requisition) RecordID() string { return r.ID }

func (r *Requisition) Columns() []string {
	return []string{
		"id", "requisition_number", "name_id", "store_id", "user_id", "type", "status",
		"created_datetime", "sent_datetime", "finalised_datetime", "expected_delivery_date",
		"colour", "comment", "their_reference", "max_months_of_stock", "min_months_of_stock",
		"linked_requisition_id", "approval_status", "program_id", "period_id", "order_type",
	}
}

func (r *Requisition) Values() []any {
	return []any{
		r.ID, r.RequisitionNumber, r.NameID, r.StoreID, r.UserID, string(r.Type), string(r.Status),
		r.CreatedDatetime, r.SentDatetime, r.FinalisedDatetime, r.ExpectedDeliveryDate,
		r.Colour, r.Comment, r.TheirReference, r.MaxMonthsOfStock, r.MinMonthsOfStock,
		r.LinkedRequisitionID, r.ApprovalStatus, r.ProgramID, r.PeriodID, r.OrderType,
	}
}

func (r *Requisition) ScanTargets() []any {
	return []any{
		&r.ID, &r.RequisitionNumber, &r.NameID, &r.StoreID, &r.UserID, (*string)(&r.Type), (*string)(&r.Status),
		&r.CreatedDatetime, &r.SentDatetime, &r.FinalisedDatetime, &r.ExpectedDeliveryDate,
		&r.Colour, &r.Comment, &r.TheirReference, &r.MaxMonthsOfStock, &r.MinMonthsOfStock,
		&r.LinkedRequisitionID, &r.ApprovalStatus, &r.ProgramID, &r.PeriodID, &r.OrderType,
	}
}

func (r *Requisition) ChangelogStoreID() *string { return &r.StoreID }
func (r *Requisition) ChangelogNameID() *string  { return &r.NameID }

// RequisitionLine is one item of a requisition. Remote data.
type RequisitionLine struct {
	ID                        string
	RequisitionID             string
	ItemID                    string
	RequestedQuantity         float64
	SuggestedQuantity         float64
	SupplyQuantity            float64
	ApprovedQuantity          float64
	AvailableStockOnHand      float64
	AverageMonthlyConsumption float64
	Comment                   *string
	SnapshotDatetime          *time.Time
}

func (l *RequisitionLine) Table() TableName { return RequisitionLineTable }
func (l *RequisitionLine) RecordID() string { return l.ID }

func (l *RequisitionLine) Columns() []string {
	return []string{
		"id", "requisition_id", "item_id", "requested_quantity", "suggested_quantity",
		"supply_quantity", "approved_quantity", "available_stock_on_hand",
		"average_monthly_consumption", "comment", "snapshot_datetime",
	}
}

func (l *RequisitionLine) Values() []any {
	return []any{
		l.ID, l.RequisitionID, l.ItemID, l.RequestedQuantity, l.SuggestedQuantity,
		l.SupplyQuantity, l.ApprovedQuantity, l.AvailableStockOnHand,
		l.AverageMonthlyConsumption, l.Comment, l.SnapshotDatetime,
	}
}

func (l *RequisitionLine) ScanTargets() []any {
	return []any{
		&l.ID, &l.RequisitionID, &l.ItemID, &l.RequestedQuantity, &l.SuggestedQuantity,
		&l.SupplyQuantity, &l.ApprovedQuantity, &l.AvailableStockOnHand,
		&l.AverageMonthlyConsumption, &l.Comment, &l.SnapshotDatetime,
	}
}
