// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PurchaseOrderStatus is the lifecycle state of a purchase order.
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusNew        PurchaseOrderStatus = "NEW"
	PurchaseOrderStatusConfirmed  PurchaseOrderStatus = "CONFIRMED"
	PurchaseOrderStatusAuthorised PurchaseOrderStatus = "AUTHORISED"
	PurchaseOrderStatusFinalised  PurchaseOrderStatus = "FINALISED"
)

// PurchaseOrder is an order placed with an external supplier. Remote data.
type PurchaseOrder struct {
	ID                       string
	PurchaseOrderNumber      int64
	StoreID                  string
	SupplierNameID           string
	CreatedBy                *string
	Status                   PurchaseOrderStatus
	CreatedDatetime          time.Time
	ConfirmedDatetime        *time.Time
	SentDatetime             *time.Time
	TargetMonths             *float64
	Comment                  *string
	Reference                *string
	CurrencyID               *string
	ForeignExchangeRate      *float64
	SupplierDiscountAmount   float64
	DonorID                  *string
	ShippingMethod           *string
	RequestedDeliveryDate    *time.Time
	ExpectedDeliveryDate     *time.Time
	ContractSignedDate       *time.Time
	AdvancePaidDate          *time.Time
	ReceivedAtPortDate       *time.Time
	SupplierAgent            *string
	AuthorisingOfficer1      *string
	AuthorisingOfficer2      *string
	AdditionalInstructions   *string
	HeadingMessage           *string
	FreightConditions        *string
	AgentCommission          *float64
	DocumentCharge           *float64
	CommunicationsCharge     *float64
	InsuranceCharge          *float64
	FreightCharge            *float64
	OrderTotalBeforeDiscount float64
	OrderTotalAfterDiscount  float64
}

func (p *PurchaseOrder) Table() TableName { return PurchaseOrderTable }
func (p *PurchaseOrder) RecordID() string { return p.ID }

func (p *PurchaseOrder) Columns() []string {
	return []string{
		"id", "purchase_order_number", "store_id", "supplier_name_id", "created_by", "status",
		"created_datetime", "confirmed_datetime", "sent_datetime", "target_months", "comment",
		"reference", "currency_id", "foreign_exchange_rate", "supplier_discount_amount", "donor_id",
		"shipping_method", "requested_delivery_date", "expected_delivery_date", "contract_signed_date",
		"advance_paid_date", "received_at_port_date", "supplier_agent", "authorising_officer_1",
		"authorising_officer_2", "additional_instructions", "heading_message", "freight_conditions",
		"agent_commission", "document_charge", "communications_charge", "insurance_charge",
		"freight_charge", "order_total_before_discount", "order_total_after_discount",
	}
}

func (p *PurchaseOrder) Values() []any {
	return []any{
		p.ID, p.PurchaseOrderNumber, p.StoreID, p.SupplierNameID, p.CreatedBy, string(p.Status),
		p.CreatedDatetime, p.ConfirmedDatetime, p.SentDatetime, p.TargetMonths, p.Comment,
		p.Reference, p.CurrencyID, p.ForeignExchangeRate, p.SupplierDiscountAmount, p.DonorID,
		p.ShippingMethod, p.RequestedDeliveryDate, p.ExpectedDeliveryDate, p.ContractSignedDate,
		p.AdvancePaidDate, p.ReceivedAtPortDate, p.SupplierAgent, p.AuthorisingOfficer1,
		p.AuthorisingOfficer2, p.AdditionalInstructions, p.HeadingMessage, p.FreightConditions,
		p.AgentCommission, p.DocumentCharge, p.CommunicationsCharge, p.InsuranceCharge,
		p.FreightCharge, p.OrderTotalBeforeDiscount, p.OrderTotalAfterDiscount,
	}
}

func (p *PurchaseOrder) ScanTargets() []any {
	return []any{
		&p.ID, &p.PurchaseOrderNumber, &p.StoreID, &p.SupplierNameID, &p.CreatedBy, (*string)(&p.Status),
		&p.CreatedDatetime, &p.ConfirmedDatetime, &p.SentDatetime, &p.TargetMonths, &p.Comment,
		&p.Reference, &p.CurrencyID, &p.ForeignExchangeRate, &p.SupplierDiscountAmount, &p.DonorID,
		&p.ShippingMethod, &p.RequestedDeliveryDate, &p.ExpectedDeliveryDate, &p.ContractSignedDate,
		&p.AdvancePaidDate, &p.ReceivedAtPortDate, &p.SupplierAgent, &p.AuthorisingOfficer1,
		&p.AuthorisingOfficer2, &p.AdditionalInstructions, &p.HeadingMessage, &p.FreightConditions,
		&p.AgentCommission, &p.DocumentCharge, &p.CommunicationsCharge, &p.InsuranceCharge,
		&p.FreightCharge, &p.OrderTotalBeforeDiscount, &p.OrderTotalAfterDiscount,
	}
}

func (p *PurchaseOrder) ChangelogStoreID() *string { return &p.StoreID }
func (p *PurchaseOrder) ChangelogNameID() *string  { return &p.SupplierNameID }

// PurchaseOrderLine is one item of a purchase order. Remote data.
type PurchaseOrderLine struct {
	ID                         string
	PurchaseOrderID            string
	StoreID                    string
	LineNumber                 int64
	ItemID                     string
	RequestedPackSize          float64
	RequestedNumberOfUnits     float64
	AdjustedNumberOfUnits      *float64
	ReceivedNumberOfUnits      float64
	RequestedDeliveryDate      *time.Time
	ExpectedDeliveryDate       *time.Time
	PricePerUnitBeforeDiscount float64
	PricePerUnitAfterDiscount  float64
	Comment                    *string
}

func (l *PurchaseOrderLine) Table() TableName { return PurchaseOrderLineTable }
func (l *PurchaseOrderLine) RecordID() string { return l.ID }

func (l *PurchaseOrderLine) Columns() []string {
	return []string{
		"id", "purchase_order_id", "store_id", "line_number", "item_id", "requested_pack_size",
		"requested_number_of_units", "adjusted_number_of_units", "received_number_of_units",
		"requested_delivery_date", "expected_delivery_date", "price_per_unit_before_discount",
		"price_per_unit_after_discount", "comment",
	}
}

func (l *PurchaseOrderLine) Values() []any {
	return []any{
		l.ID, l.PurchaseOrderID, l.StoreID, l.LineNumber, l.ItemID, l.RequestedPackSize,
		l.RequestedNumberOfUnits, l.AdjustedNumberOfUnits, l.ReceivedNumberOfUnits,
		l.RequestedDeliveryDate, l.ExpectedDeliveryDate, l.PricePerUnitBeforeDiscount,
		l.PricePerUnitAfterDiscount, l.Comment,
	}
}

func (l *PurchaseOrderLine) ScanTargets() []any {
	return []any{
		&l.ID, &l.PurchaseOrderID, &l.StoreID, &l.LineNumber, &l.ItemID, &l.RequestedPackSize,
		&l.RequestedNumberOfUnits, &l.AdjustedNumberOfUnits, &l.ReceivedNumberOfUnits,
		&l.RequestedDeliveryDate, &l.ExpectedDeliveryDate, &l.PricePerUnitBeforeDiscount,
		&l.PricePerUnitAfterDiscount, &l.Comment,
	}
}

func (l *PurchaseOrderLine) ChangelogStoreID() *string { return &l.StoreID }
func (l *PurchaseOrderLine) ChangelogNameID() *string  { return nil }
