// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// InvoiceType tells the direction of a stock movement.
type InvoiceType string

const (
	InvoiceTypeOutboundShipment InvoiceType = "OUTBOUND_SHIPMENT"
	InvoiceTypeInboundShipment  InvoiceType = "INBOUND_SHIPMENT"
	InvoiceTypeInventoryAdjust  InvoiceType = "INVENTORY_ADJUSTMENT"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusNew       InvoiceStatus = "NEW"
	InvoiceStatusAllocated InvoiceStatus = "ALLOCATED"
	InvoiceStatusPicked    InvoiceStatus = "PICKED"
	InvoiceStatusShipped   InvoiceStatus = "SHIPPED"
	InvoiceStatusDelivered InvoiceStatus = "DELIVERED"
	InvoiceStatusVerified  InvoiceStatus = "VERIFIED"
)

// Invoice is a shipment or an adjustment of stock in a store. Remote data.
type Invoice struct {
	ID                 string
	InvoiceNumber      int64
	NameID             string
	StoreID            string
	UserID             *string
	Type               InvoiceType
	Status             InvoiceStatus
	OnHold             bool
	Comment            *string
	TheirReference     *string
	TransportReference *string
	CreatedDatetime    time.Time
	AllocatedDatetime  *time.Time
	PickedDatetime     *time.Time
	ShippedDatetime    *time.Time
	DeliveredDatetime  *time.Time
	VerifiedDatetime   *time.Time
	Colour             *string
	RequisitionID      *string
	LinkedInvoiceID    *string
	PurchaseOrderID    *string
	TaxPercentage      *float64
}

func (i *Invoice) Table() TableName { return InvoiceTable }
func (i *Invoice) RecordID() string { return i.ID }

func (i *Invoice) Columns() []string {
	return []string{
		"id", "invoice_number", "name_id", "store_id", "user_id", "type", "status", "on_hold",
		"comment", "their_reference", "transport_reference", "created_datetime",
		"allocated_datetime", "picked_datetime", "shipped_datetime", "delivered_datetime",
		"verified_datetime", "colour", "requisition_id", "linked_invoice_id", "purchase_order_id",
		"tax_percentage",
	}
}

func (i *Invoice) Values() []any {
	return []any{
		i.ID, i.InvoiceNumber, i.NameID, i.StoreID, i.UserID, string(i.Type), string(i.Status), i.OnHold,
		i.Comment, i.TheirReference, i.TransportReference, i.CreatedDatetime,
		i.AllocatedDatetime, i.PickedDatetime, i.ShippedDatetime, i.DeliveredDatetime,
		i.VerifiedDatetime, i.Colour, i.RequisitionID, i.LinkedInvoiceID, i.PurchaseOrderID,
		i.TaxPercentage,
	}
}

func (i *Invoice) ScanTargets() []any {
	return []any{
		&i.ID, &i.InvoiceNumber, &i.NameID, &i.StoreID, &i.UserID, (*string)(&i.Type), (*string)(&i.Status), &i.OnHold,
		&i.Comment, &i.TheirReference, &i.TransportReference, &i.CreatedDatetime,
		&i.AllocatedDatetime, &i.PickedDatetime, &i.ShippedDatetime, &i.DeliveredDatetime,
		&i.VerifiedDatetime, &i.Colour, &i.RequisitionID, &i.LinkedInvoiceID, &i.PurchaseOrderID,
		&i.TaxPercentage,
	}
}

func (i *Invoice) ChangelogStoreID() *string { return &i.StoreID }
func (i *Invoice) ChangelogNameID() *string  { return &i.NameID }

// InvoiceLineType tells how a line affects stock.
type InvoiceLineType string

const (
	InvoiceLineTypeStockIn     InvoiceLineType = "STOCK_IN"
	InvoiceLineTypeStockOut    InvoiceLineType = "STOCK_OUT"
	InvoiceLineTypeUnallocated InvoiceLineType = "UNALLOCATED_STOCK"
	InvoiceLineTypeService     InvoiceLineType = "SERVICE"
)

// InvoiceLine is one item movement of an invoice. Remote data.
type InvoiceLine struct {
	ID               string
	InvoiceID        string
	ItemID           string
	ItemName         string
	ItemCode         string
	StockLineID      *string
	Batch            *string
	ExpiryDate       *time.Time
	PackSize         float64
	CostPricePerPack float64
	SellPricePerPack float64
	NumberOfPacks    float64
	Type             InvoiceLineType
	Note             *string
	TotalBeforeTax   float64
	TotalAfterTax    float64
}

func (l *InvoiceLine) Table() TableName { return InvoiceLineTable }
func (l *InvoiceLine) RecordID() string { return l.ID }

func (l *InvoiceLine) Columns() []string {
	return []string{
		"id", "invoice_id", "item_id", "item_name", "item_code", "stock_line_id", "batch",
		"expiry_date", "pack_size", "cost_price_per_pack", "sell_price_per_pack",
		"number_of_packs", "type", "note", "total_before_tax", "total_after_tax",
	}
}

func (l *InvoiceLine) Values() []any {
	return []any{
		l.ID, l.InvoiceID, l.ItemID, l.ItemName, l.ItemCode, l.StockLineID, l.Batch,
		l.ExpiryDate, l.PackSize, l.CostPricePerPack, l.SellPricePerPack,
		l.NumberOfPacks, string(l.Type), l.Note, l.TotalBeforeTax, l.TotalAfterTax,
	}
}

func (l *InvoiceLine) ScanTargets() []any {
	return []any{
		&l.ID, &l.InvoiceID, &l.ItemID, &l.ItemName, &l.ItemCode, &l.StockLineID, &l.Batch,
		&l.ExpiryDate, &l.PackSize, &l.CostPricePerPack, &l.SellPricePerPack,
		&l.NumberOfPacks, (*string)(&l.Type), &l.Note, &l.TotalBeforeTax, &l.TotalAfterTax,
	}
}
