// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package translator

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/site-sync/internal/legacy"
	"github.com/MKhiriev/site-sync/models"
)

const (
	legacySupplierInvoice = "si"
	legacyCustomerInvoice = "ci"
)

type legacyTransact struct {
	ID                  string               `json:"ID"`
	NameID              string               `json:"name_ID"`
	StoreID             string               `json:"store_ID"`
	InvoiceNum          legacy.Int           `json:"invoice_num"`
	Type                string               `json:"type"`
	Status              string               `json:"status"`
	Hold                legacy.Bool          `json:"hold"`
	Comment             legacy.String        `json:"comment"`
	TheirRef            legacy.String        `json:"their_ref"`
	TransportReference  legacy.String        `json:"transport_reference"`
	Colour              legacy.Int           `json:"Colour"`
	RequisitionID       legacy.String        `json:"requisition_ID"`
	LinkedTransactionID legacy.String        `json:"linked_transaction_id"`
	PurchaseOrderID     legacy.String        `json:"purchase_order_ID"`
	UserID              legacy.String        `json:"user_ID"`
	Tax                 legacy.OptionalFloat `json:"tax"`
	EntryDate           legacy.Date          `json:"entry_date"`
	EntryTime           legacy.TimeOfDay     `json:"entry_time"`
	ShipDate            legacy.ZeroDate      `json:"ship_date"`
	ArrivalDateActual   legacy.ZeroDate      `json:"arrival_date_actual"`
	ConfirmDate         legacy.ZeroDate      `json:"confirm_date"`
	ConfirmTime         legacy.TimeOfDay     `json:"confirm_time"`
	OmType              legacy.String        `json:"om_type"`
	OmStatus            legacy.String        `json:"om_status"`
	OmAllocatedDatetime *legacy.DateTime     `json:"om_allocated_datetime"`
	OmPickedDatetime    *legacy.DateTime     `json:"om_picked_datetime"`
	OmShippedDatetime   *legacy.DateTime     `json:"om_shipped_datetime"`
	OmDeliveredDatetime *legacy.DateTime     `json:"om_delivered_datetime"`
}

func invoiceStatusFromLegacy(t models.InvoiceType, l legacyTransact) (models.InvoiceStatus, error) {
	if s := l.OmStatus.Ptr(); s != nil {
		return models.InvoiceStatus(*s), nil
	}

	shipped := l.ShipDate.Valid
	switch t {
	case models.InvoiceTypeInboundShipment:
		switch l.Status {
		case "nw":
			switch {
			case l.TheirRef == "":
				return models.InvoiceStatusNew, nil
			case !shipped:
				return models.InvoiceStatusPicked, nil
			}
			return models.InvoiceStatusShipped, nil
		case "sg":
			return models.InvoiceStatusNew, nil
		case "cn":
			return models.InvoiceStatusDelivered, nil
		case "fn":
			return models.InvoiceStatusVerified, nil
		}
	case models.InvoiceTypeOutboundShipment:
		switch l.Status {
		case "nw", "sg":
			return models.InvoiceStatusNew, nil
		case "cn":
			return models.InvoiceStatusPicked, nil
		case "fn":
			switch {
			case shipped:
				return models.InvoiceStatusShipped, nil
			case l.ArrivalDateActual.Valid:
				return models.InvoiceStatusDelivered, nil
			}
			return models.InvoiceStatusVerified, nil
		}
	case models.InvoiceTypeInventoryAdjust:
		if l.Status == "fn" {
			return models.InvoiceStatusVerified, nil
		}
		return models.InvoiceStatusNew, nil
	}
	return "", fmt.Errorf("%w: invoice %s status %q", ErrUnsupportedValue, l.ID, l.Status)
}

func invoiceStatusToLegacy(s models.InvoiceStatus) string {
	switch s {
	case models.InvoiceStatusNew:
		return "nw"
	case models.InvoiceStatusAllocated:
		return "sg"
	case models.InvoiceStatusPicked, models.InvoiceStatusDelivered:
		return "cn"
	}
	return "fn"
}

// firstTime prefers the exact timestamp and falls back to the legacy date.
func firstTime(exact *legacy.DateTime, date legacy.ZeroDate) *time.Time {
	if exact != nil {
		return exact.TimePtr()
	}
	return date.Ptr()
}

// NewInvoiceTranslator translates invoices. Legacy credits and other
// transaction types without a domain counterpart are ignored.
func NewInvoiceTranslator() Translator {
	return &tableTranslator[legacyTransact]{
		table: models.InvoiceTable,
		deps: []models.TableName{
			models.NameTable, models.StoreTable, models.RequisitionTable, models.PurchaseOrderTable,
		},
		pull: func(_ context.Context, _ RowReader, l legacyTransact) (PullResult, error) {
			var invoiceType models.InvoiceType
			switch {
			case l.OmType != "":
				invoiceType = models.InvoiceType(l.OmType)
			case l.Type == legacySupplierInvoice:
				invoiceType = models.InvoiceTypeInboundShipment
			case l.Type == legacyCustomerInvoice:
				invoiceType = models.InvoiceTypeOutboundShipment
			default:
				return IgnoredPull("unsupported transaction type " + l.Type), nil
			}

			status, err := invoiceStatusFromLegacy(invoiceType, l)
			if err != nil {
				return PullResult{}, err
			}

			var verified *time.Time
			if d := l.ConfirmDate.Ptr(); d != nil {
				verified = ptr(legacy.DateAndTime(*d, l.ConfirmTime))
			}

			return upsert(&models.Invoice{
				ID:                 l.ID,
				InvoiceNumber:      int64(l.InvoiceNum),
				NameID:             l.NameID,
				StoreID:            l.StoreID,
				UserID:             l.UserID.Ptr(),
				Type:               invoiceType,
				Status:             status,
				OnHold:             bool(l.Hold),
				Comment:            l.Comment.Ptr(),
				TheirReference:     l.TheirRef.Ptr(),
				TransportReference: l.TransportReference.Ptr(),
				CreatedDatetime:    legacy.DateAndTime(l.EntryDate.Time, l.EntryTime),
				AllocatedDatetime:  l.OmAllocatedDatetime.TimePtr(),
				PickedDatetime:     l.OmPickedDatetime.TimePtr(),
				ShippedDatetime:    firstTime(l.OmShippedDatetime, l.ShipDate),
				DeliveredDatetime:  firstTime(l.OmDeliveredDatetime, l.ArrivalDateActual),
				VerifiedDatetime:   verified,
				Colour:             colourFromLegacy(l.Colour),
				RequisitionID:      l.RequisitionID.Ptr(),
				LinkedInvoiceID:    l.LinkedTransactionID.Ptr(),
				PurchaseOrderID:    l.PurchaseOrderID.Ptr(),
				TaxPercentage:      l.Tax.Ptr(),
			}), nil
		},
		push: func(_ context.Context, _ RowReader, row models.Row) (legacyTransact, route, error) {
			i, err := rowAs[*models.Invoice](row)
			if err != nil {
				return legacyTransact{}, route{}, err
			}

			legacyType := legacySupplierInvoice
			if i.Type == models.InvoiceTypeOutboundShipment {
				legacyType = legacyCustomerInvoice
			}

			var confirmTime legacy.TimeOfDay
			if i.VerifiedDatetime != nil {
				confirmTime = legacy.TimeOfDayOf(*i.VerifiedDatetime)
			}

			return legacyTransact{
				ID:                  i.ID,
				NameID:              i.NameID,
				StoreID:             i.StoreID,
				InvoiceNum:          legacy.Int(i.InvoiceNumber),
				Type:                legacyType,
				Status:              invoiceStatusToLegacy(i.Status),
				Hold:                legacy.Bool(i.OnHold),
				Comment:             legacy.StringOf(i.Comment),
				TheirRef:            legacy.StringOf(i.TheirReference),
				TransportReference:  legacy.StringOf(i.TransportReference),
				Colour:              colourToLegacy(i.Colour),
				RequisitionID:       legacy.StringOf(i.RequisitionID),
				LinkedTransactionID: legacy.StringOf(i.LinkedInvoiceID),
				PurchaseOrderID:     legacy.StringOf(i.PurchaseOrderID),
				UserID:              legacy.StringOf(i.UserID),
				Tax:                 legacy.OptionalFloatOf(i.TaxPercentage),
				EntryDate:           legacy.DateOf(i.CreatedDatetime),
				EntryTime:           legacy.TimeOfDayOf(i.CreatedDatetime),
				ShipDate:            legacy.ZeroDateOf(i.ShippedDatetime),
				ArrivalDateActual:   legacy.ZeroDateOf(i.DeliveredDatetime),
				ConfirmDate:         legacy.ZeroDateOf(i.VerifiedDatetime),
				ConfirmTime:         confirmTime,
				OmType:              legacy.String(i.Type),
				OmStatus:            legacy.String(i.Status),
				OmAllocatedDatetime: legacy.DateTimeOf(i.AllocatedDatetime),
				OmPickedDatetime:    legacy.DateTimeOf(i.PickedDatetime),
				OmShippedDatetime:   legacy.DateTimeOf(i.ShippedDatetime),
				OmDeliveredDatetime: legacy.DateTimeOf(i.DeliveredDatetime),
			}, route{StoreID: &i.StoreID, NameID: &i.NameID}, nil
		},
	}
}

type legacyTransLine struct {
	ID             string          `json:"ID"`
	TransactionID  string          `json:"transaction_ID"`
	ItemID         string          `json:"item_ID"`
	ItemName       string          `json:"item_name"`
	ItemCode       legacy.String   `json:"item_code"`
	ItemLineID     legacy.String   `json:"item_line_ID"`
	Batch          legacy.String   `json:"batch"`
	ExpiryDate     legacy.ZeroDate `json:"expiry_date"`
	PackSize       legacy.Float    `json:"pack_size"`
	CostPrice      legacy.Float    `json:"cost_price"`
	SellPrice      legacy.Float    `json:"sell_price"`
	Quantity       legacy.Float    `json:"quantity"`
	Type           string          `json:"type"`
	Note           legacy.String   `json:"note"`
	TotalBeforeTax legacy.Float    `json:"total_before_tax"`
	TotalAfterTax  legacy.Float    `json:"total_after_tax"`
}

var invoiceLineTypes = map[string]models.InvoiceLineType{
	"stock_in":    models.InvoiceLineTypeStockIn,
	"stock_out":   models.InvoiceLineTypeStockOut,
	"placeholder": models.InvoiceLineTypeUnallocated,
	"service":     models.InvoiceLineTypeService,
}

func invoiceLineTypeToLegacy(t models.InvoiceLineType) string {
	for legacyType, lineType := range invoiceLineTypes {
		if lineType == t {
			return legacyType
		}
	}
	return "stock_out"
}

// NewInvoiceLineTranslator translates invoice lines. The legacy quantity
// counts units, the domain row counts packs.
func NewInvoiceLineTranslator() Translator {
	return &tableTranslator[legacyTransLine]{
		table: models.InvoiceLineTable,
		deps:  []models.TableName{models.InvoiceTable, models.ItemTable, models.StockLineTable},
		pull: func(_ context.Context, _ RowReader, l legacyTransLine) (PullResult, error) {
			lineType, ok := invoiceLineTypes[l.Type]
			if !ok {
				return IgnoredPull("unsupported transaction line type " + l.Type), nil
			}

			packs := float64(l.Quantity)
			if l.PackSize > 0 {
				packs = float64(l.Quantity) / float64(l.PackSize)
			}

			return upsert(&models.InvoiceLine{
				ID:               l.ID,
				InvoiceID:        l.TransactionID,
				ItemID:           l.ItemID,
				ItemName:         l.ItemName,
				ItemCode:         string(l.ItemCode),
				StockLineID:      l.ItemLineID.Ptr(),
				Batch:            l.Batch.Ptr(),
				ExpiryDate:       l.ExpiryDate.Ptr(),
				PackSize:         float64(l.PackSize),
				CostPricePerPack: float64(l.CostPrice),
				SellPricePerPack: float64(l.SellPrice),
				NumberOfPacks:    packs,
				Type:             lineType,
				Note:             l.Note.Ptr(),
				TotalBeforeTax:   float64(l.TotalBeforeTax),
				TotalAfterTax:    float64(l.TotalAfterTax),
			}), nil
		},
		push: func(ctx context.Context, rows RowReader, row models.Row) (legacyTransLine, route, error) {
			line, err := rowAs[*models.InvoiceLine](row)
			if err != nil {
				return legacyTransLine{}, route{}, err
			}
			r, err := parentStore(ctx, rows, models.InvoiceTable, line.InvoiceID)
			if err != nil {
				return legacyTransLine{}, route{}, err
			}

			quantity := line.NumberOfPacks
			if line.PackSize > 0 {
				quantity = line.NumberOfPacks * line.PackSize
			}

			return legacyTransLine{
				ID:             line.ID,
				TransactionID:  line.InvoiceID,
				ItemID:         line.ItemID,
				ItemName:       line.ItemName,
				ItemCode:       legacy.String(line.ItemCode),
				ItemLineID:     legacy.StringOf(line.StockLineID),
				Batch:          legacy.StringOf(line.Batch),
				ExpiryDate:     legacy.ZeroDateOf(line.ExpiryDate),
				PackSize:       legacy.Float(line.PackSize),
				CostPrice:      legacy.Float(line.CostPricePerPack),
				SellPrice:      legacy.Float(line.SellPricePerPack),
				Quantity:       legacy.Float(quantity),
				Type:           invoiceLineTypeToLegacy(line.Type),
				Note:           legacy.StringOf(line.Note),
				TotalBeforeTax: legacy.Float(line.TotalBeforeTax),
				TotalAfterTax:  legacy.Float(line.TotalAfterTax),
			}, r, nil
		},
	}
}
