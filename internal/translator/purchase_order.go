// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package translator

import (
	"context"
	"time"

	"github.com/MKhiriev/site-sync/internal/legacy"
	"github.com/MKhiriev/site-sync/models"
)

// purchaseOrderOmsFields keeps the timestamps the legacy record can only
// hold as dates.
type purchaseOrderOmsFields struct {
	ExpectedDeliveryDate *legacy.DateTime `json:"expected_delivery_date"`
	CreatedDatetime      legacy.DateTime  `json:"created_datetime"`
	ConfirmedDatetime    *legacy.DateTime `json:"confirmed_datetime"`
	SentDatetime         *legacy.DateTime `json:"sent_datetime"`
	Status               string           `json:"status,omitempty"`
}

type legacyPurchaseOrder struct {
	ID                       string                                `json:"ID"`
	NameID                   string                                `json:"name_ID"`
	StoreID                  string                                `json:"store_ID"`
	SerialNumber             legacy.Int                            `json:"serial_number"`
	CreationDate             legacy.Date                           `json:"creation_date"`
	TargetMonths             legacy.OptionalFloat                  `json:"target_months"`
	Status                   string                                `json:"status"`
	Comment                  legacy.String                         `json:"comment"`
	CurrencyID               legacy.String                         `json:"currency_ID"`
	Reference                legacy.String                         `json:"reference"`
	ConfirmDate              legacy.ZeroDate                       `json:"confirm_date"`
	CreatedBy                legacy.String                         `json:"created_by"`
	SupplierAgent            legacy.String                         `json:"supplier_agent"`
	AuthorisingOfficer1      legacy.String                         `json:"authorizing_officer_1"`
	AuthorisingOfficer2      legacy.String                         `json:"authorizing_officer_2"`
	FreightConditions        legacy.String                         `json:"freight_conditions"`
	AdditionalInstructions   legacy.String                         `json:"additional_instructions"`
	AgentCommission          legacy.OptionalFloat                  `json:"agent_commission"`
	DocumentCharge           legacy.OptionalFloat                  `json:"document_charge"`
	CommunicationsCharge     legacy.OptionalFloat                  `json:"communications_charge"`
	InsuranceCharge          legacy.OptionalFloat                  `json:"insurance_charge"`
	FreightCharge            legacy.OptionalFloat                  `json:"freight_charge"`
	SupplierDiscountAmount   legacy.Float                          `json:"supplier_discount_amount"`
	CurrRate                 legacy.OptionalFloat                  `json:"curr_rate"`
	OrderTotalBeforeDiscount legacy.Float                          `json:"Order_total_before_discount"`
	OrderTotalAfterDiscount  legacy.Float                          `json:"Order_total_after_discount"`
	DonorID                  legacy.String                         `json:"donor_id"`
	HeadingMessage           legacy.String                         `json:"heading_message"`
	DeliveryMethod           legacy.String                         `json:"delivery_method"`
	RequestedDeliveryDate    legacy.ZeroDate                       `json:"requested_delivery_date"`
	SentDate                 legacy.ZeroDate                       `json:"po_sent_date"`
	ContractSignedDate       legacy.ZeroDate                       `json:"Date_contract_signed"`
	AdvancePaidDate          legacy.ZeroDate                       `json:"Date_advance_payment"`
	ReceivedAtPortDate       legacy.ZeroDate                       `json:"Date_goods_received_at_port"`
	OmsFields                legacy.Object[purchaseOrderOmsFields] `json:"oms_fields"`
}

var purchaseOrderStatuses = map[string]models.PurchaseOrderStatus{
	"nw": models.PurchaseOrderStatusNew,
	"sg": models.PurchaseOrderStatusNew,
	"cn": models.PurchaseOrderStatusConfirmed,
	"fn": models.PurchaseOrderStatusFinalised,
	"FN": models.PurchaseOrderStatusFinalised,
}

func purchaseOrderStatusToLegacy(s models.PurchaseOrderStatus) string {
	switch s {
	case models.PurchaseOrderStatusNew:
		return "nw"
	case models.PurchaseOrderStatusConfirmed, models.PurchaseOrderStatusAuthorised:
		return "cn"
	}
	return "fn"
}

// NewPurchaseOrderTranslator translates purchase orders. When the record
// carries oms_fields they win over the legacy dates and status, so a
// purchase order written by a site reads back unchanged.
func NewPurchaseOrderTranslator() Translator {
	return &tableTranslator[legacyPurchaseOrder]{
		table: models.PurchaseOrderTable,
		deps:  []models.TableName{models.NameTable, models.StoreTable},
		pull: func(_ context.Context, _ RowReader, l legacyPurchaseOrder) (PullResult, error) {
			status, ok := purchaseOrderStatuses[l.Status]
			if !ok {
				status = models.PurchaseOrderStatusNew
			}

			created := l.CreationDate.Time
			confirmed := l.ConfirmDate.Ptr()
			sent := l.SentDate.Ptr()
			var expected *time.Time
			if oms := l.OmsFields.Value; oms != nil {
				created = oms.CreatedDatetime.Time
				confirmed = oms.ConfirmedDatetime.TimePtr()
				sent = oms.SentDatetime.TimePtr()
				expected = oms.ExpectedDeliveryDate.TimePtr()
				if oms.Status != "" {
					status = models.PurchaseOrderStatus(oms.Status)
				}
			}

			return upsert(&models.PurchaseOrder{
				ID:                       l.ID,
				PurchaseOrderNumber:      int64(l.SerialNumber),
				StoreID:                  l.StoreID,
				SupplierNameID:           l.NameID,
				CreatedBy:                l.CreatedBy.Ptr(),
				Status:                   status,
				CreatedDatetime:          created,
				ConfirmedDatetime:        confirmed,
				SentDatetime:             sent,
				TargetMonths:             l.TargetMonths.Ptr(),
				Comment:                  l.Comment.Ptr(),
				Reference:                l.Reference.Ptr(),
				CurrencyID:               l.CurrencyID.Ptr(),
				ForeignExchangeRate:      l.CurrRate.Ptr(),
				SupplierDiscountAmount:   float64(l.SupplierDiscountAmount),
				DonorID:                  l.DonorID.Ptr(),
				ShippingMethod:           l.DeliveryMethod.Ptr(),
				RequestedDeliveryDate:    l.RequestedDeliveryDate.Ptr(),
				ExpectedDeliveryDate:     expected,
				ContractSignedDate:       l.ContractSignedDate.Ptr(),
				AdvancePaidDate:          l.AdvancePaidDate.Ptr(),
				ReceivedAtPortDate:       l.ReceivedAtPortDate.Ptr(),
				SupplierAgent:            l.SupplierAgent.Ptr(),
				AuthorisingOfficer1:      l.AuthorisingOfficer1.Ptr(),
				AuthorisingOfficer2:      l.AuthorisingOfficer2.Ptr(),
				AdditionalInstructions:   l.AdditionalInstructions.Ptr(),
				HeadingMessage:           l.HeadingMessage.Ptr(),
				FreightConditions:        l.FreightConditions.Ptr(),
				AgentCommission:          l.AgentCommission.Ptr(),
				DocumentCharge:           l.DocumentCharge.Ptr(),
				CommunicationsCharge:     l.CommunicationsCharge.Ptr(),
				InsuranceCharge:          l.InsuranceCharge.Ptr(),
				FreightCharge:            l.FreightCharge.Ptr(),
				OrderTotalBeforeDiscount: float64(l.OrderTotalBeforeDiscount),
				OrderTotalAfterDiscount:  float64(l.OrderTotalAfterDiscount),
			}), nil
		},
		push: func(_ context.Context, _ RowReader, row models.Row) (legacyPurchaseOrder, route, error) {
			p, err := rowAs[*models.PurchaseOrder](row)
			if err != nil {
				return legacyPurchaseOrder{}, route{}, err
			}

			oms := &purchaseOrderOmsFields{
				ExpectedDeliveryDate: legacy.DateTimeOf(p.ExpectedDeliveryDate),
				CreatedDatetime:      legacy.DateTime{Time: p.CreatedDatetime},
				ConfirmedDatetime:    legacy.DateTimeOf(p.ConfirmedDatetime),
				SentDatetime:         legacy.DateTimeOf(p.SentDatetime),
				Status:               string(p.Status),
			}

			return legacyPurchaseOrder{
				ID:                       p.ID,
				NameID:                   p.SupplierNameID,
				StoreID:                  p.StoreID,
				SerialNumber:             legacy.Int(p.PurchaseOrderNumber),
				CreationDate:             legacy.DateOf(p.CreatedDatetime),
				TargetMonths:             legacy.OptionalFloatOf(p.TargetMonths),
				Status:                   purchaseOrderStatusToLegacy(p.Status),
				Comment:                  legacy.StringOf(p.Comment),
				CurrencyID:               legacy.StringOf(p.CurrencyID),
				Reference:                legacy.StringOf(p.Reference),
				ConfirmDate:              legacy.ZeroDateOf(p.ConfirmedDatetime),
				CreatedBy:                legacy.StringOf(p.CreatedBy),
				SupplierAgent:            legacy.StringOf(p.SupplierAgent),
				AuthorisingOfficer1:      legacy.StringOf(p.AuthorisingOfficer1),
				AuthorisingOfficer2:      legacy.StringOf(p.AuthorisingOfficer2),
				FreightConditions:        legacy.StringOf(p.FreightConditions),
				AdditionalInstructions:   legacy.StringOf(p.AdditionalInstructions),
				AgentCommission:          legacy.OptionalFloatOf(p.AgentCommission),
				DocumentCharge:           legacy.OptionalFloatOf(p.DocumentCharge),
				CommunicationsCharge:     legacy.OptionalFloatOf(p.CommunicationsCharge),
				InsuranceCharge:          legacy.OptionalFloatOf(p.InsuranceCharge),
				FreightCharge:            legacy.OptionalFloatOf(p.FreightCharge),
				SupplierDiscountAmount:   legacy.Float(p.SupplierDiscountAmount),
				CurrRate:                 legacy.OptionalFloatOf(p.ForeignExchangeRate),
				OrderTotalBeforeDiscount: legacy.Float(p.OrderTotalBeforeDiscount),
				OrderTotalAfterDiscount:  legacy.Float(p.OrderTotalAfterDiscount),
				DonorID:                  legacy.StringOf(p.DonorID),
				HeadingMessage:           legacy.StringOf(p.HeadingMessage),
				DeliveryMethod:           legacy.StringOf(p.ShippingMethod),
				RequestedDeliveryDate:    legacy.ZeroDateOf(p.RequestedDeliveryDate),
				SentDate:                 legacy.ZeroDateOf(p.SentDatetime),
				ContractSignedDate:       legacy.ZeroDateOf(p.ContractSignedDate),
				AdvancePaidDate:          legacy.ZeroDateOf(p.AdvancePaidDate),
				ReceivedAtPortDate:       legacy.ZeroDateOf(p.ReceivedAtPortDate),
				OmsFields:                legacy.ObjectOf(oms),
			}, route{StoreID: &p.StoreID, NameID: &p.SupplierNameID}, nil
		},
	}
}

type legacyPurchaseOrderLine struct {
	ID                    string               `json:"ID"`
	PurchaseOrderID       string               `json:"purchase_order_ID"`
	StoreID               string               `json:"store_ID"`
	LineNumber            legacy.Int           `json:"line_number"`
	ItemID                string               `json:"item_ID"`
	PackSizeOrdered       legacy.Float         `json:"packsize_ordered"`
	QuanOriginalOrder     legacy.Float         `json:"quan_original_order"`
	QuanAdjustedOrder     legacy.OptionalFloat `json:"quan_adjusted_order"`
	QuanReceivedToDate    legacy.Float         `json:"quan_rec_to_date"`
	DeliveryDateRequested legacy.ZeroDate      `json:"delivery_date_requested"`
	DeliveryDateExpected  legacy.ZeroDate      `json:"delivery_date_expected"`
	PriceBeforeDiscount   legacy.Float         `json:"price_expected_before_discount"`
	PriceAfterDiscount    legacy.Float         `json:"price_expected_after_discount"`
	Comment               legacy.String        `json:"comment"`
}

// NewPurchaseOrderLineTranslator translates purchase order lines.
func NewPurchaseOrderLineTranslator() Translator {
	return &tableTranslator[legacyPurchaseOrderLine]{
		table: models.PurchaseOrderLineTable,
		deps:  []models.TableName{models.PurchaseOrderTable, models.ItemTable},
		pull: func(_ context.Context, _ RowReader, l legacyPurchaseOrderLine) (PullResult, error) {
			return upsert(&models.PurchaseOrderLine{
				ID:                         l.ID,
				PurchaseOrderID:            l.PurchaseOrderID,
				StoreID:                    l.StoreID,
				LineNumber:                 int64(l.LineNumber),
				ItemID:                     l.ItemID,
				RequestedPackSize:          float64(l.PackSizeOrdered),
				RequestedNumberOfUnits:     float64(l.QuanOriginalOrder),
				AdjustedNumberOfUnits:      l.QuanAdjustedOrder.Ptr(),
				ReceivedNumberOfUnits:      float64(l.QuanReceivedToDate),
				RequestedDeliveryDate:      l.DeliveryDateRequested.Ptr(),
				ExpectedDeliveryDate:       l.DeliveryDateExpected.Ptr(),
				PricePerUnitBeforeDiscount: float64(l.PriceBeforeDiscount),
				PricePerUnitAfterDiscount:  float64(l.PriceAfterDiscount),
				Comment:                    l.Comment.Ptr(),
			}), nil
		},
		push: func(ctx context.Context, rows RowReader, row models.Row) (legacyPurchaseOrderLine, route, error) {
			line, err := rowAs[*models.PurchaseOrderLine](row)
			if err != nil {
				return legacyPurchaseOrderLine{}, route{}, err
			}
			r, err := parentStore(ctx, rows, models.PurchaseOrderTable, line.PurchaseOrderID)
			if err != nil {
				return legacyPurchaseOrderLine{}, route{}, err
			}

			return legacyPurchaseOrderLine{
				ID:                    line.ID,
				PurchaseOrderID:       line.PurchaseOrderID,
				StoreID:               line.StoreID,
				LineNumber:            legacy.Int(line.LineNumber),
				ItemID:                line.ItemID,
				PackSizeOrdered:       legacy.Float(line.RequestedPackSize),
				QuanOriginalOrder:     legacy.Float(line.RequestedNumberOfUnits),
				QuanAdjustedOrder:     legacy.OptionalFloatOf(line.AdjustedNumberOfUnits),
				QuanReceivedToDate:    legacy.Float(line.ReceivedNumberOfUnits),
				DeliveryDateRequested: legacy.ZeroDateOf(line.RequestedDeliveryDate),
				DeliveryDateExpected:  legacy.ZeroDateOf(line.ExpectedDeliveryDate),
				PriceBeforeDiscount:   legacy.Float(line.PricePerUnitBeforeDiscount),
				PriceAfterDiscount:    legacy.Float(line.PricePerUnitAfterDiscount),
				Comment:               legacy.StringOf(line.Comment),
			}, r, nil
		},
	}
}
