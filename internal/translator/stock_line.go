// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package translator

import (
	"context"

	"github.com/MKhiriev/site-sync/internal/legacy"
	"github.com/MKhiriev/site-sync/models"
)

type legacyStockLine struct {
	ID         string          `json:"ID"`
	ItemID     string          `json:"item_ID"`
	StoreID    string          `json:"store_ID"`
	Batch      legacy.String   `json:"batch"`
	ExpiryDate legacy.ZeroDate `json:"expiry_date"`
	PackSize   legacy.Float    `json:"pack_size"`
	CostPrice  legacy.Float    `json:"cost_price"`
	SellPrice  legacy.Float    `json:"sell_price"`
	Available  legacy.Float    `json:"available"`
	Quantity   legacy.Float    `json:"quantity"`
	Hold       legacy.Bool     `json:"hold"`
	Note       legacy.String   `json:"note"`
	SupplierID legacy.String   `json:"name_ID"`
}

// NewStockLineTranslator translates stock lines.
func NewStockLineTranslator() Translator {
	return &tableTranslator[legacyStockLine]{
		table: models.StockLineTable,
		deps:  []models.TableName{models.ItemTable, models.StoreTable, models.NameTable},
		pull: func(_ context.Context, _ RowReader, l legacyStockLine) (PullResult, error) {
			return upsert(&models.StockLine{
				ID:                     l.ID,
				ItemID:                 l.ItemID,
				StoreID:                l.StoreID,
				Batch:                  l.Batch.Ptr(),
				ExpiryDate:             l.ExpiryDate.Ptr(),
				PackSize:               float64(l.PackSize),
				CostPricePerPack:       float64(l.CostPrice),
				SellPricePerPack:       float64(l.SellPrice),
				AvailableNumberOfPacks: float64(l.Available),
				TotalNumberOfPacks:     float64(l.Quantity),
				OnHold:                 bool(l.Hold),
				Note:                   l.Note.Ptr(),
				SupplierID:             l.SupplierID.Ptr(),
			}), nil
		},
		push: func(_ context.Context, _ RowReader, row models.Row) (legacyStockLine, route, error) {
			s, err := rowAs[*models.StockLine](row)
			if err != nil {
				return legacyStockLine{}, route{}, err
			}
			return legacyStockLine{
				ID:         s.ID,
				ItemID:     s.ItemID,
				StoreID:    s.StoreID,
				Batch:      legacy.StringOf(s.Batch),
				ExpiryDate: legacy.ZeroDateOf(s.ExpiryDate),
				PackSize:   legacy.Float(s.PackSize),
				CostPrice:  legacy.Float(s.CostPricePerPack),
				SellPrice:  legacy.Float(s.SellPricePerPack),
				Available:  legacy.Float(s.AvailableNumberOfPacks),
				Quantity:   legacy.Float(s.TotalNumberOfPacks),
				Hold:       legacy.Bool(s.OnHold),
				Note:       legacy.StringOf(s.Note),
				SupplierID: legacy.StringOf(s.SupplierID),
			}, route{StoreID: &s.StoreID, NameID: s.SupplierID}, nil
		},
	}
}
