// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// StockLine is a batch of one item held in a store. Remote data.
type StockLine struct {
	ID                     string
	ItemID                 string
	StoreID                string
	Batch                  *string
	ExpiryDate             *time.Time
	PackSize               float64
	CostPricePerPack       float64
	SellPricePerPack       float64
	AvailableNumberOfPacks float64
	TotalNumberOfPacks     float64
	OnHold                 bool
	Note                   *string
	SupplierID             *string
}

func (s *StockLine) Table() TableName { return StockLineTable }
func (s *StockLine) RecordID() string { return s.ID }

func (s *StockLine) Columns() []string {
	return []string{
		"id", "item_id", "store_id", "batch", "expiry_date", "pack_size", "cost_price_per_pack",
		"sell_price_per_pack", "available_number_of_packs", "total_number_of_packs", "on_hold",
		"note", "supplier_id",
	}
}

func (s *StockLine) Values() []any {
	return []any{
		s.ID, s.ItemID, s.StoreID, s.Batch, s.ExpiryDate, s.PackSize, s.CostPricePerPack,
		s.SellPricePerPack, s.AvailableNumberOfPacks, s.TotalNumberOfPacks, s.OnHold,
		s.Note, s.SupplierID,
	}
}

func (s *StockLine) ScanTargets() []any {
	return []any{
		&s.ID, &s.ItemID, &s.StoreID, &s.Batch, &s.ExpiryDate, &s.PackSize, &s.CostPricePerPack,
		&s.SellPricePerPack, &s.AvailableNumberOfPacks, &s.TotalNumberOfPacks, &s.OnHold,
		&s.Note, &s.SupplierID,
	}
}

func (s *StockLine) ChangelogStoreID() *string { return &s.StoreID }
func (s *StockLine) ChangelogNameID() *string  { return s.SupplierID }
