// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Row is a domain row of a synced table.
//
// Columns, Values and ScanTargets must list the same columns in the same
// order, starting with the primary key "id".
type Row interface {
	Table() TableName
	RecordID() string
	Columns() []string
	Values() []any
	ScanTargets() []any
}

// ChangelogScoped is implemented by rows that carry the store and the other
// party a changelog entry should be tagged with.
type ChangelogScoped interface {
	ChangelogStoreID() *string
	ChangelogNameID() *string
}

// NewRow returns an empty row of the given table, ready for scanning.
func NewRow(table TableName) (Row, error) {
	switch table {
	case UnitTable:
		return &Unit{}, nil
	case ItemTable:
		return &Item{}, nil
	case NameTable:
		return &Name{}, nil
	case StoreTable:
		return &Store{}, nil
	case NameStoreJoinTable:
		return &NameStoreJoin{}, nil
	case StockLineTable:
		return &StockLine{}, nil
	case RequisitionTable:
		return &Requisition{}, nil
	case RequisitionLineTable:
		return &RequisitionLine{}, nil
	case PurchaseOrderTable:
		return &PurchaseOrder{}, nil
	case PurchaseOrderLineTable:
		return &PurchaseOrderLine{}, nil
	case InvoiceTable:
		return &Invoice{}, nil
	case InvoiceLineTable:
		return &InvoiceLine{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTableName, table)
}

// Reference is a column of one table that points at rows of another.
type Reference struct {
	Table  TableName
	Column string
}

// ReferencesTo lists the columns that hold ids of rows in target. Merges
// use it to repoint links before the merged row is deleted.
func ReferencesTo(target TableName) []Reference {
	switch target {
	case NameTable:
		return []Reference{
			{Table: StoreTable, Column: "name_id"},
			{Table: NameStoreJoinTable, Column: "name_id"},
			{Table: StockLineTable, Column: "supplier_id"},
			{Table: RequisitionTable, Column: "name_id"},
			{Table: PurchaseOrderTable, Column: "supplier_name_id"},
			{Table: PurchaseOrderTable, Column: "donor_id"},
			{Table: InvoiceTable, Column: "name_id"},
		}
	case ItemTable:
		return []Reference{
			{Table: StockLineTable, Column: "item_id"},
			{Table: RequisitionLineTable, Column: "item_id"},
			{Table: PurchaseOrderLineTable, Column: "item_id"},
			{Table: InvoiceLineTable, Column: "item_id"},
		}
	case UnitTable:
		return []Reference{
			{Table: ItemTable, Column: "unit_id"},
		}
	}
	return nil
}
