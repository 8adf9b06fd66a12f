// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// ErrUnknownTableName is returned by [ParseTableName] when the given string
// does not name one of the synced tables.
var ErrUnknownTableName = errors.New("unknown table name")

// TableName identifies a synced table. The set of values is closed: adding a
// table means adding a constant here, a row type and a translator.
type TableName string

const (
	UnitTable              TableName = "unit"
	ItemTable              TableName = "item"
	NameTable              TableName = "name"
	StoreTable             TableName = "store"
	NameStoreJoinTable     TableName = "name_store_join"
	StockLineTable         TableName = "stock_line"
	RequisitionTable       TableName = "requisition"
	RequisitionLineTable   TableName = "requisition_line"
	PurchaseOrderTable     TableName = "purchase_order"
	PurchaseOrderLineTable TableName = "purchase_order_line"
	InvoiceTable           TableName = "invoice"
	InvoiceLineTable       TableName = "invoice_line"
)

// SyncStyle tells which feed a table travels on.
type SyncStyle int

const (
	// SyncStyleCentral tables are authored on the central server and pulled
	// through the central records feed only.
	SyncStyleCentral SyncStyle = iota
	// SyncStyleRemote tables are authored on sites, pushed through the
	// changelog and delivered to other sites through their queues.
	SyncStyleRemote
)

var tableSyncStyles = map[TableName]SyncStyle{
	UnitTable:              SyncStyleCentral,
	ItemTable:              SyncStyleCentral,
	NameTable:              SyncStyleCentral,
	StoreTable:             SyncStyleCentral,
	NameStoreJoinTable:     SyncStyleCentral,
	StockLineTable:         SyncStyleRemote,
	RequisitionTable:       SyncStyleRemote,
	RequisitionLineTable:   SyncStyleRemote,
	PurchaseOrderTable:     SyncStyleRemote,
	PurchaseOrderLineTable: SyncStyleRemote,
	InvoiceTable:           SyncStyleRemote,
	InvoiceLineTable:       SyncStyleRemote,
}

// AllTableNames returns every synced table in declaration order.
func AllTableNames() []TableName {
	return []TableName{
		UnitTable,
		ItemTable,
		NameTable,
		StoreTable,
		NameStoreJoinTable,
		StockLineTable,
		RequisitionTable,
		RequisitionLineTable,
		PurchaseOrderTable,
		PurchaseOrderLineTable,
		InvoiceTable,
		InvoiceLineTable,
	}
}

// ParseTableName converts a wire table name into a [TableName].
func ParseTableName(s string) (TableName, error) {
	t := TableName(s)
	if _, ok := tableSyncStyles[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTableName, s)
	}
	return t, nil
}

// String implements fmt.Stringer.
func (t TableName) String() string {
	return string(t)
}

// Valid reports whether t is one of the declared tables.
func (t TableName) Valid() bool {
	_, ok := tableSyncStyles[t]
	return ok
}

// SyncStyle returns the feed the table travels on.
func (t TableName) SyncStyle() SyncStyle {
	return tableSyncStyles[t]
}

// IsRemote reports whether rows of this table are authored on sites.
func (t TableName) IsRemote() bool {
	return t.SyncStyle() == SyncStyleRemote
}
