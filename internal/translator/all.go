// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package translator

// All returns the translators of every synced table.
func All() []Translator {
	return []Translator{
		NewUnitTranslator(),
		NewItemTranslator(),
		NewNameTranslator(),
		NewStoreTranslator(),
		NewNameStoreJoinTranslator(),
		NewStockLineTranslator(),
		NewRequisitionTranslator(),
		NewRequisitionLineTranslator(),
		NewPurchaseOrderTranslator(),
		NewPurchaseOrderLineTranslator(),
		NewInvoiceTranslator(),
		NewInvoiceLineTranslator(),
	}
}

// NewDefaultRegistry orders the translators returned by [All].
func NewDefaultRegistry() (*Registry, error) {
	return NewRegistry(All()...)
}
