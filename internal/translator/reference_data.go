// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package translator

import (
	"context"

	"github.com/MKhiriev/site-sync/internal/legacy"
	"github.com/MKhiriev/site-sync/models"
)

type legacyUnit struct {
	ID          string        `json:"ID"`
	Units       string        `json:"units"`
	Comment     legacy.String `json:"comment"`
	OrderNumber legacy.Int    `json:"order_number"`
	Inactive    legacy.Bool   `json:"inactive"`
}

// NewUnitTranslator translates units of measure.
func NewUnitTranslator() Translator {
	return &tableTranslator[legacyUnit]{
		table: models.UnitTable,
		pull: func(_ context.Context, _ RowReader, l legacyUnit) (PullResult, error) {
			return upsert(&models.Unit{
				ID:          l.ID,
				Name:        l.Units,
				Description: l.Comment.Ptr(),
				OrderIndex:  int64(l.OrderNumber),
				IsActive:    !bool(l.Inactive),
			}), nil
		},
	}
}

type legacyItem struct {
	ID              string        `json:"ID"`
	ItemName        string        `json:"item_name"`
	Code            string        `json:"code"`
	UnitID          legacy.String `json:"unit_ID"`
	TypeOf          string        `json:"type_of"`
	DefaultPackSize legacy.Float  `json:"default_pack_size"`
	Inactive        legacy.Bool   `json:"inactive"`
}

var legacyItemTypes = map[string]models.ItemType{
	"general":   models.ItemTypeStock,
	"service":   models.ItemTypeService,
	"non_stock": models.ItemTypeNonStock,
}

// NewItemTranslator translates items. Items can be merged.
func NewItemTranslator() Translator {
	return &mergeTranslator[legacyItem]{&tableTranslator[legacyItem]{
		table: models.ItemTable,
		deps:  []models.TableName{models.UnitTable},
		pull: func(_ context.Context, _ RowReader, l legacyItem) (PullResult, error) {
			itemType, ok := legacyItemTypes[l.TypeOf]
			if !ok {
				return IgnoredPull("unsupported item type " + l.TypeOf), nil
			}
			return upsert(&models.Item{
				ID:              l.ID,
				Name:            l.ItemName,
				Code:            l.Code,
				UnitID:          l.UnitID.Ptr(),
				Type:            itemType,
				DefaultPackSize: float64(l.DefaultPackSize),
				IsActive:        !bool(l.Inactive),
			}), nil
		},
	}}
}

type legacyName struct {
	ID               string          `json:"ID"`
	Name             string          `json:"name"`
	Code             string          `json:"code"`
	Type             string          `json:"type"`
	Customer         legacy.Bool     `json:"customer"`
	Supplier         legacy.Bool     `json:"supplier"`
	SupplyingStoreID legacy.String   `json:"supplying_store_id"`
	First            legacy.String   `json:"first"`
	Last             legacy.String   `json:"last"`
	Female           legacy.Bool     `json:"female"`
	DateOfBirth      legacy.ZeroDate `json:"date_of_birth"`
	Phone            legacy.String   `json:"phone"`
	Email            legacy.String   `json:"email"`
	Comment          legacy.String   `json:"comment"`
	Hold             legacy.Bool     `json:"hold"`
	CreatedDate      legacy.ZeroDate `json:"created_date"`
	IsDeceased       legacy.Bool     `json:"isDeceased"`
}

var legacyNameTypes = map[string]models.NameType{
	"facility": models.NameTypeFacility,
	"patient":  models.NameTypePatient,
	"build":    models.NameTypeBuild,
	"invad":    models.NameTypeInvad,
	"repack":   models.NameTypeRepack,
	"store":    models.NameTypeStore,
}

// NewNameTranslator translates names. Names can be merged.
func NewNameTranslator() Translator {
	return &mergeTranslator[legacyName]{&tableTranslator[legacyName]{
		table: models.NameTable,
		pull: func(_ context.Context, _ RowReader, l legacyName) (PullResult, error) {
			nameType, ok := legacyNameTypes[l.Type]
			if !ok {
				nameType = models.NameTypeOthers
			}

			var gender *string
			if nameType == models.NameTypePatient {
				gender = ptr("MALE")
				if l.Female {
					gender = ptr("FEMALE")
				}
			}

			return upsert(&models.Name{
				ID:               l.ID,
				Name:             l.Name,
				Code:             l.Code,
				Type:             nameType,
				IsCustomer:       bool(l.Customer),
				IsSupplier:       bool(l.Supplier),
				SupplyingStoreID: l.SupplyingStoreID.Ptr(),
				FirstName:        l.First.Ptr(),
				LastName:         l.Last.Ptr(),
				Gender:           gender,
				DateOfBirth:      l.DateOfBirth.Ptr(),
				Phone:            l.Phone.Ptr(),
				Email:            l.Email.Ptr(),
				Comment:          l.Comment.Ptr(),
				OnHold:           bool(l.Hold),
				CreatedDatetime:  l.CreatedDate.Ptr(),
				IsDeceased:       bool(l.IsDeceased),
			}), nil
		},
	}}
}

type legacyStore struct {
	ID          string          `json:"ID"`
	NameID      string          `json:"name_ID"`
	Code        string          `json:"code"`
	SiteID      legacy.Int      `json:"sync_id_remote_site"`
	StoreMode   string          `json:"store_mode"`
	CreatedDate legacy.ZeroDate `json:"created_date"`
	Disabled    legacy.Bool     `json:"disabled"`
}

// Stores the legacy server keeps for its own bookkeeping.
var systemStoreCodes = map[string]bool{
	"HIS": true,
	"DRG": true,
	"SM":  true,
}

// NewStoreTranslator translates stores.
func NewStoreTranslator() Translator {
	return &tableTranslator[legacyStore]{
		table: models.StoreTable,
		deps:  []models.TableName{models.NameTable},
		pull: func(_ context.Context, _ RowReader, l legacyStore) (PullResult, error) {
			if systemStoreCodes[l.Code] {
				return IgnoredPull("system store " + l.Code), nil
			}

			mode := models.StoreModeStore
			if l.StoreMode == "dispensary" {
				mode = models.StoreModeDispensary
			}

			return upsert(&models.Store{
				ID:          l.ID,
				NameID:      l.NameID,
				Code:        l.Code,
				SiteID:      int64(l.SiteID),
				StoreMode:   mode,
				CreatedDate: l.CreatedDate.Ptr(),
				Disabled:    bool(l.Disabled),
			}), nil
		},
	}
}

type legacyNameStoreJoin struct {
	ID             string      `json:"ID"`
	NameID         string      `json:"name_ID"`
	StoreID        string      `json:"store_ID"`
	NameIsCustomer legacy.Bool `json:"name_is_customer"`
	NameIsSupplier legacy.Bool `json:"name_is_supplier"`
	Inactive       legacy.Bool `json:"inactive"`
}

// NewNameStoreJoinTranslator translates the visibility of names in stores.
// An inactive join is removed.
func NewNameStoreJoinTranslator() Translator {
	return &tableTranslator[legacyNameStoreJoin]{
		table: models.NameStoreJoinTable,
		deps:  []models.TableName{models.NameTable, models.StoreTable},
		pull: func(_ context.Context, _ RowReader, l legacyNameStoreJoin) (PullResult, error) {
			if l.Inactive {
				return Operations(DeleteOperation{Table: models.NameStoreJoinTable, RecordID: l.ID}), nil
			}
			return upsert(&models.NameStoreJoin{
				ID:             l.ID,
				NameID:         l.NameID,
				StoreID:        l.StoreID,
				NameIsCustomer: bool(l.NameIsCustomer),
				NameIsSupplier: bool(l.NameIsSupplier),
			}), nil
		},
	}
}
