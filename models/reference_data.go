// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Unit is a unit of measure. Central data.
type Unit struct {
	ID          string
	Name        string
	Description *string
	OrderIndex  int64
	IsActive    bool
}

func (u *Unit) Table() TableName { return UnitTable }
func (u *Unit) RecordID() string { return u.ID }

func (u *Unit) Columns() []string {
	return []string{"id", "name", "description", "order_index", "is_active"}
}

func (u *Unit) Values() []any {
	return []any{u.ID, u.Name, u.Description, u.OrderIndex, u.IsActive}
}

func (u *Unit) ScanTargets() []any {
	return []any{&u.ID, &u.Name, &u.Description, &u.OrderIndex, &u.IsActive}
}

// ItemType distinguishes stocked items from services.
type ItemType string

const (
	ItemTypeStock    ItemType = "STOCK"
	ItemTypeService  ItemType = "SERVICE"
	ItemTypeNonStock ItemType = "NON_STOCK"
)

// Item is a product that can be stocked, requested or shipped. Central data.
type Item struct {
	ID              string
	Name            string
	Code            string
	UnitID          *string
	Type            ItemType
	DefaultPackSize float64
	IsActive        bool
}

func (i *Item) Table() TableName { return ItemTable }
func (i *Item) RecordID() string { return i.ID }

func (i *Item) Columns() []string {
	return []string{"id", "name", "code", "unit_id", "type", "default_pack_size", "is_active"}
}

func (i *Item) Values() []any {
	return []any{i.ID, i.Name, i.Code, i.UnitID, string(i.Type), i.DefaultPackSize, i.IsActive}
}

func (i *Item) ScanTargets() []any {
	return []any{&i.ID, &i.Name, &i.Code, &i.UnitID, (*string)(&i.Type), &i.DefaultPackSize, &i.IsActive}
}

// NameType classifies a name.
type NameType string

const (
	NameTypeFacility NameType = "FACILITY"
	NameTypePatient  NameType = "PATIENT"
	NameTypeBuild    NameType = "BUILD"
	NameTypeInvad    NameType = "INVAD"
	NameTypeRepack   NameType = "REPACK"
	NameTypeStore    NameType = "STORE"
	NameTypeOthers   NameType = "OTHERS"
)

// Name is a trading partner, facility, patient or store owner. Central data.
type Name struct {
	ID               string
	Name             string
	Code             string
	Type             NameType
	IsCustomer       bool
	IsSupplier       bool
	SupplyingStoreID *string
	FirstName        *string
	LastName         *string
	Gender           *string
	DateOfBirth      *time.Time
	Phone            *string
	Email            *string
	Comment          *string
	OnHold           bool
	CreatedDatetime  *time.Time
	IsDeceased       bool
}

func (n *Name) Table() TableName { return NameTable }
func (n *Name) RecordID() string { return n.ID }

func (n *Name) Columns() []string {
	return []string{
		"id", "name", "code", "type", "is_customer", "is_supplier", "supplying_store_id",
		"first_name", "last_name", "gender", "date_of_birth", "phone", "email", "comment",
		"on_hold", "created_datetime", "is_deceased",
	}
}

func (n *Name) Values() []any {
	return []any{
		n.ID, n.Name, n.Code, string(n.Type), n.IsCustomer, n.IsSupplier, n.SupplyingStoreID,
		n.FirstName, n.LastName, n.Gender, n.DateOfBirth, n.Phone, n.Email, n.Comment,
		n.OnHold, n.CreatedDatetime, n.IsDeceased,
	}
}

func (n *Name) ScanTargets() []any {
	return []any{
		&n.ID, &n.Name, &n.Code, (*string)(&n.Type), &n.IsCustomer, &n.IsSupplier, &n.SupplyingStoreID,
		&n.FirstName, &n.LastName, &n.Gender, &n.DateOfBirth, &n.Phone, &n.Email, &n.Comment,
		&n.OnHold, &n.CreatedDatetime, &n.IsDeceased,
	}
}

// StoreMode is the operating mode of a store.
type StoreMode string

const (
	StoreModeStore      StoreMode = "STORE"
	StoreModeDispensary StoreMode = "DISPENSARY"
)

// Store is a stock holding location that belongs to exactly one site.
// Central data.
type Store struct {
	ID          string
	NameID      string
	Code        string
	SiteID      int64
	StoreMode   StoreMode
	CreatedDate *time.Time
	Disabled    bool
}

func (s *Store) Table() TableName { return StoreTable }
func (s *Store) RecordID() string { return s.ID }

func (s *Store) Columns() []string {
	return []string{"id", "name_id", "code", "site_id", "store_mode", "created_date", "disabled"}
}

func (s *Store) Values() []any {
	return []any{s.ID, s.NameID, s.Code, s.SiteID, string(s.StoreMode), s.CreatedDate, s.Disabled}
}

func (s *Store) ScanTargets() []any {
	return []any{&s.ID, &s.NameID, &s.Code, &s.SiteID, (*string)(&s.StoreMode), &s.CreatedDate, &s.Disabled}
}

// NameStoreJoin makes a name visible in a store. Central data.
type NameStoreJoin struct {
	ID             string
	NameID         string
	StoreID        string
	NameIsCustomer bool
	NameIsSupplier bool
}

func (j *NameStoreJoin) Table() TableName { return NameStoreJoinTable }
func (j *NameStoreJoin) RecordID() string { return j.ID }

func (j *NameStoreJoin) Columns() []string {
	return []string{"id", "name_id", "store_id", "name_is_customer", "name_is_supplier"}
}

func (j *NameStoreJoin) Values() []any {
	return []any{j.ID, j.NameID, j.StoreID, j.NameIsCustomer, j.NameIsSupplier}
}

func (j *NameStoreJoin) ScanTargets() []any {
	return []any{&j.ID, &j.NameID, &j.StoreID, &j.NameIsCustomer, &j.NameIsSupplier}
}
