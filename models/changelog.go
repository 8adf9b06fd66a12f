// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RowAction is the kind of mutation a changelog entry records.
type RowAction string

const (
	RowActionUpsert RowAction = "UPSERT"
	RowActionDelete RowAction = "DELETE"
)

// Changelog is one entry of the local mutation log that drives push.
type Changelog struct {
	// Cursor is assigned by the store at insert time and strictly increases.
	Cursor    int64
	TableName TableName
	RecordID  string
	RowAction RowAction
	NameID    *string
	StoreID   *string
	// IsSyncUpdate marks entries written while integrating pulled records.
	// They are never pushed back.
	IsSyncUpdate bool
	SourceSiteID *int64
}

// ChangelogFilter narrows changelog reads. Nil fields are not applied.
type ChangelogFilter struct {
	TableNames   []TableName
	NameID       *string
	StoreID      *string
	IsSyncUpdate *bool
	Action       *RowAction
	SourceSiteID *int64
}

// NewChangelogFilter returns an empty filter.
func NewChangelogFilter() *ChangelogFilter {
	return &ChangelogFilter{}
}

// WithTableNames restricts the filter to the given tables.
func (f *ChangelogFilter) WithTableNames(tables ...TableName) *ChangelogFilter {
	f.TableNames = append(f.TableNames, tables...)
	return f
}

// WithIsSyncUpdate restricts the filter by the is_sync_update flag.
func (f *ChangelogFilter) WithIsSyncUpdate(v bool) *ChangelogFilter {
	f.IsSyncUpdate = &v
	return f
}

// WithStoreID restricts the filter to one store.
func (f *ChangelogFilter) WithStoreID(id string) *ChangelogFilter {
	f.StoreID = &id
	return f
}

// WithNameID restricts the filter to one name.
func (f *ChangelogFilter) WithNameID(id string) *ChangelogFilter {
	f.NameID = &id
	return f
}

// WithAction restricts the filter to one row action.
func (f *ChangelogFilter) WithAction(a RowAction) *ChangelogFilter {
	f.Action = &a
	return f
}

// WithSourceSiteID restricts the filter to rows that came from one site.
func (f *ChangelogFilter) WithSourceSiteID(id int64) *ChangelogFilter {
	f.SourceSiteID = &id
	return f
}

// ChangeMeta is passed along with every domain write so that the changelog
// entry can record where the change came from.
type ChangeMeta struct {
	IsSyncUpdate bool
	SourceSiteID *int64
}

// LocalChange is the meta for mutations authored on this site.
func LocalChange() ChangeMeta {
	return ChangeMeta{}
}

// SyncChange is the meta for mutations produced by integrating a pulled record.
func SyncChange(sourceSiteID *int64) ChangeMeta {
	return ChangeMeta{IsSyncUpdate: true, SourceSiteID: sourceSiteID}
}
