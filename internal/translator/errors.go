// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package translator

import "errors"

var (
	// ErrCircularDependency is returned by [NewRegistry] when the pull
	// dependencies of the translators form a cycle.
	ErrCircularDependency = errors.New("circular translator dependency")
	// ErrUnknownDependency is returned by [NewRegistry] when a translator
	// depends on a table no registered translator handles.
	ErrUnknownDependency = errors.New("dependency on unregistered table")
	// ErrDuplicateTranslator is returned by [NewRegistry] when two
	// translators handle the same table.
	ErrDuplicateTranslator = errors.New("duplicate translator")

	// ErrDecodingRecord is returned when the legacy JSON of a record cannot
	// be decoded.
	ErrDecodingRecord = errors.New("failed to decode legacy record")
	// ErrEncodingRecord is returned when a row cannot be encoded into its
	// legacy JSON form.
	ErrEncodingRecord = errors.New("failed to encode legacy record")
	// ErrUnsupportedValue is returned when a legacy enum value has no
	// domain counterpart and the record cannot be ignored.
	ErrUnsupportedValue = errors.New("unsupported legacy value")
	// ErrRowForChangelogNotFound is returned when a changelog upsert points
	// at a row that no longer exists.
	ErrRowForChangelogNotFound = errors.New("row of changelog entry was not found")
)
