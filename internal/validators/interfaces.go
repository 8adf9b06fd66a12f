// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the requests the central server accepts from
// sites and administrators before they reach storage: site registrations,
// pushed batches, acknowledgements and central data.
//
// A [Validator] is given the value and, optionally, the names of the fields
// to check (the Field* constants). Without field names every rule for the
// type is applied. The first broken rule is returned as one of the
// sentinel errors in errors.go, so callers can match it with [errors.Is].
package validators

import "context"

// Validator checks a request value. It returns [ErrUnsupportedType] for
// types it does not know and [ErrUnknownField] for unknown field names.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
