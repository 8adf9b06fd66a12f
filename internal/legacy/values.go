// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package legacy decodes the loose JSON produced by the legacy central
// server. Legacy records use an empty string for a missing text value,
// "0000-00-00" for a missing date, a string where a number is expected and
// zero where a value is unknown. The types in this package turn those
// conventions into Go values and write them back the way the legacy server
// expects to read them.
package legacy

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidDate is returned when a date field holds text that matches
	// none of the accepted layouts.
	ErrInvalidDate = errors.New("invalid legacy date")
	// ErrInvalidNumber is returned when a numeric field holds a value that
	// is neither a number nor a string.
	ErrInvalidNumber = errors.New("invalid legacy number")
)

// String is a text field where the empty string means "absent".
type String string

// UnmarshalJSON accepts a JSON string or null.
func (s *String) UnmarshalJSON(b []byte) error {
	if isNull(b) {
		*s = ""
		return nil
	}
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = String(v)
	return nil
}

// Ptr returns nil for an empty value.
func (s String) Ptr() *string {
	if s == "" {
		return nil
	}
	v := string(s)
	return &v
}

// StringOf is the inverse of [String.Ptr].
func StringOf(p *string) String {
	if p == nil {
		return ""
	}
	return String(*p)
}

// Bool is a flag that legacy records sometimes send as "".
type Bool bool

func (b *Bool) UnmarshalJSON(data []byte) error {
	if isNull(data) || string(data) == `""` {
		*b = false
		return nil
	}
	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*b = Bool(v)
	return nil
}

// Int is an integer that reads any string, including "", as zero.
type Int int64

func (i *Int) UnmarshalJSON(b []byte) error {
	if isNull(b) {
		*i = 0
		return nil
	}
	switch b[0] {
	case '"':
		*i = 0
		return nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		v, err := strconv.ParseInt(string(b), 10, 64)
		if err != nil {
			// fractional values are not integers on the legacy side either
			v = 0
		}
		*i = Int(v)
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidNumber, b)
}

// Float is a number that may arrive as a numeric string. Text that does not
// parse reads as zero.
type Float float64

func (f *Float) UnmarshalJSON(b []byte) error {
	v, err := looseFloat(b)
	if err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

// OptionalFloat is a number where zero means "absent".
type OptionalFloat struct {
	Value float64
	Valid bool
}

func (f *OptionalFloat) UnmarshalJSON(b []byte) error {
	v, err := looseFloat(b)
	if err != nil {
		return err
	}
	*f = OptionalFloat{Value: v, Valid: v != 0}
	return nil
}

// MarshalJSON writes an absent value as 0.
func (f OptionalFloat) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("0"), nil
	}
	return json.Marshal(f.Value)
}

// Ptr returns nil for an absent value.
func (f OptionalFloat) Ptr() *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// OptionalFloatOf is the inverse of [OptionalFloat.Ptr].
func OptionalFloatOf(p *float64) OptionalFloat {
	if p == nil || *p == 0 {
		return OptionalFloat{}
	}
	return OptionalFloat{Value: *p, Valid: true}
}

// Object is a nested object where null, "", {} and [] mean "absent".
type Object[T any] struct {
	Value *T
}

func (o *Object[T]) UnmarshalJSON(b []byte) error {
	var compact bytes.Buffer
	if err := json.Compact(&compact, b); err != nil {
		return err
	}
	switch compact.String() {
	case "null", `""`, "{}", "[]":
		o.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func (o Object[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// ObjectOf wraps v, which may be nil.
func ObjectOf[T any](v *T) Object[T] {
	return Object[T]{Value: v}
}

func looseFloat(b []byte) (float64, error) {
	if isNull(b) {
		return 0, nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, nil
		}
		return v, nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, b)
	}
	return v, nil
}

func isNull(b []byte) bool {
	return len(b) == 0 || string(b) == "null"
}
