// Tickerboard - Market and Weather Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tickerboard

package models

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// UnavailableLiteral is the JSON rendering of a value no source could supply.
const UnavailableLiteral = "N/A"

var unavailableJSON = []byte(`"` + UnavailableLiteral + `"`)

// Value is either a concrete T or the unavailable marker. The zero Value is
// unavailable, so a struct field left unset by a decoder reads as missing.
type Value[T any] struct {
	v  T
	ok bool
}

// Number is a price, rate or measurement.
type Number = Value[float64]

// Code is an integer classification such as a WMO weather code.
type Code = Value[int]

// Text is a string field such as an observation timestamp.
type Text = Value[string]

// Of wraps an available value.
func Of[T any](v T) Value[T] {
	return Value[T]{v: v, ok: true}
}

// Unavailable returns the unavailable marker for T.
func Unavailable[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the wrapped value and whether it is available.
func (v Value[T]) Get() (T, bool) {
	return v.v, v.ok
}

// Available reports whether v holds a value.
func (v Value[T]) Available() bool {
	return v.ok
}

// OrElse returns the wrapped value, or def when unavailable.
func (v Value[T]) OrElse(def T) T {
	if !v.ok {
		return def
	}
	return v.v
}

// String implements fmt.Stringer.
func (v Value[T]) String() string {
	if !v.ok {
		return UnavailableLiteral
	}
	return fmt.Sprint(v.v)
}

// MarshalJSON renders the value, or "N/A" when unavailable.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return unavailableJSON, nil
	}
	return json.Marshal(v.v)
}

// UnmarshalJSON accepts a T, null, or the "N/A" literal. null and "N/A" both
// decode to unavailable.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, unavailableJSON) {
		*v = Value[T]{}
		return nil
	}
	var inner T
	if err := json.Unmarshal(trimmed, &inner); err != nil {
		return err
	}
	*v = Of(inner)
	return nil
}
