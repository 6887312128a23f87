// Package datatype defines the logical data type label attached to a
// database column. A DataType is an immutable value wrapping a single
// non-empty string; two values are equal when their labels match
// case-insensitively, while String() preserves the exact label given at
// construction. The set of labels is open: the six predefined values are a
// vocabulary, not a validation list, and any non-empty label round-trips.
package datatype

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrEmptyLabel is returned by New when the label is empty.
var ErrEmptyLabel = errors.New("datatype: label must not be empty")

// DataType is an immutable logical column type label.
//
// The zero value represents "no type specified" (see IsZero); every non-zero
// value carries a non-empty label. DataType is safe for concurrent use — it
// has no mutable state.
type DataType struct {
	label string
}

// Predefined logical types. These are process-wide constants; callers compare
// against them with Equal, never with ==, since equality is case-insensitive.
var (
	Boolean  = MustNew("Boolean")
	DateTime = MustNew("DateTime")
	Decimal  = MustNew("Decimal")
	Integer  = MustNew("Integer")
	Text     = MustNew("Text")
	VarChar  = MustNew("VarChar")
)

// New constructs a DataType from an arbitrary label. The label must be
// non-empty; its case is preserved for display but ignored for comparison.
func New(label string) (DataType, error) {
	if label == "" {
		return DataType{}, ErrEmptyLabel
	}
	return DataType{label: label}, nil
}

// MustNew is like New but panics on an empty label. It is intended for
// package-level declarations of fixed types.
func MustNew(label string) DataType {
	dt, err := New(label)
	if err != nil {
		panic(fmt.Sprintf("datatype: MustNew(%q): %v", label, err))
	}
	return dt
}

// Predefined returns the six predefined types in Compare order.
func Predefined() []DataType {
	types := []DataType{Boolean, DateTime, Decimal, Integer, Text, VarChar}
	sort.Slice(types, func(i, j int) bool {
		return types[i].Compare(types[j]) < 0
	})
	return types
}

// IsZero reports whether d is the absent value (no type specified).
func (d DataType) IsZero() bool {
	return d.label == ""
}

// String returns the label exactly as it was given at construction.
func (d DataType) String() string {
	return d.label
}

// Key returns the case-folded label. Equal values always share a Key, so it
// is the right map key wherever case-insensitive lookup is needed.
func (d DataType) Key() string {
	return strings.ToLower(d.label)
}

// Equal reports whether d and other carry the same label, ignoring case.
// The absent value is equal only to itself.
func (d DataType) Equal(other DataType) bool {
	return d.Key() == other.Key()
}

// Compare orders d against other by case-insensitive lexicographic label
// comparison, returning -1, 0, or +1. The absent value sorts before any
// present value, so Compare(x) == 0 exactly when Equal(x).
func (d DataType) Compare(other DataType) int {
	return strings.Compare(d.Key(), other.Key())
}
