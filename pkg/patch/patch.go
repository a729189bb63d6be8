// Copyright (c) 2026 Aticom Group. All rights reserved.
// Author: kirubel.wolde@aticomgroup.com

/*
Package patch models partial updates with explicit per-field presence.

# Problem

A JSON PATCH body cannot distinguish "field omitted" from "field set to null"
once decoded into plain Go values: both collapse to the zero value. Relying on
zero values turns an innocent partial update into an accidental overwrite.

# Contract

[Field] records, at decode time, whether the JSON document carried the key at
all and whether its value was null:

  - absent       → the stored column is left untouched
  - present+null → the stored column is explicitly cleared (SET NULL)
  - present+value→ the stored column is set to the value

[Clauses] turns a set of Fields into a SQL SET fragment with positional
arguments, so storage code never inspects presence flags by hand.
*/
package patch

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Field is a JSON-decodable value that remembers whether it was provided.
//
// The zero Field means "absent".
type Field[T any] struct {
	value   T
	present bool
	null    bool
}

// Set constructs a present Field carrying the given value.
func Set[T any](v T) Field[T] {
	return Field[T]{value: v, present: true}
}

// Null constructs a present Field carrying an explicit null.
func Null[T any]() Field[T] {
	return Field[T]{present: true, null: true}
}

// UnmarshalJSON implements [json.Unmarshaler]. It is only invoked when the
// key exists in the document, which is exactly the presence signal.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.present = true
	if string(data) == "null" {
		f.null = true
		return nil
	}
	return json.Unmarshal(data, &f.value)
}

// MarshalJSON implements [json.Marshaler] for symmetry in tests and logging.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.present || f.null {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// Present reports whether the JSON document carried this field at all.
func (f Field[T]) Present() bool { return f.present }

// Null reports whether the field was explicitly set to JSON null.
func (f Field[T]) Null() bool { return f.present && f.null }

// Value returns the carried value and true when the field holds a real value
// (present and not null).
func (f Field[T]) Value() (T, bool) {
	if !f.present || f.null {
		var zero T
		return zero, false
	}
	return f.value, true
}

// Or returns the carried value when present and non-null, otherwise current.
//
// This applies the "omitted means unchanged" rule for non-nullable columns.
func (f Field[T]) Or(current T) T {
	if v, ok := f.Value(); ok {
		return v
	}
	return current
}

// Apply resolves the field against the current pointer-typed value:
// absent keeps current, null clears to nil, a value replaces it.
func (f Field[T]) Apply(current *T) *T {
	if !f.present {
		return current
	}
	if f.null {
		return nil
	}
	v := f.value
	return &v
}

// # SQL SET Clause Building

// Clauses accumulates SQL SET fragments for the present fields of a patch.
//
// Positional arguments continue from the seed args passed to [NewClauses]
// (typically the WHERE arguments, e.g. the row id at $1).
type Clauses struct {
	sets []string
	args []any
}

// NewClauses starts a clause builder whose argument list is seeded with the
// given WHERE arguments.
func NewClauses(whereArgs ...any) *Clauses {
	return &Clauses{args: whereArgs}
}

// Add appends a SET fragment for the column when the field is present:
// "col = $n" for values, "col = NULL" for explicit nulls. Absent fields
// contribute nothing.
func Add[T any](c *Clauses, column string, f Field[T]) {
	if !f.Present() {
		return
	}
	if f.Null() {
		c.sets = append(c.sets, column+" = NULL")
		return
	}
	v, _ := f.Value()
	c.args = append(c.args, v)
	c.sets = append(c.sets, fmt.Sprintf("%s = $%d", column, len(c.args)))
}

// AddRaw appends a literal SET fragment (e.g. "updatedat = NOW()").
func (c *Clauses) AddRaw(fragment string) {
	c.sets = append(c.sets, fragment)
}

// Empty reports whether no field contributed a SET fragment.
func (c *Clauses) Empty() bool { return len(c.sets) == 0 }

// Set renders the comma-joined SET fragment list.
func (c *Clauses) Set() string { return strings.Join(c.sets, ", ") }

// Args returns the full positional argument list (seed WHERE args first).
func (c *Clauses) Args() []any { return c.args }
