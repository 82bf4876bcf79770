// Copyright 2026 Mark Dickinson. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import "fmt"

// A RangeError reports a Context field set outside the bounds reported by
// the kernel. It is returned at construction time; a Context holding an
// out-of-range field cannot exist.
type RangeError struct {
	Field    string
	Value    int64
	Min, Max int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("bigfloat: %s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// A ConversionError reports an operand of a type that cannot be
// implicitly converted to a Value.
type ConversionError struct {
	Value any
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("bigfloat: cannot convert %v (type %T) to a Value", e.Value, e.Value)
}

// A ParseError reports a malformed numeric string. No partial Value is
// produced alongside it.
type ParseError struct {
	Input string
	err   error
}

func (e *ParseError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("bigfloat: parsing %q: %v", e.Input, e.err)
	}
	return fmt.Sprintf("bigfloat: parsing %q: invalid number", e.Input)
}

func (e *ParseError) Unwrap() error { return e.err }
