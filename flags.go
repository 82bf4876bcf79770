// Copyright 2026 Mark Dickinson. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"strings"

	"github.com/mdickinson/bigfloat-sub000/internal/mpfp"
)

// Flags is a set of sticky exception indicators. Unlike the context
// stack, the flag register is process-wide: every operation on every
// Stack accumulates into the same register until it is cleared.
type Flags uint32

// The five exception flags.
const (
	Inexact        = Flags(mpfp.Inexact)
	Overflow       = Flags(mpfp.Overflow)
	Underflow      = Flags(mpfp.Underflow)
	NaNFlag        = Flags(mpfp.NaNFlag)
	DivisionByZero = Flags(mpfp.DivisionByZero)
)

func (f Flags) String() string {
	if f == 0 {
		return "NoFlags"
	}
	var parts []string
	for _, e := range [...]struct {
		f Flags
		s string
	}{
		{Inexact, "Inexact"},
		{Overflow, "Overflow"},
		{Underflow, "Underflow"},
		{NaNFlag, "NaNFlag"},
		{DivisionByZero, "DivisionByZero"},
	} {
		if f&e.f != 0 {
			parts = append(parts, e.s)
		}
	}
	return strings.Join(parts, "|")
}

// TestFlag reports whether any flag in f is currently raised.
func TestFlag(f Flags) bool { return mpfp.TestFlags(mpfp.Flags(f)) }

// RaiseFlag raises every flag in f.
func RaiseFlag(f Flags) { mpfp.RaiseFlags(mpfp.Flags(f)) }

// ClearFlag lowers every flag in f.
func ClearFlag(f Flags) { mpfp.ClearFlags(mpfp.Flags(f)) }

// FlagState returns the full flag register.
func FlagState() Flags { return Flags(mpfp.CurFlags()) }

// SetFlagState replaces the full flag register with f: every flag in f is
// raised and every flag not in f is lowered.
func SetFlagState(f Flags) { mpfp.AssignFlags(mpfp.Flags(f)) }

// WithSavedFlags runs body and then restores the flag register to the
// state it had on entry, on every exit path. Operations documented as
// quiet use it to leave no trace on the register.
func WithSavedFlags(body func()) {
	saved := FlagState()
	defer SetFlagState(saved)
	body()
}
