// Copyright 2026 Mark Dickinson. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mpfp is the numeric kernel behind package bigfloat: signed,
// variable-precision binary floating-point values with correctly-rounded
// operations, a process-wide exponent range, and a process-wide exception
// flag register.
//
// The arithmetic itself is provided by math/big.Float; this package adds
// the pieces big.Float does not have: NaN values, the global exponent
// range with its range-check and gradual-underflow primitives, the flag
// register, and digit-string generation in all rounding modes.
package mpfp

import (
	"math"
	"math/big"
	"sync/atomic"
)

// Precision limits, in bits.
const (
	PrecMin = 2
	PrecMax = 1 << 24
)

// Exponent limits. EminMin and EmaxMax bound the global exponent range
// itself; EminMax and EmaxMin bound what a caller may request for each
// end of the range.
const (
	EminMin = -(1 << 30)
	EmaxMax = 1 << 30
	EminMax = EmaxMax
	EmaxMin = EminMin
)

// A Num is a kernel value. It is either NaN or a big.Float (which covers
// signed zeros, finite values and infinities). Nums are created with
// Alloc or one of the From conversions, never directly.
type Num struct {
	f   *big.Float
	nan bool
}

// Alloc returns a new Num with the given precision in bits, set to NaN.
func Alloc(prec uint) *Num {
	return &Num{f: new(big.Float).SetPrec(prec), nan: true}
}

// IsNaN reports whether x is NaN.
func (x *Num) IsNaN() bool { return x.nan }

// IsInf reports whether x is +Inf or -Inf.
func (x *Num) IsInf() bool { return !x.nan && x.f.IsInf() }

// IsZero reports whether x is +0 or -0.
func (x *Num) IsZero() bool { return !x.nan && x.f.Sign() == 0 }

// IsRegular reports whether x is finite and nonzero.
func (x *Num) IsRegular() bool {
	return !x.nan && !x.f.IsInf() && x.f.Sign() != 0
}

// Signbit reports whether x is negative or negative zero.
// The sign bit of a NaN is not observable; Signbit returns false.
func (x *Num) Signbit() bool { return !x.nan && x.f.Signbit() }

// Prec returns x's precision in bits.
func (x *Num) Prec() uint { return x.f.Prec() }

// Exp returns x's exponent e such that |x| = m · 2**e with 0.5 <= m < 1.
// x must be finite and nonzero.
func (x *Num) Exp() int { return x.f.MantExp(nil) }

// Cmp compares x and y and returns -1, 0, or +1. Neither operand may be
// NaN.
func (x *Num) Cmp(y *Num) int { return x.f.Cmp(y.f) }

// Float64 returns the float64 value nearest to x.
func (x *Num) Float64() float64 {
	if x.nan {
		return math.NaN()
	}
	f, _ := x.f.Float64()
	return f
}

// SetInf sets z to an infinity with the given sign and returns z.
func (z *Num) SetInf(neg bool) *Num {
	z.nan = false
	z.f.SetInf(neg)
	return z
}

// FromInt64 returns v as a 64-bit Num; the conversion is exact.
func FromInt64(v int64) *Num {
	return &Num{f: new(big.Float).SetPrec(64).SetInt64(v)}
}

// FromUint64 returns v as a 64-bit Num; the conversion is exact.
func FromUint64(v uint64) *Num {
	return &Num{f: new(big.Float).SetPrec(64).SetUint64(v)}
}

// FromFloat64 returns v as a 53-bit Num; the conversion is exact and
// preserves the sign of zero.
func FromFloat64(v float64) *Num {
	if math.IsNaN(v) {
		return Alloc(53)
	}
	return &Num{f: new(big.Float).SetPrec(53).SetFloat64(v)}
}

// FromFloat32 returns v as a 24-bit Num; the conversion is exact.
func FromFloat32(v float32) *Num {
	if math.IsNaN(float64(v)) {
		return Alloc(24)
	}
	return &Num{f: new(big.Float).SetPrec(24).SetFloat64(float64(v))}
}

// FromInt returns v as a Num wide enough to hold it exactly.
func FromInt(v *big.Int) *Num {
	prec := uint(v.BitLen())
	if prec < PrecMin {
		prec = PrecMin
	}
	return &Num{f: new(big.Float).SetPrec(prec).SetInt(v)}
}

// FromFloat returns an exact copy of v at v's own precision.
func FromFloat(v *big.Float) *Num {
	return &Num{f: new(big.Float).Copy(v)}
}

// Global exponent range. The range is read only by CheckRange,
// Subnormalize, NextAbove and NextBelow; the elementary operations are
// always computed as if the range were unbounded.
var (
	curEmin atomic.Int64
	curEmax atomic.Int64
)

func init() {
	curEmin.Store(EminMin)
	curEmax.Store(EmaxMax)
}

// Emin returns the active minimum exponent.
func Emin() int { return int(curEmin.Load()) }

// Emax returns the active maximum exponent.
func Emax() int { return int(curEmax.Load()) }

// SetEmin sets the active minimum exponent. It panics if e is outside
// [EminMin, EminMax].
func SetEmin(e int) {
	if e < EminMin || e > EminMax {
		panic("mpfp: emin out of range")
	}
	curEmin.Store(int64(e))
}

// SetEmax sets the active maximum exponent. It panics if e is outside
// [EmaxMin, EmaxMax].
func SetEmax(e int) {
	if e < EmaxMin || e > EmaxMax {
		panic("mpfp: emax out of range")
	}
	curEmax.Store(int64(e))
}

// Flags is the kernel's sticky exception register, a bitset over the five
// exception conditions.
type Flags uint32

const (
	Inexact Flags = 1 << iota
	Overflow
	Underflow
	NaNFlag
	DivisionByZero
)

var flagReg atomic.Uint32

// CurFlags returns the full flag register.
func CurFlags() Flags { return Flags(flagReg.Load()) }

// AssignFlags replaces the full flag register with fs.
func AssignFlags(fs Flags) { flagReg.Store(uint32(fs)) }

// RaiseFlags raises every flag in fs.
func RaiseFlags(fs Flags) {
	for {
		old := flagReg.Load()
		if flagReg.CompareAndSwap(old, old|uint32(fs)) {
			return
		}
	}
}

// ClearFlags lowers every flag in fs.
func ClearFlags(fs Flags) {
	for {
		old := flagReg.Load()
		if flagReg.CompareAndSwap(old, old&^uint32(fs)) {
			return
		}
	}
}

// TestFlags reports whether any flag in fs is raised.
func TestFlags(fs Flags) bool { return Flags(flagReg.Load())&fs != 0 }
