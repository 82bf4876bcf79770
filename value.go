// Copyright 2026 Mark Dickinson. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math/big"

	"github.com/mdickinson/bigfloat-sub000/internal/mpfp"
)

// A Value is an immutable arbitrary-precision binary floating-point
// number: the result of a Stack operation or of one of the explicit
// conversions. A Value is never modified once returned to a caller.
type Value struct {
	k *mpfp.Num
}

// newValue is the single construction path for Values: every live Value
// wraps a kernel number obtained here.
func newValue(k *mpfp.Num) *Value { return &Value{k: k} }

// IsNaN reports whether x is a NaN.
func (x *Value) IsNaN() bool { return x.k.IsNaN() }

// IsInf reports whether x is +Inf or -Inf.
func (x *Value) IsInf() bool { return x.k.IsInf() }

// IsZero reports whether x is +0 or -0.
func (x *Value) IsZero() bool { return x.k.IsZero() }

// IsRegular reports whether x is finite and nonzero.
func (x *Value) IsRegular() bool { return x.k.IsRegular() }

// Signbit reports whether x is negative or negative zero.
func (x *Value) Signbit() bool { return x.k.Signbit() }

// Prec returns x's precision in bits.
func (x *Value) Prec() uint { return x.k.Prec() }

// Cmp compares x and y and returns -1, 0, or +1. Cmp panics if either
// operand is NaN; NaNs admit no ordering.
func (x *Value) Cmp(y *Value) int {
	if x.IsNaN() || y.IsNaN() {
		panic("bigfloat: ordered comparison with NaN")
	}
	return x.k.Cmp(y.k)
}

// Float64 returns the float64 nearest to x.
func (x *Value) Float64() float64 { return x.k.Float64() }

// Inf returns an infinity of the given precision and sign.
func Inf(prec uint, neg bool) *Value {
	return newValue(mpfp.Alloc(prec).SetInf(neg))
}

// NaN returns a NaN of the given precision.
func NaN(prec uint) *Value { return newValue(mpfp.Alloc(prec)) }

// toNum implicitly converts an operand to a kernel value. Integers and
// floats convert exactly at their natural width; a *Value passes its
// kernel number through unchanged.
func toNum(v any) (*mpfp.Num, error) {
	switch v := v.(type) {
	case *Value:
		return v.k, nil
	case int:
		return mpfp.FromInt64(int64(v)), nil
	case int8:
		return mpfp.FromInt64(int64(v)), nil
	case int16:
		return mpfp.FromInt64(int64(v)), nil
	case int32:
		return mpfp.FromInt64(int64(v)), nil
	case int64:
		return mpfp.FromInt64(v), nil
	case uint:
		return mpfp.FromUint64(uint64(v)), nil
	case uint8:
		return mpfp.FromUint64(uint64(v)), nil
	case uint16:
		return mpfp.FromUint64(uint64(v)), nil
	case uint32:
		return mpfp.FromUint64(uint64(v)), nil
	case uint64:
		return mpfp.FromUint64(v), nil
	case float64:
		return mpfp.FromFloat64(v), nil
	case float32:
		return mpfp.FromFloat32(v), nil
	case *big.Int:
		return mpfp.FromInt(v), nil
	case *big.Float:
		return mpfp.FromFloat(v), nil
	}
	return nil, &ConversionError{Value: v}
}
