// Copyright 2026 Mark Dickinson. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"fmt"
	"math/big"

	"github.com/mdickinson/bigfloat-sub000/internal/mpfp"
)

// New returns v converted to a Value and rounded under the current
// context. v may be a *Value, any integer, float32/float64, *big.Int or
// *big.Float; anything else is a *ConversionError.
func (s *Stack) New(v any) (*Value, error) {
	return s.unary(mpfp.Set, v)
}

// Add returns the rounded sum x+y under the current context.
func (s *Stack) Add(x, y any) (*Value, error) { return s.binary(mpfp.Add, x, y) }

// Sub returns the rounded difference x-y under the current context.
func (s *Stack) Sub(x, y any) (*Value, error) { return s.binary(mpfp.Sub, x, y) }

// Mul returns the rounded product x*y under the current context.
func (s *Stack) Mul(x, y any) (*Value, error) { return s.binary(mpfp.Mul, x, y) }

// Quo returns the rounded quotient x/y under the current context.
// Division of a finite nonzero value by zero yields an infinity and
// raises the DivisionByZero flag; 0/0 yields NaN.
func (s *Stack) Quo(x, y any) (*Value, error) { return s.binary(mpfp.Quo, x, y) }

// Sqrt returns the rounded square root of x under the current context.
// The square root of a negative value is NaN.
func (s *Stack) Sqrt(x any) (*Value, error) { return s.unary(mpfp.Sqrt, x) }

// Pos returns x itself, rounded under the current context.
func (s *Stack) Pos(x any) (*Value, error) { return s.unary(mpfp.Set, x) }

// Neg returns -x, rounded under the current context.
func (s *Stack) Neg(x any) (*Value, error) { return s.unary(mpfp.Neg, x) }

// Abs returns |x|, rounded under the current context.
func (s *Stack) Abs(x any) (*Value, error) { return s.unary(mpfp.Abs, x) }

func (s *Stack) unary(op func(z, x *mpfp.Num, mode big.RoundingMode) int, x any) (*Value, error) {
	a, err := toNum(x)
	if err != nil {
		return nil, err
	}
	return s.apply(nil, func(z *mpfp.Num, mode big.RoundingMode) int {
		return op(z, a, mode)
	}), nil
}

func (s *Stack) binary(op func(z, x, y *mpfp.Num, mode big.RoundingMode) int, x, y any) (*Value, error) {
	a, err := toNum(x)
	if err != nil {
		return nil, err
	}
	b, err := toNum(y)
	if err != nil {
		return nil, err
	}
	return s.apply(nil, func(z *mpfp.Num, mode big.RoundingMode) int {
		return op(z, a, b, mode)
	}), nil
}

// Parse converts the string str to a Value under the current context. It
// accepts the decimal and prefixed binary/octal/hex forms of
// big.Float.Parse plus the infinities and NaN; the entire string must be
// valid. A malformed string yields a *ParseError and no Value.
func (s *Stack) Parse(str string) (*Value, error) {
	var perr error
	v := s.apply(nil, func(z *mpfp.Num, mode big.RoundingMode) int {
		t, err := mpfp.SetString(z, str, mode)
		if err != nil {
			perr = &ParseError{Input: str, err: err}
		}
		return t
	})
	if perr != nil {
		return nil, perr
	}
	return v, nil
}

// NextUp returns the least representable value greater than x under the
// current context. NextUp is quiet: the flag register is left exactly as
// it was found.
func (s *Stack) NextUp(x any) (*Value, error) { return s.step(x, true) }

// NextDown returns the greatest representable value less than x under the
// current context. NextDown is quiet like NextUp.
func (s *Stack) NextDown(x any) (*Value, error) { return s.step(x, false) }

func (s *Stack) step(x any, up bool) (v *Value, err error) {
	dir := RoundTowardNegative
	if up {
		dir = RoundTowardPositive
	}
	WithSavedFlags(func() {
		SetFlagState(0)
		var a *mpfp.Num
		if a, err = toNum(x); err != nil {
			return
		}
		v = s.apply(&dir, func(z *mpfp.Num, mode big.RoundingMode) int {
			return mpfp.Set(z, a, mode)
		})
		if !TestFlag(Inexact) {
			// x was exactly representable in the context, so the
			// directed rounding did not move: step one ulp
			stepUlp(v, s.resolve(&dir), up)
		}
	})
	return
}

// Exact converts v to a Value without reference to the current context:
// the conversion is performed at v's natural precision under the widest
// exponent range, and a conversion that still overflows or underflows is
// reported as an error, because an exact conversion that loses
// information is a contract violation. The flag register is left as
// found.
func Exact(v any) (*Value, error) {
	a, err := toNum(v)
	if err != nil {
		return nil, err
	}
	prec := a.Prec()
	if prec < PrecisionMin {
		prec = PrecisionMin
	}
	ctx := must(NewContext(WithPrecision(prec)))
	var out *Value
	WithSavedFlags(func() {
		SetFlagState(0)
		st := NewStack()
		out = st.apply(&ctx, func(z *mpfp.Num, mode big.RoundingMode) int {
			return mpfp.Set(z, a, mode)
		})
		if TestFlag(Overflow | Underflow) {
			// never render the operand itself: a value that failed
			// the range check can have a gigantic decimal form
			err = fmt.Errorf("bigfloat: exact conversion of %T with exponent %d exceeded the exponent range", v, a.Exp())
			out = nil
		}
	})
	return out, err
}
