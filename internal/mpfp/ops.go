// Copyright 2026 Mark Dickinson. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfp

import "math/big"

var one = big.NewInt(1)

// run invokes f with NaN recovery: big.Float signals invalid operations
// (Inf-Inf, 0*Inf, 0/0, sqrt of a negative) by panicking with ErrNaN, in
// which case z becomes NaN and the NaN flag is raised.
func run(z *Num, f func() int) (t int) {
	defer func() {
		if p := recover(); p != nil {
			if _, ok := p.(big.ErrNaN); !ok {
				panic(p)
			}
			z.nan = true
			RaiseFlags(NaNFlag)
			t = 0
		}
	}()
	z.nan = false
	return f()
}

// nanOperand makes z NaN and raises the NaN flag if any operand is NaN.
func nanOperand(z *Num, args ...*Num) bool {
	for _, a := range args {
		if a.nan {
			z.nan = true
			RaiseFlags(NaNFlag)
			return true
		}
	}
	return false
}

func ternary(acc big.Accuracy) int { return int(acc) }

// Set sets z to the value of x rounded per mode at z's precision and
// returns the ternary code.
func Set(z, x *Num, mode big.RoundingMode) int {
	if nanOperand(z, x) {
		return 0
	}
	return run(z, func() int {
		z.f.SetMode(mode).Set(x.f)
		return ternary(z.f.Acc())
	})
}

// Add sets z to the rounded sum x+y.
func Add(z, x, y *Num, mode big.RoundingMode) int {
	if nanOperand(z, x, y) {
		return 0
	}
	return run(z, func() int {
		z.f.SetMode(mode).Add(x.f, y.f)
		return ternary(z.f.Acc())
	})
}

// Sub sets z to the rounded difference x-y.
func Sub(z, x, y *Num, mode big.RoundingMode) int {
	if nanOperand(z, x, y) {
		return 0
	}
	return run(z, func() int {
		z.f.SetMode(mode).Sub(x.f, y.f)
		return ternary(z.f.Acc())
	})
}

// Mul sets z to the rounded product x*y.
func Mul(z, x, y *Num, mode big.RoundingMode) int {
	if nanOperand(z, x, y) {
		return 0
	}
	return run(z, func() int {
		z.f.SetMode(mode).Mul(x.f, y.f)
		return ternary(z.f.Acc())
	})
}

// Quo sets z to the rounded quotient x/y. Division of a finite nonzero
// value by zero yields an infinity and raises the division-by-zero flag.
func Quo(z, x, y *Num, mode big.RoundingMode) int {
	if nanOperand(z, x, y) {
		return 0
	}
	t := run(z, func() int {
		z.f.SetMode(mode).Quo(x.f, y.f)
		return ternary(z.f.Acc())
	})
	if !z.nan && y.f.Sign() == 0 && x.f.Sign() != 0 && !x.f.IsInf() {
		RaiseFlags(DivisionByZero)
	}
	return t
}

// Sqrt sets z to the rounded square root of x.
func Sqrt(z, x *Num, mode big.RoundingMode) int {
	if nanOperand(z, x) {
		return 0
	}
	return run(z, func() int {
		z.f.SetMode(mode).Sqrt(x.f)
		return ternary(z.f.Acc())
	})
}

// Neg sets z to the rounded value of x with its sign flipped.
func Neg(z, x *Num, mode big.RoundingMode) int {
	if nanOperand(z, x) {
		return 0
	}
	return run(z, func() int {
		z.f.SetMode(mode).Neg(x.f)
		return ternary(z.f.Acc())
	})
}

// Abs sets z to the rounded absolute value of x.
func Abs(z, x *Num, mode big.RoundingMode) int {
	if nanOperand(z, x) {
		return 0
	}
	return run(z, func() int {
		z.f.SetMode(mode).Abs(x.f)
		return ternary(z.f.Acc())
	})
}

// NextAbove sets x to the least representable value greater than x, at
// x's precision and within the active exponent range.
func NextAbove(x *Num) { nextToward(x, +1) }

// NextBelow sets x to the greatest representable value less than x, at
// x's precision and within the active exponent range.
func NextBelow(x *Num) { nextToward(x, -1) }

func nextToward(x *Num, dir int) {
	if x.nan {
		return
	}
	emin, emax := Emin(), Emax()
	prec := x.f.Prec()
	neg := x.f.Signbit()
	if x.f.IsInf() {
		if (dir > 0) == neg {
			// stepping inward from an infinity lands on the
			// largest finite magnitude
			setLargest(x.f, emax, neg)
		}
		return
	}
	if x.f.Sign() == 0 {
		// step off zero to the smallest representable magnitude
		u := new(big.Float).SetPrec(prec).SetUint64(1)
		x.f.SetMantExp(u, emin-1)
		if dir < 0 {
			x.f.Neg(x.f)
		}
		return
	}

	// |x| = m · 2**(e-prec) with m integer, 2**(prec-1) <= m < 2**prec
	e := x.f.MantExp(nil)
	mf := new(big.Float).SetPrec(prec).SetMantExp(x.f, int(prec)-e)
	mi, _ := mf.Int(nil)
	if neg {
		mi.Neg(mi)
	}
	if away := (dir > 0) != neg; away {
		mi.Add(mi, one)
		if mi.BitLen() > int(prec) {
			mi.Rsh(mi, 1)
			e++
			if e > emax {
				x.f.SetInf(neg)
				return
			}
		}
	} else {
		mi.Sub(mi, one)
		if mi.BitLen() < int(prec) {
			if e-1 < emin {
				// shrank out of the range: signed zero
				x.f.SetInt64(0)
				if neg {
					x.f.Neg(x.f)
				}
				return
			}
			mi.Lsh(mi, 1)
			mi.Add(mi, one)
			e--
		}
	}
	nf := new(big.Float).SetPrec(prec).SetInt(mi)
	x.f.SetMantExp(nf, e-int(prec))
	if neg {
		x.f.Neg(x.f)
	}
}

// setLargest sets f to the largest finite value of f's precision within
// exponent emax: (1 - 2**-prec) · 2**emax.
func setLargest(f *big.Float, emax int, neg bool) {
	prec := f.Prec()
	mi := new(big.Int).Lsh(one, prec)
	mi.Sub(mi, one)
	nf := new(big.Float).SetPrec(prec).SetInt(mi)
	f.SetMantExp(nf, emax-int(prec))
	if neg {
		f.Neg(f)
	}
}
