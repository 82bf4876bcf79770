// Copyright 2026 Mark Dickinson. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfp

import "math/big"

// CheckRange forces z into the active exponent range. t is the ternary
// code of the operation that produced z; the return value is the ternary
// code of the final result.
//
// A result whose exponent exceeds emax is rewritten to an infinity, or to
// the largest finite value for modes that round toward zero on z's sign,
// and raises Inexact and Overflow. A result below emin is rewritten to a
// signed zero or to the minimal magnitude 2**(emin-1) and raises Inexact
// and Underflow. In-range results are left untouched except that Inexact
// is raised when t is nonzero.
func CheckRange(z *Num, t int, mode big.RoundingMode) int {
	if z.nan || z.f.IsInf() {
		return t
	}
	neg := z.f.Signbit()
	if z.f.Sign() == 0 {
		if t != 0 {
			// a tiny nonzero result was already rounded to zero
			RaiseFlags(Inexact | Underflow)
		}
		return t
	}
	emin, emax := Emin(), Emax()
	e := z.f.MantExp(nil)
	switch {
	case e > emax:
		return overflow(z, mode, neg)
	case e < emin:
		return underflow(z, t, mode, neg, e, emin)
	default:
		if t != 0 {
			RaiseFlags(Inexact)
		}
	}
	return t
}

func overflow(z *Num, mode big.RoundingMode, neg bool) int {
	RaiseFlags(Inexact | Overflow)
	if mode == big.ToZero || (mode == big.ToNegativeInf && !neg) || (mode == big.ToPositiveInf && neg) {
		setLargest(z.f, Emax(), neg)
		if neg {
			return 1
		}
		return -1
	}
	z.f.SetInf(neg)
	if neg {
		return -1
	}
	return 1
}

func underflow(z *Num, t int, mode big.RoundingMode, neg bool, e, emin int) int {
	RaiseFlags(Inexact | Underflow)
	toZero := false
	switch mode {
	case big.ToZero:
		toZero = true
	case big.ToNegativeInf:
		toZero = !neg
	case big.ToPositiveInf:
		toZero = neg
	case big.AwayFromZero:
		// keep the minimal magnitude
	default:
		// nearest: the midpoint between 0 and 2**(emin-1) is
		// 2**(emin-2), and only an exact midpoint ties to zero
		switch {
		case e < emin-1:
			toZero = true
		case z.f.MinPrec() == 1:
			// z reads as the midpoint; a nonzero ternary means z
			// was itself rounded, so the true value lies on the
			// side t points away from
			if t == 0 {
				toZero = true
			} else if neg {
				toZero = t < 0
			} else {
				toZero = t > 0
			}
		}
	}
	if toZero {
		z.f.SetInt64(0)
		if neg {
			z.f.Neg(z.f)
			return 1
		}
		return -1
	}
	u := new(big.Float).SetPrec(z.f.Prec()).SetUint64(1)
	z.f.SetMantExp(u, emin-1)
	if neg {
		z.f.Neg(z.f)
		return -1
	}
	return 1
}

// Subnormalize emulates IEEE-754 gradual underflow: when z's exponent is
// below emin + prec - 1, z is re-rounded to only exp - emin + 1
// significant bits. t is the ternary code that produced z and is needed
// to avoid double rounding when z sits exactly on a rounding tie. The
// Inexact flag is raised if the value changes; the declared precision of
// z is preserved.
func Subnormalize(z *Num, t int, mode big.RoundingMode) int {
	if z.nan || z.f.IsInf() || z.f.Sign() == 0 {
		return t
	}
	emin := Emin()
	prec := z.f.Prec()
	e := z.f.MantExp(nil)
	if e >= emin+int(prec)-1 {
		return t
	}
	shrunk := uint(1)
	if e > emin {
		shrunk = uint(e - emin + 1)
	}
	rmode := mode
	if mode == big.ToNearestEven && t != 0 && z.f.MinPrec() == shrunk+1 {
		// z reads as an exact tie but is itself a rounded result;
		// the true value lies on the side t points away from
		if t > 0 {
			rmode = big.ToNegativeInf
		} else {
			rmode = big.ToPositiveInf
		}
	}
	z.f.SetMode(rmode)
	z.f.SetPrec(shrunk)
	if acc := z.f.Acc(); acc != big.Exact {
		RaiseFlags(Inexact)
		t = int(acc)
	}
	z.f.SetPrec(prec)
	z.f.SetMode(mode)
	return t
}
