// Copyright 2026 Mark Dickinson. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfp

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

var ten = big.NewInt(10)

// GetString converts x to a correctly-rounded decimal digit string. The
// returned exponent is such that the value reads 0.digits × 10**exp.
//
// ndigits == 0 selects the minimal digit count that lets x round-trip at
// its own precision under nearest-even rounding. ndigits == 1 is not
// supported and panics; callers that need a single digit must round a
// two-digit request themselves. x must be finite and nonzero.
func GetString(base, ndigits int, x *Num, mode big.RoundingMode) (neg bool, digits string, exp int) {
	if base != 10 {
		panic(fmt.Sprintf("mpfp: unsupported base %d", base))
	}
	if ndigits == 1 {
		panic("mpfp: GetString does not support ndigits == 1")
	}
	if x.nan || x.f.IsInf() || x.f.Sign() == 0 {
		panic("mpfp: GetString requires a finite nonzero value")
	}
	neg = x.f.Signbit()
	if ndigits == 0 {
		digits, exp = shortestDigits(x)
		return
	}
	digits, exp = roundDigits(x, ndigits, mode)
	return
}

// roundDigits produces exactly n correctly-rounded decimal digits of x,
// with the rounding mode applied to the value (so a negative x rounds its
// magnitude up under ToNegativeInf).
func roundDigits(x *Num, n int, mode big.RoundingMode) (string, int) {
	m, e2 := mantissa(x)
	neg := x.f.Signbit()

	// estimate e10 such that 10**(e10-1) <= |x| < 10**e10, then let the
	// digit count correct it
	e10 := int(math.Ceil(float64(x.f.MantExp(nil)) * math.Log10(2)))
	for {
		q, rem, den := scaled(m, e2, n-e10)
		ds := q.String()
		if len(ds) < n {
			e10--
			continue
		}
		if len(ds) > n {
			e10++
			continue
		}
		if roundDigitsUp(mode, neg, q, rem, den) {
			q.Add(q, one)
			ds = q.String()
			if len(ds) > n {
				// carry out of the leading digit
				ds = ds[:n]
				e10++
			}
		}
		return ds, e10
	}
}

// scaled returns floor(m · 2**e2 · 10**s) with the division remainder and
// divisor, for remainder-based rounding.
func scaled(m *big.Int, e2, s int) (q, rem, den *big.Int) {
	num := new(big.Int).Set(m)
	den = big.NewInt(1)
	if e2 > 0 {
		num.Lsh(num, uint(e2))
	} else if e2 < 0 {
		den.Lsh(den, uint(-e2))
	}
	if s > 0 {
		num.Mul(num, pow10(s))
	} else if s < 0 {
		den.Mul(den, pow10(-s))
	}
	q, rem = new(big.Int).QuoRem(num, den, new(big.Int))
	return
}

// roundDigitsUp reports whether the truncated digit string q must be
// incremented to honor mode for a value of the given sign.
func roundDigitsUp(mode big.RoundingMode, neg bool, q, rem, den *big.Int) bool {
	if rem.Sign() == 0 {
		return false
	}
	switch mode {
	case big.ToZero:
		return false
	case big.AwayFromZero:
		return true
	case big.ToPositiveInf:
		return !neg
	case big.ToNegativeInf:
		return neg
	}
	// nearest: compare twice the remainder against the divisor
	r2 := new(big.Int).Lsh(rem, 1)
	switch r2.Cmp(den) {
	case 1:
		return true
	case -1:
		return false
	}
	return q.Bit(0) == 1 // ties to even
}

// mantissa decomposes x into an integer m and exponent e with |x| = m · 2**e.
func mantissa(x *Num) (*big.Int, int) {
	p := int(x.f.MinPrec())
	e := x.f.MantExp(nil)
	t := new(big.Float).SetPrec(uint(p)).Abs(x.f)
	t.SetMantExp(t, p-e)
	m, _ := t.Int(nil)
	return m, e - p
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}

// shortestDigits returns the minimal digit string that recovers x exactly
// when converted back at x's precision with nearest-even rounding.
func shortestDigits(x *Num) (string, int) {
	maxDigits := int(float64(x.f.Prec())*math.Log10(2)) + 2
	for n := 1; n < maxDigits; n++ {
		ds, e := roundDigits(x, n, big.ToNearestEven)
		if roundTrips(x, ds, e) {
			return ds, e
		}
	}
	return roundDigits(x, maxDigits, big.ToNearestEven)
}

// roundTrips reports whether digits · 10**(exp-len(digits)) converts back
// to exactly |x| at x's precision.
func roundTrips(x *Num, digits string, exp int) bool {
	d, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return false
	}
	k := exp - len(digits)
	df := exactFloat(d)
	r := new(big.Float).SetPrec(x.f.Prec())
	if k >= 0 {
		r.Mul(df, exactFloat(pow10(k)))
	} else {
		r.Quo(df, exactFloat(pow10(-k)))
	}
	ax := new(big.Float).SetPrec(x.f.Prec()).Abs(x.f)
	return r.Cmp(ax) == 0
}

// exactFloat converts i to a big.Float wide enough to hold it exactly.
func exactFloat(i *big.Int) *big.Float {
	prec := uint(i.BitLen())
	if prec == 0 {
		prec = 1
	}
	return new(big.Float).SetPrec(prec).SetInt(i)
}

// SetString sets z to the value of s, rounded per mode at z's precision,
// and returns the ternary code. It accepts the number syntax of
// big.Float.Parse with base detection, the infinity spellings "Inf" and
// "Infinity", and NaN. The entire string must be consumed; a malformed
// string is an error and leaves no usable value in z.
func SetString(z *Num, s string, mode big.RoundingMode) (int, error) {
	u := s
	neg := false
	if len(u) > 0 && (u[0] == '+' || u[0] == '-') {
		neg = u[0] == '-'
		u = u[1:]
	}
	if strings.EqualFold(u, "nan") {
		z.nan = true
		return 0, nil
	}
	if strings.EqualFold(u, "inf") || strings.EqualFold(u, "infinity") {
		z.SetInf(neg)
		return 0, nil
	}
	z.f.SetMode(mode)
	if _, _, err := z.f.Parse(s, 0); err != nil {
		return 0, err
	}
	z.nan = false
	return ternary(z.f.Acc()), nil
}
