// Copyright 2026 Mark Dickinson. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/mdickinson/bigfloat-sub000/internal/mpfp"
)

// FloatingDigits returns n significant decimal digits of x, rounded to
// nearest with ties to even. The digit string has exactly n characters
// and no leading zero unless x is zero; the value reads
// ±d.igits × 10**exp. x must be finite and n positive.
func FloatingDigits(x *Value, n int) (neg bool, digits string, exp int) {
	if n <= 0 {
		panic("bigfloat: FloatingDigits requires n > 0")
	}
	if x.IsNaN() || x.IsInf() {
		panic("bigfloat: FloatingDigits requires a finite value")
	}
	if x.IsZero() {
		return x.Signbit(), strings.Repeat("0", n), 0
	}
	if n == 1 {
		return floating1(x)
	}
	neg, ds, e := mpfp.GetString(10, n, x.k, big.ToNearestEven)
	return neg, ds, e - 1
}

// floating1 produces a single correctly-rounded digit. The kernel cannot
// be asked for one digit directly, so two digits are requested with the
// magnitude rounded down; a trailing '5' is then ambiguous (the value may
// sit exactly on, or just above, the halfway point) and is resolved by a
// second request with the magnitude rounded up. A true tie rounds half to
// even; the carry out of '9' is handled explicitly.
func floating1(x *Value) (bool, string, int) {
	down, up := big.ToNegativeInf, big.ToPositiveInf
	if x.Signbit() {
		down, up = up, down
	}
	neg, ds, e := mpfp.GetString(10, 2, x.k, down)
	roundUp := false
	switch {
	case ds[1] > '5':
		roundUp = true
	case ds[1] == '5':
		_, ds2, e2 := mpfp.GetString(10, 2, x.k, up)
		if ds2 != ds || e2 != e {
			roundUp = true // strictly above the halfway point
		} else {
			roundUp = ds[0]%2 == 1 // exact tie: round half to even
		}
	}
	d := ds[0]
	if roundUp {
		if d == '9' {
			return neg, "1", e // "10" -> "1", exponent up one
		}
		d++
	}
	return neg, string(d), e - 1
}

// FixedDigits returns the digits of x rounded (to nearest, ties to even)
// at n digits after the decimal point; the value reads
// ±digits × 10**(-n). x must be finite.
func FixedDigits(x *Value, n int) (neg bool, digits string, exp int) {
	if x.IsNaN() || x.IsInf() {
		panic("bigfloat: FixedDigits requires a finite value")
	}
	if x.IsZero() {
		return x.Signbit(), "0", -n
	}
	// 10**(e-1) <= |x| < 10**e, exact by rounding the magnitude down
	_, _, e := mpfp.GetString(10, 2, x.k, big.ToZero)
	sig := e + n
	switch {
	case sig < 0:
		// |x| is below half an ulp of the target scale
		return x.Signbit(), "0", -n
	case sig == 0:
		// rounding to the nearest multiple of 10**e: the only
		// candidates are 0 and 10**e, split at the "50" reading
		return x.Signbit(), fixedBoundary(x, e), -n
	}
	negD, ds, se := FloatingDigits(x, sig)
	// the only possible discrepancy with the magnitude estimate is a
	// rounding carry that lifted the exponent by one
	switch se - e {
	case -1:
	case 0:
		ds += "0"
	default:
		panic("bigfloat: fixed-precision carry invariant violated")
	}
	return negD, ds, -n
}

// fixedBoundary resolves rounding to a whole multiple of 10**e when x has
// no significant digits at that scale, with the same halfway
// disambiguation as floating1: a two-digit magnitude-down reading of "50"
// forces a magnitude-up re-query.
func fixedBoundary(x *Value, e int) string {
	down, up := big.ToNegativeInf, big.ToPositiveInf
	if x.Signbit() {
		down, up = up, down
	}
	_, ds, e2 := mpfp.GetString(10, 2, x.k, down)
	if e2 != e || ds < "50" {
		return "0"
	}
	if ds == "50" {
		_, ds2, e3 := mpfp.GetString(10, 2, x.k, up)
		if ds2 == ds && e3 == e2 {
			return "0" // exact halfway: ties to the even 0
		}
	}
	return "1"
}

// String formats x in the shortest decimal form that converts back to
// exactly x at x's own precision.
func (x *Value) String() string { return x.Text('g', -1) }

// Text converts x to a string according to format:
//
//	'e'	-d.dddde±dd, prec digits after the decimal point
//	'f'	-ddd.dddd, prec digits after the decimal point
//	'g'	shortest round-trip form for prec < 0, otherwise prec
//		significant digits with the notation chosen by exponent
//
// Non-finite values format as "Infinity", "-Infinity" and "NaN".
func (x *Value) Text(format byte, prec int) string {
	return string(x.Append(make([]byte, 0, 24), format, prec))
}

// Append appends the Text form of x to buf and returns the extended
// buffer.
func (x *Value) Append(buf []byte, format byte, prec int) []byte {
	switch {
	case x.IsNaN():
		return append(buf, "NaN"...)
	case x.IsInf():
		if x.Signbit() {
			return append(buf, "-Infinity"...)
		}
		return append(buf, "Infinity"...)
	}
	switch format {
	case 'e':
		return x.appendFloating(buf, prec)
	case 'f':
		return x.appendFixed(buf, prec)
	case 'g':
		if prec < 0 {
			return x.appendShortest(buf)
		}
		if prec == 0 {
			prec = 1
		}
		neg, ds, e := FloatingDigits(x, prec)
		return appendNotation(buf, neg, ds, e+1)
	}
	panic("bigfloat: unknown format " + strconv.QuoteRune(rune(format)))
}

func (x *Value) appendFloating(buf []byte, prec int) []byte {
	if prec < 0 {
		prec = 0
	}
	neg, ds, e := FloatingDigits(x, prec+1)
	if neg {
		buf = append(buf, '-')
	}
	buf = append(buf, ds[0])
	if len(ds) > 1 {
		buf = append(buf, '.')
		buf = append(buf, ds[1:]...)
	}
	return appendExp(buf, e)
}

func (x *Value) appendFixed(buf []byte, prec int) []byte {
	if prec < 0 {
		prec = 0
	}
	neg, ds, _ := FixedDigits(x, prec)
	if neg {
		buf = append(buf, '-')
	}
	if len(ds) <= prec {
		buf = append(buf, '0')
		if prec > 0 {
			buf = append(buf, '.')
			for i := len(ds); i < prec; i++ {
				buf = append(buf, '0')
			}
			buf = append(buf, ds...)
		}
		return buf
	}
	buf = append(buf, ds[:len(ds)-prec]...)
	if prec > 0 {
		buf = append(buf, '.')
		buf = append(buf, ds[len(ds)-prec:]...)
	}
	return buf
}

func (x *Value) appendShortest(buf []byte) []byte {
	if x.IsZero() {
		if x.Signbit() {
			buf = append(buf, '-')
		}
		return append(buf, '0')
	}
	neg, ds, e := mpfp.GetString(10, 0, x.k, big.ToNearestEven)
	return appendNotation(buf, neg, ds, e)
}

// appendNotation renders digits with the decimal point nominally placed
// after dotPos digits from the left. Exponential notation is chosen when
// dotPos <= -4 or dotPos > len(digits); otherwise the digits are padded
// with zeros and the point inserted.
func appendNotation(buf []byte, neg bool, digits string, dotPos int) []byte {
	for len(digits) > 1 && digits[0] == '0' {
		digits = digits[1:]
		dotPos--
	}
	if neg {
		buf = append(buf, '-')
	}
	nd := len(digits)
	if dotPos <= -4 || dotPos > nd {
		buf = append(buf, digits[0])
		if nd > 1 {
			buf = append(buf, '.')
			buf = append(buf, digits[1:]...)
		}
		return appendExp(buf, dotPos-1)
	}
	switch {
	case dotPos <= 0:
		buf = append(buf, '0', '.')
		for i := 0; i < -dotPos; i++ {
			buf = append(buf, '0')
		}
		buf = append(buf, digits...)
	default:
		buf = append(buf, digits[:dotPos]...)
		if dotPos < nd {
			buf = append(buf, '.')
			buf = append(buf, digits[dotPos:]...)
		}
	}
	return buf
}

// appendExp appends a strconv-style exponent: at least two digits, always
// signed.
func appendExp(buf []byte, exp int) []byte {
	buf = append(buf, 'e')
	if exp < 0 {
		buf = append(buf, '-')
		exp = -exp
	} else {
		buf = append(buf, '+')
	}
	if exp < 10 {
		buf = append(buf, '0')
	}
	return strconv.AppendInt(buf, int64(exp), 10)
}
