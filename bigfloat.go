// Copyright 2026 Mark Dickinson. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math/big"
	"strconv"

	"github.com/mdickinson/bigfloat-sub000/internal/mpfp"
)

// Precision and exponent limits, as reported by the kernel. A Context
// precision must lie in [PrecisionMin, PrecisionMax]; its exponent bounds
// must lie in [EminMin, EminMax] and [EmaxMin, EmaxMax] respectively.
const (
	PrecisionMin = mpfp.PrecMin
	PrecisionMax = mpfp.PrecMax

	EminMin = mpfp.EminMin
	EminMax = mpfp.EminMax
	EmaxMin = mpfp.EmaxMin
	EmaxMax = mpfp.EmaxMax
)

// RoundingMode determines how the result of an operation is rounded to
// its context's precision. Rounding may change the value; the change is
// recorded in the Inexact flag.
type RoundingMode byte

// The rounding modes recognized by the kernel.
const (
	ToNearestEven RoundingMode = iota // == IEEE 754-2008 roundTiesToEven
	ToZero                            // == IEEE 754-2008 roundTowardZero
	ToPositiveInf                     // == IEEE 754-2008 roundTowardPositive
	ToNegativeInf                     // == IEEE 754-2008 roundTowardNegative
	AwayFromZero                      // no IEEE 754-2008 equivalent
)

func (m RoundingMode) String() string {
	switch m {
	case ToNearestEven:
		return "ToNearestEven"
	case ToZero:
		return "ToZero"
	case ToPositiveInf:
		return "ToPositiveInf"
	case ToNegativeInf:
		return "ToNegativeInf"
	case AwayFromZero:
		return "AwayFromZero"
	}
	return "RoundingMode(" + strconv.Itoa(int(m)) + ")"
}

// kernel maps m to the kernel's rounding mode type.
func (m RoundingMode) kernel() big.RoundingMode {
	switch m {
	case ToNearestEven:
		return big.ToNearestEven
	case ToZero:
		return big.ToZero
	case ToPositiveInf:
		return big.ToPositiveInf
	case ToNegativeInf:
		return big.ToNegativeInf
	case AwayFromZero:
		return big.AwayFromZero
	}
	panic("bigfloat: invalid rounding mode " + m.String())
}
