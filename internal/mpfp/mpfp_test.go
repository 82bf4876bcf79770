// Copyright 2026 Mark Dickinson. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mpfp

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// num returns a prec-bit Num holding v, rounded to nearest if needed.
func num(prec uint, v float64) *Num {
	z := Alloc(prec)
	Set(z, FromFloat64(v), big.ToNearestEven)
	return z
}

// withRange runs f with the global exponent range set to [emin, emax]
// and restores the previous range afterward.
func withRange(emin, emax int, f func()) {
	oldMin, oldMax := Emin(), Emax()
	SetEmin(emin)
	SetEmax(emax)
	defer func() {
		SetEmin(oldMin)
		SetEmax(oldMax)
	}()
	f()
}

func TestClassification(t *testing.T) {
	nan := Alloc(24)
	require.True(t, nan.IsNaN())
	require.False(t, nan.IsInf())
	require.False(t, nan.IsZero())
	require.False(t, nan.IsRegular())
	require.False(t, nan.Signbit())
	require.Equal(t, uint(24), nan.Prec())
	require.True(t, math.IsNaN(nan.Float64()))

	inf := Alloc(24).SetInf(true)
	require.True(t, inf.IsInf())
	require.True(t, inf.Signbit())
	require.False(t, inf.IsNaN())
	require.False(t, inf.IsRegular())

	z := FromFloat64(math.Copysign(0, -1))
	require.True(t, z.IsZero())
	require.True(t, z.Signbit())
	require.False(t, z.IsRegular())

	x := FromFloat64(1.5)
	require.True(t, x.IsRegular())
	require.Equal(t, 1.5, x.Float64())
	require.Equal(t, 1, x.Exp()) // 1.5 = 0.75 * 2^1
}

func TestConversions(t *testing.T) {
	require.Equal(t, uint(64), FromInt64(-7).Prec())
	require.Equal(t, -7.0, FromInt64(-7).Float64())
	require.Equal(t, uint(64), FromUint64(7).Prec())
	require.Equal(t, uint(53), FromFloat64(0.1).Prec())
	require.Equal(t, uint(24), FromFloat32(0.5).Prec())
	require.True(t, FromFloat64(math.NaN()).IsNaN())

	// big.Int conversion is exact at the integer's own width
	n := new(big.Int).Lsh(big.NewInt(1), 100)
	n.Add(n, big.NewInt(1))
	x := FromInt(n)
	require.Equal(t, uint(101), x.Prec())
	y := new(big.Int).Sub(n, big.NewInt(1))
	require.Equal(t, 1, x.Cmp(FromInt(y)))

	// zero has no bits but still needs a legal precision
	require.Equal(t, uint(PrecMin), FromInt(big.NewInt(0)).Prec())

	f := new(big.Float).SetPrec(80).SetFloat64(2.25)
	require.Equal(t, uint(80), FromFloat(f).Prec())
	require.Equal(t, 2.25, FromFloat(f).Float64())
}

func TestExponentRange(t *testing.T) {
	require.Equal(t, EminMin, Emin())
	require.Equal(t, EmaxMax, Emax())

	withRange(-100, 100, func() {
		require.Equal(t, -100, Emin())
		require.Equal(t, 100, Emax())
	})
	require.Equal(t, EminMin, Emin())
	require.Equal(t, EmaxMax, Emax())

	require.Panics(t, func() { SetEmin(EminMin - 1) })
	require.Panics(t, func() { SetEmax(EmaxMax + 1) })
}

func TestFlagRegister(t *testing.T) {
	AssignFlags(0)
	require.Equal(t, Flags(0), CurFlags())

	RaiseFlags(Inexact | Overflow)
	require.True(t, TestFlags(Inexact))
	require.True(t, TestFlags(Inexact|Underflow)) // any-of semantics
	require.False(t, TestFlags(Underflow))

	ClearFlags(Overflow)
	require.Equal(t, Inexact, CurFlags())

	AssignFlags(NaNFlag)
	require.Equal(t, NaNFlag, CurFlags())
	AssignFlags(0)
}
