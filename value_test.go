// Copyright 2026 Mark Dickinson. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, s *Stack, v any) *Value {
	t.Helper()
	x, err := s.New(v)
	require.NoError(t, err)
	return x
}

func TestValueClassification(t *testing.T) {
	s := NewStack()

	v := mustNew(t, s, 1.5)
	require.True(t, v.IsRegular())
	require.False(t, v.IsZero())
	require.False(t, v.IsInf())
	require.False(t, v.IsNaN())
	require.False(t, v.Signbit())
	require.Equal(t, uint(53), v.Prec())

	z := mustNew(t, s, 0)
	require.True(t, z.IsZero())
	require.False(t, z.IsRegular())
	require.False(t, z.Signbit())

	nz := mustNew(t, s, math.Copysign(0, -1))
	require.True(t, nz.IsZero())
	require.True(t, nz.Signbit())

	inf := Inf(24, true)
	require.True(t, inf.IsInf())
	require.True(t, inf.Signbit())
	require.False(t, inf.IsRegular())
	require.Equal(t, uint(24), inf.Prec())

	nan := NaN(24)
	require.True(t, nan.IsNaN())
	require.False(t, nan.IsInf())
	require.False(t, nan.IsZero())
	require.False(t, nan.Signbit())
}

func TestCmp(t *testing.T) {
	s := NewStack()
	one := mustNew(t, s, 1)
	two := mustNew(t, s, 2)
	require.Equal(t, -1, one.Cmp(two))
	require.Equal(t, 1, two.Cmp(one))
	require.Equal(t, 0, one.Cmp(mustNew(t, s, 1.0)))

	// zeros compare equal regardless of sign
	require.Equal(t, 0, mustNew(t, s, 0.0).Cmp(mustNew(t, s, math.Copysign(0, -1))))

	require.Equal(t, -1, one.Cmp(Inf(53, false)))
	require.Equal(t, 1, one.Cmp(Inf(53, true)))

	require.Panics(t, func() { one.Cmp(NaN(53)) })
	require.Panics(t, func() { NaN(53).Cmp(one) })
}

func TestOperandConversions(t *testing.T) {
	s := NewStack()
	for _, tc := range []struct {
		in   any
		want float64
	}{
		{int(-7), -7},
		{int8(-8), -8},
		{int16(300), 300},
		{int32(1 << 20), 1 << 20},
		{int64(-1 << 40), -(1 << 40)},
		{uint(7), 7},
		{uint8(255), 255},
		{uint16(65535), 65535},
		{uint32(1 << 30), 1 << 30},
		{uint64(1 << 50), 1 << 50},
		{float32(0.5), 0.5},
		{float64(0.1), 0.1},
		{big.NewInt(123456789), 123456789},
		{big.NewFloat(2.25), 2.25},
	} {
		v, err := s.New(tc.in)
		require.NoError(t, err, "%T", tc.in)
		require.Equal(t, tc.want, v.Float64(), "%T", tc.in)
	}

	// a Value passes through and compares equal to itself
	x := mustNew(t, s, 42)
	y, err := s.New(x)
	require.NoError(t, err)
	require.Equal(t, 0, x.Cmp(y))

	// float64 NaN converts to a NaN Value
	nan, err := s.New(math.NaN())
	require.NoError(t, err)
	require.True(t, nan.IsNaN())
}

func TestConversionError(t *testing.T) {
	s := NewStack()
	_, err := s.New("1.5")
	var cerr *ConversionError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, "1.5", cerr.Value)
	require.Contains(t, err.Error(), "string")
}

func TestBigOperandsConvertExactly(t *testing.T) {
	s := NewStack()

	// a 90-bit integer survives implicit conversion and is only rounded
	// by the operation's own context
	n := new(big.Int).Lsh(big.NewInt(1), 90)
	n.Add(n, big.NewInt(1))
	defer s.Enter(Precision(91))()
	v, err := s.Add(n, 0)
	require.NoError(t, err)
	w, err := s.Sub(v, n)
	require.NoError(t, err)
	require.True(t, w.IsZero())
}
