// Copyright 2026 Mark Dickinson. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloatingDigits(t *testing.T) {
	s := NewStack()
	for _, tc := range []struct {
		in     float64
		n      int
		neg    bool
		digits string
		exp    int
	}{
		{1.5, 2, false, "15", 0},
		{1.5, 4, false, "1500", 0},
		{-1.5, 2, true, "15", 0},
		{0.1, 5, false, "10000", -1},
		{1234, 3, false, "123", 3},
		{1235, 3, false, "124", 3}, // exact tie, 124 is even
		{99.5, 2, false, "10", 2},  // rounding carry lifts the exponent
		{0, 3, false, "000", 0},

		// single digit: tie cases resolved half to even, carry out of '9'
		{2.5, 1, false, "2", 0},
		{3.5, 1, false, "4", 0},
		{-3.5, 1, true, "4", 0},
		{9.5, 1, false, "1", 1},
		{0.25, 1, false, "2", -1},
		{0.75, 1, false, "8", -1},
	} {
		v := mustNew(t, s, tc.in)
		neg, ds, e := FloatingDigits(v, tc.n)
		require.Equal(t, tc.neg, neg, "%v/%d", tc.in, tc.n)
		require.Equal(t, tc.digits, ds, "%v/%d", tc.in, tc.n)
		require.Equal(t, tc.exp, e, "%v/%d", tc.in, tc.n)
	}

	require.Panics(t, func() { FloatingDigits(mustNew(t, s, 1), 0) })
	require.Panics(t, func() { FloatingDigits(Inf(53, false), 2) })
	require.Panics(t, func() { FloatingDigits(NaN(53), 2) })
}

func TestFixedDigits(t *testing.T) {
	s := NewStack()
	for _, tc := range []struct {
		in     float64
		n      int
		neg    bool
		digits string
	}{
		{56.125, 2, false, "5612"}, // exact tie, even neighbor below
		{56.375, 2, false, "5638"}, // exact tie, even neighbor above
		{1.5, 3, false, "1500"},
		{99.5, 0, false, "100"},

		// rounding to a whole multiple of the scale with no digits left
		{0.5, 0, false, "0"},
		{1.5, 0, false, "2"},
		{2.5, 0, false, "2"},
		{0.75, 0, false, "1"},
		{0.25, 1, false, "2"},
		{-2.5, 0, true, "2"},

		// magnitude entirely below the scale
		{0.001, 2, false, "0"},
		{0.004, 2, false, "0"},
		{0, 4, false, "0"},
	} {
		v := mustNew(t, s, tc.in)
		neg, ds, e := FixedDigits(v, tc.n)
		require.Equal(t, tc.neg, neg, "%v/%d", tc.in, tc.n)
		require.Equal(t, tc.digits, ds, "%v/%d", tc.in, tc.n)
		require.Equal(t, -tc.n, e, "%v/%d", tc.in, tc.n)
	}

	require.Panics(t, func() { FixedDigits(Inf(53, true), 2) })
	require.Panics(t, func() { FixedDigits(NaN(53), 2) })
}

func TestStringShortest(t *testing.T) {
	s := NewStack()
	for _, tc := range []struct {
		in   float64
		want string
	}{
		{1.5, "1.5"},
		{-1.5, "-1.5"},
		{0.1, "0.1"},
		{2, "2"},
		{1048576, "1048576"},
		{0, "0"},
		{math.Copysign(0, -1), "-0"},

		// exponential exactly when the point falls more than four
		// places left of the digits or anywhere right of them
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{0.00012, "0.00012"},
		{1230, "1.23e+03"},
		{100, "1e+02"},
		{1.5e300, "1.5e+300"},
		{2.5e-300, "2.5e-300"},
	} {
		require.Equal(t, tc.want, mustNew(t, s, tc.in).String(), "%v", tc.in)
	}

	require.Equal(t, "0.3333333333333333", mustNew(t, s, 1.0/3).String())
	require.Equal(t, "Infinity", Inf(53, false).String())
	require.Equal(t, "-Infinity", Inf(53, true).String())
	require.Equal(t, "NaN", NaN(53).String())
}

// The shortest form must convert back to the identical value at the same
// precision, whatever the precision.
func TestStringRoundTrip(t *testing.T) {
	for _, prec := range []uint{5, 10, 24, 53, 100, 200} {
		s := NewStack()
		defer s.Enter(Precision(prec))()
		x, err := s.Sqrt(2)
		require.NoError(t, err)
		y, err := s.Parse(x.String())
		require.NoError(t, err)
		require.Equal(t, 0, x.Cmp(y), "prec %d: %s", prec, x.String())

		x, err = s.Quo(1, 7)
		require.NoError(t, err)
		y, err = s.Parse(x.String())
		require.NoError(t, err)
		require.Equal(t, 0, x.Cmp(y), "prec %d: %s", prec, x.String())
	}
}

func TestTextScientific(t *testing.T) {
	s := NewStack()
	for _, tc := range []struct {
		in   float64
		prec int
		want string
	}{
		{1.5, 2, "1.50e+00"},
		{1.5, 0, "2e+00"},
		{0.1, 4, "1.0000e-01"},
		{-1234, 2, "-1.23e+03"},
		{0.5, 1, "5.0e-01"},
		{0, 2, "0.00e+00"},
	} {
		require.Equal(t, tc.want, mustNew(t, s, tc.in).Text('e', tc.prec), "%v/%d", tc.in, tc.prec)
	}
}

func TestTextFixed(t *testing.T) {
	s := NewStack()
	for _, tc := range []struct {
		in   float64
		prec int
		want string
	}{
		{56.125, 2, "56.12"},
		{56.375, 2, "56.38"},
		{2.5, 0, "2"},
		{3.5, 0, "4"},
		{9.5, 0, "10"},
		{-2.5, 0, "-2"},
		{0.25, 1, "0.2"},
		{0.001, 2, "0.00"},
		{-0.001, 2, "-0.00"},
		{1.5, 3, "1.500"},
		{0, 0, "0"},
		{0, 3, "0.000"},
	} {
		require.Equal(t, tc.want, mustNew(t, s, tc.in).Text('f', tc.prec), "%v/%d", tc.in, tc.prec)
	}
	require.Equal(t, "-Infinity", Inf(53, true).Text('f', 2))
	require.Equal(t, "NaN", NaN(53).Text('f', 2))
}

func TestTextGeneral(t *testing.T) {
	s := NewStack()
	v, err := s.Quo(1, 3)
	require.NoError(t, err)
	require.Equal(t, "0.333", v.Text('g', 3))
	require.Equal(t, "0.3", v.Text('g', 0)) // prec 0 means one digit

	w, err := s.New(1234000)
	require.NoError(t, err)
	require.Equal(t, "1.23e+06", w.Text('g', 3))

	require.Panics(t, func() { v.Text('q', 3) })
}

func TestAppend(t *testing.T) {
	s := NewStack()
	buf := []byte("x=")
	buf = mustNew(t, s, 1.5).Append(buf, 'f', 1)
	require.Equal(t, "x=1.5", string(buf))
}

func BenchmarkStringShortest(b *testing.B) {
	s := NewStack()
	x, _ := s.Sqrt(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.String()
	}
}
