// Copyright 2026 Mark Dickinson. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZeroStackUsable(t *testing.T) {
	var s Stack
	require.Equal(t, DefaultContext, s.Current())

	v, err := s.Add(1, 2)
	require.NoError(t, err)
	require.Equal(t, 3.0, v.Float64())
}

func TestEnterExitNesting(t *testing.T) {
	s := NewStack()

	exit1 := s.Enter(Precision(24))
	p, _ := s.Current().Prec()
	require.Equal(t, uint(24), p)
	m, _ := s.Current().Mode()
	require.Equal(t, ToNearestEven, m) // inherited from the default

	exit2 := s.Enter(RoundTowardZero)
	p, _ = s.Current().Prec()
	require.Equal(t, uint(24), p) // still layered
	m, _ = s.Current().Mode()
	require.Equal(t, ToZero, m)

	exit2()
	m, _ = s.Current().Mode()
	require.Equal(t, ToNearestEven, m)

	exit1()
	require.Equal(t, DefaultContext, s.Current())
}

func TestExitWithoutEnterPanics(t *testing.T) {
	s := NewStack()
	exit := s.Enter(Precision(24))
	exit()
	require.Panics(t, func() { exit() })
}

func TestWithRestoresOnError(t *testing.T) {
	s := NewStack()
	sentinel := errors.New("boom")
	err := s.With(Precision(24), func() error {
		p, _ := s.Current().Prec()
		require.Equal(t, uint(24), p)
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)
	require.Equal(t, DefaultContext, s.Current())
}

func TestWithRestoresOnPanic(t *testing.T) {
	s := NewStack()
	require.Panics(t, func() {
		_ = s.With(Precision(24), func() error {
			panic("boom")
		})
	})
	require.Equal(t, DefaultContext, s.Current())
}

func TestStacksAreIndependent(t *testing.T) {
	a, b := NewStack(), NewStack()
	defer a.Enter(Precision(10))()
	p, _ := b.Current().Prec()
	require.Equal(t, uint(53), p)
}

// Each goroutine owns a Stack; activations on one must not leak into
// results computed on another, and the transient exponent-range narrowing
// inside an operation must not corrupt concurrent operations.
func TestConcurrentStacks(t *testing.T) {
	const iters = 200
	var wg sync.WaitGroup
	for _, prec := range []uint{20, 40, 64} {
		prec := prec
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := NewStack()
			defer s.Enter(must(NewContext(WithPrecision(prec), WithEmin(-100), WithEmax(100))))()
			for i := 0; i < iters; i++ {
				v, err := s.Quo(1, 3)
				if err != nil {
					t.Errorf("Quo: %v", err)
					return
				}
				if v.Prec() != prec {
					t.Errorf("got precision %d, want %d", v.Prec(), prec)
					return
				}
				if f := v.Float64(); f < 0.333 || f > 0.334 {
					t.Errorf("1/3 at %d bits came out as %g", prec, f)
					return
				}
			}
		}()
	}
	wg.Wait()
}
