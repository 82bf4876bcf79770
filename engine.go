// Copyright 2026 Mark Dickinson. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math/big"
	"sync"

	"github.com/mdickinson/bigfloat-sub000/internal/mpfp"
)

// rangeMu serializes the narrow/check/restore window on the kernel's
// global exponent range. The elementary operations never read the global
// range (they are computed as if the range were unbounded), so they stay
// outside the critical section and cannot observe another goroutine's
// transiently narrowed bounds.
var rangeMu sync.Mutex

// A kernelOp computes one kernel operation into z and returns its ternary
// code. The operands are captured by the closure.
type kernelOp func(z *mpfp.Num, mode big.RoundingMode) int

// resolve returns the effective context for an operation: the current
// context overlaid with the explicit override, filled from DefaultContext
// if any field is still unset.
func (s *Stack) resolve(override *Context) Context {
	ctx := s.cur
	if override != nil {
		ctx = ctx.Combine(*override)
	}
	if !ctx.resolved() {
		ctx = DefaultContext.Combine(ctx)
	}
	return ctx
}

// apply executes op under the effective context. The operation itself is
// computed at the kernel's full exponent range, so operands created under
// a wider context are never clipped on read; only the finished result is
// forced into the context's range, subnormalized if the context asks for
// gradual underflow, and accounted in the exception flags.
func (s *Stack) apply(override *Context, op kernelOp) *Value {
	ctx := s.resolve(override)
	prec, _ := ctx.Prec()
	mode, _ := ctx.Mode()
	emin, _ := ctx.Emin()
	emax, _ := ctx.Emax()
	subnorm, _ := ctx.Subnormalize()

	z := mpfp.Alloc(prec)
	t := op(z, mode.kernel())

	rangeMu.Lock()
	defer rangeMu.Unlock()
	oldEmin, oldEmax := mpfp.Emin(), mpfp.Emax()
	mpfp.SetEmin(emin)
	mpfp.SetEmax(emax)
	defer func() {
		mpfp.SetEmin(oldEmin)
		mpfp.SetEmax(oldEmax)
	}()

	t = mpfp.CheckRange(z, t, mode.kernel())
	if subnorm {
		mpfp.Subnormalize(z, t, mode.kernel())
		if z.IsRegular() && z.Exp() < emin+int(prec)-1 {
			// every subnormal result reports underflow, even an
			// exact one
			mpfp.RaiseFlags(mpfp.Underflow)
		}
	}
	return newValue(z)
}

// stepUlp moves v by one unit in the last place in the given direction,
// within ctx's exponent range. v must not have escaped to a caller yet.
func stepUlp(v *Value, ctx Context, up bool) {
	emin, _ := ctx.Emin()
	emax, _ := ctx.Emax()

	rangeMu.Lock()
	defer rangeMu.Unlock()
	oldEmin, oldEmax := mpfp.Emin(), mpfp.Emax()
	mpfp.SetEmin(emin)
	mpfp.SetEmax(emax)
	defer func() {
		mpfp.SetEmin(oldEmin)
		mpfp.SetEmax(oldEmax)
	}()

	if up {
		mpfp.NextAbove(v.k)
	} else {
		mpfp.NextBelow(v.k)
	}
}
