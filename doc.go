// Copyright 2026 Mark Dickinson. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bigfloat provides IEEE 754-style arbitrary-precision binary
floating-point arithmetic: immutable Values computed under explicit,
composable rounding Contexts, with sticky exception Flags and
correctly-rounded decimal formatting.

A Context bundles up to five optional settings: precision in bits,
rounding mode, minimum and maximum exponent, and gradual (subnormal)
underflow. Contexts combine right-biased, so a partial context acts as an
overlay:

	ctx, err := bigfloat.NewContext(
		bigfloat.WithPrecision(24),
		bigfloat.WithRounding(bigfloat.ToZero),
	)

Operations run on a Stack, which holds the active context for one
goroutine. The base of every stack is DefaultContext (53-bit precision,
round to nearest even, the widest exponent range), so the active context
always has every field resolved. Scoped activation nests and restores on
every exit path:

	s := bigfloat.NewStack()
	err := s.With(bigfloat.SinglePrecision, func() error {
		v, err := s.Add(x, 1.5)
		...
	})

Numeric exceptions never surface as errors: an operation that overflows
returns an infinity and raises the Overflow flag, division of a nonzero
value by zero raises DivisionByZero, and so on. The flag register is
process-wide and sticky; callers that care inspect it with TestFlag after
the operation.

Formatting is correctly rounded. Value.String returns the shortest
decimal string that parses back to the identical value at the same
precision; Text and Append provide fixed and scientific forms in the
style of big.Float.
*/
package bigfloat
