// Copyright 2026 Mark Dickinson. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"fmt"
	"math"
	"strings"
)

// Context field presence bits.
const (
	fieldPrec = 1 << iota
	fieldMode
	fieldEmin
	fieldEmax
	fieldSubnormalize

	fieldAll = fieldPrec | fieldMode | fieldEmin | fieldEmax | fieldSubnormalize
)

// A Context is an immutable bundle of rounding parameters: precision in
// bits, rounding mode, exponent bounds, and whether results underflow
// gradually. Each field is independently optional; an unset field is
// filled in from the enclosing context when the Context is activated on a
// Stack. Contexts are plain values: they compare with == and may be used
// as map keys.
type Context struct {
	prec    uint32
	emin    int32
	emax    int32
	mode    RoundingMode
	subnorm bool
	has     uint8
}

// EmptyContext has no fields set. It is the identity for Combine.
var EmptyContext Context

// DefaultContext is the context at the base of every Stack: 53 bits of
// precision, round to nearest even, the widest allowed exponent range,
// and no gradual underflow. All five fields are set, which is what keeps
// every activated context fully resolved.
var DefaultContext = must(NewContext(
	WithPrecision(53),
	WithRounding(ToNearestEven),
	WithEmin(EminMin),
	WithEmax(EmaxMax),
	WithSubnormalize(false),
))

// A ContextOption sets a single Context field.
type ContextOption func(*Context) error

// WithPrecision sets the precision field, in bits.
func WithPrecision(prec uint) ContextOption {
	return func(c *Context) error {
		if prec < PrecisionMin || prec > PrecisionMax {
			return &RangeError{Field: "precision", Value: int64(prec), Min: PrecisionMin, Max: PrecisionMax}
		}
		c.prec = uint32(prec)
		c.has |= fieldPrec
		return nil
	}
}

// WithRounding sets the rounding mode field.
func WithRounding(mode RoundingMode) ContextOption {
	return func(c *Context) error {
		if mode > AwayFromZero {
			return &RangeError{Field: "rounding", Value: int64(mode), Min: int64(ToNearestEven), Max: int64(AwayFromZero)}
		}
		c.mode = mode
		c.has |= fieldMode
		return nil
	}
}

// WithEmin sets the minimum exponent field.
func WithEmin(emin int) ContextOption {
	return func(c *Context) error {
		if emin < EminMin || emin > EminMax {
			return &RangeError{Field: "emin", Value: int64(emin), Min: EminMin, Max: EminMax}
		}
		c.emin = int32(emin)
		c.has |= fieldEmin
		return nil
	}
}

// WithEmax sets the maximum exponent field.
func WithEmax(emax int) ContextOption {
	return func(c *Context) error {
		if emax < EmaxMin || emax > EmaxMax {
			return &RangeError{Field: "emax", Value: int64(emax), Min: EmaxMin, Max: EmaxMax}
		}
		c.emax = int32(emax)
		c.has |= fieldEmax
		return nil
	}
}

// WithSubnormalize sets the gradual-underflow field.
func WithSubnormalize(on bool) ContextOption {
	return func(c *Context) error {
		c.subnorm = on
		c.has |= fieldSubnormalize
		return nil
	}
}

// NewContext builds a Context from the given options. Every field is
// validated here: an out-of-bounds value fails construction with a
// *RangeError naming the field, never a silent clamp.
func NewContext(opts ...ContextOption) (Context, error) {
	var c Context
	for _, o := range opts {
		if err := o(&c); err != nil {
			return Context{}, err
		}
	}
	return c, nil
}

func must(c Context, err error) Context {
	if err != nil {
		panic(err)
	}
	return c
}

// Combine returns a context taking d's fields where d has them set and
// c's otherwise. Combine is associative and right-biased, with
// EmptyContext as identity.
func (c Context) Combine(d Context) Context {
	r := c
	if d.has&fieldPrec != 0 {
		r.prec = d.prec
	}
	if d.has&fieldMode != 0 {
		r.mode = d.mode
	}
	if d.has&fieldEmin != 0 {
		r.emin = d.emin
	}
	if d.has&fieldEmax != 0 {
		r.emax = d.emax
	}
	if d.has&fieldSubnormalize != 0 {
		r.subnorm = d.subnorm
	}
	r.has |= d.has
	return r
}

// Prec returns the precision field and whether it is set.
func (c Context) Prec() (uint, bool) { return uint(c.prec), c.has&fieldPrec != 0 }

// Mode returns the rounding mode field and whether it is set.
func (c Context) Mode() (RoundingMode, bool) { return c.mode, c.has&fieldMode != 0 }

// Emin returns the minimum exponent field and whether it is set.
func (c Context) Emin() (int, bool) { return int(c.emin), c.has&fieldEmin != 0 }

// Emax returns the maximum exponent field and whether it is set.
func (c Context) Emax() (int, bool) { return int(c.emax), c.has&fieldEmax != 0 }

// Subnormalize returns the gradual-underflow field and whether it is set.
func (c Context) Subnormalize() (bool, bool) { return c.subnorm, c.has&fieldSubnormalize != 0 }

// resolved reports whether all five fields are set.
func (c Context) resolved() bool { return c.has == fieldAll }

// Hash returns a stable hash of c's fields (FNV-1a).
func (c Context) Hash() uint64 {
	h := uint64(14695981039346656037)
	mix := func(v uint64) {
		h ^= v
		h *= 1099511628211
	}
	mix(uint64(c.has))
	if c.has&fieldPrec != 0 {
		mix(uint64(c.prec))
	}
	if c.has&fieldMode != 0 {
		mix(uint64(c.mode))
	}
	if c.has&fieldEmin != 0 {
		mix(uint64(uint32(c.emin)))
	}
	if c.has&fieldEmax != 0 {
		mix(uint64(uint32(c.emax)))
	}
	if c.has&fieldSubnormalize != 0 {
		if c.subnorm {
			mix(1)
		} else {
			mix(0)
		}
	}
	return h
}

func (c Context) String() string {
	var parts []string
	if p, ok := c.Prec(); ok {
		parts = append(parts, fmt.Sprintf("precision=%d", p))
	}
	if m, ok := c.Mode(); ok {
		parts = append(parts, "rounding="+m.String())
	}
	if e, ok := c.Emin(); ok {
		parts = append(parts, fmt.Sprintf("emin=%d", e))
	}
	if e, ok := c.Emax(); ok {
		parts = append(parts, fmt.Sprintf("emax=%d", e))
	}
	if s, ok := c.Subnormalize(); ok {
		parts = append(parts, fmt.Sprintf("subnormalize=%t", s))
	}
	return "Context(" + strings.Join(parts, ", ") + ")"
}

// Precision returns a context setting only the precision field. It
// panics on an out-of-range precision; use NewContext to get the error
// instead.
func Precision(prec uint) Context {
	return must(NewContext(WithPrecision(prec)))
}

// Rounding returns a context setting only the rounding mode field.
func Rounding(mode RoundingMode) Context {
	return must(NewContext(WithRounding(mode)))
}

// Contexts setting only a rounding mode.
var (
	RoundTiesToEven     = Rounding(ToNearestEven)
	RoundTowardZero     = Rounding(ToZero)
	RoundTowardPositive = Rounding(ToPositiveInf)
	RoundTowardNegative = Rounding(ToNegativeInf)
	RoundAwayFromZero   = Rounding(AwayFromZero)
)

// ieeePrecision gives the significand width of the four named IEEE
// 754-2008 binary interchange formats.
var ieeePrecision = map[int]int{16: 11, 32: 24, 64: 53, 128: 113}

// IEEEContext returns the context of the IEEE 754-2008 binary interchange
// format with the given total width in bits: one of 16, 32, 64 or 128, or
// a multiple of 32 not smaller than 160. The resulting context rounds to
// nearest, underflows gradually, and has all five fields set.
func IEEEContext(width int) (Context, error) {
	prec, ok := ieeePrecision[width]
	if !ok {
		if width < 160 || width%32 != 0 {
			return Context{}, fmt.Errorf("bigfloat: invalid IEEE format width %d", width)
		}
		prec = width - int(math.Round(4*math.Log2(float64(width)))) + 13
	}
	emax := 1 << (width - prec - 1)
	return NewContext(
		WithPrecision(uint(prec)),
		WithRounding(ToNearestEven),
		WithEmin(4-emax-prec),
		WithEmax(emax),
		WithSubnormalize(true),
	)
}

// The four named IEEE 754-2008 binary formats.
var (
	HalfPrecision   = must(IEEEContext(16))
	SinglePrecision = must(IEEEContext(32))
	DoublePrecision = must(IEEEContext(64))
	QuadPrecision   = must(IEEEContext(128))
)
