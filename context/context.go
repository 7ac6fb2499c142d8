// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides IEEE-754 style contexts for Floats.
//
// A Context bundles a precision and a rounding mode so that a caller doing
// a chain of operations at a fixed precision doesn't have to repeat both
// arguments at every call site:
//
//	ctx := context.New(200, float.Nearest)
//	p := ctx.Mul(a, b)
//	r := ctx.ReciprocalSqrt(p)
//
// Because float.Float values are immutable, a Context's operations
// return a fresh *float.Float rather than writing into a receiver the
// way a mutable-Decimal context would; the precision and rounding mode
// still come from the Context, not from the arguments.
//
// A Context also catches NaN: once an operation's result is NaN (whether
// from an ordinary arithmetic special case or from a programmer-contract
// violation such as a zero precision), the Context records the error and
// every subsequent operation on it becomes a no-op returning NaN, until Err
// is called to read and clear the error.
package context

import (
	"errors"
	"math/big"

	pkgerrors "github.com/pkg/errors"

	"github.com/db47h/malachite"
)

// handleNaNs toggles the error-catching behavior described in the package
// doc comment. It is a constant rather than a Context field: every Context
// behaves the same way.
const handleNaNs = true

// DefaultPrec is the precision New and SetPrec fall back to when given 0.
const DefaultPrec = 53 // matches the float64 significand width.

// A Context wraps precision, rounding mode and NaN-error bookkeeping around
// this module's free functions.
type Context struct {
	prec uint64
	mode float.RoundingMode
	err  error
}

// New creates a new Context with the given precision and rounding mode. If
// prec is 0, it is set to DefaultPrec.
func New(prec uint64, mode float.RoundingMode) *Context {
	return new(Context).SetMode(mode).SetPrec(prec)
}

// Mode returns c's rounding mode.
func (c *Context) Mode() float.RoundingMode {
	return c.mode
}

// Prec returns c's precision, in bits.
func (c *Context) Prec() uint64 {
	return c.prec
}

// SetMode sets c's rounding mode and returns c.
func (c *Context) SetMode(mode float.RoundingMode) *Context {
	c.mode = mode
	return c
}

// SetPrec sets c's precision and returns c. A prec of 0 is treated as
// DefaultPrec.
func (c *Context) SetPrec(prec uint64) *Context {
	if prec == 0 {
		prec = DefaultPrec
	}
	c.prec = prec
	return c
}

// Err returns the first error recorded since the last call to Err, and
// clears it.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// op is the shape of every float package free function this Context wraps:
// an operation producing a Float and the Ordering of that Float relative to
// the exact result.
type op func() (*float.Float, float.Ordering)

// guard runs f, trapping a programmer-contract ErrNaN panic (zero
// precision, or Exact rounding of an inexact result) into c.err, and
// treating an ordinary NaN result as an error too — matching this package's
// documented "catches NaN" contract even though the wrapped operations
// normally return NaN as data, not via panic, for arithmetic special cases.
func (c *Context) guard(f op) (z *float.Float, ord float.Ordering) {
	if handleNaNs && c.err != nil {
		return float.NaNFloat(), float.Equal
	}
	if handleNaNs {
		defer func() {
			if r := recover(); r != nil {
				rerr, ok := r.(error)
				if !ok {
					panic(r)
				}
				var nanErr float.ErrNaN
				if !errors.As(rerr, &nanErr) {
					panic(r)
				}
				c.err = pkgerrors.Wrap(nanErr, "context")
				z, ord = float.NaNFloat(), float.Equal
			}
		}()
	}
	z, ord = f()
	if handleNaNs && c.err == nil && z.IsNaN() {
		c.err = pkgerrors.Wrap(float.ErrNaN{}, "context")
	}
	return
}

// round applies c's precision and rounding mode to x.
func (c *Context) round(x *float.Float) *float.Float {
	z, _ := c.guard(func() (*float.Float, float.Ordering) {
		return float.SetPrec(x, c.prec, c.mode)
	})
	return z
}

// NewInt returns a new Float set to the (possibly rounded) exact value of
// x, at c's precision and rounding mode.
func (c *Context) NewInt(x *big.Int) *float.Float {
	return c.round(float.NewFloatFromInt(x))
}

// NewInt64 returns a new Float set to the (possibly rounded) exact value of
// x, at c's precision and rounding mode.
func (c *Context) NewInt64(x int64) *float.Float {
	return c.round(float.NewFloatFromInt(big.NewInt(x)))
}

// Mul returns the product x*y, rounded at c's precision and mode.
func (c *Context) Mul(x, y *float.Float) *float.Float {
	z, _ := c.guard(func() (*float.Float, float.Ordering) {
		return float.MulPrecRound(x, y, c.prec, c.mode)
	})
	return z
}

// MulRational returns the product x*y, rounded at c's precision and mode,
// where y is an arbitrary-precision Rational.
func (c *Context) MulRational(x *float.Float, y *big.Rat) *float.Float {
	z, _ := c.guard(func() (*float.Float, float.Ordering) {
		return float.MulRationalPrecRound(x, y, c.prec, c.mode)
	})
	return z
}

// ReciprocalSqrt returns 1/sqrt(x), rounded at c's precision and mode.
// There is no direct Sqrt: callers wanting sqrt(x) itself combine this with
// Mul, since sqrt(x) == x * (1/sqrt(x)).
func (c *Context) ReciprocalSqrt(x *float.Float) *float.Float {
	z, _ := c.guard(func() (*float.Float, float.Ordering) {
		return float.ReciprocalSqrtPrecRound(x, c.prec, c.mode)
	})
	return z
}

// ReciprocalSqrtRational returns 1/sqrt(x), rounded at c's precision and
// mode, for an arbitrary-precision Rational x.
func (c *Context) ReciprocalSqrtRational(x *big.Rat) *float.Float {
	z, _ := c.guard(func() (*float.Float, float.Ordering) {
		return float.ReciprocalSqrtRationalPrecRound(x, c.prec, c.mode)
	})
	return z
}

// Neg returns the (possibly rounded) value of x with its sign negated.
func (c *Context) Neg(x *float.Float) *float.Float {
	return c.round(float.Neg(x))
}

// Abs returns the (possibly rounded) value |x|.
func (c *Context) Abs(x *float.Float) *float.Float {
	return c.round(float.Abs(x))
}
