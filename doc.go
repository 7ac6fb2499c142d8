// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package float implements correctly-rounded arbitrary-precision binary
floating-point arithmetic, in the style of math/big.Float but with an
explicit, inspectable rounding contract: every operation that can round
returns both the rounded Float and an Ordering describing how the returned
value compares to the exact mathematical result.

The zero value for a Float is not a valid Finite value by itself (unlike
big.Float, whose zero value is ready-to-use +0); use NewFloat,
NewFloatFromInt, NaNFloat, InfFloat or ZeroFloat to obtain a Float. Existing
Floats are never mutated by the operations in this package: MulPrecRound,
ReciprocalSqrtPrecRound, and friends allocate
and return a new *Float rather than rounding into a receiver, which keeps
the "every Float exclusively owns its significand" invariant trivially true
without requiring callers to reason about aliasing.

A nonzero finite Float represents

	sign × significand × 2**(exponent - L)

with significand a positive integer whose top bit is set, L its bit length
(a multiple of LimbWidth), and MinExponent <= exponent <= MaxExponent. A
Float may also be NaN, ±0, or ±Inf.

Operations are written as free functions rather than receiver methods
because, unlike big.Float's in-place accumulation style, every result here
is a fresh immutable value paired with its Ordering:

	z, ord := MulPrecRound(x, y, prec, rm)

Package context provides an IEEE-754-context-style wrapper (fixed
precision/rounding mode, NaN trapping) for callers that prefer bundling
precision and rounding mode the way math/big.Float's accumulator style
invites.
*/
package float
