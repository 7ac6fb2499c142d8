// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMulPrecRoundExact(t *testing.T) {
	x := NewFloat(6, 0)
	y := NewFloat(7, 0)
	z, ord := MulPrecRound(x, y, 16, Nearest)
	assert.Equal(t, Equal, ord)
	assert.Equal(t, 0, z.Cmp(NewFloat(42, 0)))
}

func TestMulPrecRoundSigns(t *testing.T) {
	x := NewFloat(6, 0)
	y := NewFloat(7, 0)
	want := NewFloat(42, 0)

	z, _ := MulPrecRound(Neg(x), y, 16, Nearest)
	assert.True(t, z.Signbit())
	assert.Equal(t, 0, Neg(z).Cmp(want))

	z2, _ := MulPrecRound(Neg(x), Neg(y), 16, Nearest)
	assert.False(t, z2.Signbit())
	assert.Equal(t, 0, z2.Cmp(want))
}

func TestMulPrecRoundSpecialCases(t *testing.T) {
	x := NewFloat(6, 0)

	z, ord := MulPrecRound(NaNFloat(), x, 8, Nearest)
	assert.True(t, z.IsNaN())
	assert.Equal(t, Equal, ord)

	z, ord = MulPrecRound(InfFloat(false), ZeroFloat(false), 8, Nearest)
	assert.True(t, z.IsNaN())
	assert.Equal(t, Equal, ord)

	z, ord = MulPrecRound(InfFloat(false), x, 8, Nearest)
	assert.True(t, z.IsInf())
	assert.False(t, z.Signbit())

	z, ord = MulPrecRound(InfFloat(true), x, 8, Nearest)
	assert.True(t, z.IsInf())
	assert.True(t, z.Signbit())

	z, ord = MulPrecRound(ZeroFloat(false), x, 8, Nearest)
	assert.True(t, z.IsZero())
	assert.False(t, z.Signbit())
	_ = ord
}

func TestMulPrecRoundOverflowUnderflow(t *testing.T) {
	huge := NewFloat(1, MaxExponent)
	z, ord := MulPrecRound(huge, huge, 4, Nearest)
	assert.True(t, z.IsInf())
	assert.Equal(t, Greater, ord)

	tiny := NewFloat(1, MinExponent)
	z2, ord2 := MulPrecRound(tiny, tiny, 4, Down)
	assert.True(t, z2.IsZero())
	assert.Equal(t, Less, ord2)
}

func TestMulPrecRoundPanicsOnZeroPrec(t *testing.T) {
	assert.Panics(t, func() {
		MulPrecRound(NewFloat(1, 0), NewFloat(1, 0), 0, Nearest)
	})
}

func TestMulRationalPrecRoundPowerOfTwo(t *testing.T) {
	x := NewFloat(6, 0)
	z, ord := MulRationalPrecRound(x, big.NewRat(1, 2), 16, Nearest)
	require.Equal(t, Equal, ord)
	assert.Equal(t, 0, z.Cmp(NewFloat(3, 0)))

	z2, ord2 := MulRationalPrecRound(x, big.NewRat(-1, 2), 16, Nearest)
	require.Equal(t, Equal, ord2)
	assert.Equal(t, 0, z2.Cmp(NewFloat(-3, 0)))
}

func TestMulRationalPrecRoundGeneral(t *testing.T) {
	x := NewFloat(10, 0)
	z, ord := MulRationalPrecRound(x, big.NewRat(3, 7), 64, Nearest)
	// 10 * 3/7 == 30/7, not exactly representable in binary: Ordering must
	// be Less or Greater, never Equal, and must be consistent with Cmp
	// against a much higher-precision recomputation.
	assert.NotEqual(t, Equal, ord)
	hi, _ := MulRationalPrecRound(x, big.NewRat(3, 7), 256, Down)
	assert.NotEqual(t, 0, z.Cmp(hi))
}

// hexSig parses a hex significand literal for a boundary-scenario test
// operand. s must be a valid hex string; it panics otherwise since every
// caller passes a literal constant.
func hexSig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("mul_test: bad hex literal: " + s)
	}
	return n
}

// TestMulPrecRoundBoundaryScenarios pins a handful of named acceptance
// vectors: simple exact products, and pi*e rounded under several
// precision/mode combinations, cross-checked against a 200-bit approximation
// of pi and e (far more precision than either target, so the approximation
// error never competes with the target rounding decision).
func TestMulPrecRoundBoundaryScenarios(t *testing.T) {
	// 1.5 * 2.5 == 3.75 (4 significant bits): exact at any target precision
	// of at least 4 bits, under any mode.
	x := NewFloat(3, -1)
	y := NewFloat(5, -1)
	z, ord := MulPrecRound(x, y, 8, Nearest)
	assert.Equal(t, Equal, ord)
	assert.Equal(t, 0, z.Cmp(NewFloat(15, -2)))

	pi := newFinite(false, hexSig("c90fdaa22168c234c4c6628b80dc1cd129024e088a67cc7402"), 2, 200)
	e := newFinite(false, hexSig("adf85458a2bb4a9aafdc5620273d3cf1d8b9c583ce2d3695aa"), 2, 200)

	// pi*e (exact value ~= 8.539734222673566) rounded to 5 bits, Nearest:
	// the exact product lands closer to 8.5 than to 9.0.
	z2, ord2 := MulPrecRound(pi, e, 5, Nearest)
	assert.Equal(t, Less, ord2)
	assert.Equal(t, 0, z2.Cmp(newFinite(false, big.NewInt(17), 4, 5)))

	// pi*e rounded to 20 bits, Nearest.
	z3, ord3 := MulPrecRound(pi, e, 20, Nearest)
	assert.Equal(t, Less, ord3)
	assert.Equal(t, 0, z3.Cmp(newFinite(false, big.NewInt(559660), 4, 20)))

	// pi*e rounded to 5 bits, Ceiling: rounds up past the exact value to 9.0.
	z4, ord4 := MulPrecRound(pi, e, 5, Ceiling)
	assert.Equal(t, Greater, ord4)
	assert.Equal(t, 0, z4.Cmp(newFinite(false, big.NewInt(18), 4, 5)))

	// pi*e rounded to 20 bits, Up: the next representable value above the
	// exact product.
	z5, ord5 := MulPrecRound(pi, e, 20, Up)
	assert.Equal(t, Greater, ord5)
	assert.Equal(t, 0, z5.Cmp(newFinite(false, big.NewInt(559661), 4, 20)))
}

func TestMulRationalPrecRoundZeroAndInf(t *testing.T) {
	x := NewFloat(10, 0)

	z, _ := MulRationalPrecRound(x, big.NewRat(0, 1), 8, Nearest)
	assert.True(t, z.IsZero())

	z2, _ := MulRationalPrecRound(InfFloat(false), big.NewRat(0, 1), 8, Nearest)
	assert.True(t, z2.IsNaN())

	z3, _ := MulRationalPrecRound(InfFloat(false), big.NewRat(-1, 1), 8, Nearest)
	assert.True(t, z3.IsInf())
	assert.True(t, z3.Signbit())
}
