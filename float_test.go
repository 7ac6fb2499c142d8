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

func TestNewFloat(t *testing.T) {
	z := NewFloat(6, -1) // 6 * 2**-1 == 3
	require.True(t, z.IsFinite())
	assert.Equal(t, 1, z.Sign())
	assert.Equal(t, uint64(3), z.Prec())

	neg := NewFloat(-6, -1)
	assert.Equal(t, -1, neg.Sign())
	assert.True(t, neg.Signbit())
}

func TestNewFloatZero(t *testing.T) {
	assert.True(t, NewFloat(0, 5).IsZero())
	assert.False(t, NewFloat(0, 5).Signbit())
}

func TestNewFloatFromInt(t *testing.T) {
	z := NewFloatFromInt(big.NewInt(-1024))
	assert.True(t, z.Signbit())
	assert.Equal(t, uint64(11), z.Prec()) // bit length of 1024

	assert.True(t, NewFloatFromInt(big.NewInt(0)).IsZero())
}

func TestSignbitConventions(t *testing.T) {
	// true == negative, consistently, across every constructor and op.
	assert.True(t, InfFloat(true).Signbit())
	assert.False(t, InfFloat(false).Signbit())
	assert.True(t, ZeroFloat(true).Signbit())
	assert.False(t, ZeroFloat(false).Signbit())

	pos := NewFloat(4, 0)
	assert.True(t, Neg(pos).Signbit())
	assert.False(t, Neg(Neg(pos)).Signbit())
}

func TestFloatCmp(t *testing.T) {
	a := NewFloat(1, 0)
	b := NewFloat(2, 0)
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(NewFloat(1, 0)))

	assert.Equal(t, 0, ZeroFloat(false).Cmp(ZeroFloat(true)))
	assert.Equal(t, 0, InfFloat(false).Cmp(InfFloat(false)))
	assert.Equal(t, -1, InfFloat(true).Cmp(InfFloat(false)))
	assert.Equal(t, -1, Neg(a).Cmp(a))

	assert.Panics(t, func() { NaNFloat().Cmp(a) })
}

func TestFloatSignPanicsOnNaN(t *testing.T) {
	assert.Panics(t, func() { NaNFloat().Sign() })
}

func TestSetPrecRoundTrip(t *testing.T) {
	x := NewFloat(0x7FF, 0) // 11 significant bits
	z, ord := SetPrec(x, x.Prec(), Nearest)
	assert.Equal(t, Equal, ord)
	assert.Equal(t, 0, x.Cmp(z))
}

func TestSetPrecRounding(t *testing.T) {
	// 0x7FF == 0b11111111111 (11 bits); rounding to 4 bits under Nearest
	// ties-to-even rounds the trailing 0b1111111 tail up (it's more than
	// half of the truncated unit).
	x := NewFloat(0x7FF, 0)
	z, ord := SetPrec(x, 4, Nearest)
	assert.Equal(t, Greater, ord)
	assert.Equal(t, 1, z.Cmp(x))

	// Negative operand: the real-space Ordering is the reverse of the
	// magnitude-space one.
	negX := Neg(x)
	negZ, negOrd := SetPrec(negX, 4, Nearest)
	assert.Equal(t, Less, negOrd)
	assert.Equal(t, 0, Neg(negZ).Cmp(z))
}

func TestNegAbsInvolution(t *testing.T) {
	x := NewFloat(-5, 2)
	assert.Equal(t, 0, x.Cmp(Neg(Neg(x))))
	assert.Equal(t, 0, Abs(x).Cmp(Abs(Neg(x))))
	assert.False(t, Abs(x).Signbit())

	assert.True(t, NaNFloat().IsNaN())
	assert.True(t, Neg(NaNFloat()).IsNaN())
}

func TestFloatString(t *testing.T) {
	assert.Equal(t, "NaN", NaNFloat().String())
	assert.Equal(t, "+Inf", InfFloat(false).String())
	assert.Equal(t, "-Inf", InfFloat(true).String())
	assert.Equal(t, "+0", ZeroFloat(false).String())
	assert.Equal(t, "-0", ZeroFloat(true).String())
}
