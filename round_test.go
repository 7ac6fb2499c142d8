// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPowerOfTwo(t *testing.T) {
	cases := []struct {
		n    int64
		want bool
	}{
		{1, true}, {2, true}, {3, false}, {4, true},
		{0, false}, {-2, false}, {1024, true}, {1023, false},
	}
	for _, c := range cases {
		got := isPowerOfTwo(big.NewInt(c.n))
		assert.Equalf(t, c.want, got, "isPowerOfTwo(%d)", c.n)
	}
}

func TestRoundToPrecisionExactPad(t *testing.T) {
	sig, exp, ord := roundToPrecision(big.NewInt(0b101), 10, 3, 6, Nearest)
	assert.Equal(t, Equal, ord)
	assert.Equal(t, int32(10), exp)
	assert.Equal(t, "101000", sig.Text(2))
}

func TestRoundToPrecisionTiesToEven(t *testing.T) {
	// 0b1010_1 (workingPrec=5) rounded to 4 bits: tail is exactly half,
	// truncated mantissa 0b1010 has an even low bit, so it stays (ties to
	// even == round down here).
	sig, exp, ord := roundToPrecision(big.NewInt(0b10101), 0, 5, 4, Nearest)
	assert.Equal(t, Less, ord)
	assert.Equal(t, "1010", sig.Text(2))
	assert.Equal(t, int32(0), exp)

	// 0b1011_1 rounded to 4 bits: tail exactly half, truncated mantissa
	// 0b1011 has an odd low bit, so it rounds up to the even neighbor 0b1100.
	sig2, _, ord2 := roundToPrecision(big.NewInt(0b10111), 0, 5, 4, Nearest)
	assert.Equal(t, Greater, ord2)
	assert.Equal(t, "1100", sig2.Text(2))
}

func TestRoundToPrecisionCarryBumpsExponent(t *testing.T) {
	// 0b1111_1 rounded to 4 bits rounds up past all-ones, carrying into a
	// 5-bit mantissa that must be shifted back down to 4 bits and the
	// exponent bumped.
	sig, exp, ord := roundToPrecision(big.NewInt(0b11111), 5, 5, 4, Nearest)
	assert.Equal(t, Greater, ord)
	assert.Equal(t, int32(6), exp)
	assert.Equal(t, "1000", sig.Text(2))
}

func TestRoundToPrecisionExactPanicsOnInexact(t *testing.T) {
	assert.Panics(t, func() {
		roundToPrecision(big.NewInt(0b10101), 0, 5, 4, Exact)
	})
}

func TestClampMagnitudeOverflow(t *testing.T) {
	z, ord := clampMagnitude(big.NewInt(1), MaxExponent+1, 4, Nearest)
	assert.True(t, z.IsInf())
	assert.Equal(t, Greater, ord)

	z2, ord2 := clampMagnitude(big.NewInt(1), MaxExponent+1, 4, Down)
	assert.True(t, z2.IsFinite())
	assert.Equal(t, Less, ord2)
}

func TestClampMagnitudeUnderflow(t *testing.T) {
	z, ord := clampMagnitude(nil, MinExponent-2, 4, Down)
	assert.True(t, z.IsZero())
	assert.Equal(t, Less, ord)

	z2, ord2 := clampMagnitude(nil, MinExponent-2, 4, Up)
	assert.True(t, z2.IsFinite())
	assert.Equal(t, Greater, ord2)
}

func TestClampMagnitudeHalfUlpTie(t *testing.T) {
	// sig has only its top bit set: the magnitude is exactly half of the
	// minimum subnormal, ties to even, which is +0 here.
	s, _ := minFiniteMagnitude(4)
	z, ord := clampMagnitude(s, MinExponent-1, 4, Nearest)
	assert.True(t, z.IsZero())
	assert.Equal(t, Less, ord)
}
