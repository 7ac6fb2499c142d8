// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float

import (
	"math/big"
)

// A Float is an immutable arbitrary-precision binary floating-point value.
// See the package doc comment for the five-case value model and the
// Finite-case invariants it upholds.
//
// Float values are never mutated by operations in this package: every
// constructor and every arithmetic function returns a new *Float. It is
// always safe to share a *Float between goroutines (read-only) and between
// multiple operations.
type Float struct {
	k    kind
	sign bool // meaningless for NaN
	exp  int32
	prec uint64
	sig  *big.Int // valid (non-nil, positive, limb-aligned) only when k == finiteKind
}

// NaNFloat returns the unique NaN value.
func NaNFloat() *Float {
	return &Float{k: nanKind}
}

// InfFloat returns -Inf if sign is true, +Inf otherwise.
func InfFloat(sign bool) *Float {
	return &Float{k: infKind, sign: sign}
}

// ZeroFloat returns -0 if sign is true, +0 otherwise.
func ZeroFloat(sign bool) *Float {
	return &Float{k: zeroKind, sign: sign}
}

// limbAlignedLen rounds prec up to the next multiple of LimbWidth, with a
// floor of LimbWidth (even a 1-bit-precision Float stores one full limb).
func limbAlignedLen(prec uint64) uint64 {
	if prec == 0 {
		errPrecZero()
	}
	n := (prec + LimbWidth - 1) / LimbWidth
	return n * LimbWidth
}

// newFinite constructs a Finite Float from a raw positive significand (of at
// most limbAlignedLen(prec) bits), a target precision and the exponent
// convention of roundToPrecision (value == sig * 2**(exp-sig.BitLen())),
// padding sig to a whole number of limbs. It does NOT clamp the exponent to
// [MinExponent, MaxExponent]; callers on the public API path go through
// clampMagnitude first.
func newFinite(sign bool, sig *big.Int, exp int32, prec uint64) *Float {
	if sig.Sign() == 0 {
		return ZeroFloat(sign)
	}
	L := limbAlignedLen(prec)
	pad := int64(L) - int64(sig.BitLen())
	if pad != 0 {
		sig = new(big.Int).Lsh(sig, uint(pad))
	}
	return &Float{k: finiteKind, sign: sign, exp: exp, prec: prec, sig: sig}
}

// NewFloat allocates a new Float set to x * 2**exp, exactly, at the
// minimum precision needed to hold x (but never less than 1).
func NewFloat(x int64, exp int) *Float {
	sign := x < 0
	u := x
	if sign {
		u = -u
	}
	if u == 0 {
		return ZeroFloat(sign)
	}
	sig := big.NewInt(0).SetUint64(uint64(u))
	prec := uint64(sig.BitLen())
	return newFinite(sign, sig, int32(exp)+int32(prec), prec)
}

// NewFloatFromInt returns a new Float set to the exact value of x, with
// precision equal to x's bit length (at least 1).
func NewFloatFromInt(x *big.Int) *Float {
	if x.Sign() == 0 {
		return ZeroFloat(false)
	}
	sign := x.Sign() < 0
	mag := new(big.Int).Abs(x)
	prec := uint64(mag.BitLen())
	return newFinite(sign, mag, int32(prec), prec)
}

// Kind predicates.

// IsNaN reports whether x is the NaN value.
func (x *Float) IsNaN() bool { return x.k == nanKind }

// IsInf reports whether x is +Inf or -Inf.
func (x *Float) IsInf() bool { return x.k == infKind }

// IsZero reports whether x is +0 or -0.
func (x *Float) IsZero() bool { return x.k == zeroKind }

// IsFinite reports whether x is a Finite, nonzero value.
func (x *Float) IsFinite() bool { return x.k == finiteKind }

// Signbit reports the sign bit of x. NaN carries no meaningful sign; this
// always returns false for NaN, for determinism.
func (x *Float) Signbit() bool {
	if x.k == nanKind {
		return false
	}
	return x.sign
}

// Sign returns -1, 0, or +1 depending on whether x is negative, zero, or
// positive. It panics if x is NaN: NaN has no sign, and unlike Signbit
// (a storage-layer accessor) Sign is meant to be used in comparisons where
// silently returning 0 would be misleading.
func (x *Float) Sign() int {
	switch x.k {
	case zeroKind:
		return 0
	case nanKind:
		panic(ErrNaN{"Sign of NaN"})
	}
	if x.sign {
		return -1
	}
	return 1
}

// Prec returns the bit precision of x. The result is 0 for NaN, ±0, and
// ±Inf, which carry no significand.
func (x *Float) Prec() uint64 {
	if x.k != finiteKind {
		return 0
	}
	return x.prec
}

// Exponent returns x's exponent. The result is 0 for NaN, ±0, and ±Inf.
func (x *Float) Exponent() int32 {
	if x.k != finiteKind {
		return 0
	}
	return x.exp
}

// Significand returns a copy of x's raw significand (limb-aligned, top bit
// set) and its bit length. It returns (nil, 0) unless x is Finite.
func (x *Float) Significand() (*big.Int, uint64) {
	if x.k != finiteKind {
		return nil, 0
	}
	return new(big.Int).Set(x.sig), uint64(x.sig.BitLen())
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y (incl. -0 == +0, -Inf == -Inf, +Inf == +Inf)
//	+1 if x >  y
//
// Cmp panics if x or y is NaN: NaN is unordered with everything, including
// itself, and there is no sensible int to return.
// Callers that need to compare possibly-NaN Floats should check IsNaN
// first.
func (x *Float) Cmp(y *Float) int {
	if x.IsNaN() || y.IsNaN() {
		panic(ErrNaN{"Cmp of NaN"})
	}
	mx, my := x.ord(), y.ord()
	switch {
	case mx < my:
		return -1
	case mx > my:
		return 1
	}
	switch mx {
	case -1:
		return -x.ucmp(y)
	case 1:
		return x.ucmp(y)
	}
	return 0
}

// ord classifies x for the purposes of Cmp: -2/-1/0/1/2 for
// -Inf/negative-finite/zero/positive-finite/+Inf.
func (x *Float) ord() int {
	var m int
	switch x.k {
	case finiteKind:
		m = 1
	case zeroKind:
		return 0
	case infKind:
		m = 2
	}
	if x.sign {
		m = -m
	}
	return m
}

// ucmp compares the magnitudes of two Finite Floats.
func (x *Float) ucmp(y *Float) int {
	if x.exp != y.exp {
		if x.exp < y.exp {
			return -1
		}
		return 1
	}
	// Significands of different precisions may be padded to different limb
	// lengths; align them before comparing.
	xs, ys := x.sig, y.sig
	if d := xs.BitLen() - ys.BitLen(); d > 0 {
		ys = new(big.Int).Lsh(ys, uint(d))
	} else if d < 0 {
		xs = new(big.Int).Lsh(xs, uint(-d))
	}
	return xs.Cmp(ys)
}

// Neg returns -x.
func Neg(x *Float) *Float {
	switch x.k {
	case nanKind:
		return x
	case infKind:
		return InfFloat(!x.sign)
	case zeroKind:
		return ZeroFloat(!x.sign)
	}
	return newFinite(!x.sign, new(big.Int).Set(x.sig), x.exp, x.prec)
}

// Abs returns |x|.
func Abs(x *Float) *Float {
	switch x.k {
	case nanKind:
		return x
	case infKind:
		return InfFloat(false)
	case zeroKind:
		return ZeroFloat(false)
	}
	return newFinite(false, new(big.Int).Set(x.sig), x.exp, x.prec)
}

// SetPrec returns x rounded to prec bits under rm, as a fresh Float,
// together with the Ordering of the result relative to x.
//
// SetPrec(x, x.Prec(), rm) is the identity with ordering Equal.
func SetPrec(x *Float, prec uint64, rm RoundingMode) (*Float, Ordering) {
	if prec == 0 {
		errPrecZero()
	}
	if x.k != finiteKind {
		return x, Equal
	}
	if prec == x.prec {
		return x, Equal
	}
	rm2 := rm
	if x.sign {
		rm2 = negRM(rm)
	}
	sig, exp, ord := roundToPrecision(unpad(x.sig, x.prec), x.exp, x.prec, prec, rm2)
	if x.sign {
		ord = reverseOrd(ord)
	}
	z, ord2 := clampMagnitude(sig, exp, prec, rm2)
	z.sign = x.sign
	if z.k == infKind || z.k == zeroKind {
		// clamp overrode the rounding outcome with an overflow/underflow
		// policy result; that result's ordering replaces ord.
		if x.sign {
			ord2 = reverseOrd(ord2)
		}
		return z, ord2
	}
	return z, ord
}

func (x *Float) String() string {
	switch x.k {
	case nanKind:
		return "NaN"
	case infKind:
		if x.sign {
			return "-Inf"
		}
		return "+Inf"
	case zeroKind:
		if x.sign {
			return "-0"
		}
		return "+0"
	}
	sign := ""
	if x.sign {
		sign = "-"
	}
	return sign + x.sig.String() + "p" + itoa32(x.exp-int32(x.sig.BitLen()))
}

func itoa32(v int32) string {
	return big.NewInt(int64(v)).String()
}
