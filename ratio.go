// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float

import "math/big"

// quoFloatPrecRound returns the correctly-rounded quotient x/y of two
// Finite-or-special Floats, at the given precision and mode: shift the
// dividend left until the integer division yields at least prec+1 bits of
// quotient, tracking whether the remainder was nonzero as a sticky bit
// folded into the dividend before rounding.
func quoFloatPrecRound(x, y *Float, prec uint64, rm RoundingMode) (*Float, Ordering) {
	if prec == 0 {
		errPrecZero()
	}
	if x.IsNaN() || y.IsNaN() {
		return NaNFloat(), Equal
	}
	neg := x.Signbit() != y.Signbit()
	if (x.IsZero() && y.IsZero()) || (x.IsInf() && y.IsInf()) {
		return NaNFloat(), Equal
	}
	if x.IsZero() || y.IsInf() {
		return ZeroFloat(neg), Equal
	}
	if x.IsInf() || y.IsZero() {
		return InfFloat(neg), Equal
	}

	rm2 := rm
	if neg {
		rm2 = negRM(rm)
	}

	xL, yL := uint64(x.sig.BitLen()), uint64(y.sig.BitLen())
	// left-shift the dividend so the quotient has at least prec+1 bits.
	shift := int64(prec) + 1 - int64(xL) + int64(yL)
	var num *big.Int
	if shift > 0 {
		num = new(big.Int).Lsh(x.sig, uint(shift))
	} else {
		num = x.sig
		shift = 0
	}
	q, r := new(big.Int).QuoRem(num, y.sig, new(big.Int))
	qL := uint64(q.BitLen())
	// value == q * 2**(roundExp - qL), derived from
	// value == (x.sig/y.sig) * 2**(x.exp-xL-(y.exp-yL))
	//        == q * 2**(-shift) * 2**(x.exp-xL-y.exp+yL)
	roundExp := int64(x.exp) - int64(xL) - int64(y.exp) + int64(yL) - shift + int64(qL)

	if r.Sign() != 0 {
		// fold in a sticky bit: the discarded fractional remainder is
		// nonzero, so the true quotient lies strictly between q and q+1
		// (in the last retained bit's frame of reference). OR-ing a 1
		// into the bottom bit of a one-bit-wider q reproduces exactly the
		// "nonzero tail forces Less/Greater, never Equal" effect that
		// roundToPrecision already implements when it sees a nonzero
		// tail, at the cost of one extra bit of working precision.
		q = new(big.Int).Lsh(q, 1)
		q.Or(q, big.NewInt(1))
		qL++
	}

	rSig, rExp, ord := roundToPrecision(q, int32(roundExp), qL, prec, rm2)
	z, ord2 := clampMagnitude(rSig, rExp, prec, rm2)
	if z.k == infKind || z.k == zeroKind {
		return finalizeSignedClamp(z, ord2, neg)
	}
	return finalizeSignedClamp(z, ord, neg)
}

// floatToRat converts a Finite Float to an exact big.Rat. Panics (via
// ErrNaN, a programmer-contract violation — callers must only invoke this
// on Finite values) if x is not Finite.
func floatToRat(x *Float) *big.Rat {
	if x.k != finiteKind {
		panic(ErrNaN{"floatToRat of a non-Finite Float"})
	}
	r := new(big.Rat).SetInt(x.sig)
	shift := int(x.exp) - x.sig.BitLen()
	if shift >= 0 {
		r.Mul(r, new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), uint(shift))))
	} else {
		den := new(big.Int).Lsh(big.NewInt(1), uint(-shift))
		r.Quo(r, new(big.Rat).SetInt(den))
	}
	if x.sign {
		r.Neg(r)
	}
	return r
}

// ratToFloatPrecRound converts an exact Rational to the nearest
// representable Float at the given precision and mode, reporting the
// Ordering of the rounded result relative to the exact rational value.
func ratToFloatPrecRound(r *big.Rat, prec uint64, rm RoundingMode) (*Float, Ordering) {
	if prec == 0 {
		errPrecZero()
	}
	if r.Sign() == 0 {
		return ZeroFloat(false), Equal
	}
	neg := r.Sign() < 0
	num := new(big.Int).Abs(r.Num())
	den := r.Denom() // always positive

	numL, denL := uint64(num.BitLen()), uint64(den.BitLen())
	shift := int64(prec) + 1 - int64(numL) + int64(denL)
	var shiftedNum *big.Int
	lost := false // nonzero numerator bits dropped by a right shift
	if shift > 0 {
		shiftedNum = new(big.Int).Lsh(num, uint(shift))
	} else if shift < 0 {
		shiftedNum = new(big.Int).Rsh(num, uint(-shift))
		lost = new(big.Int).Lsh(shiftedNum, uint(-shift)).Cmp(num) != 0
	} else {
		shiftedNum = num
	}
	q, rem := new(big.Int).QuoRem(shiftedNum, den, new(big.Int))
	qL := uint64(q.BitLen())
	// value == q * 2**(roundExp - qL), since num/den ~= q * 2**(-shift).
	roundExp := int64(qL) - shift

	if rem.Sign() != 0 || lost {
		q = new(big.Int).Lsh(q, 1)
		q.Or(q, big.NewInt(1))
		qL++
	}

	rm2 := rm
	if neg {
		rm2 = negRM(rm)
	}
	rSig, rExp, ord := roundToPrecision(q, int32(roundExp), qL, prec, rm2)
	z, ord2 := clampMagnitude(rSig, rExp, prec, rm2)
	if z.k == infKind || z.k == zeroKind {
		return finalizeSignedClamp(z, ord2, neg)
	}
	return finalizeSignedClamp(z, ord, neg)
}

// ratIsPerfectSquare reports whether the positive rational n/d (already in
// lowest terms, as produced by big.Rat) is the square of another rational,
// i.e. both its numerator and denominator are perfect squares.
func ratIsPerfectSquare(r *big.Rat) (sqrt *big.Rat, ok bool) {
	num := new(big.Int).Abs(r.Num())
	den := r.Denom()
	sn, okn := intSqrtExact(num)
	if !okn {
		return nil, false
	}
	sd, okd := intSqrtExact(den)
	if !okd {
		return nil, false
	}
	return new(big.Rat).SetFrac(sn, sd), true
}

// intSqrtExact returns the exact integer square root of n and whether n is
// a perfect square.
func intSqrtExact(n *big.Int) (*big.Int, bool) {
	if n.Sign() == 0 {
		return big.NewInt(0), true
	}
	s := new(big.Int).Sqrt(n)
	t := new(big.Int).Mul(s, s)
	return s, t.Cmp(n) == 0
}
