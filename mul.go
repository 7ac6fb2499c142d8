// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float

import "math/big"

// MulRationalThreshold selects between the "direct" (shift-based) and
// "naive" (convert-to-Rational-and-back) paths of MulRationalPrecRound. It
// is a package variable rather than a constant so that callers benchmarking
// their own operand distributions can tune it; the default is conservative,
// favoring the safer naive path for small operands.
var MulRationalThreshold uint64 = 50

// MulPrecRound returns the correctly-rounded product x*y at the given
// precision and rounding mode, together with its Ordering relative to the
// exact mathematical product.
func MulPrecRound(x, y *Float, prec uint64, rm RoundingMode) (*Float, Ordering) {
	if prec == 0 {
		errPrecZero()
	}

	if x.IsNaN() || y.IsNaN() {
		return NaNFloat(), Equal
	}
	if (x.IsInf() && y.IsZero()) || (x.IsZero() && y.IsInf()) {
		return NaNFloat(), Equal
	}
	if x.IsInf() || y.IsInf() {
		return InfFloat(x.Signbit() != y.Signbit()), Equal
	}
	if x.IsZero() || y.IsZero() {
		return ZeroFloat(x.Signbit() != y.Signbit()), Equal
	}

	// both Finite.
	neg := x.sign != y.sign
	rm2 := rm
	if neg {
		rm2 = negRM(rm)
	}

	xL, yL := uint64(x.sig.BitLen()), uint64(y.sig.BitLen())
	expSum := int64(x.exp) + int64(y.exp)

	// Pre-check: the result's exponent (before the exact multiply) lies in
	// [expSum-1, expSum]; if even the optimistic end is out of range, the
	// outcome of a full overflow/underflow policy application is already
	// determined and the multiply can be skipped.
	if expSum-1 > MaxExponent {
		z, ord := clampMagnitude(nil, MaxExponent+1, prec, rm2)
		return finalizeSignedClamp(z, ord, neg)
	}
	if expSum < MinExponent-1 {
		// Strictly below the MinExponent-1 tie boundary even at the
		// optimistic end (expSum), so this is a guaranteed underflow, not a
		// candidate for the half-ulp tie rule: land one exponent further
		// out to avoid clampMagnitude's MinExponent-1 special case, which
		// would otherwise inspect the (here nonexistent) rounded
		// significand.
		z, ord := clampMagnitude(nil, MinExponent-2, prec, rm2)
		return finalizeSignedClamp(z, ord, neg)
	}

	product := new(big.Int).Mul(x.sig, y.sig)
	pL := uint64(product.BitLen())
	// value == product * 2**(roundExp - pL); derived from
	// value == product * 2**(x.exp+y.exp-xL-yL).
	roundExp := expSum - int64(xL+yL) + int64(pL)

	rSig, rExp, ord := roundToPrecision(product, int32(roundExp), pL, prec, rm2)

	z, ord2 := clampMagnitude(rSig, rExp, prec, rm2)
	if z.k == infKind || z.k == zeroKind {
		return finalizeSignedClamp(z, ord2, neg)
	}
	return finalizeSignedClamp(z, ord, neg)
}

// finalizeSignedClamp attaches the true sign to a positive-magnitude clamp
// result, reversing the ordering if neg is true: magnitude-space Less
// becomes real-space Greater once the value is known to be negative, and
// vice versa.
func finalizeSignedClamp(z *Float, ord Ordering, neg bool) (*Float, Ordering) {
	z.sign = neg
	if neg {
		ord = reverseOrd(ord)
	}
	return z, ord
}

// MulRationalPrecRound returns the correctly-rounded product x*y, where y is
// an arbitrary-precision Rational, at the given precision and rounding
// mode.
func MulRationalPrecRound(x *Float, y *big.Rat, prec uint64, rm RoundingMode) (*Float, Ordering) {
	if prec == 0 {
		errPrecZero()
	}
	if x.IsNaN() {
		return NaNFloat(), Equal
	}
	ySign := y.Sign() < 0
	yZero := y.Sign() == 0
	if x.IsInf() {
		if yZero {
			return NaNFloat(), Equal
		}
		return InfFloat(x.Signbit() != ySign), Equal
	}
	if yZero {
		return ZeroFloat(x.Signbit()), Equal
	}
	if x.IsZero() {
		return ZeroFloat(x.Signbit() != ySign), Equal
	}

	// The paths below round x*|y| and negate afterwards for a negative y,
	// so they round with the negated mode.
	rmAbs := rm
	if ySign {
		rmAbs = negRM(rm)
	}

	num, den := y.Num(), y.Denom()
	numAbs := new(big.Int).Abs(num)
	denAbs := den // always positive

	numP2 := isPowerOfTwo(numAbs)
	denP2 := isPowerOfTwo(denAbs)

	switch {
	case numP2 && denP2:
		shift := int(numAbs.BitLen()-1) - int(denAbs.BitLen()-1)
		z := shiftFloat(x, shift)
		z, ord := SetPrec(z, prec, rmAbs)
		if ySign {
			z = Neg(z)
			ord = reverseOrd(ord)
		}
		return z, ord
	case denP2:
		shift := -(int(denAbs.BitLen() - 1))
		z := shiftFloat(x, shift)
		z, ord := mulByIntPrecRound(z, numAbs, prec, rmAbs)
		if ySign {
			z = Neg(z)
			ord = reverseOrd(ord)
		}
		return z, ord
	case numP2:
		shift := int(numAbs.BitLen() - 1)
		z, ord := quoByIntPrecRound(x, denAbs, prec, rmAbs)
		z = shiftFloat(z, shift)
		if ySign {
			z = Neg(z)
			ord = reverseOrd(ord)
		}
		return z, ord
	}

	significantBits := uint64(numAbs.BitLen())
	if x.Prec()+significantBits <= MulRationalThreshold || prec <= MulRationalThreshold {
		// naive path: safer for small operands.
		xr := floatToRat(x)
		er := new(big.Rat).Mul(xr, y)
		return ratToFloatPrecRound(er, prec, rm)
	}

	// direct path: multiply at a working precision that absorbs the
	// numerator's bit length, rounding that intermediate toward zero so it
	// never contributes more than negligible error to the final division.
	workingPrec := x.Prec() + significantBits
	wz, _ := mulByIntPrecRound(x, numAbs, workingPrec, Down)
	z, ord := quoByIntPrecRound(wz, denAbs, prec, rmAbs)
	if ySign {
		z = Neg(z)
		ord = reverseOrd(ord)
	}
	return z, ord
}

// shiftFloat returns x * 2**shift, exactly (no rounding: a pure exponent
// adjustment).
func shiftFloat(x *Float, shift int) *Float {
	if x.k != finiteKind {
		return x
	}
	return newFinite(x.sign, new(big.Int).Set(x.sig), x.exp+int32(shift), x.prec)
}

// mulByIntPrecRound returns the correctly-rounded product of x by a
// positive big.Int n (not necessarily a power of two), at the given
// precision and mode. It is the Float×Natural building block MulPrecRound
// would otherwise need a second, duplicated special-case table for.
func mulByIntPrecRound(x *Float, n *big.Int, prec uint64, rm RoundingMode) (*Float, Ordering) {
	nPrec := uint64(n.BitLen())
	ny := newFinite(false, new(big.Int).Set(n), int32(nPrec), nPrec)
	return MulPrecRound(x, ny, prec, rm)
}

// quoByIntPrecRound returns the correctly-rounded quotient x/n for a
// positive big.Int divisor n, at the given precision and mode.
func quoByIntPrecRound(x *Float, n *big.Int, prec uint64, rm RoundingMode) (*Float, Ordering) {
	nPrec := uint64(n.BitLen())
	ny := newFinite(false, new(big.Int).Set(n), int32(nPrec), nPrec)
	return quoFloatPrecRound(x, ny, prec, rm)
}
