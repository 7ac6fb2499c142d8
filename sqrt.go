// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float

import (
	"math"
	"math/big"
)

// ReciprocalSqrtPrecRound returns the correctly-rounded value of 1/sqrt(x)
// at the given precision and rounding mode, together with its Ordering
// relative to the exact mathematical result.
//
// x must be non-negative; a negative finite x or -Inf has no real square
// root and yields NaN (category-2 special case, not a panic). x == ±0
// yields the correspondingly signed infinity (1/sqrt(0) diverges); +Inf
// yields +0.
func ReciprocalSqrtPrecRound(x *Float, prec uint64, rm RoundingMode) (*Float, Ordering) {
	return reciprocalSqrtPrecRoundErr(x, prec, rm, 1)
}

// reciprocalSqrtPrecRoundErr is ReciprocalSqrtPrecRound generalized to admit
// an extra input-side error margin (in working-precision ulps), so that
// ReciprocalSqrtRationalPrecRound's non-perfect-square path can fold in the
// truncation error from its Rational-to-Float conversion rather than
// re-deriving the whole Ziv loop.
func reciprocalSqrtPrecRoundErr(x *Float, prec uint64, rm RoundingMode, inputErrUlps uint64) (*Float, Ordering) {
	if prec == 0 {
		errPrecZero()
	}
	if x.IsNaN() {
		return NaNFloat(), Equal
	}
	if x.IsInf() {
		if x.sign {
			return NaNFloat(), Equal
		}
		return ZeroFloat(false), Equal
	}
	if x.IsZero() {
		return InfFloat(x.sign), Equal
	}
	if x.sign {
		return NaNFloat(), Equal
	}

	// value = sig * 2**e, sig normalized to L bits (top bit set).
	L := uint64(x.sig.BitLen())
	e := int64(x.exp) - int64(L)

	// Normalize to an even scaling exponent: value = sigAdj * 4**halfExp.
	// 1/sqrt(value) = (1/sqrt(sigAdj)) * 2**(-halfExp), so the square root
	// of the integer sigAdj does all the real work.
	sigAdj := x.sig
	halfExp := e
	if e%2 != 0 {
		sigAdj = new(big.Int).Lsh(x.sig, 1)
		halfExp = e - 1
	}
	halfExp /= 2

	// An exact power of four has a dyadic reciprocal square root, which no
	// error window around a candidate can certify, so it is built directly:
	// 1/sqrt(2**m * 4**halfExp) == 2**(-m/2-halfExp) for even m. Only an
	// exact input (inputErrUlps == 1, as ReciprocalSqrtPrecRound passes)
	// takes this path.
	if inputErrUlps == 1 && isPowerOfTwo(sigAdj) && (sigAdj.BitLen()-1)%2 == 0 {
		m := int64(sigAdj.BitLen() - 1)
		rSig, rExp, _ := roundToPrecision(big.NewInt(1), int32(-m/2-halfExp+1), 1, prec, rm)
		return clampMagnitude(rSig, rExp, prec, rm)
	}

	errUlps := inputErrUlps + 1 // +1 for the Newton engine's own rounding.

	workingPrec := prec + 16
	const maxWorkingPrec = 1 << 24 // generous; Ziv convergence never approaches this in practice.
	var mantInt *big.Int
	var candExpParam int64
	for {
		mi, exp := reciprocalSqrtCandidate(sigAdj, workingPrec)
		mantInt, candExpParam = mi, int64(exp)-halfExp
		if floatCanRound(mantInt, workingPrec, errUlps, prec, rm) {
			break
		}
		workingPrec += workingPrec/2 + 16
		if workingPrec > maxWorkingPrec {
			panic(ErrNaN{"reciprocal square root: failed to converge"})
		}
	}

	rSig, rExp, ord := roundToPrecision(mantInt, int32(candExpParam), workingPrec, prec, rm)
	z, ord2 := clampMagnitude(rSig, rExp, prec, rm)
	if z.k == infKind || z.k == zeroKind {
		return z, ord2
	}
	return z, ord
}

// reciprocalSqrtCandidate computes an approximation to 1/sqrt(sigAdj), a
// positive integer, returning it as a workingPrec-bit mantissa mant and an
// exponent exp such that 1/sqrt(sigAdj) ≈ mant * 2**(exp-workingPrec).
//
// The Newton iteration t_{n+1} = t_n*(3 - sigAdj*t_n^2)/2 converges
// quadratically to 1/sqrt(sigAdj); each step's working precision roughly
// doubles, with a small constant subtracted to stay conservative about the
// accumulated rounding error of the big.Float engine itself, mirroring the
// precision-doubling schedule of a textbook Newton sqrt solver.
func reciprocalSqrtCandidate(sigAdj *big.Int, workingPrec uint64) (mant *big.Int, exp int) {
	const guard = 8
	prec := workingPrec + guard
	if bl := uint64(sigAdj.BitLen()); prec < bl {
		prec = bl
	}

	xf := new(big.Float).SetPrec(uint(prec)).SetInt(sigAdj)
	// Seed from xf's mantissa (xf == fm * 2**fe) so that a sigAdj beyond
	// float64's range still gets a finite starting guess.
	fm := new(big.Float)
	fe := xf.MantExp(fm)
	if fe%2 != 0 {
		fm.SetMantExp(fm, 1)
		fe--
	}
	seed, _ := fm.Float64()
	t := new(big.Float).SetPrec(64).SetFloat64(1 / math.Sqrt(seed))
	t.SetMantExp(t, -fe/2)

	three := new(big.Float).SetInt64(3)
	half := new(big.Float).SetFloat64(0.5)

	curPrec := uint64(64)
	for curPrec < prec {
		curPrec *= 2
		if curPrec > guard {
			curPrec -= guard
		}
		if curPrec > prec {
			curPrec = prec
		}
		xfp := new(big.Float).SetPrec(uint(curPrec)).Set(xf)
		t.SetPrec(uint(curPrec))
		u := new(big.Float).SetPrec(uint(curPrec)).Mul(t, t)
		u.Mul(xfp, u)
		v := new(big.Float).SetPrec(uint(curPrec)).Sub(three, u)
		u.Mul(t, v)
		t.Mul(u, half)
	}

	m := new(big.Float).SetPrec(uint(workingPrec))
	e := t.MantExp(m)
	m.SetMantExp(m, int(workingPrec))
	mi, _ := m.Int(nil)
	mi.Abs(mi)
	if bl := uint64(mi.BitLen()); bl < workingPrec {
		mi.Lsh(mi, uint(workingPrec-bl))
	} else if bl > workingPrec {
		mi.Rsh(mi, uint(bl-workingPrec))
	}
	return mi, e
}

// floatCanRound is the decidability predicate of the Ziv loop: it reports
// whether a workingPrec-bit mantissa sig, known only to within ±errUlps (in
// units of sig's own last bit), determines the rounding of the true value
// to prec bits under rm unambiguously. A false result means workingPrec
// must grow and the candidate must be recomputed.
func floatCanRound(sig *big.Int, workingPrec, errUlps, prec uint64, rm RoundingMode) bool {
	if workingPrec <= prec {
		return errUlps == 0
	}
	k := workingPrec - prec

	one := big.NewInt(1)
	bucket := new(big.Int).Lsh(one, uint(k))
	mask := new(big.Int).Sub(bucket, one)
	tail := new(big.Int).And(sig, mask)

	errBig := new(big.Int).SetUint64(errUlps)
	lo := new(big.Int).Sub(tail, errBig)
	hi := new(big.Int).Add(tail, errBig)

	if rm == Exact {
		return errUlps == 0 && tail.Sign() == 0
	}

	// If the uncertainty window could cross into a neighboring k-bit
	// bucket, we can't even trust which truncated value is correct.
	if lo.Sign() < 0 || hi.Cmp(bucket) >= 0 {
		return false
	}

	if rm != Nearest {
		// Floor/Ceiling/Down/Up all commit to the same truncated mantissa
		// regardless of the exact tail value, as long as it stays within
		// this bucket; only the Equal-vs-inexact Ordering could differ,
		// and that distinction doesn't change which bits get returned.
		return true
	}

	half := new(big.Int).Lsh(one, uint(k-1))
	loSide := lo.Cmp(half)
	hiSide := hi.Cmp(half)
	// Ambiguous only if the window straddles the tie point itself.
	return !(loSide < 0 && hiSide > 0) && !(loSide == 0 || hiSide == 0)
}

// ReciprocalSqrtRationalPrecRound returns the correctly-rounded value of
// 1/sqrt(x) for an arbitrary-precision Rational x, at the given precision
// and rounding mode.
func ReciprocalSqrtRationalPrecRound(x *big.Rat, prec uint64, rm RoundingMode) (*Float, Ordering) {
	if prec == 0 {
		errPrecZero()
	}
	switch x.Sign() {
	case 0:
		return InfFloat(false), Equal
	case -1:
		return NaNFloat(), Equal
	}

	if sqrt, ok := ratIsPerfectSquare(x); ok {
		recip := new(big.Rat).Inv(sqrt)
		return ratToFloatPrecRound(recip, prec, rm)
	}

	// Truncate x to a Float at a generous working precision; Down rounds
	// strictly toward zero, so the truncation error is bounded by 1 ulp at
	// that working precision. That error folds into the reciprocal-square-
	// root kernel as extra input uncertainty.
	xf, _ := ratToFloatPrecRound(x, prec+64, Down)
	return reciprocalSqrtPrecRoundErr(xf, prec, rm, 2)
}
