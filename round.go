// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float

import "math/big"

// unpad strips a limb-aligned significand's trailing padding zero bits down
// to exactly prec significant bits (lossless: the stripped bits are zero by
// construction). It is the inverse of the padding newFinite applies.
func unpad(sig *big.Int, prec uint64) *big.Int {
	L := uint64(sig.BitLen())
	if L <= prec {
		return sig
	}
	return new(big.Int).Rsh(sig, uint(L-prec))
}

// isPowerOfTwo reports whether the positive integer n is an exact power of
// two.
func isPowerOfTwo(n *big.Int) bool {
	if n.Sign() <= 0 {
		return false
	}
	t := new(big.Int).Sub(n, big.NewInt(1))
	t.And(t, n)
	return t.Sign() == 0
}

// roundToPrecision is the central rounding helper: given a positive
// magnitude sig (exactly workingPrec significant bits, top bit set) with
// value sig * 2**(exp-workingPrec), produce the rounded representation at
// prec bits, value sig' * 2**(exp'-prec), plus the Ordering of the rounded
// value relative to the exact input magnitude.
//
// exp is unchanged by rounding except when rounding up causes the mantissa
// to carry past its top bit, in which case it is incremented by 1 (the
// mantissa is then shifted right by one more bit to restore the invariant
// that its bit length equals prec).
//
// roundToPrecision operates purely on magnitudes: callers negotiate sign by
// pre-negating rm (see negRM) and reversing the returned Ordering.
func roundToPrecision(sig *big.Int, exp int32, workingPrec, prec uint64, rm RoundingMode) (*big.Int, int32, Ordering) {
	if prec == 0 {
		errPrecZero()
	}

	if workingPrec <= prec {
		if workingPrec == prec {
			return sig, exp, Equal
		}
		// pad: exact, no rounding needed.
		return new(big.Int).Lsh(sig, uint(prec-workingPrec)), exp, Equal
	}

	k := workingPrec - prec
	mask := new(big.Int).Lsh(big.NewInt(1), uint(k))
	mask.Sub(mask, big.NewInt(1))
	tail := new(big.Int).And(sig, mask)
	truncated := new(big.Int).Rsh(sig, uint(k))

	if tail.Sign() == 0 {
		return truncated, exp, Equal
	}

	if rm == Exact {
		errInexact(rm)
	}

	var roundUp bool
	var ord Ordering
	switch rm {
	case Floor, Down:
		roundUp, ord = false, Less
	case Ceiling, Up:
		roundUp, ord = true, Greater
	case Nearest:
		half := new(big.Int).Lsh(big.NewInt(1), uint(k-1))
		switch tail.Cmp(half) {
		case -1:
			roundUp, ord = false, Less
		case 1:
			roundUp, ord = true, Greater
		default: // exactly half-way: ties to even (fewer 1 bits retained)
			if truncated.Bit(0) == 1 {
				roundUp, ord = true, Greater
			} else {
				roundUp, ord = false, Less
			}
		}
	default:
		panic("float: unreachable rounding mode")
	}

	if roundUp {
		truncated.Add(truncated, big.NewInt(1))
		if uint64(truncated.BitLen()) > prec {
			truncated.Rsh(truncated, 1)
			exp++
		}
	}
	return truncated, exp, ord
}

// maxFiniteMagnitude returns the largest representable magnitude at the
// given precision: significand all-ones (prec bits), exponent MaxExponent.
func maxFiniteMagnitude(prec uint64) (*big.Int, int32) {
	sig := new(big.Int).Lsh(big.NewInt(1), uint(prec))
	sig.Sub(sig, big.NewInt(1))
	return sig, MaxExponent
}

// minFiniteMagnitude returns the smallest positive representable magnitude
// at the given precision: significand with only its top bit set (prec
// bits), exponent MinExponent.
func minFiniteMagnitude(prec uint64) (*big.Int, int32) {
	sig := new(big.Int).Lsh(big.NewInt(1), uint(prec-1))
	return sig, MinExponent
}

// clampMagnitude enforces the exponent-range policy on a rounded positive
// magnitude (sig has exactly prec bits; exp is the exponent that
// roundToPrecision produced). The MinExponent-1 tie between +0 and the
// smallest subnormal is resolved here from sig alone (via isPowerOfTwo),
// consolidated in one place rather than duplicated per caller.
//
// The returned Float always has sign == false; callers apply the true sign
// and, if negative, reverse the returned Ordering.
func clampMagnitude(sig *big.Int, exp int32, prec uint64, rm RoundingMode) (*Float, Ordering) {
	switch {
	case exp > MaxExponent:
		switch rm {
		case Exact:
			errInexact(rm)
		case Ceiling, Up, Nearest:
			return InfFloat(false), Greater
		default: // Floor, Down
			s, e := maxFiniteMagnitude(prec)
			return newFinite(false, s, e, prec), Less
		}
	case exp == MinExponent-1 && rm == Nearest:
		// Half-ulp boundary between +0 and the smallest positive
		// subnormal: ties to even, and 0 is the even side.
		if isPowerOfTwo(sig) && uint64(sig.BitLen()) == prec {
			// sig's only set bit is its top bit: the magnitude equals
			// exactly half of the minimum subnormal. Ties to even: 0 is
			// "even" here (it retains no significand bits at all).
			return ZeroFloat(false), Less
		}
		s, e := minFiniteMagnitude(prec)
		return newFinite(false, s, e, prec), Greater
	case exp < MinExponent:
		switch rm {
		case Exact:
			errInexact(rm)
		case Ceiling, Up:
			s, e := minFiniteMagnitude(prec)
			return newFinite(false, s, e, prec), Greater
		default: // Floor, Down, and Nearest below the half-ulp boundary
			return ZeroFloat(false), Less
		}
	}
	return newFinite(false, sig, exp, prec), Equal
}
