// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"iter"

	"github.com/db47h/malachite"
)

// RoundingModes yields pseudo-random RoundingModes drawn uniformly from
// Floor, Ceiling, Down, Up and Nearest. Exact is excluded: most generated
// operand pairs are not exact under an arbitrary operation, so including it
// would mostly produce panics rather than coverage.
func RoundingModes(seed Seed) iter.Seq[float.RoundingMode] {
	r := seed.Rand()
	modes := [...]float.RoundingMode{
		float.Floor, float.Ceiling, float.Down, float.Up, float.Nearest,
	}
	return func(yield func(float.RoundingMode) bool) {
		for {
			if !yield(modes[r.IntN(len(modes))]) {
				return
			}
		}
	}
}

// Floats yields pseudo-random Floats, with significands built from Striped
// (so carry/borrow and rounding-boundary bit patterns show up often) and
// exponents drawn uniformly from a configurable range. Special values (NaN,
// ±Inf, ±0) are interleaved at a configurable rate.
//
// Recognized cfg keys (all optional): "min_prec", "max_prec" (default 1,
// 256), "exp_spread" (default 64; exponents are drawn uniformly from
// [-exp_spread, +exp_spread]), "run_len" (default 3, the mean run length fed
// to Striped), "special_every" (default 16; 0 disables special-value
// injection).
func Floats(seed Seed, cfg Config) iter.Seq[*float.Float] {
	r := seed.Rand()
	minPrec := cfg.GetOr("min_prec", 1)
	if minPrec < 1 {
		minPrec = 1
	}
	maxPrec := cfg.GetOr("max_prec", 256)
	if maxPrec < minPrec {
		maxPrec = minPrec
	}
	expSpread := int(cfg.GetOr("exp_spread", 64))
	runLen := float64(cfg.GetOr("run_len", 3))
	specialEvery := int(cfg.GetOr("special_every", 16))

	specials := [...]*float.Float{
		float.NaNFloat(),
		float.InfFloat(false), float.InfFloat(true),
		float.ZeroFloat(false), float.ZeroFloat(true),
	}

	return func(yield func(*float.Float) bool) {
		n := 0
		for {
			n++
			if specialEvery > 0 && n%specialEvery == 0 {
				if !yield(specials[r.IntN(len(specials))]) {
					return
				}
				continue
			}

			prec := minPrec
			if maxPrec > minPrec {
				prec += r.Uint64N(maxPrec - minPrec + 1)
			}

			bits, stop := iter.Pull(StripedBig(r, int(prec), runLen))
			sig, _ := bits()
			stop()
			sig.SetBit(sig, int(prec-1), 1) // force the top bit: precision is exactly prec.
			if sig.Sign() == 0 {
				sig.SetUint64(1)
			}

			targetExp := 0
			if expSpread > 0 {
				targetExp = r.IntN(2*expSpread+1) - expSpread
			}

			z := float.NewFloatFromInt(sig)
			shift := targetExp - int(z.Exponent())
			pow2 := float.NewFloat(1, shift)
			z, _ = float.MulPrecRound(z, pow2, prec, float.Nearest)

			if r.IntN(2) == 0 {
				z = float.Neg(z)
			}

			if !yield(z) {
				return
			}
		}
	}
}

// FloatPairs yields pairs of Floats drawn independently from Floats, with
// cfg applied identically to both operands. The two streams are forked from
// distinct labels so that x and y never share their underlying bit pattern.
func FloatPairs(seed Seed, cfg Config) iter.Seq2[*float.Float, *float.Float] {
	x := Floats(seed.Fork("pair.x"), cfg)
	y := Floats(seed.Fork("pair.y"), cfg)
	return zip2(x, y)
}

// RoundingModePairs yields (Float, RoundingMode) pairs, for operations
// (like SetPrec or ReciprocalSqrtPrecRound) whose only input besides
// precision is a single operand and a rounding mode.
func RoundingModePairs(seed Seed, cfg Config) iter.Seq2[*float.Float, float.RoundingMode] {
	v := Floats(seed.Fork("rm.value"), cfg)
	m := RoundingModes(seed.Fork("rm.mode"))
	return zip2(v, m)
}
