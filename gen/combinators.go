// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gen

import (
	"iter"
	"math"
	"math/big"
	"math/rand/v2"
)

// geometricSample draws a single non-negative integer from a geometric
// distribution with the given mean, via inverse-CDF sampling. mean <= 0 is
// treated as 1.
func geometricSample(r *rand.Rand, mean float64) uint64 {
	if mean <= 0 {
		mean = 1
	}
	p := 1 / (mean + 1)
	u := r.Float64()
	if u >= 1 {
		u = 0.9999999999
	}
	v := math.Log(1-u) / math.Log(1-p)
	if v < 0 {
		v = 0
	}
	return uint64(v)
}

// Geometric yields an unbounded stream of non-negative integers drawn from
// a geometric distribution with the given mean: small values dominate, with
// a long tail, the same skew a fuzz harness wants when it's hunting for
// off-by-one and boundary bugs rather than covering the full range
// uniformly.
func Geometric(r *rand.Rand, mean float64) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for {
			if !yield(geometricSample(r, mean)) {
				return
			}
		}
	}
}

// StripedBig yields bitWidth-bit unsigned integers (as *big.Int, one bit
// per position 0..bitWidth-1) built from alternating runs of 0s and 1s,
// each run one bit longer than a draw from a geometric distribution of mean
// runLen (so runs average runLen+1 bits, before truncation at bitWidth).
// Striped inputs exercise carry propagation, borrow chains and rounding
// boundaries far more often than uniformly random bits do, which is why
// property-testing harnesses for arbitrary-precision arithmetic favor them
// over plain uniform sampling.
func StripedBig(r *rand.Rand, bitWidth int, runLen float64) iter.Seq[*big.Int] {
	return func(yield func(*big.Int) bool) {
		for {
			v := new(big.Int)
			bit := r.Uint64() & 1
			pos := 0
			for pos < bitWidth {
				run := int(geometricSample(r, runLen)) + 1
				if pos+run > bitWidth {
					run = bitWidth - pos
				}
				if bit == 1 {
					for i := 0; i < run; i++ {
						v.SetBit(v, pos+i, 1)
					}
				}
				pos += run
				bit ^= 1
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Striped is StripedBig narrowed to bitWidth <= 64, returned as uint64.
func Striped(r *rand.Rand, bitWidth int, runLen float64) iter.Seq[uint64] {
	return Map(StripedBig(r, bitWidth, runLen), func(v *big.Int) uint64 { return v.Uint64() })
}

// Ranged yields uniformly distributed integers in [lo, hi].
func Ranged(r *rand.Rand, lo, hi uint64) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for {
			v := lo + r.Uint64N(hi-lo+1)
			if !yield(v) {
				return
			}
		}
	}
}

// WithSpecialValue interleaves special into base at roughly 1-in-rate
// positions, using r to decide when. rate <= 0 disables injection (base is
// passed through unchanged).
func WithSpecialValue[T any](base iter.Seq[T], special T, rate int, r *rand.Rand) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range base {
			if rate > 0 && r.IntN(rate) == 0 {
				if !yield(special) {
					return
				}
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Unions round-robins over seqs, yielding from each in turn until all are
// exhausted. With unbounded inputs (like the generators elsewhere in this
// package) the result is unbounded too and keeps alternating among them.
func Unions[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		pulls := make([]func() (T, bool), len(seqs))
		stops := make([]func(), len(seqs))
		live := make([]bool, len(seqs))
		for i, s := range seqs {
			pulls[i], stops[i] = iter.Pull(s)
			live[i] = true
		}
		defer func() {
			for _, stop := range stops {
				stop()
			}
		}()
		remaining := len(seqs)
		i := 0
		for remaining > 0 {
			if live[i] {
				v, ok := pulls[i]()
				if !ok {
					live[i] = false
					remaining--
				} else if !yield(v) {
					return
				}
			}
			i = (i + 1) % len(seqs)
		}
	}
}

// Filter yields the elements of seq for which pred returns true.
func Filter[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if pred(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Map yields f applied to each element of seq.
func Map[T, U any](seq iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// zip2 pulls from a and b in lockstep, stopping as soon as either is
// exhausted. It underlies the *Pairs generator families below.
func zip2[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		nextA, stopA := iter.Pull(a)
		nextB, stopB := iter.Pull(b)
		defer stopA()
		defer stopB()
		for {
			va, ok := nextA()
			if !ok {
				return
			}
			vb, ok := nextB()
			if !ok {
				return
			}
			if !yield(va, vb) {
				return
			}
		}
	}
}
