// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gen provides deterministic, seeded test-input generators for the
// float package: streams of Floats, Float pairs, and rounding modes built
// from a handful of small combinators over Go's iter.Seq iterator protocol.
//
// Every generator in this package is a pure function of its Seed: the same
// Seed, forked through the same sequence of labels, always produces the same
// stream of values, on any machine, in any process. That is what lets a
// failing property test report its seed and have the failure reproduce.
package gen

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand/v2"
)

// Seed is a reproducible 128-bit source of pseudo-randomness. The zero Seed
// is not meaningful; construct one with NewSeed.
type Seed struct {
	hi, lo uint64
}

// NewSeed returns the root Seed derived from n. Two different n values
// produce Seeds with statistically independent streams; the same n always
// produces the same Seed.
func NewSeed(n uint64) Seed {
	return Seed{hi: n, lo: 0x9e3779b97f4a7c15 ^ n}
}

// Fork derives a child Seed from s and label. Forking is how a test harness
// hands out independent sub-streams to unrelated generators (e.g. a Float
// pair's x and y operands) without those streams becoming correlated, and
// without having to thread a counter through every call site by hand.
func (s Seed) Fork(label string) Seed {
	lo := fnvSum(s.hi, s.lo, label, 0)
	hi := fnvSum(s.hi, s.lo, label, 1)
	return Seed{hi: hi, lo: lo}
}

// fnvSum folds (hi, lo, label, tag) into a single 64-bit value with FNV-1a.
// tag lets two otherwise-identical inputs (the hi and lo halves of a forked
// Seed) diverge.
func fnvSum(hi, lo uint64, label string, tag byte) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], hi)
	h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], lo)
	h.Write(buf[:])
	h.Write([]byte(label))
	h.Write([]byte{tag})
	return h.Sum64()
}

// Rand returns a *rand.Rand seeded deterministically from s, backed by
// ChaCha8 (math/rand/v2's recommended high-quality generator for simulation
// and testing work).
func (s Seed) Rand() *rand.Rand {
	return rand.New(rand.NewChaCha8(s.expand()))
}

// expand stretches s's 128 bits of state into the 256-bit seed ChaCha8
// requires, by hashing four distinct tags of (hi, lo).
func (s Seed) expand() [32]byte {
	var out [32]byte
	for i := byte(0); i < 4; i++ {
		v := fnvSum(s.hi, s.lo, "expand", i)
		binary.LittleEndian.PutUint64(out[8*i:8*i+8], v)
	}
	return out
}
