// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float

// Exponent and precision limits.
const (
	MaxExponent = 1<<30 - 1  // largest supported exponent
	MinExponent = -(1<<30 - 1) // smallest supported exponent

	// LimbWidth is the width, in bits, of the limb used to align stored
	// significands: a Finite Float's significand always has a bit length
	// that is a multiple of LimbWidth, with the low (L-Prec) bits zero.
	LimbWidth = 64

	limbHighBit = 1 << (LimbWidth - 1)
)

// RoundingMode determines how a Float value is rounded to the desired
// precision. Rounding may change the represented value; the rounding error
// relative to the exact result is described by the Ordering returned
// alongside the rounded value.
type RoundingMode byte

// The six rounding modes.
const (
	Floor   RoundingMode = iota // toward -Inf
	Ceiling                     // toward +Inf
	Down                        // toward zero
	Up                          // away from zero
	Nearest                     // to nearest, ties to even
	Exact                       // assert no rounding occurs
)

func (rm RoundingMode) String() string {
	switch rm {
	case Floor:
		return "Floor"
	case Ceiling:
		return "Ceiling"
	case Down:
		return "Down"
	case Up:
		return "Up"
	case Nearest:
		return "Nearest"
	case Exact:
		return "Exact"
	default:
		return "RoundingMode(?)"
	}
}

// negRM returns the rounding mode to apply to a magnitude so that rounding
// it and then negating the result equals negating first and rounding with
// rm. Floor and Ceiling swap; the other four modes are direction-agnostic
// and remain unchanged.
func negRM(rm RoundingMode) RoundingMode {
	switch rm {
	case Floor:
		return Ceiling
	case Ceiling:
		return Floor
	default:
		return rm
	}
}

// Ordering describes a rounded result relative to the exact mathematical
// value it approximates.
type Ordering int8

// The three possible orderings.
const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "Ordering(?)"
	}
}

// reverseOrd reverses an Ordering; used whenever a computation was carried
// out on a magnitude and must be reported relative to a negative value.
func reverseOrd(o Ordering) Ordering {
	return -o
}

// kind identifies which of the five cases of the tagged-variant Float type
// a value currently holds. The zero value (nanKind) is intentionally not a
// ready-to-use Float; see NewFloat.
type kind byte

const (
	nanKind kind = iota
	infKind
	zeroKind
	finiteKind
)
