// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package float

import "fmt"

// An ErrNaN panic is raised by a Float operation that would otherwise return
// a NaN produced by a programmer-contract violation: a zero precision, or a
// rounding mode of Exact applied to an operation whose exact result is not
// representable at the requested precision.
//
// Ordinary arithmetic special cases (e.g. 0×Inf) are NOT reported via
// ErrNaN: they are propagated as an ordinary NaN Float with an Equal
// Ordering, following this package's usual (Float, Ordering) return
// convention.
type ErrNaN struct {
	msg string
}

func (e ErrNaN) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return "float: NaN"
}

func errPrecZero() {
	panic(ErrNaN{"precision must be > 0"})
}

func errInexact(rm RoundingMode) {
	panic(ErrNaN{fmt.Sprintf("rounding mode %v: result is not exact", rm)})
}
