package context_test

import (
	"fmt"
	"math/big"

	"github.com/db47h/malachite"
	"github.com/db47h/malachite/context"
)

// geometricMean computes sqrt(x*y) at ctx's precision, using only Mul and
// ReciprocalSqrt (this package has no direct Sqrt, by design — see
// context.Context.ReciprocalSqrt's doc comment): sqrt(p) == p * (1/sqrt(p)).
func geometricMean(ctx *context.Context, x, y *float.Float) *float.Float {
	p := ctx.Mul(x, y)
	inv := ctx.ReciprocalSqrt(p)
	return ctx.Mul(p, inv)
}

// Example demonstrates composing Context operations and checking for the
// sticky NaN error.
func Example() {
	ctx := context.New(24, float.Nearest)
	x := ctx.NewInt64(2)
	y := ctx.NewInt64(8)

	g := geometricMean(ctx, x, y)
	if err := ctx.Err(); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("sqrt(2*8) == 4:", g.Cmp(ctx.NewInt64(4)) == 0)

	// A negative operand has no real reciprocal square root: ReciprocalSqrt
	// reports NaN and the Context latches the error.
	neg := ctx.Neg(x)
	_ = ctx.ReciprocalSqrt(neg)
	if err := ctx.Err(); err != nil {
		fmt.Println("error:", err)
	}

	// Output:
	// sqrt(2*8) == 4: true
	// error: context: float: NaN
}

// ExampleContext_MulRational shows scaling a Float by an exact rational
// (here, 3/2) rather than rounding the rational to a Float first.
func ExampleContext_MulRational() {
	ctx := context.New(32, float.Nearest)
	x := ctx.NewInt64(10)
	r := big.NewRat(3, 2)
	z := ctx.MulRational(x, r)
	fmt.Println("10*3/2 == 15:", z.Cmp(ctx.NewInt64(15)) == 0)
	// Output:
	// 10*3/2 == 15: true
}
