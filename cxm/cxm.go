// Package cxm implements branch-light approximations of the common math
// functions. Everything here is built from comparisons, polynomial
// evaluation and IEEE bit manipulation only, so the same code runs lane by
// lane in the vector types of package vsl.
//
// Accuracy is that of the underlying polynomial or Padé approximant; see
// each function. Inputs outside the documented domain produce unspecified
// (but finite or IEEE special) results.
package cxm

import (
	"github.com/rawbytedev/vsl/ieee"
)

// DefaultTolerance is the tolerance AboutEqual callers use when they have no
// better figure.
const DefaultTolerance = 1e-6

// Abs returns |x|. Abs(-0) is -0.
func Abs[X ieee.Number](x X) X {
	if x >= 0 {
		return x
	}
	return -x
}

// Trunc rounds x toward zero.
func Trunc[X ieee.Float](x X) X {
	// values at or above 2^sig are already integral
	thresh := X(uint64(1) << ieee.SigBits[X]())
	if x != x || Abs(x) >= thresh {
		return x
	}
	if ieee.Is32[X]() {
		return X(int32(x))
	}
	return X(int64(x))
}

// Floor rounds x toward negative infinity.
func Floor[X ieee.Float](x X) X {
	t := Trunc(x)
	if x >= 0 || x == t {
		return t
	}
	return t - 1
}

// Ceil rounds x toward positive infinity.
func Ceil[X ieee.Float](x X) X {
	f := Floor(x)
	if x == f {
		return f
	}
	return f + 1
}

// Round rounds half up: Round(1.5) == 2, Round(-1.5) == -1.
func Round[X ieee.Float](x X) X {
	return Floor(x + 0.5)
}

// TruncToInt truncates x and converts it to an integer.
func TruncToInt[X ieee.Float](x X) int64 { return int64(Trunc(x)) }

// FloorToInt floors x and converts it to an integer.
func FloorToInt[X ieee.Float](x X) int64 { return int64(Floor(x)) }

// CeilToInt ceils x and converts it to an integer.
func CeilToInt[X ieee.Float](x X) int64 { return int64(Ceil(x)) }

// RoundToInt rounds x half up and converts it to an integer.
func RoundToInt[X ieee.Float](x X) int64 { return int64(Round(x)) }

// AboutEqual reports whether |a-b| < tol.
func AboutEqual[X ieee.Number](a, b, tol X) bool {
	return Abs(a-b) < tol
}

// Fmod returns x - trunc(x/y)*y, which carries the sign of x.
func Fmod[X ieee.Float](x, y X) X {
	return x - Trunc(x/y)*y
}

// Wrap maps x into [0, 1).
func Wrap[X ieee.Float](x X) X {
	return x - Floor(x)
}

// WrapRange maps x into [a, b).
func WrapRange[X ieee.Float](x, a, b X) X {
	rng := b - a
	return rng*Wrap((x-a)/rng) + a
}
