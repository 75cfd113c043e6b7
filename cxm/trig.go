package cxm

import (
	"math"

	"github.com/rawbytedev/vsl/ieee"
)

// Cos approximates cos(x) with an even minimax polynomial. Valid on
// [-pi, pi]; use CosWrapped for arbitrary input.
func Cos[X ieee.Float](x X) X {
	const (
		c0  = 9.99999991e-01
		c2  = -4.99999934e-01
		c4  = 4.16665646e-02
		c6  = -1.38882256e-03
		c8  = 2.47799311e-05
		c10 = -2.71853320e-07
		c12 = 1.76564052e-09
	)
	x2 := x * x
	return c0 + x2*(c2+x2*(c4+x2*(c6+x2*(c8+x2*(c10+x2*c12)))))
}

// CosWrapped wraps x into [-pi, pi) before evaluating Cos.
func CosWrapped[X ieee.Float](x X) X {
	return Cos(WrapRange(x, -math.Pi, math.Pi))
}

// Sin approximates sin(x) with an odd minimax polynomial. Valid on
// [-pi, pi]; use SinWrapped for arbitrary input.
func Sin[X ieee.Float](x X) X {
	const (
		c1  = 9.99999737e-01
		c3  = -1.66665387e-01
		c5  = 8.33221031e-03
		c7  = -1.98027220e-04
		c9  = 2.69284266e-06
		c11 = -2.00882849e-08
	)
	x2 := x * x
	return x * (c1 + x2*(c3+x2*(c5+x2*(c7+x2*(c9+x2*c11)))))
}

// SinWrapped wraps x into [-pi, pi) before evaluating Sin.
func SinWrapped[X ieee.Float](x X) X {
	return Sin(WrapRange(x, -math.Pi, math.Pi))
}

// Tan approximates tan(x) with a [7/6] Padé approximant after wrapping x
// into [-pi/2, pi/2).
func Tan[X ieee.Float](x X) X {
	x = WrapRange(x, -math.Pi/2, math.Pi/2)
	const (
		a1 = 1
		a3 = -5 / 39.0
		a5 = 2 / 715.0
		a7 = -1 / 135135.0
		b0 = 1
		b2 = -6 / 13.0
		b4 = 10 / 429.0
		b6 = -4 / 19305.0
	)
	x2 := x * x
	numer := x * (a1 + x2*(a3+x2*(a5+x2*a7)))
	denom := b0 + x2*(b2+x2*(b4+x2*b6))
	return numer / denom
}

// Cosh approximates cosh(x) with a [6/6] Padé approximant. Accurate for
// moderate |x| (roughly |x| < 4).
func Cosh[X ieee.Float](x X) X {
	const (
		a0 = 1
		a2 = 3665 / 7788.0
		a4 = 711 / 25960.0
		a6 = 301 / 808396.0
		b0 = 1
		b2 = -229 / 7788.0
		b4 = 1 / 2360.0
		b6 = -1 / 309067.0
	)
	x2 := x * x
	numer := a0 + x2*(a2+x2*(a4+x2*a6))
	denom := b0 + x2*(b2+x2*(b4+x2*b6))
	return numer / denom
}

// Sinh approximates sinh(x) with a [7/6] Padé approximant.
func Sinh[X ieee.Float](x X) X {
	const (
		a1 = 1
		a3 = 29593 / 207636.0
		a5 = 1911 / 416747.0
		a7 = 13 / 312254.0
		b0 = 1
		b2 = -1671 / 69212.0
		b4 = 97 / 351384.0
		b6 = -1 / 626945.0
	)
	x2 := x * x
	numer := x * (a1 + x2*(a3+x2*(a5+x2*a7)))
	denom := b0 + x2*(b2+x2*(b4+x2*b6))
	return numer / denom
}

// Tanh approximates tanh(x) with a [7/6] Padé approximant. Diverges from
// ±1 for large |x|; clamp the result if that matters.
func Tanh[X ieee.Float](x X) X {
	const (
		a1 = 1
		a3 = 5 / 39.0
		a5 = 2 / 715.0
		a7 = 1 / 135135.0
		b0 = 1
		b2 = 6 / 13.0
		b4 = 10 / 429.0
		b6 = 4 / 19305.0
	)
	x2 := x * x
	numer := x * (a1 + x2*(a3+x2*(a5+x2*a7)))
	denom := b0 + x2*(b2+x2*(b4+x2*b6))
	return numer / denom
}
