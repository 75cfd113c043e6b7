package cxm

import (
	"math"

	"github.com/rawbytedev/vsl/ieee"
)

// Exp2 approximates 2^x. The integral part of x goes straight into the
// exponent bits; the remainder in [-0.5, 0.5] is handled by a [3/2] Padé
// approximant. The result is undefined once round(x) leaves the normal
// exponent range of X.
func Exp2[X ieee.Float](x X) X {
	bias := ieee.ExpBias[X]()
	sig := ieee.SigBits[X]()

	ip := RoundToInt(x)
	dp := x - X(ip)
	ipow := ieee.FromBits[X](uint64(ip+bias) << sig)

	const (
		a0 = 1
		a1 = 339557 / 816462.0
		a2 = 10716 / 148693.0
		a3 = 4741 / 854171.0
		b0 = 1
		b1 = -234861 / 847082.0
		b2 = 3572 / 148693.0
	)
	numer := a0 + dp*(a1+dp*(a2+dp*a3))
	denom := b0 + dp*(b1+dp*b2)
	return ipow * (numer / denom)
}

// Log2 approximates log2(x) for positive normal x: the unbiased exponent
// plus a degree-6 polynomial in (mantissa - 1).
func Log2[X ieee.Float](x X) X {
	bias := ieee.ExpBias[X]()
	sig := ieee.SigBits[X]()
	sigMask := uint64(1)<<sig - 1

	bits := ieee.Bits(x)
	ip := X(int64(bits>>sig) - bias)
	m := ieee.FromBits[X](uint64(bias)<<sig | bits&sigMask)

	xm := m - 1
	xm2 := xm * xm
	xm3 := xm2 * xm
	xm4 := xm2 * xm2
	xm5 := xm3 * xm2
	xm6 := xm3 * xm3

	dp := -0.03428757*xm6 + 0.1456237*xm5 - 0.30262538*xm4 +
		0.46899335*xm3 - 0.72039364*xm2 + 1.44268127*xm
	return ip + dp
}

// Exp approximates e^x.
func Exp[X ieee.Float](x X) X {
	return Exp2(math.Log2E * x)
}

// Log approximates ln(x).
func Log[X ieee.Float](x X) X {
	return math.Ln2 * Log2(x)
}

// Log10 approximates log10(x).
func Log10[X ieee.Float](x X) X {
	return (math.Ln2 / math.Ln10) * Log2(x)
}

// LogB approximates log base b of x.
func LogB[X ieee.Float](b, x X) X {
	return Log2(x) / Log2(b)
}

// Pow approximates x^y for positive x.
func Pow[X ieee.Float](x, y X) X {
	return Exp2(Log2(x) * y)
}

// Sqrt approximates the square root of x from a halved-exponent bit seed
// refined by three Newton steps. Subnormal x is scaled by 2^64 first.
func Sqrt[X ieee.Float](x X) X {
	switch {
	case x == 0 || x != x || math.IsInf(float64(x), 1):
		return x
	case x < 0:
		return X(math.NaN())
	case x < smallestNormal[X]():
		return Sqrt(x*0x1p64) * 0x1p-32
	}
	bits := ieee.Bits(x)
	var y X
	if ieee.Is32[X]() {
		y = ieee.FromBits[X](0x1fbd1df5 + bits>>1)
	} else {
		y = ieee.FromBits[X](0x1ff7a3bea91d9b1b + bits>>1)
	}
	for i := 0; i < 3; i++ {
		y = 0.5 * (y + x/y)
	}
	return y
}

func smallestNormal[X ieee.Float]() X {
	if ieee.Is32[X]() {
		return X(math.Float32frombits(0x00800000))
	}
	return X(math.Float64frombits(0x0010000000000000))
}
