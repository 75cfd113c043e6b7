package vsl

import "github.com/rawbytedev/vsl/ieee"

// Complex is a complex number over float32 or float64. Unlike complex64 it
// can be instantiated with the same code path as Complex4.
type Complex[X ieee.Float] struct {
	Real X
	Imag X
}

func (c Complex[X]) Add(o Complex[X]) Complex[X] {
	return Complex[X]{c.Real + o.Real, c.Imag + o.Imag}
}

func (c Complex[X]) Sub(o Complex[X]) Complex[X] {
	return Complex[X]{c.Real - o.Real, c.Imag - o.Imag}
}

func (c Complex[X]) Mul(o Complex[X]) Complex[X] {
	return Complex[X]{c.Real*o.Real - c.Imag*o.Imag, c.Real*o.Imag + c.Imag*o.Real}
}

// Div divides without scaling; a zero divisor yields IEEE infinities or NaN.
func (c Complex[X]) Div(o Complex[X]) Complex[X] {
	d := o.Norm()
	return Complex[X]{(c.Real*o.Real + c.Imag*o.Imag) / d, (c.Imag*o.Real - c.Real*o.Imag) / d}
}

func (c Complex[X]) AddScalar(s X) Complex[X] { return Complex[X]{c.Real + s, c.Imag} }
func (c Complex[X]) SubScalar(s X) Complex[X] { return Complex[X]{c.Real - s, c.Imag} }
func (c Complex[X]) MulScalar(s X) Complex[X] { return Complex[X]{c.Real * s, c.Imag * s} }
func (c Complex[X]) DivScalar(s X) Complex[X] { return Complex[X]{c.Real / s, c.Imag / s} }

// Conj returns the complex conjugate.
func (c Complex[X]) Conj() Complex[X] { return Complex[X]{c.Real, -c.Imag} }

// Norm returns the squared magnitude.
func (c Complex[X]) Norm() X { return c.Real*c.Real + c.Imag*c.Imag }

// ScalarSub returns s - c.
func ScalarSub[X ieee.Float](s X, c Complex[X]) Complex[X] {
	return Complex[X]{s - c.Real, -c.Imag}
}

// ScalarDiv returns s / c.
func ScalarDiv[X ieee.Float](s X, c Complex[X]) Complex[X] {
	d := c.Norm()
	return Complex[X]{s * c.Real / d, -s * c.Imag / d}
}

// Complex4 holds four complex numbers in split real and imaginary lanes.
type Complex4 struct {
	Real Float4
	Imag Float4
}

func (c Complex4) Add(o Complex4) Complex4 {
	return Complex4{c.Real.Add(o.Real), c.Imag.Add(o.Imag)}
}

func (c Complex4) Sub(o Complex4) Complex4 {
	return Complex4{c.Real.Sub(o.Real), c.Imag.Sub(o.Imag)}
}

func (c Complex4) Mul(o Complex4) Complex4 {
	return Complex4{
		c.Real.Mul(o.Real).Sub(c.Imag.Mul(o.Imag)),
		c.Real.Mul(o.Imag).Add(c.Imag.Mul(o.Real)),
	}
}

func (c Complex4) Div(o Complex4) Complex4 {
	d := o.Norm()
	return Complex4{
		c.Real.Mul(o.Real).Add(c.Imag.Mul(o.Imag)).Div(d),
		c.Imag.Mul(o.Real).Sub(c.Real.Mul(o.Imag)).Div(d),
	}
}

func (c Complex4) AddScalar(s Float4) Complex4 { return Complex4{c.Real.Add(s), c.Imag} }
func (c Complex4) SubScalar(s Float4) Complex4 { return Complex4{c.Real.Sub(s), c.Imag} }
func (c Complex4) MulScalar(s Float4) Complex4 { return Complex4{c.Real.Mul(s), c.Imag.Mul(s)} }
func (c Complex4) DivScalar(s Float4) Complex4 { return Complex4{c.Real.Div(s), c.Imag.Div(s)} }

func (c Complex4) Conj() Complex4 { return Complex4{c.Real, c.Imag.Neg()} }

func (c Complex4) Norm() Float4 { return c.Real.Mul(c.Real).Add(c.Imag.Mul(c.Imag)) }

// Lane extracts complex number i.
func (c Complex4) Lane(i int) Complex[float32] {
	return Complex[float32]{c.Real[i], c.Imag[i]}
}

// ScalarSub4 returns s - c lane by lane.
func ScalarSub4(s Float4, c Complex4) Complex4 {
	return Complex4{s.Sub(c.Real), c.Imag.Neg()}
}

// ScalarDiv4 returns s / c lane by lane.
func ScalarDiv4(s Float4, c Complex4) Complex4 {
	d := c.Norm()
	return Complex4{s.Mul(c.Real).Div(d), s.Neg().Mul(c.Imag).Div(d)}
}
