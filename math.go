package vsl

import (
	"fmt"
	"math"
	"strings"

	"github.com/rawbytedev/vsl/cxm"
	"github.com/rawbytedev/vsl/ieee"
)

// Mode picks the kernel family a math function runs on.
type Mode uint8

const (
	// Exact routes to package math.
	Exact Mode = iota
	// Approx routes to the polynomial kernels of package cxm.
	Approx
)

func (m Mode) String() string {
	switch m {
	case Exact:
		return "exact"
	case Approx:
		return "approx"
	}
	return "Mode(?)"
}

// ParseMode maps "exact" or "approx" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "exact":
		return Exact, nil
	case "approx":
		return Approx, nil
	}
	return 0, fmt.Errorf("unknown math mode %q", s)
}

// Unary is a one-argument math function available on every float shape.
type Unary struct {
	Name     string
	exact    func(float64) float64
	approx32 func(float32) float32
	approx64 func(float64) float64
}

func (u Unary) F64(x float64, m Mode) float64 {
	if m == Approx {
		return u.approx64(x)
	}
	return u.exact(x)
}

func (u Unary) F32(x float32, m Mode) float32 {
	if m == Approx {
		return u.approx32(x)
	}
	return float32(u.exact(float64(x)))
}

func (u Unary) Float4(v Float4, m Mode) Float4 {
	var r Float4
	for i, x := range v {
		r[i] = u.F32(x, m)
	}
	return r
}

func (u Unary) Double2(v Double2, m Mode) Double2 {
	var r Double2
	for i, x := range v {
		r[i] = u.F64(x, m)
	}
	return r
}

// Binary is a two-argument math function available on every float shape.
type Binary struct {
	Name     string
	exact    func(float64, float64) float64
	approx32 func(float32, float32) float32
	approx64 func(float64, float64) float64
}

func (f Binary) F64(a, b float64, m Mode) float64 {
	if m == Approx {
		return f.approx64(a, b)
	}
	return f.exact(a, b)
}

func (f Binary) F32(a, b float32, m Mode) float32 {
	if m == Approx {
		return f.approx32(a, b)
	}
	return float32(f.exact(float64(a), float64(b)))
}

func (f Binary) Float4(a, b Float4, m Mode) Float4 {
	var r Float4
	zipLanes(r[:], a[:], b[:], func(x, y float32) float32 { return f.F32(x, y, m) })
	return r
}

func (f Binary) Double2(a, b Double2, m Mode) Double2 {
	var r Double2
	zipLanes(r[:], a[:], b[:], func(x, y float64) float64 { return f.F64(x, y, m) })
	return r
}

// Ternary is a three-argument math function such as Clamp.
type Ternary struct {
	Name     string
	exact    func(float64, float64, float64) float64
	approx32 func(float32, float32, float32) float32
	approx64 func(float64, float64, float64) float64
}

func (f Ternary) F64(a, b, c float64, m Mode) float64 {
	if m == Approx {
		return f.approx64(a, b, c)
	}
	return f.exact(a, b, c)
}

func (f Ternary) F32(a, b, c float32, m Mode) float32 {
	if m == Approx {
		return f.approx32(a, b, c)
	}
	return float32(f.exact(float64(a), float64(b), float64(c)))
}

func (f Ternary) Float4(a, b, c Float4, m Mode) Float4 {
	var r Float4
	zip3Lanes(r[:], a[:], b[:], c[:], func(x, y, z float32) float32 { return f.F32(x, y, z, m) })
	return r
}

func (f Ternary) Double2(a, b, c Double2, m Mode) Double2 {
	var r Double2
	zip3Lanes(r[:], a[:], b[:], c[:], func(x, y, z float64) float64 { return f.F64(x, y, z, m) })
	return r
}

func unaryFunc(name string, exact func(float64) float64, a32 func(float32) float32, a64 func(float64) float64) Unary {
	return Unary{Name: name, exact: exact, approx32: a32, approx64: a64}
}

func binaryFunc(name string, exact func(float64, float64) float64, a32 func(float32, float32) float32, a64 func(float64, float64) float64) Binary {
	return Binary{Name: name, exact: exact, approx32: a32, approx64: a64}
}

func ternaryFunc(name string, exact func(float64, float64, float64) float64, a32 func(float32, float32, float32) float32, a64 func(float64, float64, float64) float64) Ternary {
	return Ternary{Name: name, exact: exact, approx32: a32, approx64: a64}
}

// Rounding, remainders and wrapping. Round in Exact mode rounds half away
// from zero (math.Round); in Approx mode it rounds half up. Wrap and
// WrapRange have no library counterpart and run the same kernel in both
// modes.
var (
	Abs       = unaryFunc("abs", math.Abs, cxm.Abs[float32], cxm.Abs[float64])
	Trunc     = unaryFunc("trunc", math.Trunc, cxm.Trunc[float32], cxm.Trunc[float64])
	Floor     = unaryFunc("floor", math.Floor, cxm.Floor[float32], cxm.Floor[float64])
	Ceil      = unaryFunc("ceil", math.Ceil, cxm.Ceil[float32], cxm.Ceil[float64])
	Round     = unaryFunc("round", math.Round, cxm.Round[float32], cxm.Round[float64])
	Fmod      = binaryFunc("fmod", math.Mod, cxm.Fmod[float32], cxm.Fmod[float64])
	Wrap      = unaryFunc("wrap", cxm.Wrap[float64], cxm.Wrap[float32], cxm.Wrap[float64])
	WrapRange = ternaryFunc("wrap_range", cxm.WrapRange[float64], cxm.WrapRange[float32], cxm.WrapRange[float64])
)

// Trigonometric and hyperbolic functions. Approx Cos, Sin and Tan wrap
// their argument into the kernel's domain first, so any finite input is
// accepted.
var (
	Cos  = unaryFunc("cos", math.Cos, cxm.CosWrapped[float32], cxm.CosWrapped[float64])
	Sin  = unaryFunc("sin", math.Sin, cxm.SinWrapped[float32], cxm.SinWrapped[float64])
	Tan  = unaryFunc("tan", math.Tan, cxm.Tan[float32], cxm.Tan[float64])
	Cosh = unaryFunc("cosh", math.Cosh, cxm.Cosh[float32], cxm.Cosh[float64])
	Sinh = unaryFunc("sinh", math.Sinh, cxm.Sinh[float32], cxm.Sinh[float64])
	Tanh = unaryFunc("tanh", math.Tanh, cxm.Tanh[float32], cxm.Tanh[float64])
)

// Exponentials, logarithms and powers.
var (
	Exp2  = unaryFunc("exp2", math.Exp2, cxm.Exp2[float32], cxm.Exp2[float64])
	Log2  = unaryFunc("log2", math.Log2, cxm.Log2[float32], cxm.Log2[float64])
	Exp   = unaryFunc("exp", math.Exp, cxm.Exp[float32], cxm.Exp[float64])
	Log   = unaryFunc("log", math.Log, cxm.Log[float32], cxm.Log[float64])
	Log10 = unaryFunc("log10", math.Log10, cxm.Log10[float32], cxm.Log10[float64])
	LogB  = binaryFunc("logb", logB, cxm.LogB[float32], cxm.LogB[float64])
	Pow   = binaryFunc("pow", math.Pow, cxm.Pow[float32], cxm.Pow[float64])
	Sqrt  = unaryFunc("sqrt", math.Sqrt, cxm.Sqrt[float32], cxm.Sqrt[float64])
)

// Comparisons and sign.
var (
	Min   = binaryFunc("min", math.Min, cxm.Min[float32], cxm.Min[float64])
	Max   = binaryFunc("max", math.Max, cxm.Max[float32], cxm.Max[float64])
	Clamp = ternaryFunc("clamp", clamp, cxm.Clamp[float32], cxm.Clamp[float64])
	Sign  = unaryFunc("sign", sign, cxm.Sign[float32], cxm.Sign[float64])
)

// Unaries lists every one-argument function, in declaration order.
func Unaries() []Unary {
	return []Unary{Abs, Trunc, Floor, Ceil, Round, Wrap, Cos, Sin, Tan, Cosh, Sinh, Tanh,
		Exp2, Log2, Exp, Log, Log10, Sqrt, Sign}
}

// LookupUnary finds a one-argument function by name.
func LookupUnary(name string) (Unary, bool) {
	for _, u := range Unaries() {
		if u.Name == name {
			return u, true
		}
	}
	return Unary{}, false
}

func logB(b, x float64) float64 { return math.Log(x) / math.Log(b) }

func clamp(x, lo, hi float64) float64 { return math.Min(math.Max(x, lo), hi) }

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// AboutEqual reports whether |a-b| < tol.
func AboutEqual[X ieee.Number](a, b, tol X) bool { return cxm.AboutEqual(a, b, tol) }

// AboutEqualFloat4 returns a mask of the lanes where |a-b| < tol.
func AboutEqualFloat4(a, b, tol Float4) Int4 {
	var m Int4
	for i := range m {
		m[i] = BoolToMask[int32](cxm.AboutEqual(a[i], b[i], tol[i]))
	}
	return m
}

// AboutEqualDouble2 returns a mask of the lanes where |a-b| < tol.
func AboutEqualDouble2(a, b, tol Double2) Long2 {
	var m Long2
	for i := range m {
		m[i] = BoolToMask[int64](cxm.AboutEqual(a[i], b[i], tol[i]))
	}
	return m
}
