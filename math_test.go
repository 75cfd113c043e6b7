package vsl

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExp2Log2Lanes(t *testing.T) {
	tol := SplatFloat4(1e-5)
	arg := SplatFloat4(3.5)
	ref := SplatFloat4(float32(math.Exp2(3.5)))
	// relative tolerance; 2^3.5 is about 11.3
	require.True(t, AboutEqualFloat4(Exp2.Float4(arg, Approx).Div(ref), SplatFloat4(1), tol).All())
	require.True(t, AboutEqualFloat4(Exp2.Float4(arg, Exact), ref, tol).All())

	arg = SplatFloat4(69)
	ref = SplatFloat4(float32(math.Log2(69)))
	require.True(t, AboutEqualFloat4(Log2.Float4(arg, Approx), ref, SplatFloat4(1e-4)).All())
}

func TestModesAgree(t *testing.T) {
	xs := []float64{-2.75, -1.5, -0.3, 0.2, 0.5, 1.1, 2.9}
	for _, u := range []Unary{Abs, Trunc, Floor, Ceil, Cos, Sin, Sign, Wrap} {
		for _, x := range xs {
			assert.InDelta(t, u.F64(x, Exact), u.F64(x, Approx), 1e-4, "%s(%v)", u.Name, x)
			assert.InDelta(t, u.F32(float32(x), Exact), u.F32(float32(x), Approx), 1e-4, "%s(%v)", u.Name, x)
		}
	}
	for _, u := range []Unary{Tan, Cosh, Sinh, Tanh} {
		for _, x := range []float64{-1, -0.4, 0, 0.25, 1} {
			assert.InDelta(t, u.F64(x, Exact), u.F64(x, Approx), 1e-4, "%s(%v)", u.Name, x)
		}
	}
	for _, u := range []Unary{Exp2, Exp, Sqrt} {
		for _, x := range []float64{0.1, 0.5, 1, 2.5, 7, 100} {
			assert.InEpsilon(t, u.F64(x, Exact), u.F64(x, Approx), 1e-4, "%s(%v)", u.Name, x)
		}
	}
	for _, u := range []Unary{Log2, Log, Log10} {
		for _, x := range []float64{0.1, 0.5, 1, 2.5, 7, 100} {
			assert.InDelta(t, u.F64(x, Exact), u.F64(x, Approx), 1e-4, "%s(%v)", u.Name, x)
		}
	}
}

func TestRoundModes(t *testing.T) {
	require.Equal(t, -2.0, Round.F64(-1.5, Exact))
	require.Equal(t, -1.0, Round.F64(-1.5, Approx))
	require.Equal(t, Float4{2, 1, -1, -3}, Round.Float4(Float4{1.5, 1.49, -1.5, -2.9}, Approx))
}

func TestVectorDispatch(t *testing.T) {
	v := Double2{0.25, 4}
	require.Equal(t, Double2{0.5, 2}, Sqrt.Double2(v, Exact))
	got := Sqrt.Double2(v, Approx)
	require.InDelta(t, 0.5, got[0], 1e-12)
	require.InDelta(t, 2, got[1], 1e-12)

	require.Equal(t, Float4{1, 2, 2, 0}, Min.Float4(Float4{1, 3, 2, 0}, Float4{2, 2, 2, 2}, Exact))
	require.Equal(t, Float4{2, 3, 2, 2}, Max.Float4(Float4{1, 3, 2, 0}, Float4{2, 2, 2, 2}, Approx))
	require.Equal(t, Double2{0, 1}, Clamp.Double2(Double2{-3, 5}, Double2{0, 0}, Double2{1, 1}, Approx))
	require.Equal(t, Double2{0, 1}, Clamp.Double2(Double2{-3, 5}, Double2{0, 0}, Double2{1, 1}, Exact))
	require.Equal(t, float32(0.5), Fmod.F32(2.5, 2, Exact))
	require.InDelta(t, 0.5, Fmod.F32(2.5, 2, Approx), 1e-6)
	require.InDelta(t, 8, Pow.F64(2, 3, Approx), 1e-3)
	require.InDelta(t, 2, LogB.F64(3, 9, Exact), 1e-12)
	require.InDelta(t, 2, LogB.F64(3, 9, Approx), 1e-4)
	require.InDelta(t, math.Pi, WrapRange.F64(-math.Pi, 0, 2*math.Pi, Exact), 1e-12)
	require.InDelta(t, math.Pi, WrapRange.F32(-math.Pi, 0, 2*math.Pi, Approx), 1e-5)
}

func TestApproxTrigWraps(t *testing.T) {
	require.InDelta(t, math.Cos(100), Cos.F64(100, Approx), 1e-5)
	require.InDelta(t, math.Sin(-42), Sin.F64(-42, Approx), 1e-5)
}

func TestUnariesNamed(t *testing.T) {
	seen := map[string]bool{}
	for _, u := range Unaries() {
		require.NotEmpty(t, u.Name)
		require.False(t, seen[u.Name], u.Name)
		seen[u.Name] = true
	}
	require.Equal(t, "approx", Approx.String())
	require.Equal(t, "exact", Exact.String())
}

func TestAboutEqual(t *testing.T) {
	require.True(t, AboutEqual(1.0, 1.0000001, 1e-6))
	require.False(t, AboutEqual(float32(1), 1.1, 1e-6))
	require.Equal(t, Long2{-1, 0}, AboutEqualDouble2(Double2{1, 1}, Double2{1, 2}, SplatDouble2(1e-9)))
}

func BenchmarkSinFloat4(b *testing.B) {
	v := Float4{0.1, 0.2, 0.3, 0.4}
	for _, m := range []Mode{Exact, Approx} {
		b.Run(m.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				v = Sin.Float4(v, m)
			}
		})
	}
}

func TestParseModeLookup(t *testing.T) {
	m, err := ParseMode("Approx")
	require.NoError(t, err)
	require.Equal(t, Approx, m)
	m, err = ParseMode("exact")
	require.NoError(t, err)
	require.Equal(t, Exact, m)
	_, err = ParseMode("fast")
	require.Error(t, err)

	u, ok := LookupUnary("sqrt")
	require.True(t, ok)
	require.Equal(t, 3.0, u.F64(9, Exact))
	_, ok = LookupUnary("gamma")
	require.False(t, ok)
}

func TestFunctionTables(t *testing.T) {
	require.Equal(t, "pow", Pow.Name)
	require.Equal(t, 8.0, Pow.F64(2, 3, Exact))
	require.Equal(t, "clamp", Clamp.Name)
	require.Equal(t, Float4{0, 0.5, 1, 1}, Clamp.Float4(Float4{-1, 0.5, 1, 7}, SplatFloat4(0), SplatFloat4(1), Approx))
	for _, u := range Unaries() {
		got, ok := LookupUnary(u.Name)
		require.True(t, ok, u.Name)
		require.Equal(t, u.Name, got.Name)
	}
}
