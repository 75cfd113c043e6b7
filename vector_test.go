package vsl

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	a := Float4{1, 2, 3, 4}
	b := SplatFloat4(2)
	assert.Equal(t, Float4{3, 4, 5, 6}, a.Add(b))
	assert.Equal(t, Float4{-1, 0, 1, 2}, a.Sub(b))
	assert.Equal(t, Float4{2, 4, 6, 8}, a.Mul(b))
	assert.Equal(t, Float4{0.5, 1, 1.5, 2}, a.Div(b))
	assert.Equal(t, Float4{-1, -2, -3, -4}, a.Neg())
	assert.Equal(t, Float4{3, 6, 9, 12}, a.Scale(3))
	assert.Equal(t, float32(10), a.Sum())

	d := Double2{1.5, -2}
	assert.Equal(t, Double2{3, -4}, d.Add(d))
	assert.Equal(t, Double2{1, 1}, d.Div(d))

	i := Int4{1, -2, 3, math.MaxInt32}
	assert.Equal(t, Int4{2, -4, 6, -2}, i.Add(i))
	assert.Equal(t, Int4{-1, 2, -3, -math.MaxInt32}, i.Neg())
	assert.Equal(t, Long2{6, -8}, Long2{3, -4}.Mul(SplatLong2(2)))

	u := Uint4{0, 1, 2, 3}
	assert.Equal(t, Uint4{math.MaxUint32, 0, 1, 2}, u.Sub(SplatUint4(1)))
	assert.Equal(t, Ulong2{10, 20}, Ulong2{5, 10}.Add(Ulong2{5, 10}))
}

func TestBitOps(t *testing.T) {
	a := Int4{0b1100, 0b1010, -1, 0}
	b := SplatInt4(0b0110)
	assert.Equal(t, Int4{0b0100, 0b0010, 0b0110, 0}, a.And(b))
	assert.Equal(t, Int4{0b1110, 0b1110, -1, 0b0110}, a.Or(b))
	assert.Equal(t, Int4{0b1010, 0b1100, ^0b0110, 0b0110}, a.Xor(b))
	assert.Equal(t, Int4{^0b1100, ^0b1010, 0, -1}, a.Not())
	assert.Equal(t, Int4{-1, -1, -1, -1}, SplatInt4(-8).Shr(3), "arithmetic shift")
	assert.Equal(t, Int4{8, 8, 8, 8}, SplatInt4(1).Shl(3))

	assert.Equal(t, SplatUint4(math.MaxUint32>>3), SplatUint4(math.MaxUint32).Shr(3), "logical shift")
	assert.Equal(t, Ulong2{2, 4}, Ulong2{1, 2}.Shl(1))
	assert.Equal(t, Long2{0, -1}, Long2{5, 0}.Not().And(Long2{0, -1}))
}

func TestComparisons(t *testing.T) {
	a := Float4{1, 2, 3, float32(math.NaN())}
	b := SplatFloat4(2)
	assert.Equal(t, Int4{0, -1, 0, 0}, a.Eq(b))
	assert.Equal(t, Int4{-1, 0, -1, -1}, a.Ne(b))
	assert.Equal(t, Int4{-1, 0, 0, 0}, a.Lt(b))
	assert.Equal(t, Int4{-1, -1, 0, 0}, a.Le(b))
	assert.Equal(t, Int4{0, 0, -1, 0}, a.Gt(b))
	assert.Equal(t, Int4{0, -1, -1, 0}, a.Ge(b))

	assert.Equal(t, Long2{-1, 0}, Double2{1, 2}.Lt(Double2{2, 1}))
	assert.Equal(t, Int4{0, 0, -1, -1}, Uint4{0, 1, 2, math.MaxUint32}.Gt(SplatUint4(1)))
	assert.Equal(t, Long2{-1, 0}, Ulong2{1, 2}.Le(Ulong2{1, 1}))
	assert.Equal(t, Long2{0, -1}, Long2{-3, 4}.Ge(Long2{0, 4}))
}

func TestMasks(t *testing.T) {
	require.True(t, TrueMask4.All())
	require.False(t, FalseMask4.Any())
	require.True(t, TrueMask2.All())
	require.False(t, FalseMask2.Any())

	m := MaskForLane4(2)
	require.Equal(t, Int4{0, 0, -1, 0}, m)
	require.True(t, m.Any())
	require.False(t, m.All())
	require.Equal(t, Long2{0, -1}, MaskForLane2(1))
	require.Panics(t, func() { MaskForLane4(4) })

	require.True(t, MaskToBool[int32](-1))
	require.False(t, MaskToBool[int64](0))
	require.False(t, MaskToBool[int32](1))
	require.Equal(t, int64(-1), BoolToMask[int64](true))
	require.Equal(t, int32(0), BoolToMask[int32](false))

	f := func(b bool) bool { return MaskToBool(BoolToMask[int32](b)) == b }
	require.NoError(t, quick.Check(f, nil))
}

func TestElementsEqual(t *testing.T) {
	require.True(t, ElementsEqual(float32(1), 1))
	require.False(t, ElementsEqual(float32(1), 2))
	require.True(t, Float4{1, 2, 3, 4}.ElementsEqual(Float4{1, 2, 3, 4}))
	require.False(t, Float4{1, 2, 3, 4}.ElementsEqual(Float4{1, 2, 3, 5}))
	nan := float32(math.NaN())
	require.False(t, SplatFloat4(nan).ElementsEqual(SplatFloat4(nan)))
	require.True(t, Ulong2{1, 2}.ElementsEqual(Ulong2{1, 2}))
}

func TestSelect(t *testing.T) {
	require.Equal(t, float32(1), Select(true, float32(1), 0))
	require.Equal(t, float32(0), Select(false, float32(1), 0))

	m := Int4{-1, 0, -1, 0}
	require.Equal(t, Float4{1, 20, 3, 40}, SelectFloat4(m, Float4{1, 2, 3, 4}, Float4{10, 20, 30, 40}))
	require.Equal(t, Int4{1, 20, 3, 40}, SelectInt4(m, Int4{1, 2, 3, 4}, Int4{10, 20, 30, 40}))
	require.Equal(t, Uint4{1, 20, 3, 40}, SelectUint4(m, Uint4{1, 2, 3, 4}, Uint4{10, 20, 30, 40}))
	require.Equal(t, Double2{7, 2}, SelectDouble2(Long2{-1, 0}, Double2{7, 8}, Double2{1, 2}))
	require.Equal(t, Long2{1, 8}, SelectLong2(Long2{0, -1}, Long2{7, 8}, Long2{1, 2}))
	require.Equal(t, Ulong2{7, 2}, SelectUlong2(Long2{-1, 0}, Ulong2{7, 8}, Ulong2{1, 2}))

	// partial masks mix bits
	require.Equal(t, Int4{0x0f, 0, 0, 0}, SelectInt4(Int4{0x0f}, SplatInt4(0xff), Int4{}))

	f := func(m, a, b Int4) bool {
		r := SelectInt4(m, a, b)
		return r == a.And(m).Or(b.And(m.Not()))
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestConversions(t *testing.T) {
	require.Equal(t, Int4{1, -2, 3, 0}, Float4{1.9, -2.9, 3.5, 0.1}.ToInt4())
	require.Equal(t, Float4{1, -2, 3, 0}, Int4{1, -2, 3, 0}.ToFloat4())
	require.Equal(t, Uint4{math.MaxUint32, 1, 0, 2}, Int4{-1, 1, 0, 2}.ToUint4())
	require.Equal(t, Int4{-1, 1, 0, 2}, Uint4{math.MaxUint32, 1, 0, 2}.ToInt4())
	require.Equal(t, Uint4{1, 2, 3, 4}, Float4{1.5, 2.5, 3.5, 4.5}.ToUint4())
	require.Equal(t, Float4{1, 2, 3, 4}, Uint4{1, 2, 3, 4}.ToFloat4())
	require.Equal(t, Long2{-7, 7}, Double2{-7.7, 7.7}.ToLong2())
	require.Equal(t, Double2{-7, 7}, Long2{-7, 7}.ToDouble2())
	require.Equal(t, Ulong2{3, 4}, Double2{3.2, 4.9}.ToUlong2())
	require.Equal(t, Double2{3, 4}, Ulong2{3, 4}.ToDouble2())
	require.Equal(t, Ulong2{math.MaxUint64, 5}, Long2{-1, 5}.ToUlong2())
	require.Equal(t, Long2{-1, 5}, Ulong2{math.MaxUint64, 5}.ToLong2())

	one := SplatFloat4(1)
	require.Equal(t, SplatInt4(0x3f800000), one.AsInt4())
	require.Equal(t, one, one.AsInt4().AsFloat4())
	require.Equal(t, one, one.AsUint4().AsFloat4())
	two := SplatDouble2(2)
	require.Equal(t, SplatLong2(0x4000000000000000), two.AsLong2())
	require.Equal(t, two, two.AsLong2().AsDouble2())
	require.Equal(t, two, two.AsUlong2().AsDouble2())

	f := func(v Long2) bool { return v.AsDouble2().AsLong2() == v }
	require.NoError(t, quick.Check(f, nil))
}

func BenchmarkFloat4Mul(b *testing.B) {
	b.ReportAllocs()
	x := Float4{1, 2, 3, 4}
	y := SplatFloat4(1.0001)
	for i := 0; i < b.N; i++ {
		x = x.Mul(y)
	}
	_ = x
}
