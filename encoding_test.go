package vsl

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodingLayout(t *testing.T) {
	b, err := Float4{1, 2, 3, 4}.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, EncodedSize)
	require.Equal(t, math.Float32bits(1), binary.LittleEndian.Uint32(b[0:]))
	require.Equal(t, math.Float32bits(4), binary.LittleEndian.Uint32(b[12:]))

	b, err = Long2{-1, 2}.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 2, 0, 0, 0, 0, 0, 0, 0}, b)

	// AppendBinary keeps the prefix
	b, err = Uint4{1, 2, 3, 4}.AppendBinary([]byte("hdr"))
	require.NoError(t, err)
	require.Equal(t, "hdr", string(b[:3]))
	require.Len(t, b, 3+EncodedSize)
}

func TestEncodingRoundTrip(t *testing.T) {
	nan := float32(math.NaN())
	f4 := Float4{1, -0.5, nan, float32(math.Inf(1))}
	b, err := f4.MarshalBinary()
	require.NoError(t, err)
	var g4 Float4
	require.NoError(t, g4.UnmarshalBinary(b))
	require.Equal(t, f4.AsUint4(), g4.AsUint4())

	d2 := Double2{math.Pi, -math.MaxFloat64}
	b, _ = d2.MarshalBinary()
	var e2 Double2
	require.NoError(t, e2.UnmarshalBinary(b))
	require.Equal(t, d2, e2)

	i4 := Int4{math.MinInt32, -1, 0, math.MaxInt32}
	b, _ = i4.MarshalBinary()
	var j4 Int4
	require.NoError(t, j4.UnmarshalBinary(b))
	require.Equal(t, i4, j4)

	l2 := Long2{math.MinInt64, math.MaxInt64}
	b, _ = l2.MarshalBinary()
	var m2 Long2
	require.NoError(t, m2.UnmarshalBinary(b))
	require.Equal(t, l2, m2)

	u4 := Uint4{0, 1, math.MaxUint32, 42}
	b, _ = u4.MarshalBinary()
	var w4 Uint4
	require.NoError(t, w4.UnmarshalBinary(b))
	require.Equal(t, u4, w4)

	ul := Ulong2{math.MaxUint64, 7}
	b, _ = ul.MarshalBinary()
	var vl Ulong2
	require.NoError(t, vl.UnmarshalBinary(b))
	require.Equal(t, ul, vl)
}

func TestEncodingErrors(t *testing.T) {
	var v Float4
	require.ErrorIs(t, v.UnmarshalBinary(make([]byte, 15)), ErrShortBuffer)
	require.Error(t, v.UnmarshalBinary(make([]byte, 17)))
	var u Ulong2
	require.ErrorIs(t, u.UnmarshalBinary(nil), ErrShortBuffer)
}

func FuzzDouble2Decode(f *testing.F) {
	seed, _ := Double2{1, 2}.MarshalBinary()
	f.Add(seed)
	f.Add([]byte{})
	f.Fuzz(func(t *testing.T, data []byte) {
		var v Double2
		if err := v.UnmarshalBinary(data); err != nil {
			return
		}
		out, err := v.MarshalBinary()
		require.NoError(t, err)
		require.Equal(t, data, out)
	})
}
