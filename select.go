package vsl

import (
	"math"

	"github.com/rawbytedev/vsl/ieee"
)

// Select is the scalar form of the vector selects: t when cond holds, f
// otherwise.
func Select[X ieee.Scalar](cond bool, t, f X) X {
	if cond {
		return t
	}
	return f
}

func bitselect[U ieee.Unsigned](m, t, f U) U { return t&m | f&^m }

// SelectFloat4 takes each bit from t where the matching bit of m is set and
// from f where it is clear. With canonical masks this picks whole lanes.
func SelectFloat4(m Int4, t, f Float4) Float4 {
	var r Float4
	for i := range r {
		b := bitselect(uint32(m[i]), math.Float32bits(t[i]), math.Float32bits(f[i]))
		r[i] = math.Float32frombits(b)
	}
	return r
}

// SelectDouble2 is SelectFloat4 for two 64-bit lanes.
func SelectDouble2(m Long2, t, f Double2) Double2 {
	var r Double2
	for i := range r {
		b := bitselect(uint64(m[i]), math.Float64bits(t[i]), math.Float64bits(f[i]))
		r[i] = math.Float64frombits(b)
	}
	return r
}

func SelectInt4(m, t, f Int4) Int4 {
	var r Int4
	for i := range r {
		r[i] = int32(bitselect(uint32(m[i]), uint32(t[i]), uint32(f[i])))
	}
	return r
}

func SelectLong2(m, t, f Long2) Long2 {
	var r Long2
	for i := range r {
		r[i] = int64(bitselect(uint64(m[i]), uint64(t[i]), uint64(f[i])))
	}
	return r
}

func SelectUint4(m Int4, t, f Uint4) Uint4 {
	var r Uint4
	for i := range r {
		r[i] = bitselect(uint32(m[i]), t[i], f[i])
	}
	return r
}

func SelectUlong2(m Long2, t, f Ulong2) Ulong2 {
	var r Ulong2
	for i := range r {
		r[i] = bitselect(uint64(m[i]), t[i], f[i])
	}
	return r
}
