package vsl

import "math"

// Value conversions follow Go conversion rules lane by lane: float to
// integer truncates toward zero, and the result for values outside the
// target range is implementation-defined.

func convertLanes[S, R float32 | float64 | int32 | int64 | uint32 | uint64](dst []R, src []S) {
	for i := range dst {
		dst[i] = R(src[i])
	}
}

func (v Int4) ToUint4() (r Uint4) {
	convertLanes(r[:], v[:])
	return r
}

func (v Uint4) ToInt4() (r Int4) {
	convertLanes(r[:], v[:])
	return r
}

func (v Long2) ToUlong2() (r Ulong2) {
	convertLanes(r[:], v[:])
	return r
}

func (v Ulong2) ToLong2() (r Long2) {
	convertLanes(r[:], v[:])
	return r
}

func (v Float4) ToInt4() (r Int4) {
	convertLanes(r[:], v[:])
	return r
}

func (v Int4) ToFloat4() (r Float4) {
	convertLanes(r[:], v[:])
	return r
}

func (v Float4) ToUint4() (r Uint4) {
	convertLanes(r[:], v[:])
	return r
}

func (v Uint4) ToFloat4() (r Float4) {
	convertLanes(r[:], v[:])
	return r
}

func (v Double2) ToLong2() (r Long2) {
	convertLanes(r[:], v[:])
	return r
}

func (v Long2) ToDouble2() (r Double2) {
	convertLanes(r[:], v[:])
	return r
}

func (v Double2) ToUlong2() (r Ulong2) {
	convertLanes(r[:], v[:])
	return r
}

func (v Ulong2) ToDouble2() (r Double2) {
	convertLanes(r[:], v[:])
	return r
}

// AsInt4 reinterprets the bits of every lane as a signed integer.
func (v Float4) AsInt4() Int4 {
	var r Int4
	for i, x := range v {
		r[i] = int32(math.Float32bits(x))
	}
	return r
}

// AsFloat4 reinterprets the bits of every lane as a float.
func (v Int4) AsFloat4() Float4 {
	var r Float4
	for i, x := range v {
		r[i] = math.Float32frombits(uint32(x))
	}
	return r
}

// AsLong2 reinterprets the bits of every lane as a signed integer.
func (v Double2) AsLong2() Long2 {
	var r Long2
	for i, x := range v {
		r[i] = int64(math.Float64bits(x))
	}
	return r
}

// AsDouble2 reinterprets the bits of every lane as a float.
func (v Long2) AsDouble2() Double2 {
	var r Double2
	for i, x := range v {
		r[i] = math.Float64frombits(uint64(x))
	}
	return r
}

// AsUint4 exposes the raw IEEE bits of every lane.
func (v Float4) AsUint4() Uint4 {
	var r Uint4
	for i, x := range v {
		r[i] = math.Float32bits(x)
	}
	return r
}

// AsUlong2 exposes the raw IEEE bits of every lane.
func (v Double2) AsUlong2() Ulong2 {
	var r Ulong2
	for i, x := range v {
		r[i] = math.Float64bits(x)
	}
	return r
}

// AsFloat4 reinterprets raw IEEE bits as floats.
func (v Uint4) AsFloat4() Float4 {
	var r Float4
	for i, x := range v {
		r[i] = math.Float32frombits(x)
	}
	return r
}

// AsDouble2 reinterprets raw IEEE bits as floats.
func (v Ulong2) AsDouble2() Double2 {
	var r Double2
	for i, x := range v {
		r[i] = math.Float64frombits(x)
	}
	return r
}
