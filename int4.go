package vsl

// Add returns the lane-wise sum v+b. Integer lanes wrap on overflow.
func (v Int4) Add(b Int4) Int4 {
	var r Int4
	zipLanes(r[:], v[:], b[:], add[int32])
	return r
}

func (v Int4) Sub(b Int4) Int4 {
	var r Int4
	zipLanes(r[:], v[:], b[:], sub[int32])
	return r
}

func (v Int4) Mul(b Int4) Int4 {
	var r Int4
	zipLanes(r[:], v[:], b[:], mul[int32])
	return r
}

func (v Int4) Neg() Int4 {
	var r Int4
	mapLanes(r[:], v[:], neg[int32])
	return r
}

func (v Int4) And(b Int4) Int4 {
	var r Int4
	zipLanes(r[:], v[:], b[:], and[int32])
	return r
}

func (v Int4) Or(b Int4) Int4 {
	var r Int4
	zipLanes(r[:], v[:], b[:], or[int32])
	return r
}

func (v Int4) Xor(b Int4) Int4 {
	var r Int4
	zipLanes(r[:], v[:], b[:], xor[int32])
	return r
}

func (v Int4) Not() Int4 {
	var r Int4
	mapLanes(r[:], v[:], not[int32])
	return r
}

// Shl shifts every lane left by n bits.
func (v Int4) Shl(n uint) Int4 {
	var r Int4
	mapLanes(r[:], v[:], func(x int32) int32 { return x << n })
	return r
}

// Shr shifts every lane right by n bits with sign extension.
func (v Int4) Shr(n uint) Int4 {
	var r Int4
	mapLanes(r[:], v[:], func(x int32) int32 { return x >> n })
	return r
}

func (v Int4) Eq(b Int4) Int4 {
	var m Int4
	zipLanes(m[:], v[:], b[:], eq[int32, int32])
	return m
}

func (v Int4) Ne(b Int4) Int4 {
	var m Int4
	zipLanes(m[:], v[:], b[:], ne[int32, int32])
	return m
}

func (v Int4) Lt(b Int4) Int4 {
	var m Int4
	zipLanes(m[:], v[:], b[:], lt[int32, int32])
	return m
}

func (v Int4) Le(b Int4) Int4 {
	var m Int4
	zipLanes(m[:], v[:], b[:], le[int32, int32])
	return m
}

func (v Int4) Gt(b Int4) Int4 {
	var m Int4
	zipLanes(m[:], v[:], b[:], gt[int32, int32])
	return m
}

func (v Int4) Ge(b Int4) Int4 {
	var m Int4
	zipLanes(m[:], v[:], b[:], ge[int32, int32])
	return m
}

// All reports whether the high bit of every lane is set.
func (v Int4) All() bool { return allSet(v[:]) }

// Any reports whether the high bit of any lane is set.
func (v Int4) Any() bool { return anySet(v[:]) }

// ElementsEqual reports whether every lane of v equals the matching lane of b.
func (v Int4) ElementsEqual(b Int4) bool { return lanesEqual(v[:], b[:]) }
