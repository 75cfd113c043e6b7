package vsl

func (v Uint4) Add(b Uint4) Uint4 {
	var r Uint4
	zipLanes(r[:], v[:], b[:], add[uint32])
	return r
}

func (v Uint4) Sub(b Uint4) Uint4 {
	var r Uint4
	zipLanes(r[:], v[:], b[:], sub[uint32])
	return r
}

func (v Uint4) Mul(b Uint4) Uint4 {
	var r Uint4
	zipLanes(r[:], v[:], b[:], mul[uint32])
	return r
}

func (v Uint4) And(b Uint4) Uint4 {
	var r Uint4
	zipLanes(r[:], v[:], b[:], and[uint32])
	return r
}

func (v Uint4) Or(b Uint4) Uint4 {
	var r Uint4
	zipLanes(r[:], v[:], b[:], or[uint32])
	return r
}

func (v Uint4) Xor(b Uint4) Uint4 {
	var r Uint4
	zipLanes(r[:], v[:], b[:], xor[uint32])
	return r
}

func (v Uint4) Not() Uint4 {
	var r Uint4
	mapLanes(r[:], v[:], not[uint32])
	return r
}

// Shl shifts every lane left by n bits.
func (v Uint4) Shl(n uint) Uint4 {
	var r Uint4
	mapLanes(r[:], v[:], func(x uint32) uint32 { return x << n })
	return r
}

// Shr shifts every lane right by n bits, filling with zeros.
func (v Uint4) Shr(n uint) Uint4 {
	var r Uint4
	mapLanes(r[:], v[:], func(x uint32) uint32 { return x >> n })
	return r
}

func (v Uint4) Eq(b Uint4) Int4 {
	var m Int4
	zipLanes(m[:], v[:], b[:], eq[uint32, int32])
	return m
}

func (v Uint4) Ne(b Uint4) Int4 {
	var m Int4
	zipLanes(m[:], v[:], b[:], ne[uint32, int32])
	return m
}

func (v Uint4) Lt(b Uint4) Int4 {
	var m Int4
	zipLanes(m[:], v[:], b[:], lt[uint32, int32])
	return m
}

func (v Uint4) Le(b Uint4) Int4 {
	var m Int4
	zipLanes(m[:], v[:], b[:], le[uint32, int32])
	return m
}

func (v Uint4) Gt(b Uint4) Int4 {
	var m Int4
	zipLanes(m[:], v[:], b[:], gt[uint32, int32])
	return m
}

func (v Uint4) Ge(b Uint4) Int4 {
	var m Int4
	zipLanes(m[:], v[:], b[:], ge[uint32, int32])
	return m
}

// ElementsEqual reports whether every lane of v equals the matching lane of b.
func (v Uint4) ElementsEqual(b Uint4) bool { return lanesEqual(v[:], b[:]) }
