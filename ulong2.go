package vsl

func (v Ulong2) Add(b Ulong2) Ulong2 {
	var r Ulong2
	zipLanes(r[:], v[:], b[:], add[uint64])
	return r
}

func (v Ulong2) Sub(b Ulong2) Ulong2 {
	var r Ulong2
	zipLanes(r[:], v[:], b[:], sub[uint64])
	return r
}

func (v Ulong2) Mul(b Ulong2) Ulong2 {
	var r Ulong2
	zipLanes(r[:], v[:], b[:], mul[uint64])
	return r
}

func (v Ulong2) And(b Ulong2) Ulong2 {
	var r Ulong2
	zipLanes(r[:], v[:], b[:], and[uint64])
	return r
}

func (v Ulong2) Or(b Ulong2) Ulong2 {
	var r Ulong2
	zipLanes(r[:], v[:], b[:], or[uint64])
	return r
}

func (v Ulong2) Xor(b Ulong2) Ulong2 {
	var r Ulong2
	zipLanes(r[:], v[:], b[:], xor[uint64])
	return r
}

func (v Ulong2) Not() Ulong2 {
	var r Ulong2
	mapLanes(r[:], v[:], not[uint64])
	return r
}

// Shl shifts every lane left by n bits.
func (v Ulong2) Shl(n uint) Ulong2 {
	var r Ulong2
	mapLanes(r[:], v[:], func(x uint64) uint64 { return x << n })
	return r
}

// Shr shifts every lane right by n bits, filling with zeros.
func (v Ulong2) Shr(n uint) Ulong2 {
	var r Ulong2
	mapLanes(r[:], v[:], func(x uint64) uint64 { return x >> n })
	return r
}

func (v Ulong2) Eq(b Ulong2) Long2 {
	var m Long2
	zipLanes(m[:], v[:], b[:], eq[uint64, int64])
	return m
}

func (v Ulong2) Ne(b Ulong2) Long2 {
	var m Long2
	zipLanes(m[:], v[:], b[:], ne[uint64, int64])
	return m
}

func (v Ulong2) Lt(b Ulong2) Long2 {
	var m Long2
	zipLanes(m[:], v[:], b[:], lt[uint64, int64])
	return m
}

func (v Ulong2) Le(b Ulong2) Long2 {
	var m Long2
	zipLanes(m[:], v[:], b[:], le[uint64, int64])
	return m
}

func (v Ulong2) Gt(b Ulong2) Long2 {
	var m Long2
	zipLanes(m[:], v[:], b[:], gt[uint64, int64])
	return m
}

func (v Ulong2) Ge(b Ulong2) Long2 {
	var m Long2
	zipLanes(m[:], v[:], b[:], ge[uint64, int64])
	return m
}

// ElementsEqual reports whether every lane of v equals the matching lane of b.
func (v Ulong2) ElementsEqual(b Ulong2) bool { return lanesEqual(v[:], b[:]) }
