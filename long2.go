package vsl

// Add returns the lane-wise sum v+b. Integer lanes wrap on overflow.
func (v Long2) Add(b Long2) Long2 {
	var r Long2
	zipLanes(r[:], v[:], b[:], add[int64])
	return r
}

func (v Long2) Sub(b Long2) Long2 {
	var r Long2
	zipLanes(r[:], v[:], b[:], sub[int64])
	return r
}

func (v Long2) Mul(b Long2) Long2 {
	var r Long2
	zipLanes(r[:], v[:], b[:], mul[int64])
	return r
}

func (v Long2) Neg() Long2 {
	var r Long2
	mapLanes(r[:], v[:], neg[int64])
	return r
}

func (v Long2) And(b Long2) Long2 {
	var r Long2
	zipLanes(r[:], v[:], b[:], and[int64])
	return r
}

func (v Long2) Or(b Long2) Long2 {
	var r Long2
	zipLanes(r[:], v[:], b[:], or[int64])
	return r
}

func (v Long2) Xor(b Long2) Long2 {
	var r Long2
	zipLanes(r[:], v[:], b[:], xor[int64])
	return r
}

func (v Long2) Not() Long2 {
	var r Long2
	mapLanes(r[:], v[:], not[int64])
	return r
}

// Shl shifts every lane left by n bits.
func (v Long2) Shl(n uint) Long2 {
	var r Long2
	mapLanes(r[:], v[:], func(x int64) int64 { return x << n })
	return r
}

// Shr shifts every lane right by n bits with sign extension.
func (v Long2) Shr(n uint) Long2 {
	var r Long2
	mapLanes(r[:], v[:], func(x int64) int64 { return x >> n })
	return r
}

func (v Long2) Eq(b Long2) Long2 {
	var m Long2
	zipLanes(m[:], v[:], b[:], eq[int64, int64])
	return m
}

func (v Long2) Ne(b Long2) Long2 {
	var m Long2
	zipLanes(m[:], v[:], b[:], ne[int64, int64])
	return m
}

func (v Long2) Lt(b Long2) Long2 {
	var m Long2
	zipLanes(m[:], v[:], b[:], lt[int64, int64])
	return m
}

func (v Long2) Le(b Long2) Long2 {
	var m Long2
	zipLanes(m[:], v[:], b[:], le[int64, int64])
	return m
}

func (v Long2) Gt(b Long2) Long2 {
	var m Long2
	zipLanes(m[:], v[:], b[:], gt[int64, int64])
	return m
}

func (v Long2) Ge(b Long2) Long2 {
	var m Long2
	zipLanes(m[:], v[:], b[:], ge[int64, int64])
	return m
}

// All reports whether the high bit of every lane is set.
func (v Long2) All() bool { return allSet(v[:]) }

// Any reports whether the high bit of any lane is set.
func (v Long2) Any() bool { return anySet(v[:]) }

// ElementsEqual reports whether every lane of v equals the matching lane of b.
func (v Long2) ElementsEqual(b Long2) bool { return lanesEqual(v[:], b[:]) }
