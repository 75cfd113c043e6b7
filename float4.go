package vsl

// Add returns the lane-wise sum v+b.
func (v Float4) Add(b Float4) Float4 {
	var r Float4
	zipLanes(r[:], v[:], b[:], add[float32])
	return r
}

func (v Float4) Sub(b Float4) Float4 {
	var r Float4
	zipLanes(r[:], v[:], b[:], sub[float32])
	return r
}

func (v Float4) Mul(b Float4) Float4 {
	var r Float4
	zipLanes(r[:], v[:], b[:], mul[float32])
	return r
}

func (v Float4) Div(b Float4) Float4 {
	var r Float4
	zipLanes(r[:], v[:], b[:], div[float32])
	return r
}

func (v Float4) Neg() Float4 {
	var r Float4
	mapLanes(r[:], v[:], neg[float32])
	return r
}

// Scale multiplies every lane by s.
func (v Float4) Scale(s float32) Float4 { return v.Mul(SplatFloat4(s)) }

// Sum adds the lanes together.
func (v Float4) Sum() float32 {
	var s float32
	for _, x := range v {
		s += x
	}
	return s
}

// Eq returns a mask with -1 in every lane where v equals b. As with the
// other comparisons a NaN lane compares false, except under Ne.
func (v Float4) Eq(b Float4) Int4 {
	var m Int4
	zipLanes(m[:], v[:], b[:], eq[float32, int32])
	return m
}

func (v Float4) Ne(b Float4) Int4 {
	var m Int4
	zipLanes(m[:], v[:], b[:], ne[float32, int32])
	return m
}

func (v Float4) Lt(b Float4) Int4 {
	var m Int4
	zipLanes(m[:], v[:], b[:], lt[float32, int32])
	return m
}

func (v Float4) Le(b Float4) Int4 {
	var m Int4
	zipLanes(m[:], v[:], b[:], le[float32, int32])
	return m
}

func (v Float4) Gt(b Float4) Int4 {
	var m Int4
	zipLanes(m[:], v[:], b[:], gt[float32, int32])
	return m
}

func (v Float4) Ge(b Float4) Int4 {
	var m Int4
	zipLanes(m[:], v[:], b[:], ge[float32, int32])
	return m
}

// ElementsEqual reports whether every lane of v equals the matching lane of b.
func (v Float4) ElementsEqual(b Float4) bool { return lanesEqual(v[:], b[:]) }
