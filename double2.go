package vsl

// Add returns the lane-wise sum v+b.
func (v Double2) Add(b Double2) Double2 {
	var r Double2
	zipLanes(r[:], v[:], b[:], add[float64])
	return r
}

func (v Double2) Sub(b Double2) Double2 {
	var r Double2
	zipLanes(r[:], v[:], b[:], sub[float64])
	return r
}

func (v Double2) Mul(b Double2) Double2 {
	var r Double2
	zipLanes(r[:], v[:], b[:], mul[float64])
	return r
}

func (v Double2) Div(b Double2) Double2 {
	var r Double2
	zipLanes(r[:], v[:], b[:], div[float64])
	return r
}

func (v Double2) Neg() Double2 {
	var r Double2
	mapLanes(r[:], v[:], neg[float64])
	return r
}

// Scale multiplies every lane by s.
func (v Double2) Scale(s float64) Double2 { return v.Mul(SplatDouble2(s)) }

// Sum adds the lanes together.
func (v Double2) Sum() float64 {
	var s float64
	for _, x := range v {
		s += x
	}
	return s
}

// Eq returns a mask with -1 in every lane where v equals b. As with the
// other comparisons a NaN lane compares false, except under Ne.
func (v Double2) Eq(b Double2) Long2 {
	var m Long2
	zipLanes(m[:], v[:], b[:], eq[float64, int64])
	return m
}

func (v Double2) Ne(b Double2) Long2 {
	var m Long2
	zipLanes(m[:], v[:], b[:], ne[float64, int64])
	return m
}

func (v Double2) Lt(b Double2) Long2 {
	var m Long2
	zipLanes(m[:], v[:], b[:], lt[float64, int64])
	return m
}

func (v Double2) Le(b Double2) Long2 {
	var m Long2
	zipLanes(m[:], v[:], b[:], le[float64, int64])
	return m
}

func (v Double2) Gt(b Double2) Long2 {
	var m Long2
	zipLanes(m[:], v[:], b[:], gt[float64, int64])
	return m
}

func (v Double2) Ge(b Double2) Long2 {
	var m Long2
	zipLanes(m[:], v[:], b[:], ge[float64, int64])
	return m
}

// ElementsEqual reports whether every lane of v equals the matching lane of b.
func (v Double2) ElementsEqual(b Double2) bool { return lanesEqual(v[:], b[:]) }
