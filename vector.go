package vsl

import "github.com/rawbytedev/vsl/ieee"

// Lane vectors.
type (
	Float4  [4]float32
	Double2 [2]float64
	Int4    [4]int32
	Long2   [2]int64
	Uint4   [4]uint32
	Ulong2  [2]uint64
)

// Lane counts.
const (
	Lanes4 = 4
	Lanes2 = 2
)

// Canonical masks. A true lane has every bit set.
var (
	TrueMask4  = Int4{-1, -1, -1, -1}
	FalseMask4 = Int4{}
	TrueMask2  = Long2{-1, -1}
	FalseMask2 = Long2{}
)

func SplatFloat4(x float32) Float4 { return Float4{x, x, x, x} }
func SplatDouble2(x float64) Double2 { return Double2{x, x} }
func SplatInt4(x int32) Int4 { return Int4{x, x, x, x} }
func SplatLong2(x int64) Long2 { return Long2{x, x} }
func SplatUint4(x uint32) Uint4 { return Uint4{x, x, x, x} }
func SplatUlong2(x uint64) Ulong2 { return Ulong2{x, x} }

// MaskForLane4 returns a mask with only lane i set. It panics if i is out
// of range.
func MaskForLane4(i int) Int4 {
	var m Int4
	m[i] = -1
	return m
}

// MaskForLane2 returns a mask with only lane i set. It panics if i is out
// of range.
func MaskForLane2(i int) Long2 {
	var m Long2
	m[i] = -1
	return m
}

// MaskToBool reports whether a scalar mask is the canonical true value.
func MaskToBool[M ieee.Signed](m M) bool { return m == -1 }

// BoolToMask returns -1 for true and 0 for false.
func BoolToMask[M ieee.Signed](b bool) M {
	if b {
		return -1
	}
	return 0
}

// ElementsEqual reports whether a and b are equal. For vectors every lane
// must compare equal, so a NaN lane makes the result false.
func ElementsEqual[X ieee.Scalar](a, b X) bool { return a == b }

// lane kernels shared by the vector methods

func mapLanes[S, R any](dst []R, a []S, f func(S) R) {
	for i := range dst {
		dst[i] = f(a[i])
	}
}

func zipLanes[S, R any](dst []R, a, b []S, f func(S, S) R) {
	for i := range dst {
		dst[i] = f(a[i], b[i])
	}
}

func zip3Lanes[S any](dst []S, a, b, c []S, f func(S, S, S) S) {
	for i := range dst {
		dst[i] = f(a[i], b[i], c[i])
	}
}

func lanesEqual[S comparable](a, b []S) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func allSet[M ieee.Signed](m []M) bool {
	for _, v := range m {
		if v >= 0 {
			return false
		}
	}
	return true
}

func anySet[M ieee.Signed](m []M) bool {
	for _, v := range m {
		if v < 0 {
			return true
		}
	}
	return false
}

func add[X ieee.Scalar](a, b X) X { return a + b }
func sub[X ieee.Scalar](a, b X) X { return a - b }
func mul[X ieee.Scalar](a, b X) X { return a * b }
func div[X ieee.Scalar](a, b X) X { return a / b }
func neg[X ieee.Number](a X) X { return -a }

func and[X ieee.Integer](a, b X) X { return a & b }
func or[X ieee.Integer](a, b X) X { return a | b }
func xor[X ieee.Integer](a, b X) X { return a ^ b }
func not[X ieee.Integer](a X) X { return ^a }

// comparison kernels returning a mask lane of type M

func eq[X ieee.Scalar, M ieee.Signed](a, b X) M { return BoolToMask[M](a == b) }
func ne[X ieee.Scalar, M ieee.Signed](a, b X) M { return BoolToMask[M](a != b) }
func lt[X ieee.Scalar, M ieee.Signed](a, b X) M { return BoolToMask[M](a < b) }
func le[X ieee.Scalar, M ieee.Signed](a, b X) M { return BoolToMask[M](a <= b) }
func gt[X ieee.Scalar, M ieee.Signed](a, b X) M { return BoolToMask[M](a > b) }
func ge[X ieee.Scalar, M ieee.Signed](a, b X) M { return BoolToMask[M](a >= b) }
