package cxm

import "github.com/rawbytedev/vsl/ieee"

// Min returns the smaller of a and b, or b when they are unordered.
func Min[X ieee.Number](a, b X) X {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b, or b when they are unordered.
func Max[X ieee.Number](a, b X) X {
	if a > b {
		return a
	}
	return b
}

// Clamp limits x to [lo, hi].
func Clamp[X ieee.Number](x, lo, hi X) X {
	return Min(Max(x, lo), hi)
}

// Sign returns 1, -1 or 0 according to the sign of x. NaN maps to 0.
func Sign[X ieee.Number](x X) X {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
