// Package ieee holds the type constraints and IEEE-754 layout traits shared by
// the vsl math packages.
package ieee

import (
	"math"
	"unsafe"
)

// Float is the set of floating-point scalar types a lane can hold.
type Float interface {
	~float32 | ~float64
}

// Signed is the set of signed integer scalar types a lane can hold.
type Signed interface {
	~int32 | ~int64
}

// Unsigned is the set of unsigned integer scalar types a lane can hold.
type Unsigned interface {
	~uint32 | ~uint64
}

// Integer is any integral lane scalar.
type Integer interface {
	Signed | Unsigned
}

// Number is any scalar that has a sign.
type Number interface {
	Float | Signed
}

// Scalar is any lane scalar.
type Scalar interface {
	Float | Integer
}

// Layout constants for binary32 and binary64.
const (
	Float32ExpBias = 127
	Float32SigBits = 23
	Float32ExpBits = 8

	Float64ExpBias = 1023
	Float64SigBits = 52
	Float64ExpBits = 11
)

// Is32 reports whether X is a 4-byte float.
func Is32[X Float]() bool {
	var x X
	return unsafe.Sizeof(x) == 4
}

// ExpBias returns the exponent bias of X.
func ExpBias[X Float]() int64 {
	if Is32[X]() {
		return Float32ExpBias
	}
	return Float64ExpBias
}

// SigBits returns the number of explicit significand bits of X.
func SigBits[X Float]() uint {
	if Is32[X]() {
		return Float32SigBits
	}
	return Float64SigBits
}

// ExpBits returns the number of exponent bits of X.
func ExpBits[X Float]() uint {
	if Is32[X]() {
		return Float32ExpBits
	}
	return Float64ExpBits
}

// Bits returns the IEEE bit pattern of x, zero-extended to 64 bits.
func Bits[X Float](x X) uint64 {
	if Is32[X]() {
		return uint64(math.Float32bits(float32(x)))
	}
	return math.Float64bits(float64(x))
}

// FromBits is the inverse of Bits. For 4-byte floats only the low 32 bits
// of b are used.
func FromBits[X Float](b uint64) X {
	if Is32[X]() {
		return X(math.Float32frombits(uint32(b)))
	}
	return X(math.Float64frombits(b))
}
