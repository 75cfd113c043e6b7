// Package vsl is a small lane-vector math library.
//
// A vector is a fixed-size array of scalars (Float4, Double2, Int4, Long2,
// Uint4, Ulong2) operated on lane by lane. Comparisons produce masks: a
// signed integer vector of the same lane width whose lanes are -1 (all bits
// set) for true and 0 for false. Masks drive Select, which picks bits from
// one of two vectors the way a SIMD bitselect does.
//
// Math functions come in two flavours selected by Mode: Exact routes to the
// standard library, Approx routes to the polynomial kernels in package cxm.
//
//	x := vsl.SplatFloat4(3.5)
//	y := vsl.Exp2.Float4(x, vsl.Approx)
//	ok := vsl.AboutEqualFloat4(y, vsl.Exp2.Float4(x, vsl.Exact), vsl.SplatFloat4(1e-5)).All()
//
// Vectors are plain values and safe to share. Random generators carry state
// and belong to one goroutine.
package vsl
