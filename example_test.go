package vsl_test

import (
	"fmt"

	"github.com/rawbytedev/vsl"
)

func ExampleFloat4() {
	a := vsl.Float4{1, 2, 3, 4}
	half := vsl.SplatFloat4(0.5)
	fmt.Println(a.Mul(half))

	m := a.Gt(vsl.SplatFloat4(2))
	fmt.Println(m, m.Any(), m.All())
	fmt.Println(vsl.SelectFloat4(m, a, half))
	// Output:
	// [0.5 1 1.5 2]
	// [0 0 -1 -1] true false
	// [0.5 0.5 3 4]
}

func ExampleUnary() {
	fmt.Println(vsl.Sqrt.Float4(vsl.Float4{1, 4, 9, 16}, vsl.Exact))
	fmt.Println(vsl.Floor.Double2(vsl.Double2{-2.3, 3.621}, vsl.Approx))
	// Output:
	// [1 2 3 4]
	// [-3 3]
}
