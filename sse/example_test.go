package sse_test

import (
	"fmt"

	"github.com/ajroetker/go-sse/sse"
)

func ExampleM128() {
	m := sse.Zero()
	fmt.Printf("%v\n", m)
	fmt.Printf("%#v\n", m)
	fmt.Printf("%e\n", m)
	// Output:
	// (0, 0, 0, 0)
	// M128(0, 0, 0, 0)
	// (0e+00, 0e+00, 0e+00, 0e+00)
}

func ExampleSet() {
	m := sse.Set(1, -1, 0.5, 2)
	fmt.Printf("%v\n", m)
	fmt.Printf("%x\n", m)
	// The integer verbs show each lane's IEEE 754 bit pattern, not its
	// numeric value.
	// Output:
	// (1, -1, 0.5, 2)
	// (3f800000, bf800000, 3f000000, 40000000)
}

func ExampleAdd() {
	sum := sse.Add(sse.Set(1, 2, 3, 4), sse.Splat(10))
	fmt.Println(sum)
	// Output: (11, 12, 13, 14)
}

func ExampleM128_AsArray() {
	m := sse.Splat(1)
	m.AsArray()[3] = 8
	fmt.Println(m)
	// Output: (1, 1, 1, 8)
}

func ExampleMoveMask() {
	mask := sse.MoveMask(sse.CmpLt(sse.Set(1, 9, 3, 9), sse.Splat(5)))
	fmt.Printf("%04b\n", mask)
	// Output: 0101
}
