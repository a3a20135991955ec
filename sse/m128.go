// Package sse provides a safe wrapper type for the 128-bit SSE lane
// register, plus the per-instruction operations that consume it.
//
// The M128 type is the operand and result type for everything in this
// package. Operations never fail and never allocate: every function is a
// total function over its inputs, and any 16-byte bit pattern is a valid
// register value.
//
// The package assumes the host CPU actually provides the SSE feature set.
// On amd64 that is guaranteed by the architecture baseline; elsewhere the
// pure Go bodies still compute the same results, but there is no hardware
// register backing the type. Running feature-dependent machine code on a
// CPU without the feature is undefined behavior at the hardware level and
// cannot be detected from inside this package; Supported reports what the
// host offers so callers can gate at startup.
package sse

import "unsafe"

// M128 is the data for a 128-bit SSE lane: four float32 lanes, lane 0 in
// the low four bytes.
//
// This is very similar to having a [4]float32. The differences are that the
// hardware wants the value 16-byte aligned instead of just 4, and that the
// value is meant to stay in a register while operations chain on it. You
// can use AsArray to view the value as if it were an array, and from there
// you could access an individual lane via indexing if you wanted. Doing so
// in the middle of a series of operations usually kills performance: the
// CPU has to move the value out of register and into memory, then index the
// memory. Index individual lanes as little as possible; the explicit view
// method keeps that cost visible at the call site.
//
// Any bit pattern is a valid M128, there is no cleanup to run, and copying
// by assignment produces an independent value with the identical bit
// pattern. The zero value is the register with all four lanes +0.0.
type M128 struct {
	lanes [4]float32
}

// The byte views below reinterpret the struct directly, so it must stay
// exactly the size of its four lanes, with no padding.
var _ = [1]struct{}{}[unsafe.Sizeof(M128{})-16]

// FromArray reinterprets an array as an M128. The lane order and the bit
// pattern of every lane are preserved exactly.
func FromArray(arr [4]float32) M128 {
	return M128{lanes: arr}
}

// ToArray reinterprets the M128 as an array.
//
// Array assignment in Go copies raw bytes, so a round trip through
// FromArray and ToArray is bit-exact: NaN payloads, -0.0 and subnormals all
// survive unchanged.
func (m M128) ToArray() [4]float32 {
	return m.lanes
}

// AsArray views the value as if it were a *[4]float32, aliasing the same
// 16 bytes; writes through the view land in the register value. Lane i is
// element i. See the type docs for why indexing lanes this way is a
// performance trap.
//
// Go does not track exclusive borrows: holding the view while another
// goroutine reads or writes the same value is a data race like any other.
func (m *M128) AsArray() *[4]float32 {
	return &m.lanes
}

// AsBytes views the raw 16 bytes of the register, lane i at bytes
// [4i, 4i+4) in the host byte order. Every bit pattern is a valid M128, so
// writing arbitrary bytes through the view is safe; zero-filling it yields
// the zero register.
func (m *M128) AsBytes() *[16]byte {
	return (*[16]byte)(unsafe.Pointer(m))
}

// Zero returns the register with all four lanes +0.0. Same as the zero
// value of the type.
func Zero() M128 {
	return M128{}
}
