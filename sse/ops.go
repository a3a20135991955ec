// Copyright 2026 go-sse Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sse

import "math"

// This file is the per-instruction catalog that consumes M128 values. The
// functions follow the semantics of the corresponding SSE instructions,
// including the operand-ordering quirks of MINPS/MAXPS and the all-ones
// lane masks produced by the comparisons. Bodies are per-lane Go; there is
// exactly one implementation per operation, no dispatch.

const allBits = 0xFFFF_FFFF

// Set builds a register from four lane values, lane 0 first.
func Set(a, b, c, d float32) M128 {
	return M128{lanes: [4]float32{a, b, c, d}}
}

// Splat broadcasts one value to all four lanes.
func Splat(v float32) M128 {
	return M128{lanes: [4]float32{v, v, v, v}}
}

// Load loads the first four values of src into a register. Panics if src
// holds fewer than four values.
func Load(src []float32) M128 {
	var m M128
	copy(m.lanes[:], src[:4])
	return m
}

// Store writes the four lanes to the first four elements of dst. Panics if
// dst holds fewer than four elements.
func (m M128) Store(dst []float32) {
	copy(dst[:4], m.lanes[:])
}

// Add adds the lanes of a and b. ADDPS.
func Add(a, b M128) M128 {
	for i := range a.lanes {
		a.lanes[i] += b.lanes[i]
	}
	return a
}

// Sub subtracts the lanes of b from the lanes of a. SUBPS.
func Sub(a, b M128) M128 {
	for i := range a.lanes {
		a.lanes[i] -= b.lanes[i]
	}
	return a
}

// Mul multiplies the lanes of a and b. MULPS.
func Mul(a, b M128) M128 {
	for i := range a.lanes {
		a.lanes[i] *= b.lanes[i]
	}
	return a
}

// Div divides the lanes of a by the lanes of b. DIVPS.
func Div(a, b M128) M128 {
	for i := range a.lanes {
		a.lanes[i] /= b.lanes[i]
	}
	return a
}

// Min picks the lane-wise minimum. MINPS semantics: each lane is
// a < b ? a : b, so the second operand wins on ties, signed zeros and NaN.
func Min(a, b M128) M128 {
	for i := range a.lanes {
		if !(a.lanes[i] < b.lanes[i]) {
			a.lanes[i] = b.lanes[i]
		}
	}
	return a
}

// Max picks the lane-wise maximum. MAXPS semantics: each lane is
// a > b ? a : b, so the second operand wins on ties, signed zeros and NaN.
func Max(a, b M128) M128 {
	for i := range a.lanes {
		if !(a.lanes[i] > b.lanes[i]) {
			a.lanes[i] = b.lanes[i]
		}
	}
	return a
}

// Sqrt takes the lane-wise square root. SQRTPS.
func Sqrt(a M128) M128 {
	for i := range a.lanes {
		a.lanes[i] = float32(math.Sqrt(float64(a.lanes[i])))
	}
	return a
}

// Rcp computes the lane-wise reciprocal. The hardware RCPPS instruction
// only approximates to about 12 bits; this computes the exact division.
func Rcp(a M128) M128 {
	for i := range a.lanes {
		a.lanes[i] = 1 / a.lanes[i]
	}
	return a
}

// Rsqrt computes the lane-wise reciprocal square root. The hardware
// RSQRTPS instruction only approximates to about 12 bits; this computes
// the exact value.
func Rsqrt(a M128) M128 {
	for i := range a.lanes {
		a.lanes[i] = float32(1 / math.Sqrt(float64(a.lanes[i])))
	}
	return a
}

// And combines the lane bit patterns with bitwise AND. ANDPS.
func And(a, b M128) M128 {
	for i := range a.lanes {
		a.lanes[i] = math.Float32frombits(
			math.Float32bits(a.lanes[i]) & math.Float32bits(b.lanes[i]))
	}
	return a
}

// AndNot combines the lane bit patterns as (NOT a) AND b. ANDNPS.
func AndNot(a, b M128) M128 {
	for i := range a.lanes {
		a.lanes[i] = math.Float32frombits(
			^math.Float32bits(a.lanes[i]) & math.Float32bits(b.lanes[i]))
	}
	return a
}

// Or combines the lane bit patterns with bitwise OR. ORPS.
func Or(a, b M128) M128 {
	for i := range a.lanes {
		a.lanes[i] = math.Float32frombits(
			math.Float32bits(a.lanes[i]) | math.Float32bits(b.lanes[i]))
	}
	return a
}

// Xor combines the lane bit patterns with bitwise XOR. XORPS.
func Xor(a, b M128) M128 {
	for i := range a.lanes {
		a.lanes[i] = math.Float32frombits(
			math.Float32bits(a.lanes[i]) ^ math.Float32bits(b.lanes[i]))
	}
	return a
}

// CmpEq compares lanes for equality. CMPEQPS: each result lane is all-ones
// where the lanes compare equal, all-zeros otherwise. NaN never compares
// equal, not even to itself.
func CmpEq(a, b M128) M128 {
	return cmp(a, b, func(x, y float32) bool { return x == y })
}

// CmpLt compares lanes for a < b, producing all-ones or all-zeros lane
// masks. CMPLTPS.
func CmpLt(a, b M128) M128 {
	return cmp(a, b, func(x, y float32) bool { return x < y })
}

// CmpLe compares lanes for a <= b, producing all-ones or all-zeros lane
// masks. CMPLEPS.
func CmpLe(a, b M128) M128 {
	return cmp(a, b, func(x, y float32) bool { return x <= y })
}

func cmp(a, b M128, pred func(x, y float32) bool) M128 {
	for i := range a.lanes {
		var bits uint32
		if pred(a.lanes[i], b.lanes[i]) {
			bits = allBits
		}
		a.lanes[i] = math.Float32frombits(bits)
	}
	return a
}

// MoveMask gathers the sign bit of each lane into the low four bits of an
// int, lane 0 in bit 0. MOVMSKPS. Combined with the comparisons this turns
// lane masks into branchable values.
func MoveMask(a M128) int {
	mask := 0
	for i, l := range a.lanes {
		if math.Float32bits(l)>>31 != 0 {
			mask |= 1 << i
		}
	}
	return mask
}
