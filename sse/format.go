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

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Every formatting verb renders the register as a parenthesized,
// comma-space-separated list of its four lanes; only the per-lane transform
// varies. The value verbs (%v, %s, %e, %E) render each lane's numeric
// value. The integer verbs (%b, %o, %x, %X) render each lane's raw IEEE 754
// bit pattern via math.Float32bits, never its numeric value: the lanes
// [1, -1, 0.5, 2] print under %x as (3f800000, bf800000, 3f000000,
// 40000000), not as (1, -1, 0, 2).

// formatLanes renders the four lanes through one per-lane transform,
// keeping the separator contract in a single place.
func (m M128) formatLanes(lane func(float32) string) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, f := range m.lanes {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(lane(f))
	}
	b.WriteByte(')')
	return b.String()
}

// valueLane is Go's default shortest rendering of a float32: "0" for the
// zero lane, "0.5" for a half, "NaN" and "+Inf" for the non-finite values.
func valueLane(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

// bitsLane renders a lane's raw bit pattern in the given base.
func bitsLane(base int) func(float32) string {
	return func(f float32) string {
		return strconv.FormatUint(uint64(math.Float32bits(f)), base)
	}
}

func expLane(fmtByte byte) func(float32) string {
	return func(f float32) string {
		return strconv.FormatFloat(float64(f), fmtByte, -1, 32)
	}
}

// String formats each lane's numeric value:
//
//	fmt.Sprint(sse.Zero()) == "(0, 0, 0, 0)"
func (m M128) String() string {
	return m.formatLanes(valueLane)
}

// GoString is String with the type name in front:
//
//	fmt.Sprintf("%#v", sse.Zero()) == "M128(0, 0, 0, 0)"
func (m M128) GoString() string {
	return "M128" + m.formatLanes(valueLane)
}

// Format implements fmt.Formatter.
//
// %v and %s format each lane's numeric value, and %#v prefixes the type
// name. %e and %E use scientific notation. %b, %o, %x and %X format each
// lane's raw bit pattern in base 2, 8 and 16.
func (m M128) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('#') {
			io.WriteString(f, m.GoString())
		} else {
			io.WriteString(f, m.String())
		}
	case 's':
		io.WriteString(f, m.String())
	case 'b':
		io.WriteString(f, m.formatLanes(bitsLane(2)))
	case 'o':
		io.WriteString(f, m.formatLanes(bitsLane(8)))
	case 'x':
		io.WriteString(f, m.formatLanes(bitsLane(16)))
	case 'X':
		io.WriteString(f, strings.ToUpper(m.formatLanes(bitsLane(16))))
	case 'e':
		io.WriteString(f, m.formatLanes(expLane('e')))
	case 'E':
		io.WriteString(f, m.formatLanes(expLane('E')))
	default:
		fmt.Fprintf(f, "%%!%c(sse.M128=%s)", verb, m.String())
	}
}
