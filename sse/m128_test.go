package sse

import (
	"math"
	"testing"
	"unsafe"
)

func TestM128SizeAlign(t *testing.T) {
	if got := unsafe.Sizeof(M128{}); got != 16 {
		t.Errorf("Sizeof(M128) = %d, want 16", got)
	}
	if got := unsafe.Sizeof(M128{}.lanes); got != 16 {
		t.Errorf("Sizeof(M128.lanes) = %d, want 16 (padding?)", got)
	}

	// The runtime places pointer-free 16-byte objects in the 16-byte size
	// class, which gives heap values the alignment the hardware wants.
	ms := make([]*M128, 64)
	for i := range ms {
		ms[i] = new(M128)
	}
	for i, m := range ms {
		if addr := uintptr(unsafe.Pointer(m)); addr%16 != 0 {
			t.Fatalf("allocation %d at %#x is not 16-byte aligned", i, addr)
		}
	}
}

func TestM128RoundTripExact(t *testing.T) {
	cases := [][4]uint32{
		{0, 0, 0, 0},
		{0x3F800000, 0xBF800000, 0x3F000000, 0x40000000}, // 1, -1, 0.5, 2
		{0x80000000, 0x00000001, 0x007FFFFF, 0x00800000}, // -0, subnormals, min normal
		{0x7F800000, 0xFF800000, 0x7FC00000, 0xFFC00000}, // ±Inf, quiet NaNs
		{0x7FC00001, 0x7FBFFFFF, 0xFFFFFFFF, 0x7F800001}, // NaN payloads, incl. signaling
	}
	for _, bits := range cases {
		var arr [4]float32
		for i, b := range bits {
			arr[i] = math.Float32frombits(b)
		}
		got := FromArray(arr).ToArray()
		for i := range got {
			if g := math.Float32bits(got[i]); g != bits[i] {
				t.Errorf("round trip of %#08x: lane %d bits = %#08x, want %#08x",
					bits, i, g, bits[i])
			}
		}
	}
}

func TestM128ZeroValue(t *testing.T) {
	var m M128
	for i, l := range m.ToArray() {
		if bits := math.Float32bits(l); bits != 0 {
			t.Errorf("zero value: lane %d bits = %#08x, want 0", i, bits)
		}
	}
	if Zero() != m {
		t.Errorf("Zero() = %v, want the zero value %v", Zero(), m)
	}
}

func TestM128CopyIndependence(t *testing.T) {
	m := FromArray([4]float32{1, 2, 3, 4})
	c := m
	m.AsArray()[2] = 99

	if got := m.ToArray()[2]; got != 99 {
		t.Errorf("write through AsArray: lane 2 = %v, want 99", got)
	}
	if got := c.ToArray()[2]; got != 3 {
		t.Errorf("copy changed with the original: lane 2 = %v, want 3", got)
	}
}

func TestM128AsArrayAliases(t *testing.T) {
	m := Zero()
	view := m.AsArray()
	view[0] = 1.5
	view[3] = -2.5

	want := [4]float32{1.5, 0, 0, -2.5}
	if got := m.ToArray(); got != want {
		t.Errorf("after writes through view: lanes = %v, want %v", got, want)
	}
	if unsafe.Pointer(view) != unsafe.Pointer(&m) {
		t.Error("AsArray does not alias the value's own storage")
	}
}

func TestM128AsBytes(t *testing.T) {
	arr := [4]float32{1, -1, 0.5, 2}
	m := FromArray(arr)

	// Invariant: the register's byte layout is identical to that of a plain
	// [4]float32 with the same lanes.
	want := *(*[16]byte)(unsafe.Pointer(&arr))
	if got := *m.AsBytes(); got != want {
		t.Errorf("AsBytes = % x, want % x", got, want)
	}

	// Zero-filling through the byte view yields the zero register.
	b := m.AsBytes()
	for i := range b {
		b[i] = 0
	}
	if m != Zero() {
		t.Errorf("after zero fill: %v, want %v", m, Zero())
	}
}
