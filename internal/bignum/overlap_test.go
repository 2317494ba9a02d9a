package bignum

import (
	"testing"
	"unsafe"
)

// TestAnyOverlap3_DistinctBuffers verifies that three separately allocated
// operands never report overlap.
func TestAnyOverlap3_DistinctBuffers(t *testing.T) {
	var a, b, c FixedBigNum
	if anyOverlap3(&a, &b, &c) {
		t.Error("anyOverlap3 reported overlap for distinct allocations")
	}
}

// TestAnyOverlap3_SamePointer verifies that passing the same object in any
// pair of positions is detected.
func TestAnyOverlap3_SamePointer(t *testing.T) {
	var x, y FixedBigNum

	tests := []struct {
		name    string
		a, b, c *FixedBigNum
	}{
		{"first equals second", &x, &x, &y},
		{"first equals third", &x, &y, &x},
		{"second equals third", &y, &x, &x},
		{"all equal", &x, &x, &x},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !anyOverlap3(tt.a, tt.b, tt.c) {
				t.Error("anyOverlap3 missed an aliased pair")
			}
		})
	}
}

// TestAnyOverlap3_PartialOverlap verifies the half-open range test on
// buffers that intersect without sharing a base address. The second operand
// is carved out of a contiguous two-element array so its backing range stays
// inside owned memory.
func TestAnyOverlap3_PartialOverlap(t *testing.T) {
	var backing [2]FixedBigNum
	a := &backing[0]
	shifted := (*FixedBigNum)(unsafe.Add(unsafe.Pointer(&backing[0]), wordBytes))
	var c FixedBigNum

	if !anyOverlap3(a, shifted, &c) {
		t.Error("anyOverlap3 missed a partial (one limb offset) overlap")
	}
}

// TestBufferRange_Adjacent verifies that touching but non-intersecting
// ranges do not count as overlap under the half-open rule.
func TestBufferRange_Adjacent(t *testing.T) {
	r1 := bufferRange{start: 0, end: 256}
	r2 := bufferRange{start: 256, end: 512}

	if r1.overlaps(r2) || r2.overlaps(r1) {
		t.Error("adjacent half-open ranges must not overlap")
	}
	if !r1.overlaps(bufferRange{start: 255, end: 300}) {
		t.Error("intersecting ranges must overlap")
	}
	if !r1.overlaps(r1) {
		t.Error("a range must overlap itself")
	}
}
