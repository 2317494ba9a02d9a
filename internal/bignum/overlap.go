package bignum

import "unsafe"

// The aliasing guard makes in-place reuse of an operand as the output buffer
// a detectable, rejected condition instead of a source of
// partially-overwritten-then-read data. Each operand's backing range spans
// the full fixed buffer (Capacity limbs), not just the significant prefix,
// because the kernels write and zero the whole buffer.

// bufferRange describes the half-open byte range [start, end) backing a
// FixedBigNum's limb array.
type bufferRange struct {
	start, end uintptr
}

func rangeOf(x *FixedBigNum) bufferRange {
	start := uintptr(unsafe.Pointer(&x.Words[0]))
	return bufferRange{start: start, end: start + Capacity*wordBytes}
}

// overlaps reports whether two half-open ranges intersect:
// start1 < end2 && start2 < end1.
func (r bufferRange) overlaps(o bufferRange) bool {
	return r.start < o.end && o.start < r.end
}

// anyOverlap3 reports whether any pair among the three operands has
// intersecting backing ranges. Pure, side-effect-free, and allocation-free;
// the subtractor calls it before its first write.
func anyOverlap3(x, y, z *FixedBigNum) bool {
	rx, ry, rz := rangeOf(x), rangeOf(y), rangeOf(z)
	return rx.overlaps(ry) || rx.overlaps(rz) || ry.overlaps(rz)
}
