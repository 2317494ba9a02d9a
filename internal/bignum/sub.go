package bignum

import "math/bits"

// SubStatus is the closed status domain of [Sub].
type SubStatus int

const (
	// SubOK indicates the subtraction completed and result is normalized.
	SubOK SubStatus = iota
	// SubErrNullPointer indicates result, a or b was nil.
	SubErrNullPointer
	// SubErrNegativeResult indicates a < b; the unsigned difference does
	// not exist and result was left untouched.
	SubErrNegativeResult
	// SubErrCapacityExceeded indicates a.Length or b.Length exceeds
	// Capacity, a contract violation by the caller.
	SubErrCapacityExceeded
	// SubErrBufferOverlap indicates two of the three operands share
	// backing memory.
	SubErrBufferOverlap
)

// String returns the status name.
func (s SubStatus) String() string {
	switch s {
	case SubOK:
		return "success"
	case SubErrNullPointer:
		return "null pointer"
	case SubErrNegativeResult:
		return "negative result"
	case SubErrCapacityExceeded:
		return "capacity exceeded"
	case SubErrBufferOverlap:
		return "buffer overlap"
	default:
		return "unknown"
	}
}

// Sub computes result = a - b over unsigned values.
//
// Checks run in fixed precedence, first match wins:
//  1. SubErrNullPointer if any operand is nil.
//  2. SubErrCapacityExceeded if a.Length or b.Length exceeds Capacity.
//  3. SubErrBufferOverlap if any pair of operands aliases.
//  4. SubErrNegativeResult if a < b. When a has fewer significant limbs
//     than b the error is raised without a full magnitude scan; otherwise
//     the magnitudes are compared most-significant limb first.
//
// On success result holds the normalized non-negative difference; on every
// error path result is untouched. a and b are read-only throughout.
func Sub(result, a, b *FixedBigNum) SubStatus {
	if result == nil || a == nil || b == nil {
		return SubErrNullPointer
	}
	if a.Length > Capacity || b.Length > Capacity {
		return SubErrCapacityExceeded
	}
	if anyOverlap3(result, a, b) {
		return SubErrBufferOverlap
	}
	// In normalized form an operand with fewer significant limbs cannot be
	// the larger one; this length fast path skips the limb scan entirely.
	if a.sigWords() < b.sigWords() {
		return SubErrNegativeResult
	}
	if a.Cmp(b) < 0 {
		return SubErrNegativeResult
	}

	n := a.sigWords()
	var borrow uint64
	for i := 0; i < n; i++ {
		var bi uint64
		if i < b.sigWords() {
			bi = b.Words[i]
		}
		result.Words[i], borrow = bits.Sub64(a.Words[i], bi, borrow)
	}
	// a >= b was established above, so the final borrow is always zero.
	result.Length = n
	result.normalize()
	return SubOK
}
