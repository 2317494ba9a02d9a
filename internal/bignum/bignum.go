package bignum

import (
	"math/big"
	"math/bits"
)

const (
	// Capacity is the fixed limb capacity of a FixedBigNum. No value with
	// more than Capacity significant limbs can exist in a valid instance.
	Capacity = 32

	// WordBits is the width of a single limb in bits.
	WordBits = 64

	// CapacityBits is the ceiling of representable magnitude: no value
	// >= 2^CapacityBits fits in a FixedBigNum.
	CapacityBits = Capacity * WordBits

	// wordBytes is the size of one limb in bytes, used by the aliasing guard.
	wordBytes = WordBits / 8
)

// FixedBigNum is a fixed-capacity unsigned big integer. Words holds the
// limbs in little-endian order (Words[0] is least significant); Length is
// the count of significant limbs.
//
// Invariants of a normalized instance:
//   - 0 <= Length <= Capacity
//   - Length > 0 implies Words[Length-1] != 0
//   - Words[i] == 0 for every i >= Length
//
// The canonical representation of zero is Length == 0. Both kernels restore
// these invariants on every successful mutation; [FixedBigNum.Equal] tolerates
// denormalized zero forms the way the original reference fixtures did.
//
// The zero value of FixedBigNum is a valid canonical zero.
type FixedBigNum struct {
	Words  [Capacity]uint64
	Length int
}

// FromWords builds a normalized FixedBigNum from little-endian limbs.
// Limbs beyond Capacity are ignored.
func FromWords(words ...uint64) FixedBigNum {
	var x FixedBigNum
	n := len(words)
	if n > Capacity {
		n = Capacity
	}
	copy(x.Words[:n], words[:n])
	x.Length = n
	x.normalize()
	return x
}

// SetUint64 sets x to the single-limb value v.
func (x *FixedBigNum) SetUint64(v uint64) {
	*x = FixedBigNum{}
	if v != 0 {
		x.Words[0] = v
		x.Length = 1
	}
}

// IsZero reports whether x represents the value zero. Denormalized forms
// (a significant range of all-zero limbs) count as zero.
func (x *FixedBigNum) IsZero() bool {
	for i := 0; i < x.sigWords(); i++ {
		if x.Words[i] != 0 {
			return false
		}
	}
	return true
}

// BitLen returns the position of the most significant set bit plus one,
// i.e. the minimal bit width of the value. BitLen of zero is 0.
func (x *FixedBigNum) BitLen() int {
	for i := x.sigWords() - 1; i >= 0; i-- {
		if w := x.Words[i]; w != 0 {
			return i*WordBits + bits.Len64(w)
		}
	}
	return 0
}

// Cmp compares the magnitudes of x and y, scanning from the most significant
// limb down. It returns -1 if x < y, 0 if x == y, and +1 if x > y. Limbs past
// either Length are treated as zero, so denormalized inputs compare by value.
func (x *FixedBigNum) Cmp(y *FixedBigNum) int {
	n := x.sigWords()
	if m := y.sigWords(); m > n {
		n = m
	}
	for i := n - 1; i >= 0; i-- {
		var xi, yi uint64
		if i < x.sigWords() {
			xi = x.Words[i]
		}
		if i < y.sigWords() {
			yi = y.Words[i]
		}
		switch {
		case xi < yi:
			return -1
		case xi > yi:
			return 1
		}
	}
	return 0
}

// Equal reports whether x and y represent the same value. Two zeros are
// equal regardless of representation; otherwise both limb contents and
// Length must match.
func (x *FixedBigNum) Equal(y *FixedBigNum) bool {
	if x.IsZero() && y.IsZero() {
		return true
	}
	if x.Length != y.Length {
		return false
	}
	for i := 0; i < x.sigWords(); i++ {
		if x.Words[i] != y.Words[i] {
			return false
		}
	}
	return true
}

// ToBig returns the value of x as a math/big integer. The harnesses and the
// test suite use this as their correctness oracle.
func (x *FixedBigNum) ToBig() *big.Int {
	v := new(big.Int)
	for i := x.sigWords() - 1; i >= 0; i-- {
		v.Lsh(v, WordBits)
		v.Or(v, new(big.Int).SetUint64(x.Words[i]))
	}
	return v
}

// SetBig sets x to the value of v and reports whether it fit. v must be
// non-negative and below 2^CapacityBits; otherwise x is zeroed and SetBig
// returns false.
func (x *FixedBigNum) SetBig(v *big.Int) bool {
	*x = FixedBigNum{}
	if v.Sign() < 0 || v.BitLen() > CapacityBits {
		return false
	}
	t := new(big.Int).Set(v)
	mask := new(big.Int).SetUint64(^uint64(0))
	for i := 0; t.Sign() != 0; i++ {
		x.Words[i] = new(big.Int).And(t, mask).Uint64()
		x.Length = i + 1
		t.Rsh(t, WordBits)
	}
	return true
}

// sigWords returns the number of in-range significant limbs, clamping a
// Length outside [0, Capacity] so that loops over limbs stay in bounds even
// for out-of-contract instances (which the kernels reject separately).
func (x *FixedBigNum) sigWords() int {
	n := x.Length
	if n < 0 {
		return 0
	}
	if n > Capacity {
		return Capacity
	}
	return n
}

// normalize trims high-index zero limbs until Length reflects only
// significant digits (zero becomes Length 0), then actively zeroes every
// slot at index >= Length so later full-buffer reads never observe stale
// data.
func (x *FixedBigNum) normalize() {
	n := x.sigWords()
	for n > 0 && x.Words[n-1] == 0 {
		n--
	}
	x.Length = n
	for i := n; i < Capacity; i++ {
		x.Words[i] = 0
	}
}
