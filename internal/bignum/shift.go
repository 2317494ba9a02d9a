package bignum

// ShiftStatus is the closed status domain of [ShiftLeft].
type ShiftStatus int

const (
	// ShiftOK indicates the shift completed and num is normalized.
	ShiftOK ShiftStatus = iota
	// ShiftErrNullArg indicates num was nil.
	ShiftErrNullArg
	// ShiftErrOverflow indicates the shift would push significant bits
	// past CapacityBits; num was left byte-identical to its pre-call
	// state.
	ShiftErrOverflow
)

// String returns the status name.
func (s ShiftStatus) String() string {
	switch s {
	case ShiftOK:
		return "success"
	case ShiftErrNullArg:
		return "null argument"
	case ShiftErrOverflow:
		return "overflow"
	default:
		return "unknown"
	}
}

// ShiftLeft mutates num in place to num <<= amount (pure logical shift).
//
// A zero amount is a bit-identical no-op. The overflow condition is fully
// resolved against the current most-significant bit before any limb is
// written, so a ShiftErrOverflow return never leaks a partial shift: num is
// unchanged on every non-success path. On success num is normalized.
func ShiftLeft(num *FixedBigNum, amount uint) ShiftStatus {
	if num == nil {
		return ShiftErrNullArg
	}
	if amount == 0 {
		return ShiftOK
	}

	// A zero value shifts to itself for any amount; canonicalize and exit
	// before the overflow check, whose MSB position is undefined for zero.
	msb := num.BitLen()
	if msb == 0 {
		num.normalize()
		return ShiftOK
	}

	// Overflow pre-check: the current top bit sits at position msb-1; after
	// the shift it would sit at msb-1+amount, which must stay below
	// CapacityBits. The first comparison also catches amounts large enough
	// to wrap the sum. Nothing has been written yet, so failure is atomic.
	if amount >= CapacityBits || uint(msb-1)+amount >= CapacityBits {
		return ShiftErrOverflow
	}

	wordShift := int(amount / WordBits)
	bitShift := amount % WordBits
	sig := (msb + WordBits - 1) / WordBits // occupied limbs, from the MSB scan

	// Whole-limb relocation, highest occupied limb first so a limb is never
	// read after being overwritten; then zero-fill the vacated low end.
	if wordShift > 0 {
		for i := sig - 1; i >= 0; i-- {
			num.Words[i+wordShift] = num.Words[i]
		}
		for i := 0; i < wordShift; i++ {
			num.Words[i] = 0
		}
	}

	// In-place bitwise shift, most significant limb first: each limb absorbs
	// the top bitShift bits of the limb below it as carry-in, captured before
	// that lower limb is itself shifted.
	newSig := sig + wordShift
	if bitShift > 0 {
		top := sig + wordShift - 1
		if carry := num.Words[top] >> (WordBits - bitShift); carry != 0 {
			// The pre-check guarantees the carried bits fit in a fresh limb.
			num.Words[top+1] = carry
			newSig++
		}
		for i := top; i > wordShift; i-- {
			num.Words[i] = num.Words[i]<<bitShift | num.Words[i-1]>>(WordBits-bitShift)
		}
		num.Words[wordShift] <<= bitShift
	}

	num.Length = newSig
	num.normalize()
	return ShiftOK
}
