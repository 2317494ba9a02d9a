package harness

import (
	"math/rand"

	"github.com/kirill-bayborodov/bignum/internal/bignum"
)

// Kernel identifiers used in metrics labels and mismatch reports.
const (
	KernelSub       = "sub"
	KernelShiftLeft = "shift_left"
)

// SubCase is one pre-generated subtraction operand pair.
type SubCase struct {
	A, B bignum.FixedBigNum
}

// ShiftCase is one pre-generated shift operand and amount.
type ShiftCase struct {
	Num    bignum.FixedBigNum
	Amount uint
}

// Dataset holds the pre-generated operand sets for one stress run. It is
// built once, read-only afterwards, and shared by all workers.
type Dataset struct {
	Subs   []SubCase
	Shifts []ShiftCase
}

// shiftSlack extends the shift amount range past CapacityBits so the
// overflow path is exercised, not only in-range shifts.
const shiftSlack = 256

// NewDataset builds size cases per kernel from the given seed. The same
// seed always yields the same dataset, so a mismatch report's case index
// identifies a reproducible input.
func NewDataset(size int, seed uint64) *Dataset {
	rng := rand.New(rand.NewSource(int64(seed)))
	d := &Dataset{
		Subs:   make([]SubCase, size),
		Shifts: make([]ShiftCase, size),
	}
	for i := range d.Subs {
		d.Subs[i] = SubCase{A: randomNum(rng), B: randomNum(rng)}
		// Keep the success path dominant: order three out of four pairs so
		// a >= b, leaving the rest to exercise the negative-result status.
		if i%4 != 0 && d.Subs[i].A.Cmp(&d.Subs[i].B) < 0 {
			d.Subs[i].A, d.Subs[i].B = d.Subs[i].B, d.Subs[i].A
		}
	}
	for i := range d.Shifts {
		num := randomNum(rng)
		// Bias toward amounts that fit below the capacity ceiling; every
		// eighth case draws from the full range and may overflow.
		var amount uint
		if head := bignum.CapacityBits - num.BitLen(); i%8 != 0 && head > 0 {
			amount = uint(rng.Intn(head + 1))
		} else {
			amount = uint(rng.Intn(bignum.CapacityBits + shiftSlack))
		}
		d.Shifts[i] = ShiftCase{Num: num, Amount: amount}
	}
	return d
}

// randomNum draws a normalized value with a random limb count. Lengths are
// spread over the whole range up to Capacity, with zero appearing often
// enough to keep the degenerate paths warm.
func randomNum(rng *rand.Rand) bignum.FixedBigNum {
	var x bignum.FixedBigNum
	n := rng.Intn(bignum.Capacity + 1)
	for i := 0; i < n; i++ {
		x.Words[i] = rng.Uint64()
	}
	x.Length = n
	// Re-establish the canonical form in case the top drawn limb was zero.
	return bignum.FromWords(x.Words[:n]...)
}
