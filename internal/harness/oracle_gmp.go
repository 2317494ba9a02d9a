//go:build gmp

package harness

import (
	"github.com/ncw/gmp"

	"github.com/kirill-bayborodov/bignum/internal/bignum"
	"github.com/kirill-bayborodov/bignum/internal/config"
)

// gmpOracle verifies results against GNU GMP via cgo. It exists to
// cross-check the pure Go oracle with an unrelated bignum implementation.
type gmpOracle struct{}

func newGMPOracle() (Oracle, error) {
	return gmpOracle{}, nil
}

func (gmpOracle) Name() string { return config.OracleGMP }

// toGMP converts through the big-endian byte encoding, the only lossless
// bridge both representations share.
func toGMP(x *bignum.FixedBigNum) *gmp.Int {
	return new(gmp.Int).SetBytes(x.ToBig().Bytes())
}

func (gmpOracle) VerifySub(c *SubCase, got *bignum.FixedBigNum, status bignum.SubStatus, caseIdx int) error {
	av, bv := toGMP(&c.A), toGMP(&c.B)
	if av.Cmp(bv) < 0 {
		if status != bignum.SubErrNegativeResult {
			return subMismatch(caseIdx, "a < b reported %q, want %q", status, bignum.SubErrNegativeResult)
		}
		return nil
	}
	if status != bignum.SubOK {
		return subMismatch(caseIdx, "a >= b reported %q, want %q", status, bignum.SubOK)
	}
	want := new(gmp.Int).Sub(av, bv)
	if toGMP(got).Cmp(want) != 0 {
		return subMismatch(caseIdx, "value %s, want %s", toGMP(got), want)
	}
	return nil
}

func (gmpOracle) VerifyShift(c *ShiftCase, after *bignum.FixedBigNum, status bignum.ShiftStatus, caseIdx int) error {
	before := toGMP(&c.Num)
	overflow := before.Sign() != 0 && uint(before.BitLen()-1)+c.Amount >= bignum.CapacityBits
	if overflow {
		if status != bignum.ShiftErrOverflow {
			return shiftMismatch(caseIdx, "overflowing shift reported %q, want %q", status, bignum.ShiftErrOverflow)
		}
		if toGMP(after).Cmp(before) != 0 {
			return shiftMismatch(caseIdx, "operand mutated on overflow: %s, want %s", toGMP(after), before)
		}
		return nil
	}
	if status != bignum.ShiftOK {
		return shiftMismatch(caseIdx, "in-range shift reported %q, want %q", status, bignum.ShiftOK)
	}
	want := new(gmp.Int).Lsh(before, c.Amount)
	if toGMP(after).Cmp(want) != 0 {
		return shiftMismatch(caseIdx, "value %s, want %s", toGMP(after), want)
	}
	return nil
}
