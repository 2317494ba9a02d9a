package harness

import (
	"fmt"
	"math/big"

	"github.com/kirill-bayborodov/bignum/internal/bignum"
	"github.com/kirill-bayborodov/bignum/internal/config"
	apperrors "github.com/kirill-bayborodov/bignum/internal/errors"
)

// Oracle checks kernel outcomes against an independent reference
// implementation. Implementations must be safe for concurrent use; the
// stress workers share one Oracle.
type Oracle interface {
	// Name identifies the backend in logs and summaries.
	Name() string
	// VerifySub checks the outcome of one subtraction case. got is only
	// meaningful when status is bignum.SubOK.
	VerifySub(c *SubCase, got *bignum.FixedBigNum, status bignum.SubStatus, caseIdx int) error
	// VerifyShift checks the outcome of one shift case. after is the
	// operand's post-call state regardless of status.
	VerifyShift(c *ShiftCase, after *bignum.FixedBigNum, status bignum.ShiftStatus, caseIdx int) error
}

// NewOracle constructs the oracle selected by the configuration.
func NewOracle(backend string) (Oracle, error) {
	switch backend {
	case config.OracleBig:
		return bigOracle{}, nil
	case config.OracleGMP:
		return newGMPOracle()
	default:
		return nil, apperrors.NewConfigError("unknown oracle backend %q", backend)
	}
}

// bigOracle verifies results against math/big.
type bigOracle struct{}

func (bigOracle) Name() string { return config.OracleBig }

func (bigOracle) VerifySub(c *SubCase, got *bignum.FixedBigNum, status bignum.SubStatus, caseIdx int) error {
	av, bv := c.A.ToBig(), c.B.ToBig()
	if av.Cmp(bv) < 0 {
		if status != bignum.SubErrNegativeResult {
			return subMismatch(caseIdx, "a < b reported %q, want %q", status, bignum.SubErrNegativeResult)
		}
		return nil
	}
	if status != bignum.SubOK {
		return subMismatch(caseIdx, "a >= b reported %q, want %q", status, bignum.SubOK)
	}
	want := new(big.Int).Sub(av, bv)
	if got.ToBig().Cmp(want) != 0 {
		return subMismatch(caseIdx, "value %s, want %s", got.ToBig(), want)
	}
	return nil
}

func (bigOracle) VerifyShift(c *ShiftCase, after *bignum.FixedBigNum, status bignum.ShiftStatus, caseIdx int) error {
	before := c.Num.ToBig()
	overflow := before.Sign() != 0 && uint(before.BitLen()-1)+c.Amount >= bignum.CapacityBits
	if overflow {
		if status != bignum.ShiftErrOverflow {
			return shiftMismatch(caseIdx, "overflowing shift reported %q, want %q", status, bignum.ShiftErrOverflow)
		}
		if after.ToBig().Cmp(before) != 0 {
			return shiftMismatch(caseIdx, "operand mutated on overflow: %s, want %s", after.ToBig(), before)
		}
		return nil
	}
	if status != bignum.ShiftOK {
		return shiftMismatch(caseIdx, "in-range shift reported %q, want %q", status, bignum.ShiftOK)
	}
	want := new(big.Int).Lsh(before, c.Amount)
	if after.ToBig().Cmp(want) != 0 {
		return shiftMismatch(caseIdx, "value %s, want %s", after.ToBig(), want)
	}
	return nil
}

func subMismatch(caseIdx int, format string, args ...any) error {
	return apperrors.MismatchError{
		Kernel: KernelSub,
		Detail: fmt.Sprintf(format, args...),
		Case:   caseIdx,
	}
}

func shiftMismatch(caseIdx int, format string, args ...any) error {
	return apperrors.MismatchError{
		Kernel: KernelShiftLeft,
		Detail: fmt.Sprintf(format, args...),
		Case:   caseIdx,
	}
}
