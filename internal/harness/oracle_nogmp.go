//go:build !gmp

package harness

import (
	apperrors "github.com/kirill-bayborodov/bignum/internal/errors"
)

// newGMPOracle fails when the binary was built without the gmp tag. The
// cgo-backed oracle is opt-in so the default build needs no C toolchain.
func newGMPOracle() (Oracle, error) {
	return nil, apperrors.NewConfigError("oracle %q requires building with -tags gmp", "gmp")
}
