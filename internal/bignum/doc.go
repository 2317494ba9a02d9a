// Package bignum implements fixed-capacity arbitrary-precision unsigned
// integer kernels: subtraction and logical left shift.
//
// Values are represented by [FixedBigNum], a caller-allocated, stack-friendly
// structure holding up to [Capacity] little-endian 64-bit limbs and an
// explicit significant-limb count. The kernels never allocate, never retain
// references past a call, and never touch shared state, so they are reentrant
// by construction: concurrent calls are safe as long as no two of them name
// overlapping buffers where at least one is the mutated output.
//
// Errors are closed status enumerations, not Go errors: misuse of the call
// contract (nil operand, over-capacity length, overlapping buffers) and
// domain outcomes that the unsigned fixed-width result cannot represent
// (negative difference, shift overflow) are both reported as status codes,
// and a failed call never leaves a partially mutated output behind.
package bignum
