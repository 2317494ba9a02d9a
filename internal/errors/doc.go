// Package apperrors defines structured application error types, allowing
// for a clear distinction between error classes (configuration, validation,
// verification) and for carrying the underlying cause.
//
// Kernel status codes are deliberately NOT represented here: the arithmetic
// kernels report closed status enumerations, and only the harness layer
// around them deals in Go errors.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with
// %w. Wrapping error types implement the Unwrap() method to support
// errors.Is() and errors.As().
package apperrors
