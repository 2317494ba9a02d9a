// Package harness runs the multithreaded verification stress harness.
//
// A run pre-generates a reproducible dataset of operand sets, then hammers
// the kernels from a pool of workers while checking every result against a
// reference oracle. Operand generation stays out of the stressed hot path:
// workers only copy pre-built cases into per-worker scratch space.
package harness
