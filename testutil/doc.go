// Package testutil provides testing utilities for the blake2s package.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating reproducible random messages and for
// splitting them into arbitrary write sequences, so that streaming code
// paths can be exercised against one-shot results.
//
// # Random Messages
//
//	rng := testutil.NewRNG(seed)
//	msg := rng.Bytes(1 << 16)
//
// # Streaming Schedules
//
//	for _, chunk := range rng.Chunks(msg) {
//	    h.Write(chunk)
//	}
package testutil
