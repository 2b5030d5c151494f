// Package testutil provides testing utilities for bitarr.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for fixed-width words and
// in-range bit indexes, so property sweeps are reproducible.
//
// # Random Words and Indexes
//
//	rng := testutil.NewRNG(seed)
//	v := rng.Word()          // random uint64
//	w := rng.Uint128()       // random 128-bit value
//	i := rng.Index(8)        // random index in [0, 8)
//	b := rng.Bool()          // random bit value
//
// Reset rewinds the source to its seed, replaying the same sequence.
package testutil
