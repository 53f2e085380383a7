// Package testutil provides testing utilities for multivec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random generator for operation sequences, values
// that count their clones and drops, and panic capture helpers.
//
// # Random Operations
//
//	rng := testutil.NewRNG(seed)
//	op := rng.Intn(4)
//
// # Drop Accounting
//
//	tr := testutil.NewTracked()
//	v.Push(multivec.Row2[testutil.Tracked, int]{C0: tr.Clone(), C1: 1})
//	v.Release()
//	// tr.TimesCloned() == tr.TimesDropped()
//
// # Panics
//
//	err := testutil.CapturePanic(func() { v.Row(99) })
package testutil
