// Package conv provides checked integer arithmetic and conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow when
// computing buffer sizes and converting between size types.
//
// Use cases:
//   - Computing byte layouts (element size × capacity) before allocation
//   - Converting element sizes from unsafe.Sizeof results to int
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
