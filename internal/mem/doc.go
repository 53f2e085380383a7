// Package mem provides byte allocators for column buffers.
//
// # Allocators
//
// An Allocator hands out raw byte buffers that are later reinterpreted as
// typed element slices:
//
//   - Aligned: Go heap memory, 64-byte aligned (AVX-512 friendly), reclaimed by the GC.
//   - OffHeap: anonymous mappings outside the Go heap, released explicitly.
//
// Both only suit pointer-free element types: the garbage collector never
// scans byte buffers for pointers.
//
// # Limits
//
// MaxAllocBytes bounds a single allocation. Larger layouts are rejected
// before the allocator is called.
package mem
