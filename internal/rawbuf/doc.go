// Package rawbuf implements the raw column buffers behind multivec.
//
// A Storage owns K column buffers that always share one capacity, measured
// in elements. It only allocates, grows and frees: which slots hold live
// values is the caller's business. Slots beyond the caller's length hold the
// zero value of their column type.
//
// Columns either live on the Go heap (typed slices, any element type) or in
// byte buffers from a mem.Allocator, which restricts them to pointer-free
// element types.
//
// Growth doubles the capacity (1 for an empty storage). A layout that does
// not fit mem.MaxAllocBytes, a refused memory reservation or a failed
// allocation is fatal: Grow panics rather than returning an error.
package rawbuf
