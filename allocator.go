package multivec

import (
	"github.com/hupe1980/multivec/internal/mem"
	"github.com/hupe1980/multivec/internal/rawbuf"
	"github.com/hupe1980/multivec/internal/resource"
)

// Allocator hands out raw byte buffers for pointer-free columns.
// See WithAllocator.
type Allocator = mem.Allocator

// MaxAllocBytes is the largest single column buffer, in bytes.
const MaxAllocBytes = mem.MaxAllocBytes

// AlignedAllocator returns an Allocator serving 64-byte aligned buffers
// from the Go heap.
func AlignedAllocator() Allocator { return mem.Aligned{} }

// OffHeapAllocator allocates column buffers from anonymous memory mappings
// outside the Go heap. Vectors using it must be released with Release (and
// iterators closed with Close) or the mappings leak.
type OffHeapAllocator = mem.OffHeap

// NewOffHeapAllocator creates an OffHeapAllocator. It may be shared by
// vectors on different goroutines.
func NewOffHeapAllocator() *OffHeapAllocator { return mem.NewOffHeap() }

// MemoryController is a byte budget shared by any number of vectors.
// It is safe for concurrent use.
type MemoryController = resource.Controller

// NewMemoryController creates a controller enforcing limitBytes; 0 only
// tracks usage.
func NewMemoryController(limitBytes int64) *MemoryController {
	return resource.NewController(resource.Config{MemoryLimitBytes: limitBytes})
}

// Dropper is implemented by column values that must release resources when
// the vector discards them. The vector calls Drop exactly once for every
// value it still owns when it is released, cleared or truncated, and a
// consuming iterator does the same for rows never yielded. Values returned
// to the caller (Pop, Remove, Next, ...) are the caller's to drop.
type Dropper = rawbuf.Dropper
