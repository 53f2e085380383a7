package mem

import (
	"unsafe"
)

// Alignment is the byte alignment required for AVX-512 (64 bytes).
const Alignment = 64

// MaxAllocBytes is the largest single allocation: 1<<48-1 bytes on 64-bit
// platforms (the runtime's heap address limit), math.MaxInt32 on 32-bit.
const MaxAllocBytes = 1<<(31+17*(^uint(0)>>63)) - 1

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Allocate size + alignment to ensure we can find an aligned offset
	// We need enough space to shift the start pointer up to Alignment-1 bytes
	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	// Calculate the offset to the first aligned byte
	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	// Return the slice starting at the aligned offset
	return buf[offset : offset+uintptr(size) : offset+uintptr(size)]
}
