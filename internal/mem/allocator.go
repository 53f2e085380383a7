package mem

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/hupe1980/multivec/internal/mmap"
)

var (
	// ErrTooLarge is returned when a request exceeds MaxAllocBytes.
	ErrTooLarge = errors.New("mem: allocation too large")
	// ErrForeignBuffer is returned when a buffer was not obtained from the allocator.
	ErrForeignBuffer = errors.New("mem: buffer not owned by allocator")
)

// Allocator hands out raw byte buffers.
//
// Realloc returns a buffer of the new size whose leading
// min(len(buf), size) bytes equal buf's; buf must not be used afterwards.
// Free releases a buffer obtained from Alloc or Realloc exactly once.
// A zero size yields a nil buffer and nil buffers may be freed.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Realloc(buf []byte, size int) ([]byte, error)
	Free(buf []byte) error
}

func checkSize(size int) error {
	if size < 0 || size > MaxAllocBytes {
		return fmt.Errorf("%w: %d bytes", ErrTooLarge, size)
	}
	return nil
}

// Aligned allocates 64-byte aligned buffers from the Go heap.
// Free only drops the reference; the GC reclaims the memory.
type Aligned struct{}

var _ Allocator = Aligned{}

// Alloc implements Allocator.
func (Aligned) Alloc(size int) ([]byte, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	return AllocAligned(size), nil
}

// Realloc implements Allocator.
func (a Aligned) Realloc(buf []byte, size int) ([]byte, error) {
	nb, err := a.Alloc(size)
	if err != nil {
		return nil, err
	}
	copy(nb, buf)
	return nb, nil
}

// Free implements Allocator.
func (Aligned) Free([]byte) error { return nil }

// OffHeap allocates buffers from anonymous memory mappings.
// Every live buffer must eventually be passed to Free.
type OffHeap struct {
	mu   sync.Mutex
	live map[uintptr]*mmap.Mapping
}

var _ Allocator = (*OffHeap)(nil)

// NewOffHeap creates an off-heap allocator.
func NewOffHeap() *OffHeap {
	return &OffHeap{live: make(map[uintptr]*mmap.Mapping)}
}

// Alloc implements Allocator.
func (o *OffHeap) Alloc(size int) ([]byte, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, nil
	}

	m, err := mmap.MapAnon(size)
	if err != nil {
		return nil, err
	}
	buf := m.Bytes()

	o.mu.Lock()
	o.live[base(buf)] = m
	o.mu.Unlock()

	return buf, nil
}

// Realloc implements Allocator.
func (o *OffHeap) Realloc(buf []byte, size int) ([]byte, error) {
	nb, err := o.Alloc(size)
	if err != nil {
		return nil, err
	}
	copy(nb, buf)
	if err := o.Free(buf); err != nil {
		_ = o.Free(nb)
		return nil, err
	}
	return nb, nil
}

// Free implements Allocator. buf must be the full buffer returned by
// Alloc or Realloc; a reslice is rejected and stays live.
func (o *OffHeap) Free(buf []byte) error {
	if cap(buf) == 0 {
		return nil
	}

	key := base(buf)
	o.mu.Lock()
	m, ok := o.live[key]
	if ok && m.Size() != len(buf) {
		ok = false
	}
	if ok {
		delete(o.live, key)
	}
	o.mu.Unlock()

	if !ok {
		return ErrForeignBuffer
	}
	return m.Close()
}

// Live returns the number of buffers not yet freed.
func (o *OffHeap) Live() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.live)
}

func base(buf []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(buf))) //nolint:gosec // address used as map key only
}
