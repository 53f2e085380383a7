package rawbuf

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/hupe1980/multivec/internal/conv"
	"github.com/hupe1980/multivec/internal/mem"
)

// Dropper is implemented by values that release resources when the
// container that owns them discards them.
type Dropper interface {
	Drop()
}

// DropValue runs Drop on *v if its type implements Dropper. Nil pointer,
// map, func, chan, slice and interface values are skipped.
func DropValue[T any](v *T) {
	if d, ok := any(*v).(Dropper); ok {
		if !isNil(d) {
			d.Drop()
		}
	} else if d, ok := any(v).(Dropper); ok {
		d.Drop()
	}
}

func isNil(d Dropper) bool {
	rv := reflect.ValueOf(d)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// Buffer is the type-erased view of a column that Storage and the
// vector's shared code operate on.
type Buffer interface {
	// ElemSize is the size in bytes of one element.
	ElemSize() int
	// Cap is the number of element slots currently allocated.
	Cap() int
	// Resize reallocates to newCap slots, preserving min(Cap, newCap) elements.
	Resize(newCap int) error
	// Move copies n elements from src to dst; the ranges may overlap.
	Move(dst, src, n int)
	// Clear resets slot i to the zero value.
	Clear(i int)
	// Drop runs Dropper on slot i, then clears it.
	Drop(i int)
	// Free releases the allocation and resets Cap to zero.
	Free() error
}

// Column is a buffer of T slots.
type Column[T any] struct {
	data  []T
	raw   []byte
	alloc mem.Allocator
	size  int
}

var _ Buffer = (*Column[int])(nil)

// NewColumn creates an empty column. A nil alloc places the column on the
// Go heap; otherwise T must be pointer-free.
func NewColumn[T any](alloc mem.Allocator) *Column[T] {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		panic(fmt.Errorf("%w: %T", ErrZeroSized, zero))
	}
	if alloc != nil && hasPointers(reflect.TypeFor[T]()) {
		panic(fmt.Errorf("%w: %T", ErrPointerType, zero))
	}
	n, err := conv.UintptrToInt(size)
	if err != nil {
		panic(fmt.Errorf("%w: %v", ErrCapacityOverflow, err))
	}
	return &Column[T]{alloc: alloc, size: n}
}

// ElemSize implements Buffer.
func (c *Column[T]) ElemSize() int { return c.size }

// Cap implements Buffer.
func (c *Column[T]) Cap() int {
	if c == nil {
		return 0
	}
	return len(c.data)
}

// Resize implements Buffer.
func (c *Column[T]) Resize(newCap int) error {
	if c.alloc == nil {
		data := make([]T, newCap)
		copy(data, c.data)
		c.data = data
		return nil
	}

	nbytes, err := Layout(c.size, newCap)
	if err != nil {
		return err
	}
	var raw []byte
	if c.raw == nil {
		raw, err = c.alloc.Alloc(nbytes)
	} else {
		raw, err = c.alloc.Realloc(c.raw, nbytes)
	}
	if err != nil {
		return err
	}
	c.raw = raw
	if newCap == 0 {
		c.data = nil
		return nil
	}
	c.data = unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(raw))), newCap) //nolint:gosec // raw holds newCap*size bytes
	return nil
}

// Move implements Buffer.
func (c *Column[T]) Move(dst, src, n int) {
	if n <= 0 {
		return
	}
	copy(c.data[dst:dst+n], c.data[src:src+n])
}

// Clear implements Buffer.
func (c *Column[T]) Clear(i int) {
	var zero T
	c.data[i] = zero
}

// Drop implements Buffer.
func (c *Column[T]) Drop(i int) {
	DropValue(&c.data[i])
	c.Clear(i)
}

// Free implements Buffer.
func (c *Column[T]) Free() error {
	var err error
	if c.alloc != nil && c.raw != nil {
		err = c.alloc.Free(c.raw)
	}
	c.raw = nil
	c.data = nil
	return err
}

// Slice returns every allocated slot. Slots past the caller's length hold
// zero values.
func (c *Column[T]) Slice() []T {
	if c == nil {
		return nil
	}
	return c.data
}

// Get returns the value in slot i.
func (c *Column[T]) Get(i int) T { return c.data[i] }

// At returns a pointer to slot i.
func (c *Column[T]) At(i int) *T { return &c.data[i] }

// Set writes v into slot i.
func (c *Column[T]) Set(i int, v T) { c.data[i] = v }

// Take moves the value out of slot i, leaving the zero value behind.
func (c *Column[T]) Take(i int) T {
	v := c.data[i]
	var zero T
	c.data[i] = zero
	return v
}

// Layout returns the byte size of n elements of elemSize bytes, or
// ErrCapacityOverflow if it exceeds mem.MaxAllocBytes.
func Layout(elemSize, n int) (int, error) {
	nbytes, err := conv.MulInt(elemSize, n)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCapacityOverflow, err)
	}
	if nbytes > mem.MaxAllocBytes {
		return 0, fmt.Errorf("%w: %d elements of %d bytes", ErrCapacityOverflow, n, elemSize)
	}
	return nbytes, nil
}
