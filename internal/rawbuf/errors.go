package rawbuf

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroSized is raised when a column type occupies no memory.
	ErrZeroSized = errors.New("rawbuf: zero-sized column type")
	// ErrPointerType is raised when a byte allocator is asked to hold a type containing pointers.
	ErrPointerType = errors.New("rawbuf: column type contains pointers")
	// ErrTooFewColumns is raised when a storage is built with fewer than two columns.
	ErrTooFewColumns = errors.New("rawbuf: at least two columns required")
	// ErrCapacityOverflow is raised when a grown layout exceeds the allocation limit.
	ErrCapacityOverflow = errors.New("rawbuf: capacity overflow")
	// ErrAllocationFailed is raised when memory cannot be obtained or released.
	ErrAllocationFailed = errors.New("rawbuf: allocation failed")
)

// AllocError describes a failed allocation for one column.
//
// It matches both ErrAllocationFailed and the underlying cause with errors.Is.
// Column is -1 when the memory reservation itself was refused.
type AllocError struct {
	Op     string
	Column int
	Bytes  int
	cause  error
}

func (e *AllocError) Error() string {
	if e.Column < 0 {
		return fmt.Sprintf("rawbuf: %s %d bytes: %v", e.Op, e.Bytes, e.cause)
	}
	return fmt.Sprintf("rawbuf: %s %d bytes for column %d: %v", e.Op, e.Bytes, e.Column, e.cause)
}

func (e *AllocError) Unwrap() []error { return []error{ErrAllocationFailed, e.cause} }
