package multivec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/multivec/internal/rawbuf"
	"github.com/hupe1980/multivec/internal/resource"
)

var (
	// ErrIndexOutOfBounds is the panic cause for a row index outside the valid range.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrColumnOutOfRange is the panic cause for a column index outside [0, K).
	ErrColumnOutOfRange = errors.New("column index out of range")

	// ErrCursorMismatch is the panic cause when a consuming iterator's column
	// cursors disagree on the number of remaining rows.
	ErrCursorMismatch = errors.New("iterator column cursors disagree")

	// ErrZeroSized is the panic cause for a zero-sized column type.
	ErrZeroSized = rawbuf.ErrZeroSized

	// ErrPointerType is the panic cause for a pointer-holding column type
	// placed in a byte allocator.
	ErrPointerType = rawbuf.ErrPointerType

	// ErrCapacityOverflow is the panic cause when growing would exceed the
	// maximum allocation size.
	ErrCapacityOverflow = rawbuf.ErrCapacityOverflow

	// ErrAllocationFailed is the panic cause when memory cannot be obtained.
	ErrAllocationFailed = rawbuf.ErrAllocationFailed

	// ErrMemoryLimitExceeded is wrapped by ErrAllocationFailed panics caused
	// by a MemoryController refusing a reservation.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded
)

// IndexError is raised (via panic) when a row index violates an operation's
// precondition.
//
// It matches ErrIndexOutOfBounds with errors.Is.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of bounds for length %d", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfBounds }

// ColumnError is raised (via panic) when a runtime column index is not
// below the vector's arity.
//
// It matches ErrColumnOutOfRange with errors.Is.
type ColumnError struct {
	Op      string
	Column  int
	Columns int
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%s: column %d out of range for %d columns", e.Op, e.Column, e.Columns)
}

func (e *ColumnError) Unwrap() error { return ErrColumnOutOfRange }
