package rawbuf

import (
	"errors"
	"fmt"

	"github.com/hupe1980/multivec/internal/conv"
	"github.com/hupe1980/multivec/internal/resource"
)

// Config configures a Storage.
type Config struct {
	// Controller reserves the bytes held by the columns. Nil disables accounting.
	Controller *resource.Controller

	// OnFatal is called with the error right before a fatal panic.
	OnFatal func(error)
}

// GrowEvent describes a completed Grow.
type GrowEvent struct {
	OldCap   int
	NewCap   int
	Added    int64 // bytes added across all columns
	Reserved int64 // bytes held by all columns after growing
}

// Storage owns K column buffers sharing one capacity.
type Storage struct {
	cols     []Buffer
	capacity int
	reserved int64
	grows    int
	cfg      Config
}

// New creates an empty storage over cols. No memory is allocated.
func New(cfg Config, cols ...Buffer) *Storage {
	if len(cols) < 2 {
		panic(fmt.Errorf("%w: got %d", ErrTooFewColumns, len(cols)))
	}
	return &Storage{cols: cols, cfg: cfg}
}

// Cap returns the shared capacity in elements.
func (s *Storage) Cap() int {
	if s == nil {
		return 0
	}
	return s.capacity
}

// Columns returns the number of columns.
func (s *Storage) Columns() int {
	if s == nil {
		return 0
	}
	return len(s.cols)
}

// Reserved returns the bytes currently held by all columns.
func (s *Storage) Reserved() int64 {
	if s == nil {
		return 0
	}
	return s.reserved
}

// Grows returns how many times the storage has grown.
func (s *Storage) Grows() int {
	if s == nil {
		return 0
	}
	return s.grows
}

// Grow doubles the capacity (0 becomes 1). The capacity is only updated
// once every column has been reallocated.
func (s *Storage) Grow() GrowEvent {
	newCap := 1
	if s.capacity > 0 {
		n, err := conv.MulInt(s.capacity, 2)
		if err != nil {
			s.fatal(fmt.Errorf("%w: %v", ErrCapacityOverflow, err))
		}
		newCap = n
	}

	var total int64
	for i, col := range s.cols {
		nbytes, err := Layout(col.ElemSize(), newCap)
		if err != nil {
			s.fatal(fmt.Errorf("column %d: %w", i, err))
		}
		total += int64(nbytes)
	}

	delta := total - s.reserved
	if err := s.cfg.Controller.AcquireMemory(delta); err != nil {
		s.fatal(&AllocError{Op: "reserving", Column: -1, Bytes: int(delta), cause: err})
	}

	for i, col := range s.cols {
		if err := col.Resize(newCap); err != nil {
			s.cfg.Controller.ReleaseMemory(delta)
			nbytes, _ := Layout(col.ElemSize(), newCap)
			s.fatal(&AllocError{Op: "allocating", Column: i, Bytes: nbytes, cause: err})
		}
	}

	ev := GrowEvent{OldCap: s.capacity, NewCap: newCap, Added: delta, Reserved: total}
	s.capacity = newCap
	s.reserved = total
	s.grows++
	return ev
}

// Free releases every column buffer once and resets the capacity to zero.
// It is a no-op for a storage that never allocated.
func (s *Storage) Free() {
	if s == nil {
		return
	}

	var errs []error
	for i, col := range s.cols {
		if col.Cap() == 0 {
			continue
		}
		nbytes := col.Cap() * col.ElemSize()
		if err := col.Free(); err != nil {
			errs = append(errs, &AllocError{Op: "freeing", Column: i, Bytes: nbytes, cause: err})
		}
	}

	s.cfg.Controller.ReleaseMemory(s.reserved)
	s.reserved = 0
	s.capacity = 0

	if len(errs) > 0 {
		s.fatal(errors.Join(errs...))
	}
}

func (s *Storage) fatal(err error) {
	if s.cfg.OnFatal != nil {
		s.cfg.OnFatal(err)
	}
	panic(err)
}
