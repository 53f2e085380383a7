package rawbuf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/multivec/internal/mem"
	"github.com/hupe1980/multivec/internal/resource"
	"github.com/hupe1980/multivec/testutil"
)

var errInjected = errors.New("injected allocator failure")

// countingAllocator wraps mem.Aligned and records every call.
type countingAllocator struct {
	allocs, reallocs, frees int
	failAt                  int // fail the n-th call (1-based); 0 never fails
	calls                   int
}

func (c *countingAllocator) fail() bool {
	c.calls++
	return c.failAt > 0 && c.calls == c.failAt
}

func (c *countingAllocator) Alloc(size int) ([]byte, error) {
	if c.fail() {
		return nil, errInjected
	}
	c.allocs++
	return mem.Aligned{}.Alloc(size)
}

func (c *countingAllocator) Realloc(buf []byte, size int) ([]byte, error) {
	if c.fail() {
		return nil, errInjected
	}
	c.reallocs++
	return mem.Aligned{}.Realloc(buf, size)
}

func (c *countingAllocator) Free(buf []byte) error {
	c.frees++
	return nil
}

func newPair(alloc mem.Allocator, cfg Config) (*Storage, *Column[int32], *Column[float64]) {
	c0 := NewColumn[int32](alloc)
	c1 := NewColumn[float64](alloc)
	return New(cfg, c0, c1), c0, c1
}

func TestStorage_New(t *testing.T) {
	alloc := &countingAllocator{}
	s, _, _ := newPair(alloc, Config{})

	assert.Equal(t, 0, s.Cap())
	assert.Equal(t, 2, s.Columns())
	assert.Equal(t, int64(0), s.Reserved())
	assert.Equal(t, 0, alloc.calls)

	// Freeing an empty storage never reaches the allocator
	s.Free()
	s.Free()
	assert.Equal(t, 0, alloc.calls)
	assert.Equal(t, 0, alloc.frees)

	err := testutil.CapturePanic(func() { New(Config{}, NewColumn[int](nil)) })
	assert.ErrorIs(t, err, ErrTooFewColumns)
}

func TestStorage_GrowDoubles(t *testing.T) {
	alloc := &countingAllocator{}
	s, c0, c1 := newPair(alloc, Config{})

	expected := []int{1, 2, 4, 8, 16}
	for i, want := range expected {
		ev := s.Grow()
		assert.Equal(t, want, ev.NewCap)
		assert.Equal(t, want, s.Cap())
		assert.Equal(t, want, c0.Cap())
		assert.Equal(t, want, c1.Cap())
		assert.Equal(t, int64(want*(4+8)), ev.Reserved)
		assert.Equal(t, i+1, s.Grows())
	}

	// First grow allocates, later ones reallocate
	assert.Equal(t, 2, alloc.allocs)
	assert.Equal(t, 8, alloc.reallocs)

	s.Free()
	assert.Equal(t, 2, alloc.frees)
	assert.Equal(t, 0, s.Cap())
	assert.Equal(t, 0, c0.Cap())
}

func TestStorage_GrowPreservesData(t *testing.T) {
	s, c0, c1 := newPair(mem.NewOffHeap(), Config{})
	defer s.Free()

	n := 0
	for i := 0; i < 1000; i++ {
		if n == s.Cap() {
			s.Grow()
		}
		c0.Set(n, int32(i))
		c1.Set(n, float64(i)/2)
		n++
	}

	for i := 0; i < 1000; i++ {
		require.Equal(t, int32(i), c0.Get(i))
		require.Equal(t, float64(i)/2, c1.Get(i))
	}
}

func TestStorage_AllocationFailureIsFatal(t *testing.T) {
	alloc := &countingAllocator{failAt: 2}
	var reported error
	s, c0, _ := newPair(alloc, Config{OnFatal: func(err error) { reported = err }})

	err := testutil.CapturePanic(func() { s.Grow() })
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAllocationFailed)
	assert.ErrorIs(t, err, errInjected)
	assert.Equal(t, err, reported)

	var allocErr *AllocError
	require.ErrorAs(t, err, &allocErr)
	assert.Equal(t, 1, allocErr.Column)

	// Capacity is untouched; the column grown before the failure is still freed
	assert.Equal(t, 0, s.Cap())
	assert.Equal(t, 1, c0.Cap())
	s.Free()
	assert.Equal(t, 1, alloc.frees)
}

func TestStorage_MemoryController(t *testing.T) {
	ctrl := resource.NewController(resource.Config{MemoryLimitBytes: 4 * (4 + 8)})
	s, _, _ := newPair(nil, Config{Controller: ctrl})

	s.Grow() // 1
	s.Grow() // 2
	s.Grow() // 4
	assert.Equal(t, int64(48), ctrl.MemoryUsage())

	err := testutil.CapturePanic(func() { s.Grow() })
	assert.ErrorIs(t, err, ErrAllocationFailed)
	assert.ErrorIs(t, err, resource.ErrMemoryLimitExceeded)
	assert.Equal(t, 4, s.Cap())

	s.Free()
	assert.Equal(t, int64(0), ctrl.MemoryUsage())
}

func TestStorage_FailedGrowReturnsReservation(t *testing.T) {
	ctrl := resource.NewController(resource.Config{})
	alloc := &countingAllocator{failAt: 2}
	s, _, _ := newPair(alloc, Config{Controller: ctrl})

	err := testutil.CapturePanic(func() { s.Grow() })
	require.ErrorIs(t, err, errInjected)
	assert.Equal(t, int64(0), ctrl.MemoryUsage())
	assert.Equal(t, int64(12), ctrl.PeakMemoryUsage())

	s.Free()
	assert.Equal(t, int64(0), ctrl.MemoryUsage())
}

type huge [1 << 20]byte

func TestStorage_CapacityOverflow(t *testing.T) {
	s := New(Config{}, NewColumn[huge](nil), NewColumn[huge](nil))

	// Pretend the storage is already enormous without allocating it.
	s.capacity = mem.MaxAllocBytes >> 20
	err := testutil.CapturePanic(func() { s.Grow() })
	assert.ErrorIs(t, err, ErrCapacityOverflow)
	assert.Equal(t, mem.MaxAllocBytes>>20, s.Cap())
}

func TestStorage_NilSafe(t *testing.T) {
	var s *Storage
	assert.Equal(t, 0, s.Cap())
	assert.Equal(t, int64(0), s.Reserved())
	assert.Equal(t, 0, s.Grows())
	s.Free()
}
