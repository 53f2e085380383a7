package multivec

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting storage metrics.
// Implement this interface to integrate with monitoring systems; the
// metrics/prometheus package provides a Prometheus implementation.
//
// Calls happen synchronously on the goroutine that owns the vector.
type MetricsCollector interface {
	// RecordGrow is called after the column buffers were reallocated.
	// added is the number of bytes the columns grew by.
	RecordGrow(oldCap, newCap int, added int64)

	// RecordFree is called after the column buffers were released.
	// released is the number of bytes they held.
	RecordFree(capacity int, released int64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(int, int, int64) {}
func (NoopMetricsCollector) RecordFree(int, int64)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It may be shared by vectors on different goroutines.
type BasicMetricsCollector struct {
	GrowCount     atomic.Int64
	FreeCount     atomic.Int64
	ReservedBytes atomic.Int64
	PeakBytes     atomic.Int64
	MaxCapacity   atomic.Int64
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(_, newCap int, added int64) {
	b.GrowCount.Add(1)
	cur := b.ReservedBytes.Add(added)
	storeMax(&b.PeakBytes, cur)
	storeMax(&b.MaxCapacity, int64(newCap))
}

// RecordFree implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFree(_ int, released int64) {
	b.FreeCount.Add(1)
	b.ReservedBytes.Add(-released)
}

// GetStats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) GetStats() MetricsStats {
	return MetricsStats{
		GrowCount:     b.GrowCount.Load(),
		FreeCount:     b.FreeCount.Load(),
		ReservedBytes: b.ReservedBytes.Load(),
		PeakBytes:     b.PeakBytes.Load(),
		MaxCapacity:   b.MaxCapacity.Load(),
	}
}

// MetricsStats holds a snapshot of metrics.
type MetricsStats struct {
	GrowCount     int64
	FreeCount     int64
	ReservedBytes int64
	PeakBytes     int64
	MaxCapacity   int64
}

func storeMax(v *atomic.Int64, x int64) {
	for {
		cur := v.Load()
		if x <= cur || v.CompareAndSwap(cur, x) {
			return
		}
	}
}
