// Package resource implements a memory budget shared by column storages.
//
// A Controller tracks the bytes reserved by every storage attached to it and
// optionally enforces a hard limit:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB limit
//	})
//
//	// Non-blocking acquire (returns error immediately if limit exceeded)
//	if err := rc.AcquireMemory(1024*1024); err != nil {
//	    // ErrMemoryLimitExceeded
//	}
//	defer rc.ReleaseMemory(1024*1024)
//
// Memory tracking uses a weighted semaphore for the hard limit and atomic
// counters for usage tracking.
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use, so one Controller may
// govern containers owned by different goroutines.
//
// # Nil Safety
//
// All methods handle nil Controller gracefully - they become no-ops.
// This allows optional resource limiting without nil checks everywhere.
package resource
