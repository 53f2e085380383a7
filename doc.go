// Package multivec provides growable structure-of-arrays vectors.
//
// A VecN stores rows of N independently typed values (2 ≤ N ≤ 6) as N
// separately allocated column buffers that share one length and one
// capacity. Every row operation touches all columns in lockstep, so each
// column can be scanned as a plain contiguous slice.
//
// # Quick Start
//
//	v := multivec.NewVec2[uint64, uint8]()
//	v.Push(multivec.Row2[uint64, uint8]{C0: 24754, C1: 86})
//	v.Insert(0, multivec.Row2[uint64, uint8]{C0: 4, C1: 65})
//
//	ids, tags := v.Cols() // []uint64{4, 24754}, []uint8{65, 86}
//
//	row := v.Remove(1) // {24754 86}
//
// # Columns and Items
//
// Col0..ColN return typed slices that alias the vector's storage. Column,
// Item and ItemMut return a ColumnItem, a sealed union whose variant
// (Item0..Item5) names the column index:
//
//	switch it := v.Item(0, 1).(type) {
//	case multivec.Item1[uint8]:
//	    fmt.Println(it.V)
//	}
//
// # Ownership
//
// Element types may implement Dropper. The vector calls Drop on every value
// it still owns when the value is discarded: Release, Clear, Truncate,
// Retain, RemoveSet and closing a consuming iterator. Values handed out by
// Pop, Remove, SwapRemove, Next and NextBack belong to the caller.
//
// IntoIter moves all rows into a double-ended iterator and leaves the vector
// empty. Close drops whatever was not yielded and frees the buffers:
//
//	it := v.IntoIter()
//	defer it.Close()
//	for row := range it.All() {
//	    ...
//	}
//
// # Memory
//
// By default columns are ordinary Go slices. WithAllocator switches pointer-
// free column types to a byte allocator such as NewOffHeapAllocator, which
// maps anonymous memory outside the Go heap; such vectors must be
// released. WithMemoryController caps the bytes a group of vectors may
// reserve.
//
// Capacity grows by doubling, starting at one row. Growth beyond
// MaxAllocBytes for any column, allocation failure and a refused
// reservation are fatal and panic with errors matching ErrCapacityOverflow,
// ErrAllocationFailed or ErrMemoryLimitExceeded.
//
// # Concurrency
//
// Vectors and iterators carry no locks. Concurrent readers are fine;
// mutation requires exclusive access.
package multivec

//go:generate go run ./cmd/multivecgen -o .
