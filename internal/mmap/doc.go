// Package mmap provides anonymous memory mappings for off-heap buffers.
//
// An anonymous mapping is a zeroed read-write region obtained directly from
// the operating system: mmap(2) with MAP_ANON on Unix, VirtualAlloc on
// Windows. It lives outside the Go heap, so the garbage collector neither
// scans nor frees it. Only pointer-free data may be stored in it, and the
// owner must call Close.
//
//	m, err := mmap.MapAnon(1 << 20)
//	if err != nil { ... }
//	defer m.Close()
//
//	buf := m.Bytes()
package mmap
