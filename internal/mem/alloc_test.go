//go:build amd64 || arm64

package mem

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocAligned(t *testing.T) {
	sizes := []int{1, 10, 63, 64, 65, 100, 1024}

	for _, size := range sizes {
		buf := AllocAligned(size)
		assert.Len(t, buf, size)
		assert.Equal(t, size, cap(buf))

		ptr := unsafe.Pointer(&buf[0])
		addr := uintptr(ptr)
		assert.Equal(t, uintptr(0), addr%Alignment, "Address %d should be aligned to %d for size %d", addr, Alignment, size)
	}

	assert.Nil(t, AllocAligned(0))
	assert.Nil(t, AllocAligned(-1))
}

func TestAligned(t *testing.T) {
	var a Aligned

	buf, err := a.Alloc(16)
	require.NoError(t, err)
	for i := range buf {
		buf[i] = byte(i)
	}

	grown, err := a.Realloc(buf, 64)
	require.NoError(t, err)
	require.Len(t, grown, 64)
	for i := 0; i < 16; i++ {
		assert.Equal(t, byte(i), grown[i])
	}
	for i := 16; i < 64; i++ {
		assert.Equal(t, byte(0), grown[i])
	}

	assert.NoError(t, a.Free(grown))

	_, err = a.Alloc(MaxAllocBytes + 1)
	assert.ErrorIs(t, err, ErrTooLarge)
	_, err = a.Alloc(-1)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestOffHeap(t *testing.T) {
	o := NewOffHeap()

	t.Run("alloc realloc free", func(t *testing.T) {
		buf, err := o.Alloc(128)
		require.NoError(t, err)
		require.Len(t, buf, 128)
		assert.Equal(t, 1, o.Live())

		copy(buf, "columns")

		grown, err := o.Realloc(buf, 8192)
		require.NoError(t, err)
		require.Len(t, grown, 8192)
		assert.Equal(t, "columns", string(grown[:7]))
		assert.Equal(t, 1, o.Live())

		require.NoError(t, o.Free(grown))
		assert.Equal(t, 0, o.Live())
	})

	t.Run("zero size", func(t *testing.T) {
		buf, err := o.Alloc(0)
		require.NoError(t, err)
		assert.Nil(t, buf)
		assert.NoError(t, o.Free(nil))
		assert.Equal(t, 0, o.Live())
	})

	t.Run("foreign buffer", func(t *testing.T) {
		assert.ErrorIs(t, o.Free(make([]byte, 8)), ErrForeignBuffer)
	})

	t.Run("resliced buffer", func(t *testing.T) {
		buf, err := o.Alloc(64)
		require.NoError(t, err)

		assert.ErrorIs(t, o.Free(buf[:32]), ErrForeignBuffer)
		assert.Equal(t, 1, o.Live())

		require.NoError(t, o.Free(buf))
		assert.Equal(t, 0, o.Live())
	})

	t.Run("too large", func(t *testing.T) {
		_, err := o.Alloc(MaxAllocBytes + 1)
		assert.ErrorIs(t, err, ErrTooLarge)
	})
}

func BenchmarkAllocAligned(b *testing.B) {
	sizes := []int{64, 256, 1024, 4096}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = AllocAligned(size)
			}
		})
	}
}

func BenchmarkOffHeapRealloc(b *testing.B) {
	o := NewOffHeap()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf, _ := o.Alloc(4096)
		buf, _ = o.Realloc(buf, 8192)
		_ = o.Free(buf)
	}
}
