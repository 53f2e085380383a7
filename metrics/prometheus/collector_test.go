package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/multivec"
)

func TestCollector(t *testing.T) {
	t.Run("records vector lifecycle", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		c, err := New(reg, "test")
		require.NoError(t, err)

		v := multivec.NewVec2[uint64, uint8](multivec.WithMetricsCollector(c))
		for i := range 5 {
			v.Push(multivec.Row2[uint64, uint8]{C0: uint64(i), C1: uint8(i)})
		}

		// 1 -> 2 -> 4 -> 8
		assert.Equal(t, 4.0, promtest.ToFloat64(c.grows))
		assert.Equal(t, float64(8*9), promtest.ToFloat64(c.reservedBytes))
		assert.Equal(t, float64(8*9), promtest.ToFloat64(c.grownBytes))

		v.Release()
		assert.Equal(t, 1.0, promtest.ToFloat64(c.frees))
		assert.Equal(t, 0.0, promtest.ToFloat64(c.reservedBytes))

		n, err := promtest.GatherAndCount(reg)
		require.NoError(t, err)
		assert.Equal(t, 5, n)
	})

	t.Run("nil registerer", func(t *testing.T) {
		c, err := New(nil, "")
		require.NoError(t, err)
		c.RecordGrow(0, 1, 16)
		assert.Equal(t, 16.0, promtest.ToFloat64(c.reservedBytes))
	})

	t.Run("duplicate registration", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		_, err := New(reg, "dup")
		require.NoError(t, err)

		_, err = New(reg, "dup")
		assert.Error(t, err)
		assert.Panics(t, func() { MustNew(reg, "dup") })
	})
}
