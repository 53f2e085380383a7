package testutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(4711)
	b := NewRNG(4711)

	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	assert.Equal(t, int64(4711), a.Seed())

	first := a.Uint64()
	a.Reset()
	for i := 0; i < 16; i++ {
		a.Intn(1000)
	}
	assert.Equal(t, first, a.Uint64())

	assert.Len(t, a.Bytes(12), 12)
	f := a.Float32()
	assert.GreaterOrEqual(t, f, float32(0))
	assert.Less(t, f, float32(1))
}

func TestTracked(t *testing.T) {
	tr := NewTracked()

	c1 := tr.Clone()
	c2 := c1.WithID(7)
	assert.Equal(t, 2, tr.TimesCloned())
	assert.Equal(t, 7, c2.ID)
	assert.Equal(t, 2, tr.Live())

	c1.Drop()
	c2.Drop()
	assert.Equal(t, 2, tr.TimesDropped())
	assert.Equal(t, 0, tr.Live())

	other := NewTracked()
	assert.Equal(t, 0, other.TimesCloned())
}

func TestCapturePanic(t *testing.T) {
	sentinel := errors.New("boom")

	assert.NoError(t, CapturePanic(func() {}))
	assert.ErrorIs(t, CapturePanic(func() { panic(sentinel) }), sentinel)

	err := CapturePanic(func() { panic("text") })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text")
}
