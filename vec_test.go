package multivec

import (
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/multivec/testutil"
)

type pair = Row2[uint64, uint8]

func TestVec2(t *testing.T) {
	t.Run("push then insert at head", func(t *testing.T) {
		v := NewVec2[uint64, uint8]()
		defer v.Release()

		v.Push(pair{C0: 24754, C1: 86})
		assert.Equal(t, 1, v.Len())
		assert.Equal(t, pair{C0: 24754, C1: 86}, v.Row(0))
		assert.Equal(t, []uint64{24754}, v.Col0())
		assert.Equal(t, []uint8{86}, v.Col1())

		v.Insert(0, pair{C0: 4, C1: 65})
		assert.Equal(t, 2, v.Len())
		assert.Equal(t, pair{C0: 4, C1: 65}, v.Row(0))
		assert.Equal(t, pair{C0: 24754, C1: 86}, v.Row(1))
	})

	t.Run("new allocates nothing", func(t *testing.T) {
		v := NewVec2[uint64, uint8]()
		assert.Equal(t, 0, v.Len())
		assert.Equal(t, 0, v.Cap())
		assert.True(t, v.IsEmpty())
		assert.Empty(t, v.Col0())

		_, ok := v.Pop()
		assert.False(t, ok)
		v.Release()
		assert.Equal(t, 0, v.Stats().Grows)
	})

	t.Run("zero value is usable", func(t *testing.T) {
		var v Vec2[int32, float64]
		assert.Equal(t, 0, v.Len())

		v.Push(Row2[int32, float64]{C0: 7, C1: 0.5})
		assert.Equal(t, Row2[int32, float64]{C0: 7, C1: 0.5}, v.Row(0))
		v.Release()
		assert.Equal(t, 0, v.Cap())
	})

	t.Run("push pop inverse", func(t *testing.T) {
		v := FromRows2(pair{C0: 1, C1: 1}, pair{C0: 2, C1: 2})
		defer v.Release()

		r := pair{C0: 99, C1: 9}
		v.Push(r)
		got, ok := v.Pop()
		require.True(t, ok)
		assert.Equal(t, r, got)
		assert.Equal(t, 2, v.Len())
	})

	t.Run("insert remove inverse", func(t *testing.T) {
		for i := 0; i <= 4; i++ {
			v := FromRows2(pair{C0: 10}, pair{C0: 11}, pair{C0: 12}, pair{C0: 13})
			before := slices.Clone(v.Col0())

			r := pair{C0: 500, C1: 5}
			v.Insert(i, r)
			assert.Equal(t, r, v.Row(i))
			assert.Equal(t, r, v.Remove(i))
			assert.Equal(t, before, v.Col0())
			v.Release()
		}
	})

	t.Run("insert at length appends", func(t *testing.T) {
		v := FromRows2(pair{C0: 1})
		defer v.Release()

		v.Insert(1, pair{C0: 2})
		assert.Equal(t, []uint64{1, 2}, v.Col0())
	})

	t.Run("swap remove", func(t *testing.T) {
		v := FromRows2(pair{C0: 1}, pair{C0: 2}, pair{C0: 3})
		defer v.Release()

		assert.Equal(t, pair{C0: 1}, v.SwapRemove(0))
		assert.Equal(t, []uint64{3, 2}, v.Col0())
		assert.Equal(t, pair{C0: 2}, v.SwapRemove(1))
		assert.Equal(t, []uint64{3}, v.Col0())
	})

	t.Run("row mut writes through", func(t *testing.T) {
		v := FromRows2(pair{C0: 1, C1: 2})
		defer v.Release()

		ref := v.RowMut(0)
		*ref.C0 = 10
		*ref.C1 = 20
		assert.Equal(t, pair{C0: 10, C1: 20}, v.Row(0))

		ids, tags := v.Cols()
		ids[0] = 11
		tags[0] = 21
		assert.Equal(t, pair{C0: 11, C1: 21}, v.Row(0))
	})

	t.Run("column views are capped", func(t *testing.T) {
		v := FromRows2(pair{C0: 1}, pair{C0: 2}, pair{C0: 3})
		defer v.Release()

		ids := v.Col0()
		assert.Len(t, ids, 3)
		assert.Equal(t, 3, cap(ids))
	})

	t.Run("truncate and clear keep capacity", func(t *testing.T) {
		v := FromRows2(pair{C0: 1}, pair{C0: 2}, pair{C0: 3})
		defer v.Release()

		v.Truncate(5)
		assert.Equal(t, 3, v.Len())
		v.Truncate(1)
		assert.Equal(t, []uint64{1}, v.Col0())
		v.Clear()
		assert.Equal(t, 0, v.Len())
		assert.Equal(t, 4, v.Cap())
	})

	t.Run("release resets", func(t *testing.T) {
		v := FromRows2(pair{C0: 1}, pair{C0: 2})
		v.Release()
		assert.Equal(t, 0, v.Len())
		assert.Equal(t, 0, v.Cap())

		v.Push(pair{C0: 3})
		assert.Equal(t, []uint64{3}, v.Col0())
		v.Release()
		v.Release()
	})
}

func TestBoundaries(t *testing.T) {
	v := FromRows2(pair{C0: 1}, pair{C0: 2})
	defer v.Release()

	tests := []struct {
		name string
		op   string
		fn   func()
	}{
		{"row at length", "row", func() { v.Row(2) }},
		{"row negative", "row", func() { v.Row(-1) }},
		{"row mut at length", "row mut", func() { v.RowMut(2) }},
		{"remove at length", "remove", func() { v.Remove(2) }},
		{"swap remove at length", "swap remove", func() { v.SwapRemove(2) }},
		{"insert past length", "insert", func() { v.Insert(3, pair{}) }},
		{"insert negative", "insert", func() { v.Insert(-1, pair{}) }},
		{"item row", "item", func() { v.Item(2, 0) }},
		{"item mut row", "item mut", func() { v.ItemMut(5, 1) }},
		{"truncate negative", "truncate", func() { v.Truncate(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := testutil.CapturePanic(tt.fn)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrIndexOutOfBounds)

			var ie *IndexError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, tt.op, ie.Op)
			assert.Equal(t, 2, ie.Len)
		})
	}

	t.Run("column index", func(t *testing.T) {
		for _, fn := range []func(){
			func() { v.Column(2) },
			func() { v.Column(-1) },
			func() { v.Item(0, 2) },
			func() { v.ItemMut(0, 7) },
		} {
			err := testutil.CapturePanic(fn)
			assert.ErrorIs(t, err, ErrColumnOutOfRange)

			var ce *ColumnError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, 2, ce.Columns)
		}
	})

	assert.Equal(t, 2, v.Len())
}

func TestZeroSizedColumn(t *testing.T) {
	err := testutil.CapturePanic(func() { NewVec2[struct{}, int]() })
	assert.ErrorIs(t, err, ErrZeroSized)

	err = testutil.CapturePanic(func() { NewVec3[int, int, [0]byte]() })
	assert.ErrorIs(t, err, ErrZeroSized)
}

func TestOperationSequences(t *testing.T) {
	rng := testutil.NewRNG(4711)

	v := NewVec2[uint64, uint8]()
	defer v.Release()

	var model []pair
	for step := range 5000 {
		r := pair{C0: rng.Uint64(), C1: uint8(step)}
		switch op := rng.Intn(5); {
		case op == 0:
			v.Push(r)
			model = append(model, r)
		case op == 1:
			got, ok := v.Pop()
			if len(model) == 0 {
				assert.False(t, ok)
				continue
			}
			require.True(t, ok)
			assert.Equal(t, model[len(model)-1], got)
			model = model[:len(model)-1]
		case op == 2 || op == 3:
			i := rng.Intn(len(model) + 1)
			v.Insert(i, r)
			model = slices.Insert(model, i, r)
		default:
			if len(model) == 0 {
				continue
			}
			i := rng.Intn(len(model))
			assert.Equal(t, model[i], v.Remove(i))
			model = slices.Delete(model, i, i+1)
		}
		require.Equal(t, len(model), v.Len())
	}

	for i, want := range model {
		require.Equal(t, want, v.Row(i))
	}
}

func TestGrowth(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 17, 1000, 10000} {
		v := NewVec2[uint64, uint8]()
		for i := range n {
			v.Push(pair{C0: uint64(i) * 3, C1: uint8(i)})
		}

		require.Equal(t, n, v.Len())
		assert.GreaterOrEqual(t, v.Cap(), n)
		for i := range n {
			require.Equal(t, pair{C0: uint64(i) * 3, C1: uint8(i)}, v.Row(i))
		}

		ids, tags := v.Cols()
		for i := range n {
			assert.Equal(t, v.Row(i), pair{C0: ids[i], C1: tags[i]})
		}

		st := v.Stats()
		assert.Equal(t, n, st.Len)
		assert.Equal(t, 2, st.Columns)
		assert.Equal(t, int64(st.Cap)*9, st.ReservedBytes)
		v.Release()
	}
}

func TestCapacityDoubles(t *testing.T) {
	v := NewVec2[uint64, uint8]()
	defer v.Release()

	var caps []int
	for i := range 9 {
		v.Push(pair{C0: uint64(i)})
		caps = append(caps, v.Cap())
	}
	assert.Equal(t, []int{1, 2, 4, 4, 8, 8, 8, 8, 16}, caps)
	assert.Equal(t, 5, v.Stats().Grows)
}

func TestExtend(t *testing.T) {
	t.Run("rows", func(t *testing.T) {
		v := Collect2(slices.Values([]pair{{C0: 1}, {C0: 2}}))
		defer v.Release()

		v.ExtendRows(slices.Values([]pair{{C0: 3}}))
		assert.Equal(t, []uint64{1, 2, 3}, v.Col0())
	})

	t.Run("columns truncate to shortest", func(t *testing.T) {
		v := FromColumns2(
			slices.Values([]uint64{1, 2, 3, 4, 5}),
			slices.Values([]uint8{10, 20, 30}),
		)
		defer v.Release()

		assert.Equal(t, 3, v.Len())
		assert.Equal(t, []uint64{1, 2, 3}, v.Col0())
		assert.Equal(t, []uint8{10, 20, 30}, v.Col1())
	})

	t.Run("columns stop pulling", func(t *testing.T) {
		pulled := 0
		long := func(yield func(int) bool) {
			for i := 0; ; i++ {
				pulled++
				if !yield(i) {
					return
				}
			}
		}

		v := NewVec3[int, int, int]()
		defer v.Release()

		v.ExtendColumns(long, slices.Values([]int{1, 2}), long)
		assert.Equal(t, 2, v.Len())
		assert.Equal(t, []int{0, 1}, v.Col0())
		assert.LessOrEqual(t, pulled, 6)
	})

	t.Run("columns drop pulled leftovers", func(t *testing.T) {
		base := testutil.NewTracked()
		tracked := func(n int) iter.Seq[testutil.Tracked] {
			return func(yield func(testutil.Tracked) bool) {
				for i := range n {
					if !yield(base.WithID(i)) {
						return
					}
				}
			}
		}

		v := FromColumns3(tracked(4), tracked(2), slices.Values([]int{1}))
		assert.Equal(t, 1, v.Len())
		v.Release()
		assert.Equal(t, 0, base.Live())
	})

	t.Run("empty source", func(t *testing.T) {
		v := FromColumns2(slices.Values([]uint64(nil)), slices.Values([]uint8{1}))
		assert.True(t, v.IsEmpty())
		assert.Equal(t, 0, v.Cap())
	})
}

func TestAll(t *testing.T) {
	v := FromRows2(pair{C0: 1, C1: 1}, pair{C0: 2, C1: 2}, pair{C0: 3, C1: 3})
	defer v.Release()

	var got []uint64
	for i, row := range v.All() {
		assert.Equal(t, uint64(i+1), row.C0)
		got = append(got, row.C0)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []uint64{1, 2}, got)
	assert.Equal(t, 3, v.Len())
}

func TestRetain(t *testing.T) {
	t.Run("keeps order", func(t *testing.T) {
		v := NewVec2[uint64, uint8]()
		defer v.Release()
		for i := range 20 {
			v.Push(pair{C0: uint64(i), C1: uint8(i)})
		}

		removed := v.Retain(func(r pair) bool { return r.C0%3 == 0 })
		assert.Equal(t, 13, removed)
		assert.Equal(t, []uint64{0, 3, 6, 9, 12, 15, 18}, v.Col0())
		assert.Equal(t, []uint8{0, 3, 6, 9, 12, 15, 18}, v.Col1())
	})

	t.Run("drops victims", func(t *testing.T) {
		base := testutil.NewTracked()
		v := NewVec2[testutil.Tracked, int]()
		for i := range 10 {
			v.Push(Row2[testutil.Tracked, int]{C0: base.WithID(i), C1: i})
		}

		v.Retain(func(r Row2[testutil.Tracked, int]) bool { return r.C1 >= 7 })
		assert.Equal(t, 7, base.TimesDropped())
		assert.Equal(t, []int{7, 8, 9}, v.Col1())

		v.Release()
		assert.Equal(t, 0, base.Live())
	})
}

func TestRemoveSet(t *testing.T) {
	newVec := func() *Vec2[uint64, uint8] {
		v := NewVec2[uint64, uint8]()
		for i := range 8 {
			v.Push(pair{C0: uint64(i)})
		}
		return v
	}

	tests := []struct {
		name    string
		rows    []uint32
		want    []uint64
		removed int
	}{
		{"none", nil, []uint64{0, 1, 2, 3, 4, 5, 6, 7}, 0},
		{"head", []uint32{0}, []uint64{1, 2, 3, 4, 5, 6, 7}, 1},
		{"tail", []uint32{7}, []uint64{0, 1, 2, 3, 4, 5, 6}, 1},
		{"runs", []uint32{1, 2, 5, 6}, []uint64{0, 3, 4, 7}, 4},
		{"all", []uint32{0, 1, 2, 3, 4, 5, 6, 7}, nil, 8},
		{"beyond length ignored", []uint32{3, 8, 100}, []uint64{0, 1, 2, 4, 5, 6, 7}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newVec()
			defer v.Release()

			removed := v.RemoveSet(roaring.BitmapOf(tt.rows...))
			assert.Equal(t, tt.removed, removed)
			if tt.want == nil {
				assert.Empty(t, v.Col0())
			} else {
				assert.Equal(t, tt.want, v.Col0())
			}
		})
	}

	t.Run("nil set", func(t *testing.T) {
		v := newVec()
		defer v.Release()
		assert.Equal(t, 0, v.RemoveSet(nil))
	})
}

func TestDropCompleteness(t *testing.T) {
	type row = Row2[testutil.Tracked, testutil.Tracked]

	fill := func(base testutil.Tracked, n int) *Vec2[testutil.Tracked, testutil.Tracked] {
		v := NewVec2[testutil.Tracked, testutil.Tracked]()
		for i := range n {
			v.Push(row{C0: base.WithID(i), C1: base.WithID(-i)})
		}
		return v
	}

	t.Run("release", func(t *testing.T) {
		base := testutil.NewTracked()
		v := fill(base, 100)
		assert.Equal(t, 200, base.TimesCloned())
		assert.Equal(t, 0, base.TimesDropped())

		v.Release()
		assert.Equal(t, 0, base.Live())
	})

	t.Run("popped values are the caller's", func(t *testing.T) {
		base := testutil.NewTracked()
		v := fill(base, 10)

		r, ok := v.Pop()
		require.True(t, ok)
		r2 := v.Remove(0)
		v.Release()
		assert.Equal(t, 4, base.Live())

		r.C0.Drop()
		r.C1.Drop()
		r2.C0.Drop()
		r2.C1.Drop()
		assert.Equal(t, 0, base.Live())
	})

	t.Run("partial iteration then close", func(t *testing.T) {
		base := testutil.NewTracked()
		it := fill(base, 10).IntoIter()

		for range 3 {
			r, ok := it.Next()
			require.True(t, ok)
			r.C0.Drop()
			r.C1.Drop()
		}
		r, ok := it.NextBack()
		require.True(t, ok)
		r.C0.Drop()
		r.C1.Drop()

		it.Close()
		assert.Equal(t, 0, base.Live())
	})

	t.Run("break out of range loop", func(t *testing.T) {
		base := testutil.NewTracked()
		it := fill(base, 10).IntoIter()

		for r := range it.All() {
			r.C0.Drop()
			r.C1.Drop()
			if r.C0.ID == 4 {
				break
			}
		}
		assert.Equal(t, 0, base.Live())
		assert.Equal(t, 0, it.Len())
	})

	t.Run("truncate and clear", func(t *testing.T) {
		base := testutil.NewTracked()
		v := fill(base, 10)

		v.Truncate(6)
		assert.Equal(t, 8, base.TimesDropped())
		v.Clear()
		assert.Equal(t, 0, base.Live())
		v.Release()
		assert.Equal(t, 0, base.Live())
	})

	t.Run("nil pointer cells", func(t *testing.T) {
		base := testutil.NewTracked()
		live := base.Clone()
		v := NewVec2[*testutil.Tracked, int]()
		v.Push(Row2[*testutil.Tracked, int]{C0: nil, C1: 1})
		v.Push(Row2[*testutil.Tracked, int]{C0: &live, C1: 2})
		v.Push(Row2[*testutil.Tracked, int]{C0: nil, C1: 3})

		require.NoError(t, testutil.CapturePanic(func() { v.Truncate(1) }))
		assert.Equal(t, 1, v.Len())
		assert.Equal(t, 0, base.Live())

		require.NoError(t, testutil.CapturePanic(v.Release))
		assert.Equal(t, 0, v.Len())
	})
}
