package multivec

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/multivec/internal/rawbuf"
)

// table is the arity-independent part of every VecN: the storage, the
// shared length and the operations that treat all columns alike.
type table struct {
	store  *rawbuf.Storage
	cols   []rawbuf.Buffer
	length int
	opts   options
	log    *Logger
}

// Stats is a point-in-time view of a vector's storage.
type Stats struct {
	Len           int
	Cap           int
	Columns       int
	ReservedBytes int64
	Grows         int
}

func newTable(o options, cols ...rawbuf.Buffer) table {
	log := o.logger.WithColumns(len(cols))
	store := rawbuf.New(rawbuf.Config{
		Controller: o.controller,
		OnFatal:    log.LogFatal,
	}, cols...)
	return table{store: store, cols: cols, opts: o, log: log}
}

// Len returns the number of rows.
func (t *table) Len() int { return t.length }

// Cap returns the number of rows the columns can hold without growing.
func (t *table) Cap() int { return t.store.Cap() }

// IsEmpty reports whether the vector holds no rows.
func (t *table) IsEmpty() bool { return t.length == 0 }

// Stats returns a snapshot of the vector's storage.
func (t *table) Stats() Stats {
	return Stats{
		Len:           t.length,
		Cap:           t.store.Cap(),
		Columns:       t.store.Columns(),
		ReservedBytes: t.store.Reserved(),
		Grows:         t.store.Grows(),
	}
}

// reserve makes room for one more row.
func (t *table) reserve() {
	if t.length < t.store.Cap() {
		return
	}
	ev := t.store.Grow()
	t.log.LogGrow(ev.OldCap, ev.NewCap, ev.Reserved)
	t.opts.metricsCollector.RecordGrow(ev.OldCap, ev.NewCap, ev.Added)
}

func (t *table) checkRow(op string, index int) {
	if index < 0 || index >= t.length {
		panic(&IndexError{Op: op, Index: index, Len: t.length})
	}
}

// openGap shifts rows [index, length) one slot toward the tail in every
// column. The caller writes the new row at index and increments length.
func (t *table) openGap(index int) {
	if index < 0 || index > t.length {
		panic(&IndexError{Op: "insert", Index: index, Len: t.length})
	}
	t.reserve()
	for _, c := range t.cols {
		c.Move(index+1, index, t.length-index)
	}
}

// closeGap shifts rows (index, length) one slot toward the head in every
// column after the caller took the row at index.
func (t *table) closeGap(index int) {
	last := t.length - 1
	for _, c := range t.cols {
		c.Move(index, index+1, last-index)
		c.Clear(last)
	}
	t.length--
}

// fillFromLast moves the last row into index after the caller took the row
// at index.
func (t *table) fillFromLast(index int) {
	last := t.length - 1
	for _, c := range t.cols {
		if index != last {
			c.Move(index, last, 1)
		}
		c.Clear(last)
	}
	t.length--
}

// Truncate drops every row at or beyond n, from the back. It does nothing
// if n >= Len. A negative n panics.
func (t *table) Truncate(n int) {
	if n < 0 {
		panic(&IndexError{Op: "truncate", Index: n, Len: t.length})
	}
	for t.length > n {
		t.length--
		for _, c := range t.cols {
			c.Drop(t.length)
		}
	}
}

// Clear drops every row and keeps the allocated capacity.
func (t *table) Clear() { t.Truncate(0) }

// Release drops every row, then frees the column buffers. The vector stays
// usable and starts again from zero capacity.
func (t *table) Release() {
	t.Truncate(0)
	t.free()
}

func (t *table) free() {
	if t.store == nil {
		return
	}
	capacity, reserved := t.store.Cap(), t.store.Reserved()
	t.store.Free()
	if capacity > 0 {
		t.log.LogFree(capacity, reserved)
		t.opts.metricsCollector.RecordFree(capacity, reserved)
	}
}

// RemoveSet drops the rows whose indices are in rows and compacts the
// survivors in a single pass, preserving their order. Indices at or beyond
// Len are ignored. It returns the number of rows removed.
func (t *table) RemoveSet(rows *roaring.Bitmap) int {
	if rows == nil || t.length == 0 {
		return 0
	}

	write, read, removed := 0, 0, 0
	it := rows.Iterator()
	for it.HasNext() {
		v := uint64(it.Next())
		if v >= uint64(t.length) {
			break
		}
		victim := int(v)
		t.moveRows(write, read, victim-read)
		write += victim - read
		for _, c := range t.cols {
			c.Drop(victim)
		}
		read = victim + 1
		removed++
	}
	if removed == 0 {
		return 0
	}

	t.moveRows(write, read, t.length-read)
	for i := t.length - removed; i < t.length; i++ {
		for _, c := range t.cols {
			c.Clear(i)
		}
	}
	t.length -= removed
	return removed
}

func (t *table) moveRows(dst, src, n int) {
	if dst == src || n == 0 {
		return
	}
	for _, c := range t.cols {
		c.Move(dst, src, n)
	}
}

// handOff moves the storage and its live rows into a consumer. The caller
// re-initialises the vector afterwards.
func (t *table) handOff() consumer {
	c := consumer{
		store: t.store,
		cols:  t.cols,
		cur:   newCursor(len(t.cols), t.length),
		opts:  t.opts,
		log:   t.log,
	}
	t.store = nil
	t.cols = nil
	t.length = 0
	return c
}
