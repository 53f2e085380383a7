package multivec

import (
	"fmt"

	"github.com/hupe1980/multivec/internal/rawbuf"
)

// cursor tracks, per column, the half-open range [start, end) of slots a
// consuming iterator still owns.
type cursor struct {
	start []int
	end   []int
}

func newCursor(columns, length int) cursor {
	c := cursor{
		start: make([]int, columns),
		end:   make([]int, columns),
	}
	for i := range c.end {
		c.end[i] = length
	}
	return c
}

// remaining returns the number of rows left. Every column must agree.
func (c *cursor) remaining() int {
	n := c.end[0] - c.start[0]
	for i := 1; i < len(c.start); i++ {
		if m := c.end[i] - c.start[i]; m != n {
			panic(fmt.Errorf("%w: column 0 has %d rows left, column %d has %d", ErrCursorMismatch, n, i, m))
		}
	}
	return n
}

func (c *cursor) advance() {
	for i := range c.start {
		c.start[i]++
	}
}

func (c *cursor) retreat() {
	for i := range c.end {
		c.end[i]--
	}
}

// consumer is the arity-independent part of every IntoIterN. It owns the
// storage handed off by a vector.
type consumer struct {
	store  *rawbuf.Storage
	cols   []rawbuf.Buffer
	cur    cursor
	opts   options
	log    *Logger
	closed bool
}

// Len returns the number of rows not yet yielded.
func (c *consumer) Len() int {
	if c.closed {
		return 0
	}
	return c.cur.remaining()
}

// Close drops every row not yet yielded and frees the column buffers. It is
// idempotent; an iterator drained by All or Backward is already closed.
func (c *consumer) Close() {
	if c.closed {
		return
	}
	c.closed = true

	for c.cur.remaining() > 0 {
		for i, col := range c.cols {
			col.Drop(c.cur.start[i])
		}
		c.cur.advance()
	}

	capacity, reserved := c.store.Cap(), c.store.Reserved()
	c.store.Free()
	if capacity > 0 {
		c.log.LogFree(capacity, reserved)
		c.opts.metricsCollector.RecordFree(capacity, reserved)
	}
}
