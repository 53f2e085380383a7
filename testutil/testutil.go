package testutil

import (
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Float32 returns a pseudo-random float32 in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// Bytes returns n pseudo-random bytes.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := make([]byte, n)
	_, _ = r.rand.Read(b)
	return b
}

type trackCounts struct {
	clones atomic.Int64
	drops  atomic.Int64
}

// Tracked counts how often it and its clones are cloned and dropped.
// All clones share the counters of the value they came from.
type Tracked struct {
	ID     int
	counts *trackCounts
}

// NewTracked creates a Tracked value with fresh counters.
func NewTracked() Tracked {
	return Tracked{counts: &trackCounts{}}
}

// Clone returns a copy sharing the counters and records the clone.
func (t Tracked) Clone() Tracked {
	t.counts.clones.Add(1)
	return t
}

// WithID returns a clone carrying id.
func (t Tracked) WithID(id int) Tracked {
	c := t.Clone()
	c.ID = id
	return c
}

// Drop records a drop.
func (t Tracked) Drop() {
	t.counts.drops.Add(1)
}

// TimesCloned returns the number of clones made from this family.
func (t Tracked) TimesCloned() int { return int(t.counts.clones.Load()) }

// TimesDropped returns the number of drops recorded for this family.
func (t Tracked) TimesDropped() int { return int(t.counts.drops.Load()) }

// Live returns clones minus drops.
func (t Tracked) Live() int { return t.TimesCloned() - t.TimesDropped() }

// CapturePanic runs fn and returns the value it panicked with as an error.
// It returns nil if fn returned normally.
func CapturePanic(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			err = e
			return
		}
		err = fmt.Errorf("panic: %v", r)
	}()
	fn()
	return nil
}
