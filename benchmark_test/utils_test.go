package benchmark_test

import (
	"github.com/hupe1980/multivec"
	"github.com/hupe1980/multivec/testutil"
)

const benchSeed = 4711

var sizes = []int{1_000, 100_000}

// particle is a typical hot-path column element: a position or a velocity.
type particle struct {
	X, Y, Z float32
}

type particleRow = multivec.Row3[particle, particle, uint32]

func newParticles(n int, opts ...multivec.Option) *multivec.Vec3[particle, particle, uint32] {
	rng := testutil.NewRNG(benchSeed)
	v := multivec.NewVec3[particle, particle, uint32](opts...)
	for j := range n {
		v.Push(particleRow{
			C0: particle{X: rng.Float32(), Y: rng.Float32(), Z: rng.Float32()},
			C1: particle{X: rng.Float32(), Y: rng.Float32(), Z: rng.Float32()},
			C2: uint32(j),
		})
	}
	return v
}
