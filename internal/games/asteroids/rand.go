package asteroids

import (
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Rand is the random source the simulation draws from. *rand.Rand satisfies it.
type Rand interface {
	Float32() float32
	Intn(n int) int
}

// NewRand returns the default source for a seed.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// randRange draws uniformly from [lo, hi).
func randRange(rng Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}

// randDirection draws a unit vector from a box of component ranges,
// redrawing the zero vector.
func randDirection(rng Rand, xlo, xhi, ylo, yhi float32) core.Point {
	for {
		v := core.Point{randRange(rng, xlo, xhi), randRange(rng, ylo, yhi)}
		if v.X() != 0 || v.Y() != 0 {
			return v.Normalize()
		}
	}
}
