package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/aura/components"
)

// SeedSpawn holds the components for one new seed.
type SeedSpawn struct {
	Pos  components.Position
	Vel  components.Velocity
	Seed components.Seed
}

// NewSeedAt builds a seed at pos with a small random drift. Each velocity
// axis is drawn from (rand-0.5)*speed.
func NewSeedAt(rng *rand.Rand, pos components.Position, p components.SeedParams, speed float32) SeedSpawn {
	return SeedSpawn{
		Pos: pos,
		Vel: components.Velocity{
			X: (rng.Float32() - 0.5) * speed,
			Y: (rng.Float32() - 0.5) * speed,
		},
		Seed: components.NewSeed(p, rng.Float32()*2*math.Pi),
	}
}

// RandomSeed builds a seed at a uniformly random position inside b.
func RandomSeed(rng *rand.Rand, b components.Bounds, p components.SeedParams, speed float32) SeedSpawn {
	pos := components.Position{
		X: rng.Float32() * b.W,
		Y: rng.Float32() * b.H,
	}
	return NewSeedAt(rng, pos, p, speed)
}
