package components

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/aura/surface"
)

// BloomParams configures bloom bursts.
type BloomParams struct {
	Particles int
	LifeDecay float32
	Drag      float32
	Gravity   float32
}

// BloomParticle is one spark of a bloom burst.
type BloomParticle struct {
	X, Y       float32
	VelX, VelY float32
	Life       float32
	Decay      float32
	Size       float32
	Hue        float32
}

// Bloom is the short-lived burst spawned when a seed saturates.
type Bloom struct {
	Life      float32
	LifeDecay float32
	Drag      float32
	Gravity   float32
	Particles []BloomParticle
}

// NewBloom creates a burst at (x, y). Particles share a gold or violet base hue.
func NewBloom(x, y float32, rng *rand.Rand, p BloomParams) Bloom {
	base := float32(45)
	if rng.Float32() >= 0.5 {
		base = 280
	}

	particles := make([]BloomParticle, p.Particles)
	for i := range particles {
		angle := rng.Float64() * 2 * math.Pi
		speed := rng.Float64()*2 + 1
		particles[i] = BloomParticle{
			X:     x,
			Y:     y,
			VelX:  float32(math.Cos(angle) * speed),
			VelY:  float32(math.Sin(angle) * speed),
			Life:  1,
			Decay: rng.Float32()*0.01 + 0.005,
			Size:  rng.Float32()*2 + 1,
			Hue:   base + rng.Float32()*20,
		}
	}

	return Bloom{
		Life:      1,
		LifeDecay: p.LifeDecay,
		Drag:      p.Drag,
		Gravity:   p.Gravity,
		Particles: particles,
	}
}

// Update advances the burst by one tick, dropping spent particles in place.
func (b *Bloom) Update() {
	b.Life -= b.LifeDecay

	alive := 0
	for i := range b.Particles {
		p := &b.Particles[i]

		p.X += p.VelX
		p.Y += p.VelY
		p.VelX *= b.Drag
		p.VelY *= b.Drag
		p.VelY += b.Gravity
		p.Life -= p.Decay
		if p.Life <= 0 {
			continue
		}

		b.Particles[alive] = b.Particles[i]
		alive++
	}
	b.Particles = b.Particles[:alive]
}

// Alive reports whether the bloom should stay in the world.
func (b *Bloom) Alive() bool {
	return b.Life > 0 && len(b.Particles) > 0
}

// Draw renders each particle. Particles carry absolute positions so pos is unused.
func (b *Bloom) Draw(dst surface.Surface, _ Position) {
	for i := range b.Particles {
		p := &b.Particles[i]
		dst.Circle(p.X, p.Y, p.Size, surface.HSL(p.Hue, 1, 0.7, p.Life))
	}
}
