// Package components defines the garden's ECS components: the per-entity
// state of seeds, ripples, blooms, and constellation markers, along with
// their single-tick update rules and draw routines.
package components

import (
	"math"

	"github.com/pthm-cable/aura/surface"
)

// SeedParams configures newly spawned seeds.
type SeedParams struct {
	MaxEnergy   int
	Radius      float32
	Damping     float32
	BreathRate  float32
	TrailLength int
}

// Seed is a drifting light particle that gains energy from ripple hits.
type Seed struct {
	Energy    int
	MaxEnergy int
	Hits      int // nudges received, including ones past the energy cap

	Radius     float32
	Damping    float32
	BreathRate float32
	Phase      float32 // breathing animation phase

	Trail    []Position
	TrailCap int
}

// NewSeed creates a seed with zero energy.
func NewSeed(p SeedParams, phase float32) Seed {
	return Seed{
		MaxEnergy:  p.MaxEnergy,
		Radius:     p.Radius,
		Damping:    p.Damping,
		BreathRate: p.BreathRate,
		Phase:      phase,
		Trail:      make([]Position, 0, p.TrailLength+1),
		TrailCap:   p.TrailLength,
	}
}

// Update advances the seed by one tick: drift, damping, edge reflection, trail.
func (s *Seed) Update(pos *Position, vel *Velocity, b Bounds) {
	pos.X += vel.X
	pos.Y += vel.Y
	vel.X *= s.Damping
	vel.Y *= s.Damping

	// The sign flips on every tick spent past an edge; position is never clamped.
	if pos.X < 0 || pos.X > b.W {
		vel.X = -vel.X
	}
	if pos.Y < 0 || pos.Y > b.H {
		vel.Y = -vel.Y
	}

	if s.TrailCap > 0 {
		s.Trail = append(s.Trail, *pos)
		if len(s.Trail) > s.TrailCap {
			copy(s.Trail, s.Trail[1:])
			s.Trail = s.Trail[:s.TrailCap]
		}
	}

	s.Phase += s.BreathRate
}

// Nudge registers a ripple hit from (srcX, srcY): energy rises by one up to
// MaxEnergy and the seed is pushed away from the source. A seed sitting
// exactly on the source has no direction to move in and keeps its velocity.
func (s *Seed) Nudge(pos Position, vel *Velocity, srcX, srcY, impulse float32) {
	s.Hits++
	if s.Energy < s.MaxEnergy {
		s.Energy++
	}

	dx := float64(pos.X - srcX)
	dy := float64(pos.Y - srcY)
	if dx == 0 && dy == 0 {
		return
	}
	angle := math.Atan2(dy, dx)
	vel.X += float32(math.Cos(angle)) * impulse
	vel.Y += float32(math.Sin(angle)) * impulse
}

// Saturated reports whether the seed has reached its energy cap and must bloom.
func (s *Seed) Saturated() bool {
	return s.Energy >= s.MaxEnergy
}

// Tint returns the seed's glow color for its current energy.
func (s *Seed) Tint() surface.Color {
	e := s.Energy
	return surface.Color{
		R: uint8(min(255, 200+e*15)),
		G: uint8(min(255, 220+e*5)),
		B: 255,
		A: 255,
	}
}

// Draw renders the trail, glow, and core.
func (s *Seed) Draw(dst surface.Surface, pos Position) {
	tint := s.Tint()

	if len(s.Trail) > 1 {
		trail := tint.Fade(0.15)
		for i := 1; i < len(s.Trail); i++ {
			a, b := s.Trail[i-1], s.Trail[i]
			dst.Line(a.X, a.Y, b.X, b.Y, 2, trail)
		}
	}

	breath := float32(math.Sin(float64(s.Phase))) * 2
	display := s.Radius + float32(s.Energy)*2 + breath
	if display < 1 {
		display = 1
	}

	e := float32(s.Energy)
	dst.RadialGradient(pos.X, pos.Y, display*3, tint.Fade(0.8+e*0.05), tint.Fade(0))
	dst.Circle(pos.X, pos.Y, s.Radius*0.6, surface.Color{R: 255, G: 255, B: 255, A: 255})
}
