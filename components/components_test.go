package components

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/aura/surface"
)

func testSeed() Seed {
	return NewSeed(SeedParams{
		MaxEnergy:   3,
		Radius:      5,
		Damping:     0.98,
		BreathRate:  0.05,
		TrailLength: 20,
	}, 0)
}

func TestSeedNudgeCapsEnergy(t *testing.T) {
	s := testSeed()
	pos := Position{X: 110, Y: 100}
	var vel Velocity

	for i := 0; i < 5; i++ {
		s.Nudge(pos, &vel, 100, 100, 0.5)
	}

	assert.Equal(t, 3, s.Energy)
	assert.Equal(t, 5, s.Hits)
	assert.True(t, s.Saturated())
	assert.InDelta(t, 2.5, vel.X, 1e-5, "five pushes directly along +X")
	assert.InDelta(t, 0, vel.Y, 1e-5)
}

func TestSeedNudgeAtSourceKeepsVelocity(t *testing.T) {
	s := testSeed()
	pos := Position{X: 50, Y: 50}
	vel := Velocity{X: 0.1}

	s.Nudge(pos, &vel, 50, 50, 0.5)

	assert.Equal(t, 1, s.Energy)
	assert.Equal(t, Velocity{X: 0.1}, vel)
}

func TestSeedUpdateDampsAndTrails(t *testing.T) {
	s := testSeed()
	pos := Position{X: 100, Y: 100}
	vel := Velocity{X: 1, Y: -1}
	b := Bounds{W: 800, H: 600}

	for i := 0; i < 30; i++ {
		s.Update(&pos, &vel, b)
	}

	assert.Len(t, s.Trail, 20)
	assert.Equal(t, pos, s.Trail[len(s.Trail)-1])
	assert.Less(t, vel.X, float32(1))
	assert.InDelta(t, 1.5, s.Phase, 1e-4)
}

func TestSeedReflectsOffEdges(t *testing.T) {
	s := testSeed()
	b := Bounds{W: 100, H: 100}

	pos := Position{X: 99.5, Y: 50}
	vel := Velocity{X: 1}
	s.Update(&pos, &vel, b)
	assert.Less(t, vel.X, float32(0), "reflected after crossing the right edge")

	// Past the edge the sign flips whatever the direction, and the seed is
	// not pulled back inside.
	pos = Position{X: -5, Y: 50}
	vel = Velocity{X: 0.3}
	s.Update(&pos, &vel, b)
	assert.InDelta(t, -4.7, pos.X, 1e-5)
	assert.InDelta(t, -0.3*s.Damping, vel.X, 1e-6)

	pos = Position{X: 50, Y: 101}
	vel = Velocity{Y: -0.5}
	s.Update(&pos, &vel, b)
	assert.Greater(t, vel.Y, float32(0))
	assert.Zero(t, vel.X)
}

func TestBoundsClamp(t *testing.T) {
	b := Bounds{W: 200, H: 100}
	pos := Position{X: 350, Y: -10}
	b.Clamp(&pos)
	assert.Equal(t, Position{X: 200, Y: 0}, pos)
}

func TestVelocitySpeed(t *testing.T) {
	assert.InDelta(t, 5, Velocity{X: 3, Y: -4}.Speed(), 1e-6)
	assert.Zero(t, Velocity{}.Speed())
}

func TestRippleLifetime(t *testing.T) {
	tests := []struct {
		name     string
		pulse    bool
		params   RippleParams
		lifetime int
	}{
		{"normal", false, RippleParams{MaxRadius: 180, Speed: 1.8, Opacity: 1, LineWidth: 4}, 100},
		{"pulse", true, RippleParams{MaxRadius: 400, Speed: 1, Opacity: 0.6, LineWidth: 2}, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRipple(tt.pulse, tt.params)
			require.Equal(t, tt.lifetime, r.Lifetime)

			ticks := 0
			prev := r.Opacity
			for r.Alive() {
				r.Update()
				ticks++
				assert.LessOrEqual(t, r.Opacity, prev, "opacity never increases")
				prev = r.Opacity
				require.LessOrEqual(t, ticks, tt.lifetime)
			}
			assert.Equal(t, tt.lifetime, ticks)
			assert.InDelta(t, tt.params.MaxRadius, r.Radius, 0.01)
		})
	}
}

func TestRippleRadiusGrowsBySpeed(t *testing.T) {
	r := NewRipple(false, RippleParams{MaxRadius: 180, Speed: 2, Opacity: 1, LineWidth: 4})
	r.Update()
	assert.Equal(t, float32(2), r.Radius)
	r.Update()
	assert.Equal(t, float32(4), r.Radius)
}

func TestRippleDraw(t *testing.T) {
	var rec surface.Recorder
	pos := Position{X: 10, Y: 10}

	normal := NewRipple(false, RippleParams{MaxRadius: 180, Speed: 10, Opacity: 1, LineWidth: 4})
	normal.Draw(&rec, pos)
	assert.Empty(t, rec.Calls, "zero radius draws nothing")

	normal.Update()
	normal.Draw(&rec, pos)
	assert.Equal(t, 2, rec.Count(surface.OpRing))

	rec.Reset()
	pulse := NewRipple(true, RippleParams{MaxRadius: 400, Speed: 100, Opacity: 0.6, LineWidth: 2})
	pulse.Update()
	pulse.Draw(&rec, pos)
	assert.Greater(t, rec.Count(surface.OpLine), 10, "pulse draws as dashes")
	assert.Zero(t, rec.Count(surface.OpRing))
}

func TestBloomLifecycle(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := NewBloom(50, 50, rng, BloomParams{Particles: 40, LifeDecay: 0.005, Drag: 0.95, Gravity: 0.05})
	require.Len(t, b.Particles, 40)

	gold := b.Particles[0].Hue < 100
	for _, p := range b.Particles {
		if gold {
			assert.True(t, p.Hue >= 45 && p.Hue < 65)
		} else {
			assert.True(t, p.Hue >= 280 && p.Hue < 300)
		}
	}

	ticks := 0
	for b.Alive() {
		b.Update()
		ticks++
		require.Less(t, ticks, 1000)
	}
	assert.LessOrEqual(t, ticks, 201, "bloom life runs out after about 1/0.005 ticks")
}

func TestBloomDraw(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	b := NewBloom(0, 0, rng, BloomParams{Particles: 12, LifeDecay: 0.005, Drag: 0.95, Gravity: 0.05})

	var rec surface.Recorder
	b.Draw(&rec, Position{})
	assert.Equal(t, 12, rec.Count(surface.OpCircle))
}

func TestMarkerFadesIn(t *testing.T) {
	m := NewMarker("LYRA", MarkerParams{FadeRate: 0.25, Radius: 2}, 0.05, 0, false)
	assert.Zero(t, m.Opacity)

	for i := 0; i < 10; i++ {
		m.Update()
	}
	assert.Equal(t, float32(1), m.Opacity)

	restored := NewMarker("ORION", MarkerParams{FadeRate: 0.01, Radius: 2}, 0.05, 0, true)
	assert.Equal(t, float32(1), restored.Opacity)
}

func TestMarkerDrawSpikesOnceVisible(t *testing.T) {
	m := NewMarker("LYRA", MarkerParams{FadeRate: 0.3, Radius: 2}, 0.05, 0, false)
	var rec surface.Recorder

	m.Draw(&rec, Position{})
	assert.Empty(t, rec.Calls, "invisible marker draws nothing")

	m.Update()
	m.Draw(&rec, Position{})
	assert.Zero(t, rec.Count(surface.OpLine))

	m.Update()
	rec.Reset()
	m.Draw(&rec, Position{})
	assert.Equal(t, 2, rec.Count(surface.OpLine))
}

func TestSeedDraw(t *testing.T) {
	s := testSeed()
	pos := Position{X: 10, Y: 10}
	vel := Velocity{X: 1}
	for i := 0; i < 3; i++ {
		s.Update(&pos, &vel, Bounds{W: 100, H: 100})
	}

	var rec surface.Recorder
	s.Draw(&rec, pos)
	assert.Equal(t, 2, rec.Count(surface.OpLine))
	assert.Equal(t, 1, rec.Count(surface.OpGradient))
	assert.Equal(t, 1, rec.Count(surface.OpCircle))
}
