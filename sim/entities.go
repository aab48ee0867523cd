package sim

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aura/components"
	"github.com/pthm-cable/aura/surface"
	"github.com/pthm-cable/aura/systems"
)

// SeedView is a copy of one seed's components.
type SeedView struct {
	Pos  components.Position
	Vel  components.Velocity
	Seed components.Seed
}

// RippleView is a copy of one ripple's components.
type RippleView struct {
	Pos    components.Position
	Ripple components.Ripple
}

// BloomView is a copy of one bloom's components.
type BloomView struct {
	Pos   components.Position
	Bloom components.Bloom
}

// MarkerView is a copy of one constellation marker's components.
type MarkerView struct {
	Pos    components.Position
	Marker components.Marker
}

// SpawnSeedAt adds a seed at (x, y) with the given velocity.
func (s *State) SpawnSeedAt(x, y float32, vel components.Velocity) ecs.Entity {
	sp := systems.NewSeedAt(s.rng, components.Position{X: x, Y: y}, s.seedParams, 0)
	sp.Vel = vel
	return s.seedMapper.NewEntity(&sp.Pos, &sp.Vel, &sp.Seed)
}

// SpawnRipple adds a ripple at (x, y) without a tone or garden initialization.
func (s *State) SpawnRipple(x, y float32, pulse bool) ecs.Entity {
	params := s.normalRipple
	if pulse {
		params = s.pulseRipple
	}
	pos := components.Position{X: x, Y: y}
	ripple := components.NewRipple(pulse, params)
	return s.rippleMapper.NewEntity(&pos, &ripple)
}

// SpawnRippleWithSpeed adds a normal ripple with a custom expansion speed.
func (s *State) SpawnRippleWithSpeed(x, y, speed float32) ecs.Entity {
	params := s.normalRipple
	params.Speed = speed
	pos := components.Position{X: x, Y: y}
	ripple := components.NewRipple(false, params)
	return s.rippleMapper.NewEntity(&pos, &ripple)
}

// spawnMarkers adds the stars of constellation key anchored at (x, y).
func (s *State) spawnMarkers(key string, x, y float64, visible bool) {
	tickMs := float32(s.cfg.Derived.TickDuration.Seconds() * 1000)
	for _, pt := range s.catalog.Placements(key, x, y) {
		speed := (s.rng.Float32()*0.01 + 0.005) * tickMs
		offset := s.rng.Float32() * math.Pi
		pos := components.Position{X: float32(pt.X), Y: float32(pt.Y)}
		marker := components.NewMarker(key, s.markerParams, speed, offset, visible)
		s.markerMapper.NewEntity(&pos, &marker)
	}
}

// Seeds returns copies of all live seeds.
func (s *State) Seeds() []SeedView {
	var out []SeedView
	query := s.seedFilter.Query()
	for query.Next() {
		pos, vel, seed := query.Get()
		out = append(out, SeedView{Pos: *pos, Vel: *vel, Seed: *seed})
	}
	return out
}

// Ripples returns copies of all live ripples.
func (s *State) Ripples() []RippleView {
	var out []RippleView
	query := s.rippleFilter.Query()
	for query.Next() {
		pos, ripple := query.Get()
		out = append(out, RippleView{Pos: *pos, Ripple: *ripple})
	}
	return out
}

// Blooms returns copies of all live blooms.
func (s *State) Blooms() []BloomView {
	var out []BloomView
	query := s.bloomFilter.Query()
	for query.Next() {
		pos, bloom := query.Get()
		out = append(out, BloomView{Pos: *pos, Bloom: *bloom})
	}
	return out
}

// Markers returns copies of all constellation markers.
func (s *State) Markers() []MarkerView {
	var out []MarkerView
	query := s.markerFilter.Query()
	for query.Next() {
		pos, marker := query.Get()
		out = append(out, MarkerView{Pos: *pos, Marker: *marker})
	}
	return out
}

// SeedCount returns the number of live seeds.
func (s *State) SeedCount() int {
	n := 0
	query := s.seedFilter.Query()
	for query.Next() {
		n++
	}
	return n
}

// RippleCount returns the number of live ripples.
func (s *State) RippleCount() int {
	n := 0
	query := s.rippleFilter.Query()
	for query.Next() {
		n++
	}
	return n
}

// BloomCount returns the number of live blooms.
func (s *State) BloomCount() int {
	n := 0
	query := s.bloomFilter.Query()
	for query.Next() {
		n++
	}
	return n
}

// PendingRespawns returns the number of seeds waiting to be replaced.
func (s *State) PendingRespawns() int { return s.respawns.Pending() }

// Notes returns the recent note buffer, oldest first.
func (s *State) Notes() []int { return s.notes.Values() }

// Draw renders the garden: seeds, constellation markers, ripples, blooms.
func (s *State) Draw(dst surface.Surface) {
	sq := s.seedFilter.Query()
	for sq.Next() {
		pos, _, seed := sq.Get()
		seed.Draw(dst, *pos)
	}

	mq := s.markerFilter.Query()
	for mq.Next() {
		pos, marker := mq.Get()
		marker.Draw(dst, *pos)
	}

	rq := s.rippleFilter.Query()
	for rq.Next() {
		pos, ripple := rq.Get()
		ripple.Draw(dst, *pos)
	}

	bq := s.bloomFilter.Query()
	for bq.Next() {
		pos, bloom := bq.Get()
		bloom.Draw(dst, *pos)
	}
}
