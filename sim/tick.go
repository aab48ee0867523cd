package sim

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aura/components"
	"github.com/pthm-cable/aura/telemetry"
)

// Step runs one tick. A paused simulation does nothing.
//
// Order within a tick: queued commands and due respawns, ripples, seeds,
// markers, ripple/seed hits, blooms, due chord notes, then telemetry.
func (s *State) Step() {
	if s.paused {
		return
	}

	if s.perf != nil {
		s.perf.StartTick()
	}

	s.phase(telemetry.PhaseCommands)
	s.drainCommands()
	s.spawnRespawns()

	s.phase(telemetry.PhaseRipples)
	s.updateRipples()

	s.phase(telemetry.PhaseSeeds)
	s.updateSeeds()

	s.phase(telemetry.PhaseMarkers)
	s.updateMarkers()

	s.phase(telemetry.PhaseHits)
	s.resolveHits()

	s.phase(telemetry.PhaseBlooms)
	s.updateBlooms()

	s.phase(telemetry.PhaseAudio)
	s.playChords()

	s.tick++

	s.phase(telemetry.PhaseTelemetry)
	s.flushTelemetry()

	if s.perf != nil {
		s.perf.EndTick()
	}
}

func (s *State) phase(name string) {
	if s.perf != nil {
		s.perf.StartPhase(name)
	}
}

func (s *State) spawnRespawns() {
	n := s.respawns.Due(s.tick)
	for i := 0; i < n; i++ {
		s.spawnRandomSeed()
		s.record(telemetry.EventRespawn)
	}
}

func (s *State) updateRipples() {
	var dead []ecs.Entity

	query := s.rippleFilter.Query()
	for query.Next() {
		_, ripple := query.Get()
		ripple.Update()
		if !ripple.Alive() {
			dead = append(dead, query.Entity())
		}
	}

	for _, e := range dead {
		s.world.RemoveEntity(e)
	}
}

func (s *State) updateSeeds() {
	query := s.seedFilter.Query()
	for query.Next() {
		pos, vel, seed := query.Get()
		seed.Update(pos, vel, s.bounds)
	}
}

func (s *State) updateMarkers() {
	query := s.markerFilter.Query()
	for query.Next() {
		_, marker := query.Get()
		marker.Update()
	}
}

func (s *State) updateBlooms() {
	var dead []ecs.Entity

	query := s.bloomFilter.Query()
	for query.Next() {
		_, bloom := query.Get()
		bloom.Update()
		if !bloom.Alive() {
			dead = append(dead, query.Entity())
		}
	}

	for _, e := range dead {
		s.world.RemoveEntity(e)
	}
}

func (s *State) playChords() {
	for _, n := range s.chords.Take(s.tick) {
		s.emitTone(n.freq, n.volume)
	}
}

func (s *State) flushTelemetry() {
	if s.collector == nil || !s.collector.ShouldFlush(s.tick) {
		return
	}

	seeds := s.Seeds()
	energies := make([]float64, len(seeds))
	for i := range seeds {
		energies[i] = float64(seeds[i].Seed.Energy)
	}

	stats := s.collector.Flush(s.tick, telemetry.Population{
		Seeds:    len(seeds),
		Ripples:  s.RippleCount(),
		Blooms:   s.BloomCount(),
		Unlocked: s.progress.Len(),
		Energies: energies,
	})
	stats.LogStats(s.log)
	if err := s.output.WriteTelemetry(stats); err != nil {
		s.log.Error("failed to write telemetry", "error", err)
	}

	if s.perf != nil {
		perf := s.perf.Stats()
		perf.LogStats(s.log)
		if err := s.output.WritePerf(perf, s.tick); err != nil {
			s.log.Error("failed to write perf", "error", err)
		}
	}
}

// spawnBloom adds a burst at pos and schedules its strummed chord.
func (s *State) spawnBloom(pos components.Position) {
	bloom := components.NewBloom(pos.X, pos.Y, s.rng, s.bloomParams)
	s.bloomMapper.NewEntity(&pos, &bloom)
	s.record(telemetry.EventBloom)

	audio := s.cfg.Audio
	for i, freq := range audio.BloomChord {
		at := s.tick + uint64(i)*s.cfg.Derived.StrumTicks
		s.chords.Add(at, chordNote{freq: freq, volume: audio.ChordVolume})
	}
}
