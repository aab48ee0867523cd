package sim

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aura/components"
	"github.com/pthm-cable/aura/systems"
	"github.com/pthm-cable/aura/telemetry"
)

type wavefront struct {
	origin components.Position
	radius float32
}

// resolveHits tests every ripple against every seed. Both lists are
// snapshotted first so blooms can remove seeds mid-pass; later ripples skip
// seeds that are gone. A seed is nudged on every tick the band holds.
func (s *State) resolveHits() {
	var fronts []wavefront
	rq := s.rippleFilter.Query()
	for rq.Next() {
		pos, ripple := rq.Get()
		fronts = append(fronts, wavefront{origin: *pos, radius: ripple.Radius})
	}
	if len(fronts) == 0 {
		return
	}

	var seeds []ecs.Entity
	sq := s.seedFilter.Query()
	for sq.Next() {
		seeds = append(seeds, sq.Entity())
	}

	band := float32(s.cfg.Hits.Band)
	for _, front := range fronts {
		for _, e := range seeds {
			if !s.world.Alive(e) {
				continue
			}
			if !systems.WavefrontHit(front.origin, front.radius, *s.posMap.Get(e), band) {
				continue
			}
			s.hit(e, front)
		}
	}
}

// hit applies one wavefront hit: nudge, tone, note, constellation check and
// bloom when the seed saturates.
func (s *State) hit(e ecs.Entity, front wavefront) {
	pos := s.posMap.Get(e)
	vel := s.velMap.Get(e)
	seed := s.seedMap.Get(e)

	seed.Nudge(*pos, vel, front.origin.X, front.origin.Y, float32(s.cfg.Seeds.Impulse))
	s.record(telemetry.EventHit)

	// Copy out before any entity is created or removed.
	at := *pos
	energy := seed.Energy
	saturated := seed.Saturated()

	scale := s.cfg.Audio.Scale
	s.emitTone(scale[systems.NoteForEnergy(energy, len(scale))], s.cfg.Audio.HitVolume)

	s.notes.Push(energy)
	if key, ok := s.catalog.CheckSequence(s.notes.Values()); ok {
		s.unlock(key, at)
		s.notes.Clear()
	}

	if saturated {
		s.spawnBloom(at)
		s.world.RemoveEntity(e)
		s.respawns.Schedule(s.tick + max(s.cfg.Derived.RespawnDelayTicks, 1))
	}
}

func (s *State) unlock(key string, at components.Position) {
	rec, added := s.progress.RecordUnlock(key, float64(at.X), float64(at.Y))
	if !added {
		return
	}
	s.spawnMarkers(key, rec.X, rec.Y, false)
	s.record(telemetry.EventUnlock)

	row := telemetry.UnlockRow{Tick: s.tick, Key: key, X: rec.X, Y: rec.Y}
	if err := s.output.WriteUnlock(row); err != nil {
		s.log.Error("failed to write unlock", "key", key, "error", err)
	}
}
