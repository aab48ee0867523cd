package sim

import (
	"time"

	"github.com/pthm-cable/aura/components"
	"github.com/pthm-cable/aura/systems"
	"github.com/pthm-cable/aura/telemetry"
)

// Command is an input event queued for the next tick.
type Command interface {
	apply(s *State)
}

// Interact is a classified tap: a ripple at (X, Y), a pulse when DoubleTap.
type Interact struct {
	X, Y      float32
	DoubleTap bool
}

// Tap is a raw tap that the simulation classifies as single or double.
type Tap struct {
	X, Y float32
	At   time.Time
}

// Resize changes the canvas bounds and pulls seeds back inside.
type Resize struct {
	W, H float32
}

// Enqueue queues cmd for the start of the next tick.
func (s *State) Enqueue(cmd Command) {
	s.commands = append(s.commands, cmd)
}

// Pending returns the number of queued commands.
func (s *State) Pending() int { return len(s.commands) }

func (s *State) drainCommands() {
	if len(s.commands) == 0 {
		return
	}
	cmds := s.commands
	s.commands = nil
	for _, cmd := range cmds {
		cmd.apply(s)
	}
}

func (c Interact) apply(s *State) {
	s.interact(c.X, c.Y, c.DoubleTap)
}

func (c Tap) apply(s *State) {
	double := s.taps.Classify(float64(c.X), float64(c.Y), c.At)
	s.interact(c.X, c.Y, double)
}

func (c Resize) apply(s *State) {
	if c.W <= 0 || c.H <= 0 {
		return
	}
	s.bounds = components.Bounds{W: c.W, H: c.H}

	query := s.seedFilter.Query()
	for query.Next() {
		pos, _, _ := query.Get()
		s.bounds.Clamp(pos)
	}
}

// interact seeds the garden on first use, then spawns a ripple and its tone.
func (s *State) interact(x, y float32, double bool) {
	if !s.initialized {
		s.initialized = true
		for i := 0; i < s.cfg.Seeds.Initial; i++ {
			s.spawnRandomSeed()
		}
		s.log.Debug("garden initialized", "seeds", s.cfg.Seeds.Initial, "tick", s.tick)
	}

	s.SpawnRipple(x, y, double)

	audio := s.cfg.Audio
	if double {
		s.emitTone(audio.Scale[0]/2, audio.PulseVolume)
		s.record(telemetry.EventPulse)
	} else {
		s.emitTone(audio.Scale[1], audio.TapVolume)
		s.record(telemetry.EventRipple)
	}
}

func (s *State) spawnRandomSeed() {
	sp := systems.RandomSeed(s.rng, s.bounds, s.seedParams, float32(s.cfg.Seeds.InitialSpeed))
	s.seedMapper.NewEntity(&sp.Pos, &sp.Vel, &sp.Seed)
}
