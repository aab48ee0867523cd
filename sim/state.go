// Package sim runs the garden: an ECS world of seeds, ripples, blooms and
// constellation markers advanced one tick at a time by a single goroutine.
package sim

import (
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aura/components"
	"github.com/pthm-cable/aura/config"
	"github.com/pthm-cable/aura/constellation"
	"github.com/pthm-cable/aura/progress"
	"github.com/pthm-cable/aura/systems"
	"github.com/pthm-cable/aura/telemetry"
)

// ToneEmitter plays a tone. Implementations apply their own rate limiting.
type ToneEmitter interface {
	EmitTone(freqHz, volume float64)
}

type noTones struct{}

func (noTones) EmitTone(float64, float64) {}

// chordNote is a strummed bloom tone waiting for its tick.
type chordNote struct {
	freq   float64
	volume float64
}

// Options configures a State. Zero-valued fields fall back to defaults.
type Options struct {
	Config    *config.Config
	Bounds    components.Bounds
	Rng       *rand.Rand
	Tones     ToneEmitter
	Progress  *progress.Manager
	Collector *telemetry.Collector
	Perf      *telemetry.PerfCollector
	Output    *telemetry.OutputManager
	Log       *slog.Logger
}

// State is the whole simulation. It is owned by one goroutine; nothing in
// it is safe for concurrent use.
type State struct {
	cfg *config.Config
	log *slog.Logger
	rng *rand.Rand

	world *ecs.World

	seedMapper   *ecs.Map3[components.Position, components.Velocity, components.Seed]
	seedFilter   *ecs.Filter3[components.Position, components.Velocity, components.Seed]
	rippleMapper *ecs.Map2[components.Position, components.Ripple]
	rippleFilter *ecs.Filter2[components.Position, components.Ripple]
	bloomMapper  *ecs.Map2[components.Position, components.Bloom]
	bloomFilter  *ecs.Filter2[components.Position, components.Bloom]
	markerMapper *ecs.Map2[components.Position, components.Marker]
	markerFilter *ecs.Filter2[components.Position, components.Marker]

	posMap  *ecs.Map1[components.Position]
	velMap  *ecs.Map1[components.Velocity]
	seedMap *ecs.Map1[components.Seed]

	// Per-kind parameters resolved from config
	seedParams   components.SeedParams
	normalRipple components.RippleParams
	pulseRipple  components.RippleParams
	bloomParams  components.BloomParams
	markerParams components.MarkerParams

	catalog  *constellation.Catalog
	notes    *constellation.Notes
	progress *progress.Manager
	tones    ToneEmitter
	taps     *systems.TapClassifier

	commands []Command
	respawns *systems.RespawnSchedule
	chords   *systems.Schedule[chordNote]

	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager

	bounds      components.Bounds
	tick        uint64
	paused      bool
	initialized bool
}

// New creates an empty garden. Seeds appear on the first interaction.
func New(opts Options) *State {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	rng := opts.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	tones := opts.Tones
	if tones == nil {
		tones = noTones{}
	}
	prog := opts.Progress
	if prog == nil {
		prog = progress.NewManager(constellation.Default(), nil, log)
	}
	bounds := opts.Bounds
	if bounds.W <= 0 || bounds.H <= 0 {
		bounds = components.Bounds{W: float32(cfg.Screen.Width), H: float32(cfg.Screen.Height)}
	}

	world := ecs.NewWorld()

	return &State{
		cfg:   cfg,
		log:   log,
		rng:   rng,
		world: world,

		seedMapper:   ecs.NewMap3[components.Position, components.Velocity, components.Seed](world),
		seedFilter:   ecs.NewFilter3[components.Position, components.Velocity, components.Seed](world),
		rippleMapper: ecs.NewMap2[components.Position, components.Ripple](world),
		rippleFilter: ecs.NewFilter2[components.Position, components.Ripple](world),
		bloomMapper:  ecs.NewMap2[components.Position, components.Bloom](world),
		bloomFilter:  ecs.NewFilter2[components.Position, components.Bloom](world),
		markerMapper: ecs.NewMap2[components.Position, components.Marker](world),
		markerFilter: ecs.NewFilter2[components.Position, components.Marker](world),

		posMap:  ecs.NewMap1[components.Position](world),
		velMap:  ecs.NewMap1[components.Velocity](world),
		seedMap: ecs.NewMap1[components.Seed](world),

		seedParams: components.SeedParams{
			MaxEnergy:   cfg.Seeds.MaxEnergy,
			Radius:      float32(cfg.Seeds.Radius),
			Damping:     float32(cfg.Seeds.Damping),
			BreathRate:  float32(cfg.Seeds.BreathRate),
			TrailLength: cfg.Seeds.TrailLength,
		},
		normalRipple: rippleParams(cfg.Ripples.Normal),
		pulseRipple:  rippleParams(cfg.Ripples.Pulse),
		bloomParams: components.BloomParams{
			Particles: cfg.Bloom.Particles,
			LifeDecay: float32(cfg.Bloom.LifeDecay),
			Drag:      float32(cfg.Bloom.Drag),
			Gravity:   float32(cfg.Bloom.Gravity),
		},
		markerParams: components.MarkerParams{
			FadeRate: float32(cfg.Markers.FadeRate),
			Radius:   float32(cfg.Markers.Radius),
		},

		catalog:  prog.Catalog(),
		notes:    constellation.NewNotes(cfg.Notes.Capacity),
		progress: prog,
		tones:    tones,
		taps:     systems.NewTapClassifier(cfg.Derived.DoubleTapDelay, cfg.Interaction.DoubleTapRadius),

		respawns: systems.NewRespawnSchedule(),
		chords:   systems.NewSchedule[chordNote](),

		collector: opts.Collector,
		perf:      opts.Perf,
		output:    opts.Output,

		bounds: bounds,
	}
}

func rippleParams(c config.RippleConfig) components.RippleParams {
	return components.RippleParams{
		MaxRadius: float32(c.MaxRadius),
		Speed:     float32(c.Speed),
		Opacity:   float32(c.Opacity),
		LineWidth: float32(c.LineWidth),
	}
}

// Pause stops ticks from doing any work. All state is kept.
func (s *State) Pause() { s.paused = true }

// Resume lets ticks run again.
func (s *State) Resume() { s.paused = false }

// Paused reports whether the simulation is paused.
func (s *State) Paused() bool { return s.paused }

// Tick returns the number of ticks run so far.
func (s *State) Tick() uint64 { return s.tick }

// Initialized reports whether the first interaction has seeded the garden.
func (s *State) Initialized() bool { return s.initialized }

// Bounds returns the current canvas bounds.
func (s *State) Bounds() components.Bounds { return s.bounds }

// Progress returns the progress manager.
func (s *State) Progress() *progress.Manager { return s.progress }

// Catalog returns the constellation catalog.
func (s *State) Catalog() *constellation.Catalog { return s.catalog }

func (s *State) record(e telemetry.EventType) {
	if s.collector != nil {
		s.collector.Record(e)
	}
}

func (s *State) emitTone(freq, volume float64) {
	s.tones.EmitTone(freq, volume)
	s.record(telemetry.EventTone)
}
