// Package config provides configuration loading and access for the garden.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all garden configuration parameters.
type Config struct {
	Screen      ScreenConfig      `yaml:"screen"`
	Simulation  SimulationConfig  `yaml:"simulation"`
	Seeds       SeedsConfig       `yaml:"seeds"`
	Ripples     RipplesConfig     `yaml:"ripples"`
	Hits        HitsConfig        `yaml:"hits"`
	Notes       NotesConfig       `yaml:"notes"`
	Interaction InteractionConfig `yaml:"interaction"`
	Audio       AudioConfig       `yaml:"audio"`
	Bloom       BloomConfig       `yaml:"bloom"`
	Markers     MarkersConfig     `yaml:"markers"`
	Persistence PersistenceConfig `yaml:"persistence"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`
	Starfield   StarfieldConfig   `yaml:"starfield"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// SimulationConfig holds tick-rate parameters.
type SimulationConfig struct {
	TicksPerSecond int `yaml:"ticks_per_second"`
}

// SeedsConfig holds light seed parameters.
type SeedsConfig struct {
	Initial         int     `yaml:"initial"`           // Seeds spawned on the first interaction
	MaxEnergy       int     `yaml:"max_energy"`        // Energy at which a seed blooms
	Radius          float64 `yaml:"radius"`            // Core radius used for drawing
	InitialSpeed    float64 `yaml:"initial_speed"`     // Spawn velocity range per axis: (rand-0.5)*this
	Damping         float64 `yaml:"damping"`           // Velocity multiplier per tick
	Impulse         float64 `yaml:"impulse"`           // Velocity added by a nudge
	TrailLength     int     `yaml:"trail_length"`      // Trail history capacity
	BreathRate      float64 `yaml:"breath_rate"`       // Breathing phase advance per tick
	RespawnDelaySec float64 `yaml:"respawn_delay_sec"` // Delay before a bloomed seed is replaced
}

// RippleConfig holds the parameters of one ripple kind.
type RippleConfig struct {
	MaxRadius float64 `yaml:"max_radius"`
	Speed     float64 `yaml:"speed"`
	Opacity   float64 `yaml:"opacity"`
	LineWidth float64 `yaml:"line_width"`
}

// RipplesConfig holds normal and double-tap pulse ripple parameters.
type RipplesConfig struct {
	Normal RippleConfig `yaml:"normal"`
	Pulse  RippleConfig `yaml:"pulse"`
}

// HitsConfig holds ripple/seed collision parameters.
type HitsConfig struct {
	Band float64 `yaml:"band"` // |distance - radius| must be below this
}

// NotesConfig holds the rolling note buffer parameters.
type NotesConfig struct {
	Capacity int `yaml:"capacity"`
}

// InteractionConfig holds tap classification thresholds.
type InteractionConfig struct {
	DoubleTapDelayMs int     `yaml:"double_tap_delay_ms"`
	DoubleTapRadius  float64 `yaml:"double_tap_radius"`
}

// AudioConfig holds tone parameters.
type AudioConfig struct {
	Enabled      bool      `yaml:"enabled"`
	CooldownMs   int       `yaml:"cooldown_ms"` // Global minimum interval between tones
	SampleRate   int       `yaml:"sample_rate"`
	Scale        []float64 `yaml:"scale"` // Pentatonic scale indexed by seed energy
	BloomChord   []float64 `yaml:"bloom_chord"`
	StrumMs      int       `yaml:"strum_ms"` // Delay between chord notes
	HitVolume    float64   `yaml:"hit_volume"`
	TapVolume    float64   `yaml:"tap_volume"`
	PulseVolume  float64   `yaml:"pulse_volume"`
	ChordVolume  float64   `yaml:"chord_volume"`
	AttackSec    float64   `yaml:"attack_sec"`
	DecaySec     float64   `yaml:"decay_sec"`
	OvertoneGain float64   `yaml:"overtone_gain"`
}

// BloomConfig holds bloom burst parameters.
type BloomConfig struct {
	Particles int     `yaml:"particles"`
	LifeDecay float64 `yaml:"life_decay"` // Bloom life lost per tick
	Drag      float64 `yaml:"drag"`
	Gravity   float64 `yaml:"gravity"`
}

// MarkersConfig holds constellation marker parameters.
type MarkersConfig struct {
	FadeRate float64 `yaml:"fade_rate"`
	Radius   float64 `yaml:"radius"`
}

// PersistenceConfig holds progress storage parameters.
type PersistenceConfig struct {
	SavePath     string `yaml:"save_path"`      // Empty = user config dir
	ShareBaseURL string `yaml:"share_base_url"` // Prefix for share links
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // Seconds per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// StarfieldConfig holds background star parameters.
type StarfieldConfig struct {
	Count           int     `yaml:"count"`
	ParallaxFactor  float64 `yaml:"parallax_factor"`
	SpringFrequency float64 `yaml:"spring_frequency"`
	SpringDamping   float64 `yaml:"spring_damping"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	RespawnDelayTicks uint64        // Seeds.RespawnDelaySec in ticks
	StrumTicks        uint64        // Audio.StrumMs in ticks
	Cooldown          time.Duration // Audio.CooldownMs
	DoubleTapDelay    time.Duration // Interaction.DoubleTapDelayMs
	NormalLifetime    int           // ceil(max_radius / speed)
	PulseLifetime     int
	TickDuration      time.Duration
	StatsWindowTicks  uint64
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Refresh(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Refresh validates the configuration and recomputes derived values. Call it
// after changing fields in code.
func (c *Config) Refresh() error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.computeDerived()
	return nil
}

// Validate rejects configurations the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Simulation.TicksPerSecond <= 0 {
		errs = append(errs, errors.New("simulation.ticks_per_second must be positive"))
	}
	if c.Seeds.MaxEnergy < 1 {
		errs = append(errs, errors.New("seeds.max_energy must be at least 1"))
	}
	if len(c.Audio.Scale) < 5 {
		errs = append(errs, fmt.Errorf("audio.scale needs at least 5 entries, got %d", len(c.Audio.Scale)))
	}
	if c.Notes.Capacity < 1 {
		errs = append(errs, errors.New("notes.capacity must be at least 1"))
	}
	if c.Ripples.Normal.Speed <= 0 || c.Ripples.Normal.MaxRadius <= 0 {
		errs = append(errs, errors.New("ripples.normal needs positive speed and max_radius"))
	}
	if c.Ripples.Pulse.Speed <= 0 || c.Ripples.Pulse.MaxRadius <= 0 {
		errs = append(errs, errors.New("ripples.pulse needs positive speed and max_radius"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	tps := float64(c.Simulation.TicksPerSecond)

	c.Derived.TickDuration = time.Duration(float64(time.Second) / tps)
	c.Derived.RespawnDelayTicks = uint64(math.Round(c.Seeds.RespawnDelaySec * tps))
	c.Derived.StrumTicks = uint64(math.Round(float64(c.Audio.StrumMs) / 1000 * tps))
	c.Derived.Cooldown = time.Duration(c.Audio.CooldownMs) * time.Millisecond
	c.Derived.DoubleTapDelay = time.Duration(c.Interaction.DoubleTapDelayMs) * time.Millisecond
	c.Derived.NormalLifetime = lifetime(c.Ripples.Normal)
	c.Derived.PulseLifetime = lifetime(c.Ripples.Pulse)

	windowTicks := uint64(c.Telemetry.StatsWindow * tps)
	if windowTicks < 1 {
		windowTicks = 1
	}
	c.Derived.StatsWindowTicks = windowTicks
}

// lifetime is ceil(max_radius / speed) in ticks, tolerant of float error.
func lifetime(r RippleConfig) int {
	return int(math.Ceil(r.MaxRadius/r.Speed - 1e-4))
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
