package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/pthm-cable/aura/config"
)

// Engine plays tones through the system speaker. Before Init, or when
// disabled, tones still pass the throttle and are counted but make no sound.
type Engine struct {
	mu       sync.Mutex
	rate     beep.SampleRate
	mixer    *beep.Mixer
	throttle *Throttle
	params   ToneParams
	enabled  bool
	playing  bool
	log      *slog.Logger

	played  int
	dropped int
}

// NewEngine creates an engine from the audio config.
func NewEngine(cfg config.AudioConfig, throttle *Throttle, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	if throttle == nil {
		throttle = NewThrottle(time.Duration(cfg.CooldownMs)*time.Millisecond, nil)
	}
	return &Engine{
		rate:     beep.SampleRate(cfg.SampleRate),
		mixer:    &beep.Mixer{},
		throttle: throttle,
		params: ToneParams{
			Attack:       time.Duration(cfg.AttackSec * float64(time.Second)),
			Decay:        time.Duration(cfg.DecaySec * float64(time.Second)),
			OvertoneGain: cfg.OvertoneGain,
		},
		enabled: cfg.Enabled,
		log:     log,
	}
}

// Init opens the speaker and starts the mixer. It is a no-op when audio is
// disabled or already running.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enabled || e.playing {
		return nil
	}
	if err := speaker.Init(e.rate, e.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(e.mixer)
	e.playing = true
	return nil
}

// EmitTone starts a tone unless the cooldown is still running.
func (e *Engine) EmitTone(freq, volume float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.throttle.Allow() {
		e.dropped++
		return
	}
	e.played++
	if !e.playing {
		return
	}

	speaker.Lock()
	e.mixer.Add(NewTone(e.rate, freq, volume, e.params))
	speaker.Unlock()
}

// Counts returns how many tones were played and how many the throttle dropped.
func (e *Engine) Counts() (played, dropped int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.played, e.dropped
}

// Close silences all playing tones.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.playing {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	e.playing = false
	e.log.Debug("audio stopped", "played", e.played, "dropped", e.dropped)
}
