// Package game runs the garden in a raylib window.
package game

import (
	"log/slog"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aura/backdrop"
	"github.com/pthm-cable/aura/codex"
	"github.com/pthm-cable/aura/config"
	"github.com/pthm-cable/aura/renderer"
	"github.com/pthm-cable/aura/sim"
	"github.com/pthm-cable/aura/telemetry"
	"github.com/pthm-cable/aura/ui"
)

// Game holds the window frontend state around a simulation.
type Game struct {
	cfg   *config.Config
	state *sim.State
	perf  *telemetry.PerfCollector
	log   *slog.Logger

	// Rendering
	stars *backdrop.Starfield
	surf  *renderer.RaylibSurface

	// UI
	hud        *ui.HUD
	codex      *codex.Codex
	codexPanel *ui.CodexPanel
	overlays   *ui.OverlayRegistry
	controls   *ui.ControlsPanel
	inspector  *ui.Inspector
	perfPanel  *ui.PerfPanel
	toast      toast

	// Frame timing
	frame   *FrameTimings
	acc     time.Duration
	lastLog time.Time

	userPaused bool
	autoPaused bool

	screenWidth, screenHeight float32
}

// NewGame creates the frontend. The raylib window must already be open.
func NewGame(opts Options) *Game {
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
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	state := opts.State
	if state == nil {
		state = sim.New(sim.Options{Config: cfg, Rng: rng, Log: log})
	}

	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())

	g := &Game{
		cfg:   cfg,
		state: state,
		perf:  opts.Perf,
		log:   log,

		stars: backdrop.New(cfg.Starfield, cfg.Screen.TargetFPS, w, h, rng),
		surf:  renderer.NewRaylibSurface(),

		hud:        ui.NewHUD(),
		codex:      codex.New(nil),
		codexPanel: ui.NewCodexPanel(420),
		overlays:   ui.NewOverlayRegistry(),
		controls:   ui.NewControlsPanel(260),
		inspector:  ui.NewInspector(200),
		perfPanel:  ui.NewPerfPanel(16, 120),

		frame:   NewFrameTimings(),
		lastLog: time.Now(),

		screenWidth:  w,
		screenHeight: h,
	}
	state.Enqueue(sim.Resize{W: w, H: h})
	return g
}

// Update handles input and advances the simulation by the time elapsed
// since the last frame, in whole ticks.
func (g *Game) Update() {
	start := time.Now()
	g.handleInput()
	g.handleWindowState()
	g.frame.Record("input", time.Since(start))

	mouse := rl.GetMousePosition()
	g.stars.Update(mouse.X, mouse.Y, g.screenWidth, g.screenHeight)

	start = time.Now()
	steps := g.stepsDue(time.Duration(float64(rl.GetFrameTime()) * float64(time.Second)))
	for i := 0; i < steps; i++ {
		g.state.Step()
	}
	g.frame.Record("step", time.Since(start))

	if g.perf != nil {
		g.perf.RecordFrame()
	}
	g.maybeLogFrameStats()
}

// stepsDue accumulates frame time and returns how many ticks to run.
func (g *Game) stepsDue(frame time.Duration) int {
	tick := g.cfg.Derived.TickDuration
	if g.state.Paused() {
		g.acc = 0
		return 0
	}
	g.acc += frame
	steps := int(g.acc / tick)
	if steps > maxStepsPerFrame {
		steps = maxStepsPerFrame
		g.acc = 0
		return steps
	}
	g.acc -= time.Duration(steps) * tick
	return steps
}

// Tick returns the simulation tick.
func (g *Game) Tick() uint64 {
	return g.state.Tick()
}

// Unload releases frontend resources. The simulation is left intact.
func (g *Game) Unload() {
	g.codex.Close()
}
