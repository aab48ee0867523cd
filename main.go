package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aura/audio"
	"github.com/pthm-cable/aura/components"
	"github.com/pthm-cable/aura/config"
	"github.com/pthm-cable/aura/constellation"
	"github.com/pthm-cable/aura/game"
	"github.com/pthm-cable/aura/progress"
	"github.com/pthm-cable/aura/sim"
	"github.com/pthm-cable/aura/telemetry"
	"github.com/pthm-cable/aura/terminal"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run starts the garden and returns the process exit code. Deferred
// cleanup (CSV output, speaker) always runs before main exits.
func run(args []string) int {
	// CLI flags
	fs := flag.NewFlagSet("aura", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := fs.Bool("headless", false, "Run without graphics or audio")
	useTerminal := fs.Bool("terminal", false, "Run in the terminal instead of a window")
	link := fs.String("link", "", "Share link (or fragment) to open the garden from")
	savePath := fs.String("save", "", "Save file path (empty = config or user config dir)")
	outputDir := fs.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := fs.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := fs.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	logLevel := fs.String("log-level", "info", "Log level: debug, info, warn, error")
	taps := fs.String("taps", "", "Headless scripted taps: x,y[,d]@tick;...")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		level = slog.LevelInfo
	}

	// Set up slog (JSON to stdout for structured logging). The terminal
	// frontend owns stdout, so its logs go to stderr.
	logOut := os.Stdout
	if *useTerminal {
		logOut = os.Stderr
	}
	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}
	cfg := config.Cfg()

	script, err := parseTaps(*taps)
	if err != nil {
		slog.Error("invalid -taps", "error", err)
		return 1
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	store, err := openStore(*savePath, cfg.Persistence.SavePath)
	if err != nil {
		slog.Warn("progress will not be saved", "error", err)
	}
	var saver progress.Saver
	var loader progress.Loader
	if store != nil {
		saver, loader = store, store
	}
	manager := progress.NewManager(constellation.Default(), saver, logger)

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output", "error", err)
		return 1
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Warn("failed to write config snapshot", "error", err)
	}

	var tones sim.ToneEmitter
	if !*headless {
		engine := audio.NewEngine(cfg.Audio, nil, logger)
		if err := engine.Init(); err != nil {
			slog.Warn("audio unavailable", "error", err)
		}
		defer engine.Close()
		tones = engine
	}

	perf := telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)
	state := sim.New(sim.Options{
		Config:    cfg,
		Bounds:    components.Bounds{W: float32(cfg.Screen.Width), H: float32(cfg.Screen.Height)},
		Rng:       rng,
		Tones:     tones,
		Progress:  manager,
		Collector: telemetry.NewCollector(cfg.Derived.StatsWindowTicks, cfg.Derived.TickDuration),
		Perf:      perf,
		Output:    output,
		Log:       logger,
	})

	snap, source := progress.LoadInitial(*link, loader, logger)
	state.Restore(snap)
	if source == progress.SourceLink {
		// The link is consumed: from here on the save file holds the garden.
		if err := manager.Save(); err != nil {
			slog.Error("failed to save linked garden", "error", err)
		}
	}
	slog.Info("starting garden",
		"seed", rngSeed,
		"source", source.String(),
		"constellations", manager.Len(),
		"max_ticks", *maxTicks,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case *headless:
		runHeadless(ctx, state, script, uint64(*maxTicks))
	case *useTerminal:
		if err := runTerminal(ctx, state, cfg, logger, uint64(*maxTicks)); err != nil {
			slog.Error("terminal frontend failed", "error", err)
			return 1
		}
	default:
		runWindow(state, cfg, perf, rng, logger, uint64(*maxTicks))
	}
	return 0
}

// openStore picks the save file: the flag, then the config, then the user
// config dir.
func openStore(flagPath, cfgPath string) (*progress.FileStore, error) {
	path := strings.TrimSpace(flagPath)
	if path == "" {
		path = strings.TrimSpace(cfgPath)
	}
	if path == "" {
		p, err := progress.DefaultSavePath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &progress.FileStore{Path: path}, nil
}

// settleTicks lets the last scripted ripple finish before a headless run
// without -max-ticks stops.
const settleTicks = 600

// runHeadless steps the simulation as fast as possible, feeding scripted taps.
func runHeadless(ctx context.Context, state *sim.State, script []scriptedTap, maxTicks uint64) {
	if maxTicks == 0 && len(script) > 0 {
		maxTicks = script[len(script)-1].Tick + settleTicks
	}
	next := 0
	for ctx.Err() == nil {
		for next < len(script) && script[next].Tick <= state.Tick() {
			state.Enqueue(script[next].Interact)
			next++
		}
		state.Step()

		if maxTicks > 0 && state.Tick() >= maxTicks {
			slog.Info("max ticks reached", "tick", state.Tick(), "constellations", len(state.Unlocked()))
			return
		}
	}
}

func runTerminal(ctx context.Context, state *sim.State, cfg *config.Config, logger *slog.Logger, maxTicks uint64) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	fe := terminal.New(screen, state, terminal.Options{Config: cfg, Log: logger, MaxTicks: maxTicks})
	if err := fe.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runWindow(state *sim.State, cfg *config.Config, perf *telemetry.PerfCollector, rng *rand.Rand, logger *slog.Logger, maxTicks uint64) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	rl.SetExitKey(0)

	g := game.NewGame(game.Options{
		Config: cfg,
		State:  state,
		Perf:   perf,
		Rng:    rng,
		Log:    logger,
	})
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if maxTicks > 0 && g.Tick() >= maxTicks {
			break
		}
	}
}
