package game

import (
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/aura/config"
	"github.com/pthm-cable/aura/sim"
	"github.com/pthm-cable/aura/telemetry"
)

// maxStepsPerFrame bounds catch-up after a slow frame.
const maxStepsPerFrame = 5

// Options holds configuration for game initialization.
type Options struct {
	Config *config.Config
	State  *sim.State
	Perf   *telemetry.PerfCollector // optional
	Rng    *rand.Rand
	Log    *slog.Logger
}
