package main

import (
	"io"
	"log/slog"
	"math"
	"math/rand"
	"sync"

	"github.com/pthm-cable/aura/components"
	"github.com/pthm-cable/aura/config"
	"github.com/pthm-cable/aura/sim"
	"github.com/pthm-cable/aura/telemetry"
)

// Scripted player: a tap every tapEvery ticks, landing near a seed so the
// ripple front can reach it.
const (
	tapEvery   = 45
	tapSpread  = 60.0
	gardenW    = 1280
	gardenH    = 800
	unlockGain = 0.1 // fitness bonus per unlock
)

// FitnessEvaluator runs headless gardens and scores them.
type FitnessEvaluator struct {
	params       *ParamVector
	ticks        uint64
	seeds        []int64
	baseConfig   *config.Config
	targetBlooms float64 // blooms per minute

	mu          sync.Mutex
	lastResult  runResult
	bestFitness float64
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, ticks uint64, seeds []int64, baseCfg *config.Config, targetBlooms float64) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:       params,
		ticks:        ticks,
		seeds:        seeds,
		baseConfig:   baseCfg,
		targetBlooms: targetBlooms,
		bestFitness:  math.Inf(1),
	}
}

// runResult holds the event counts from one garden run.
type runResult struct {
	hits    int
	blooms  int
	unlocks int
	minutes float64
}

// BloomsPerMinute returns the bloom rate of the run.
func (r runResult) BloomsPerMinute() float64 {
	if r.minutes == 0 {
		return 0
	}
	return float64(r.blooms) / r.minutes
}

// LastResult returns the averaged counts from the most recent evaluation.
func (fe *FitnessEvaluator) LastResult() runResult {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastResult
}

// Evaluate computes fitness for a raw parameter vector (lower = better):
// the squared relative miss of the bloom-rate target, minus a small bonus
// per unlocked constellation.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	if err := fe.params.ApplyToConfig(cfg, x); err != nil {
		return math.Inf(1)
	}

	results := make([]runResult, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runGarden(cfg, s)
		}(i, seed)
	}
	wg.Wait()

	var avg runResult
	for _, r := range results {
		avg.hits += r.hits
		avg.blooms += r.blooms
		avg.unlocks += r.unlocks
		avg.minutes += r.minutes
	}
	n := len(results)
	avg.hits /= n
	avg.blooms /= n
	avg.unlocks /= n
	avg.minutes /= float64(n)

	miss := (avg.BloomsPerMinute() - fe.targetBlooms) / fe.targetBlooms
	fitness := miss*miss - unlockGain*float64(avg.unlocks)

	fe.mu.Lock()
	fe.lastResult = avg
	if fitness < fe.bestFitness {
		fe.bestFitness = fitness
	}
	fe.mu.Unlock()

	return fitness
}

// runGarden plays one garden with the scripted player.
func (fe *FitnessEvaluator) runGarden(cfg *config.Config, seed int64) runResult {
	rng := rand.New(rand.NewSource(seed))
	collector := telemetry.NewCollector(fe.ticks+1, cfg.Derived.TickDuration)
	state := sim.New(sim.Options{
		Config:    cfg,
		Bounds:    components.Bounds{W: gardenW, H: gardenH},
		Rng:       rand.New(rand.NewSource(seed + 1)),
		Collector: collector,
		Log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	for t := uint64(0); t < fe.ticks; t++ {
		if t%tapEvery == 0 {
			x, y := playerTap(state.Seeds(), rng)
			state.Enqueue(sim.Interact{X: x, Y: y})
		}
		state.Step()
	}

	return runResult{
		hits:    collector.Count(telemetry.EventHit),
		blooms:  collector.Count(telemetry.EventBloom),
		unlocks: collector.Count(telemetry.EventUnlock),
		minutes: float64(fe.ticks) / float64(cfg.Simulation.TicksPerSecond) / 60,
	}
}

// playerTap picks a point near a random seed, or anywhere before the
// garden has seeds.
func playerTap(seeds []sim.SeedView, rng *rand.Rand) (float32, float32) {
	if len(seeds) == 0 {
		return rng.Float32() * gardenW, rng.Float32() * gardenH
	}
	s := seeds[rng.Intn(len(seeds))]
	angle := rng.Float64() * 2 * math.Pi
	r := rng.Float64() * tapSpread
	x := float64(s.Pos.X) + r*math.Cos(angle)
	y := float64(s.Pos.Y) + r*math.Sin(angle)
	return float32(max(0, min(gardenW, x))), float32(max(0, min(gardenH, y)))
}

// copyConfig returns a copy of the base config safe to modify per evaluation.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}
