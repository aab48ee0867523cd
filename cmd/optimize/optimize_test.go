package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/aura/components"
	"github.com/pthm-cable/aura/config"
	"github.com/pthm-cable/aura/sim"
)

func TestParamVectorNormalizeRoundTrip(t *testing.T) {
	pv := NewParamVector()
	def := pv.DefaultVector()

	back := pv.Denormalize(pv.Normalize(def))
	for i := range def {
		assert.InDelta(t, def[i], back[i], 1e-9, pv.Specs[i].Name)
	}
}

func TestDefaultsMatchConfig(t *testing.T) {
	pv := NewParamVector()
	assert.Equal(t, pv.DefaultVector(), pv.ExtractFromConfig(config.Default()))
}

func TestApplyToConfigClamps(t *testing.T) {
	pv := NewParamVector()
	cfg := config.Default()

	values := pv.DefaultVector()
	values[4] = 100 // ripple speed far above its bound
	require.NoError(t, pv.ApplyToConfig(cfg, values))

	assert.Equal(t, 4.0, cfg.Ripples.Normal.Speed)
	assert.Equal(t, 45, cfg.Derived.NormalLifetime, "derived lifetime follows the new speed")
}

func TestPlayerTapLandsNearSeed(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seeds := []sim.SeedView{{Pos: components.Position{X: 500, Y: 400}}}

	for i := 0; i < 50; i++ {
		x, y := playerTap(seeds, rng)
		assert.LessOrEqual(t, components.Distance(x, y, 500, 400), float32(tapSpread)+0.01)
	}

	x, y := playerTap(nil, rng)
	assert.True(t, x >= 0 && x <= gardenW && y >= 0 && y <= gardenH)
}

func TestEvaluateShortRun(t *testing.T) {
	pv := NewParamVector()
	fe := NewFitnessEvaluator(pv, 600, []int64{1, 2}, config.Default(), 4)

	fitness := fe.Evaluate(pv.DefaultVector())

	res := fe.LastResult()
	assert.Positive(t, res.hits, "scripted taps near seeds produce hits")
	assert.InDelta(t, 10.0/60, res.minutes, 1e-9)
	assert.False(t, fitness > 1e6)
}
