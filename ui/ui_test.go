package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/aura/components"
	"github.com/pthm-cable/aura/sim"
)

func TestOverlayDefaults(t *testing.T) {
	reg := NewOverlayRegistry()

	assert.True(t, reg.IsEnabled(OverlayStarfield))
	assert.False(t, reg.IsEnabled(OverlayStats))
	assert.Equal(t, []string{"visual", "debug"}, reg.Categories())
	assert.Len(t, reg.Keys(), len(reg.All()))
}

func TestOverlayKeyToggles(t *testing.T) {
	reg := NewOverlayRegistry()

	id, on, ok := reg.HandleKeyPress(rl.KeyN)
	require.True(t, ok)
	assert.Equal(t, OverlayNotes, id)
	assert.True(t, on)

	_, on, _ = reg.HandleKeyPress(rl.KeyN)
	assert.False(t, on)

	_, _, ok = reg.HandleKeyPress(rl.KeyZ)
	assert.False(t, ok)
}

func TestOverlayExclusive(t *testing.T) {
	reg := NewOverlayRegistry()

	reg.SetEnabled(OverlayPerf, true)
	reg.Toggle(OverlayHelp)

	assert.True(t, reg.IsEnabled(OverlayHelp))
	assert.False(t, reg.IsEnabled(OverlayPerf))
	assert.False(t, reg.Toggle("missing"))
}

func TestPickNearestSeed(t *testing.T) {
	seeds := []sim.SeedView{
		{Pos: components.Position{X: 100, Y: 100}},
		{Pos: components.Position{X: 110, Y: 100}},
		{Pos: components.Position{X: 300, Y: 300}},
	}

	got, ok := Pick(seeds, 108, 100)
	require.True(t, ok)
	assert.Equal(t, float32(110), got.Pos.X)

	_, ok = Pick(seeds, 200, 200)
	assert.False(t, ok)
}

func TestCodexPanelBoundsCentered(t *testing.T) {
	p := NewCodexPanel(400)
	b := p.Bounds(2, 1280, 800)

	assert.Equal(t, float32(440), b.X)
	assert.Equal(t, float32(186), b.Height)
	assert.InDelta(t, 400, b.Y+b.Height/2, 0.01)
}
