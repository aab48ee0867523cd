package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Seeds.Initial)
	assert.Equal(t, 3, cfg.Seeds.MaxEnergy)
	assert.Equal(t, 10, cfg.Notes.Capacity)
	assert.Equal(t, 10.0, cfg.Hits.Band)
	assert.Len(t, cfg.Audio.Scale, 5)
	assert.Equal(t, 300, cfg.Interaction.DoubleTapDelayMs)
	assert.Equal(t, 50.0, cfg.Interaction.DoubleTapRadius)
}

func TestDerivedValues(t *testing.T) {
	cfg := Default()

	assert.Equal(t, uint64(120), cfg.Derived.RespawnDelayTicks, "2s at 60 ticks/s")
	assert.Equal(t, uint64(4), cfg.Derived.StrumTicks, "60ms rounds to 4 ticks")
	assert.Equal(t, 20*time.Millisecond, cfg.Derived.Cooldown)
	assert.Equal(t, 300*time.Millisecond, cfg.Derived.DoubleTapDelay)
	assert.Equal(t, 100, cfg.Derived.NormalLifetime, "ceil(180/1.8)")
	assert.Equal(t, 400, cfg.Derived.PulseLifetime, "ceil(400/1.0)")
	assert.Equal(t, uint64(600), cfg.Derived.StatsWindowTicks)
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	overlay := []byte("seeds:\n  initial: 8\nsimulation:\n  ticks_per_second: 30\n")
	require.NoError(t, os.WriteFile(path, overlay, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Seeds.Initial)
	// Fields absent from the overlay keep their defaults
	assert.Equal(t, 3, cfg.Seeds.MaxEnergy)
	assert.Equal(t, uint64(60), cfg.Derived.RespawnDelayTicks)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		overlay string
	}{
		{"short scale", "audio:\n  scale: [100, 200]\n"},
		{"zero tick rate", "simulation:\n  ticks_per_second: 0\n"},
		{"zero ripple speed", "ripples:\n  normal:\n    speed: 0\n"},
		{"empty note buffer", "notes:\n  capacity: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.overlay), 0644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Seeds.Initial = 7
	path := filepath.Join(t.TempDir(), "out.yaml")

	require.NoError(t, cfg.WriteYAML(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, loaded.Seeds.Initial)
	assert.Equal(t, cfg.Audio.Scale, loaded.Audio.Scale)
}

func TestRefreshRecomputesDerived(t *testing.T) {
	cfg := Default()
	cfg.Ripples.Normal.Speed = 3
	require.NoError(t, cfg.Refresh())
	assert.Equal(t, 60, cfg.Derived.NormalLifetime)

	cfg.Notes.Capacity = 0
	assert.Error(t, cfg.Refresh())
}
