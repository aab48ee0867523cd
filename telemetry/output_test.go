package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/aura/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	require.NoError(t, err)
	assert.Nil(t, om)

	// Methods are nil-safe.
	assert.NoError(t, om.WriteTelemetry(WindowStats{}))
	assert.NoError(t, om.WriteUnlock(UnlockRow{}))
	assert.NoError(t, om.Close())
	assert.Empty(t, om.Dir())
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	require.NoError(t, err)

	require.NoError(t, om.WriteConfig(config.Default()))
	require.NoError(t, om.WriteTelemetry(WindowStats{WindowEndTick: 600, Seeds: 5}))
	require.NoError(t, om.WriteTelemetry(WindowStats{WindowEndTick: 1200, Seeds: 4}))
	require.NoError(t, om.WriteUnlock(UnlockRow{Tick: 42, Key: "LYRA", X: 1, Y: 2}))
	require.NoError(t, om.WritePerf(PerfStats{}, 600))
	require.NoError(t, om.Close())

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3, "one header and two rows")
	assert.True(t, strings.HasPrefix(lines[0], "window_end,sim_time,seeds"))
	assert.True(t, strings.HasPrefix(lines[2], "1200,"))

	data, err = os.ReadFile(filepath.Join(dir, "unlocks.csv"))
	require.NoError(t, err)
	assert.Equal(t, "tick,key,x,y\n42,LYRA,1,2\n", string(data))

	_, err = os.Stat(filepath.Join(dir, "config.yaml"))
	assert.NoError(t, err)
}
