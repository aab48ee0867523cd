package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeEnergyStats(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   EnergyStats
	}{
		{"empty", nil, EnergyStats{}},
		{"single", []float64{2}, EnergyStats{Mean: 2, P50: 2, P90: 2}},
		{"unsorted", []float64{3, 0, 2, 1}, EnergyStats{Mean: 1.5, Std: 1.2910, P50: 1, P90: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeEnergyStats(tt.values)
			assert.InDelta(t, tt.want.Mean, got.Mean, 1e-3)
			assert.InDelta(t, tt.want.Std, got.Std, 1e-3)
			assert.InDelta(t, tt.want.P50, got.P50, 1e-9)
			assert.InDelta(t, tt.want.P90, got.P90, 1e-9)
		})
	}
}

func TestComputeEnergyStatsLeavesInput(t *testing.T) {
	values := []float64{3, 1, 2}
	ComputeEnergyStats(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(60, time.Second/60)

	c.Record(EventRipple)
	c.Record(EventPulse)
	for i := 0; i < 6; i++ {
		c.Record(EventHit)
	}
	c.Record(EventBloom)
	c.Record(EventUnlock)

	assert.False(t, c.ShouldFlush(59))
	assert.True(t, c.ShouldFlush(60))

	stats := c.Flush(60, Population{Seeds: 4, Unlocked: 1, Energies: []float64{0, 1, 2, 3}})
	assert.Equal(t, uint64(0), stats.WindowStartTick)
	assert.Equal(t, uint64(60), stats.WindowEndTick)
	assert.InDelta(t, 1.0, stats.SimTimeSec, 1e-6)
	assert.Equal(t, 1, stats.Taps)
	assert.Equal(t, 1, stats.Pulses)
	assert.Equal(t, 6, stats.Hits)
	assert.InDelta(t, 3.0, stats.HitsPerRipple, 1e-9)
	assert.Equal(t, 4, stats.Seeds)
	assert.InDelta(t, 1.5, stats.EnergyMean, 1e-9)

	// Counters reset for the next window.
	assert.Zero(t, c.Count(EventHit))
	assert.False(t, c.ShouldFlush(100))
	assert.True(t, c.ShouldFlush(120))
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "bloom", EventBloom.String())
	assert.Equal(t, "unknown", EventType(200).String())
}
