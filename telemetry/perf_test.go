package telemetry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepClock advances by the queued durations on each call.
type stepClock struct {
	t     time.Time
	steps []time.Duration
}

func (c *stepClock) now() time.Time {
	if len(c.steps) > 0 {
		c.t = c.t.Add(c.steps[0])
		c.steps = c.steps[1:]
	}
	return c.t
}

func TestPerfCollector_PhaseBreakdown(t *testing.T) {
	clock := &stepClock{t: time.Unix(0, 0)}
	pc := NewPerfCollector(10)
	pc.SetClock(clock.now)

	for i := 0; i < 4; i++ {
		// StartTick, StartPhase(hits), StartPhase(blooms), EndTick
		clock.steps = append(clock.steps, 0, 0, 300*time.Microsecond, 100*time.Microsecond)
		pc.StartTick()
		pc.StartPhase(PhaseHits)
		pc.StartPhase(PhaseBlooms)
		pc.EndTick()
	}

	stats := pc.Stats()
	assert.Equal(t, 400*time.Microsecond, stats.AvgTickDuration)
	assert.Equal(t, 300*time.Microsecond, stats.PhaseAvg[PhaseHits])
	assert.InDelta(t, 75.0, stats.PhasePct[PhaseHits], 1e-9)
	assert.InDelta(t, 25.0, stats.PhasePct[PhaseBlooms], 1e-9)
	assert.InDelta(t, 2500.0, stats.TicksPerSecond, 1e-6)

	row := stats.ToCSV(120)
	assert.Equal(t, uint64(120), row.WindowEnd)
	assert.Equal(t, int64(400), row.AvgTickUS)
	assert.InDelta(t, 75.0, row.HitsPct, 1e-9)
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	clock := &stepClock{t: time.Unix(0, 0)}
	pc := NewPerfCollector(3)
	pc.SetClock(clock.now)

	for _, d := range []time.Duration{10, 10, 10, 40, 40, 40} {
		clock.steps = append(clock.steps, 0, d*time.Microsecond)
		pc.StartTick()
		pc.EndTick()
	}

	stats := pc.Stats()
	assert.Equal(t, 40*time.Microsecond, stats.AvgTickDuration, "old samples overwritten")
	assert.Equal(t, 40*time.Microsecond, stats.MinTickDuration)
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	stats := NewPerfCollector(10).Stats()

	assert.Zero(t, stats.AvgTickDuration)
	require.NotNil(t, stats.PhaseAvg)
	require.NotNil(t, stats.PhasePct)
}

func TestPerfCollector_FrameTiming(t *testing.T) {
	clock := &stepClock{t: time.Unix(0, 0), steps: []time.Duration{0, 20 * time.Millisecond}}
	pc := NewPerfCollector(10)
	pc.SetClock(clock.now)

	pc.RecordFrame()
	pc.RecordFrame()

	stats := pc.Stats()
	assert.Equal(t, 20*time.Millisecond, stats.FrameDuration)
	assert.InDelta(t, 50.0, stats.FPS, 1e-9)
}
