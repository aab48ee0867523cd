package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameTimingsAverages(t *testing.T) {
	f := NewFrameTimings()
	f.Record("draw", 2*time.Millisecond)
	f.Record("draw", 4*time.Millisecond)
	f.Record("step", time.Millisecond)

	assert.Equal(t, 3*time.Millisecond, f.Avg("draw"))
	assert.Equal(t, 4*time.Millisecond, f.Total())
	assert.Equal(t, []string{"draw", "step"}, f.Stages())
	assert.Zero(t, f.Avg("missing"))
	assert.Zero(t, f.P95("missing"))
}

func TestFrameTimingsWindow(t *testing.T) {
	f := NewFrameTimings()
	for i := 0; i < 200; i++ {
		f.Record("step", time.Second)
	}
	f.Record("step", 0)

	assert.Equal(t, frameWindow, f.stages["step"].n)
	assert.Equal(t, time.Second*(frameWindow-1)/frameWindow, f.Avg("step"))
	assert.Equal(t, time.Second, f.P95("step"))
}

func TestFrameTimingsStageTieBreak(t *testing.T) {
	f := NewFrameTimings()
	f.Record("step", time.Millisecond)
	f.Record("input", time.Millisecond)
	assert.Equal(t, []string{"input", "step"}, f.Stages())
}
