package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pthm-cable/aura/config"
	"github.com/pthm-cable/aura/sim"
)

func TestStepsDueAccumulatesFrameTime(t *testing.T) {
	g := &Game{cfg: config.Default(), state: sim.New(sim.Options{})}

	assert.Equal(t, 1, g.stepsDue(17*time.Millisecond))
	assert.Equal(t, 0, g.stepsDue(10*time.Millisecond))
	assert.Equal(t, 1, g.stepsDue(10*time.Millisecond))

	// A long stall catches up only a few ticks
	assert.Equal(t, maxStepsPerFrame, g.stepsDue(time.Second))
	assert.Zero(t, g.acc)
}

func TestStepsDueWhilePaused(t *testing.T) {
	g := &Game{cfg: config.Default(), state: sim.New(sim.Options{})}
	g.userPaused = true
	g.syncPause()

	assert.Zero(t, g.stepsDue(time.Second))

	g.userPaused = false
	g.syncPause()
	assert.Equal(t, 1, g.stepsDue(20*time.Millisecond))
}
