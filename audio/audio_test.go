package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/aura/config"
)

func TestToneEnvelope(t *testing.T) {
	rate := beep.SampleRate(1000)
	params := ToneParams{Attack: 20 * time.Millisecond, Decay: 500 * time.Millisecond, OvertoneGain: 0.15}
	s := NewTone(rate, 100, 0.4, params)

	buf := make([][2]float64, 1000)
	n, ok := s.Stream(buf)
	require.True(t, ok)
	assert.Equal(t, 520, n, "attack plus decay samples")
	assert.NoError(t, s.Err())

	for i := 0; i < n; i++ {
		assert.LessOrEqual(t, math.Abs(buf[i][0]), 0.4+1e-9, "sample %d", i)
		assert.Equal(t, buf[i][0], buf[i][1])
	}
	assert.Zero(t, buf[0][0], "attack starts silent")

	n, ok = s.Stream(buf)
	assert.Zero(t, n)
	assert.False(t, ok, "finished tone drains from the mixer")
}

func TestToneDecaysToSilence(t *testing.T) {
	rate := beep.SampleRate(1000)
	tn := NewTone(rate, 50, 1, ToneParams{Attack: 10 * time.Millisecond, Decay: time.Second}).(*tone)

	tn.pos = tn.attack
	assert.InDelta(t, 1.0, tn.envelope(), 1e-9)
	tn.pos = tn.total
	assert.InDelta(t, silence, tn.envelope(), 1e-6)
}

func TestTriangle(t *testing.T) {
	assert.InDelta(t, 1.0, triangle(0), 1e-9)
	assert.InDelta(t, -1.0, triangle(0.5), 1e-9)
	assert.InDelta(t, 0.0, triangle(0.25), 1e-9)
	assert.InDelta(t, 1.0, triangle(3), 1e-9)
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestThrottle(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	th := NewThrottle(20*time.Millisecond, clock.now)

	assert.True(t, th.Allow())
	assert.False(t, th.Allow(), "same instant")

	clock.t = clock.t.Add(19 * time.Millisecond)
	assert.False(t, th.Allow())

	clock.t = clock.t.Add(time.Millisecond)
	assert.True(t, th.Allow(), "cooldown elapsed")

	clock.t = clock.t.Add(5 * time.Millisecond)
	assert.False(t, th.Allow(), "cooldown restarted by the last tone")
}

func TestEngineCountsWithoutSpeaker(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	cfg := config.Default().Audio
	e := NewEngine(cfg, NewThrottle(20*time.Millisecond, clock.now), nil)

	e.EmitTone(261.63, 0.4)
	e.EmitTone(329.63, 0.4)
	clock.t = clock.t.Add(25 * time.Millisecond)
	e.EmitTone(392, 0.4)

	played, dropped := e.Counts()
	assert.Equal(t, 2, played)
	assert.Equal(t, 1, dropped)

	e.Close()
}
