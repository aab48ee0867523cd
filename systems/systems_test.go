package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/aura/components"
)

func TestWavefrontHit_Band(t *testing.T) {
	origin := components.Position{X: 100, Y: 100}
	seed := components.Position{X: 110, Y: 100}

	tests := []struct {
		radius float32
		want   bool
	}{
		{0, false},
		{0.5, true},
		{10, true},
		{19.5, true},
		{20, false},
		{25, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, WavefrontHit(origin, tt.radius, seed, 10), "radius %v", tt.radius)
	}
}

func TestWavefrontHit_ScenarioTicks(t *testing.T) {
	origin := components.Position{X: 100, Y: 100}
	seed := components.Position{X: 110, Y: 100}

	var hits []int
	for tick := 1; tick <= 15; tick++ {
		if WavefrontHit(origin, float32(tick)*2, seed, 10) {
			hits = append(hits, tick)
		}
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, hits, "radius 2..18 lies within the band")
}

func TestNoteForEnergy_Clamps(t *testing.T) {
	assert.Equal(t, 0, NoteForEnergy(-1, 5))
	assert.Equal(t, 3, NoteForEnergy(3, 5))
	assert.Equal(t, 4, NoteForEnergy(9, 5))
}

func TestRandomSeed_InsideBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := components.Bounds{W: 300, H: 200}
	params := components.SeedParams{MaxEnergy: 3, Radius: 5, Damping: 0.98, TrailLength: 20}

	for i := 0; i < 100; i++ {
		s := RandomSeed(rng, b, params, 0.2)
		require.True(t, s.Pos.X >= 0 && s.Pos.X <= b.W)
		require.True(t, s.Pos.Y >= 0 && s.Pos.Y <= b.H)
		require.True(t, s.Vel.X >= -0.1 && s.Vel.X <= 0.1)
		assert.Zero(t, s.Seed.Energy)
		assert.Equal(t, 3, s.Seed.MaxEnergy)
	}
}

func TestSchedule_TakeOnce(t *testing.T) {
	s := NewSchedule[string]()
	s.Add(10, "a")
	s.Add(10, "b")
	s.Add(12, "c")
	assert.Equal(t, 3, s.Len())

	assert.Nil(t, s.Take(9))
	assert.Equal(t, []string{"a", "b"}, s.Take(10))
	assert.Nil(t, s.Take(10), "taken values are gone")
	assert.Equal(t, 1, s.Len())

	s.Clear()
	assert.Zero(t, s.Len())
	assert.Nil(t, s.Take(12))
}

func TestRespawnSchedule_Counts(t *testing.T) {
	r := NewRespawnSchedule()
	r.Schedule(120)
	r.Schedule(120)
	r.Schedule(121)

	assert.Equal(t, 3, r.Pending())
	assert.Equal(t, 2, r.Due(120))
	assert.Equal(t, 0, r.Due(120))
	assert.Equal(t, 1, r.Pending())
}

func TestTapClassifier(t *testing.T) {
	t0 := time.Unix(1000, 0)

	tests := []struct {
		name  string
		taps  []tap
		wants []bool
	}{
		{
			name:  "quick close pair",
			taps:  []tap{{0, 0, 0}, {10, 10, 100}},
			wants: []bool{false, true},
		},
		{
			name:  "too slow",
			taps:  []tap{{0, 0, 0}, {0, 0, 300}},
			wants: []bool{false, false},
		},
		{
			name:  "too far",
			taps:  []tap{{0, 0, 0}, {50, 0, 10}},
			wants: []bool{false, false},
		},
		{
			name:  "triple tap starts over",
			taps:  []tap{{0, 0, 0}, {0, 0, 50}, {0, 0, 100}, {0, 0, 150}},
			wants: []bool{false, true, false, true},
		},
		{
			name:  "slow tap becomes new anchor",
			taps:  []tap{{0, 0, 0}, {0, 0, 500}, {0, 0, 600}},
			wants: []bool{false, false, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewTapClassifier(300*time.Millisecond, 50)
			for i, tp := range tt.taps {
				at := t0.Add(time.Duration(tp.ms) * time.Millisecond)
				assert.Equal(t, tt.wants[i], c.Classify(tp.x, tp.y, at), "tap %d", i)
			}
		})
	}
}

type tap struct {
	x, y float64
	ms   int
}
