package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlphaClamps(t *testing.T) {
	tests := []struct {
		name    string
		opacity float32
		want    uint8
	}{
		{"negative", -0.5, 0},
		{"zero", 0, 0},
		{"half", 0.5, 127},
		{"one", 1, 255},
		{"above one", 1.7, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Alpha(tt.opacity))
		})
	}
}

func TestFade(t *testing.T) {
	c := Color{R: 10, G: 20, B: 30, A: 255}
	faded := c.Fade(0.5)

	assert.Equal(t, uint8(127), faded.A)
	assert.Equal(t, c.R, faded.R)
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Circle(1, 2, 3, Color{})
	r.Ring(1, 2, 3, 1, Color{})
	r.Line(0, 0, 5, 5, 1, Color{})
	r.RadialGradient(1, 1, 4, Color{A: 255}, Color{})

	assert.Len(t, r.Calls, 4)
	assert.Equal(t, 1, r.Count(OpCircle))
	assert.Equal(t, 1, r.Count(OpGradient))
	assert.Equal(t, float32(5), r.Calls[2].X2)

	r.Reset()
	assert.Empty(t, r.Calls)
}

func TestHSL(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float32
		want    Color
	}{
		{"red", 0, 1, 0.5, Color{R: 255, G: 0, B: 0, A: 255}},
		{"green", 120, 1, 0.5, Color{R: 0, G: 255, B: 0, A: 255}},
		{"wrapped blue", 600, 1, 0.5, Color{R: 0, G: 0, B: 255, A: 255}},
		{"white", 45, 1, 1, Color{R: 255, G: 255, B: 255, A: 255}},
		{"grey", 200, 0, 0.5, Color{R: 128, G: 128, B: 128, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HSL(tt.h, tt.s, tt.l, 1))
		})
	}
}
