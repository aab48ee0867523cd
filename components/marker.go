package components

import (
	"math"

	"github.com/pthm-cable/aura/surface"
)

// MarkerParams configures constellation markers.
type MarkerParams struct {
	FadeRate float32
	Radius   float32
}

// Marker is one star of an unlocked constellation. It fades in and then
// twinkles forever.
type Marker struct {
	Key           string
	Opacity       float32
	FadeRate      float32
	Radius        float32
	TwinkleSpeed  float32
	TwinkleOffset float32
	Phase         float32
}

// NewMarker creates a marker for the constellation key. Restored markers
// start fully visible.
func NewMarker(key string, p MarkerParams, twinkleSpeed, twinkleOffset float32, visible bool) Marker {
	m := Marker{
		Key:           key,
		FadeRate:      p.FadeRate,
		Radius:        p.Radius,
		TwinkleSpeed:  twinkleSpeed,
		TwinkleOffset: twinkleOffset,
	}
	if visible {
		m.Opacity = 1
	}
	return m
}

// Update fades the marker in and advances its twinkle.
func (m *Marker) Update() {
	if m.Opacity < 1 {
		m.Opacity = min(1, m.Opacity+m.FadeRate)
	}
	m.Phase += m.TwinkleSpeed
}

// Twinkle returns the current brightness multiplier in [0.2, 1].
func (m *Marker) Twinkle() float32 {
	return 0.6 + 0.4*float32(math.Sin(float64(m.Phase+m.TwinkleOffset)))
}

// Draw renders the glow, spikes once mostly visible, and core.
func (m *Marker) Draw(dst surface.Surface, pos Position) {
	if m.Opacity <= 0 {
		return
	}
	a := m.Opacity * m.Twinkle()
	pale := surface.Color{R: 220, G: 240, B: 255, A: 255}

	dst.RadialGradient(pos.X, pos.Y, m.Radius*4, pale.Fade(a), pale.Fade(0))
	if m.Opacity > 0.5 {
		spike := m.Radius * 3 * (1 + (m.Twinkle()-0.6)*1.25)
		faint := surface.RGBA(255, 255, 255, a*0.64)
		dst.Line(pos.X-spike, pos.Y, pos.X+spike, pos.Y, 1, faint)
		dst.Line(pos.X, pos.Y-spike, pos.X, pos.Y+spike, 1, faint)
	}
	dst.Circle(pos.X, pos.Y, m.Radius, surface.RGBA(255, 255, 255, a))
}
