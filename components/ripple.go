package components

import (
	"math"

	"github.com/pthm-cable/aura/surface"
)

// RippleParams configures one ripple kind.
type RippleParams struct {
	MaxRadius float32
	Speed     float32
	Opacity   float32
	LineWidth float32
}

// Ripple is an expanding ring created by a tap. Its radius grows by Speed
// every tick and its opacity falls linearly, reaching zero after Lifetime
// ticks (ceil(MaxRadius/Speed)).
type Ripple struct {
	Pulse bool // double-tap pulse

	Age      int
	Lifetime int

	Speed          float32
	MaxRadius      float32
	Radius         float32
	Opacity        float32
	InitialOpacity float32
	LineWidth      float32
}

// NewRipple creates a ripple at radius zero.
func NewRipple(pulse bool, p RippleParams) Ripple {
	// float32 inputs like 1.8 are slightly below their decimal value; the
	// epsilon keeps ceil(180/1.8) at 100.
	lifetime := int(math.Ceil(float64(p.MaxRadius)/float64(p.Speed) - 1e-4))
	if lifetime < 1 {
		lifetime = 1
	}
	return Ripple{
		Pulse:          pulse,
		Lifetime:       lifetime,
		Speed:          p.Speed,
		MaxRadius:      p.MaxRadius,
		Opacity:        p.Opacity,
		InitialOpacity: p.Opacity,
		LineWidth:      p.LineWidth,
	}
}

// Update advances the ripple by one tick.
func (r *Ripple) Update() {
	r.Age++
	r.Radius = float32(r.Age) * r.Speed
	if r.Age >= r.Lifetime {
		r.Opacity = 0
		return
	}
	r.Opacity = r.InitialOpacity * (1 - float32(r.Age)/float32(r.Lifetime))
}

// Alive reports whether the ripple is still visible.
func (r *Ripple) Alive() bool {
	return r.Opacity > 0
}

const (
	dashLen = 5
	gapLen  = 15
)

// Draw renders the wavefront. Pulses are dashed, normal ripples get a faint inner ring.
func (r *Ripple) Draw(dst surface.Surface, pos Position) {
	if r.Radius <= 0 || !r.Alive() {
		return
	}
	white := surface.RGBA(255, 255, 255, r.Opacity)

	if !r.Pulse {
		dst.Ring(pos.X, pos.Y, r.Radius, r.LineWidth, white)
		dst.Ring(pos.X, pos.Y, r.Radius*0.9, 1, surface.RGBA(255, 255, 255, r.Opacity*0.5))
		return
	}

	circumference := 2 * math.Pi * float64(r.Radius)
	step := (dashLen + gapLen) / circumference * 2 * math.Pi
	dash := dashLen / circumference * 2 * math.Pi
	for a := 0.0; a < 2*math.Pi; a += step {
		x1 := pos.X + r.Radius*float32(math.Cos(a))
		y1 := pos.Y + r.Radius*float32(math.Sin(a))
		x2 := pos.X + r.Radius*float32(math.Cos(a+dash))
		y2 := pos.Y + r.Radius*float32(math.Sin(a+dash))
		dst.Line(x1, y1, x2, y2, r.LineWidth, white)
	}
}
