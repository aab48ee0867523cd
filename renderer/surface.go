// Package renderer draws the garden through raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aura/surface"
)

// Background is the night sky clear color.
var Background = rl.Color{R: 4, G: 6, B: 18, A: 255}

// RaylibSurface implements surface.Surface on the current raylib frame.
// Calls must happen between rl.BeginDrawing and rl.EndDrawing.
type RaylibSurface struct {
	// RingSegments controls circle outline smoothness.
	RingSegments int32
}

// NewRaylibSurface creates a surface with default ring smoothness.
func NewRaylibSurface() *RaylibSurface {
	return &RaylibSurface{RingSegments: 48}
}

func (s *RaylibSurface) Circle(x, y, radius float32, c surface.Color) {
	if c.A == 0 || radius <= 0 {
		return
	}
	rl.DrawCircleV(rl.Vector2{X: x, Y: y}, radius, toRL(c))
}

func (s *RaylibSurface) Ring(x, y, radius, width float32, c surface.Color) {
	if c.A == 0 || radius <= 0 {
		return
	}
	inner := radius - width/2
	if inner < 0 {
		inner = 0
	}
	rl.DrawRing(rl.Vector2{X: x, Y: y}, inner, radius+width/2, 0, 360, s.RingSegments, toRL(c))
}

func (s *RaylibSurface) Line(x1, y1, x2, y2, width float32, c surface.Color) {
	if c.A == 0 {
		return
	}
	rl.DrawLineEx(rl.Vector2{X: x1, Y: y1}, rl.Vector2{X: x2, Y: y2}, width, toRL(c))
}

func (s *RaylibSurface) RadialGradient(x, y, radius float32, inner, outer surface.Color) {
	if radius <= 0 || (inner.A == 0 && outer.A == 0) {
		return
	}
	rl.DrawCircleGradient(int32(x), int32(y), radius, toRL(inner), toRL(outer))
}

func toRL(c surface.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
