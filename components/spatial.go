package components

import "math"

// Position represents an entity's world position.
type Position struct {
	X, Y float32
}

// Velocity represents an entity's velocity in units per tick.
type Velocity struct {
	X, Y float32
}

// Speed returns the velocity magnitude.
func (v Velocity) Speed() float32 {
	return Distance(v.X, v.Y, 0, 0)
}

// Bounds is the canvas extent seeds reflect off.
type Bounds struct {
	W, H float32
}

// Clamp pulls pos back inside the bounds. Only used when the canvas is resized.
func (b Bounds) Clamp(pos *Position) {
	pos.X = max(0, min(b.W, pos.X))
	pos.Y = max(0, min(b.H, pos.Y))
}

// Distance returns the Euclidean distance between two points.
func Distance(ax, ay, bx, by float32) float32 {
	dx := float64(ax - bx)
	dy := float64(ay - by)
	return float32(math.Hypot(dx, dy))
}
