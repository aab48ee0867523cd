package systems

import (
	"math"
	"time"
)

// TapClassifier turns raw taps into single taps and double taps. A tap is a
// double tap when it lands strictly within Delay and Radius of the previous
// single tap. A double tap consumes the pair, so a third quick tap starts
// over as a single.
type TapClassifier struct {
	Delay  time.Duration
	Radius float64

	last       time.Time
	lastX      float64
	lastY      float64
	hasPending bool
}

// NewTapClassifier creates a classifier with the given thresholds.
func NewTapClassifier(delay time.Duration, radius float64) *TapClassifier {
	return &TapClassifier{Delay: delay, Radius: radius}
}

// Classify records a tap at (x, y) and reports whether it completes a double tap.
func (c *TapClassifier) Classify(x, y float64, at time.Time) bool {
	if c.hasPending {
		elapsed := at.Sub(c.last)
		dist := math.Hypot(x-c.lastX, y-c.lastY)
		if elapsed >= 0 && elapsed < c.Delay && dist < c.Radius {
			c.hasPending = false
			return true
		}
	}

	c.last = at
	c.lastX = x
	c.lastY = y
	c.hasPending = true
	return false
}

// Reset forgets the previous tap.
func (c *TapClassifier) Reset() {
	c.hasPending = false
}
