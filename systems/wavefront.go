// Package systems provides the per-tick helpers the simulation loop is
// built from: wavefront hit tests, seed spawning, tick-keyed schedules and
// tap classification.
package systems

import "github.com/pthm-cable/aura/components"

// WavefrontHit reports whether a ripple's expanding ring is passing through
// the seed: the seed's distance from the ripple origin is within band of the
// ripple radius. The band is exclusive.
func WavefrontHit(origin components.Position, radius float32, seed components.Position, band float32) bool {
	d := components.Distance(origin.X, origin.Y, seed.X, seed.Y)
	diff := d - radius
	if diff < 0 {
		diff = -diff
	}
	return diff < band
}

// NoteForEnergy returns the scale index a seed's energy plays, clamped to
// the table.
func NoteForEnergy(energy, scaleLen int) int {
	if energy < 0 {
		return 0
	}
	if energy >= scaleLen {
		return scaleLen - 1
	}
	return energy
}
