package telemetry

import "time"

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowTicks uint64
	tickDur     time.Duration

	windowStartTick uint64
	counts          [eventTypeCount]int
}

// NewCollector creates a collector flushing every windowTicks ticks.
func NewCollector(windowTicks uint64, tickDur time.Duration) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: windowTicks, tickDur: tickDur}
}

// Record counts one event in the current window.
func (c *Collector) Record(e EventType) {
	if e < eventTypeCount {
		c.counts[e]++
	}
}

// Count returns the current window's count for e.
func (c *Collector) Count(e EventType) int {
	if e >= eventTypeCount {
		return 0
	}
	return c.counts[e]
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick uint64) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Population is the garden census sampled at window end.
type Population struct {
	Seeds    int
	Ripples  int
	Blooms   int
	Unlocked int
	Energies []float64 // one entry per live seed
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick uint64, pop Population) WindowStats {
	energy := ComputeEnergyStats(pop.Energies)

	ripples := c.counts[EventRipple] + c.counts[EventPulse]
	var hitsPerRipple float64
	if ripples > 0 {
		hitsPerRipple = float64(c.counts[EventHit]) / float64(ripples)
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      (time.Duration(currentTick) * c.tickDur).Seconds(),

		Seeds:    pop.Seeds,
		Ripples:  pop.Ripples,
		Blooms:   pop.Blooms,
		Unlocked: pop.Unlocked,

		Taps:          c.counts[EventRipple],
		Pulses:        c.counts[EventPulse],
		Hits:          c.counts[EventHit],
		BloomsSpawned: c.counts[EventBloom],
		Unlocks:       c.counts[EventUnlock],
		Respawns:      c.counts[EventRespawn],
		Tones:         c.counts[EventTone],
		HitsPerRipple: hitsPerRipple,

		EnergyMean: energy.Mean,
		EnergyStd:  energy.Std,
		EnergyP50:  energy.P50,
		EnergyP90:  energy.P90,
	}

	c.windowStartTick = currentTick
	c.counts = [eventTypeCount]int{}

	return stats
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() uint64 {
	return c.windowTicks
}
