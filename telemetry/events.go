// Package telemetry provides garden activity tracking: per-window event
// counters, seed energy statistics, tick phase timing, and CSV output.
package telemetry

// EventType identifies a countable garden event.
type EventType uint8

const (
	EventRipple  EventType = iota // single-tap ripple spawned
	EventPulse                    // double-tap pulse spawned
	EventHit                      // wavefront nudged a seed
	EventBloom                    // seed saturated and bloomed
	EventUnlock                   // new constellation unlocked
	EventRespawn                  // replacement seed spawned
	EventTone                     // tone requested

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventRipple:  "ripple",
	EventPulse:   "pulse",
	EventHit:     "hit",
	EventBloom:   "bloom",
	EventUnlock:  "unlock",
	EventRespawn: "respawn",
	EventTone:    "tone",
}

func (e EventType) String() string {
	if e < eventTypeCount {
		return eventNames[e]
	}
	return "unknown"
}
