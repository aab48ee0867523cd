package systems

import "github.com/kamstrup/intmap"

// Schedule holds values keyed by the tick they become due. Ticks are the
// only clock, so pausing the simulation pauses everything scheduled here.
type Schedule[V any] struct {
	due     *intmap.Map[uint64, []V]
	pending int
}

// NewSchedule creates an empty schedule.
func NewSchedule[V any]() *Schedule[V] {
	return &Schedule[V]{due: intmap.New[uint64, []V](16)}
}

// Add schedules v for tick at.
func (s *Schedule[V]) Add(at uint64, v V) {
	vals, _ := s.due.Get(at)
	s.due.Put(at, append(vals, v))
	s.pending++
}

// Take removes and returns everything due at tick, in insertion order.
func (s *Schedule[V]) Take(tick uint64) []V {
	vals, ok := s.due.Get(tick)
	if !ok {
		return nil
	}
	s.due.Del(tick)
	s.pending -= len(vals)
	return vals
}

// Len returns the number of values not yet taken.
func (s *Schedule[V]) Len() int { return s.pending }

// Clear drops everything scheduled.
func (s *Schedule[V]) Clear() {
	s.due.Clear()
	s.pending = 0
}

// RespawnSchedule counts replacement seeds owed per tick.
type RespawnSchedule struct {
	s *Schedule[struct{}]
}

// NewRespawnSchedule creates an empty respawn schedule.
func NewRespawnSchedule() *RespawnSchedule {
	return &RespawnSchedule{s: NewSchedule[struct{}]()}
}

// Schedule owes one seed at tick at.
func (r *RespawnSchedule) Schedule(at uint64) { r.s.Add(at, struct{}{}) }

// Due removes and returns the number of seeds owed at tick.
func (r *RespawnSchedule) Due(tick uint64) int { return len(r.s.Take(tick)) }

// Pending returns the number of seeds still owed.
func (r *RespawnSchedule) Pending() int { return r.s.Len() }
