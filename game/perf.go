package game

import (
	"cmp"
	"maps"
	"slices"
	"time"

	"gonum.org/v1/gonum/stat"
)

// frameWindow is about two seconds of frames at 60 fps.
const frameWindow = 120

// stageRing is a fixed window of durations for one frontend stage.
type stageRing struct {
	buf  [frameWindow]time.Duration
	next int
	n    int
	sum  time.Duration
}

func (r *stageRing) push(d time.Duration) {
	if r.n == frameWindow {
		r.sum -= r.buf[r.next]
	} else {
		r.n++
	}
	r.buf[r.next] = d
	r.sum += d
	r.next = (r.next + 1) % frameWindow
}

func (r *stageRing) avg() time.Duration {
	if r.n == 0 {
		return 0
	}
	return r.sum / time.Duration(r.n)
}

// FrameTimings tracks the time each frame spends in input, step and draw.
type FrameTimings struct {
	stages map[string]*stageRing
}

// NewFrameTimings creates an empty tracker.
func NewFrameTimings() *FrameTimings {
	return &FrameTimings{stages: make(map[string]*stageRing)}
}

// Record adds a sample for stage.
func (f *FrameTimings) Record(stage string, d time.Duration) {
	r, ok := f.stages[stage]
	if !ok {
		r = &stageRing{}
		f.stages[stage] = r
	}
	r.push(d)
}

// Avg returns the windowed mean for stage.
func (f *FrameTimings) Avg(stage string) time.Duration {
	if r, ok := f.stages[stage]; ok {
		return r.avg()
	}
	return 0
}

// P95 returns the 95th percentile sample for stage.
func (f *FrameTimings) P95(stage string) time.Duration {
	r, ok := f.stages[stage]
	if !ok || r.n == 0 {
		return 0
	}
	xs := make([]float64, r.n)
	for i := range xs {
		xs[i] = float64(r.buf[i])
	}
	slices.Sort(xs)
	return time.Duration(stat.Quantile(0.95, stat.Empirical, xs, nil))
}

// Total sums the stage means: the average frame cost.
func (f *FrameTimings) Total() time.Duration {
	var total time.Duration
	for _, r := range f.stages {
		total += r.avg()
	}
	return total
}

// Stages returns stage names, slowest first.
func (f *FrameTimings) Stages() []string {
	names := slices.Collect(maps.Keys(f.stages))
	slices.SortFunc(names, func(a, b string) int {
		return cmp.Or(cmp.Compare(f.Avg(b), f.Avg(a)), cmp.Compare(a, b))
	})
	return names
}
