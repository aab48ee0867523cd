package telemetry

import (
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a tick window.
type WindowStats struct {
	WindowStartTick uint64  `csv:"-"`
	WindowEndTick   uint64  `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Census at window end
	Seeds    int `csv:"seeds"`
	Ripples  int `csv:"ripples"`
	Blooms   int `csv:"blooms"`
	Unlocked int `csv:"unlocked"`

	// Events during window
	Taps          int     `csv:"taps"`
	Pulses        int     `csv:"pulses"`
	Hits          int     `csv:"hits"`
	BloomsSpawned int     `csv:"blooms_spawned"`
	Unlocks       int     `csv:"unlocks"`
	Respawns      int     `csv:"respawns"`
	Tones         int     `csv:"tones"`
	HitsPerRipple float64 `csv:"hits_per_ripple"`

	// Seed energy distribution
	EnergyMean float64 `csv:"energy_mean"`
	EnergyStd  float64 `csv:"energy_std"`
	EnergyP50  float64 `csv:"energy_p50"`
	EnergyP90  float64 `csv:"energy_p90"`
}

// EnergyStats summarizes seed energies.
type EnergyStats struct {
	Mean, Std, P50, P90 float64
}

// ComputeEnergyStats calculates mean, standard deviation and empirical
// quantiles. Std is zero with fewer than two samples.
func ComputeEnergyStats(values []float64) EnergyStats {
	n := len(values)
	if n == 0 {
		return EnergyStats{}
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	var s EnergyStats
	if n == 1 {
		s.Mean = sorted[0]
	} else {
		s.Mean, s.Std = stat.MeanStdDev(sorted, nil)
	}
	s.P50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.P90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("window_start", s.WindowStartTick),
		slog.Uint64("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("seeds", s.Seeds),
		slog.Int("ripples", s.Ripples),
		slog.Int("blooms", s.Blooms),
		slog.Int("unlocked", s.Unlocked),
		slog.Int("taps", s.Taps),
		slog.Int("pulses", s.Pulses),
		slog.Int("hits", s.Hits),
		slog.Int("blooms_spawned", s.BloomsSpawned),
		slog.Int("unlocks", s.Unlocks),
		slog.Int("respawns", s.Respawns),
		slog.Int("tones", s.Tones),
		slog.Float64("hits_per_ripple", s.HitsPerRipple),
		slog.Float64("energy_mean", s.EnergyMean),
		slog.Float64("energy_std", s.EnergyStd),
		slog.Float64("energy_p50", s.EnergyP50),
		slog.Float64("energy_p90", s.EnergyP90),
	)
}

// LogStats logs the window stats on logger.
func (s WindowStats) LogStats(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("stats", "window", s)
}
