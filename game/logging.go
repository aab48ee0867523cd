package game

import (
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// frameLogInterval is how often frame timings are logged.
const frameLogInterval = 30 * time.Second

// maybeLogFrameStats logs frontend stage timings once per interval.
func (g *Game) maybeLogFrameStats() {
	if time.Since(g.lastLog) < frameLogInterval {
		return
	}
	g.lastLog = time.Now()

	total := g.frame.Total()
	attrs := []any{
		"tick", g.state.Tick(),
		"fps", rl.GetFPS(),
		"total_us", total.Microseconds(),
	}
	for _, name := range g.frame.Stages() {
		attrs = append(attrs,
			slog.Int64(name+"_us", g.frame.Avg(name).Microseconds()),
			slog.Int64(name+"_p95_us", g.frame.P95(name).Microseconds()),
		)
	}
	g.log.Info("frame", attrs...)
}
