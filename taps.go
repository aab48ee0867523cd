package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pthm-cable/aura/sim"
)

// scriptedTap is one -taps entry: an interaction queued at a tick.
type scriptedTap struct {
	Tick     uint64
	Interact sim.Interact
}

// parseTaps reads "x,y[,d]@tick;..." where a trailing ",d" marks a double
// tap. Entries are returned in tick order.
func parseTaps(s string) ([]scriptedTap, error) {
	var taps []scriptedTap
	for _, entry := range strings.Split(s, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		coords, tickStr, ok := strings.Cut(entry, "@")
		if !ok {
			return nil, fmt.Errorf("tap %q: missing @tick", entry)
		}
		tick, err := strconv.ParseUint(strings.TrimSpace(tickStr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("tap %q: bad tick: %w", entry, err)
		}

		parts := strings.Split(coords, ",")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("tap %q: want x,y or x,y,d", entry)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 32)
		if err != nil {
			return nil, fmt.Errorf("tap %q: bad x: %w", entry, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 32)
		if err != nil {
			return nil, fmt.Errorf("tap %q: bad y: %w", entry, err)
		}
		double := false
		if len(parts) == 3 {
			if strings.TrimSpace(parts[2]) != "d" {
				return nil, fmt.Errorf("tap %q: third field must be d", entry)
			}
			double = true
		}

		taps = append(taps, scriptedTap{
			Tick:     tick,
			Interact: sim.Interact{X: float32(x), Y: float32(y), DoubleTap: double},
		})
	}

	sort.SliceStable(taps, func(i, j int) bool { return taps[i].Tick < taps[j].Tick })
	return taps, nil
}
