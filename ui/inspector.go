package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aura/sim"
)

// pickRadius is how far from a seed the cursor may be to inspect it.
const pickRadius = 20

// Inspector renders a tooltip for the seed nearest the cursor.
type Inspector struct {
	renderer *Renderer
	width    int32
}

// NewInspector creates a new inspector panel.
func NewInspector(width int32) *Inspector {
	return &Inspector{renderer: NewRenderer(), width: width}
}

// Pick returns the seed closest to (x, y) within pickRadius.
func Pick(seeds []sim.SeedView, x, y float32) (sim.SeedView, bool) {
	best := -1
	bestD2 := float32(pickRadius * pickRadius)
	for i, s := range seeds {
		dx, dy := s.Pos.X-x, s.Pos.Y-y
		if d2 := dx*dx + dy*dy; d2 <= bestD2 {
			best, bestD2 = i, d2
		}
	}
	if best < 0 {
		return sim.SeedView{}, false
	}
	return seeds[best], true
}

// Draw renders the tooltip for the seed under the cursor, if any.
func (ins *Inspector) Draw(seeds []sim.SeedView, mouse rl.Vector2) {
	seed, ok := Pick(seeds, mouse.X, mouse.Y)
	if !ok {
		return
	}
	r := ins.renderer
	padding := r.Theme.Padding

	x := int32(seed.Pos.X) + 16
	y := int32(seed.Pos.Y) + 16
	r.DrawPanel(x, y, ins.width, 3*r.Theme.LineHeight+padding*2)

	cx, cy := x+padding, y+padding
	cy = r.DrawEnergyBar(cx, cy, "Energy", seed.Seed.Energy, seed.Seed.MaxEnergy, ins.width-padding*2)
	cy = r.DrawLabelValue(cx, cy, "Hits", fmt.Sprint(seed.Seed.Hits))
	r.DrawLabelValue(cx, cy, "Speed", fmt.Sprintf("%.2f", seed.Vel.Speed()))
}
