package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aura/surface"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawCentered draws text horizontally centered in a span of the given width.
func (r *Renderer) DrawCentered(text string, x, width, y, size int32, color rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, x+(width-w)/2, y, size, color)
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawEnergyBar draws a seed energy bar that turns gold when full.
func (r *Renderer) DrawEnergyBar(x, y int32, label string, current, max int, width int32) int32 {
	ratio := float32(0)
	if max > 0 {
		ratio = min(float32(current)/float32(max), 1)
	}

	barX := x + r.Theme.LabelWidth
	barWidth := width - r.Theme.LabelWidth - 40

	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawRectangle(barX, y+3, barWidth, r.Theme.BarHeight, r.Theme.BarBg)

	fill := r.Theme.BarFill
	if ratio >= 1 {
		fill = r.Theme.BarFull
	}
	rl.DrawRectangle(barX, y+3, int32(float32(barWidth)*ratio), r.Theme.BarHeight, fill)

	rl.DrawText(fmt.Sprintf("%d/%d", current, max), barX+barWidth+6, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawNotes draws the recent note buffer as a row of dots, one hue per
// energy level.
func (r *Renderer) DrawNotes(x, y int32, notes []int, capacity int) int32 {
	const spacing = 16
	for i := 0; i < capacity; i++ {
		cx := float32(x + int32(i)*spacing + spacing/2)
		cy := float32(y + spacing/2)
		if i >= len(notes) {
			rl.DrawCircleLines(int32(cx), int32(cy), 4, r.Theme.BarBg)
			continue
		}
		c := surface.HSL(200+float32(notes[i])*40, 0.8, 0.7, 1)
		rl.DrawCircleV(rl.Vector2{X: cx, Y: cy}, 5, rl.Color{R: c.R, G: c.G, B: c.B, A: c.A})
		rl.DrawText(fmt.Sprint(notes[i]), int32(cx)-3, int32(cy)+8, 10, r.Theme.Muted)
	}
	return y + spacing + 14
}
