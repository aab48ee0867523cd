package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// KeyBinding is a non-overlay key shown in the help panel.
type KeyBinding struct {
	Label string
	Name  string
}

// DefaultBindings lists the frontend's fixed keys.
var DefaultBindings = []KeyBinding{
	{"Click", "Ripple (double click: pulse)"},
	{"C", "Codex"},
	{"I", "Import link from clipboard"},
	{"Space", "Pause"},
	{"F11", "Fullscreen"},
}

// ControlsPanel renders the help panel: overlay toggles and key bindings.
type ControlsPanel struct {
	renderer *Renderer
	width    int32
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(width int32) *ControlsPanel {
	return &ControlsPanel{renderer: NewRenderer(), width: width}
}

// Draw renders the panel anchored to the top-right corner below the codex
// button.
func (c *ControlsPanel) Draw(overlays *OverlayRegistry, screenWidth int32) {
	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	categories := overlays.Categories()
	rows := len(DefaultBindings) + 1
	for _, cat := range categories {
		rows += len(overlays.ByCategory(cat)) + 1
	}
	x := screenWidth - c.width - 16
	y := int32(56)
	r.DrawPanel(x, y, c.width, int32(rows)*lineHeight+padding*2+lineHeight)

	y += padding
	rl.DrawText("Controls", x+padding, y, 16, rl.White)
	y += lineHeight + 4

	for _, b := range DefaultBindings {
		c.drawRow(x+padding, y, b.Name, b.Label, false, c.width-padding*2)
		y += lineHeight
	}
	y += 4

	for _, category := range categories {
		rl.DrawText(categoryLabel(category), x+padding, y, r.Theme.FontSize, r.Theme.Title)
		y += lineHeight
		for _, desc := range overlays.ByCategory(category) {
			c.drawRow(x+padding, y, desc.Name, desc.KeyLabel, overlays.IsEnabled(desc.ID), c.width-padding*2)
			y += lineHeight
		}
	}
}

func (c *ControlsPanel) drawRow(x, y int32, name, key string, enabled bool, width int32) {
	r := c.renderer

	nameColor := r.Theme.LabelColor
	if enabled {
		rl.DrawRectangle(x, y+4, 8, 8, r.Theme.Accent)
		nameColor = rl.White
	}
	rl.DrawText(name, x+14, y, r.Theme.FontSize-2, nameColor)

	keyText := fmt.Sprintf("[%s]", key)
	keyWidth := rl.MeasureText(keyText, r.Theme.FontSize-2)
	rl.DrawText(keyText, x+width-keyWidth, y, r.Theme.FontSize-2, r.Theme.Muted)
}

func categoryLabel(cat string) string {
	switch cat {
	case "visual":
		return "Visual"
	case "debug":
		return "Debug"
	default:
		return cat
	}
}
