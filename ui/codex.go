package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"

	"github.com/pthm-cable/aura/codex"
)

// CodexAction is what the player did with the codex this frame.
type CodexAction int

const (
	CodexNone CodexAction = iota
	CodexClose
	CodexShare
)

// CodexPanel draws the codex overlay.
type CodexPanel struct {
	renderer *Renderer
	width    float32
}

// NewCodexPanel creates a codex panel of the given width.
func NewCodexPanel(width float32) *CodexPanel {
	return &CodexPanel{renderer: NewRenderer(), width: width}
}

// Bounds returns the panel rectangle for the given entry count.
func (p *CodexPanel) Bounds(entries int, screenW, screenH int32) rl.Rectangle {
	h := float32(entries)*28 + 130
	return rl.Rectangle{
		X:      (float32(screenW) - p.width) / 2,
		Y:      (float32(screenH) - h) / 2,
		Width:  p.width,
		Height: h,
	}
}

// Draw renders the codex over a dimmed garden and reports the action taken.
// A click outside the panel closes it.
func (p *CodexPanel) Draw(c *codex.Codex, entries []codex.Entry, screenW, screenH int32) CodexAction {
	r := p.renderer
	rl.DrawRectangle(0, 0, screenW, screenH, r.Theme.Scrim)

	bounds := p.Bounds(len(entries), screenW, screenH)
	action := CodexNone

	if gui.WindowBox(bounds, "Codex") {
		action = CodexClose
	}

	x := int32(bounds.X) + r.Theme.Padding*2
	y := int32(bounds.Y) + 44
	r.DrawCentered("Constellations", int32(bounds.X), int32(bounds.Width), y, r.Theme.TitleFontSize, r.Theme.Title)
	y += r.Theme.TitleFontSize + 18

	for _, e := range entries {
		color := r.Theme.ValueColor
		if e.Empty {
			color = r.Theme.Muted
		}
		rl.DrawText(e.Text, x, y, 18, rl.Fade(color, c.Reveal(e)))
		y += 28
	}

	share := rl.Rectangle{
		X:      bounds.X + (bounds.Width-180)/2,
		Y:      bounds.Y + bounds.Height - 46,
		Width:  180,
		Height: 30,
	}
	if gui.Button(share, c.ShareButtonLabel()) {
		action = CodexShare
	}

	if action == CodexNone && rl.IsMouseButtonPressed(rl.MouseButtonLeft) &&
		!rl.CheckCollisionPointRec(rl.GetMousePosition(), bounds) {
		action = CodexClose
	}
	return action
}
