package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aura/sim"
	"github.com/pthm-cable/aura/ui"
)

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.userPaused = !g.userPaused
		g.syncPause()
	}
	if rl.IsKeyPressed(rl.KeyC) {
		g.codex.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyEscape) && g.codex.IsOpen() {
		g.codex.Close()
	}
	if rl.IsKeyPressed(rl.KeyI) {
		g.importFromClipboard()
	}

	for _, key := range g.overlays.Keys() {
		if rl.IsKeyPressed(key) {
			g.overlays.HandleKeyPress(key)
		}
	}

	g.handleTap()
}

// handleTap turns a left click on the open garden into a tap. Clicks on
// the codex button or an open codex belong to the UI.
func (g *Game) handleTap() {
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) || g.codex.IsOpen() {
		return
	}
	mouse := rl.GetMousePosition()
	if rl.CheckCollisionPointRec(mouse, ui.CodexButtonBounds(int32(g.screenWidth))) {
		return
	}
	g.state.Enqueue(sim.Tap{X: mouse.X, Y: mouse.Y, At: time.Now()})
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.state.Enqueue(sim.Resize{W: w, H: h})
	g.stars.Scatter(w, h)
}

// importFromClipboard restores a garden from a share link on the clipboard.
func (g *Game) importFromClipboard() {
	link := rl.GetClipboardText()
	if err := g.state.ImportLink(link); err != nil {
		g.log.Warn("clipboard import failed", "error", err)
		g.toast.show("No garden link on the clipboard")
		return
	}
	g.toast.show("Garden imported")
}
