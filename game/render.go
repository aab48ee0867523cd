package game

import (
	"errors"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aura/codex"
	"github.com/pthm-cable/aura/renderer"
	"github.com/pthm-cable/aura/ui"
)

const controlsLegend = "Click: ripple   Double click: pulse   C: codex   I: import link   Space: pause   H: help"

var errClipboard = errors.New("clipboard did not take the link")

// Draw renders one frame.
func (g *Game) Draw() {
	start := time.Now()

	rl.BeginDrawing()
	rl.ClearBackground(renderer.Background)

	if g.overlays.IsEnabled(ui.OverlayStarfield) {
		g.stars.Draw(g.surf)
	}
	g.state.Draw(g.surf)

	g.drawUI()

	rl.EndDrawing()
	g.frame.Record("draw", time.Since(start))
}

func (g *Game) drawUI() {
	w, h := int32(g.screenWidth), int32(g.screenHeight)
	data := ui.HUDData{
		Tick:         g.state.Tick(),
		Seeds:        g.state.SeedCount(),
		Ripples:      g.state.RippleCount(),
		Blooms:       g.state.BloomCount(),
		Unlocked:     len(g.state.Unlocked()),
		Total:        len(g.state.Catalog().Keys()),
		Notes:        g.state.Notes(),
		NoteCapacity: g.cfg.Notes.Capacity,
		FPS:          rl.GetFPS(),
		Paused:       g.state.Paused(),
		Initialized:  g.state.Initialized(),
		ScreenWidth:  w,
		ScreenHeight: h,
	}

	if g.overlays.IsEnabled(ui.OverlayStats) {
		g.hud.DrawStats(data)
	}
	if g.overlays.IsEnabled(ui.OverlayNotes) {
		g.hud.DrawNotes(data)
	}
	if g.overlays.IsEnabled(ui.OverlayPerf) && g.perf != nil {
		g.perfPanel.Draw(g.perf.Stats())
	}
	if g.overlays.IsEnabled(ui.OverlayInspector) {
		g.inspector.Draw(g.state.Seeds(), rl.GetMousePosition())
	}
	if g.overlays.IsEnabled(ui.OverlayHelp) {
		g.controls.Draw(g.overlays, w)
	}
	g.hud.DrawControls(h, controlsLegend)

	if g.hud.Draw(data) && !g.codex.IsOpen() {
		g.codex.Open()
	}

	if g.codex.IsOpen() {
		entries := codex.Entries(g.state.Unlocked(), g.state.Catalog())
		switch g.codexPanel.Draw(g.codex, entries, w, h) {
		case ui.CodexClose:
			g.codex.Close()
		case ui.CodexShare:
			g.share()
		}
	}

	g.toast.draw(w, h)
}

// share copies a link to the unlocked constellations to the clipboard.
func (g *Game) share() {
	base := g.cfg.Persistence.ShareBaseURL
	_, err := g.codex.Share(len(g.state.Unlocked()),
		func() (string, error) { return g.state.ShareLink(base) },
		func(link string) error {
			rl.SetClipboardText(link)
			if rl.GetClipboardText() != link {
				return errClipboard
			}
			return nil
		})
	if err != nil {
		g.log.Warn("share failed", "error", err)
	}
}
