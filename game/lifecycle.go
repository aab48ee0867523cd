package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleWindowState pauses the garden while the window is minimized or
// unfocused and resumes it when it comes back.
func (g *Game) handleWindowState() {
	hidden := rl.IsWindowMinimized() || !rl.IsWindowFocused()
	if hidden == g.autoPaused {
		return
	}
	g.autoPaused = hidden
	g.log.Debug("window visibility changed", "hidden", hidden, "tick", g.state.Tick())
	g.syncPause()
}

// syncPause pauses the simulation when either the player or the window
// state asks for it.
func (g *Game) syncPause() {
	if g.userPaused || g.autoPaused {
		g.state.Pause()
	} else {
		g.state.Resume()
	}
}
