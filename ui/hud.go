package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"

	"github.com/pthm-cable/aura/telemetry"
)

// IntroText invites the first tap.
const IntroText = "Tap anywhere to wake the garden"

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Tick         uint64
	Seeds        int
	Ripples      int
	Blooms       int
	Unlocked     int
	Total        int
	Notes        []int
	NoteCapacity int
	FPS          int32
	Paused       bool
	Initialized  bool
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the intro text, pause banner and codex button. It returns
// true when the codex button was clicked this frame.
func (h *HUD) Draw(data HUDData) bool {
	r := h.renderer

	if !data.Initialized {
		r.DrawCentered(IntroText, 0, data.ScreenWidth, data.ScreenHeight/2-10, 20, r.Theme.Muted)
	}
	if data.Paused {
		r.DrawCentered("PAUSED", 0, data.ScreenWidth, 20, 20, r.Theme.Title)
	}

	label := "Codex"
	if data.Unlocked > 0 {
		label = fmt.Sprintf("Codex (%d/%d)", data.Unlocked, data.Total)
	}
	return gui.Button(CodexButtonBounds(data.ScreenWidth), label)
}

// CodexButtonBounds returns the codex button rectangle; clicks inside it
// are not garden taps.
func CodexButtonBounds(screenWidth int32) rl.Rectangle {
	return rl.Rectangle{X: float32(screenWidth) - 150, Y: 16, Width: 134, Height: 30}
}

// DrawStats renders the simulation counters in the top-left corner.
func (h *HUD) DrawStats(data HUDData) {
	r := h.renderer
	x, y := r.Theme.Padding, r.Theme.Padding

	r.DrawPanel(x-6, y-6, 210, 5*r.Theme.LineHeight+12)
	y = r.DrawLabelValue(x, y, "Tick", fmt.Sprint(data.Tick))
	y = r.DrawLabelValue(x, y, "Seeds", fmt.Sprint(data.Seeds))
	y = r.DrawLabelValue(x, y, "Ripples", fmt.Sprint(data.Ripples))
	y = r.DrawLabelValue(x, y, "Blooms", fmt.Sprint(data.Blooms))
	r.DrawLabelValue(x, y, "FPS", fmt.Sprint(data.FPS))
}

// DrawNotes renders the recent-notes buffer along the bottom edge.
func (h *HUD) DrawNotes(data HUDData) {
	r := h.renderer
	width := int32(data.NoteCapacity) * 16
	r.DrawNotes((data.ScreenWidth-width)/2, data.ScreenHeight-48, data.Notes, data.NoteCapacity)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-22, 12, h.renderer.Theme.Muted)
}

// PerfPanel renders the simulation phase timings.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{renderer: NewRenderer(), x: x, y: y}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the phase breakdown, slowest phases highlighted.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	x, y := p.x, p.y
	phases := telemetry.Phases()

	p.renderer.DrawPanel(x-6, y-6, 240, int32(len(phases)+2)*14+16)

	rl.DrawText("Tick Phases", x, y, 14, rl.White)
	y += 18
	rl.DrawText(fmt.Sprintf("Avg: %s", stats.AvgTickDuration.Round(time.Microsecond)), x, y, 12, rl.Yellow)
	y += 14

	for _, name := range phases {
		pct := stats.PhasePct[name]
		color := rl.LightGray
		if pct > 40 {
			color = rl.Red
		} else if pct > 20 {
			color = rl.Orange
		}
		rl.DrawText(
			fmt.Sprintf("%-10s %8s %5.1f%%", name, stats.PhaseAvg[name].Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}
