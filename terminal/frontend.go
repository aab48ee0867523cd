package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/aura/camera"
	"github.com/pthm-cable/aura/codex"
	"github.com/pthm-cable/aura/config"
	"github.com/pthm-cable/aura/sim"
)

// Garden pixels covered by one terminal cell. Cells are about twice as
// tall as they are wide.
const (
	CellWidth  = 8
	CellHeight = 16
)

const introText = "Tap anywhere to wake the garden"

// Options configures a Frontend.
type Options struct {
	Config   *config.Config
	Log      *slog.Logger
	Now      func() time.Time
	MaxTicks uint64 // 0 = unlimited
}

// Frontend feeds terminal input to the simulation and draws it.
type Frontend struct {
	screen tcell.Screen
	state  *sim.State
	cfg    *config.Config
	log    *slog.Logger
	now    func() time.Time

	maxTicks uint64

	cam   *camera.Camera
	surf  *Surface
	codex *codex.Codex

	buttons    tcell.ButtonMask
	userPaused bool
	unfocused  bool
	status     string
}

// New wraps an initialized screen. The garden takes the screen's size.
func New(screen tcell.Screen, state *sim.State, opts Options) *Frontend {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	screen.EnableMouse()
	screen.EnableFocus()

	f := &Frontend{
		screen: screen,
		state:  state,
		cfg:    cfg,
		log:    log,
		now:    now,
		cam:    camera.New(0, 0, 0, 0),
		codex:  codex.New(now),

		maxTicks: opts.MaxTicks,
	}
	f.surf = NewSurface(screen, f.cam)
	f.resize()
	return f
}

// Run steps the simulation at the configured tick rate until ctx is done
// or the user quits.
func (f *Frontend) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(f.screen, events, done)

	ticker := time.NewTicker(f.cfg.Derived.TickDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !f.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			f.state.Step()
			f.Frame()
			if f.maxTicks > 0 && f.state.Tick() >= f.maxTicks {
				return nil
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.handleKey(ev)

	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0 && f.buttons&tcell.Button1 == 0
		f.buttons = ev.Buttons()
		if !pressed {
			return true
		}
		if f.codex.IsOpen() {
			f.codex.Close()
			return true
		}
		col, row := ev.Position()
		x, y := f.cam.ScreenToWorld(float32(col)+0.5, float32(row)+0.5)
		f.state.Enqueue(sim.Tap{X: x, Y: y, At: f.now()})

	case *tcell.EventFocus:
		f.unfocused = !ev.Focused
		f.syncPause()

	case *tcell.EventResize:
		f.screen.Sync()
		f.resize()
	}
	return true
}

func (f *Frontend) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		if f.codex.IsOpen() {
			f.codex.Close()
			return true
		}
		return false
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case ' ':
		f.userPaused = !f.userPaused
		f.syncPause()
	case 'c':
		f.codex.Toggle()
	case 's':
		f.share()
	}
	return true
}

// share shows the link on the status line; terminals have no clipboard
// we can rely on.
func (f *Frontend) share() {
	base := f.cfg.Persistence.ShareBaseURL
	_, err := f.codex.Share(len(f.state.Unlocked()),
		func() (string, error) { return f.state.ShareLink(base) },
		func(link string) error {
			f.status = link
			return nil
		})
	if err != nil {
		f.log.Warn("share failed", "error", err)
	}
}

func (f *Frontend) syncPause() {
	if f.userPaused || f.unfocused {
		f.state.Pause()
	} else {
		f.state.Resume()
	}
}

func (f *Frontend) resize() {
	w, h := f.screen.Size()
	worldW, worldH := float32(w*CellWidth), float32(h*CellHeight)
	f.cam.SetWorld(worldW, worldH)
	f.cam.Resize(float32(w), float32(h))
	f.state.Enqueue(sim.Resize{W: worldW, H: worldH})
}

// Frame draws the garden, overlays and status line, then shows them.
func (f *Frontend) Frame() {
	f.screen.Clear()
	f.state.Draw(f.surf)

	w, h := f.screen.Size()
	if !f.state.Initialized() {
		f.drawCentered(h/2, introText, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
	if f.codex.IsOpen() {
		f.drawCodex(w, h)
	}
	f.drawStatus(h - 1)

	f.screen.Show()
}

func (f *Frontend) drawStatus(row int) {
	line := fmt.Sprintf(" tick %d  seeds %d  constellations %d/%d  [space] pause [c] codex [s] share [q] quit",
		f.state.Tick(), f.state.SeedCount(), len(f.state.Unlocked()), len(f.state.Catalog().Keys()))
	if f.state.Paused() {
		line = " PAUSED" + line
	}
	f.drawText(0, row, line, tcell.StyleDefault.Foreground(tcell.ColorDarkGray))
	if f.status != "" {
		f.drawText(0, row-1, " "+f.status, tcell.StyleDefault.Foreground(tcell.ColorSilver))
	}
}

func (f *Frontend) drawCodex(w, h int) {
	entries := codex.Entries(f.state.Unlocked(), f.state.Catalog())
	boxW := min(w-4, 48)
	boxH := len(entries) + 6
	x0 := (w - boxW) / 2
	y0 := max(0, (h-boxH)/2)

	border := tcell.StyleDefault.Foreground(tcell.ColorGold)
	for row := y0; row < y0+boxH; row++ {
		for col := x0; col < x0+boxW; col++ {
			r := ' '
			switch {
			case row == y0 || row == y0+boxH-1:
				r = '─'
			case col == x0 || col == x0+boxW-1:
				r = '│'
			}
			f.screen.SetContent(col, row, r, nil, border)
		}
	}
	f.drawText(x0+2, y0+1, "Codex", border.Bold(true))

	for i, e := range entries {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		if e.Empty {
			style = style.Italic(true).Foreground(tcell.ColorGray)
		}
		if f.codex.Reveal(e) < 0.5 {
			style = style.Dim(true)
		}
		f.drawText(x0+2, y0+3+i, e.Text, style)
	}
	f.drawText(x0+2, y0+boxH-2, "[s] "+f.codex.ShareButtonLabel(), border)
}

func (f *Frontend) drawCentered(row int, text string, style tcell.Style) {
	w, _ := f.screen.Size()
	f.drawText(max(0, (w-len([]rune(text)))/2), row, text, style)
}

func (f *Frontend) drawText(x, y int, text string, style tcell.Style) {
	w, _ := f.screen.Size()
	for _, r := range text {
		if x >= w {
			return
		}
		f.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
