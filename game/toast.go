package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const toastDuration = 2500 * time.Millisecond

// toast is a short message shown at the bottom of the screen.
type toast struct {
	text  string
	until time.Time
}

func (t *toast) show(text string) {
	t.text = text
	t.until = time.Now().Add(toastDuration)
}

func (t *toast) draw(screenW, screenH int32) {
	left := time.Until(t.until)
	if t.text == "" || left <= 0 {
		return
	}
	alpha := min(float32(left)/float32(500*time.Millisecond), 1)
	w := rl.MeasureText(t.text, 16)
	rl.DrawText(t.text, (screenW-w)/2, screenH-70, 16, rl.Fade(rl.RayWhite, alpha))
}
