// Package terminal runs the garden in a character terminal through tcell.
package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/aura/camera"
	"github.com/pthm-cable/aura/surface"
)

// Glyph ramps by coverage, faint to bright.
var (
	dotRamp  = []rune{'.', '·', '•', '●'}
	fillRamp = []rune{'░', '▒', '▓', '█'}
	ringRamp = []rune{'.', '∙', 'o', 'O'}
)

// minAlpha is the alpha below which a primitive leaves a cell untouched.
const minAlpha = 24

// Surface rasterizes draw primitives onto terminal cells. Colors are
// premultiplied against the black background; later primitives overwrite
// earlier ones.
type Surface struct {
	screen tcell.Screen
	cam    *camera.Camera
}

// NewSurface creates a surface drawing garden coordinates through cam.
func NewSurface(screen tcell.Screen, cam *camera.Camera) *Surface {
	return &Surface{screen: screen, cam: cam}
}

func (s *Surface) Circle(x, y, radius float32, c surface.Color) {
	if c.A < minAlpha {
		return
	}
	cx, cy := s.cam.WorldToScreen(x, y)
	rx, ry := radius*s.cam.ScaleX(), radius*s.cam.ScaleY()

	if rx < 1 && ry < 1 {
		s.set(cx, cy, ramp(dotRamp, c.A), c)
		return
	}
	s.fillEllipse(cx, cy, rx, ry, func(float32) (rune, surface.Color) {
		return ramp(fillRamp, c.A), c
	})
}

func (s *Surface) Ring(x, y, radius, width float32, c surface.Color) {
	if c.A < minAlpha || radius <= 0 {
		return
	}
	cx, cy := s.cam.WorldToScreen(x, y)
	rx, ry := radius*s.cam.ScaleX(), radius*s.cam.ScaleY()

	// One sample per cell of circumference
	steps := int(2*math.Pi*float64(max(rx, ry))) + 8
	glyph := ramp(ringRamp, c.A)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		s.set(cx+rx*float32(math.Cos(a)), cy+ry*float32(math.Sin(a)), glyph, c)
	}
}

func (s *Surface) Line(x1, y1, x2, y2, width float32, c surface.Color) {
	if c.A < minAlpha {
		return
	}
	ax, ay := s.cam.WorldToScreen(x1, y1)
	bx, by := s.cam.WorldToScreen(x2, y2)
	dx, dy := bx-ax, by-ay

	glyph := lineGlyph(dx, dy)
	steps := int(max(abs(dx), abs(dy))) + 1
	for i := 0; i <= steps; i++ {
		t := float32(i) / float32(steps)
		s.set(ax+dx*t, ay+dy*t, glyph, c)
	}
}

func (s *Surface) RadialGradient(x, y, radius float32, inner, outer surface.Color) {
	cx, cy := s.cam.WorldToScreen(x, y)
	rx, ry := radius*s.cam.ScaleX(), radius*s.cam.ScaleY()

	if rx < 1 && ry < 1 {
		if inner.A >= minAlpha {
			s.set(cx, cy, ramp(dotRamp, inner.A), inner)
		}
		return
	}
	s.fillEllipse(cx, cy, rx, ry, func(d float32) (rune, surface.Color) {
		c := lerpColor(inner, outer, d)
		if c.A < minAlpha {
			return 0, c
		}
		return ramp(fillRamp, c.A), c
	})
}

// fillEllipse calls shade for each cell inside the ellipse with the
// normalized distance from the center in [0, 1].
func (s *Surface) fillEllipse(cx, cy, rx, ry float32, shade func(d float32) (rune, surface.Color)) {
	w, h := s.screen.Size()
	x0 := max(0, int(cx-rx))
	x1 := min(w-1, int(cx+rx))
	y0 := max(0, int(cy-ry))
	y1 := min(h-1, int(cy+ry))

	for row := y0; row <= y1; row++ {
		for col := x0; col <= x1; col++ {
			nx := (float32(col) + 0.5 - cx) / max(rx, 0.5)
			ny := (float32(row) + 0.5 - cy) / max(ry, 0.5)
			d2 := nx*nx + ny*ny
			if d2 > 1 {
				continue
			}
			glyph, c := shade(float32(math.Sqrt(float64(d2))))
			if glyph == 0 {
				continue
			}
			s.screen.SetContent(col, row, glyph, nil, style(c))
		}
	}
}

func (s *Surface) set(x, y float32, glyph rune, c surface.Color) {
	if x < 0 || y < 0 {
		return
	}
	col, row := int(x), int(y)
	w, h := s.screen.Size()
	if col >= w || row >= h {
		return
	}
	s.screen.SetContent(col, row, glyph, nil, style(c))
}

func style(c surface.Color) tcell.Style {
	a := int32(c.A)
	fg := tcell.NewRGBColor(int32(c.R)*a/255, int32(c.G)*a/255, int32(c.B)*a/255)
	return tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack)
}

func ramp(glyphs []rune, alpha uint8) rune {
	i := int(alpha) * len(glyphs) / 256
	return glyphs[i]
}

func lineGlyph(dx, dy float32) rune {
	switch {
	case abs(dy) < abs(dx)*0.4:
		return '-'
	case abs(dx) < abs(dy)*0.4:
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

func lerpColor(a, b surface.Color, t float32) surface.Color {
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return surface.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
