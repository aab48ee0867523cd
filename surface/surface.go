// Package surface defines the abstract drawing target entities render onto.
// Implementations live in renderer (raylib) and terminal (tcell); the
// simulation never reads back from a surface.
package surface

import "math"

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGBA builds a color from components with alpha given in [0, 1].
func RGBA(r, g, b uint8, alpha float32) Color {
	return Color{R: r, G: g, B: b, A: Alpha(alpha)}
}

// Alpha converts an opacity in [0, 1] to an 8-bit alpha, clamping out-of-range values.
func Alpha(opacity float32) uint8 {
	if opacity <= 0 {
		return 0
	}
	if opacity >= 1 {
		return 255
	}
	return uint8(opacity * 255)
}

// Fade returns c with its alpha scaled by factor.
func (c Color) Fade(factor float32) Color {
	c.A = Alpha(float32(c.A) / 255 * factor)
	return c
}

// Surface is the set of primitives entities draw with.
type Surface interface {
	// Circle fills a circle.
	Circle(x, y, radius float32, c Color)
	// Ring strokes a circle outline of the given width.
	Ring(x, y, radius, width float32, c Color)
	// Line strokes a segment.
	Line(x1, y1, x2, y2, width float32, c Color)
	// RadialGradient fills a circle fading from inner at the center to outer at the edge.
	RadialGradient(x, y, radius float32, inner, outer Color)
}

// HSL builds a color from hue in degrees and saturation/lightness in [0, 1].
func HSL(h, s, l, alpha float32) Color {
	h = float32(math.Mod(float64(h), 360))
	if h < 0 {
		h += 360
	}
	c := (1 - float32(math.Abs(float64(2*l-1)))) * s
	x := c * (1 - float32(math.Abs(math.Mod(float64(h/60), 2)-1)))
	m := l - c/2

	var r, g, b float32
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return Color{
		R: channel(r + m),
		G: channel(g + m),
		B: channel(b + m),
		A: Alpha(alpha),
	}
}

func channel(v float32) uint8 {
	return uint8(math.Round(float64(max(0, min(1, v)) * 255)))
}
