// Package camera maps garden coordinates onto a viewport of a different
// resolution, such as a grid of terminal cells.
package camera

// Camera stretches the garden to fill the viewport. The axes scale
// independently so a character grid with tall cells still covers the
// whole garden.
type Camera struct {
	// Garden dimensions in logical pixels
	WorldW, WorldH float32

	// Viewport dimensions in its own units (pixels or cells)
	ViewportW, ViewportH float32

	scaleX, scaleY float32
}

// New creates a camera showing the whole world in the viewport.
func New(viewportW, viewportH, worldW, worldH float32) *Camera {
	c := &Camera{WorldW: worldW, WorldH: worldH}
	c.Resize(viewportW, viewportH)
	return c
}

// WorldToScreen converts garden coordinates to viewport coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	return wx * c.scaleX, wy * c.scaleY
}

// ScreenToWorld converts viewport coordinates to garden coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	if c.scaleX == 0 || c.scaleY == 0 {
		return 0, 0
	}
	return sx / c.scaleX, sy / c.scaleY
}

// ScaleX returns viewport units per garden pixel along x.
func (c *Camera) ScaleX() float32 { return c.scaleX }

// ScaleY returns viewport units per garden pixel along y.
func (c *Camera) ScaleY() float32 { return c.scaleY }

// IsVisible returns true if a circle at (wx, wy) with given radius
// overlaps the garden area.
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	return wx+radius >= 0 && wx-radius <= c.WorldW &&
		wy+radius >= 0 && wy-radius <= c.WorldH
}

// Resize updates viewport dimensions and recomputes the scale.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.rescale()
}

// SetWorld changes the garden dimensions.
func (c *Camera) SetWorld(worldW, worldH float32) {
	c.WorldW = worldW
	c.WorldH = worldH
	c.rescale()
}

func (c *Camera) rescale() {
	c.scaleX, c.scaleY = 0, 0
	if c.WorldW > 0 {
		c.scaleX = c.ViewportW / c.WorldW
	}
	if c.WorldH > 0 {
		c.scaleY = c.ViewportH / c.WorldH
	}
}
