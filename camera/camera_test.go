package camera

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	cam := New(160, 50, 1280, 800)

	if cam.ScaleX() != 0.125 {
		t.Errorf("expected x scale 0.125, got %f", cam.ScaleX())
	}
	if cam.ScaleY() != 0.0625 {
		t.Errorf("expected y scale 0.0625, got %f", cam.ScaleY())
	}
}

func TestWorldToScreenCorners(t *testing.T) {
	cam := New(160, 50, 1280, 800)

	sx, sy := cam.WorldToScreen(1280, 800)
	if sx != 160 || sy != 50 {
		t.Errorf("expected far corner at (160, 50), got (%f, %f)", sx, sy)
	}

	sx, sy = cam.WorldToScreen(640, 400)
	if sx != 80 || sy != 25 {
		t.Errorf("expected center at (80, 25), got (%f, %f)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(160, 50, 1280, 800)

	testCases := []struct{ sx, sy float32 }{
		{80, 25},
		{3, 7},
		{159, 49},
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if math.Abs(float64(sx-tc.sx)) > 0.01 || math.Abs(float64(sy-tc.sy)) > 0.01 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestResize(t *testing.T) {
	cam := New(160, 50, 1280, 800)
	cam.Resize(80, 25)

	wx, wy := cam.ScreenToWorld(80, 25)
	if wx != 1280 || wy != 800 {
		t.Errorf("expected (1280, 800) after resize, got (%f, %f)", wx, wy)
	}

	cam.SetWorld(640, 400)
	sx, sy := cam.WorldToScreen(640, 400)
	if sx != 80 || sy != 25 {
		t.Errorf("expected (80, 25) after world change, got (%f, %f)", sx, sy)
	}
}

func TestZeroWorld(t *testing.T) {
	cam := New(80, 25, 0, 0)

	wx, wy := cam.ScreenToWorld(10, 10)
	if wx != 0 || wy != 0 {
		t.Errorf("expected origin for empty world, got (%f, %f)", wx, wy)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(160, 50, 1280, 800)

	if !cam.IsVisible(640, 400, 1) {
		t.Error("center should be visible")
	}
	if !cam.IsVisible(-5, 400, 10) {
		t.Error("circle overlapping the left edge should be visible")
	}
	if cam.IsVisible(-50, 400, 10) {
		t.Error("circle left of the garden should not be visible")
	}
}
