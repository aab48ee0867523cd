// Package ui draws the garden's heads-up display and codex overlay with
// raylib and raygui.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg     rl.Color
	PanelBorder rl.Color
	Scrim       rl.Color // dims the garden behind the codex
	Title       rl.Color
	LabelColor  rl.Color
	ValueColor  rl.Color
	Muted       rl.Color
	Accent      rl.Color
	BarBg       rl.Color
	BarFill     rl.Color
	BarFull     rl.Color

	Padding       int32
	LineHeight    int32
	LabelWidth    int32
	BarHeight     int32
	FontSize      int32
	TitleFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:     rl.Color{R: 10, G: 12, B: 30, A: 230},
		PanelBorder: rl.Color{R: 90, G: 80, B: 140, A: 255},
		Scrim:       rl.Color{R: 0, G: 0, B: 0, A: 150},
		Title:       rl.Color{R: 255, G: 220, B: 140, A: 255},
		LabelColor:  rl.LightGray,
		ValueColor:  rl.RayWhite,
		Muted:       rl.Color{R: 140, G: 140, B: 170, A: 255},
		Accent:      rl.Color{R: 180, G: 140, B: 255, A: 255},
		BarBg:       rl.Color{R: 40, G: 40, B: 60, A: 255},
		BarFill:     rl.Color{R: 120, G: 160, B: 255, A: 255},
		BarFull:     rl.Color{R: 255, G: 215, B: 120, A: 255},

		Padding:       12,
		LineHeight:    18,
		LabelWidth:    70,
		BarHeight:     10,
		FontSize:      14,
		TitleFontSize: 22,
	}
}
