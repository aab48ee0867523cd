// Package backdrop draws the twinkling star field behind the garden. The
// field drifts with the pointer through a critically damped spring.
package backdrop

import (
	"math/rand"

	"github.com/charmbracelet/harmonica"

	"github.com/pthm-cable/aura/config"
	"github.com/pthm-cable/aura/surface"
)

// Star is one background star. Depth runs from 0 (far) to 1 (near) and
// scales its size, brightness and parallax.
type Star struct {
	X, Y    float32
	Size    float32
	Depth   float32
	Opacity float32
	Speed   float32 // opacity change per frame; flips sign at the limits
	Gold    bool
	Hue     float32
}

// Starfield holds the stars and the spring-smoothed parallax offset.
type Starfield struct {
	Stars []Star

	parallax float32
	spring   harmonica.Spring
	offX     float64
	offY     float64
	velX     float64
	velY     float64
	rng      *rand.Rand
}

// New scatters cfg.Count stars over a w x h canvas.
func New(cfg config.StarfieldConfig, fps int, w, h float32, rng *rand.Rand) *Starfield {
	if fps < 1 {
		fps = 60
	}
	f := &Starfield{
		Stars:    make([]Star, cfg.Count),
		parallax: float32(cfg.ParallaxFactor),
		spring:   harmonica.NewSpring(harmonica.FPS(fps), cfg.SpringFrequency, cfg.SpringDamping),
		rng:      rng,
	}
	for i := range f.Stars {
		z := rng.Float32()
		s := Star{
			X:       rng.Float32() * w,
			Y:       rng.Float32() * h,
			Size:    rng.Float32()*2*z + 0.5,
			Depth:   z,
			Opacity: rng.Float32()*0.8 + 0.2,
			Speed:   (rng.Float32()*0.02 + 0.005) * z,
		}
		if rng.Float32() > 0.8 {
			s.Hue = 200 + rng.Float32()*60
		} else {
			s.Gold = true
			s.Hue = 50
		}
		f.Stars[i] = s
	}
	return f
}

// Scatter redistributes the stars over a resized canvas.
func (f *Starfield) Scatter(w, h float32) {
	for i := range f.Stars {
		f.Stars[i].X = f.rng.Float32() * w
		f.Stars[i].Y = f.rng.Float32() * h
	}
}

// Update advances twinkling and moves the parallax offset toward the
// pointer's displacement from the canvas center.
func (f *Starfield) Update(pointerX, pointerY, w, h float32) {
	for i := range f.Stars {
		s := &f.Stars[i]
		s.Opacity += s.Speed
		if s.Opacity > 1 || s.Opacity < 0.1 {
			s.Speed = -s.Speed
		}
	}

	targetX := float64((pointerX - w/2) * f.parallax)
	targetY := float64((pointerY - h/2) * f.parallax)
	f.offX, f.velX = f.spring.Update(f.offX, f.velX, targetX)
	f.offY, f.velY = f.spring.Update(f.offY, f.velY, targetY)
}

// Offset returns the current parallax offset for a star at depth 1.
func (f *Starfield) Offset() (float32, float32) {
	return float32(f.offX), float32(f.offY)
}

// Draw renders every star. Near stars shift further than far ones.
func (f *Starfield) Draw(dst surface.Surface) {
	ox, oy := f.Offset()
	for i := range f.Stars {
		s := &f.Stars[i]
		alpha := abs(s.Opacity) * (0.5 + s.Depth*0.5)
		var c surface.Color
		if s.Gold {
			c = surface.HSL(50, 1, 0.8, alpha)
		} else {
			c = surface.HSL(s.Hue, 0.8, 0.9, alpha)
		}
		dst.Circle(s.X+ox*s.Depth, s.Y+oy*s.Depth, s.Size, c)
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
