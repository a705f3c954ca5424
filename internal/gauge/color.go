package gauge

import (
	"fmt"
	"image/color"
	"math"
)

var (
	Black  = color.RGBA{A: 0xff}
	Accent = color.RGBA{R: 0xff, G: 0x44, B: 0x44, A: 0xff}

	Red   = color.RGBA{R: 255, A: 0xff}
	Amber = color.RGBA{R: 255, G: 200, A: 0xff}
	Green = color.RGBA{G: 180, A: 0xff}
)

// InterpolateColor maps a scale percentage (0-100) to the spectrum color:
// red to amber over the first half, amber to green over the second, linear
// per RGB channel. With gradient off it is always black.
//
// Percentages outside 0-100 are clamped.
func InterpolateColor(percentage float64, gradient bool) color.RGBA {
	if !gradient {
		return Black
	}

	t := clamp01(percentage / 100)
	if t <= 0.5 {
		local := t * 2
		return color.RGBA{R: 255, G: round8(200 * local), B: 0, A: 0xff}
	}
	local := (t - 0.5) * 2
	return color.RGBA{R: round8(255 * (1 - local)), G: round8(200 + (180-200)*local), B: 0, A: 0xff}
}

// CSS formats c the way a browser canvas style string would.
func CSS(c color.RGBA) string {
	if c == Black {
		return "#000"
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Paint is a stroke source: a solid color or a gradient evaluated per point.
type Paint interface {
	ColorAt(x, y float64) color.RGBA
}

// Solid paints every point with one color.
type Solid color.RGBA

func (s Solid) ColorAt(_, _ float64) color.RGBA { return color.RGBA(s) }

type ColorStop struct {
	Offset float64
	Color  color.RGBA
}

// LinearGradient interpolates its stops along the axis (X0,Y0)-(X1,Y1).
// Points are projected onto the axis; beyond either end the end color holds.
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []ColorStop
}

func (g *LinearGradient) ColorAt(x, y float64) color.RGBA {
	if len(g.Stops) == 0 {
		return color.RGBA{}
	}

	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	var t float64
	if l2 := dx*dx + dy*dy; l2 > 0 {
		t = clamp01(((x-g.X0)*dx + (y-g.Y0)*dy) / l2)
	}

	if t <= g.Stops[0].Offset {
		return g.Stops[0].Color
	}
	for i := 1; i < len(g.Stops); i++ {
		a, b := g.Stops[i-1], g.Stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		return lerpRGBA(a.Color, b.Color, (t-a.Offset)/span)
	}
	return g.Stops[len(g.Stops)-1].Color
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	ch := func(x, y uint8) uint8 {
		return round8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: ch(a.A, b.A)}
}

func round8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
