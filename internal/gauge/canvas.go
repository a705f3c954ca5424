package gauge

import "image/color"

type LineCap int

const (
	CapButt LineCap = iota
	CapRound
)

type Stroke struct {
	Width float64
	Paint Paint
	Cap   LineCap
}

type TextStyle struct {
	Size  float64
	Bold  bool
	Color color.RGBA
}

// Canvas is the 2D surface the renderer draws on, in logical pixels.
// Angles are radians, clockwise from the positive x axis (y grows downward).
type Canvas interface {
	Size() (width, height float64)
	Clear()
	StrokeArc(cx, cy, radius, start, end float64, s Stroke)
	StrokeLine(x0, y0, x1, y1 float64, s Stroke)
	// FillText draws s centred both ways on (x, y).
	FillText(s string, x, y float64, style TextStyle)
}
