package gauge

import (
	"math"

	"github.com/iburimskiy/meter/internal/config"
)

type Point struct{ X, Y float64 }

// Geometry is the fixed layout of one gauge, derived from the canvas size on
// every render.
type Geometry struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

func NewGeometry(width, height float64) Geometry {
	return Geometry{
		Center:     Point{X: width / 2, Y: height/2 + config.CenterYOffset},
		Radius:     config.ArcRadius,
		StartAngle: config.StartAngle,
		EndAngle:   config.EndAngle,
	}
}

func (g Geometry) Sweep() float64 { return g.EndAngle - g.StartAngle }

// At returns the point at angle and distance r from the center.
func (g Geometry) At(angle, r float64) Point {
	return Point{
		X: g.Center.X + math.Cos(angle)*r,
		Y: g.Center.Y + math.Sin(angle)*r,
	}
}

type Tick struct {
	Index      int
	Angle      float64
	Percentage float64
	Major      bool
	Inner      Point
	Outer      Point
	Width      float64
}

// Ticks returns the TotalMarks+1 scale marks from start to end angle. Marks
// start one pixel inside the arc and extend outward.
func (g Geometry) Ticks() []Tick {
	ticks := make([]Tick, 0, config.TotalMarks+1)
	inner := g.Radius - 1
	for i := 0; i <= config.TotalMarks; i++ {
		frac := float64(i) / config.TotalMarks
		angle := g.StartAngle + frac*g.Sweep()
		major := i%config.MajorMarkInterval == 0

		length, width := float64(config.MinorTickLength), float64(config.MinorTickWidth)
		if major {
			length, width = config.MajorTickLength, config.MajorTickWidth
		}

		ticks = append(ticks, Tick{
			Index:      i,
			Angle:      angle,
			Percentage: frac * 100,
			Major:      major,
			Inner:      g.At(angle, inner),
			Outer:      g.At(angle, inner+length),
			Width:      width,
		})
	}
	return ticks
}

// Label returns the text and position of a major tick's percentage label.
// The end labels are nudged down and outward so they do not clip the arc.
func (g Geometry) Label(t Tick) (string, Point) {
	p := g.At(t.Angle, g.Radius-config.LabelInset)
	switch t.Index {
	case 0:
		p.X -= 24
		p.Y += 10
	case config.TotalMarks:
		p.X += 32
		p.Y += 10
	}
	return FormatPercent(t.Percentage), p
}

// NeedleAngle maps value to an angle on the arc. Values outside [0, max]
// map past the end caps. ok is false when max is not positive or the result
// is not a finite number.
func (g Geometry) NeedleAngle(value, max float64) (angle float64, ok bool) {
	if !(max > 0) {
		return 0, false
	}
	angle = g.StartAngle + (value/max)*g.Sweep()
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0, false
	}
	return angle, true
}

// Needle returns the floating needle segment: from half to full needle length
// along angle.
func (g Geometry) Needle(angle float64) (from, to Point) {
	length := g.Radius + config.NeedleExtension
	return g.At(angle, length*config.NeedleStartRatio), g.At(angle, length)
}

// GradientPaint is the spectrum gradient across the arc, left to right.
func (g Geometry) GradientPaint() *LinearGradient {
	half := g.Radius * math.Cos(math.Pi/4)
	return &LinearGradient{
		X0: g.Center.X - half, Y0: g.Center.Y,
		X1: g.Center.X + half, Y1: g.Center.Y,
		Stops: []ColorStop{
			{Offset: 0, Color: Red},
			{Offset: 0.5, Color: Amber},
			{Offset: 1, Color: Green},
		},
	}
}

// TickIndex returns the number of scale marks at or below value, or -1 below
// the first mark. Comparing two indexes tells whether the needle crossed a
// mark between frames.
func TickIndex(value, max float64) int {
	if !(max > 0) || math.IsNaN(value) {
		return -1
	}
	return int(math.Floor(value / max * config.TotalMarks))
}
