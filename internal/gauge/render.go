package gauge

import (
	"strconv"

	"github.com/iburimskiy/meter/internal/config"
)

// DisplayOptions is the snapshot of display flags consumed by one render.
type DisplayOptions struct {
	ShowNeedle       bool
	UseColorGradient bool
}

// Render redraws the whole gauge on c for value out of max. Later draws
// layer over earlier ones: arc, scale marks with labels, needle.
//
// Overshoot is drawn as is: a value past either end points the needle past
// the end cap. When max is not positive the needle is skipped and ok is
// false.
func Render(c Canvas, value, max float64, opts DisplayOptions) (ok bool) {
	g := NewGeometry(c.Size())

	c.Clear()

	var arcPaint Paint = Solid(Black)
	if opts.UseColorGradient {
		arcPaint = g.GradientPaint()
	}
	c.StrokeArc(g.Center.X, g.Center.Y, g.Radius, g.StartAngle, g.EndAngle, Stroke{
		Width: config.ArcLineWidth,
		Paint: arcPaint,
	})

	labelStyle := TextStyle{Size: config.LabelFontSize, Bold: true, Color: Black}
	for _, t := range g.Ticks() {
		c.StrokeLine(t.Inner.X, t.Inner.Y, t.Outer.X, t.Outer.Y, Stroke{
			Width: t.Width,
			Paint: Solid(InterpolateColor(t.Percentage, opts.UseColorGradient)),
			Cap:   CapRound,
		})
		if t.Major {
			s, p := g.Label(t)
			c.FillText(s, p.X, p.Y, labelStyle)
		}
	}

	angle, ok := g.NeedleAngle(value, max)
	if !ok || !opts.ShowNeedle {
		return ok
	}

	needle := Accent
	if opts.UseColorGradient {
		needle = Black
	}
	from, to := g.Needle(angle)
	c.StrokeLine(from.X, from.Y, to.X, to.Y, Stroke{Width: config.NeedleWidth, Paint: Solid(needle)})
	return true
}

// FormatPercent formats a scale value as a whole percentage, e.g. "50%".
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 0, 64) + "%"
}
