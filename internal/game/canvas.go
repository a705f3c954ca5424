package game

import (
	"bytes"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/meter/internal/config"
	"github.com/iburimskiy/meter/internal/gauge"
)

type fonts struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
}

func loadFonts() (fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fonts{}, errors.Wrap(err, "failed to load regular font")
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return fonts{}, errors.Wrap(err, "failed to load bold font")
	}
	return fonts{regular: regular, bold: bold}, nil
}

// canvas draws gauge commands onto an ebiten image. Coordinates come in
// logical pixels and are multiplied by scale, so the image can be allocated
// at device resolution.
type canvas struct {
	dst   *ebiten.Image
	scale float64
	fonts fonts

	white *ebiten.Image
	vs    []ebiten.Vertex
	is    []uint16
}

func newCanvas(f fonts) *canvas {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &canvas{
		scale: 1,
		fonts: f,
		white: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// target points subsequent draws at dst.
func (c *canvas) target(dst *ebiten.Image, scale float64) *canvas {
	c.dst = dst
	c.scale = scale
	return c
}

func (c *canvas) Size() (float64, float64) {
	return config.CanvasWidth, config.CanvasHeight
}

func (c *canvas) Clear() {
	c.dst.Fill(color.White)
}

func (c *canvas) StrokeArc(cx, cy, radius, start, end float64, s gauge.Stroke) {
	var p vector.Path
	p.Arc(c.px(cx), c.px(cy), c.px(radius), float32(start), float32(end), vector.Clockwise)
	c.stroke(&p, s)
}

func (c *canvas) StrokeLine(x0, y0, x1, y1 float64, s gauge.Stroke) {
	var p vector.Path
	p.MoveTo(c.px(x0), c.px(y0))
	p.LineTo(c.px(x1), c.px(y1))
	c.stroke(&p, s)
}

func (c *canvas) FillText(s string, x, y float64, style gauge.TextStyle) {
	src := c.fonts.regular
	if style.Bold {
		src = c.fonts.bold
	}
	face := &text.GoTextFace{Source: src, Size: style.Size * c.scale}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x*c.scale, y*c.scale)
	op.ColorScale.ScaleWithColor(style.Color)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(c.dst, s, face, op)
}

// FillRect is used by the page chrome, not by the gauge.
func (c *canvas) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(c.dst, c.px(x), c.px(y), c.px(w), c.px(h), clr, true)
}

// stroke tessellates p and colors every vertex from the paint at its
// logical position, which turns a gradient paint into a real gradient.
func (c *canvas) stroke(p *vector.Path, s gauge.Stroke) {
	op := &vector.StrokeOptions{
		Width:    c.px(s.Width),
		LineJoin: vector.LineJoinRound,
	}
	if s.Cap == gauge.CapRound {
		op.LineCap = vector.LineCapRound
	}

	c.vs, c.is = p.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], op)
	for i := range c.vs {
		v := &c.vs[i]
		clr := s.Paint.ColorAt(float64(v.DstX)/c.scale, float64(v.DstY)/c.scale)
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = vertexColor(clr)
	}
	c.dst.DrawTriangles(c.vs, c.is, c.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (c *canvas) px(v float64) float32 {
	return float32(v * c.scale)
}
