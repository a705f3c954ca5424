package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/meter/internal/config"
	"github.com/iburimskiy/meter/internal/gauge"
)

var (
	buttonNormal  = color.RGBA{A: 26} // rgba(0,0,0,0.1)
	buttonHovered = color.RGBA{A: 0xff}
	buttonPressed = color.RGBA{R: 40, G: 40, B: 40, A: 0xff}
	instructionFg = color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}
)

type button struct {
	x, y, w, h float64
	label      func() string
	onClick    func()

	hovered bool
	pressed bool
}

// layoutButtons centres n buttons in a row below the gauge.
func layoutButtons(bs ...*button) []*button {
	total := float64(len(bs))*config.ButtonWidth + float64(len(bs)-1)*config.ButtonGap
	x := (config.WindowWidth - total) / 2
	for _, b := range bs {
		b.x, b.y = x, config.ButtonY
		b.w, b.h = config.ButtonWidth, config.ButtonHeight
		x += config.ButtonWidth + config.ButtonGap
	}
	return bs
}

// update handles hover and click for the cursor at (mx, my) in logical pixels.
func (b *button) update(mx, my float64) {
	b.hovered = inRect(mx, my, b.x, b.y, b.w, b.h)

	if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.pressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if b.pressed && b.hovered {
			b.onClick()
		}
		b.pressed = false
	}
}

func (b *button) draw(c *canvas) {
	bg, fg := buttonNormal, gauge.Black
	switch {
	case b.pressed:
		bg, fg = buttonPressed, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	case b.hovered:
		bg, fg = buttonHovered, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}

	c.FillRect(b.x, b.y, b.w, b.h, bg)
	c.FillText(b.label(), b.x+b.w/2, b.y+b.h/2, gauge.TextStyle{Size: 16, Bold: true, Color: fg})
}
