package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/meter/internal/control"
)

var arrowKeys = map[ebiten.Key]control.Key{
	ebiten.KeyArrowLeft:  control.KeyLeft,
	ebiten.KeyArrowRight: control.KeyRight,
}

// pollArrows turns this frame's arrow key edges into events on hub.
func pollArrows(hub *control.KeyHub) {
	for ek, k := range arrowKeys {
		if inpututil.IsKeyJustPressed(ek) {
			hub.Dispatch(control.KeyEvent{Key: k, Press: true})
		}
		if inpututil.IsKeyJustReleased(ek) {
			hub.Dispatch(control.KeyEvent{Key: k, Press: false})
		}
	}
}
