package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/meter/internal/config"
)

const (
	plotX = 12
	plotY = 40
	plotW = config.TraceRingSize
	plotH = 80
)

var (
	plotBg     = color.RGBA{R: 240, G: 240, B: 240, A: 220}
	plotValue  = color.RGBA{R: 0xff, G: 0x44, B: 0x44, A: 0xff}
	plotTarget = color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}
)

// drawDebug plots the recent displayed value against the target, scaled to
// [0, max] with headroom for overshoot.
func (g *Game) drawDebug(screen *ebiten.Image) {
	samples := g.widget.Trace().Snapshot(config.TraceRingSize)
	s := float32(g.scale)

	vector.DrawFilledRect(screen, plotX*s, plotY*s, plotW*s, plotH*s, plotBg, false)

	top := g.widget.MaxValue()
	y := func(v float64) float32 {
		// 10% headroom above and below the scale.
		return float32(plotY+plotH-(v+0.1*top)/(1.2*top)*plotH) * s
	}
	for i := 1; i < len(samples); i++ {
		x0, x1 := float32(plotX+i-1)*s, float32(plotX+i)*s
		vector.StrokeLine(screen, x0, y(samples[i-1].Target), x1, y(samples[i].Target), s, plotTarget, true)
		vector.StrokeLine(screen, x0, y(samples[i-1].Value), x1, y(samples[i].Value), 2*s, plotValue, true)
	}

	info := fmt.Sprintf("value %.2f  target %.2f  velocity %+.3f  tps %.0f",
		g.widget.Value(), g.widget.Target(), g.widget.Velocity(), ebiten.ActualTPS())
	ebitenutil.DebugPrintAt(screen, info, plotX, int((plotY+plotH+4)*g.scale))
}
