package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"

	"github.com/iburimskiy/meter/internal/config"
	"github.com/iburimskiy/meter/internal/control"
	"github.com/iburimskiy/meter/internal/gauge"
)

// Game is the meter window: one gauge widget, its buttons and shortcuts.
type Game struct {
	cfg config.Config
	log logrus.FieldLogger

	widget  *control.Widget
	keys    *control.KeyHub
	sub     *control.Subscription
	buttons []*button
	audio   *audio

	canvas   *canvas
	gaugeImg *ebiten.Image
	scale    float64

	dialogs    chan dialogResult
	dialogOpen bool

	// input edge detection
	prevKey map[ebiten.Key]bool

	debug   bool
	lastErr error
}

func NewGame(cfg config.Config, log logrus.FieldLogger) (*Game, error) {
	f, err := loadFonts()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		log:     log,
		widget:  control.NewWidget(cfg, log.WithField("component", "widget")),
		keys:    control.NewKeyHub(),
		canvas:  newCanvas(f),
		scale:   1,
		dialogs: make(chan dialogResult, 1),
		prevKey: map[ebiten.Key]bool{},
		debug:   cfg.Logging.TraceFrames,
	}

	g.audio, err = newAudio(cfg.Sound, log.WithField("component", "audio"))
	if err != nil {
		// The gauge works without sound.
		log.WithError(err).Warn("sound unavailable")
		g.lastErr = err
	}
	g.widget.OnTickCrossed(func(int) { g.audio.click() })

	g.buttons = layoutButtons(
		&button{
			label: func() string {
				if g.widget.Options().ShowNeedle {
					return "Hide Needle"
				}
				return "Show Needle"
			},
			onClick: g.widget.ToggleNeedle,
		},
		&button{
			label: func() string {
				if g.widget.Options().UseColorGradient {
					return "Use Standard Mode"
				}
				return "Use Spectrum Mode"
			},
			onClick: g.widget.ToggleGradient,
		},
		&button{
			label: func() string {
				return "Set to " + gauge.FormatPercent(g.widget.NextPreset())
			},
			onClick: g.widget.CyclePreset,
		},
	)

	g.sub = g.widget.Activate(g.keys)
	return g, nil
}

// Close tears the widget down and silences the speaker.
func (g *Game) Close() {
	g.sub.Close()
	g.audio.close()
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	g.pollDialogs()

	// Input first, so this frame's step sees this frame's target.
	pollArrows(g.keys)

	if justPressed(ebiten.KeyN) {
		g.widget.ToggleNeedle()
	}
	if justPressed(ebiten.KeyG) {
		g.widget.ToggleGradient()
	}
	// Evaluate both so neither key's edge state goes stale.
	preset, space := justPressed(ebiten.KeyP), justPressed(ebiten.KeySpace)
	if preset || space {
		g.widget.CyclePreset()
	}
	if justPressed(ebiten.KeyE) {
		g.openDialog(dialogValue)
	}
	if justPressed(ebiten.KeyO) {
		if g.audio == nil {
			g.lastErr = errSoundDisabled
		} else {
			g.openDialog(dialogClickSound)
		}
	}
	if justPressed(ebiten.KeyM) {
		if err := g.audio.toggleMute(); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyD) {
		g.debug = !g.debug
	}
	quit, esc := justPressed(ebiten.KeyQ), justPressed(ebiten.KeyEscape)
	if quit || esc {
		return ebiten.Termination
	}

	mx, my := ebiten.CursorPosition()
	for _, b := range g.buttons {
		b.update(float64(mx)/g.scale, float64(my)/g.scale)
	}

	g.widget.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	w := int(math.Ceil(config.CanvasWidth * g.scale))
	h := int(math.Ceil(config.CanvasHeight * g.scale))
	fresh := false
	if g.gaugeImg == nil || g.gaugeImg.Bounds().Dx() != w || g.gaugeImg.Bounds().Dy() != h {
		if g.gaugeImg != nil {
			g.gaugeImg.Deallocate()
		}
		g.gaugeImg = ebiten.NewImage(w, h)
		fresh = true
	}
	if fresh || g.widget.Dirty() {
		g.widget.Render(g.canvas.target(g.gaugeImg, g.scale))
	}

	c := g.canvas.target(screen, g.scale)
	c.Clear()
	screen.DrawImage(g.gaugeImg, nil)

	c.FillText("Use left and right arrow keys to change value",
		config.WindowWidth/2, config.InstructionsY+10,
		gauge.TextStyle{Size: 16, Color: instructionFg})
	for _, b := range g.buttons {
		b.draw(c)
	}

	status := "Value " + formatValue(g.widget.Value()) + " | E: exact value, D: debug"
	if g.audio != nil {
		status += ", O: click sound, M: mute"
		if g.audio.muted() {
			status += " (muted)"
		}
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)

	if g.debug {
		g.drawDebug(screen)
	}
}

// Layout allocates the screen at device resolution; all drawing is scaled
// from logical pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := 1.0
	if m := ebiten.Monitor(); m != nil {
		s = m.DeviceScaleFactor()
	}
	g.scale = sanitizeScale(s)
	return int(math.Ceil(config.WindowWidth * g.scale)), int(math.Ceil(config.WindowHeight * g.scale))
}
