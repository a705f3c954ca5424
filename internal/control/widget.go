package control

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/iburimskiy/meter/internal/config"
	"github.com/iburimskiy/meter/internal/gauge"
)

// Widget owns one gauge: the animated value, the target set by input, the
// display flags and the preset cursor. Every mutation that changes what is
// on screen marks the widget dirty; the frame loop renders when it is.
//
// Widget is not safe for concurrent use. All calls happen on the frame loop.
type Widget struct {
	cfg config.GaugeConfig
	log logrus.FieldLogger

	anim        *gauge.Animator
	hold        HoldLoop
	target      float64
	presetIndex int
	opts        gauge.DisplayOptions

	dirty    bool
	lastTick int
	onTick   func(index int)
	trace    *FrameTrace
	sub      *Subscription
	faulted  bool
}

func NewWidget(cfg config.Config, log logrus.FieldLogger) *Widget {
	if log == nil {
		log = logrus.StandardLogger()
	}
	initial := cfg.InitialValue()

	anim := gauge.NewAnimator(initial)
	anim.Trace = cfg.Logging.TraceFrames
	anim.Log = log

	return &Widget{
		cfg:         cfg.Gauge,
		log:         log,
		anim:        anim,
		target:      initial,
		presetIndex: cfg.Gauge.PresetIndex,
		opts: gauge.DisplayOptions{
			ShowNeedle:       cfg.Gauge.ShowNeedle,
			UseColorGradient: cfg.Gauge.UseColorGradient,
		},
		dirty:    true,
		lastTick: gauge.TickIndex(initial, cfg.Gauge.MaxValue),
		trace:    NewFrameTrace(config.TraceRingSize),
	}
}

// Activate subscribes the widget to the arrow keys of src. Close the returned
// subscription on teardown; it also cancels both frame loops.
func (w *Widget) Activate(src KeySource) *Subscription {
	if !w.sub.Closed() {
		return w.sub
	}
	unsubscribe := src.Subscribe(w.handleKey)
	w.sub = &Subscription{cancel: func() {
		unsubscribe()
		w.hold.Reset()
		w.anim.Stop()
		w.log.Info("meter widget deactivated")
	}}
	w.log.WithField("value", w.anim.Value()).Info("meter widget activated")
	return w.sub
}

// Close tears the widget down. It is safe to call more than once.
func (w *Widget) Close() {
	if w.sub != nil {
		w.sub.Close()
		return
	}
	w.hold.Reset()
	w.anim.Stop()
}

func (w *Widget) handleKey(ev KeyEvent) {
	if !ev.Press {
		w.hold.Release(ev.Key)
		return
	}
	if w.hold.Press(ev.Key) {
		w.log.WithField("key", ev.Key).Debug("hold started")
	}
}

// Tick runs one frame: first the key-hold loop, then the animator, so the
// step always reads this frame's target.
func (w *Widget) Tick() {
	if next, changed := w.hold.Frame(w.target, w.cfg.MaxValue, w.cfg.HoldStep); changed {
		w.retarget(next)
		return
	}
	if w.anim.Active() {
		prev := w.anim.Value()
		w.anim.Frame()
		w.afterStep(prev)
	}
}

// SetTarget sets the target directly, clamped to [0, max].
func (w *Widget) SetTarget(v float64) {
	if math.IsNaN(v) {
		w.log.Warn("ignoring NaN target")
		return
	}
	v = math.Max(0, math.Min(w.cfg.MaxValue, v))
	if v == w.target {
		return
	}
	w.retarget(v)
}

func (w *Widget) retarget(v float64) {
	prev := w.anim.Value()
	w.target = v
	w.anim.SetTarget(v)
	w.afterStep(prev)
}

func (w *Widget) afterStep(prev float64) {
	cur := w.anim.Value()
	w.trace.Record(Sample{Value: cur, Target: w.target, Velocity: w.anim.Velocity()})
	if cur == prev {
		return
	}
	w.dirty = true

	idx := gauge.TickIndex(cur, w.cfg.MaxValue)
	if idx != w.lastTick {
		w.lastTick = idx
		if w.onTick != nil {
			w.onTick(idx)
		}
	}
}

// CyclePreset moves to the next preset and targets it.
func (w *Widget) CyclePreset() {
	w.presetIndex = (w.presetIndex + 1) % len(w.cfg.Presets)
	v := w.cfg.Presets[w.presetIndex]
	w.log.WithFields(logrus.Fields{"index": w.presetIndex, "value": v}).Info("preset selected")
	w.SetTarget(v)
}

// NextPreset is the value CyclePreset would pick.
func (w *Widget) NextPreset() float64 {
	return w.cfg.Presets[(w.presetIndex+1)%len(w.cfg.Presets)]
}

func (w *Widget) ToggleNeedle() {
	w.opts.ShowNeedle = !w.opts.ShowNeedle
	w.dirty = true
}

func (w *Widget) ToggleGradient() {
	w.opts.UseColorGradient = !w.opts.UseColorGradient
	w.dirty = true
}

// OnTickCrossed registers fn to run whenever the displayed value moves onto a
// different scale mark.
func (w *Widget) OnTickCrossed(fn func(index int)) { w.onTick = fn }

func (w *Widget) Options() gauge.DisplayOptions { return w.opts }
func (w *Widget) Value() float64                { return w.anim.Value() }
func (w *Widget) Velocity() float64             { return w.anim.Velocity() }
func (w *Widget) Target() float64               { return w.target }
func (w *Widget) MaxValue() float64             { return w.cfg.MaxValue }
func (w *Widget) Animating() bool               { return w.anim.Active() }
func (w *Widget) Holding() bool                 { return w.hold.Active() }
func (w *Widget) Dirty() bool                   { return w.dirty }
func (w *Widget) Trace() *FrameTrace            { return w.trace }

// Render draws the current state on c and clears the dirty flag. A render
// that had to skip the needle is logged once until a good render follows.
func (w *Widget) Render(c gauge.Canvas) {
	ok := gauge.Render(c, w.anim.Value(), w.cfg.MaxValue, w.opts)
	w.dirty = false

	if !ok && !w.faulted {
		w.log.WithFields(logrus.Fields{
			"value": w.anim.Value(),
			"max":   w.cfg.MaxValue,
		}).Warn("needle skipped: value cannot be mapped onto the arc")
	}
	w.faulted = !ok
}
