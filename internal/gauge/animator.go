package gauge

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/iburimskiy/meter/internal/config"
)

// State is the animated part of the gauge. Only the Animator mutates Value
// and Velocity.
type State struct {
	Value    float64
	Velocity float64
}

// Step advances s one frame toward target with the damped spring rule.
// The returned bool reports whether another frame should be scheduled; when
// it is false the state has snapped onto target with zero velocity.
//
// The rule is applied per frame, not per unit of time, so the motion depends
// on the frame rate.
func Step(s State, target float64) (State, bool) {
	diff := target - s.Value
	if math.Abs(diff) < config.SettleDistance && math.Abs(s.Velocity) < config.SettleVelocity {
		return State{Value: target}, false
	}

	force := diff * config.SpringStrength
	v := (s.Velocity + force) * config.Damping
	return State{Value: s.Value + v, Velocity: v}, true
}

// Animator drives the displayed value toward a target once per frame.
//
// Retargeting keeps the current velocity, so a new target picked mid-flight
// overshoots and bounces instead of restarting from rest.
type Animator struct {
	state  State
	target float64
	active bool

	// Trace logs every step at debug level.
	Trace bool
	Log   logrus.FieldLogger
}

// NewAnimator returns an Animator at rest on value.
func NewAnimator(value float64) *Animator {
	return &Animator{
		state:  State{Value: value},
		target: value,
		Log:    logrus.StandardLogger(),
	}
}

func (a *Animator) State() State      { return a.state }
func (a *Animator) Value() float64    { return a.state.Value }
func (a *Animator) Target() float64   { return a.target }
func (a *Animator) Active() bool      { return a.active }
func (a *Animator) Velocity() float64 { return a.state.Velocity }

// SetTarget changes the target and steps once immediately. The pending frame,
// if any, is replaced by this step; the next one runs from Frame.
func (a *Animator) SetTarget(target float64) {
	a.target = target
	a.step()
}

// Frame runs the scheduled step for this frame. It is a no-op once the value
// has settled.
func (a *Animator) Frame() {
	if !a.active {
		return
	}
	a.step()
}

// Stop cancels any scheduled frame and leaves the value where it is.
func (a *Animator) Stop() {
	a.active = false
}

func (a *Animator) step() {
	prev := a.state
	a.state, a.active = Step(a.state, a.target)
	if a.Trace && a.Log != nil {
		a.Log.WithFields(logrus.Fields{
			"from":     prev.Value,
			"to":       a.state.Value,
			"target":   a.target,
			"velocity": a.state.Velocity,
			"settled":  !a.active,
		}).Debug("animator step")
	}
}
