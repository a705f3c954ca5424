package gauge

import (
	"math"
	"testing"
)

const maxFrames = 200

// settle steps a until it stops scheduling and returns the frame count.
func settle(t *testing.T, a *Animator) int {
	t.Helper()
	frames := 0
	for a.Active() {
		if frames >= maxFrames {
			t.Fatalf("not settled after %d frames: value=%v velocity=%v target=%v",
				frames, a.Value(), a.Velocity(), a.Target())
		}
		a.Frame()
		frames++
	}
	return frames
}

func TestStepConvergesForAllStartsAndTargets(t *testing.T) {
	for from := 0.0; from <= 100; from += 5 {
		for to := 0.0; to <= 100; to += 5 {
			a := NewAnimator(from)
			a.SetTarget(to)
			settle(t, a)

			if a.Value() != to {
				t.Errorf("from %v to %v: expected value exactly %v, got %v", from, to, to, a.Value())
			}
			if a.Velocity() != 0 {
				t.Errorf("from %v to %v: expected zero velocity, got %v", from, to, a.Velocity())
			}
		}
	}
}

func TestStepSettledIsFixedPoint(t *testing.T) {
	s, more := Step(State{Value: 42}, 42)
	if more {
		t.Error("expected no further frames at rest on target")
	}
	if s != (State{Value: 42}) {
		t.Errorf("expected state unchanged, got %+v", s)
	}
}

func TestStepSnapsInsideThreshold(t *testing.T) {
	s, more := Step(State{Value: 49.95, Velocity: 0.4}, 50)
	if more {
		t.Error("expected settle inside threshold")
	}
	if s.Value != 50 || s.Velocity != 0 {
		t.Errorf("expected snap to 50 at rest, got %+v", s)
	}
}

func TestStepKeepsGoingWhenFastNearTarget(t *testing.T) {
	// Close enough but still moving: the spring must carry on.
	_, more := Step(State{Value: 49.95, Velocity: 2}, 50)
	if !more {
		t.Error("expected another frame while velocity is above threshold")
	}
}

func TestStepRule(t *testing.T) {
	s, more := Step(State{Value: 10, Velocity: 1}, 30)
	if !more {
		t.Fatal("expected another frame")
	}
	wantV := (1 + 20*0.1) * 0.75
	if math.Abs(s.Velocity-wantV) > 1e-12 {
		t.Errorf("expected velocity %v, got %v", wantV, s.Velocity)
	}
	if math.Abs(s.Value-(10+wantV)) > 1e-12 {
		t.Errorf("expected value %v, got %v", 10+wantV, s.Value)
	}
}

func TestRetargetPreservesVelocity(t *testing.T) {
	a := NewAnimator(0)
	a.SetTarget(100)
	for i := 0; i < 4; i++ {
		a.Frame()
	}
	before := a.State()
	if math.Abs(before.Velocity) < 0.5 {
		t.Fatalf("expected real momentum before retarget, got %v", before.Velocity)
	}

	a.SetTarget(0)

	want := (before.Velocity + (0-before.Value)*0.1) * 0.75
	if math.Abs(a.Velocity()-want) > 1e-12 {
		t.Errorf("expected velocity carried into %v, got %v", want, a.Velocity())
	}
	if a.Velocity() == 0 {
		t.Error("velocity was reset on retarget")
	}
	if !a.Active() {
		t.Error("expected animation to keep running after retarget")
	}
}

func TestAnimatorOvershoots(t *testing.T) {
	a := NewAnimator(0)
	a.SetTarget(100)
	peak := a.Value()
	for a.Active() {
		a.Frame()
		peak = math.Max(peak, a.Value())
	}
	if peak <= 100 {
		t.Errorf("expected the spring to overshoot 100, peak %v", peak)
	}
}

func TestNewAnimatorStartsAtRest(t *testing.T) {
	a := NewAnimator(25)
	if a.Active() {
		t.Error("expected no initial animation")
	}
	if a.Value() != 25 || a.Target() != 25 {
		t.Errorf("expected value and target 25, got %v/%v", a.Value(), a.Target())
	}

	a.Frame()
	if a.Value() != 25 {
		t.Errorf("Frame on an idle animator moved the value to %v", a.Value())
	}
}

func TestAnimatorStop(t *testing.T) {
	a := NewAnimator(0)
	a.SetTarget(50)
	a.Stop()
	v := a.Value()
	a.Frame()
	if a.Value() != v {
		t.Errorf("expected no motion after Stop, moved %v -> %v", v, a.Value())
	}
}

func TestPresetToEightyScenario(t *testing.T) {
	a := NewAnimator(25)
	a.SetTarget(80)
	settle(t, a)

	if a.Value() != 80 {
		t.Fatalf("expected value 80, got %v", a.Value())
	}

	g := NewGeometry(1200, 640)
	angle, ok := g.NeedleAngle(a.Value(), 100)
	if !ok {
		t.Fatal("expected a needle angle")
	}
	want := 297 * math.Pi / 180
	if math.Abs(angle-want) > 1e-9 {
		t.Errorf("expected needle at 297° (%v rad), got %v", want, angle)
	}
}
