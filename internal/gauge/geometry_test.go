package gauge

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestNeedleAngle(t *testing.T) {
	g := NewGeometry(1200, 640)
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"empty at start angle", 0, 5 * math.Pi / 4},
		{"half at midpoint", 50, 3 * math.Pi / 2},
		{"full at end angle", 100, 7 * math.Pi / 4},
		{"overshoot passes end cap", 110, 7*math.Pi/4 + 0.1*math.Pi/2},
		{"undershoot passes start cap", -10, 5*math.Pi/4 - 0.1*math.Pi/2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.NeedleAngle(tt.value, 100)
			if !ok {
				t.Fatal("expected ok")
			}
			if math.Abs(got-tt.want) > eps {
				t.Errorf("NeedleAngle(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestNeedleAngleRejectsBadInput(t *testing.T) {
	g := NewGeometry(1200, 640)
	for _, tc := range []struct{ value, max float64 }{
		{50, 0},
		{50, -100},
		{math.NaN(), 100},
		{math.Inf(1), 100},
		{50, math.NaN()},
	} {
		if _, ok := g.NeedleAngle(tc.value, tc.max); ok {
			t.Errorf("NeedleAngle(%v, %v): expected !ok", tc.value, tc.max)
		}
	}
}

func TestGeometryLayout(t *testing.T) {
	g := NewGeometry(1200, 640)
	if g.Center.X != 600 || g.Center.Y != 570 {
		t.Errorf("expected center (600,570), got %+v", g.Center)
	}
	if g.Radius != 360 {
		t.Errorf("expected radius 360, got %v", g.Radius)
	}
	if math.Abs(g.Sweep()-math.Pi/2) > eps {
		t.Errorf("expected 90° sweep, got %v", g.Sweep())
	}
}

func TestTicks(t *testing.T) {
	g := NewGeometry(1200, 640)
	ticks := g.Ticks()
	if len(ticks) != 19 {
		t.Fatalf("expected 19 ticks, got %d", len(ticks))
	}

	for _, tk := range ticks {
		wantMajor := tk.Index == 0 || tk.Index == 9 || tk.Index == 18
		if tk.Major != wantMajor {
			t.Errorf("tick %d: major=%v", tk.Index, tk.Major)
		}

		wantLen, wantWidth := 24.0, 3.0
		if wantMajor {
			wantLen, wantWidth = 50, 6
		}
		gotLen := math.Hypot(tk.Outer.X-tk.Inner.X, tk.Outer.Y-tk.Inner.Y)
		if math.Abs(gotLen-wantLen) > eps {
			t.Errorf("tick %d: length %v, want %v", tk.Index, gotLen, wantLen)
		}
		if tk.Width != wantWidth {
			t.Errorf("tick %d: width %v, want %v", tk.Index, tk.Width, wantWidth)
		}

		inner := math.Hypot(tk.Inner.X-g.Center.X, tk.Inner.Y-g.Center.Y)
		if math.Abs(inner-359) > eps {
			t.Errorf("tick %d: starts at radius %v, want 359", tk.Index, inner)
		}
	}

	if ticks[9].Percentage != 50 || math.Abs(ticks[9].Angle-3*math.Pi/2) > eps {
		t.Errorf("middle tick: %+v", ticks[9])
	}
}

func TestLabels(t *testing.T) {
	g := NewGeometry(1200, 640)
	ticks := g.Ticks()

	tests := []struct {
		tick   int
		text   string
		dx, dy float64
	}{
		{0, "0%", -24, 10},
		{9, "50%", 0, 0},
		{18, "100%", 32, 10},
	}
	for _, tt := range tests {
		tk := ticks[tt.tick]
		text, p := g.Label(tk)
		if text != tt.text {
			t.Errorf("tick %d: label %q, want %q", tt.tick, text, tt.text)
		}
		base := g.At(tk.Angle, 320)
		if math.Abs(p.X-(base.X+tt.dx)) > eps || math.Abs(p.Y-(base.Y+tt.dy)) > eps {
			t.Errorf("tick %d: label at %+v, want %+v nudged by (%v,%v)", tt.tick, p, base, tt.dx, tt.dy)
		}
	}
}

func TestNeedleSegmentFloats(t *testing.T) {
	g := NewGeometry(1200, 640)
	from, to := g.Needle(3 * math.Pi / 2)
	if math.Abs(from.X-600) > eps || math.Abs(from.Y-(570-205)) > eps {
		t.Errorf("needle start %+v, want (600,365)", from)
	}
	if math.Abs(to.X-600) > eps || math.Abs(to.Y-(570-410)) > eps {
		t.Errorf("needle end %+v, want (600,160)", to)
	}
}

func TestTickIndex(t *testing.T) {
	tests := []struct {
		value, max float64
		want       int
	}{
		{0, 100, 0},
		{5.5, 100, 0},
		{5.6, 100, 1},
		{50, 100, 9},
		{100, 100, 18},
		{-1, 100, -1},
		{50, 0, -1},
	}
	for _, tt := range tests {
		if got := TickIndex(tt.value, tt.max); got != tt.want {
			t.Errorf("TickIndex(%v, %v) = %d, want %d", tt.value, tt.max, got, tt.want)
		}
	}
}
