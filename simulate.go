package main

import (
	"fmt"
	"io"
	"math"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/meter/internal/config"
	"github.com/iburimskiy/meter/internal/gauge"
)

type simulation struct {
	from, to, max float64
	retargetAt    int
	retargetTo    float64
	frameLimit    int
	trace         bool
}

// zoneColor picks the terminal color closest to the spectrum color at value.
func zoneColor(value, max float64) *color.Color {
	c := gauge.InterpolateColor(value/max*100, true)
	switch {
	case c.R > 200 && c.G < 100:
		return color.New(color.FgRed)
	case c.R > 100:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

// run steps an animator from s.from to s.to and prints one line per frame.
// It returns the number of frames until the value settled.
func (s simulation) run(w io.Writer) (int, error) {
	if !(s.max > 0) {
		return 0, fmt.Errorf("max must be positive, got %v", s.max)
	}

	geo := gauge.NewGeometry(config.CanvasWidth, config.CanvasHeight)
	a := gauge.NewAnimator(s.from)
	a.Trace = s.trace
	bold := color.New(color.Bold)

	bold.Fprintf(w, "%5s %10s %10s %10s %9s\n", "frame", "value", "velocity", "target", "needle")

	a.SetTarget(s.to)
	for frame := 1; ; frame++ {
		angle, _ := geo.NeedleAngle(a.Value(), s.max)
		zoneColor(a.Value(), s.max).Fprintf(w, "%5d %10.3f %+10.3f %10.2f %8.2f°\n",
			frame, a.Value(), a.Velocity(), a.Target(), angle*180/math.Pi)

		if !a.Active() {
			bold.Fprintf(w, "settled on %s after %d frames\n", gauge.FormatPercent(a.Value()/s.max*100), frame)
			return frame, nil
		}
		if frame >= s.frameLimit {
			return frame, fmt.Errorf("no convergence after %d frames", frame)
		}

		if s.retargetAt > 0 && frame == s.retargetAt {
			color.New(color.FgCyan).Fprintf(w, "retarget -> %v (velocity kept)\n", s.retargetTo)
			a.SetTarget(s.retargetTo)
			continue
		}
		a.Frame()
	}
}

func NewSimulateCommand() *cobra.Command {
	s := simulation{}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Print the needle animation frame by frame without opening a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := logLevel
			if debug {
				level = "debug"
				s.trace = true
			}
			if err := setupLogger(level); err != nil {
				return err
			}
			_, err := s.run(cmd.OutOrStdout())
			return err
		},
	}

	f := cmd.Flags()
	f.Float64Var(&s.from, "from", 25, "starting value")
	f.Float64Var(&s.to, "to", 80, "target value")
	f.Float64Var(&s.max, "max", 100, "maximum value")
	f.IntVar(&s.retargetAt, "retarget-at", 0, "frame at which to switch to --retarget-to (0 disables)")
	f.Float64Var(&s.retargetTo, "retarget-to", 0, "second target")
	f.IntVar(&s.frameLimit, "frames", 1000, "give up after this many frames")
	return cmd
}
