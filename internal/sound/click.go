package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

const (
	SampleRate = beep.SampleRate(44100)

	clickFreq      = 2200.0
	clickDuration  = 12 * time.Millisecond
	clickAmplitude = 0.35
	clickDecay     = 6.0
)

// NewClick returns a short sine burst with an exponential decay, the sound of
// the needle passing a scale mark.
func NewClick(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(sr)
			env := math.Exp(-clickDecay * float64(pos) / float64(total))
			v := clickAmplitude * env * math.Sin(2*math.Pi*freq*t)
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}
