package control

// Sample is one frame of the animation as seen after the step.
type Sample struct {
	Value    float64
	Target   float64
	Velocity float64
}

// FrameTrace records the last N samples into a ring buffer so the debug
// overlay can plot recent motion.
type FrameTrace struct {
	buffer    []Sample
	nextIndex int
	count     int
}

func NewFrameTrace(ringSize int) *FrameTrace {
	return &FrameTrace{buffer: make([]Sample, ringSize)}
}

func (t *FrameTrace) Record(s Sample) {
	if len(t.buffer) == 0 {
		return
	}
	t.buffer[t.nextIndex] = s
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
	}
	if t.count < len(t.buffer) {
		t.count++
	}
}

// Snapshot returns up to the last n samples, oldest first.
func (t *FrameTrace) Snapshot(n int) []Sample {
	if n > t.count {
		n = t.count
	}
	out := make([]Sample, 0, n)
	// Walk backwards from nextIndex - 1
	idx := t.nextIndex - 1
	if idx < 0 {
		idx = len(t.buffer) - 1
	}
	for i := 0; i < n; i++ {
		out = append(out, t.buffer[idx])
		idx--
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
	}
	// reverse to chronological order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
