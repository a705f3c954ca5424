package control

import "testing"

func TestFrameTraceSnapshot(t *testing.T) {
	tr := NewFrameTrace(4)
	if got := tr.Snapshot(10); len(got) != 0 {
		t.Fatalf("expected empty snapshot, got %v", got)
	}

	for i := 1; i <= 6; i++ {
		tr.Record(Sample{Value: float64(i)})
	}

	got := tr.Snapshot(10)
	want := []float64{3, 4, 5, 6}
	if len(got) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(got))
	}
	for i, s := range got {
		if s.Value != want[i] {
			t.Errorf("sample %d: got %v, want %v", i, s.Value, want[i])
		}
	}

	last := tr.Snapshot(2)
	if len(last) != 2 || last[0].Value != 5 || last[1].Value != 6 {
		t.Errorf("unexpected tail %v", last)
	}
}

func TestFrameTracePartial(t *testing.T) {
	tr := NewFrameTrace(8)
	tr.Record(Sample{Value: 1})
	tr.Record(Sample{Value: 2})
	got := tr.Snapshot(8)
	if len(got) != 2 || got[0].Value != 1 || got[1].Value != 2 {
		t.Errorf("unexpected snapshot %v", got)
	}
}
