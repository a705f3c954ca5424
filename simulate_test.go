package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestSimulationSettles(t *testing.T) {
	var buf bytes.Buffer
	frames, err := simulation{from: 25, to: 80, max: 100, frameLimit: 1000}.run(&buf)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if frames >= 200 {
		t.Errorf("expected to settle within 200 frames, took %d", frames)
	}
	out := buf.String()
	if !strings.Contains(out, "settled on 80%") {
		t.Errorf("missing settle line in output:\n%s", out)
	}
	if !strings.Contains(out, "297.00°") {
		t.Errorf("expected final needle at 297°:\n%s", out)
	}
}

func TestSimulationRetarget(t *testing.T) {
	var buf bytes.Buffer
	_, err := simulation{from: 0, to: 100, max: 100, retargetAt: 5, retargetTo: 10, frameLimit: 1000}.run(&buf)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(buf.String(), "retarget -> 10") {
		t.Errorf("missing retarget line:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "settled on 10%") {
		t.Errorf("expected to settle on the second target:\n%s", buf.String())
	}
}

func TestSimulationFrameLimit(t *testing.T) {
	var buf bytes.Buffer
	if _, err := (simulation{from: 0, to: 100, max: 100, frameLimit: 3}).run(&buf); err == nil {
		t.Error("expected an error when the frame limit is hit")
	}
}

func TestSimulationRejectsZeroMax(t *testing.T) {
	if _, err := (simulation{from: 0, to: 1, max: 0, frameLimit: 10}).run(&bytes.Buffer{}); err == nil {
		t.Error("expected an error for max 0")
	}
}
