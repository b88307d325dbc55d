package clock

import (
	"testing"
	"time"
)

func TestSystemClockTracksWallClock(t *testing.T) {
	before := time.Now()
	got := System().Now()
	after := time.Now()

	if got.Before(before) || got.After(after) {
		t.Errorf("System().Now() = %v, want between %v and %v", got, before, after)
	}
}

func TestManualClockIsFrozen(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := NewManual(start)

	if got := clk.Now(); !got.Equal(start) {
		t.Errorf("Now() = %v, want %v", got, start)
	}
	// No drift between reads
	if got := clk.Now(); !got.Equal(start) {
		t.Errorf("second Now() = %v, want %v", got, start)
	}
}

func TestManualClockAdvance(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := NewManual(start)

	got := clk.Advance(3 * time.Second)
	want := start.Add(3 * time.Second)
	if !got.Equal(want) {
		t.Errorf("Advance(3s) = %v, want %v", got, want)
	}
	if !clk.Now().Equal(want) {
		t.Errorf("Now() after Advance = %v, want %v", clk.Now(), want)
	}
}

func TestManualClockSet(t *testing.T) {
	clk := NewManual(time.Unix(0, 0))
	target := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("Now() after Set = %v, want %v", clk.Now(), target)
	}
}
