package display

import (
	"testing"
	"time"
)

func TestClockMeasuresFrames(t *testing.T) {
	start := time.Unix(100, 0)
	now := start
	c := &Clock{now: func() time.Time { return now }}

	if dt := c.Tick(0.25); dt != 0.25 {
		t.Errorf("first tick should fall back, got %f", dt)
	}
	// three frames drawn within one 1/60 s tick still add up to that tick
	var total float64
	for i := 1; i <= 3; i++ {
		now = start.Add(time.Duration(i) * time.Second / 180)
		total += c.Tick(0.25)
	}
	if d := total - 1.0/60; d > 1e-9 || d < -1e-9 {
		t.Errorf("frames should sum to the elapsed time, got %f", total)
	}
	if dt := c.Tick(0.25); dt != 0 {
		t.Errorf("no time passed, got %f", dt)
	}
}
