package main

import (
	"testing"
	"time"
)

func TestFrameClock_Done(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := base
	c := newFrameClock(20, testLogger())
	c.now = func() time.Time { return now }
	c.lastStats = base

	if c.period != 50*time.Millisecond {
		t.Fatalf("period = %s, want 50ms", c.period)
	}

	start := c.start()
	now = now.Add(20 * time.Millisecond)
	if wait := c.done(start); wait != 30*time.Millisecond {
		t.Errorf("wait after 20ms frame = %s, want 30ms", wait)
	}

	start = c.start()
	now = now.Add(80 * time.Millisecond)
	if wait := c.done(start); wait != 0 {
		t.Errorf("wait after slow frame = %s, want 0", wait)
	}
	if c.total != 2 || c.frames != 2 {
		t.Errorf("frames = %d, total = %d, want 2 and 2", c.frames, c.total)
	}

	// stats window rolls over
	start = c.start()
	now = now.Add(statsInterval)
	c.done(start)
	if c.frames != 0 || c.busy != 0 || c.total != 3 {
		t.Errorf("after stats: frames %d busy %s total %d", c.frames, c.busy, c.total)
	}
}
