package main

import (
	"time"

	"github.com/BrugadaSyndrome/bslogger"
)

const statsInterval = 5 * time.Second

// frameClock paces frames and periodically logs how long they take.
type frameClock struct {
	logger bslogger.Logger
	now    func() time.Time
	period time.Duration

	frames    int
	busy      time.Duration
	lastStats time.Time
	total     int
}

func newFrameClock(frameRate int, logger bslogger.Logger) *frameClock {
	c := &frameClock{
		logger: logger,
		now:    time.Now,
		period: time.Second / time.Duration(frameRate),
	}
	c.lastStats = c.now()
	return c
}

func (c *frameClock) start() time.Time {
	return c.now()
}

// done records a finished frame and returns how long to sleep before
// the next one may start.
func (c *frameClock) done(start time.Time) time.Duration {
	end := c.now()
	elapsed := end.Sub(start)
	c.frames++
	c.total++
	c.busy += elapsed

	if elapsed > c.period {
		c.logger.Debugf("Frame %d took %s, budget is %s", c.total, elapsed, c.period)
	}
	if end.Sub(c.lastStats) >= statsInterval {
		c.logger.Infof("Frames [Rendered: %d] [Mean: %s] [Total: %d]", c.frames, c.busy/time.Duration(c.frames), c.total)
		c.frames = 0
		c.busy = 0
		c.lastStats = end
	}

	if elapsed >= c.period {
		return 0
	}
	return c.period - elapsed
}
