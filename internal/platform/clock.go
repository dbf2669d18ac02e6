package platform

import "time"

// MaxFrameMS caps the simulated time of one frame after a stall.
const MaxFrameMS = 100

// FrameClock measures wall time between frames.
type FrameClock struct {
	last time.Time
}

// Tick returns the milliseconds since the previous tick, capped at
// MaxFrameMS. The first tick returns 0.
func (c *FrameClock) Tick(now time.Time) float64 {
	var dt float64
	if !c.last.IsZero() {
		dt = float64(now.Sub(c.last)) / float64(time.Millisecond)
		dt = min(max(dt, 0), MaxFrameMS)
	}
	c.last = now
	return dt
}
