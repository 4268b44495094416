package engine

import (
	"fmt"
	"time"
)

// TickInterval is the nominal clock period.
const TickInterval = time.Second

// Clock accumulates elapsed seconds while running.
//
// The host owns the actual timer. Every Start hands out a new epoch; the host
// tags each scheduled tick with it and ticks carrying an older epoch are
// dropped, so stopping the clock cancels any tick already in flight.
type Clock struct {
	elapsed int
	running bool
	epoch   uint64
}

// Start resumes counting and returns the epoch for scheduled ticks.
func (c *Clock) Start() uint64 {
	c.epoch++
	c.running = true
	return c.epoch
}

// Stop halts counting and invalidates outstanding ticks.
func (c *Clock) Stop() {
	c.running = false
	c.epoch++
}

// Reset stops the clock and zeroes elapsed time.
func (c *Clock) Reset() {
	c.Stop()
	c.elapsed = 0
}

// Tick adds one second if the clock is running and epoch is current.
func (c *Clock) Tick(epoch uint64) bool {
	if !c.running || epoch != c.epoch {
		return false
	}
	c.elapsed++
	return true
}

// Running reports whether the clock is counting.
func (c *Clock) Running() bool {
	return c.running
}

// Epoch returns the current epoch.
func (c *Clock) Epoch() uint64 {
	return c.epoch
}

// Elapsed returns the accumulated seconds.
func (c *Clock) Elapsed() int {
	return c.elapsed
}

// FormatElapsed renders seconds as mm:ss.
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
