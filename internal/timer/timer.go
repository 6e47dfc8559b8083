// Package timer implements the delay and sound timers that count down
// at a fixed rate independent of instruction execution.
package timer

import (
	"context"
	"sync"
	"time"
)

// Rate is the number of timer ticks per second.
const Rate = 60

// Interval is the real time between two ticks.
const Interval = time.Second / Rate

// Coordinator owns the delay and sound counters. All reads and writes of
// the counters, from the interpreter and from the ticking goroutine, go
// through the same mutex.
type Coordinator struct {
	mu    sync.Mutex
	delay uint8
	sound uint8
}

// New returns a coordinator with both counters at zero.
func New() *Coordinator {
	return &Coordinator{}
}

// Delay returns the current delay timer value.
func (c *Coordinator) Delay() uint8 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.delay
}

// Sound returns the current sound timer value.
func (c *Coordinator) Sound() uint8 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sound
}

// SetDelay sets the delay timer.
func (c *Coordinator) SetDelay(value uint8) {
	c.mu.Lock()
	c.delay = value
	c.mu.Unlock()
}

// SetSound sets the sound timer.
func (c *Coordinator) SetSound(value uint8) {
	c.mu.Lock()
	c.sound = value
	c.mu.Unlock()
}

// Reset sets both counters to zero.
func (c *Coordinator) Reset() {
	c.mu.Lock()
	c.delay = 0
	c.sound = 0
	c.mu.Unlock()
}

// Tick decrements every counter that is not zero by one.
func (c *Coordinator) Tick() {
	c.mu.Lock()
	if c.delay > 0 {
		c.delay--
	}
	if c.sound > 0 {
		c.sound--
	}
	c.mu.Unlock()
}

// Run ticks the counters at Rate until the context is done. It returns
// after its ticker has been stopped.
func (c *Coordinator) Run(ctx context.Context) error {
	return c.run(ctx, Interval)
}

func (c *Coordinator) run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.Tick()
		}
	}
}
