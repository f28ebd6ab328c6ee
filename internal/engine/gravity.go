package engine

import (
	"context"
	"sync"
	"time"
)

// DefaultGravityPeriod is the time between two gravity steps.
const DefaultGravityPeriod = 300 * time.Millisecond

// GravityClock calls a step function on a fixed period from its own
// goroutine until stopped.
type GravityClock struct {
	period time.Duration
	step   func()

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewGravityClock creates a stopped clock. A non-positive period falls back
// to DefaultGravityPeriod.
func NewGravityClock(period time.Duration, step func()) *GravityClock {
	if period <= 0 {
		period = DefaultGravityPeriod
	}
	return &GravityClock{
		period: period,
		step:   step,
		done:   make(chan struct{}),
	}
}

// Period returns the tick interval.
func (c *GravityClock) Period() time.Duration {
	return c.period
}

// Start launches the ticking goroutine. It runs until ctx is cancelled or
// Stop is called. Calling Start more than once, or after Stop, does nothing.
func (c *GravityClock) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return
	}
	c.started = true

	ctx, c.cancel = context.WithCancel(ctx)
	go c.run(ctx)
}

func (c *GravityClock) run(ctx context.Context) {
	defer close(c.done)

	ticker := time.NewTicker(c.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// A tick and a cancellation can be ready together; cancellation wins.
			if ctx.Err() != nil {
				return
			}
			c.step()
		}
	}
}

// Stop cancels the clock and waits for its goroutine to exit, so no step
// runs after Stop returns. Safe to call repeatedly and before Start.
// Must not be called while holding a lock the step function takes.
func (c *GravityClock) Stop() {
	c.mu.Lock()
	if !c.started {
		c.started = true // a later Start is a no-op
		close(c.done)
		c.mu.Unlock()
		return
	}
	cancel := c.cancel
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	<-c.done
}

// Done returns a channel that is closed once the clock has stopped.
func (c *GravityClock) Done() <-chan struct{} {
	return c.done
}
