package engine

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before timeout")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestGravityClockDefaultPeriod(t *testing.T) {
	for _, p := range []time.Duration{0, -time.Second} {
		c := NewGravityClock(p, func() {})
		if c.Period() != DefaultGravityPeriod {
			t.Errorf("NewGravityClock(%s).Period() = %s, want %s", p, c.Period(), DefaultGravityPeriod)
		}
	}
	if DefaultGravityPeriod != 300*time.Millisecond {
		t.Errorf("DefaultGravityPeriod = %s", DefaultGravityPeriod)
	}
}

func TestGravityClockTicksUntilStopped(t *testing.T) {
	var steps atomic.Int64
	c := NewGravityClock(2*time.Millisecond, func() { steps.Add(1) })

	c.Start(context.Background())
	waitFor(t, 2*time.Second, func() bool { return steps.Load() >= 3 })

	c.Stop()
	stopped := steps.Load()
	time.Sleep(20 * time.Millisecond)

	if got := steps.Load(); got != stopped {
		t.Errorf("step ran after Stop: %d -> %d", stopped, got)
	}
	select {
	case <-c.Done():
	default:
		t.Error("Done() should be closed after Stop")
	}
}

func TestGravityClockContextCancel(t *testing.T) {
	c := NewGravityClock(time.Millisecond, func() {})
	ctx, cancel := context.WithCancel(context.Background())

	c.Start(ctx)
	cancel()

	select {
	case <-c.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("clock did not stop on context cancel")
	}
	c.Stop() // still safe
}

func TestGravityClockStopBeforeStart(t *testing.T) {
	var steps atomic.Int64
	c := NewGravityClock(time.Millisecond, func() { steps.Add(1) })

	c.Stop()
	c.Stop()
	c.Start(context.Background())
	time.Sleep(10 * time.Millisecond)

	if steps.Load() != 0 {
		t.Errorf("clock ticked after Stop: %d steps", steps.Load())
	}
}

func TestGravityClockStartTwice(t *testing.T) {
	var steps atomic.Int64
	c := NewGravityClock(time.Millisecond, func() { steps.Add(1) })

	c.Start(context.Background())
	c.Start(context.Background())
	waitFor(t, 2*time.Second, func() bool { return steps.Load() >= 1 })
	c.Stop()
}

func TestGravityClockStopIsBounded(t *testing.T) {
	c := NewGravityClock(time.Hour, func() {})
	c.Start(context.Background())

	start := time.Now()
	c.Stop()
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Stop took %s with an idle ticker", elapsed)
	}
}
