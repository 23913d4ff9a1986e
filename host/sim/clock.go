package sim

import (
	"sync"
	"time"
)

// VirtualClock is a manually advanced clock for deterministic runs.
type VirtualClock struct {
	mu sync.Mutex
	t  time.Time
}

// NewVirtualClock starts at the Unix epoch.
func NewVirtualClock() *VirtualClock {
	return &VirtualClock{t: time.Unix(0, 0)}
}

// Now returns the current virtual time.
func (c *VirtualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

// Advance moves the clock forward by d.
func (c *VirtualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// Replay runs steps loop passes in virtual time. Before each pass the clock
// advances one loop interval (1 ms when the scenario free-runs) and the timer
// and edge sources fire as often as they would have in real time. visit, if
// not nil, sees the board after every pass. Replay stops at the first fault
// and returns it along with the runner.
func Replay(sc *Scenario, steps int, visit func(step int, snap Snapshot)) (*Runner, error) {
	clock := NewVirtualClock()
	r, err := NewRunnerWithClock(sc, clock.Now)
	if err != nil {
		return nil, err
	}
	if err := r.Begin(); err != nil {
		return r, err
	}

	interval := sc.Loop.IntervalMS
	if interval == 0 {
		interval = 1
	}

	var elapsed, ticks, edges int
	for step := 0; step < steps; step++ {
		clock.Advance(millis(interval))
		elapsed += interval

		due := elapsed / sc.Timer.TickMS
		r.Tick(due - ticks)
		ticks = due

		if sc.External.IntervalMS > 0 {
			for n := elapsed / sc.External.IntervalMS; edges < n; edges++ {
				r.Edge()
			}
		}

		if err := r.Step(); err != nil {
			return r, err
		}
		if visit != nil {
			visit(step, r.Snapshot())
		}
	}
	return r, nil
}
