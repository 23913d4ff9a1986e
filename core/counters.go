package core

// Counters holds the two interrupt-fed event counts. Handlers increment,
// the control loop snapshots; every access is its own critical section.
type Counters struct {
	timer    uint32
	external uint16
}

// IncrementTimer adds one to the timer count, wrapping at 2^32.
// Call only from the timer handler.
func (c *Counters) IncrementTimer() {
	state := disableInterrupts()
	defer restoreInterrupts(state)
	c.timer++
}

// IncrementExternal adds one to the external count, wrapping at 2^16.
// Call only from the external edge handler.
func (c *Counters) IncrementExternal() {
	state := disableInterrupts()
	defer restoreInterrupts(state)
	c.external++
}

// Snapshot returns both counts. Each count is read atomically, the pair is
// not: the two values may come from different instants.
func (c *Counters) Snapshot() (timer uint32, external uint16) {
	return c.Timer(), c.External()
}

// Timer returns the timer count.
func (c *Counters) Timer() uint32 {
	state := disableInterrupts()
	defer restoreInterrupts(state)
	return c.timer
}

// External returns the external event count.
func (c *Counters) External() uint16 {
	state := disableInterrupts()
	defer restoreInterrupts(state)
	return c.external
}

// NewTimerHandler returns the compare-match handler. It counts matches in a
// private sub-counter and bumps the timer count once every ticksPerCount
// matches. A zero ticksPerCount is treated as one.
func NewTimerHandler(c *Counters, ticksPerCount uint16) func() {
	if ticksPerCount == 0 {
		ticksPerCount = 1
	}
	var ticks uint16
	return func() {
		ticks++
		if ticks < ticksPerCount {
			return
		}
		ticks = 0
		c.IncrementTimer()
	}
}

// NewExternalHandler returns the external edge handler.
func NewExternalHandler(c *Counters) func() {
	return c.IncrementExternal
}
