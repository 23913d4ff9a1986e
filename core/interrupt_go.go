//go:build !tinygo

package core

import "sync"

// State is a placeholder for interrupt state on regular Go
type State uintptr

// irqMask stands in for the global interrupt enable bit on regular Go, so
// goroutines playing the part of interrupt handlers (tests, the host
// simulator) are excluded from each other's critical sections.
var irqMask sync.Mutex

// disableInterrupts enters the critical section. Calls must not nest.
func disableInterrupts() State {
	irqMask.Lock()
	return 0
}

// restoreInterrupts leaves the critical section
func restoreInterrupts(state State) {
	irqMask.Unlock()
}
