package sim

import (
	"sync"

	"sensordash/core"
)

// Recorder is a compare register that remembers what was written. It
// implements core.CompareRegister.
type Recorder struct {
	mu     sync.Mutex
	value  core.PWMValue
	writes uint32
}

// SetCompare records v.
func (r *Recorder) SetCompare(v core.PWMValue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = v
	r.writes++
}

// Value returns the last compare value.
func (r *Recorder) Value() core.PWMValue {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value
}

// Writes returns how many times the register was written.
func (r *Recorder) Writes() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writes
}

// Duty returns the last compare value as a fraction of full scale.
func (r *Recorder) Duty() float64 {
	return float64(r.Value()) / 255
}
