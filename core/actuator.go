package core

// PWMValue is an actuator duty value at the waveform generator's resolution.
type PWMValue uint8

// CompareRegister is the compare-value register of a waveform generator
// already configured for PWM output.
type CompareRegister interface {
	SetCompare(v PWMValue)
}

// Actuator sets a proportional output level. Values are written as given;
// callers scale them beforehand.
type Actuator struct {
	out   CompareRegister
	level PWMValue
}

// NewActuator wraps a compare register.
func NewActuator(out CompareRegister) *Actuator {
	return &Actuator{out: out}
}

// SetLevel writes v to the compare register.
func (a *Actuator) SetLevel(v PWMValue) {
	a.out.SetCompare(v)
	a.level = v
}

// Level returns the last value written.
func (a *Actuator) Level() PWMValue {
	return a.level
}
