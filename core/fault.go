package core

// FaultCode identifies a fatal firmware condition.
type FaultCode uint8

const (
	FaultUnknown     FaultCode = iota
	FaultConfig                // configuration rejected at startup
	FaultSampleRange           // converter returned a value above full scale
	FaultPanic                 // target-level panic recovered by main
)

// FaultError is a fatal condition. Once raised the firmware never resumes.
type FaultError struct {
	Code   FaultCode
	Reason string
}

func (e *FaultError) Error() string {
	return "fault " + utoa(uint32(e.Code)) + ": " + e.Reason
}

var (
	ErrSampleRange  = &FaultError{Code: FaultSampleRange, Reason: "sample above full scale"}
	ErrUnknownFault = &FaultError{Code: FaultUnknown, Reason: "unspecified"}
)

// Halter is the terminal step of the fault path. Firmware implementations
// never return.
type Halter interface {
	Halt(err error)
}

// Indicator is a dedicated output line used to signal a fault.
// machine.Pin satisfies it.
type Indicator interface {
	Set(high bool)
}

// FaultIndicator halts by disabling interrupts, which stops sampling,
// actuation and counting, then toggles the indicator forever.
type FaultIndicator struct {
	Pin Indicator

	// Delay is the spin count between toggles.
	Delay uint32
}

// DefaultFaultDelay gives a toggle rate visible to the eye on a 16 MHz part.
const DefaultFaultDelay = 100000

// Halt never returns.
func (f *FaultIndicator) Halt(err error) {
	disableInterrupts()
	f.blink(-1)
}

// blink toggles the indicator n times, or forever when n is negative.
func (f *FaultIndicator) blink(n int) {
	delay := f.Delay
	if delay == 0 {
		delay = DefaultFaultDelay
	}
	high := true
	for i := 0; n < 0 || i < n; i++ {
		f.Pin.Set(high)
		high = !high
		spinDelay(delay)
	}
}
