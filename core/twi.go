package core

// TWIControl is an action written to the TWI control register.
type TWIControl uint8

const (
	TWIStart    TWIControl = iota + 1 // send start condition
	TWITransmit                       // shift out the data register
	TWIStop                           // send stop condition
)

// TWIPeripheral is the register-level view of a two-wire interface.
// Targets implement it on top of their hardware registers.
type TWIPeripheral interface {
	// Control clears the interrupt flag and triggers the given action.
	Control(action TWIControl)

	// Ready reports whether the last action has completed.
	Ready() bool

	// Status returns the status code of the last completed action.
	Status() uint8

	// SetData loads the data register.
	SetData(b byte)
}

// TWIBus implements BusDriver by polling a TWIPeripheral.
type TWIBus struct {
	hw TWIPeripheral

	// MaxSpins bounds each busy-wait. Zero waits forever, so an unresponsive
	// bus hangs the caller.
	MaxSpins uint32

	active bool
	first  bool
}

// NewTWIBus wraps a TWI peripheral. The peripheral must already be clocked.
func NewTWIBus(hw TWIPeripheral) *TWIBus {
	return &TWIBus{hw: hw}
}

// Start issues a start condition.
func (b *TWIBus) Start() bool {
	if b.active {
		return false
	}
	b.hw.Control(TWIStart)
	if !b.wait() {
		return false
	}
	if b.hw.Status() != StatusStart {
		return false
	}
	b.active = true
	b.first = true
	return true
}

// WriteByte transmits a byte. The address byte expects StatusAddrAck,
// everything after it StatusDataAck.
func (b *TWIBus) WriteByte(v byte) bool {
	if !b.active {
		return false
	}
	b.hw.SetData(v)
	b.hw.Control(TWITransmit)
	if !b.wait() {
		return false
	}

	want := uint8(StatusDataAck)
	if b.first {
		want = StatusAddrAck
		b.first = false
	}
	return b.hw.Status() == want
}

// Stop issues a stop condition without waiting for it to complete.
func (b *TWIBus) Stop() {
	b.hw.Control(TWIStop)
	b.active = false
	b.first = false
}

func (b *TWIBus) wait() bool {
	if b.MaxSpins == 0 {
		for !b.hw.Ready() {
		}
		return true
	}
	for i := uint32(0); i < b.MaxSpins; i++ {
		if b.hw.Ready() {
			return true
		}
	}
	DebugPrintln("[BUS] busy-wait limit reached")
	return false
}
