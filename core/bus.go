package core

// BusDriver frames start/byte/stop sequences on the two-wire bus.
// A false return from Start or WriteByte means the caller must abandon the
// rest of the transaction; Stop never reports failure.
type BusDriver interface {
	// Start issues a start condition and reports whether it was acknowledged.
	Start() bool

	// WriteByte transmits one byte and reports whether the target ACKed it.
	// The first byte after Start is always the address with the R/W bit.
	WriteByte(b byte) bool

	// Stop issues a stop condition. Fire-and-forget.
	Stop()
}

// BusAddress is a 7-bit bus target address.
type BusAddress uint8

// WriteAddress returns the first payload byte of a write transaction.
func (a BusAddress) WriteAddress() byte {
	return byte(a&0x7F) << 1
}

// TWI master-transmitter status codes (status register with prescaler bits masked).
const (
	StatusStart         = 0x08 // start condition transmitted
	StatusRepeatedStart = 0x10 // repeated start transmitted
	StatusAddrAck       = 0x18 // SLA+W transmitted, ACK received
	StatusAddrNack      = 0x20 // SLA+W transmitted, NACK received
	StatusDataAck       = 0x28 // data byte transmitted, ACK received
	StatusDataNack      = 0x30 // data byte transmitted, NACK received
	StatusArbLost       = 0x38
)
