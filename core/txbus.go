package core

import (
	"errors"

	"tinygo.org/x/drivers"
)

// txBufferSize holds one control byte plus a full 128-column page.
const txBufferSize = 1 + 128

var (
	ErrTxOverflow = errors.New("bus frame exceeds staging buffer")
	ErrTxReadBit  = errors.New("bus address has read bit set")
)

// TxBus adapts a transaction-oriented bus (anything implementing
// drivers.I2C, e.g. machine.I2C) to the byte-level BusDriver contract.
// Bytes are staged between Start and Stop and sent as a single Tx.
// Acknowledgement of individual bytes is not visible on such buses, so
// WriteByte only fails on framing errors; a failed Tx surfaces in Err.
type TxBus struct {
	wire drivers.I2C

	buf     [txBufferSize]byte
	n       int
	addr    uint16
	active  bool
	first   bool
	aborted bool

	err      error
	failures uint32
}

// NewTxBus wraps an already configured drivers.I2C bus.
func NewTxBus(wire drivers.I2C) *TxBus {
	return &TxBus{wire: wire}
}

// Start opens a staged transaction.
func (b *TxBus) Start() bool {
	if b.active {
		return false
	}
	b.active = true
	b.first = true
	b.aborted = false
	b.n = 0
	return true
}

// WriteByte stages one byte. The first byte is decoded as address+R/W.
func (b *TxBus) WriteByte(v byte) bool {
	if !b.active {
		return false
	}
	if b.first {
		b.first = false
		if v&1 != 0 {
			b.err = ErrTxReadBit
			b.aborted = true
			return false
		}
		b.addr = uint16(v >> 1)
		return true
	}
	if b.n >= len(b.buf) {
		b.err = ErrTxOverflow
		b.aborted = true
		return false
	}
	b.buf[b.n] = v
	b.n++
	return true
}

// Stop flushes the staged frame. Frames that failed a WriteByte or carry no
// payload are dropped.
func (b *TxBus) Stop() {
	if !b.active {
		return
	}
	b.active = false
	if b.aborted || b.first || b.n == 0 {
		return
	}
	if err := b.wire.Tx(b.addr, b.buf[:b.n], nil); err != nil {
		b.err = err
		b.failures++
		DebugPrintln("[BUS] tx failed: " + err.Error())
		return
	}
	b.err = nil
}

// Err returns the error of the most recent failed frame, cleared by the
// next successful flush.
func (b *TxBus) Err() error {
	return b.err
}

// Failures returns how many flushed frames were rejected by the wire.
func (b *TxBus) Failures() uint32 {
	return b.failures
}
