//go:build atmega328p

package main

import (
	"device/avr"
	"machine"

	"sensordash/core"
)

// twiRegisters implements core.TWIPeripheral on the ATmega328P TWI unit.
type twiRegisters struct{}

// configureTWI sets the bit rate with a prescaler of 1 and enables the unit,
// which hands PC4/PC5 over to SDA/SCL.
func configureTWI(frequencyHz uint32) twiRegisters {
	avr.TWSR.ClearBits(avr.TWSR_TWPS0 | avr.TWSR_TWPS1)
	avr.TWBR.Set(uint8(((machine.CPUFrequency() / frequencyHz) - 16) / 2))
	avr.TWCR.Set(avr.TWCR_TWEN)
	return twiRegisters{}
}

func (twiRegisters) Control(action core.TWIControl) {
	switch action {
	case core.TWIStart:
		avr.TWCR.Set(avr.TWCR_TWINT | avr.TWCR_TWSTA | avr.TWCR_TWEN)
	case core.TWITransmit:
		avr.TWCR.Set(avr.TWCR_TWINT | avr.TWCR_TWEN)
	case core.TWIStop:
		avr.TWCR.Set(avr.TWCR_TWINT | avr.TWCR_TWSTO | avr.TWCR_TWEN)
	}
}

// Ready reports the TWINT flag.
func (twiRegisters) Ready() bool {
	return avr.TWCR.HasBits(avr.TWCR_TWINT)
}

// Status masks off the prescaler bits.
func (twiRegisters) Status() uint8 {
	return avr.TWSR.Get() & 0xF8
}

func (twiRegisters) SetData(b byte) {
	avr.TWDR.Set(b)
}
