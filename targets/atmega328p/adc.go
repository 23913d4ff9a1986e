//go:build atmega328p

package main

import (
	"device/avr"

	"sensordash/core"
)

// adcRegisters implements core.ADCPeripheral for one fixed channel.
type adcRegisters struct{}

// configureADC selects AVcc as reference and the given channel, and enables
// the converter with a /128 clock (125 kHz at 16 MHz).
func configureADC(channel uint8) adcRegisters {
	avr.ADMUX.Set(avr.ADMUX_REFS0 | (channel & 0x07))
	avr.ADCSRA.Set(avr.ADCSRA_ADEN | avr.ADCSRA_ADPS2 | avr.ADCSRA_ADPS1 | avr.ADCSRA_ADPS0)
	return adcRegisters{}
}

func (adcRegisters) StartConversion() {
	avr.ADCSRA.SetBits(avr.ADCSRA_ADSC)
}

// Converting reports ADSC, which hardware clears when the result is ready.
func (adcRegisters) Converting() bool {
	return avr.ADCSRA.HasBits(avr.ADCSRA_ADSC)
}

// Result reads ADCL first; that latches ADCH until it is read.
func (adcRegisters) Result() core.ADCValue {
	low := avr.ADCL.Get()
	high := avr.ADCH.Get()
	return core.ADCValue(low) | core.ADCValue(high)<<8
}
