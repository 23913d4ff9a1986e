//go:build atmega328p

package main

import (
	"device/avr"
	"machine"

	"sensordash/core"
)

// pwmPin is OC2A. Timer0 is left to the runtime.
const pwmPin = machine.D11

// timer2Compare implements core.CompareRegister on OCR2A.
type timer2Compare struct{}

// configurePWM puts Timer2 in fast PWM mode, non-inverting on OC2A, clk/64
// (about 976 Hz at 16 MHz).
func configurePWM() timer2Compare {
	pwmPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	avr.OCR2A.Set(0)
	avr.TCCR2A.Set(avr.TCCR2A_COM2A1 | avr.TCCR2A_WGM21 | avr.TCCR2A_WGM20)
	avr.TCCR2B.Set(avr.TCCR2B_CS22)
	return timer2Compare{}
}

func (timer2Compare) SetCompare(v core.PWMValue) {
	avr.OCR2A.Set(uint8(v))
}
