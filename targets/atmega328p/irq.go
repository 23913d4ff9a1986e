//go:build atmega328p

package main

import (
	"device/avr"
	"machine"
	"runtime/interrupt"

	"sensordash/core"
)

// edgePin is INT0.
const edgePin = machine.D2

// timer1Top gives a 1 kHz compare match: 16 MHz / 64 / (249+1).
const timer1Top = 249

var (
	counters core.Counters

	// Set once before the interrupts are unmasked.
	onTimer func()
	onEdge  func()
)

// configureInterrupts installs both handlers and starts the event sources.
func configureInterrupts(cfg core.Config) {
	onTimer = core.NewTimerHandler(&counters, cfg.TimerTicksPerCount)
	onEdge = core.NewExternalHandler(&counters)

	interrupt.New(avr.IRQ_TIMER1_COMPA, func(interrupt.Interrupt) {
		onTimer()
	})
	interrupt.New(avr.IRQ_INT0, func(interrupt.Interrupt) {
		onEdge()
	})

	// Timer1: CTC on OCR1A, clk/64, compare-match A interrupt.
	avr.TCCR1A.Set(0)
	avr.TCCR1B.Set(avr.TCCR1B_WGM12 | avr.TCCR1B_CS11 | avr.TCCR1B_CS10)
	avr.OCR1AH.Set(0)
	avr.OCR1AL.Set(timer1Top)
	avr.TIMSK1.SetBits(avr.TIMSK1_OCIE1A)

	// INT0 on the falling edge.
	edgePin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	avr.EICRA.Set(avr.EICRA_ISC01)
	avr.EIFR.Set(avr.EIFR_INTF0)
	avr.EIMSK.SetBits(avr.EIMSK_INT0)

	avr.Asm("sei")
}
