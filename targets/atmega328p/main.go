//go:build atmega328p

// Firmware for an ATmega328P board (Arduino Uno/Nano class): analog sensor
// on ADC0, PWM actuator on D11, event input on D2, SSD1306 on the TWI pins,
// fault indicator on the on-board LED.
package main

import (
	"machine"

	"sensordash/core"
)

const (
	sensorChannel = 0
	busFrequency  = 400000

	// Debug lines go out on the UART; leave off unless a console is attached.
	debug = false
)

func main() {
	cfg := core.DefaultConfig()

	if debug {
		machine.Serial.Configure(machine.UARTConfig{BaudRate: 115200})
		core.SetDebugWriter(func(s string) {
			machine.Serial.Write([]byte(s))
			machine.Serial.Write([]byte("\r\n"))
		})
		core.SetDebugEnabled(true)
	}

	machine.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	machine.LED.Low()

	bus := core.NewTWIBus(configureTWI(busFrequency))
	display := core.NewDisplay(bus, cfg.Address)
	sampler := core.NewSampler(configureADC(sensorChannel))
	actuator := core.NewActuator(configurePWM())
	halter := &core.FaultIndicator{Pin: machine.LED, Delay: core.DefaultFaultDelay}

	loop := core.NewLoop(cfg, display, sampler, actuator, &counters, halter)

	configureInterrupts(cfg)

	loop.Run()
}
