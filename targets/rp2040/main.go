//go:build rp2040 || rp2350

// Firmware for RP2040/RP2350 boards: analog sensor on ADC0 (GP26), PWM
// actuator on GP16, event input on GP15, SSD1306 on I2C0, fault indicator
// on the on-board LED.
package main

import (
	"machine"
	"time"

	"sensordash/core"
)

const (
	sensorPin    = machine.ADC0
	actuatorPin  = machine.GP16
	busFrequency = 400000

	// 1 kHz PWM carrier
	actuatorPeriodNs = 1000000

	// Yield between passes so the tick goroutine gets scheduled.
	loopYield = 100 * time.Microsecond

	// Passes between status lines on the console.
	statusEvery = 10000
)

func main() {
	// Disable watchdog on boot to clear any previous state
	err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
	if err != nil {
		return
	}

	initConsole()

	cfg := core.DefaultConfig()

	machine.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	machine.LED.Low()
	halter := &core.FaultIndicator{Pin: machine.LED, Delay: 10 * core.DefaultFaultDelay}

	bus, err := newDisplayBus(busFrequency)
	if err != nil {
		halter.Halt(err)
	}
	adc, err := NewRPAdcDriver(sensorPin)
	if err != nil {
		halter.Halt(err)
	}
	pwm, err := NewRP2040PWMDriver(actuatorPin, actuatorPeriodNs)
	if err != nil {
		halter.Halt(err)
	}

	loop := core.NewLoop(cfg,
		core.NewDisplay(bus, cfg.Address),
		core.NewSampler(adc),
		core.NewActuator(pwm),
		&counters,
		halter,
	)

	if err := configureInterrupts(cfg); err != nil {
		loop.Halt(err)
	}
	if err := loop.Begin(); err != nil {
		loop.Halt(err)
	}

	for {
		if err := step(loop); err != nil {
			loop.Halt(err)
		}
		if stats := loop.Stats(); stats.Iterations%statusEvery == 0 {
			core.DebugPrintln(stats.String())
		}
		time.Sleep(loopYield)
	}
}

// step runs one pass and turns a panic into a fault, so a runtime error
// ends in the same visible halt as any other fatal condition.
func step(loop *core.Loop) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &core.FaultError{Code: core.FaultPanic, Reason: panicReason(r)}
		}
	}()
	return loop.Step()
}

func panicReason(r interface{}) string {
	switch v := r.(type) {
	case error:
		return v.Error()
	case string:
		return v
	default:
		return "panic"
	}
}
