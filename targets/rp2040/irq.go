//go:build rp2040 || rp2350

package main

import (
	"machine"
	"time"

	"sensordash/core"
)

// edgePin counts falling edges; it idles high on its pull-up.
const edgePin = machine.GP15

// tickPeriod is the compare-match period of the AVR build, kept so
// cfg.TimerTicksPerCount means the same thing on both targets.
const tickPeriod = time.Millisecond

var counters core.Counters

// configureInterrupts starts both event sources. The edge handler runs in
// interrupt context; the tick runs as a goroutine off the runtime timer.
func configureInterrupts(cfg core.Config) error {
	onEdge := core.NewExternalHandler(&counters)
	edgePin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	err := edgePin.SetInterrupt(machine.PinFalling, func(machine.Pin) {
		onEdge()
	})
	if err != nil {
		return err
	}

	onTimer := core.NewTimerHandler(&counters, cfg.TimerTicksPerCount)
	go func() {
		ticker := time.NewTicker(tickPeriod)
		for range ticker.C {
			onTimer()
		}
	}()
	return nil
}
