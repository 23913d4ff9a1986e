//go:build rp2040 || rp2350

package main

import (
	"machine"

	"sensordash/core"
)

// Display bus pins. I2C0 default pins on the Pico.
const (
	displaySDA = machine.GP4
	displaySCL = machine.GP5
)

// newDisplayBus configures I2C0 and wraps it for the core display layer.
//
// machine.I2C only exposes whole transactions (Tx), so the byte-level
// BusDriver contract is provided by core.TxBus, which stages each frame and
// sends it on Stop.
func newDisplayBus(frequencyHz uint32) (*core.TxBus, error) {
	i2c := machine.I2C0
	err := i2c.Configure(machine.I2CConfig{
		Frequency: frequencyHz,
		SDA:       displaySDA,
		SCL:       displaySCL,
	})
	if err != nil {
		return nil, err
	}
	return core.NewTxBus(i2c), nil
}
