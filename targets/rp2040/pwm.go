//go:build rp2040 || rp2350

package main

import (
	"machine"

	"sensordash/core"
)

// PWM_MAX is the actuator range the core produces.
const PWM_MAX = 255

// pwmPeripheral is an interface for PWM hardware peripherals
// This abstracts over TinyGo's unexported *pwmGroup type
type pwmPeripheral interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// RP2040PWMDriver implements core.CompareRegister on one PWM slice channel.
type RP2040PWMDriver struct {
	pwm     pwmPeripheral
	channel uint8
}

// NewRP2040PWMDriver configures the slice that owns pin for the given period.
func NewRP2040PWMDriver(pin machine.Pin, periodNs uint64) (*RP2040PWMDriver, error) {
	// RP2040: GPIO pin N maps to slice (N >> 1) & 0x7
	pwm := getPWMPeripheral(uint8((uint32(pin) >> 1) & 0x7))

	if err := pwm.Configure(machine.PWMConfig{Period: periodNs}); err != nil {
		return nil, err
	}
	channel, err := pwm.Channel(pin)
	if err != nil {
		return nil, err
	}
	return &RP2040PWMDriver{pwm: pwm, channel: channel}, nil
}

// SetCompare scales the 0-255 value onto the slice's counter top.
func (d *RP2040PWMDriver) SetCompare(v core.PWMValue) {
	top := d.pwm.Top()
	d.pwm.Set(d.channel, uint32(v)*top/PWM_MAX)
}

// getPWMPeripheral returns the PWM peripheral for a given slice number
// RP2040 has 8 PWM slices: PWM0-PWM7
func getPWMPeripheral(sliceNum uint8) pwmPeripheral {
	switch sliceNum {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}
