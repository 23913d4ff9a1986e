//go:build rp2040 || rp2350

package main

import (
	"machine"

	"sensordash/core"
)

// sensorBits is the resolution the core expects (0..1023).
const sensorBits = 10

// RpAdcDriver implements core.ADCPeripheral using TinyGo's machine.ADC.
// machine.ADC.Get blocks until the conversion is done, so StartConversion
// does the whole read and Converting never reports busy.
type RpAdcDriver struct {
	adc    machine.ADC
	result core.ADCValue
}

// NewRPAdcDriver initializes the ADC block and configures one input pin.
func NewRPAdcDriver(pin machine.Pin) (*RpAdcDriver, error) {
	machine.InitADC()

	d := &RpAdcDriver{adc: machine.ADC{Pin: pin}}
	if err := d.adc.Configure(machine.ADCConfig{}); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *RpAdcDriver) StartConversion() {
	// TinyGo scales every ADC to 16 bits; drop back to the sensor resolution.
	d.result = core.ADCValue(d.adc.Get() >> (16 - sensorBits))
}

func (d *RpAdcDriver) Converting() bool {
	return false
}

func (d *RpAdcDriver) Result() core.ADCValue {
	return d.result
}
