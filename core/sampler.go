package core

// ADCValue is a raw conversion result at the sensor's native resolution.
type ADCValue uint16

// ADCPeripheral is the register-level view of a single-shot converter.
type ADCPeripheral interface {
	// StartConversion sets the conversion-start flag.
	StartConversion()

	// Converting reports whether the busy flag is still set.
	Converting() bool

	// Result returns the last conversion result.
	Result() ADCValue
}

// Sampler performs blocking single-shot reads. There is no timeout: a
// converter that never clears its busy flag stalls the caller.
type Sampler struct {
	adc ADCPeripheral
}

// NewSampler wraps a configured converter.
func NewSampler(adc ADCPeripheral) *Sampler {
	return &Sampler{adc: adc}
}

// Read triggers one conversion and returns its result.
func (s *Sampler) Read() ADCValue {
	s.adc.StartConversion()
	for s.adc.Converting() {
	}
	return s.adc.Result()
}
