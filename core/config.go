package core

import "errors"

// Scale maps raw samples onto the actuator range and the displayed units.
type Scale struct {
	MaxSample ADCValue // full-scale conversion result
	MaxLevel  PWMValue // actuator value at full scale
	Units     uint32   // displayed units at full scale (e.g. 5 volts)
}

// Level scales a sample linearly onto [0, MaxLevel]. Samples above
// MaxSample saturate.
func (s Scale) Level(sample ADCValue) PWMValue {
	if sample >= s.MaxSample {
		return s.MaxLevel
	}
	return PWMValue(uint32(sample) * uint32(s.MaxLevel) / uint32(s.MaxSample))
}

// Milli returns the sample in units as whole and thousandths parts.
func (s Scale) Milli(sample ADCValue) (whole, frac uint32) {
	milli := uint32(sample) * s.Units * 1000 / uint32(s.MaxSample)
	return milli / 1000, milli % 1000
}

// unitsFieldWidth is the widest "W.FFF" rendering for a full scale of units.
func unitsFieldWidth(units uint32) int {
	return decimalWidth(units) + len(".FFF")
}

// Layout places the four dashboard lines. Labels start at column 0 of their
// page; values start at ValueColumn.
type Layout struct {
	ValueColumn uint8

	SamplePage   uint8
	UnitsPage    uint8
	TimerPage    uint8
	ExternalPage uint8

	SampleLabel   []byte
	UnitsLabel    []byte
	TimerLabel    []byte
	ExternalLabel []byte
}

// Config is the firmware configuration. Targets start from DefaultConfig and
// override what their board needs.
type Config struct {
	Address BusAddress

	// Threshold is the largest sample delta treated as noise.
	Threshold ADCValue

	Scale  Scale
	Layout Layout

	// TimerTicksPerCount is how many compare matches make one timer count.
	TimerTicksPerCount uint16
}

// DefaultConfig returns the configuration for a 10-bit sensor on a 0-5 V
// range, an 8-bit actuator, and a 128x64 panel.
func DefaultConfig() Config {
	return Config{
		Address:   DisplayAddress,
		Threshold: 2,
		Scale: Scale{
			MaxSample: 1023,
			MaxLevel:  255,
			Units:     5,
		},
		Layout: Layout{
			ValueColumn:   48,
			SamplePage:    0,
			UnitsPage:     1,
			TimerPage:     2,
			ExternalPage:  3,
			SampleLabel:   []byte("ADC"),
			UnitsLabel:    []byte("V"),
			TimerLabel:    []byte("TMR"),
			ExternalLabel: []byte("EXT"),
		},
		TimerTicksPerCount: 1000,
	}
}

var (
	ErrConfigScale  = errors.New("scale: MaxSample and MaxLevel must be non-zero")
	ErrConfigUnits  = errors.New("scale: Units*1000*MaxSample overflows 32 bits")
	ErrConfigPage   = errors.New("layout: page out of range or shared")
	ErrConfigColumn = errors.New("layout: value column leaves no room or overlaps a label")
)

// Validate checks the configuration. It does not modify it.
func (c *Config) Validate() error {
	s := c.Scale
	if s.MaxSample == 0 || s.MaxLevel == 0 {
		return ErrConfigScale
	}
	if s.Units > ^uint32(0)/1000/uint32(s.MaxSample) {
		return ErrConfigUnits
	}

	l := c.Layout
	pages := [...]uint8{l.SamplePage, l.UnitsPage, l.TimerPage, l.ExternalPage}
	for i, p := range pages {
		if p > DisplayMaxPage {
			return ErrConfigPage
		}
		for _, q := range pages[i+1:] {
			if p == q {
				return ErrConfigPage
			}
		}
	}

	width := maxDigits
	if w := unitsFieldWidth(s.Units); w > width {
		width = w
	}
	if int(l.ValueColumn)+width > DisplayMaxColumn+1 {
		return ErrConfigColumn
	}
	for _, label := range [...][]byte{l.SampleLabel, l.UnitsLabel, l.TimerLabel, l.ExternalLabel} {
		if len(label) > int(l.ValueColumn) {
			return ErrConfigColumn
		}
	}
	return nil
}
