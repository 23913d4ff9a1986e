package sim

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"sensordash/core"
)

// Scenario describes one simulator run.
type Scenario struct {
	Name     string         `yaml:"name"`
	Sensor   SensorConfig   `yaml:"sensor"`
	Timer    TimerConfig    `yaml:"timer"`
	External ExternalConfig `yaml:"external"`
	Bus      BusConfig      `yaml:"bus"`
	Loop     LoopConfig     `yaml:"loop"`
	Display  DisplayConfig  `yaml:"display"`
}

// SensorConfig shapes the simulated analog input, in converter counts.
type SensorConfig struct {
	Waveform  string        `yaml:"waveform"`
	Base      float64       `yaml:"base"`
	Amplitude float64       `yaml:"amplitude"`
	Period    time.Duration `yaml:"period"`
	Noise     int           `yaml:"noise"`
	Seed      int64         `yaml:"seed"`

	// ConversionPolls is how many busy polls each conversion takes.
	ConversionPolls int `yaml:"conversion_polls"`

	// MaxSample is the converter's full-scale count.
	MaxSample uint16 `yaml:"max_sample"`
}

// TimerConfig is the periodic compare-match source.
type TimerConfig struct {
	TickMS        int    `yaml:"tick_ms"`
	TicksPerCount uint16 `yaml:"ticks_per_count"`
}

// ExternalConfig is the edge source. IntervalMS of zero means edges only
// arrive on request.
type ExternalConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// BusConfig controls fault injection on the display bus.
type BusConfig struct {
	NackEvery uint32 `yaml:"nack_every"`
}

// LoopConfig paces the control loop on the host.
type LoopConfig struct {
	IntervalMS int    `yaml:"interval_ms"`
	Threshold  uint16 `yaml:"threshold"`
	Units      uint32 `yaml:"units"`
}

// DisplayConfig places the values on the panel.
type DisplayConfig struct {
	ValueColumn uint8 `yaml:"value_column"`
}

var (
	ErrScenarioWaveform = errors.New("unknown waveform")
	ErrScenarioTick     = errors.New("timer tick_ms must be positive")
	ErrScenarioInterval = errors.New("interval must not be negative")
)

// DefaultScenario is a slow sine on a 10-bit converter with the firmware's
// stock timing.
func DefaultScenario() *Scenario {
	cfg := core.DefaultConfig()
	return &Scenario{
		Name: "default",
		Sensor: SensorConfig{
			Waveform:  WaveSine,
			Base:      512,
			Amplitude: 300,
			Period:    10 * time.Second,
			Noise:     1,
			Seed:      1,
			MaxSample: uint16(cfg.Scale.MaxSample),
		},
		Timer: TimerConfig{
			TickMS:        1,
			TicksPerCount: cfg.TimerTicksPerCount,
		},
		External: ExternalConfig{IntervalMS: 250},
		Loop: LoopConfig{
			IntervalMS: 20,
			Threshold:  uint16(cfg.Threshold),
			Units:      cfg.Scale.Units,
		},
		Display: DisplayConfig{ValueColumn: cfg.Layout.ValueColumn},
	}
}

// LoadScenario reads a YAML scenario. Fields absent from the file keep
// their defaults.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes and validates a YAML scenario.
func ParseScenario(data []byte) (*Scenario, error) {
	sc := DefaultScenario()
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %q: %w", sc.Name, err)
	}
	return sc, nil
}

// Validate checks the scenario and the firmware configuration it produces.
func (s *Scenario) Validate() error {
	switch s.Sensor.Waveform {
	case "", WaveConstant, WaveSine, WaveRamp, WaveSquare:
	default:
		return fmt.Errorf("%w: %q", ErrScenarioWaveform, s.Sensor.Waveform)
	}
	if s.Timer.TickMS <= 0 {
		return ErrScenarioTick
	}
	if s.External.IntervalMS < 0 || s.Loop.IntervalMS < 0 {
		return ErrScenarioInterval
	}
	cfg := s.Config()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("firmware config: %w", err)
	}
	return nil
}

// Config returns the firmware configuration for this scenario.
func (s *Scenario) Config() core.Config {
	cfg := core.DefaultConfig()
	cfg.Threshold = core.ADCValue(s.Loop.Threshold)
	cfg.Scale.MaxSample = core.ADCValue(s.Sensor.MaxSample)
	if s.Loop.Units != 0 {
		cfg.Scale.Units = s.Loop.Units
	}
	cfg.Layout.ValueColumn = s.Display.ValueColumn
	cfg.TimerTicksPerCount = s.Timer.TicksPerCount
	return cfg
}
