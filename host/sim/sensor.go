package sim

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"sensordash/core"
)

// Waveform names accepted in scenario files.
const (
	WaveConstant = "constant"
	WaveSine     = "sine"
	WaveRamp     = "ramp"
	WaveSquare   = "square"
)

// Sensor is a simulated single-shot converter. Each conversion samples the
// configured waveform at the current clock time, adds uniform noise and the
// manual offset, and clamps to full scale. It implements core.ADCPeripheral.
type Sensor struct {
	mu sync.Mutex

	cfg    SensorConfig
	max    core.ADCValue
	rng    *rand.Rand
	now    func() time.Time
	start  time.Time
	offset int

	// conversion state
	busy   int
	result core.ADCValue
	reads  uint32
}

// NewSensor builds a converter with the given full-scale count.
func NewSensor(cfg SensorConfig, max core.ADCValue) *Sensor {
	return NewSensorWithClock(cfg, max, time.Now)
}

// NewSensorWithClock is NewSensor with an injectable clock, for tests.
func NewSensorWithClock(cfg SensorConfig, max core.ADCValue, now func() time.Time) *Sensor {
	return &Sensor{
		cfg:   cfg,
		max:   max,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		now:   now,
		start: now(),
	}
}

// StartConversion latches a new sample. The busy flag stays set for
// ConversionPolls reads of Converting.
func (s *Sensor) StartConversion() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = s.sample()
	s.busy = s.cfg.ConversionPolls
	s.reads++
}

// Converting reports the busy flag.
func (s *Sensor) Converting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy > 0 {
		s.busy--
		return true
	}
	return false
}

// Result returns the latched sample.
func (s *Sensor) Result() core.ADCValue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Nudge shifts every later sample by delta counts.
func (s *Sensor) Nudge(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offset += delta
}

// Offset returns the accumulated nudge.
func (s *Sensor) Offset() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offset
}

// Conversions returns how many conversions were started.
func (s *Sensor) Conversions() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads
}

func (s *Sensor) sample() core.ADCValue {
	v := s.wave(s.now().Sub(s.start))
	if s.cfg.Noise > 0 {
		v += float64(s.rng.Intn(2*s.cfg.Noise+1) - s.cfg.Noise)
	}
	v += float64(s.offset)

	switch {
	case v < 0:
		return 0
	case v > float64(s.max):
		return s.max
	default:
		return core.ADCValue(math.Round(v))
	}
}

func (s *Sensor) wave(elapsed time.Duration) float64 {
	c := &s.cfg
	if c.Period <= 0 || c.Waveform == WaveConstant || c.Waveform == "" {
		return c.Base
	}
	phase := math.Mod(float64(elapsed), float64(c.Period)) / float64(c.Period)

	switch c.Waveform {
	case WaveSine:
		return c.Base + c.Amplitude*math.Sin(2*math.Pi*phase)
	case WaveRamp:
		return c.Base + c.Amplitude*(2*phase-1)
	case WaveSquare:
		if phase < 0.5 {
			return c.Base + c.Amplitude
		}
		return c.Base - c.Amplitude
	default:
		return c.Base
	}
}
