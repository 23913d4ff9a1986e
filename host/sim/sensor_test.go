package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func read(s *Sensor) int {
	s.StartConversion()
	for s.Converting() {
	}
	return int(s.Result())
}

func TestSensorWaveforms(t *testing.T) {
	tests := []struct {
		name string
		wave string
		at   time.Duration
		want int
	}{
		{"constant", WaveConstant, 3 * time.Second, 500},
		{"sine zero", WaveSine, 0, 500},
		{"sine peak", WaveSine, time.Second, 600},
		{"sine trough", WaveSine, 3 * time.Second, 400},
		{"ramp start", WaveRamp, 0, 400},
		{"ramp middle", WaveRamp, 2 * time.Second, 500},
		{"square high", WaveSquare, time.Second, 600},
		{"square low", WaveSquare, 3 * time.Second, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := NewVirtualClock()
			s := NewSensorWithClock(SensorConfig{
				Waveform:  tt.wave,
				Base:      500,
				Amplitude: 100,
				Period:    4 * time.Second,
			}, 1023, clock.Now)
			clock.Advance(tt.at)
			require.Equal(t, tt.want, read(s))
		})
	}
}

func TestSensorClampsAndNudges(t *testing.T) {
	s := NewSensorWithClock(SensorConfig{Base: 1000}, 1023, NewVirtualClock().Now)
	require.Equal(t, 1000, read(s))

	s.Nudge(50)
	require.Equal(t, 1023, read(s))

	s.Nudge(-2000)
	require.Equal(t, 0, read(s))
	require.Equal(t, -1950, s.Offset())
	require.Equal(t, uint32(3), s.Conversions())
}

func TestSensorNoiseBounded(t *testing.T) {
	s := NewSensorWithClock(SensorConfig{Base: 500, Noise: 3, Seed: 7}, 1023, NewVirtualClock().Now)
	for i := 0; i < 200; i++ {
		v := read(s)
		require.GreaterOrEqual(t, v, 497)
		require.LessOrEqual(t, v, 503)
	}
}

func TestSensorConversionPolls(t *testing.T) {
	s := NewSensorWithClock(SensorConfig{Base: 10, ConversionPolls: 3}, 1023, NewVirtualClock().Now)
	s.StartConversion()
	polls := 0
	for s.Converting() {
		polls++
	}
	require.Equal(t, 3, polls)
	require.Equal(t, 10, int(s.Result()))
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.SetCompare(51)
	r.SetCompare(255)
	require.EqualValues(t, 255, r.Value())
	require.Equal(t, uint32(2), r.Writes())
	require.InDelta(t, 1.0, r.Duty(), 1e-9)
}
