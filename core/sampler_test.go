package core

import "testing"

func TestSamplerWaitsForConversion(t *testing.T) {
	adc := &fakeADC{samples: []ADCValue{321}, busy: 50}
	s := NewSampler(adc)

	if got := s.Read(); got != 321 {
		t.Errorf("Expected 321, got %d", got)
	}
	if adc.polls != 0 {
		t.Errorf("Read returned with %d busy polls outstanding", adc.polls)
	}
}

func TestActuatorWritesThrough(t *testing.T) {
	out := &fakeCompare{}
	a := NewActuator(out)

	for _, v := range []PWMValue{0, 128, 255} {
		a.SetLevel(v)
		if a.Level() != v {
			t.Errorf("Expected level %d, got %d", v, a.Level())
		}
	}
	if len(out.values) != 3 || out.values[1] != 128 {
		t.Errorf("Unexpected compare writes %v", out.values)
	}
}
