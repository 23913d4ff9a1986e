package core

import (
	"strings"
	"testing"
)

func TestFaultIndicatorAlternates(t *testing.T) {
	pin := &fakePin{}
	f := &FaultIndicator{Pin: pin, Delay: 10}

	f.blink(6)

	if len(pin.levels) != 6 {
		t.Fatalf("Expected 6 toggles, got %d", len(pin.levels))
	}
	for i, level := range pin.levels {
		if level != (i%2 == 0) {
			t.Errorf("toggle %d: expected %v, got %v", i, i%2 == 0, level)
		}
	}
}

func TestFaultErrorMessage(t *testing.T) {
	err := &FaultError{Code: FaultPanic, Reason: "nil map write"}
	if got := err.Error(); got != "fault 3: nil map write" {
		t.Errorf("Unexpected message %q", got)
	}
}

func TestHaltWritesFaultLineEvenWhenDebugDisabled(t *testing.T) {
	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	defer SetDebugWriter(func(string) {})
	SetDebugEnabled(false)

	r := newLoopRig(DefaultConfig(), 10)
	r.loop.Halt(ErrSampleRange)

	if len(lines) != 1 || !strings.HasPrefix(lines[0], "[FAULT] ") {
		t.Errorf("Expected one [FAULT] line, got %v", lines)
	}
}
