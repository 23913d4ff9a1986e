package core

import "testing"

// fakeTWI completes each action after a number of Ready polls and reports
// the next scripted status.
type fakeTWI struct {
	statuses []uint8
	actions  []TWIControl
	data     []byte
	latency  int
	pending  int
	status   uint8
	hang     bool
}

func (t *fakeTWI) Control(action TWIControl) {
	t.actions = append(t.actions, action)
	if action == TWIStop {
		return
	}
	t.pending = t.latency
	if len(t.statuses) > 0 {
		t.status = t.statuses[0]
		t.statuses = t.statuses[1:]
	}
}

func (t *fakeTWI) Ready() bool {
	if t.hang {
		return false
	}
	if t.pending > 0 {
		t.pending--
		return false
	}
	return true
}

func (t *fakeTWI) Status() uint8  { return t.status }
func (t *fakeTWI) SetData(b byte) { t.data = append(t.data, b) }

func TestTWIBusTransaction(t *testing.T) {
	hw := &fakeTWI{
		statuses: []uint8{StatusStart, StatusAddrAck, StatusDataAck, StatusDataAck},
		latency:  3,
	}
	bus := NewTWIBus(hw)

	if !bus.Start() {
		t.Fatal("Start failed")
	}
	for i, b := range []byte{0x78, 0x00, 0xAF} {
		if !bus.WriteByte(b) {
			t.Fatalf("WriteByte #%d failed", i)
		}
	}
	bus.Stop()

	want := []TWIControl{TWIStart, TWITransmit, TWITransmit, TWITransmit, TWIStop}
	if len(hw.actions) != len(want) {
		t.Fatalf("Expected %d actions, got %v", len(want), hw.actions)
	}
	for i := range want {
		if hw.actions[i] != want[i] {
			t.Errorf("action %d: expected %d, got %d", i, want[i], hw.actions[i])
		}
	}
	if string(hw.data) != string([]byte{0x78, 0x00, 0xAF}) {
		t.Errorf("Unexpected data register writes % X", hw.data)
	}
}

func TestTWIBusStatusMismatch(t *testing.T) {
	testCases := []struct {
		name     string
		statuses []uint8
		startOK  bool
		writes   []bool
	}{
		{"start rejected", []uint8{StatusArbLost}, false, nil},
		{"address nack", []uint8{StatusStart, StatusAddrNack}, true, []bool{false}},
		{"data nack", []uint8{StatusStart, StatusAddrAck, StatusDataNack}, true, []bool{true, false}},
		// A data ACK code on the address byte is not the expected code.
		{"address wrong code", []uint8{StatusStart, StatusDataAck}, true, []bool{false}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bus := NewTWIBus(&fakeTWI{statuses: tc.statuses})
			if got := bus.Start(); got != tc.startOK {
				t.Fatalf("Start: expected %v, got %v", tc.startOK, got)
			}
			for i, want := range tc.writes {
				if got := bus.WriteByte(byte(i)); got != want {
					t.Errorf("WriteByte #%d: expected %v, got %v", i, want, got)
				}
			}
			bus.Stop()
		})
	}
}

func TestTWIBusStartWhileActive(t *testing.T) {
	hw := &fakeTWI{statuses: []uint8{StatusStart, StatusStart}}
	bus := NewTWIBus(hw)

	if !bus.Start() {
		t.Fatal("first Start failed")
	}
	if bus.Start() {
		t.Error("Start inside an open transaction should fail")
	}
	bus.Stop()
	if !bus.Start() {
		t.Error("Start after Stop should succeed")
	}
}

func TestTWIBusWriteWithoutStart(t *testing.T) {
	bus := NewTWIBus(&fakeTWI{})
	if bus.WriteByte(0x78) {
		t.Error("WriteByte outside a transaction should fail")
	}
}

func TestTWIBusSpinLimit(t *testing.T) {
	hw := &fakeTWI{statuses: []uint8{StatusStart}, hang: true}
	bus := NewTWIBus(hw)
	bus.MaxSpins = 100

	if bus.Start() {
		t.Error("Start on a hung bus should fail once MaxSpins is reached")
	}
}
