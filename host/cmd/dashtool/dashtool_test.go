package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sensordash/host/sim"
)

func TestMonitorTimestampsLines(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC)
	in := strings.NewReader("[BUS] tx failed: nack\r\n\r\n[FAULT] fault 2: sample above full scale\r\n")

	var out bytes.Buffer
	require.NoError(t, monitor(&out, in, func() time.Time { return at }, false))
	require.Equal(t,
		"[03:04:05.006] [BUS] tx failed: nack\n"+
			"[03:04:05.006] [FAULT] fault 2: sample above full scale\n",
		out.String())
}

func TestStyleLinePlain(t *testing.T) {
	for _, line := range []string{"[FAULT] x", "[BUS] y", "hello"} {
		require.Equal(t, line, styleLine(line, false))
	}
	require.Contains(t, styleLine("[FAULT] fault 1: config", true), "fault 1: config")
}

func TestFormatReport(t *testing.T) {
	sc := sim.DefaultScenario()
	sc.Sensor = sim.SensorConfig{Waveform: sim.WaveConstant, Base: 1023, MaxSample: 1023}

	r, err := sim.Replay(sc, 5, nil)
	require.NoError(t, err)

	report := formatReport(sc, r.Snapshot())
	lines := strings.Split(report, "\n")
	require.Equal(t, "scenario: default", lines[0])
	require.Len(t, lines[1], sim.PanelColumns+2)
	require.True(t, strings.HasPrefix(lines[2], "|ADC"))
	require.Contains(t, lines[2], "1023")
	require.Contains(t, lines[3], "5.000")
	require.Contains(t, report, "state=idle sample=1023 level=255")
	require.NotContains(t, report, "fault:")
}

func TestPanelTextCrops(t *testing.T) {
	got := panelText([]string{"ADC     42", ""}, 6)
	require.Equal(t, "ADC   \n      ", got)
}

func TestLevelBar(t *testing.T) {
	require.Equal(t, strings.Repeat("░", 8), levelBar(0, 8))
	require.Equal(t, strings.Repeat("█", 8), levelBar(255, 8))
	require.Equal(t, strings.Repeat("█", 4)+strings.Repeat("░", 4), levelBar(128, 8))
}
