package serial

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanLines(t *testing.T) {
	in := strings.NewReader("[BUS] tx failed: nack\r\n\r\n[FAULT] fault 2: sample above full scale\r\ntrailing")

	var got []string
	err := ScanLines(in, func(line string) bool {
		got = append(got, line)
		return true
	})
	require.NoError(t, err)
	require.Equal(t, []string{
		"[BUS] tx failed: nack",
		"[FAULT] fault 2: sample above full scale",
		"trailing",
	}, got)
}

func TestScanLinesStopsEarly(t *testing.T) {
	in := strings.NewReader("a\nb\nc\n")

	var got []string
	err := ScanLines(in, func(line string) bool {
		got = append(got, line)
		return len(got) < 2
	})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, got)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/dev/ttyUSB0")
	require.Equal(t, "/dev/ttyUSB0", cfg.Device)
	require.Equal(t, 115200, cfg.Baud)
}

func TestOpenRejectsNilConfig(t *testing.T) {
	_, err := Open(nil)
	require.Error(t, err)
}

func TestPortIsReadOnly(t *testing.T) {
	var _ Port = (*NativePort)(nil)

	_, writable := interface{}((*NativePort)(nil)).(io.Writer)
	require.False(t, writable, "the console port must not expose Write")
}

func TestScanLinesFromPort(t *testing.T) {
	var port Port = io.NopCloser(strings.NewReader("[LOOP] passes=3\n"))
	defer port.Close()

	var got []string
	require.NoError(t, ScanLines(port, func(line string) bool {
		got = append(got, line)
		return true
	}))
	require.Equal(t, []string{"[LOOP] passes=3"}, got)
}
