package sim

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"sensordash/core"
)

func TestPanelArgumentsSpanFrames(t *testing.T) {
	p := NewPanel(0x3C)

	// one byte per frame, as the firmware's init sends them
	for _, b := range []byte{core.SSD1306_SETCONTRAST, 0x20, core.SSD1306_MEMORYMODE, 0x00, core.SSD1306_CHARGEPUMP, 0x14, core.SSD1306_DISPLAYON} {
		require.NoError(t, p.Tx(0x3C, []byte{0x00, b}, nil))
	}

	st := p.State()
	require.True(t, st.On)
	require.True(t, st.ChargePump)
	require.Equal(t, uint8(0x20), st.Contrast)
	require.Equal(t, uint8(0), st.MemoryMode)
	require.Equal(t, uint32(7), st.Frames)
}

func TestPanelHorizontalWindow(t *testing.T) {
	p := NewPanel(0x3C)
	require.NoError(t, p.Tx(0x3C, []byte{0x00, core.SSD1306_MEMORYMODE, 0x00}, nil))
	require.NoError(t, p.Tx(0x3C, []byte{0x00, core.SSD1306_COLUMNADDR, 126, 127}, nil))
	require.NoError(t, p.Tx(0x3C, []byte{0x00, core.SSD1306_PAGEADDR, 2, 3}, nil))
	require.NoError(t, p.Tx(0x3C, []byte{0x40, 'a', 'b', 'c'}, nil))

	lines := p.Lines()
	require.Equal(t, "ab", strings.TrimSpace(lines[2]))
	require.Len(t, lines[2], 128)
	require.Equal(t, "c", strings.TrimSpace(lines[3]))
	require.Equal(t, byte('c'), lines[3][126])
}

func TestPanelPageModeWrapsOnPage(t *testing.T) {
	p := NewPanel(0x3C)
	require.NoError(t, p.Tx(0x3C, []byte{0x00, core.SSD1306_COLUMNADDR, 126, 127}, nil))
	require.NoError(t, p.Tx(0x3C, []byte{0x40, 'x', 'y', 'z'}, nil))

	lines := p.Lines()
	require.Equal(t, byte('z'), lines[0][126])
	require.Equal(t, byte('y'), lines[0][127])
	require.Empty(t, lines[1])
}

func TestPanelErrors(t *testing.T) {
	p := NewPanel(0x3C)
	require.ErrorIs(t, p.Tx(0x3D, []byte{0x00, 0xAF}, nil), ErrNoDevice)
	require.ErrorIs(t, p.Tx(0x3C, nil, nil), ErrEmptyFrame)
	require.ErrorIs(t, p.Tx(0x3C, []byte{0x80, 0xAF}, nil), ErrControlByte)
	require.False(t, p.State().On)
}

func TestPanelNackEvery(t *testing.T) {
	p := NewPanel(0x3C)
	p.SetNackEvery(2)

	require.NoError(t, p.Tx(0x3C, []byte{0x00, core.SSD1306_DISPLAYON}, nil))
	require.ErrorIs(t, p.Tx(0x3C, []byte{0x00, core.SSD1306_DISPLAYOFF}, nil), ErrNack)

	st := p.State()
	require.True(t, st.On, "rejected frame must not reach the controller")
	require.Equal(t, uint32(1), st.Nacks)
}

func TestPanelNonPrintable(t *testing.T) {
	p := NewPanel(0x3C)
	require.NoError(t, p.Tx(0x3C, []byte{0x40, 'A', 0x01, 0xFF, 'B'}, nil))
	require.Equal(t, "A??B", p.Lines()[0])
}
