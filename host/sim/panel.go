// Package sim runs the firmware core on the host against emulated
// peripherals: an SSD1306 panel on a drivers.I2C bus, a scenario-driven
// analog sensor, a recording PWM output, and goroutine event sources.
package sim

import (
	"errors"
	"strings"
	"sync"

	"sensordash/core"
)

const (
	PanelColumns = 128
	PanelPages   = 8
)

var (
	ErrNoDevice    = errors.New("sim: no device at address")
	ErrEmptyFrame  = errors.New("sim: empty frame")
	ErrControlByte = errors.New("sim: unsupported control byte")
	ErrNack        = errors.New("sim: injected NACK")
)

// Panel emulates the parts of an SSD1306 the firmware uses: the command
// parser (which keeps state across frames, since the firmware sends command
// arguments in frames of their own), horizontal and page addressing, and
// display RAM. It implements drivers.I2C.
type Panel struct {
	mu sync.Mutex

	addr uint16
	ram  [PanelPages][PanelColumns]byte

	on         bool
	inverted   bool
	chargePump bool
	contrast   uint8
	memoryMode uint8

	colStart, colEnd   uint8
	pageStart, pageEnd uint8
	col, page          uint8

	cmd  byte
	args [2]byte
	got  int
	need int

	frames    uint32
	nackEvery uint32
	nacks     uint32
}

// NewPanel returns a powered-off panel answering at addr, in reset state.
func NewPanel(addr uint16) *Panel {
	return &Panel{
		addr:       addr,
		contrast:   0x7F,
		memoryMode: 0x02,
		colEnd:     PanelColumns - 1,
		pageEnd:    PanelPages - 1,
	}
}

// SetNackEvery makes every nth frame fail. Zero disables injection.
func (p *Panel) SetNackEvery(n uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nackEvery = n
}

// Tx accepts one write frame. Reads are not supported by the controller
// over this interface and are ignored.
func (p *Panel) Tx(addr uint16, w, r []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if addr != p.addr {
		return ErrNoDevice
	}
	if len(w) == 0 {
		return ErrEmptyFrame
	}
	p.frames++
	if p.nackEvery != 0 && p.frames%p.nackEvery == 0 {
		p.nacks++
		return ErrNack
	}

	switch w[0] {
	case 0x00:
		for _, b := range w[1:] {
			p.command(b)
		}
	case 0x40:
		for _, b := range w[1:] {
			p.data(b)
		}
	default:
		return ErrControlByte
	}
	return nil
}

func (p *Panel) command(b byte) {
	if p.need > 0 {
		p.args[p.got] = b
		p.got++
		if p.got < p.need {
			return
		}
		p.need = 0
		p.apply(p.cmd, p.args[:p.got])
		return
	}
	p.cmd = b
	p.got = 0
	p.need = core.SSD1306CommandArgs(b)
	if p.need == 0 {
		p.apply(b, nil)
	}
}

func (p *Panel) apply(cmd byte, args []byte) {
	switch cmd {
	case core.SSD1306_DISPLAYON:
		p.on = true
	case core.SSD1306_DISPLAYOFF:
		p.on = false
	case core.SSD1306_NORMALDISPLAY:
		p.inverted = false
	case core.SSD1306_INVERTDISPLAY:
		p.inverted = true
	case core.SSD1306_SETCONTRAST:
		p.contrast = args[0]
	case core.SSD1306_CHARGEPUMP:
		p.chargePump = args[0] == 0x14
	case core.SSD1306_MEMORYMODE:
		p.memoryMode = args[0] & 0x03
	case core.SSD1306_COLUMNADDR:
		p.colStart = args[0] & 0x7F
		p.colEnd = args[1] & 0x7F
		p.col = p.colStart
	case core.SSD1306_PAGEADDR:
		p.pageStart = args[0] & 0x07
		p.pageEnd = args[1] & 0x07
		p.page = p.pageStart
	}
}

func (p *Panel) data(b byte) {
	p.ram[p.page][p.col] = b
	if p.memoryMode != 0 {
		// page addressing: the column wraps on the same page
		if p.col == p.colEnd {
			p.col = p.colStart
		} else {
			p.col++
		}
		return
	}
	if p.col < p.colEnd {
		p.col++
		return
	}
	p.col = p.colStart
	if p.page < p.pageEnd {
		p.page++
	} else {
		p.page = p.pageStart
	}
}

// PanelState is a copy of the controller registers the firmware sets.
type PanelState struct {
	On         bool
	Inverted   bool
	ChargePump bool
	Contrast   uint8
	MemoryMode uint8
	Column     uint8
	Page       uint8
	Frames     uint32
	Nacks      uint32
}

// State returns the controller state.
func (p *Panel) State() PanelState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return PanelState{
		On:         p.on,
		Inverted:   p.inverted,
		ChargePump: p.chargePump,
		Contrast:   p.contrast,
		MemoryMode: p.memoryMode,
		Column:     p.col,
		Page:       p.page,
		Frames:     p.frames,
		Nacks:      p.nacks,
	}
}

// Lines renders display RAM as text, one line per page, treating each byte
// as one character cell. Zero bytes show as blanks and other non-printable
// bytes as '?'. Trailing blanks are trimmed.
func (p *Panel) Lines() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	lines := make([]string, PanelPages)
	var row [PanelColumns]byte
	for page := range p.ram {
		for col, b := range p.ram[page] {
			switch {
			case b == 0:
				row[col] = ' '
			case b < 0x20 || b > 0x7E:
				row[col] = '?'
			default:
				row[col] = b
			}
		}
		lines[page] = strings.TrimRight(string(row[:]), " ")
	}
	return lines
}
