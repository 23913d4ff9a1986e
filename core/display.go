package core

// Display geometry and framing bytes for the SSD1306 controller.
const (
	DisplayAddress BusAddress = SSD1306_ADDRESS_SA0_LOW

	DisplayMaxColumn = 127
	DisplayMaxPage   = 7

	controlCommand = 0x00 // Co=0, D/C#=0: command stream follows
	controlData    = 0x40 // Co=0, D/C#=1: GDDRAM data follows
)

// displayInitSequence is streamed one command byte per frame by Init.
var displayInitSequence = [...]byte{
	SSD1306_DISPLAYOFF,
	SSD1306_SETMULTIPLEX, 0x3F,
	SSD1306_SETDISPLAYOFFSET, 0x00,
	SSD1306_SETSTARTLINE | 0x00,
	SSD1306_SEGREMAP | 0x01,
	SSD1306_COMSCANDEC,
	SSD1306_SETCOMPINS, 0x12,
	SSD1306_SETCONTRAST, 0x7F,
	SSD1306_DISPLAYALLON_RESUME,
	SSD1306_NORMALDISPLAY,
	SSD1306_SETDISPLAYCLOCKDIV, 0x80,
	SSD1306_CHARGEPUMP, 0x14,
	SSD1306_MEMORYMODE, 0x00, // horizontal, so COLUMNADDR/PAGEADDR windows apply
	SSD1306_DISPLAYON,
}

// Display drives an SSD1306 over a BusDriver. Every operation is one or more
// complete start..stop frames and reports false on the first failed step.
type Display struct {
	bus  BusDriver
	addr BusAddress

	digits digitBuffer
}

// NewDisplay returns a Display talking to addr on bus.
func NewDisplay(bus BusDriver, addr BusAddress) *Display {
	return &Display{bus: bus, addr: addr}
}

// Init sends the controller setup sequence. A failure leaves the controller
// in whatever state the accepted commands produced.
func (d *Display) Init() bool {
	for _, cmd := range displayInitSequence {
		if !d.frame(controlCommand, cmd) {
			DebugPrintln("[DISPLAY] init failed at command 0x" + hex8(cmd))
			return false
		}
	}
	return true
}

// SetPosition moves the start of the write window to (col, page). The end of
// the window is always the last column and page.
func (d *Display) SetPosition(col, page uint8) bool {
	if col > DisplayMaxColumn {
		col = DisplayMaxColumn
	}
	if page > DisplayMaxPage {
		page = DisplayMaxPage
	}
	if !d.frame(controlCommand, SSD1306_COLUMNADDR, col, DisplayMaxColumn) {
		return false
	}
	return d.frame(controlCommand, SSD1306_PAGEADDR, page, DisplayMaxPage)
}

// WriteBytes streams raw bytes into display memory at the current cursor.
func (d *Display) WriteBytes(b []byte) bool {
	if !d.begin(controlData) {
		return false
	}
	for _, v := range b {
		if !d.bus.WriteByte(v) {
			d.bus.Stop()
			return false
		}
	}
	d.bus.Stop()
	return true
}

// WriteNumber writes n as decimal ASCII without leading zeros.
func (d *Display) WriteNumber(n uint32) bool {
	return d.WriteBytes(d.digits.format(n))
}

// Clear zeroes the whole of display memory and leaves the cursor at (0, 0).
func (d *Display) Clear() bool {
	if !d.SetPosition(0, 0) {
		return false
	}
	var zeros [DisplayMaxColumn + 1]byte
	for page := 0; page <= DisplayMaxPage; page++ {
		if !d.WriteBytes(zeros[:]) {
			return false
		}
	}
	return true
}

// frame sends start, address, prefix, payload, stop.
func (d *Display) frame(prefix byte, payload ...byte) bool {
	if !d.begin(prefix) {
		return false
	}
	for _, v := range payload {
		if !d.bus.WriteByte(v) {
			d.bus.Stop()
			return false
		}
	}
	d.bus.Stop()
	return true
}

// begin opens a frame up to and including the prefix byte. On failure the
// bus has already been stopped.
func (d *Display) begin(prefix byte) bool {
	if !d.bus.Start() {
		d.bus.Stop()
		return false
	}
	if !d.bus.WriteByte(d.addr.WriteAddress()) || !d.bus.WriteByte(prefix) {
		d.bus.Stop()
		return false
	}
	return true
}
