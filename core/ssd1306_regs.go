package core

// SSD1306 Command Definitions
// Based on SSD1306 datasheet Rev 1.1, Solomon Systech

// SSD1306 I2C addresses (7-bit, SA0 low / high)
const (
	SSD1306_ADDRESS_SA0_LOW  = 0x3C
	SSD1306_ADDRESS_SA0_HIGH = 0x3D
)

// SSD1306 Commands
const (
	// Fundamental
	SSD1306_SETCONTRAST         = 0x81 // 1 arg: contrast 0x00-0xFF
	SSD1306_DISPLAYALLON_RESUME = 0xA4 // Output follows RAM
	SSD1306_DISPLAYALLON        = 0xA5 // Entire display on, ignores RAM
	SSD1306_NORMALDISPLAY       = 0xA6
	SSD1306_INVERTDISPLAY       = 0xA7
	SSD1306_DISPLAYOFF          = 0xAE
	SSD1306_DISPLAYON           = 0xAF

	// Addressing
	SSD1306_SETLOWCOLUMN  = 0x00 // Page mode: low nibble of start column
	SSD1306_SETHIGHCOLUMN = 0x10 // Page mode: high nibble of start column
	SSD1306_MEMORYMODE    = 0x20 // 1 arg: 0=horizontal, 1=vertical, 2=page
	SSD1306_COLUMNADDR    = 0x21 // 2 args: start, end column
	SSD1306_PAGEADDR      = 0x22 // 2 args: start, end page

	// Hardware configuration
	SSD1306_SETSTARTLINE     = 0x40 // OR'd with line 0-63
	SSD1306_SEGREMAP         = 0xA0 // OR'd with 1 to map column 127 to SEG0
	SSD1306_SETMULTIPLEX     = 0xA8 // 1 arg: mux ratio - 1
	SSD1306_COMSCANINC       = 0xC0
	SSD1306_COMSCANDEC       = 0xC8
	SSD1306_SETDISPLAYOFFSET = 0xD3 // 1 arg
	SSD1306_SETCOMPINS       = 0xDA // 1 arg

	// Timing and driving
	SSD1306_SETDISPLAYCLOCKDIV = 0xD5 // 1 arg: divide ratio / oscillator
	SSD1306_SETPRECHARGE       = 0xD9 // 1 arg
	SSD1306_SETVCOMDETECT      = 0xDB // 1 arg
	SSD1306_CHARGEPUMP         = 0x8D // 1 arg: 0x14 enable, 0x10 disable
)

// SSD1306CommandArgs returns how many argument bytes follow cmd in the
// command stream.
func SSD1306CommandArgs(cmd byte) int {
	switch cmd {
	case SSD1306_COLUMNADDR, SSD1306_PAGEADDR:
		return 2
	case SSD1306_SETCONTRAST, SSD1306_MEMORYMODE, SSD1306_SETMULTIPLEX,
		SSD1306_SETDISPLAYOFFSET, SSD1306_SETCOMPINS, SSD1306_SETDISPLAYCLOCKDIV,
		SSD1306_SETPRECHARGE, SSD1306_SETVCOMDETECT, SSD1306_CHARGEPUMP:
		return 1
	default:
		return 0
	}
}
