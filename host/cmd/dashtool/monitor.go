package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"sensordash/host/serial"
)

var (
	portName string
	baudRate int
	noColor  bool
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Print a board's debug console",
	Long: `Read the firmware debug console over a serial port and print it with
timestamps. Fault lines are highlighted. The console is output only; nothing
is ever written to the board.`,
	RunE: runMonitor,
}

func init() {
	monitorCmd.Flags().StringVarP(&portName, "port", "p", "", "Serial port device")
	monitorCmd.Flags().IntVarP(&baudRate, "baud", "b", 115200, "Baud rate (ignored for USB CDC)")
	monitorCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable highlighting")
	monitorCmd.MarkFlagRequired("port")
	rootCmd.AddCommand(monitorCmd)
}

func runMonitor(cmd *cobra.Command, args []string) error {
	cfg := serial.DefaultConfig(portName)
	cfg.Baud = baudRate

	port, err := serial.Open(cfg)
	if err != nil {
		return err
	}
	defer port.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Dashtool - Debug Console\n")
	fmt.Fprintf(out, "Port: %s @ %d baud\n", cfg.Device, cfg.Baud)
	fmt.Fprintf(out, "Press Ctrl+C to exit\n\n")

	return monitor(out, port, time.Now, !noColor)
}

// monitor copies console lines from r to w until r is exhausted.
func monitor(w io.Writer, r io.Reader, now func() time.Time, color bool) error {
	return serial.ScanLines(r, func(line string) bool {
		fmt.Fprintf(w, "[%s] %s\n", now().Format("15:04:05.000"), styleLine(line, color))
		return true
	})
}

var (
	faultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)

// styleLine highlights fault lines and bus or display failures.
func styleLine(line string, color bool) string {
	if !color {
		return line
	}
	switch {
	case strings.HasPrefix(line, "[FAULT]"):
		return faultStyle.Render(line)
	case strings.HasPrefix(line, "[BUS]"), strings.HasPrefix(line, "[DISPLAY]"):
		return warnStyle.Render(line)
	default:
		return line
	}
}
