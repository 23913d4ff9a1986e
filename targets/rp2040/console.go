//go:build rp2040 || rp2350

package main

import (
	"machine"

	"sensordash/core"
)

var console = machine.Serial

// initConsole brings up the USB CDC console and routes core debug output to
// it. A console that fails to configure leaves debug output disabled; the
// firmware runs the same without it.
func initConsole() {
	// machine.Serial is USB CDC on these parts; the baud rate is ignored
	if err := console.Configure(machine.UARTConfig{}); err != nil {
		return
	}

	core.SetDebugWriter(consoleWrite)
	core.SetDebugEnabled(true)

	core.DebugPrintln("=== sensordash console ===")
}

func consoleWrite(s string) {
	console.Write([]byte(s))
	console.Write([]byte("\r\n"))
}
