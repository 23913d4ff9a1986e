// Dashtool runs the sensor dashboard firmware core on the host against
// simulated peripherals, and reads the debug console of a real board.
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
