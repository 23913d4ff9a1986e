//go:build tinygo

package core

import "device"

// spinDelay burns roughly n iterations without relying on timer interrupts,
// which are off once the firmware has faulted.
func spinDelay(n uint32) {
	for i := uint32(0); i < n; i++ {
		device.Asm("nop")
	}
}
