//go:build !tinygo

package core

import "runtime"

// spinDelay burns roughly n iterations without relying on timer interrupts.
func spinDelay(n uint32) {
	for i := uint32(0); i < n; i++ {
		if i&0x3FF == 0 {
			runtime.Gosched()
		}
	}
}
