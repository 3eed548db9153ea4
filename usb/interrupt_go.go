//go:build !tinygo

package usb

type state uintptr

// Host builds have no interrupts to mask.
func disableInterrupts() state { return 0 }

func restoreInterrupts(state) {}
