// Package usb binds the STM32G4 full-speed USB device peripheral to the
// frozen clock tree.
package usb

import (
	"clockcode-go/errcode"
	"clockcode-go/hertz"
	"clockcode-go/rcc"
)

// Peripheral constants for a USB device stack.
const (
	Registers    uintptr = 0x4000_5C00
	EPMemory     uintptr = 0x4000_6000
	EPMemorySize         = 1024
	DPPullUp             = true // internal D+ pull-up, no external resistor
)

// StartupCycles is the transceiver start-up wait. The G4 datasheet gives no
// figure; this is 1 µs at 170 MHz.
const StartupCycles = 170

const requiredClock = 48 * hertz.MHz

// Peripheral owns the USB clock gate through the APB1 token.
type Peripheral struct {
	apb1  *rcc.APB1
	clock hertz.Hertz
}

// New checks that the frozen tree feeds the USB kernel with 48 MHz.
func New(apb1 *rcc.APB1, clocks rcc.Clocks) (*Peripheral, error) {
	if apb1 == nil {
		return nil, errcode.Wrap(errcode.InvalidParams, "usb.new", "nil APB1 token")
	}
	if clocks.CLK48 != requiredClock {
		return nil, errcode.Wrap(errcode.InvalidParams, "usb.new", "CLK48 is "+clocks.CLK48.String()+", need 48MHz")
	}
	return &Peripheral{apb1: apb1, clock: clocks.CLK48}, nil
}

// Clock returns the USB kernel clock.
func (p *Peripheral) Clock() hertz.Hertz { return p.clock }

// Enable gates the USB clock on and pulses the peripheral reset with
// interrupts masked.
func (p *Peripheral) Enable() {
	st := disableInterrupts()
	p.apb1.Enable(rcc.USB)
	p.apb1.Reset(rcc.USB)
	restoreInterrupts(st)
}

// StartupDelay spins for StartupCycles using the caller's cycle delay.
func (p *Peripheral) StartupDelay(delay func(cycles uint32)) {
	if delay != nil {
		delay(StartupCycles)
	}
}
