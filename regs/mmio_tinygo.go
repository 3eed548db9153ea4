//go:build tinygo

package regs

import (
	"runtime/volatile"
	"unsafe"
)

// MMIO is a Bank backed by the hardware block at the given base address.
type MMIO uintptr

func (m MMIO) reg(off uint32) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(uintptr(m) + uintptr(off)))
}

func (m MMIO) Load(off uint32) uint32 { return m.reg(off).Get() }
func (m MMIO) Store(off, v uint32)    { m.reg(off).Set(v) }
