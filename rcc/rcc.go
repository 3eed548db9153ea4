// Package rcc configures the STM32G4 reset and clock controller.
//
// Constrain claims the RCC register block and splits it into bus tokens and
// the CFGR builder. The builder is a value: every setter returns a modified
// copy, nothing touches hardware until Freeze, and Freeze runs once.
package rcc

import (
	"clockcode-go/device"
	"clockcode-go/regs"
)

// Rcc is the constrained RCC block.
type Rcc struct {
	AHB1 *AHB1
	AHB2 *AHB2
	AHB3 *AHB3
	APB1 *APB1
	APB2 *APB2
	CFGR CFGR
}

// hw is shared by every copy of the builder so Freeze is one-shot per block.
type hw struct {
	bank   regs.Bank
	frozen bool
}

// Constrain claims the RCC block. A second call on the same block fails with
// errcode.InUse.
func Constrain(blk *device.Block) (*Rcc, error) {
	bank, err := blk.Claim()
	if err != nil {
		return nil, err
	}
	return &Rcc{
		AHB1: &AHB1{bus{bank, regs.RCC_AHB1ENR, regs.RCC_AHB1RSTR}},
		AHB2: &AHB2{bus{bank, regs.RCC_AHB2ENR, regs.RCC_AHB2RSTR}},
		AHB3: &AHB3{bus{bank, regs.RCC_AHB3ENR, regs.RCC_AHB3RSTR}},
		APB1: &APB1{bus{bank, regs.RCC_APB1ENR1, regs.RCC_APB1RSTR1}},
		APB2: &APB2{bus{bank, regs.RCC_APB2ENR, regs.RCC_APB2RSTR}},
		CFGR: CFGR{hw: &hw{bank: bank}},
	}, nil
}

// bus is the enable/reset register pair of one bus domain.
type bus struct {
	bank      regs.Bank
	enr, rstr uint32
}

// Enr returns the clock enable register.
func (b bus) Enr() regs.Reg { return regs.At(b.bank, b.enr) }

// Rstr returns the reset register.
func (b bus) Rstr() regs.Reg { return regs.At(b.bank, b.rstr) }

func (b bus) enable(mask uint32)  { b.Enr().SetBits(mask) }
func (b bus) disable(mask uint32) { b.Enr().ClearBits(mask) }
func (b bus) enabled(mask uint32) bool {
	return b.Enr().Get()&mask == mask
}

// reset pulses the reset bits.
func (b bus) reset(mask uint32) {
	b.Rstr().SetBits(mask)
	b.Rstr().ClearBits(mask)
}

// AHB1 gates AHB1 peripherals.
type AHB1 struct{ bus }

func (a *AHB1) Enable(p AHB1Periph)       { a.enable(uint32(p)) }
func (a *AHB1) Disable(p AHB1Periph)      { a.disable(uint32(p)) }
func (a *AHB1) Enabled(p AHB1Periph) bool { return a.enabled(uint32(p)) }
func (a *AHB1) Reset(p AHB1Periph)        { a.reset(uint32(p)) }

// AHB2 gates AHB2 peripherals.
type AHB2 struct{ bus }

func (a *AHB2) Enable(p AHB2Periph)       { a.enable(uint32(p)) }
func (a *AHB2) Disable(p AHB2Periph)      { a.disable(uint32(p)) }
func (a *AHB2) Enabled(p AHB2Periph) bool { return a.enabled(uint32(p)) }
func (a *AHB2) Reset(p AHB2Periph)        { a.reset(uint32(p)) }

// AHB3 gates AHB3 peripherals.
type AHB3 struct{ bus }

func (a *AHB3) Enable(p AHB3Periph)       { a.enable(uint32(p)) }
func (a *AHB3) Disable(p AHB3Periph)      { a.disable(uint32(p)) }
func (a *AHB3) Enabled(p AHB3Periph) bool { return a.enabled(uint32(p)) }
func (a *AHB3) Reset(p AHB3Periph)        { a.reset(uint32(p)) }

// APB1 gates peripherals in APB1ENR1. APB1ENR2 is reachable through Enr2.
type APB1 struct{ bus }

func (a *APB1) Enable(p APB1Periph)       { a.enable(uint32(p)) }
func (a *APB1) Disable(p APB1Periph)      { a.disable(uint32(p)) }
func (a *APB1) Enabled(p APB1Periph) bool { return a.enabled(uint32(p)) }
func (a *APB1) Reset(p APB1Periph)        { a.reset(uint32(p)) }

func (a *APB1) Enr2() regs.Reg  { return regs.At(a.bank, regs.RCC_APB1ENR2) }
func (a *APB1) Rstr2() regs.Reg { return regs.At(a.bank, regs.RCC_APB1RSTR2) }

// APB2 gates APB2 peripherals.
type APB2 struct{ bus }

func (a *APB2) Enable(p APB2Periph)       { a.enable(uint32(p)) }
func (a *APB2) Disable(p APB2Periph)      { a.disable(uint32(p)) }
func (a *APB2) Enabled(p APB2Periph) bool { return a.enabled(uint32(p)) }
func (a *APB2) Reset(p APB2Periph)        { a.reset(uint32(p)) }
