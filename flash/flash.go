// Package flash owns the embedded-flash access control register.
package flash

import (
	"clockcode-go/device"
	"clockcode-go/errcode"
	"clockcode-go/hertz"
	"clockcode-go/regs"
)

// MaxWaitStates is the largest LATENCY the STM32G4 accepts.
const MaxWaitStates = 8

// Parts are the capability tokens of the FLASH block.
type Parts struct {
	ACR *ACR
}

// ACR grants write access to FLASH_ACR.
type ACR struct {
	bank regs.Bank
}

// Constrain claims the FLASH block.
func Constrain(blk *device.Block) (*Parts, error) {
	bank, err := blk.Claim()
	if err != nil {
		return nil, err
	}
	return &Parts{ACR: &ACR{bank: bank}}, nil
}

func (a *ACR) acr() regs.Reg { return regs.At(a.bank, regs.FLASH_ACR) }

// WaitStates returns the programmed LATENCY.
func (a *ACR) WaitStates() uint8 {
	return uint8(regs.FLASH_ACR_LATENCY.Read(a.acr()))
}

// SetWaitStates programs LATENCY and waits for the read-back to match, as
// the flash interface requires before the clock is raised.
func (a *ACR) SetWaitStates(ws uint8) error {
	if ws > MaxWaitStates {
		return errcode.Wrap(errcode.OutOfRange, "flash.set_wait_states", "latency above 8")
	}
	regs.FLASH_ACR_LATENCY.Write(a.acr(), uint32(ws))
	for i := 0; i < readBackTries; i++ {
		if a.WaitStates() == ws {
			return nil
		}
	}
	return errcode.Wrap(errcode.Timeout, "flash.set_wait_states", "latency read-back mismatch")
}

const readBackTries = 16

// SetWaitStates is the free-function form used by start-up code.
func SetWaitStates(ws uint8, acr *ACR) error { return acr.SetWaitStates(ws) }

// HCLK ceilings per wait state, range 1 (RM0440 table 9).
var (
	normalCeil = [...]hertz.Hertz{30 * hertz.MHz, 60 * hertz.MHz, 90 * hertz.MHz, 120 * hertz.MHz, 150 * hertz.MHz}
	boostCeil  = [...]hertz.Hertz{34 * hertz.MHz, 68 * hertz.MHz, 102 * hertz.MHz, 136 * hertz.MHz, 170 * hertz.MHz}
)

// WaitStatesFor returns the minimum LATENCY for hclk in voltage range 1,
// boost or normal mode.
func WaitStatesFor(hclk hertz.Hertz, boost bool) (uint8, error) {
	table := normalCeil[:]
	if boost {
		table = boostCeil[:]
	}
	for ws, ceil := range table {
		if hclk <= ceil {
			return uint8(ws), nil
		}
	}
	return 0, errcode.Wrap(errcode.OutOfRange, "flash.wait_states_for", "HCLK above range 1 limit")
}
