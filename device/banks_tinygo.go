//go:build tinygo

package device

import "clockcode-go/regs"

func defaultBanks() (rcc, flash regs.Bank) {
	return regs.MMIO(regs.RCCBase), regs.MMIO(regs.FLASHBase)
}
