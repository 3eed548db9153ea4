//go:build !tinygo

package device

import (
	"clockcode-go/regs"
	"clockcode-go/regs/regsim"
)

// Host builds have no silicon; Take hands out simulated blocks that behave
// like an idle STM32G4 out of reset.
func defaultBanks() (rcc, flash regs.Bank) {
	return regsim.NewRCC(regsim.Latency{}), regsim.NewFlash()
}
