package regsim

import "clockcode-go/regs"

// Latency configures how many status reads each RCC transition takes.
// Zero values mean immediate; Never means stuck.
type Latency struct {
	HSI, HSE, PLL, Switch int
}

// NewRCC returns an RCC block at its reset state (HSI16 on and selected)
// with oscillator-ready, PLL-lock and clock-switch status behaviour.
func NewRCC(lat Latency) *Bank {
	b := New()
	b.Follow(regs.RCC_CR, regs.RCC_CR_HSION, regs.RCC_CR, regs.RCC_CR_HSIRDY, lat.HSI)
	b.Follow(regs.RCC_CR, regs.RCC_CR_HSEON, regs.RCC_CR, regs.RCC_CR_HSERDY, lat.HSE)
	b.Follow(regs.RCC_CR, regs.RCC_CR_PLLON, regs.RCC_CR, regs.RCC_CR_PLLRDY, lat.PLL)
	b.Mirror(regs.RCC_CFGR, regs.RCC_CFGR_SW, regs.RCC_CFGR, regs.RCC_CFGR_SWS, lat.Switch)

	b.Poke(regs.RCC_CR, regs.RCC_CR_HSION|regs.RCC_CR_HSIRDY)
	b.Poke(regs.RCC_CFGR, regs.RCC_CFGR_SW.Put(regs.RCC_CFGR_SWS.Put(0, regs.RCC_CFGR_SW_HSI16), regs.RCC_CFGR_SW_HSI16))
	b.Poke(regs.RCC_PLLCFGR, regs.RCC_PLLCFGR_PLLN.Put(0, 16))
	return b
}

// NewFlash returns a FLASH block at its reset state.
func NewFlash() *Bank {
	b := New()
	b.Poke(regs.FLASH_ACR, regs.FLASH_ACR_RESET)
	return b
}
