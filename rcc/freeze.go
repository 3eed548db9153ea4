package rcc

import (
	"clockcode-go/errcode"
	"clockcode-go/flash"
	"clockcode-go/hertz"
	"clockcode-go/regs"
)

// Freeze solves the configuration, programs the clock tree and returns the
// resulting frequencies. The sequence is:
//
//	oscillator on, PLL off, PLL dividers, PLL on, PLL outputs,
//	switch SYSCLK with AHB halved, restore AHB, MCO, peripheral clocks.
//
// Every status wait is bounded by PollLimit. When acr is non-nil the flash
// wait states are raised for the final HCLK before SYSCLK is switched.
// Freeze succeeds at most once per RCC block; later calls return
// errcode.Frozen.
func (c CFGR) Freeze(acr *flash.ACR) (Clocks, error) {
	const op = "rcc.freeze"
	if c.hw == nil {
		return Clocks{}, errcode.Wrap(errcode.Unsupported, op, "builder not bound to an RCC block")
	}
	if c.hw.frozen {
		return Clocks{}, errcode.Wrap(errcode.Frozen, op, "clock tree already frozen")
	}
	plan, err := c.Plan()
	if err != nil {
		return Clocks{}, err
	}
	want, err := plan.Clocks()
	if err != nil {
		return Clocks{}, err
	}
	var ws uint8
	if acr != nil {
		if ws, err = flash.WaitStatesFor(want.HCLK, false); err != nil {
			return Clocks{}, err
		}
	}
	c.hw.frozen = true

	s := c.sequencer()

	if err := s.startOscillator(plan.PLL.Source, c.bypass, c.css); err != nil {
		return Clocks{}, err
	}

	c.logf("rcc: pll off")
	s.cr.ClearBits(regs.RCC_CR_PLLON)
	if err := s.await(regs.RCC_CR_PLLRDY, false, errcode.PLLUnlockTimeout); err != nil {
		return Clocks{}, err
	}

	mask, val := plan.pllcfgrFields()
	s.pllcfgr.Modify(func(v uint32) uint32 { return v&^mask | val })

	c.logf("rcc: pll on")
	s.cr.SetBits(regs.RCC_CR_PLLON)
	if err := s.await(regs.RCC_CR_PLLRDY, true, errcode.PLLLockTimeout); err != nil {
		return Clocks{}, err
	}
	s.pllcfgr.SetBits(plan.pllOutputs())

	if acr != nil {
		c.logf("rcc: flash latency")
		if err := acr.SetWaitStates(ws); err != nil {
			return Clocks{}, err
		}
	}

	c.logf("rcc: switch sysclk")
	mask, val = plan.cfgrSwitch()
	s.cfgr.Modify(func(v uint32) uint32 { return v&^mask | val })
	for i := uint32(0); i < c.delay(); i++ {
		_ = s.cfgr.Get()
	}
	if err := s.awaitSwitch(); err != nil {
		return Clocks{}, err
	}
	regs.RCC_CFGR_HPRE.Write(s.cfgr, plan.hpreFinal())

	mask, val = plan.cfgrMCO()
	s.cfgr.Modify(func(v uint32) uint32 { return v&^mask | val })

	c.logf("rcc: peripheral clocks")
	s.apb1enr1.SetBits(uint32(FDCAN))
	regs.RCC_CCIPR_FDCANSEL.Write(s.ccipr, regs.RCC_CCIPR_FDCANSEL_PCLK1)
	s.ahb2enr.SetBits(uint32(GPIOA))
	if want.CLK48 != 0 {
		regs.RCC_CCIPR_CLK48SEL.Write(s.ccipr, regs.RCC_CCIPR_CLK48SEL_PLLQ)
		s.apb1enr1.SetBits(uint32(USB))
	}

	got, err := s.snapshot(plan.PLL.Source, plan.PLL.In)
	if err != nil {
		return Clocks{}, err
	}
	c.logf("rcc: frozen " + got.String())
	return got, nil
}

type sequencer struct {
	cr, cfgr, pllcfgr, ccipr regs.Reg
	ahb2enr, apb1enr1        regs.Reg

	limit uint32
	logf  func(string)
}

func (c CFGR) sequencer() *sequencer {
	b := c.hw.bank
	return &sequencer{
		cr:       regs.At(b, regs.RCC_CR),
		cfgr:     regs.At(b, regs.RCC_CFGR),
		pllcfgr:  regs.At(b, regs.RCC_PLLCFGR),
		ccipr:    regs.At(b, regs.RCC_CCIPR),
		ahb2enr:  regs.At(b, regs.RCC_AHB2ENR),
		apb1enr1: regs.At(b, regs.RCC_APB1ENR1),
		limit:    c.limit(),
		logf:     c.logf,
	}
}

func (s *sequencer) startOscillator(src Source, bypass, css bool) error {
	if src == HSI16 {
		s.logf("rcc: hsi16 on")
		s.cr.SetBits(regs.RCC_CR_HSION)
		return s.await(regs.RCC_CR_HSIRDY, true, errcode.OscStartupTimeout)
	}
	s.logf("rcc: hse on")
	if bypass {
		s.cr.SetBits(regs.RCC_CR_HSEBYP)
	}
	s.cr.SetBits(regs.RCC_CR_HSEON)
	if err := s.await(regs.RCC_CR_HSERDY, true, errcode.OscStartupTimeout); err != nil {
		return err
	}
	if css {
		s.cr.SetBits(regs.RCC_CR_CSSON)
	}
	return nil
}

// await polls CR until bit reaches the wanted state or the limit expires.
func (s *sequencer) await(bit uint32, want bool, code errcode.Code) error {
	for i := uint32(0); i < s.limit; i++ {
		if s.cr.HasBits(bit) == want {
			return nil
		}
	}
	s.logf("rcc: " + string(code))
	return errcode.Wrap(code, "rcc.freeze", "")
}

func (s *sequencer) awaitSwitch() error {
	for i := uint32(0); i < s.limit; i++ {
		if regs.RCC_CFGR_SWS.Read(s.cfgr) == regs.RCC_CFGR_SW_PLL {
			return nil
		}
	}
	s.logf("rcc: " + string(errcode.ClockSwitchTimeout))
	return errcode.Wrap(errcode.ClockSwitchTimeout, "rcc.freeze", "")
}

// snapshot derives the tree from the register fields as programmed.
func (s *sequencer) snapshot(src Source, in hertz.Hertz) (Clocks, error) {
	p, err := decodePlan(src, in, s.pllcfgr.Get(), s.cfgr.Get())
	if err != nil {
		return Clocks{}, err
	}
	out, err := p.Clocks()
	if err != nil {
		return Clocks{}, err
	}
	if regs.RCC_CCIPR_CLK48SEL.Read(s.ccipr) != regs.RCC_CCIPR_CLK48SEL_PLLQ {
		out.CLK48 = 0
	}
	return out, nil
}
