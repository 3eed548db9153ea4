package rcc

import (
	"clockcode-go/errcode"
	"clockcode-go/hertz"
	"clockcode-go/regs"
)

// STM32G4 voltage range 1 limits (DS12288).
const (
	minHSE    = 4 * hertz.MHz
	maxHSE    = 48 * hertz.MHz
	minVCOIn  = 2_660 * hertz.KHz
	maxVCOIn  = 16 * hertz.MHz
	minVCO    = 96 * hertz.MHz
	maxVCO    = 344 * hertz.MHz
	minPLLP   = 2_064_500 * hertz.Hz
	maxPLLOut = 170 * hertz.MHz
	maxSYSCLK = 170 * hertz.MHz

	usbFreq = 48 * hertz.MHz
	adcFreq = 24 * hertz.MHz
)

// MCOSource is the MCOSEL code.
type MCOSource uint8

const (
	MCODisabled MCOSource = 0b0000
	MCOSYSCLK   MCOSource = 0b0001
	MCOHSI16    MCOSource = 0b0011
	MCOHSE      MCOSource = 0b0100
	MCOPLL      MCOSource = 0b0101
	MCOLSI      MCOSource = 0b0110
	MCOLSE      MCOSource = 0b0111
	MCOHSI48    MCOSource = 0b1000
)

// PLLPlan holds division ratios, not register codes. Q and P are zero when
// the output is disabled.
type PLLPlan struct {
	Source Source
	In     hertz.Hertz
	M, N   uint32
	R      uint32
	Q      uint32
	P      uint32
}

// Plan is the complete divider plan Freeze programs.
type Plan struct {
	PLL       PLLPlan
	AHB       uint32
	APB1      uint32
	APB2      uint32
	SwitchAHB uint32 // AHB ratio held while SYSCLK moves to the PLL
	MCO       MCOSource
	MCODiv    uint32
}

// LegacyPlan is the fixed plan of the reference board: 8 MHz HSE, M=2,
// N=72, R=/2 (144 MHz SYSCLK), Q=/6 (48 MHz), P=/12 (24 MHz), APB1 and
// APB2 at /4, MCO = PLL/16.
func LegacyPlan() Plan {
	return Plan{
		PLL:       PLLPlan{Source: HSE, In: 8 * hertz.MHz, M: 2, N: 72, R: 2, Q: 6, P: 12},
		AHB:       1,
		APB1:      4,
		APB2:      4,
		SwitchAHB: 2,
		MCO:       MCOPLL,
		MCODiv:    16,
	}
}

func planErr(c errcode.Code, msg string) error {
	return errcode.Wrap(c, "rcc.plan", msg)
}

// Validate checks every ratio against its encoding and every derived
// frequency against the silicon limits.
func (p Plan) Validate() error {
	_, err := p.Clocks()
	return err
}

// Clocks derives the clock tree the plan produces.
func (p Plan) Clocks() (Clocks, error) {
	pl := p.PLL
	if _, ok := pllMCode(pl.M); !ok {
		return Clocks{}, planErr(errcode.OutOfRange, "PLLM outside 1..16")
	}
	vcoIn, ok := pl.In.Div(pl.M)
	if !ok {
		return Clocks{}, planErr(errcode.InvalidParams, "PLL input not divisible by M")
	}
	if !vcoIn.Within(minVCOIn, maxVCOIn) {
		return Clocks{}, planErr(errcode.OutOfRange, "VCO input outside 2.66-16MHz")
	}
	if _, ok := pllNCode(pl.N); !ok {
		return Clocks{}, planErr(errcode.OutOfRange, "PLLN outside 8..127")
	}
	vco, ok := vcoIn.Mul(pl.N)
	if !ok || !vco.Within(minVCO, maxVCO) {
		return Clocks{}, planErr(errcode.OutOfRange, "VCO outside 96-344MHz")
	}

	var out Clocks
	out.Source, out.Oscillator = pl.Source, pl.In

	if _, ok := pllQRCode(pl.R); !ok {
		return Clocks{}, planErr(errcode.OutOfRange, "PLLR not one of 2/4/6/8")
	}
	if out.PLL.R, ok = pllOutput(vco, pl.R); !ok {
		return Clocks{}, planErr(errcode.OutOfRange, "PLL R output invalid")
	}
	if pl.Q != 0 {
		if _, ok := pllQRCode(pl.Q); !ok {
			return Clocks{}, planErr(errcode.OutOfRange, "PLLQ not one of 2/4/6/8")
		}
		if out.PLL.Q, ok = pllOutput(vco, pl.Q); !ok {
			return Clocks{}, planErr(errcode.OutOfRange, "PLL Q output invalid")
		}
	}
	if pl.P != 0 {
		if _, _, ok := pllPCode(pl.P); !ok {
			return Clocks{}, planErr(errcode.OutOfRange, "PLLPDIV outside 2..31")
		}
		if out.PLL.P, ok = pllOutput(vco, pl.P); !ok || out.PLL.P < minPLLP {
			return Clocks{}, planErr(errcode.OutOfRange, "PLL P output invalid")
		}
	}

	out.SYSCLK = out.PLL.R
	if out.SYSCLK > maxSYSCLK {
		return Clocks{}, planErr(errcode.OutOfRange, "SYSCLK above 170MHz")
	}
	if _, ok := hpreCode(p.AHB); !ok {
		return Clocks{}, planErr(errcode.OutOfRange, "AHB prescaler not encodable")
	}
	if _, ok := hpreCode(p.SwitchAHB); !ok || p.SwitchAHB < switchHPRE(p.AHB) {
		return Clocks{}, planErr(errcode.OutOfRange, "switch-over AHB prescaler invalid")
	}
	if out.HCLK, ok = out.SYSCLK.Div(p.AHB); !ok {
		return Clocks{}, planErr(errcode.InvalidParams, "HCLK not an exact division")
	}
	if out.PCLK1, out.TIMCLK1, ok = apbClocks(out.HCLK, p.APB1); !ok {
		return Clocks{}, planErr(errcode.InvalidParams, "PCLK1 prescaler invalid")
	}
	if out.PCLK2, out.TIMCLK2, ok = apbClocks(out.HCLK, p.APB2); !ok {
		return Clocks{}, planErr(errcode.InvalidParams, "PCLK2 prescaler invalid")
	}

	if _, ok := mcopreCode(p.MCODiv); !ok {
		return Clocks{}, planErr(errcode.OutOfRange, "MCO prescaler not one of 1/2/4/8/16")
	}
	src, ok := p.mcoInput(out)
	if !ok {
		return Clocks{}, planErr(errcode.InvalidParams, "unknown MCO source")
	}
	out.MCO = src.DivRound(p.MCODiv)

	if out.PLL.Q == usbFreq {
		out.CLK48 = out.PLL.Q
	}
	out.FDCAN = out.PCLK1
	return out, nil
}

func pllOutput(vco hertz.Hertz, div uint32) (hertz.Hertz, bool) {
	f, ok := vco.Div(div)
	return f, ok && f <= maxPLLOut
}

func apbClocks(hclk hertz.Hertz, div uint32) (pclk, timclk hertz.Hertz, ok bool) {
	if _, ok := ppreCode(div); !ok {
		return 0, 0, false
	}
	if pclk, ok = hclk.Div(div); !ok {
		return 0, 0, false
	}
	timclk = pclk
	if div != 1 {
		timclk = 2 * pclk
	}
	return pclk, timclk, true
}

func (p Plan) mcoInput(c Clocks) (hertz.Hertz, bool) {
	switch p.MCO {
	case MCODisabled:
		return 0, true
	case MCOSYSCLK:
		return c.SYSCLK, true
	case MCOHSI16:
		return HSIFreq, true
	case MCOHSE:
		if p.PLL.Source == HSE {
			return p.PLL.In, true
		}
		return 0, true
	case MCOPLL:
		return c.PLL.R, true
	case MCOLSI:
		return LSIFreq, true
	case MCOLSE:
		return LSEFreq, true
	case MCOHSI48:
		return HSI48Freq, true
	}
	return 0, false
}

// Register images. Callers validate the plan first.

func (p Plan) pllcfgrFields() (mask, val uint32) {
	src := uint32(regs.RCC_PLLCFGR_PLLSRC_HSI16)
	if p.PLL.Source == HSE {
		src = regs.RCC_PLLCFGR_PLLSRC_HSE
	}
	m, _ := pllMCode(p.PLL.M)
	n, _ := pllNCode(p.PLL.N)
	r, _ := pllQRCode(p.PLL.R)
	q := uint32(0)
	if p.PLL.Q != 0 {
		q, _ = pllQRCode(p.PLL.Q)
	}
	pdiv := uint32(0)
	if p.PLL.P != 0 {
		pdiv, _, _ = pllPCode(p.PLL.P)
	}

	fields := [...]struct {
		f regs.Field
		v uint32
	}{
		{regs.RCC_PLLCFGR_PLLSRC, src},
		{regs.RCC_PLLCFGR_PLLM, m},
		{regs.RCC_PLLCFGR_PLLN, n},
		{regs.RCC_PLLCFGR_PLLP, 0},
		{regs.RCC_PLLCFGR_PLLPDIV, pdiv},
		{regs.RCC_PLLCFGR_PLLQ, q},
		{regs.RCC_PLLCFGR_PLLR, r},
	}
	for _, e := range fields {
		mask |= e.f.Mask()
		val = e.f.Put(val, e.v)
	}
	return mask, val
}

func (p Plan) pllOutputs() uint32 {
	v := uint32(regs.RCC_PLLCFGR_PLLREN)
	if p.PLL.Q != 0 {
		v |= regs.RCC_PLLCFGR_PLLQEN
	}
	if p.PLL.P != 0 {
		v |= regs.RCC_PLLCFGR_PLLPEN
	}
	return v
}

// cfgrSwitch selects the PLL with the intermediate AHB ratio and the final
// APB ratios in one write.
func (p Plan) cfgrSwitch() (mask, val uint32) {
	hpre, _ := hpreCode(p.SwitchAHB)
	ppre1, _ := ppreCode(p.APB1)
	ppre2, _ := ppreCode(p.APB2)
	mask = regs.RCC_CFGR_SW.Mask() | regs.RCC_CFGR_HPRE.Mask() |
		regs.RCC_CFGR_PPRE1.Mask() | regs.RCC_CFGR_PPRE2.Mask()
	val = regs.RCC_CFGR_SW.Put(val, regs.RCC_CFGR_SW_PLL)
	val = regs.RCC_CFGR_HPRE.Put(val, hpre)
	val = regs.RCC_CFGR_PPRE1.Put(val, ppre1)
	val = regs.RCC_CFGR_PPRE2.Put(val, ppre2)
	return mask, val
}

func (p Plan) hpreFinal() uint32 {
	c, _ := hpreCode(p.AHB)
	return c
}

func (p Plan) cfgrMCO() (mask, val uint32) {
	pre, _ := mcopreCode(p.MCODiv)
	mask = regs.RCC_CFGR_MCOSEL.Mask() | regs.RCC_CFGR_MCOPRE.Mask()
	val = regs.RCC_CFGR_MCOPRE.Put(val, pre)
	val = regs.RCC_CFGR_MCOSEL.Put(val, uint32(p.MCO))
	return mask, val
}

// decodePlan rebuilds a Plan from programmed PLLCFGR and CFGR words.
func decodePlan(src Source, in hertz.Hertz, pllcfgr, cfgr uint32) (Plan, error) {
	if regs.RCC_CFGR_SW.Get(cfgr) != regs.RCC_CFGR_SW_PLL {
		return Plan{}, planErr(errcode.InvalidParams, "SYSCLK not sourced from PLL")
	}
	if pllcfgr&regs.RCC_PLLCFGR_PLLREN == 0 {
		return Plan{}, planErr(errcode.InvalidParams, "PLL R output disabled")
	}
	p := Plan{PLL: PLLPlan{Source: src, In: in, N: regs.RCC_PLLCFGR_PLLN.Get(pllcfgr)}}
	var ok [6]bool
	p.PLL.M, ok[0] = pllMRatio(regs.RCC_PLLCFGR_PLLM.Get(pllcfgr))
	p.PLL.R, ok[1] = pllQRRatio(regs.RCC_PLLCFGR_PLLR.Get(pllcfgr))
	p.AHB, ok[2] = hpreRatio(regs.RCC_CFGR_HPRE.Get(cfgr))
	p.APB1, ok[3] = ppreRatio(regs.RCC_CFGR_PPRE1.Get(cfgr))
	p.APB2, ok[4] = ppreRatio(regs.RCC_CFGR_PPRE2.Get(cfgr))
	p.MCODiv, ok[5] = mcopreRatio(regs.RCC_CFGR_MCOPRE.Get(cfgr))
	for _, good := range ok {
		if !good {
			return Plan{}, planErr(errcode.InvalidParams, "reserved divider code")
		}
	}
	if pllcfgr&regs.RCC_PLLCFGR_PLLQEN != 0 {
		p.PLL.Q, _ = pllQRRatio(regs.RCC_PLLCFGR_PLLQ.Get(pllcfgr))
	}
	if pllcfgr&regs.RCC_PLLCFGR_PLLPEN != 0 {
		var good bool
		p.PLL.P, good = pllPRatio(regs.RCC_PLLCFGR_PLLPDIV.Get(pllcfgr), regs.RCC_PLLCFGR_PLLP.Get(pllcfgr))
		if !good {
			return Plan{}, planErr(errcode.InvalidParams, "reserved PLLPDIV code")
		}
	}
	p.SwitchAHB = switchHPRE(p.AHB)
	p.MCO = MCOSource(regs.RCC_CFGR_MCOSEL.Get(cfgr))
	return p, nil
}
