package rcc

import (
	"clockcode-go/errcode"
	"clockcode-go/hertz"
	"clockcode-go/x/mathx"
)

// Reference plan targets used for unset builder fields.
const (
	legacySYSCLK = 144 * hertz.MHz
	legacyAPBDiv = 4
	legacyMCODiv = 16
)

// Plan solves the builder's targets without touching hardware.
//
// SYSCLK is met exactly; unset, it comes from pickSYSCLK. Among the PLL
// settings that reach it, one with an exact 48 MHz Q output wins, then the
// largest N. P takes the smallest divider that keeps it at or below 24 MHz.
// Bus prescalers must divide exactly.
func (c CFGR) Plan() (Plan, error) {
	src, in := HSI16, HSIFreq
	switch {
	case c.hse != 0:
		if !c.hse.Within(minHSE, maxHSE) {
			return Plan{}, planErr(errcode.OutOfRange, "HSE outside 4-48MHz")
		}
		src, in = HSE, c.hse
	case c.bypass || c.css:
		return Plan{}, planErr(errcode.InvalidParams, "bypass and CSS need an HSE")
	}

	sys := c.sysclk
	var pll PLLPlan
	var err error
	switch {
	case sys == 0:
		sys, pll, err = c.pickSYSCLK(src, in)
	case sys > maxSYSCLK:
		return Plan{}, planErr(errcode.OutOfRange, "SYSCLK above 170MHz")
	default:
		pll, err = solvePLL(src, in, sys)
	}
	if err != nil {
		return Plan{}, err
	}

	p := Plan{PLL: pll, MCO: MCOPLL, MCODiv: legacyMCODiv}
	if c.mcoSet {
		p.MCO, p.MCODiv = c.mco, c.mcoDiv
	}

	hclk := c.hclk
	if hclk == 0 {
		hclk = sys
	}
	var ok bool
	if p.AHB, ok = prescaler(sys, hclk, hpreCode); !ok {
		return Plan{}, planErr(errcode.NoSolution, "no AHB prescaler for HCLK")
	}
	if p.APB1, ok = apbPrescaler(hclk, c.pclk1); !ok {
		return Plan{}, planErr(errcode.NoSolution, "no APB1 prescaler for PCLK1")
	}
	if p.APB2, ok = apbPrescaler(hclk, c.pclk2); !ok {
		return Plan{}, planErr(errcode.NoSolution, "no APB2 prescaler for PCLK2")
	}
	p.SwitchAHB = switchHPRE(p.AHB)

	return p, p.Validate()
}

// pickSYSCLK chooses SYSCLK when only HCLK (or nothing) is set. The
// reference 144 MHz wins whenever HCLK divides it through an encodable AHB
// ratio. Otherwise SYSCLK is HCLK times the smallest AHB ratio the PLL can
// reach.
func (c CFGR) pickSYSCLK(src Source, in hertz.Hertz) (hertz.Hertz, PLLPlan, error) {
	if c.hclk == 0 {
		pll, err := solvePLL(src, in, legacySYSCLK)
		return legacySYSCLK, pll, err
	}
	if _, ok := prescaler(legacySYSCLK, c.hclk, hpreCode); ok {
		if pll, err := solvePLL(src, in, legacySYSCLK); err == nil {
			return legacySYSCLK, pll, nil
		}
	}
	for _, e := range hpreTable {
		sys, ok := c.hclk.Mul(e.ratio)
		if !ok || sys > maxSYSCLK {
			break
		}
		if pll, err := solvePLL(src, in, sys); err == nil {
			return sys, pll, nil
		}
	}
	return 0, PLLPlan{}, planErr(errcode.NoSolution, "no SYSCLK reaches HCLK")
}

func solvePLL(src Source, in, sys hertz.Hertz) (PLLPlan, error) {
	var best PLLPlan
	found, bestUSB := false, false
	for m := uint32(1); m <= 16; m++ {
		vcoIn, ok := in.Div(m)
		if !ok || !vcoIn.Within(minVCOIn, maxVCOIn) {
			continue
		}
		for _, e := range pllQRTable {
			vco, ok := sys.Mul(e.ratio)
			if !ok || !vco.Within(minVCO, maxVCO) {
				continue
			}
			n, ok := mathx.ExactDiv(uint32(vco), uint32(vcoIn))
			if !ok {
				continue
			}
			if _, ok := pllNCode(n); !ok {
				continue
			}
			q := usbDivider(vco)
			usb := q != 0
			if found && !(usb && !bestUSB) && !(usb == bestUSB && n > best.N) {
				continue
			}
			best = PLLPlan{Source: src, In: in, M: m, N: n, R: e.ratio, Q: q, P: adcDivider(vco)}
			found, bestUSB = true, usb
		}
	}
	if !found {
		return PLLPlan{}, planErr(errcode.NoSolution, "no PLL setting reaches SYSCLK")
	}
	return best, nil
}

// usbDivider returns the Q ratio giving exactly 48 MHz, or 0.
func usbDivider(vco hertz.Hertz) uint32 {
	for _, e := range pllQRTable {
		if f, ok := vco.Div(e.ratio); ok && f == usbFreq {
			return e.ratio
		}
	}
	return 0
}

// adcDivider returns the smallest exact P ratio with P <= 24 MHz, or 0.
func adcDivider(vco hertz.Hertz) uint32 {
	for d := mathx.Max(mathx.CeilDiv(uint32(vco), uint32(adcFreq)), 2); d <= 31; d++ {
		if f, ok := vco.Div(d); ok && f >= minPLLP {
			return d
		}
	}
	return 0
}

func prescaler(from, to hertz.Hertz, code func(uint32) (uint32, bool)) (uint32, bool) {
	if to == 0 || to > from {
		return 0, false
	}
	ratio, ok := mathx.ExactDiv(uint32(from), uint32(to))
	if !ok {
		return 0, false
	}
	_, ok = code(ratio)
	return ratio, ok
}

// defaultAPB is the search order for an unset PCLK target: the reference
// /4 first, then slower, then faster.
var defaultAPB = [...]uint32{legacyAPBDiv, 8, 16, 2, 1}

func apbPrescaler(hclk, target hertz.Hertz) (uint32, bool) {
	if target != 0 {
		return prescaler(hclk, target, ppreCode)
	}
	for _, d := range defaultAPB {
		if _, ok := hclk.Div(d); ok {
			return d, true
		}
	}
	return 0, false
}
