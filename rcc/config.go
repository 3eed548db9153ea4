package rcc

import "clockcode-go/hertz"

// Defaults applied by Freeze when the builder leaves them unset.
const (
	DefaultPollLimit   = 1 << 20
	DefaultSwitchDelay = 10_000
)

// CFGR is the clock configuration builder. Setters return a modified copy;
// the zero targets mean "use the reference plan".
type CFGR struct {
	hw *hw

	hse    hertz.Hertz
	bypass bool
	css    bool

	sysclk hertz.Hertz
	hclk   hertz.Hertz
	pclk1  hertz.Hertz
	pclk2  hertz.Hertz

	mco    MCOSource
	mcoDiv uint32
	mcoSet bool

	pollLimit   uint32
	switchDelay uint32
	delaySet    bool

	log func(string)
}

// UseHSE selects the external oscillator at freq as PLL input.
func (c CFGR) UseHSE(freq hertz.Hertz) CFGR {
	c.hse = freq
	return c
}

// BypassHSE drives HSE from an external clock signal instead of a crystal.
func (c CFGR) BypassHSE() CFGR {
	c.bypass = true
	return c
}

// EnableCSS turns on the HSE clock security system.
func (c CFGR) EnableCSS() CFGR {
	c.css = true
	return c
}

func (c CFGR) SYSCLK(freq hertz.Hertz) CFGR {
	c.sysclk = freq
	return c
}

func (c CFGR) HCLK(freq hertz.Hertz) CFGR {
	c.hclk = freq
	return c
}

func (c CFGR) PCLK1(freq hertz.Hertz) CFGR {
	c.pclk1 = freq
	return c
}

func (c CFGR) PCLK2(freq hertz.Hertz) CFGR {
	c.pclk2 = freq
	return c
}

// MCO routes src to the MCO pin divided by div (1, 2, 4, 8 or 16).
func (c CFGR) MCO(src MCOSource, div uint32) CFGR {
	c.mco, c.mcoDiv, c.mcoSet = src, div, true
	return c
}

// PollLimit bounds every status wait in Freeze. Zero restores the default.
func (c CFGR) PollLimit(n uint32) CFGR {
	c.pollLimit = n
	return c
}

// SwitchDelay sets the number of CFGR reads spun after the clock switch is
// requested and before SWS is polled.
func (c CFGR) SwitchDelay(n uint32) CFGR {
	c.switchDelay, c.delaySet = n, true
	return c
}

// Logger installs a stage logger; nil disables logging.
func (c CFGR) Logger(fn func(string)) CFGR {
	c.log = fn
	return c
}

func (c CFGR) limit() uint32 {
	if c.pollLimit == 0 {
		return DefaultPollLimit
	}
	return c.pollLimit
}

func (c CFGR) delay() uint32 {
	if !c.delaySet {
		return DefaultSwitchDelay
	}
	return c.switchDelay
}

func (c CFGR) logf(msg string) {
	if c.log != nil {
		c.log(msg)
	}
}
