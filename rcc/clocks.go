package rcc

import "clockcode-go/hertz"

// Source is the oscillator feeding the PLL.
type Source uint8

const (
	HSI16 Source = iota
	HSE
)

func (s Source) String() string {
	if s == HSE {
		return "hse"
	}
	return "hsi16"
}

func (s Source) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Fixed oscillator frequencies.
const (
	HSIFreq   = 16 * hertz.MHz
	HSI48Freq = 48 * hertz.MHz
	LSIFreq   = 32 * hertz.KHz
	LSEFreq   = 32_768 * hertz.Hz
)

// PLLClocks are the PLL output taps. R drives SYSCLK and is always present
// after Freeze; Q and P are zero when their output stage is disabled.
type PLLClocks struct {
	R hertz.Hertz `yaml:"r"`
	Q hertz.Hertz `yaml:"q,omitempty"`
	P hertz.Hertz `yaml:"p,omitempty"`
}

// Clocks is the frozen clock tree. It is produced once by Freeze and never
// changes afterwards.
type Clocks struct {
	Source     Source      `yaml:"source"`
	Oscillator hertz.Hertz `yaml:"oscillator"`

	SYSCLK hertz.Hertz `yaml:"sysclk"`
	HCLK   hertz.Hertz `yaml:"hclk"`
	PCLK1  hertz.Hertz `yaml:"pclk1"`
	PCLK2  hertz.Hertz `yaml:"pclk2"`

	// APB timer kernels run at twice PCLK when the APB prescaler is not 1.
	TIMCLK1 hertz.Hertz `yaml:"timclk1"`
	TIMCLK2 hertz.Hertz `yaml:"timclk2"`

	PLL PLLClocks `yaml:"pll"`

	CLK48 hertz.Hertz `yaml:"clk48,omitempty"` // 0 unless sourced from PLL Q
	FDCAN hertz.Hertz `yaml:"fdcan"`
	MCO   hertz.Hertz `yaml:"mco,omitempty"`
}

func (c Clocks) String() string {
	s := "sysclk=" + c.SYSCLK.String() +
		" hclk=" + c.HCLK.String() +
		" pclk1=" + c.PCLK1.String() +
		" pclk2=" + c.PCLK2.String() +
		" pll.r=" + c.PLL.R.String()
	if c.PLL.Q != 0 {
		s += " pll.q=" + c.PLL.Q.String()
	}
	if c.PLL.P != 0 {
		s += " pll.p=" + c.PLL.P.String()
	}
	return s
}
