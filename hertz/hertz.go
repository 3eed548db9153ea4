// Package hertz provides the frequency type used throughout the clock tree.
package hertz

import (
	"clockcode-go/x/mathx"
	"clockcode-go/x/strconvx"
)

// Hertz is a frequency in cycles per second.
type Hertz uint32

const (
	Hz  Hertz = 1
	KHz Hertz = 1000 * Hz
	MHz Hertz = 1000 * KHz
)

func HzOf(n uint32) Hertz  { return Hertz(n) }
func KHzOf(n uint32) Hertz { return Hertz(n) * KHz }
func MHzOf(n uint32) Hertz { return Hertz(n) * MHz }

// Raw returns the frequency as a plain integer.
func (f Hertz) Raw() uint32 { return uint32(f) }

// Div divides by a prescaler. ok is false when d is zero or the
// quotient is not exact.
func (f Hertz) Div(d uint32) (Hertz, bool) {
	q, ok := mathx.ExactDiv(uint32(f), d)
	return Hertz(q), ok
}

// DivRound divides by d rounding to nearest. d==0 yields 0.
func (f Hertz) DivRound(d uint32) Hertz {
	return Hertz(mathx.RoundDiv(uint32(f), d))
}

// Mul multiplies by m; ok is false on overflow.
func (f Hertz) Mul(m uint32) (Hertz, bool) {
	p, ok := mathx.MulOK(uint32(f), m)
	return Hertz(p), ok
}

// Within reports lo <= f <= hi.
func (f Hertz) Within(lo, hi Hertz) bool { return mathx.Between(f, lo, hi) }

// String renders 144MHz, 36.864MHz, 32.768kHz or 25Hz.
func (f Hertz) String() string {
	switch {
	case f >= MHz:
		return decimal(uint32(f), uint32(MHz)) + "MHz"
	case f >= KHz:
		return decimal(uint32(f), uint32(KHz)) + "kHz"
	default:
		return strconvx.FormatUint(uint64(f), 10) + "Hz"
	}
}

func decimal(v, unit uint32) string {
	s := strconvx.FormatUint(uint64(v/unit), 10)
	frac := v % unit
	if frac == 0 {
		return s
	}
	digits := []byte(strconvx.FormatUint(uint64(frac+unit), 10)[1:])
	for len(digits) > 0 && digits[len(digits)-1] == '0' {
		digits = digits[:len(digits)-1]
	}
	return s + "." + string(digits)
}
