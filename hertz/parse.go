package hertz

import (
	"math"
	"strings"

	"clockcode-go/errcode"
	"clockcode-go/x/strconvx"
)

// Parse reads a frequency such as "8MHz", "36.864MHz", "32.768kHz", "25Hz"
// or a bare integer in Hz. Units are case-insensitive.
func Parse(s string) (Hertz, error) {
	num, unit, digits := splitUnit(strings.TrimSpace(s))
	whole, frac, _ := strings.Cut(num, ".")
	w, err := strconvx.ParseUint(whole, 10, 64)
	if err != nil {
		if digitsOnly(whole) {
			return 0, errcode.Wrap(errcode.OutOfRange, "hertz.parse", s)
		}
		return 0, errcode.Wrap(errcode.InvalidParams, "hertz.parse", s)
	}
	if w > math.MaxUint32/uint64(unit) {
		return 0, errcode.Wrap(errcode.OutOfRange, "hertz.parse", s)
	}
	v := w * uint64(unit)
	if frac != "" {
		if len(frac) > digits {
			return 0, errcode.Wrap(errcode.InvalidParams, "hertz.parse", "sub-Hz precision in "+s)
		}
		f, err := strconvx.ParseUint(frac, 10, 32)
		if err != nil {
			return 0, errcode.Wrap(errcode.InvalidParams, "hertz.parse", s)
		}
		for i := len(frac); i < digits; i++ {
			f *= 10
		}
		v += f
	}
	if v > math.MaxUint32 {
		return 0, errcode.Wrap(errcode.OutOfRange, "hertz.parse", s)
	}
	return Hertz(v), nil
}

// digitsOnly reports a non-empty run of decimal digits, so a parse failure
// on it can only be overflow.
func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func splitUnit(s string) (num string, unit Hertz, digits int) {
	l := strings.ToLower(s)
	switch {
	case strings.HasSuffix(l, "mhz"):
		return s[:len(s)-3], MHz, 6
	case strings.HasSuffix(l, "khz"):
		return s[:len(s)-3], KHz, 3
	case strings.HasSuffix(l, "hz"):
		return s[:len(s)-2], Hz, 0
	}
	return s, Hz, 0
}

// MarshalText renders the String form so YAML and flags round-trip.
func (f Hertz) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *Hertz) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
