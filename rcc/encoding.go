package rcc

// Divider field encodings, RM0440 §7.4. None of these are linear; each table
// maps a canonical register code to its division ratio.

type codeRatio struct {
	code  uint32
	ratio uint32
}

var (
	hpreTable = [...]codeRatio{
		{0b0000, 1}, {0b1000, 2}, {0b1001, 4}, {0b1010, 8}, {0b1011, 16},
		{0b1100, 64}, {0b1101, 128}, {0b1110, 256}, {0b1111, 512},
	}
	ppreTable = [...]codeRatio{
		{0b000, 1}, {0b100, 2}, {0b101, 4}, {0b110, 8}, {0b111, 16},
	}
	// PLLQ and PLLR share an encoding.
	pllQRTable = [...]codeRatio{
		{0b00, 2}, {0b01, 4}, {0b10, 6}, {0b11, 8},
	}
	mcopreTable = [...]codeRatio{
		{0b000, 1}, {0b001, 2}, {0b010, 4}, {0b011, 8}, {0b100, 16},
	}
)

func encode(table []codeRatio, ratio uint32) (uint32, bool) {
	for _, e := range table {
		if e.ratio == ratio {
			return e.code, true
		}
	}
	return 0, false
}

func decode(table []codeRatio, code uint32) (uint32, bool) {
	for _, e := range table {
		if e.code == code {
			return e.ratio, true
		}
	}
	return 0, false
}

// HPRE codes 0xxx all mean /1.
func hpreCode(ratio uint32) (uint32, bool) { return encode(hpreTable[:], ratio) }
func hpreRatio(code uint32) (uint32, bool) {
	if code < 0b1000 {
		return 1, true
	}
	return decode(hpreTable[:], code)
}

// switchHPRE is the next HPRE ratio above ratio, so the switch-over always
// runs HCLK slower than the final setting. /512 is its own successor.
func switchHPRE(ratio uint32) uint32 {
	for _, e := range hpreTable {
		if e.ratio > ratio {
			return e.ratio
		}
	}
	return hpreTable[len(hpreTable)-1].ratio
}

// PPRE codes 0xx all mean /1.
func ppreCode(ratio uint32) (uint32, bool) { return encode(ppreTable[:], ratio) }
func ppreRatio(code uint32) (uint32, bool) {
	if code < 0b100 {
		return 1, true
	}
	return decode(ppreTable[:], code)
}

func pllQRCode(ratio uint32) (uint32, bool)  { return encode(pllQRTable[:], ratio) }
func pllQRRatio(code uint32) (uint32, bool)  { return decode(pllQRTable[:], code) }
func mcopreCode(ratio uint32) (uint32, bool) { return encode(mcopreTable[:], ratio) }
func mcopreRatio(code uint32) (uint32, bool) { return decode(mcopreTable[:], code) }

// PLLM stores M-1 for M in 1..16.
func pllMCode(m uint32) (uint32, bool) {
	if m < 1 || m > 16 {
		return 0, false
	}
	return m - 1, true
}
func pllMRatio(code uint32) (uint32, bool) {
	if code > 15 {
		return 0, false
	}
	return code + 1, true
}

// PLLN is the literal multiplier, valid from 8 to 127.
func pllNCode(n uint32) (uint32, bool) { return n, n >= 8 && n <= 127 }

// PLLPDIV is the literal divider for 2..31. Code 0 defers to the PLLP bit
// (0: /7, 1: /17) and code 1 is reserved.
func pllPCode(p uint32) (pdiv, pbit uint32, ok bool) {
	if p >= 2 && p <= 31 {
		return p, 0, true
	}
	return 0, 0, false
}
func pllPRatio(pdiv, pbit uint32) (uint32, bool) {
	switch {
	case pdiv >= 2 && pdiv <= 31:
		return pdiv, true
	case pdiv == 0 && pbit == 0:
		return 7, true
	case pdiv == 0 && pbit == 1:
		return 17, true
	}
	return 0, false
}
