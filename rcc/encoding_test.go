package rcc

import "testing"

func TestDividerTablesRoundTrip(t *testing.T) {
	tables := map[string]struct {
		code  func(uint32) (uint32, bool)
		ratio func(uint32) (uint32, bool)
		codes []codeRatio
	}{
		"hpre":   {hpreCode, hpreRatio, hpreTable[:]},
		"ppre":   {ppreCode, ppreRatio, ppreTable[:]},
		"pllqr":  {pllQRCode, pllQRRatio, pllQRTable[:]},
		"mcopre": {mcopreCode, mcopreRatio, mcopreTable[:]},
	}
	for name, tc := range tables {
		for _, e := range tc.codes {
			c, ok := tc.code(e.ratio)
			if !ok || c != e.code {
				t.Fatalf("%s: code(%d) = %b,%v want %b", name, e.ratio, c, ok, e.code)
			}
			r, ok := tc.ratio(c)
			if !ok || r != e.ratio {
				t.Fatalf("%s: ratio(%b) = %d,%v want %d", name, c, r, ok, e.ratio)
			}
		}
	}
}

func TestDividerCodesAreNotLinear(t *testing.T) {
	cases := []struct {
		name  string
		code  func(uint32) (uint32, bool)
		ratio uint32
		want  uint32
	}{
		{"hpre/2", hpreCode, 2, 0b1000},
		{"hpre/64", hpreCode, 64, 0b1100},
		{"hpre/512", hpreCode, 512, 0b1111},
		{"ppre/4", ppreCode, 4, 0b101},
		{"pllr/2", pllQRCode, 2, 0b00},
		{"pllq/6", pllQRCode, 6, 0b10},
		{"mcopre/16", mcopreCode, 16, 0b100},
	}
	for _, tc := range cases {
		got, ok := tc.code(tc.ratio)
		if !ok || got != tc.want {
			t.Fatalf("%s: got %b,%v want %b", tc.name, got, ok, tc.want)
		}
	}
	for _, bad := range []uint32{0, 3, 32} {
		if _, ok := hpreCode(bad); ok {
			t.Fatalf("hpre accepted /%d", bad)
		}
	}
	if _, ok := pllQRCode(3); ok {
		t.Fatal("pllqr accepted /3")
	}
}

func TestUndefinedPrescalerCodesMeanDivOne(t *testing.T) {
	for c := uint32(0); c < 0b1000; c++ {
		if r, ok := hpreRatio(c); !ok || r != 1 {
			t.Fatalf("hpre %b = %d,%v want 1", c, r, ok)
		}
	}
	for c := uint32(0); c < 0b100; c++ {
		if r, ok := ppreRatio(c); !ok || r != 1 {
			t.Fatalf("ppre %b = %d,%v want 1", c, r, ok)
		}
	}
}

func TestPLLFieldEncodings(t *testing.T) {
	for m := uint32(1); m <= 16; m++ {
		c, ok := pllMCode(m)
		if !ok || c != m-1 {
			t.Fatalf("M=%d code %d,%v", m, c, ok)
		}
		if r, _ := pllMRatio(c); r != m {
			t.Fatalf("M code %d decodes to %d", c, r)
		}
	}
	if _, ok := pllMCode(0); ok {
		t.Fatal("M=0 accepted")
	}
	if _, ok := pllMCode(17); ok {
		t.Fatal("M=17 accepted")
	}
	for _, n := range []uint32{7, 128} {
		if _, ok := pllNCode(n); ok {
			t.Fatalf("N=%d accepted", n)
		}
	}
	if c, ok := pllNCode(72); !ok || c != 72 {
		t.Fatalf("N=72 code %d,%v", c, ok)
	}

	pdiv, pbit, ok := pllPCode(12)
	if !ok || pdiv != 12 || pbit != 0 {
		t.Fatalf("P=12 -> %d,%d,%v", pdiv, pbit, ok)
	}
	if _, _, ok := pllPCode(1); ok {
		t.Fatal("P=1 accepted")
	}
	if r, _ := pllPRatio(0, 0); r != 7 {
		t.Fatalf("PDIV=0 PLLP=0 -> /%d want /7", r)
	}
	if r, _ := pllPRatio(0, 1); r != 17 {
		t.Fatalf("PDIV=0 PLLP=1 -> /%d want /17", r)
	}
	if _, ok := pllPRatio(1, 0); ok {
		t.Fatal("PDIV=1 accepted")
	}
}
