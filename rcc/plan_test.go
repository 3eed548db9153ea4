package rcc

import (
	"errors"
	"testing"

	"clockcode-go/errcode"
	"clockcode-go/hertz"
)

func TestLegacyPlanClocks(t *testing.T) {
	c, err := LegacyPlan().Clocks()
	if err != nil {
		t.Fatalf("Clocks: %v", err)
	}
	want := Clocks{
		Source:     HSE,
		Oscillator: 8 * hertz.MHz,
		SYSCLK:     144 * hertz.MHz,
		HCLK:       144 * hertz.MHz,
		PCLK1:      36 * hertz.MHz,
		PCLK2:      36 * hertz.MHz,
		TIMCLK1:    72 * hertz.MHz,
		TIMCLK2:    72 * hertz.MHz,
		PLL:        PLLClocks{R: 144 * hertz.MHz, Q: 48 * hertz.MHz, P: 24 * hertz.MHz},
		CLK48:      48 * hertz.MHz,
		FDCAN:      36 * hertz.MHz,
		MCO:        9 * hertz.MHz,
	}
	if c != want {
		t.Fatalf("got  %+v\nwant %+v", c, want)
	}
}

func TestSolveDefaultsToLegacyPlan(t *testing.T) {
	p, err := CFGR{}.UseHSE(8 * hertz.MHz).Plan()
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if p != LegacyPlan() {
		t.Fatalf("got  %+v\nwant %+v", p, LegacyPlan())
	}
}

func TestSolvePLL(t *testing.T) {
	cases := []struct {
		name    string
		cfg     CFGR
		m, n, r uint32
		q, p    uint32
	}{
		{"hsi16", CFGR{}, 5, 90, 2, 6, 12},
		{"hse24", CFGR{}.UseHSE(24 * hertz.MHz), 8, 96, 2, 6, 12},
		{"hse8 170MHz", CFGR{}.UseHSE(8 * hertz.MHz).SYSCLK(170 * hertz.MHz), 2, 85, 2, 0, 17},
		{"hse8 96MHz", CFGR{}.UseHSE(8 * hertz.MHz).SYSCLK(96 * hertz.MHz), 2, 48, 2, 4, 8},
	}
	for _, tc := range cases {
		p, err := tc.cfg.Plan()
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		got := p.PLL
		if got.M != tc.m || got.N != tc.n || got.R != tc.r || got.Q != tc.q || got.P != tc.p {
			t.Fatalf("%s: got M=%d N=%d R=%d Q=%d P=%d", tc.name, got.M, got.N, got.R, got.Q, got.P)
		}
	}
}

func TestSolveBusTargets(t *testing.T) {
	p, err := CFGR{}.UseHSE(8 * hertz.MHz).
		HCLK(72 * hertz.MHz).
		PCLK1(18 * hertz.MHz).
		PCLK2(72 * hertz.MHz).
		Plan()
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if p.AHB != 2 || p.APB1 != 4 || p.APB2 != 1 || p.SwitchAHB != 4 {
		t.Fatalf("prescalers %+v", p)
	}
	c, _ := p.Clocks()
	if c.HCLK != 72*hertz.MHz || c.PCLK1 != 18*hertz.MHz || c.PCLK2 != 72*hertz.MHz {
		t.Fatalf("clocks %v", c)
	}
	if c.TIMCLK2 != c.PCLK2 {
		t.Fatalf("TIMCLK2 %v with APB2 /1", c.TIMCLK2)
	}
}

func TestSolveHCLKOnly(t *testing.T) {
	cases := []struct {
		hclk      hertz.Hertz
		sys       hertz.Hertz
		m, n      uint32
		ahb, swit uint32
	}{
		{170 * hertz.MHz, 170 * hertz.MHz, 2, 85, 1, 2},
		{160 * hertz.MHz, 160 * hertz.MHz, 2, 80, 1, 2},
		{100 * hertz.MHz, 100 * hertz.MHz, 2, 50, 1, 2},
		{72 * hertz.MHz, 144 * hertz.MHz, 2, 72, 2, 4},
		{36 * hertz.MHz, 144 * hertz.MHz, 2, 72, 4, 8},
		{50 * hertz.MHz, 50 * hertz.MHz, 2, 75, 1, 2},
	}
	for _, tc := range cases {
		p, err := CFGR{}.UseHSE(8 * hertz.MHz).HCLK(tc.hclk).Plan()
		if err != nil {
			t.Fatalf("HCLK %v: %v", tc.hclk, err)
		}
		c, err := p.Clocks()
		if err != nil {
			t.Fatalf("HCLK %v: clocks: %v", tc.hclk, err)
		}
		if c.HCLK != tc.hclk || c.SYSCLK != tc.sys {
			t.Fatalf("HCLK %v: got SYSCLK %v HCLK %v", tc.hclk, c.SYSCLK, c.HCLK)
		}
		if p.PLL.M != tc.m || p.PLL.N != tc.n || p.AHB != tc.ahb || p.SwitchAHB != tc.swit {
			t.Fatalf("HCLK %v: plan %+v", tc.hclk, p)
		}
	}
}

func TestSwitchRatioIsSlowerThanFinal(t *testing.T) {
	for _, e := range hpreTable {
		got := switchHPRE(e.ratio)
		if e.ratio == 512 {
			if got != 512 {
				t.Fatalf("/512 switch ratio %d", got)
			}
			continue
		}
		if got <= e.ratio {
			t.Fatalf("AHB /%d switches at /%d", e.ratio, got)
		}
		if _, ok := hpreCode(got); !ok {
			t.Fatalf("AHB /%d switch ratio /%d not encodable", e.ratio, got)
		}
	}
	if switchHPRE(16) != 64 {
		t.Fatalf("/16 switches at /%d, want /64", switchHPRE(16))
	}
}

func TestSolveErrors(t *testing.T) {
	hse := CFGR{}.UseHSE(8 * hertz.MHz)
	cases := []struct {
		name string
		cfg  CFGR
		want errcode.Code
	}{
		{"hse too slow", CFGR{}.UseHSE(3 * hertz.MHz), errcode.OutOfRange},
		{"hse too fast", CFGR{}.UseHSE(50 * hertz.MHz), errcode.OutOfRange},
		{"bypass without hse", CFGR{}.BypassHSE(), errcode.InvalidParams},
		{"css without hse", CFGR{}.EnableCSS(), errcode.InvalidParams},
		{"sysclk too fast", hse.SYSCLK(180 * hertz.MHz), errcode.OutOfRange},
		{"sysclk unreachable", hse.SYSCLK(hertz.MHzOf(97)), errcode.NoSolution},
		{"hclk unreachable", hse.HCLK(hertz.MHzOf(97)), errcode.NoSolution},
		{"hclk too fast", hse.HCLK(180 * hertz.MHz), errcode.NoSolution},
		{"pclk1 /3", hse.PCLK1(48 * hertz.MHz), errcode.NoSolution},
		{"pclk2 above hclk", hse.PCLK2(150 * hertz.MHz), errcode.NoSolution},
		{"mco div", hse.MCO(MCOSYSCLK, 3), errcode.OutOfRange},
	}
	for _, tc := range cases {
		_, err := tc.cfg.Plan()
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: err %v want %s", tc.name, err, tc.want)
		}
	}
}

func TestPlanValidateRejectsLimits(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*Plan)
	}{
		{"vco input low", func(p *Plan) { p.PLL.M = 4 }},
		{"vco high", func(p *Plan) { p.PLL.N = 127 }},
		{"n low", func(p *Plan) { p.PLL.N = 7 }},
		{"r code", func(p *Plan) { p.PLL.R = 3 }},
		{"p reserved", func(p *Plan) { p.PLL.P = 1 }},
		{"ahb code", func(p *Plan) { p.AHB = 32 }},
		{"switch below final", func(p *Plan) { p.AHB, p.SwitchAHB = 4, 2 }},
		{"switch equals final", func(p *Plan) { p.SwitchAHB = 1 }},
		{"apb code", func(p *Plan) { p.APB1 = 3 }},
	}
	for _, tc := range cases {
		p := LegacyPlan()
		tc.mod(&p)
		if err := p.Validate(); err == nil {
			t.Fatalf("%s: accepted %+v", tc.name, p)
		}
	}
}

func TestDecodePlanMatchesProgrammedFields(t *testing.T) {
	want := LegacyPlan()
	_, pll := want.pllcfgrFields()
	pll |= want.pllOutputs()
	_, sw := want.cfgrSwitch()
	_, mco := want.cfgrMCO()
	cfgr := sw&^(0xF<<4) | mco

	got, err := decodePlan(HSE, 8*hertz.MHz, pll, cfgr)
	if err != nil {
		t.Fatalf("decodePlan: %v", err)
	}
	if got != want {
		t.Fatalf("got  %+v\nwant %+v", got, want)
	}
}

func TestClocksString(t *testing.T) {
	c, _ := LegacyPlan().Clocks()
	want := "sysclk=144MHz hclk=144MHz pclk1=36MHz pclk2=36MHz pll.r=144MHz pll.q=48MHz pll.p=24MHz"
	if s := c.String(); s != want {
		t.Fatalf("String() = %q", s)
	}
}
