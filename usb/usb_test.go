package usb

import (
	"errors"
	"testing"

	"clockcode-go/device"
	"clockcode-go/errcode"
	"clockcode-go/hertz"
	"clockcode-go/rcc"
	"clockcode-go/regs"
	"clockcode-go/regs/regsim"
)

func constrain(t *testing.T) (*rcc.Rcc, *regsim.Bank) {
	t.Helper()
	b := regsim.NewRCC(regsim.Latency{})
	r, err := rcc.Constrain(device.New(b, regsim.NewFlash()).RCC)
	if err != nil {
		t.Fatalf("Constrain: %v", err)
	}
	return r, b
}

func TestNewRequires48MHz(t *testing.T) {
	r, _ := constrain(t)
	if _, err := New(r.APB1, rcc.Clocks{CLK48: 40 * hertz.MHz}); !errors.Is(err, errcode.InvalidParams) {
		t.Fatalf("err %v", err)
	}
	if _, err := New(nil, rcc.Clocks{CLK48: 48 * hertz.MHz}); !errors.Is(err, errcode.InvalidParams) {
		t.Fatalf("nil token err %v", err)
	}
}

func TestEnableAfterFreeze(t *testing.T) {
	r, b := constrain(t)
	clocks, err := r.CFGR.UseHSE(8 * hertz.MHz).SwitchDelay(0).Freeze(nil)
	if err != nil {
		t.Fatalf("Freeze: %v", err)
	}
	p, err := New(r.APB1, clocks)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.Clock() != 48*hertz.MHz {
		t.Fatalf("clock %v", p.Clock())
	}

	b.ResetTrace()
	p.Enable()
	w := b.Writes()
	if len(w) != 3 {
		t.Fatalf("writes %+v", w)
	}
	if w[0].Off != regs.RCC_APB1ENR1 || w[0].Val&uint32(rcc.USB) == 0 {
		t.Fatalf("enable write %+v", w[0])
	}
	if w[1].Off != regs.RCC_APB1RSTR1 || w[1].Val&uint32(rcc.USB) == 0 {
		t.Fatalf("reset assert %+v", w[1])
	}
	if w[2].Off != regs.RCC_APB1RSTR1 || w[2].Val&uint32(rcc.USB) != 0 {
		t.Fatalf("reset release %+v", w[2])
	}

	var waited uint32
	p.StartupDelay(func(n uint32) { waited += n })
	if waited != StartupCycles {
		t.Fatalf("waited %d cycles", waited)
	}
}
