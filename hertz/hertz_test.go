package hertz

import "testing"

func TestUnits(t *testing.T) {
	if MHzOf(8) != 8_000_000 || KHzOf(32) != 32_000 || HzOf(5) != 5 {
		t.Fatal("unit constructors wrong")
	}
	if MHzOf(144).Raw() != 144_000_000 {
		t.Fatal("Raw wrong")
	}
}

func TestDiv(t *testing.T) {
	for _, c := range []struct {
		f    Hertz
		d    uint32
		want Hertz
		ok   bool
	}{
		{MHzOf(144), 4, MHzOf(36), true},
		{MHzOf(288), 6, MHzOf(48), true},
		{MHzOf(8), 3, 2_666_666, false},
		{MHzOf(8), 0, 0, false},
	} {
		got, ok := c.f.Div(c.d)
		if got != c.want || ok != c.ok {
			t.Fatalf("%v.Div(%d) = %v,%v want %v,%v", c.f, c.d, got, ok, c.want, c.ok)
		}
	}
	if MHzOf(8).DivRound(3) != 2_666_667 {
		t.Fatal("DivRound wrong")
	}
}

func TestMul(t *testing.T) {
	if f, ok := MHzOf(4).Mul(72); !ok || f != MHzOf(288) {
		t.Fatalf("Mul = %v,%v", f, ok)
	}
	if _, ok := MHzOf(100).Mul(100); ok {
		t.Fatal("Mul should report overflow")
	}
}

func TestString(t *testing.T) {
	for f, want := range map[Hertz]string{
		MHzOf(144):      "144MHz",
		36_864_000:      "36.864MHz",
		2_666_667:       "2.666667MHz",
		KHzOf(32) + 768: "32.768kHz",
		25:              "25Hz",
		0:               "0Hz",
	} {
		if got := f.String(); got != want {
			t.Fatalf("String(%d) = %q, want %q", uint32(f), got, want)
		}
	}
}
