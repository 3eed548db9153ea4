package hertz

import (
	"errors"
	"math"
	"testing"

	"clockcode-go/errcode"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Hertz
	}{
		{"8MHz", 8 * MHz},
		{"8mhz", 8 * MHz},
		{" 144MHz ", 144 * MHz},
		{"36.864MHz", 36_864_000},
		{"2.666667MHz", 2_666_667},
		{"32.768kHz", 32_768},
		{"25Hz", 25},
		{"8000000", 8 * MHz},
		{"4294MHz", 4_294 * MHz},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil || got != tc.want {
			t.Fatalf("Parse(%q) = %d, %v want %d", tc.in, uint32(got), err, uint32(tc.want))
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		want errcode.Code
	}{
		{"", errcode.InvalidParams},
		{"MHz", errcode.InvalidParams},
		{"-8MHz", errcode.InvalidParams},
		{"1.5Hz", errcode.InvalidParams},
		{"1.0000001MHz", errcode.InvalidParams},
		{"8.x MHz", errcode.InvalidParams},
		{"4295MHz", errcode.OutOfRange},
		{"4294967296", errcode.OutOfRange},
		{"4294967296Hz", errcode.OutOfRange},
		{"18446744073709551616", errcode.OutOfRange},
		{"18446744073709551615MHz", errcode.OutOfRange},
	}
	for _, tc := range cases {
		if _, err := Parse(tc.in); !errors.Is(err, tc.want) {
			t.Fatalf("Parse(%q) err %v want %s", tc.in, err, tc.want)
		}
	}
	if f, err := Parse("4294967295"); err != nil || f != math.MaxUint32 {
		t.Fatalf("largest bare value: %d, %v", uint32(f), err)
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range []Hertz{144 * MHz, 36_864_000, 32_768, 25} {
		b, _ := f.MarshalText()
		var back Hertz
		if err := back.UnmarshalText(b); err != nil || back != f {
			t.Fatalf("%q -> %d, %v", b, uint32(back), err)
		}
	}
}
