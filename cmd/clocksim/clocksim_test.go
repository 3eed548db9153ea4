//go:build !tinygo

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"clockcode-go/errcode"
	"clockcode-go/hertz"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPlanText(t *testing.T) {
	out, err := run(t, "plan", "--board", "reference")
	if err != nil {
		t.Fatalf("plan: %v\n%s", err, out)
	}
	for _, want := range []string{"sysclk", "144MHz", "pclk1", "36MHz", "M=2 N=72 R=/2 Q=/6 P=/12"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestPlanYAML(t *testing.T) {
	out, err := run(t, "plan", "--board", "reference", "--hclk", "72MHz", "-f", "yaml")
	if err != nil {
		t.Fatalf("plan: %v\n%s", err, out)
	}
	var got struct {
		Prescalers struct {
			AHB uint32 `yaml:"ahb"`
		} `yaml:"prescalers"`
		Clocks struct {
			HCLK string `yaml:"hclk"`
		} `yaml:"clocks"`
	}
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("yaml: %v\n%s", err, out)
	}
	if got.Prescalers.AHB != 2 || got.Clocks.HCLK != "72MHz" {
		t.Fatalf("decoded %+v\n%s", got, out)
	}
}

func TestPlanErrors(t *testing.T) {
	if _, err := run(t, "plan", "--board", "nope"); !errors.Is(err, errcode.InvalidParams) {
		t.Fatalf("unknown board err %v", err)
	}
	if _, err := run(t, "plan", "--hclk", "97MHz"); !errors.Is(err, errcode.NoSolution) {
		t.Fatalf("unsolvable err %v", err)
	}
	if _, err := run(t, "plan", "-f", "json"); !errors.Is(err, errcode.InvalidParams) {
		t.Fatalf("format err %v", err)
	}
	if _, err := run(t, "plan", "--hse", "eight"); err == nil {
		t.Fatal("bad frequency accepted")
	}
}

func TestProfileFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	doc := "name: custom\nhse: 16MHz\nsysclk: 96MHz\npclk1: 48MHz\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "plan", "--profile", path)
	if err != nil {
		t.Fatalf("plan: %v\n%s", err, out)
	}
	if !strings.Contains(out, "custom") || !strings.Contains(out, "hse 16MHz") {
		t.Fatalf("output:\n%s", out)
	}
}

func TestTraceWrites(t *testing.T) {
	out, err := run(t, "trace", "--board", "reference", "--no-flash")
	if err != nil {
		t.Fatalf("trace: %v\n%s", err, out)
	}
	if n := strings.Count(out, "\nW "); n != 13 {
		t.Fatalf("%d writes in\n%s", n, out)
	}
	if !strings.Contains(out, "PLLCFGR") || !strings.Contains(out, "0x61514813") {
		t.Fatalf("trace lacks PLL enables:\n%s", out)
	}
}

func TestTraceTimeoutStillPrints(t *testing.T) {
	out, err := run(t, "trace", "--latency", "-1", "--poll-limit", "8")
	if !errors.Is(err, errcode.OscStartupTimeout) {
		t.Fatalf("err %v", err)
	}
	if !strings.Contains(out, "W") || !strings.Contains(out, "CR") {
		t.Fatalf("no trace printed:\n%s", out)
	}
}

func TestBoardsList(t *testing.T) {
	out, err := run(t, "boards")
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range []string{"reference", "nucleo_g474re", "hsi_only"} {
		if !strings.Contains(out, n) {
			t.Fatalf("missing %s in\n%s", n, out)
		}
	}
}

func TestHzFlag(t *testing.T) {
	var v hertz.Hertz
	f := hzFlag{&v}
	if err := f.Set("36.864MHz"); err != nil || v != 36_864_000 {
		t.Fatalf("Set: %d, %v", uint32(v), err)
	}
	if f.String() != "36.864MHz" || f.Type() != "hertz" {
		t.Fatalf("String %q Type %q", f.String(), f.Type())
	}
}
