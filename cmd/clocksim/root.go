//go:build !tinygo

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"clockcode-go/boards"
	"clockcode-go/errcode"
	"clockcode-go/hertz"
	"clockcode-go/rcc"
)

// options are the builder inputs shared by every subcommand.
type options struct {
	board   string
	profile string
	format  string

	hse    hertz.Hertz
	sysclk hertz.Hertz
	hclk   hertz.Hertz
	pclk1  hertz.Hertz
	pclk2  hertz.Hertz
	bypass bool
	css    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "clocksim",
		Short:         "STM32G4 clock tree planner and Freeze simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&opts.board, "board", "b", boards.Selected.Name, "board profile name")
	pf.StringVar(&opts.profile, "profile", "", "YAML board profile file (overrides --board)")
	pf.StringVarP(&opts.format, "format", "f", "text", "output format: text or yaml")
	pf.Var(hzFlag{&opts.hse}, "hse", "HSE frequency (e.g. 8MHz)")
	pf.Var(hzFlag{&opts.sysclk}, "sysclk", "SYSCLK target")
	pf.Var(hzFlag{&opts.hclk}, "hclk", "HCLK target")
	pf.Var(hzFlag{&opts.pclk1}, "pclk1", "PCLK1 target")
	pf.Var(hzFlag{&opts.pclk2}, "pclk2", "PCLK2 target")
	pf.BoolVar(&opts.bypass, "bypass", false, "HSE driven by an external clock")
	pf.BoolVar(&opts.css, "css", false, "enable the clock security system")

	root.AddCommand(newPlanCmd(opts), newTraceCmd(opts), newBoardsCmd())
	return root
}

// profile resolves --profile or --board, then applies flag overrides.
func (o *options) resolve(flags *pflag.FlagSet) (boards.Profile, error) {
	var p boards.Profile
	if o.profile != "" {
		b, err := os.ReadFile(o.profile)
		if err != nil {
			return p, err
		}
		if err := yaml.Unmarshal(b, &p); err != nil {
			return p, fmt.Errorf("%s: %w", o.profile, err)
		}
	} else {
		var ok bool
		if p, ok = boards.Lookup(o.board); !ok {
			return p, errcode.Wrap(errcode.InvalidParams, "clocksim", "unknown board "+o.board)
		}
	}
	set := func(name string, dst *hertz.Hertz, v hertz.Hertz) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	set("hse", &p.HSE, o.hse)
	set("sysclk", &p.SYSCLK, o.sysclk)
	set("hclk", &p.HCLK, o.hclk)
	set("pclk1", &p.PCLK1, o.pclk1)
	set("pclk2", &p.PCLK2, o.pclk2)
	if flags.Changed("bypass") {
		p.Bypass = o.bypass
	}
	if flags.Changed("css") {
		p.CSS = o.css
	}
	return p, nil
}

func (o *options) checkFormat() error {
	switch o.format {
	case "text", "yaml":
		return nil
	}
	return errcode.Wrap(errcode.InvalidParams, "clocksim", "unknown format "+o.format)
}

// hzFlag parses frequencies with units on the command line.
type hzFlag struct{ v *hertz.Hertz }

var _ pflag.Value = hzFlag{}

func (f hzFlag) String() string {
	if f.v == nil {
		return "0Hz"
	}
	return f.v.String()
}

func (f hzFlag) Set(s string) error {
	v, err := hertz.Parse(s)
	if err != nil {
		return err
	}
	*f.v = v
	return nil
}

func (hzFlag) Type() string { return "hertz" }

// planReport is the machine-readable form of a solved plan.
type planReport struct {
	Board      string      `yaml:"board,omitempty"`
	PLL        pllReport   `yaml:"pll"`
	Prescalers prescalers  `yaml:"prescalers"`
	Clocks     rcc.Clocks  `yaml:"clocks"`
	Trace      []traceLine `yaml:"trace,omitempty"`
}

type pllReport struct {
	Source string      `yaml:"source"`
	Input  hertz.Hertz `yaml:"input"`
	M      uint32      `yaml:"m"`
	N      uint32      `yaml:"n"`
	R      uint32      `yaml:"r"`
	Q      uint32      `yaml:"q,omitempty"`
	P      uint32      `yaml:"p,omitempty"`
}

type prescalers struct {
	AHB       uint32 `yaml:"ahb"`
	APB1      uint32 `yaml:"apb1"`
	APB2      uint32 `yaml:"apb2"`
	SwitchAHB uint32 `yaml:"switch_ahb"`
	MCO       uint32 `yaml:"mco"`
}

func newPlanReport(board string, p rcc.Plan, c rcc.Clocks) planReport {
	return planReport{
		Board: board,
		PLL: pllReport{
			Source: p.PLL.Source.String(),
			Input:  p.PLL.In,
			M:      p.PLL.M, N: p.PLL.N, R: p.PLL.R, Q: p.PLL.Q, P: p.PLL.P,
		},
		Prescalers: prescalers{AHB: p.AHB, APB1: p.APB1, APB2: p.APB2, SwitchAHB: p.SwitchAHB, MCO: p.MCODiv},
		Clocks:     c,
	}
}
