//go:build !tinygo

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"clockcode-go/device"
	"clockcode-go/flash"
	"clockcode-go/rcc"
	"clockcode-go/regs"
	"clockcode-go/regs/regsim"
)

type traceLine struct {
	Op  string `yaml:"op"`
	Reg string `yaml:"reg"`
	Val string `yaml:"val"`
}

type traceOptions struct {
	latency     int
	pollLimit   uint32
	switchDelay uint32
	reads       bool
	noFlash     bool
	verbose     bool
}

func newTraceCmd(opts *options) *cobra.Command {
	to := &traceOptions{}
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Run Freeze against a simulated RCC and print the register accesses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.checkFormat(); err != nil {
				return err
			}
			prof, err := opts.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			r, err := runTrace(cmd, prof.Apply, to)
			r.Board = prof.Name
			if err != nil && len(r.Trace) == 0 {
				return err
			}
			// A failed Freeze still prints what it wrote.
			if werr := writeReport(cmd.OutOrStdout(), opts.format, r); werr != nil {
				return werr
			}
			return err
		},
	}
	f := cmd.Flags()
	f.IntVar(&to.latency, "latency", 2, "status reads before each ready bit changes (-1: never)")
	f.Uint32Var(&to.pollLimit, "poll-limit", 0, "status poll bound (0: default)")
	f.Uint32Var(&to.switchDelay, "switch-delay", 8, "CFGR reads spun after the clock switch request")
	f.BoolVar(&to.reads, "reads", false, "include register reads")
	f.BoolVar(&to.noFlash, "no-flash", false, "skip the flash wait-state step")
	f.BoolVarP(&to.verbose, "verbose", "v", false, "log Freeze stages to stderr")
	return cmd
}

func runTrace(cmd *cobra.Command, apply func(rcc.CFGR) rcc.CFGR, to *traceOptions) (planReport, error) {
	lat := regsim.Latency{HSI: to.latency, HSE: to.latency, PLL: to.latency, Switch: to.latency}
	bank := regsim.NewRCC(lat)
	periph := device.New(bank, regsim.NewFlash())

	rc, err := rcc.Constrain(periph.RCC)
	if err != nil {
		return planReport{}, err
	}
	var acr *flash.ACR
	if !to.noFlash {
		fp, err := flash.Constrain(periph.FLASH)
		if err != nil {
			return planReport{}, err
		}
		acr = fp.ACR
	}

	cfg := apply(rc.CFGR).PollLimit(to.pollLimit).SwitchDelay(to.switchDelay)
	if to.verbose {
		stderr := cmd.ErrOrStderr()
		cfg = cfg.Logger(func(s string) { fmt.Fprintln(stderr, s) })
	}
	plan, err := cfg.Plan()
	if err != nil {
		return planReport{}, err
	}

	bank.ResetTrace()
	clocks, err := cfg.Freeze(acr)

	r := newPlanReport("", plan, clocks)
	for _, a := range bank.Trace() {
		if a.Op == regsim.Read && !to.reads {
			continue
		}
		name := regs.RCCName(a.Off)
		if name == "" {
			name = fmt.Sprintf("+%#x", a.Off)
		}
		r.Trace = append(r.Trace, traceLine{Op: a.Op.String(), Reg: name, Val: fmt.Sprintf("0x%08x", a.Val)})
	}
	return r, err
}
