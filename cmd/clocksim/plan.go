//go:build !tinygo

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"clockcode-go/rcc"
)

func newPlanCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Solve the divider plan and print the clock tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.checkFormat(); err != nil {
				return err
			}
			prof, err := opts.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			plan, err := prof.Apply(rcc.CFGR{}).Plan()
			if err != nil {
				return err
			}
			clocks, err := plan.Clocks()
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), opts.format, newPlanReport(prof.Name, plan, clocks))
		},
	}
}

func writeReport(w io.Writer, format string, r planReport) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if r.Board != "" {
		fmt.Fprintf(tw, "board\t%s\n", r.Board)
	}
	fmt.Fprintf(tw, "source\t%s %s\n", r.PLL.Source, r.PLL.Input)
	fmt.Fprintf(tw, "pll\tM=%d N=%d R=/%d Q=%s P=%s\n", r.PLL.M, r.PLL.N, r.PLL.R, divText(r.PLL.Q), divText(r.PLL.P))
	fmt.Fprintf(tw, "prescalers\tAHB=/%d APB1=/%d APB2=/%d switch AHB=/%d\n",
		r.Prescalers.AHB, r.Prescalers.APB1, r.Prescalers.APB2, r.Prescalers.SwitchAHB)
	c := r.Clocks
	rows := []struct {
		name string
		f    fmt.Stringer
	}{
		{"sysclk", c.SYSCLK},
		{"hclk", c.HCLK},
		{"pclk1", c.PCLK1},
		{"pclk2", c.PCLK2},
		{"timclk1", c.TIMCLK1},
		{"timclk2", c.TIMCLK2},
		{"pll.r", c.PLL.R},
		{"pll.q", c.PLL.Q},
		{"pll.p", c.PLL.P},
		{"clk48", c.CLK48},
		{"fdcan", c.FDCAN},
		{"mco", c.MCO},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", row.name, row.f)
	}
	for _, t := range r.Trace {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Op, t.Reg, t.Val)
	}
	return tw.Flush()
}

func divText(d uint32) string {
	if d == 0 {
		return "off"
	}
	return fmt.Sprintf("/%d", d)
}
