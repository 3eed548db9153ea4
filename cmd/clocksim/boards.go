//go:build !tinygo

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"clockcode-go/boards"
)

func newBoardsCmd() *cobra.Command {
	var dump bool
	cmd := &cobra.Command{
		Use:   "boards",
		Short: "List the built-in board profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, n := range boards.Names() {
				if !dump {
					fmt.Fprintln(out, n)
					continue
				}
				p, _ := boards.Lookup(n)
				b, err := yaml.Marshal(p)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "---\n%s", b)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dump, "yaml", false, "print each profile as a YAML document")
	return cmd
}
