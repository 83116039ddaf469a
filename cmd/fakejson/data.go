package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDataCmd(g *globalOptions) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "data DESCRIPTOR",
		Short: "Print values for a single data type descriptor",
		Example: `  fakejson data FirstName -n 3
  fakejson data '1..100*' -n 10
  fakejson data 'Team' -u 'Team:red|blue'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 {
				return fmt.Errorf("--count must not be negative, got %d", count)
			}
			s, err := g.newSession(0)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				v, ok, err := s.Generate(args[0])
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(out, "null")
					continue
				}
				fmt.Fprintln(out, v.String())
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of values")
	return cmd
}
