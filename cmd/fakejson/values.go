package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValuesCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "values NAME",
		Short: "Print every value of an enumerable data type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.newSession(0)
			if err != nil {
				return err
			}
			values, err := s.Values(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), values)
			return nil
		},
	}
}
