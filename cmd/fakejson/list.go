package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

func newListCmd(g *globalOptions) *cobra.Command {
	var columns bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every data type name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := g.newSession(0)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if columns || isTerminal(out) {
				printColumns(out, s.List(), terminalWidth())
				return nil
			}
			for _, name := range s.List() {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&columns, "columns", false, "lay names out in columns (default on a terminal)")
	return cmd
}

// printColumns fills rows left to right, padding names to the widest one.
func printColumns(w io.Writer, names []string, width int) {
	cell := 0
	for _, n := range names {
		cell = max(cell, runewidth.StringWidth(n))
	}
	cell += 2
	perRow := max(1, width/cell)

	var b strings.Builder
	for i, n := range names {
		last := i%perRow == perRow-1 || i == len(names)-1
		if last {
			b.WriteString(n)
			b.WriteByte('\n')
			continue
		}
		b.WriteString(runewidth.FillRight(n, cell))
	}
	io.WriteString(w, b.String())
}

func terminalWidth() int {
	if n, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && n > 0 {
		return n
	}
	return 80
}
