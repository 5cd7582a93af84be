package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"affixsplit/internal/affix"
	"affixsplit/internal/report"
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printTable writes t as a rendered table on terminals and as plain
// "affix:score" lines otherwise, so output stays pipeable.
func printTable(cmd *cobra.Command, kind string, t affix.Table, limit int, forceTable bool) {
	out := cmd.OutOrStdout()
	if forceTable || isTerminal(out) {
		fmt.Fprintln(out, renderAffixTable(kind, t, limit))
		return
	}
	lines := report.Lines(t)
	if limit > 0 && len(lines) > limit {
		lines = lines[:limit]
	}
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
}
