package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"affixsplit/internal/affix"
	"affixsplit/internal/report"
	"affixsplit/internal/snapshot"
)

type showOutput struct {
	Source  string        `json:"source"`
	Run     *snapshot.Run `json:"run,omitempty"`
	Entries []affix.Entry `json:"entries"`
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var (
		kind     string
		runID    string
		limit    int
		asJSON   bool
		asTable  bool
		listRuns bool
	)

	cmd := &cobra.Command{
		Use:   "show [report.txt|snapshot.db]",
		Short: "Print a saved affix report or snapshot",
		Long: "Print a previously written affix table. With no argument the configured snapshot is\n" +
			"used when it exists, otherwise the configured report for --kind.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			kind = strings.ToLower(strings.TrimSpace(kind))
			if kind != snapshot.KindSuffix && kind != snapshot.KindPrefix {
				return fmt.Errorf("--kind must be %q or %q", snapshot.KindSuffix, snapshot.KindPrefix)
			}

			source := ""
			if len(args) == 1 {
				source = args[0]
			} else if _, err := os.Stat(cfg.SnapshotPath()); err == nil {
				source = cfg.SnapshotPath()
			} else if kind == snapshot.KindPrefix {
				source = cfg.PrefixReportPath()
			} else {
				source = cfg.SuffixReportPath()
			}

			if !isSnapshotPath(source) {
				if listRuns || runID != "" {
					return errors.New("--runs and --run require a snapshot database")
				}
				table, err := report.Read(source)
				if err != nil {
					return err
				}
				return emitShow(cmd, showOutput{Source: source, Entries: table.Sorted()}, kind, limit, asJSON, asTable)
			}

			store, err := snapshot.Open(source)
			if err != nil {
				return err
			}
			defer store.Close()

			if listRuns {
				runs, err := store.Runs(cmd.Context())
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, runs)
				}
				rows := make([][]string, len(runs))
				for i, r := range runs {
					rows[i] = []string{r.ID, r.Kind, r.CreatedAt.Local().Format("2006-01-02 15:04:05"), fmt.Sprint(r.Entries), r.Source}
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Run", "Kind", "Created", "Entries", "Source"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
				))
				return nil
			}

			var (
				run   *snapshot.Run
				table affix.Table
			)
			if runID != "" {
				run, table, err = store.Get(cmd.Context(), runID)
			} else {
				run, table, err = store.Latest(cmd.Context(), kind)
			}
			if err != nil {
				return err
			}
			return emitShow(cmd, showOutput{Source: source, Run: run, Entries: table.Sorted()}, run.Kind, limit, asJSON, asTable)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", snapshot.KindSuffix, "Table kind to show (suffix or prefix)")
	cmd.Flags().StringVar(&runID, "run", "", "Snapshot run id (defaults to the latest run)")
	cmd.Flags().BoolVar(&listRuns, "runs", false, "List the runs stored in the snapshot")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show only the top N entries (0 shows all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	cmd.Flags().BoolVar(&asTable, "table", false, "Always render a table, even when stdout is not a terminal")
	return cmd
}

func emitShow(cmd *cobra.Command, out showOutput, kind string, limit int, asJSON, asTable bool) error {
	if limit > 0 && len(out.Entries) > limit {
		out.Entries = out.Entries[:limit]
	}
	if asJSON {
		return writeJSON(cmd, out)
	}
	label := "Suffix"
	if kind == snapshot.KindPrefix {
		label = "Prefix"
	}
	printTable(cmd, label, affix.FromEntries(out.Entries), 0, asTable)
	return nil
}

func isSnapshotPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}
