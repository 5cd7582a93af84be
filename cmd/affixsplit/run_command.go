package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"affixsplit/internal/affix"
	"affixsplit/internal/config"
	"affixsplit/internal/pipeline"
)

type runFlags struct {
	words      string
	vocabulary string
	frequency  string
	encoding   string
	outputDir  string
	snapshot   bool
	prefixes   bool
	noPrint    bool
	table      bool
	limit      int
	json       bool
}

type runOutput struct {
	Stats     pipeline.Stats      `json:"stats"`
	Published *pipeline.Published `json:"published"`
	Suffixes  []affix.Entry       `json:"suffixes"`
	Prefixes  []affix.Entry       `json:"prefixes,omitempty"`
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Extract affixes from the configured word list and write the reports",
		Long: `Extract affixes from the configured word list and write the reports.

Scores come from a frequency corpus. A SUBTLEX word list carries its own
counts; a plain word list also needs a word<TAB>count frequency list
(--frequency or input.frequency_list), otherwise the run fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := applyRunFlags(cmd, cfg, flags); err != nil {
				return err
			}

			logger, closeLog, err := ctx.logger(cfg)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			defer func() { _ = closeLog() }()

			in, err := pipeline.LoadInputs(cfg, logger)
			if err != nil {
				return err
			}
			p := pipeline.New(cfg, logger, pipeline.WithProgress(ctx.progressFactory(cfg)))
			res, err := p.Run(cmd.Context(), in)
			if err != nil {
				return err
			}
			pub, err := p.Publish(cmd.Context(), res, in.Source)
			if err != nil {
				return err
			}

			if flags.json {
				payload := runOutput{
					Stats:     res.Stats,
					Published: pub,
					Suffixes:  res.Suffixes.Sorted(),
				}
				if cfg.Output.EmitPrefixes {
					payload.Prefixes = res.Prefixes.Sorted()
				}
				return writeJSON(cmd, payload)
			}

			if cfg.Output.Print {
				printTable(cmd, "Suffix", res.Suffixes, flags.limit, flags.table)
				if cfg.Output.EmitPrefixes {
					printTable(cmd, "Prefix", res.Prefixes, flags.limit, flags.table)
				}
			}
			errOut := cmd.ErrOrStderr()
			fmt.Fprintf(errOut, "Wrote %d suffixes to %s\n", len(res.Suffixes), pub.SuffixReport)
			if pub.PrefixReport != "" {
				fmt.Fprintf(errOut, "Wrote %d prefixes to %s\n", len(res.Prefixes), pub.PrefixReport)
			}
			if pub.Snapshot != "" && len(pub.Runs) > 0 {
				fmt.Fprintf(errOut, "Saved snapshot run %s to %s\n", pub.Runs[0].ID, pub.Snapshot)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.words, "words", "w", "", "Word list (plain or SUBTLEX table)")
	cmd.Flags().StringVarP(&flags.vocabulary, "vocabulary", "v", "", "Reference vocabulary for compound splitting")
	cmd.Flags().StringVarP(&flags.frequency, "frequency", "f", "", "Word<TAB>count frequency list used for scoring (required for plain word lists)")
	cmd.Flags().StringVar(&flags.encoding, "encoding", "", "Input encoding (auto or a charset label)")
	cmd.Flags().StringVarP(&flags.outputDir, "output-dir", "o", "", "Directory for reports and snapshots")
	cmd.Flags().BoolVar(&flags.snapshot, "snapshot", false, "Save the ranked tables to the snapshot database")
	cmd.Flags().BoolVar(&flags.prefixes, "prefixes", false, "Also rank and write prefixes")
	cmd.Flags().BoolVar(&flags.noPrint, "quiet", false, "Do not print the ranked table")
	cmd.Flags().BoolVar(&flags.table, "table", false, "Always render a table, even when stdout is not a terminal")
	cmd.Flags().IntVarP(&flags.limit, "limit", "n", 0, "Print only the top N entries (0 prints all)")
	cmd.Flags().BoolVar(&flags.json, "json", false, "Print the result as JSON")
	return cmd
}

// applyRunFlags layers explicitly set flags over the loaded configuration.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config, flags runFlags) error {
	set := func(name string, dst *string, value string) {
		if cmd.Flags().Changed(name) {
			*dst = strings.TrimSpace(value)
		}
	}
	set("words", &cfg.Input.WordList, flags.words)
	set("vocabulary", &cfg.Input.Vocabulary, flags.vocabulary)
	set("frequency", &cfg.Input.FrequencyList, flags.frequency)
	set("encoding", &cfg.Input.Encoding, flags.encoding)
	set("output-dir", &cfg.Output.Dir, flags.outputDir)
	if cmd.Flags().Changed("snapshot") {
		cfg.Output.Snapshot = flags.snapshot
	}
	if cmd.Flags().Changed("prefixes") {
		cfg.Output.EmitPrefixes = flags.prefixes
	}
	if flags.noPrint {
		cfg.Output.Print = false
	}

	if err := cfg.Normalize(); err != nil {
		return err
	}
	return cfg.Validate()
}
