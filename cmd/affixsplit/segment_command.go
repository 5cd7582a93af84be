package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"affixsplit/internal/compound"
	"affixsplit/internal/logging"
	"affixsplit/internal/pipeline"
	"affixsplit/internal/wordlist"
)

func newSegmentCommand(ctx *commandContext) *cobra.Command {
	var (
		vocabulary string
		noCompound bool
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "segment WORD...",
		Short: "Show how individual words are stemmed, segmented and decomposed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, closeLog, err := ctx.logger(cfg)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			defer func() { _ = closeLog() }()

			p := pipeline.New(cfg, logger)
			var dict *compound.Dictionary
			vocabPath := strings.TrimSpace(vocabulary)
			if vocabPath == "" {
				vocabPath = cfg.Input.Vocabulary
			}
			if vocabPath != "" && !noCompound {
				words, err := wordlist.LoadVocabulary(vocabPath, cfg.Input.Encoding)
				if err != nil {
					return fmt.Errorf("load vocabulary: %w", err)
				}
				dict = p.Dictionary(words)
				logger.Debug("dictionary built", logging.Path(vocabPath), logging.Count(dict.Len()))
			}

			analyses := make([]pipeline.Analysis, len(args))
			for i, word := range args {
				analyses[i] = p.Analyze(word, dict)
			}
			if asJSON {
				return writeJSON(cmd, analyses)
			}

			rows := make([][]string, len(analyses))
			for i, a := range analyses {
				parts := "-"
				switch {
				case dict == nil:
					parts = "(no vocabulary)"
				case len(a.Parts) > 0:
					parts = strings.Join(a.Parts, " + ")
				}
				rows[i] = []string{
					a.Word,
					a.Stem,
					a.CistemStem,
					strings.Join(a.Segments, " | "),
					describeAffix(a.Position, a.Affix),
					describeDiff(a),
					parts,
					describePartAffixes(a.PartAffix),
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Word", "Snowball", "CISTEM stem", "CISTEM", "Affix", "Diff", "Parts", "Part affixes"},
				rows,
				nil,
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&vocabulary, "vocabulary", "v", "", "Vocabulary for compound splitting (defaults to input.vocabulary)")
	cmd.Flags().BoolVar(&noCompound, "no-compound", false, "Skip compound decomposition")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}

func describeAffix(position, affix string) string {
	if affix == "" {
		return "-"
	}
	return position + " " + affix
}

func describeDiff(a pipeline.Analysis) string {
	if len(a.Diff.Markers) > 0 {
		return a.DiffValue + " [" + strings.Join(a.Diff.Markers, " ") + "]"
	}
	if a.DiffValue == "" {
		return "-"
	}
	return a.DiffValue
}

func describePartAffixes(m map[string]string) string {
	if len(m) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k + "=" + m[k]
	}
	return strings.Join(out, ", ")
}
