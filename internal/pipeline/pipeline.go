package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"affixsplit/internal/affix"
	"affixsplit/internal/compound"
	"affixsplit/internal/config"
	"affixsplit/internal/logging"
	"affixsplit/internal/progress"
	"affixsplit/internal/stemdiff"
	"affixsplit/internal/stemmer"
)

// Stage names used in logs.
const (
	StageStem       = "stem"
	StageSegment    = "segment"
	StageDiff       = "diff"
	StageDecompose  = "decompose"
	StageVocabulary = "vocabulary"
	StageRank       = "rank"
)

// Option customises a Pipeline.
type Option func(*Pipeline)

// WithProgress sets the progress bar factory used during decomposition.
func WithProgress(factory progress.Factory) Option {
	return func(p *Pipeline) {
		if factory != nil {
			p.progress = factory
		}
	}
}

// Pipeline runs the affix extraction stages.
type Pipeline struct {
	cfg      *config.Config
	logger   *slog.Logger
	snowball *stemmer.Snowball
	cistem   *stemmer.Cistem
	progress progress.Factory
}

// New returns a Pipeline configured by cfg.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "pipeline"),
		snowball: stemmer.NewSnowball(cfg.Stemming.IgnoreStopwords),
		cistem:   stemmer.NewCistem(cfg.Stemming.CistemCaseInsensitive),
		progress: progress.Nop,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Stats summarises a run.
type Stats struct {
	Words               int           `json:"words"`
	Vocabulary          int           `json:"vocabulary"`
	DictionaryWords     int           `json:"dictionary_words"`
	DictionaryParts     int           `json:"dictionary_parts"`
	DiffAccepted        int           `json:"diff_accepted"`
	StemGrew            int           `json:"stem_grew"`
	Decomposed          int           `json:"decomposed"`
	DecomposeFailed     int           `json:"decompose_failed"`
	VocabularyCompounds int           `json:"vocabulary_compounds"`
	VocabularyParts     int           `json:"vocabulary_parts"`
	VocabularyFailed    int           `json:"vocabulary_failed"`
	SuffixCandidates    int           `json:"suffix_candidates"`
	PrefixCandidates    int           `json:"prefix_candidates"`
	Suffixes            int           `json:"suffixes"`
	Prefixes            int           `json:"prefixes"`
	Elapsed             time.Duration `json:"elapsed"`
}

// Result is the ranked output of a run.
type Result struct {
	Suffixes affix.Table
	Prefixes affix.Table
	Stats    Stats
}

// Dictionary builds the compound dictionary for vocabulary.
func (p *Pipeline) Dictionary(vocabulary []string) *compound.Dictionary {
	return compound.NewDictionary(vocabulary,
		compound.WithMinPartLength(p.cfg.Compound.MinPartLength),
		compound.WithLinking(p.cfg.Compound.AllowLinking),
	)
}

// Run executes every stage over in and ranks the collected affixes.
func (p *Pipeline) Run(ctx context.Context, in *Inputs) (*Result, error) {
	if in == nil || in.Scorer == nil {
		return nil, errors.New("pipeline inputs incomplete")
	}
	start := time.Now()
	collector := affix.NewCollector()
	stats := Stats{Words: len(in.Words), Vocabulary: len(in.Vocabulary)}

	var stems []string
	if err := runStage(ctx, p.logger, StageStem, func() int {
		stems = p.snowball.StemAll(in.Words)
		return len(stems)
	}); err != nil {
		return nil, err
	}

	if err := runStage(ctx, p.logger, StageSegment, func() int {
		collector.AddSegments(p.cistem.SegmentAll(in.Words))
		return len(in.Words)
	}); err != nil {
		return nil, err
	}

	var diffErr error
	if err := runStage(ctx, p.logger, StageDiff, func() int {
		cands, err := stemdiff.Extract(in.Words, stems)
		if err != nil {
			diffErr = err
			return 0
		}
		for _, c := range cands {
			switch {
			case c.Accepted():
				stats.DiffAccepted++
			case c.Outcome == stemdiff.StemGrew:
				stats.StemGrew++
			}
		}
		collector.AddDiff(cands)
		return stats.DiffAccepted
	}); err != nil {
		return nil, err
	}
	if diffErr != nil {
		return nil, fmt.Errorf("diff stems: %w", diffErr)
	}

	dict := p.Dictionary(in.Vocabulary)
	stats.DictionaryWords, stats.DictionaryParts = dict.Len(), dict.PartCount()
	p.logger.Debug("dictionary built",
		logging.Int("words", stats.DictionaryWords),
		logging.Int("parts", stats.DictionaryParts),
	)
	decomposer := compound.NewDecomposer(dict,
		compound.WithLogger(p.logger),
		compound.WithProgress(p.progress),
	)

	if err := runStage(ctx, p.logger, StageDecompose, func() int {
		results := decomposer.DissectAll(ctx, in.Words, "decompose words")
		stats.DecomposeFailed = compound.Failures(results)
		stats.Decomposed = len(results) - stats.DecomposeFailed
		parts := compound.Flatten(results)
		collector.AddSegments(p.cistem.SegmentAll(parts))
		return len(parts)
	}); err != nil {
		return nil, err
	}

	if err := runStage(ctx, p.logger, StageVocabulary, func() int {
		if p.cfg.Compound.DecomposeVocabulary {
			results := decomposer.DissectAll(ctx, in.Vocabulary, "decompose vocabulary")
			stats.VocabularyFailed = compound.Failures(results)
			for _, r := range results {
				if len(r.Parts) > 1 {
					stats.VocabularyCompounds++
				}
			}
			parts := compound.Flatten(results)
			stats.VocabularyParts = len(parts)
			collector.AddSegments(p.cistem.SegmentAll(parts))
		}
		collector.AddSegments(p.cistem.SegmentAll(in.Vocabulary))
		return len(in.Vocabulary)
	}); err != nil {
		return nil, err
	}

	res := &Result{}
	if err := runStage(ctx, p.logger, StageRank, func() int {
		collector.AddSuffixes(affix.ManualSuffixes())
		stats.SuffixCandidates = len(collector.Suffixes())
		stats.PrefixCandidates = len(collector.Prefixes())
		res.Suffixes, res.Prefixes = collector.Rank(in.Scorer)
		stats.Suffixes = len(res.Suffixes)
		stats.Prefixes = len(res.Prefixes)
		return stats.Suffixes
	}); err != nil {
		return nil, err
	}

	stats.Elapsed = time.Since(start)
	res.Stats = stats
	p.logger.Info("extraction finished",
		logging.Int("suffixes", stats.Suffixes),
		logging.Int("prefixes", stats.Prefixes),
		logging.Int("stem_grew", stats.StemGrew),
		logging.Int("decompose_failed", stats.DecomposeFailed),
		logging.Duration("elapsed", stats.Elapsed.Round(time.Millisecond)),
	)
	return res, nil
}
