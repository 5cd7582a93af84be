package testsupport

import (
	"fmt"
	"path/filepath"
	"sort"
	"testing"

	"affixsplit/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with a unique temp output directory per
// test. Progress bars and console printing are disabled.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Output.Dir = filepath.Join(base, "out")
	cfgVal.Output.Print = false
	cfgVal.Progress.Mode = "never"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithWordList writes words to a plain word list and points the config at it.
func WithWordList(words ...string) ConfigOption {
	return func(b *configBuilder) {
		path := filepath.Join(b.baseDir, "words.txt")
		WriteLines(b.t, path, words...)
		b.cfg.Input.WordList = path
	}
}

// WithVocabulary writes the reference vocabulary and points the config at it.
func WithVocabulary(words ...string) ConfigOption {
	return func(b *configBuilder) {
		path := filepath.Join(b.baseDir, "vocabulary.tsv")
		WriteLines(b.t, path, words...)
		b.cfg.Input.Vocabulary = path
	}
}

// WithFrequencies writes a "word<TAB>count" frequency list.
func WithFrequencies(counts map[string]int) ConfigOption {
	return func(b *configBuilder) {
		words := make([]string, 0, len(counts))
		for w := range counts {
			words = append(words, w)
		}
		sort.Strings(words)
		lines := []string{"word\tcount"}
		for _, w := range words {
			lines = append(lines, fmt.Sprintf("%s\t%d", w, counts[w]))
		}
		path := filepath.Join(b.baseDir, "frequencies.tsv")
		WriteLines(b.t, path, lines...)
		b.cfg.Input.FrequencyList = path
	}
}

// WithSnapshot enables the snapshot store.
func WithSnapshot() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Snapshot = true
	}
}

// WithPrefixes enables prefix report emission.
func WithPrefixes() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.EmitPrefixes = true
	}
}

// BaseDir returns the temp directory backing the config's inputs.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Output.Dir)
}
