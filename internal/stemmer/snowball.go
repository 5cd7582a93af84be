package stemmer

import (
	"github.com/blevesearch/snowballstem"
	"github.com/blevesearch/snowballstem/german"

	"affixsplit/internal/textutil"
)

// Snowball applies the Snowball German stemming algorithm.
type Snowball struct {
	ignoreStopwords bool
}

// NewSnowball returns a Snowball stemmer. When ignoreStopwords is set, German
// stop-words are returned lower-cased instead of stemmed.
func NewSnowball(ignoreStopwords bool) *Snowball {
	return &Snowball{ignoreStopwords: ignoreStopwords}
}

// Stem returns the stem of word. The result is always lower case.
func (s *Snowball) Stem(word string) string {
	word = textutil.Fold(word)
	if word == "" {
		return ""
	}
	if s.ignoreStopwords && IsStopword(word) {
		return word
	}
	env := snowballstem.NewEnv(word)
	german.Stem(env)
	return env.Current()
}

// StemAll stems every word, keeping order and length.
func (s *Snowball) StemAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = s.Stem(w)
	}
	return out
}
