package affix

import (
	"slices"

	"affixsplit/internal/frequency"
	"affixsplit/internal/stemdiff"
	"affixsplit/internal/stemmer"
	"affixsplit/internal/textutil"
)

// Position says where an affix attaches to its stem.
type Position int

const (
	None Position = iota
	Suffix
	Prefix
)

func (p Position) String() string {
	switch p {
	case Suffix:
		return "suffix"
	case Prefix:
		return "prefix"
	default:
		return "none"
	}
}

// Classify applies the segment length rule to a stemmer split: a second
// segment shorter than the first is a suffix, a first segment shorter than
// the second is a prefix. Unsplit words and equal lengths yield None.
func Classify(segs stemmer.Segments) (Position, string) {
	if len(segs) < 2 {
		return None, ""
	}
	first, second := textutil.RuneLen(segs[0]), textutil.RuneLen(segs[1])
	switch {
	case second < first:
		return Suffix, segs[1]
	case first < second:
		return Prefix, segs[0]
	default:
		return None, ""
	}
}

// Collector accumulates distinct suffix and prefix candidates.
type Collector struct {
	suffixes map[string]struct{}
	prefixes map[string]struct{}
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{
		suffixes: make(map[string]struct{}),
		prefixes: make(map[string]struct{}),
	}
}

// AddSegments classifies each split and records the affix it exposes.
func (c *Collector) AddSegments(all []stemmer.Segments) {
	for _, segs := range all {
		switch pos, affix := Classify(segs); pos {
		case Suffix:
			c.suffixes[affix] = struct{}{}
		case Prefix:
			c.prefixes[affix] = struct{}{}
		}
	}
}

// AddDiff records the accepted diff candidates as suffixes.
func (c *Collector) AddDiff(cands []stemdiff.Candidate) {
	for _, cand := range cands {
		if cand.Accepted() {
			c.suffixes[cand.Suffix] = struct{}{}
		}
	}
}

// AddSuffixes records a list of known suffixes.
func (c *Collector) AddSuffixes(list []string) {
	for _, s := range list {
		if s = textutil.Fold(s); s != "" {
			c.suffixes[s] = struct{}{}
		}
	}
}

// Suffixes returns the collected suffixes in lexical order.
func (c *Collector) Suffixes() []string {
	return sortedKeys(c.suffixes)
}

// Prefixes returns the collected prefixes in lexical order.
func (c *Collector) Prefixes() []string {
	return sortedKeys(c.prefixes)
}

// Rank scores every collected affix and drops those scoring zero.
func (c *Collector) Rank(scorer frequency.Scorer) (suffixes, prefixes Table) {
	return rank(c.suffixes, scorer), rank(c.prefixes, scorer)
}

func rank(set map[string]struct{}, scorer frequency.Scorer) Table {
	table := make(Table, len(set))
	for affix := range set {
		if score := scorer.Zipf(affix); score > 0 {
			table[affix] = score
		}
	}
	return table
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
