// Package frequency scores words on the Zipf scale against a corpus.
//
// The Zipf value of a word is log10 of its frequency per billion words,
// rounded to two decimals. Words absent from the corpus score 0, and so do
// words rare enough to fall below zero.
package frequency

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"affixsplit/internal/textutil"
	"affixsplit/internal/wordlist"
)

// Scorer looks up the Zipf frequency of a single word.
type Scorer interface {
	Zipf(word string) float64
}

// Table is an in-memory corpus of word counts.
type Table struct {
	counts map[string]float64
	total  float64
}

// NewTable builds a Table from raw counts. Keys are folded and merged;
// non-positive counts are ignored.
func NewTable[N int64 | float64](counts map[string]N) *Table {
	t := &Table{counts: make(map[string]float64, len(counts))}
	for word, n := range counts {
		if n <= 0 {
			continue
		}
		key := textutil.Fold(word)
		if key == "" {
			continue
		}
		t.counts[key] += float64(n)
		t.total += float64(n)
	}
	return t
}

// Len returns the number of distinct words in the corpus.
func (t *Table) Len() int {
	return len(t.counts)
}

// Total returns the summed count of all words.
func (t *Table) Total() float64 {
	return t.total
}

// Zipf returns the Zipf frequency of word, or 0 when it is unknown.
func (t *Table) Zipf(word string) float64 {
	if t == nil || t.total == 0 {
		return 0
	}
	n, ok := t.counts[textutil.Fold(word)]
	if !ok {
		return 0
	}
	return Zipf(n, t.total)
}

// Zipf converts a count within a corpus of total tokens to the Zipf scale.
func Zipf(count, total float64) float64 {
	if count <= 0 || total <= 0 {
		return 0
	}
	z := math.Log10(count/total) + 9
	z = math.Round(z*100) / 100
	if z <= 0 {
		return 0
	}
	return z
}

// Load reads a frequency list of "word<TAB>count" lines. A header on the
// first data line, after any comments or blank lines, is skipped when its
// count column is not numeric.
func Load(path, encodingLabel string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	text, _, err := wordlist.Decode(data, encodingLabel)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	counts, err := parseCounts(text)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return NewTable(counts), nil
}

func parseCounts(text string) (map[string]float64, error) {
	counts := make(map[string]float64)
	first := true
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		header := first
		first = false
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected word and count", i+1)
		}
		n, err := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err != nil {
			if header {
				continue
			}
			return nil, fmt.Errorf("line %d: invalid count %q", i+1, fields[len(fields)-1])
		}
		word := strings.Join(fields[:len(fields)-1], " ")
		counts[word] += n
	}
	return counts, nil
}
