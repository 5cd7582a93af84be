package compound

import (
	"errors"
	"strings"

	ahocorasick "github.com/BobuSumisu/aho-corasick"

	"affixsplit/internal/textutil"
)

// DefaultMinPartLength is the shortest vocabulary word used as a compound part.
const DefaultMinPartLength = 3

// ErrNotDecomposable is returned when no sequence of dictionary words covers
// the whole input.
var ErrNotDecomposable = errors.New("word is not decomposable")

// linkers are the accepted linking elements, shortest first.
var linkers = []string{"e", "n", "s", "en", "es"}

// Option customises a Dictionary.
type Option func(*Dictionary)

// WithMinPartLength sets the minimum rune length of a compound part.
func WithMinPartLength(n int) Option {
	return func(d *Dictionary) {
		if n > 0 {
			d.minPart = n
		}
	}
}

// WithLinking toggles tolerance of linking elements between parts.
func WithLinking(enabled bool) Option {
	return func(d *Dictionary) {
		d.allowLinking = enabled
	}
}

// Dictionary is an immutable set of vocabulary words with a multi-pattern
// matcher over the words long enough to act as compound parts.
type Dictionary struct {
	words        map[string]struct{}
	trie         *ahocorasick.Trie
	parts        int
	minPart      int
	allowLinking bool
}

// NewDictionary folds and indexes words. Duplicates and blanks are ignored.
func NewDictionary(words []string, opts ...Option) *Dictionary {
	d := &Dictionary{
		words:        make(map[string]struct{}, len(words)),
		minPart:      DefaultMinPartLength,
		allowLinking: true,
	}
	for _, opt := range opts {
		opt(d)
	}

	patterns := make([]string, 0, len(words))
	for _, w := range words {
		w = textutil.Fold(w)
		if w == "" {
			continue
		}
		if _, seen := d.words[w]; seen {
			continue
		}
		d.words[w] = struct{}{}
		if textutil.RuneLen(w) >= d.minPart {
			patterns = append(patterns, w)
		}
	}
	d.parts = len(patterns)
	d.trie = ahocorasick.NewTrieBuilder().AddStrings(patterns).Build()
	return d
}

// Len returns the number of distinct words in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// PartCount returns the number of words eligible as compound parts.
func (d *Dictionary) PartCount() int {
	return d.parts
}

// Contains reports whether word, after folding, is a dictionary entry.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[textutil.Fold(word)]
	return ok
}

// Dissect splits word into at least two dictionary parts. An entry that has
// no such split yields itself as the single part. Parts are returned in their
// folded dictionary form without linking elements.
func (d *Dictionary) Dissect(word string) ([]string, error) {
	w := textutil.Fold(word)
	if w == "" {
		return nil, ErrNotDecomposable
	}

	// ends[i] lists the byte offsets where a part starting at i ends.
	ends := make(map[int][]int)
	for _, m := range d.trie.MatchString(w) {
		start := int(m.Pos())
		ends[start] = append(ends[start], start+len(m.MatchString()))
	}

	n := len(w)
	best := make([]cover, n+1)
	best[n] = cover{ok: true}
	for i := n - 1; i >= 0; i-- {
		for _, end := range ends[i] {
			if i == 0 && end == n {
				// the whole word is not a part of itself
				continue
			}
			for _, next := range d.continuations(w, end) {
				if !best[next].ok {
					continue
				}
				cand := cover{ok: true, parts: best[next].parts + 1, end: end, next: next}
				if cand.better(best[i]) {
					best[i] = cand
				}
			}
		}
	}
	if !best[0].ok {
		if _, ok := d.words[w]; ok {
			return []string{w}, nil
		}
		return nil, ErrNotDecomposable
	}

	parts := make([]string, 0, best[0].parts)
	for i := 0; i < n; i = best[i].next {
		parts = append(parts, w[i:best[i].end])
	}
	return parts, nil
}

// continuations returns the offsets where the next part may begin after a
// part ending at end: directly, or after a linking element that is itself
// followed by more text.
func (d *Dictionary) continuations(w string, end int) []int {
	next := []int{end}
	if !d.allowLinking || end == len(w) {
		return next
	}
	for _, l := range linkers {
		if strings.HasPrefix(w[end:], l) && end+len(l) < len(w) {
			next = append(next, end+len(l))
		}
	}
	return next
}

type cover struct {
	ok    bool
	parts int
	end   int
	next  int
}

// better orders covers by fewer parts, then longer first part, then shorter
// linking element.
func (c cover) better(than cover) bool {
	switch {
	case !than.ok:
		return true
	case c.parts != than.parts:
		return c.parts < than.parts
	case c.end != than.end:
		return c.end > than.end
	default:
		return c.next < than.next
	}
}
