package stemmer

import (
	"strings"

	"affixsplit/internal/textutil"
)

// Segments is the non-empty output of a segmenting stemmer: the stem first,
// then the removed ending when there was one.
type Segments []string

// Stem returns the first segment, or "" when there is none.
func (s Segments) Stem() string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

// Rest returns the second segment, or "" when the word was not split.
func (s Segments) Rest() string {
	if len(s) < 2 {
		return ""
	}
	return s[1]
}

// Cistem implements the CISTEM stemmer for German (Weissweiler and Fraser,
// 2017). Words with an upper-case initial keep a final "t" unless the stemmer
// is case-insensitive.
type Cistem struct {
	caseInsensitive bool
}

// NewCistem returns a CISTEM stemmer.
func NewCistem(caseInsensitive bool) *Cistem {
	return &Cistem{caseInsensitive: caseInsensitive}
}

var umlautReplacer = strings.NewReplacer("ü", "u", "ö", "o", "ä", "a", "ß", "ss")

// Stem returns the CISTEM stem of word with umlauts flattened and a leading
// "ge" removed from long words.
func (c *Cistem) Stem(word string) string {
	if word == "" {
		return ""
	}
	upper := textutil.HasUpperInitial(word)
	word = umlautReplacer.Replace(textutil.Fold(word))
	if r := []rune(word); len(r) >= 6 && r[0] == 'g' && r[1] == 'e' {
		word = string(r[2:])
	}
	stem, _ := c.split(word, upper)
	return stem
}

// Segment splits word into its stem and the stripped ending. Umlauts and a
// leading "ge" are preserved so the segments are substrings of the
// lower-cased word. Empty segments are dropped.
func (c *Cistem) Segment(word string) Segments {
	if word == "" {
		return nil
	}
	upper := textutil.HasUpperInitial(word)
	stem, rest := c.split(textutil.Fold(word), upper)
	segs := make(Segments, 0, 2)
	for _, s := range []string{stem, rest} {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// SegmentAll segments every word, keeping order and length.
func (c *Cistem) SegmentAll(words []string) []Segments {
	out := make([]Segments, len(words))
	for i, w := range words {
		out[i] = c.Segment(w)
	}
	return out
}

func (c *Cistem) split(word string, upper bool) (string, string) {
	original := []rune(word)
	w := substitute(original)
	stripped := 0

	for len(w) > 3 {
		if len(w) > 5 {
			if hasSuffix(w, 'e', 'm') || hasSuffix(w, 'e', 'r') || hasSuffix(w, 'n', 'd') {
				w = w[:len(w)-2]
				stripped += 2
				continue
			}
		}
		if !upper || c.caseInsensitive {
			if hasSuffix(w, 't') {
				w = w[:len(w)-1]
				stripped++
				continue
			}
		}
		if hasSuffix(w, 'e') || hasSuffix(w, 's') || hasSuffix(w, 'n') {
			w = w[:len(w)-1]
			stripped++
			continue
		}
		break
	}

	stem := restore(w)
	if stripped == 0 {
		return stem, ""
	}
	if stripped > len(original) {
		stripped = len(original)
	}
	return stem, string(original[len(original)-stripped:])
}

func hasSuffix(w []rune, tail ...rune) bool {
	if len(w) < len(tail) {
		return false
	}
	off := len(w) - len(tail)
	for i, r := range tail {
		if w[off+i] != r {
			return false
		}
	}
	return true
}

var restoreReplacer = strings.NewReplacer("%", "ei", "&", "ie", "$", "sch")

// substitute collapses multi-letter graphemes to single placeholders and marks
// doubled letters as "x*" so they are never stripped as endings.
func substitute(word []rune) []rune {
	s := strings.ReplaceAll(string(word), "sch", "$")
	s = strings.ReplaceAll(s, "ei", "%")
	s = strings.ReplaceAll(s, "ie", "&")
	in := []rune(s)
	out := make([]rune, 0, len(in))
	for i := 0; i < len(in); i++ {
		if i+1 < len(in) && in[i] == in[i+1] && in[i] != '\n' {
			out = append(out, in[i], '*')
			i++
			continue
		}
		out = append(out, in[i])
	}
	return out
}

func restore(word []rune) string {
	out := make([]rune, 0, len(word)+2)
	for i := 0; i < len(word); i++ {
		if i+1 < len(word) && word[i+1] == '*' && word[i] != '\n' {
			out = append(out, word[i], word[i])
			i++
			continue
		}
		out = append(out, word[i])
	}
	return restoreReplacer.Replace(string(out))
}
