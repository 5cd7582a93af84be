package stemdiff

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"affixsplit/internal/textutil"
)

// ErrLengthMismatch is returned when words and stems are not index-aligned.
var ErrLengthMismatch = errors.New("words and stems differ in length")

// Outcome classifies a diff candidate.
type Outcome int

const (
	// Clean means the stem only removed characters from the word.
	Clean Outcome = iota
	// StemGrew means the stem contains characters absent from the word.
	StemGrew
)

func (o Outcome) String() string {
	switch o {
	case Clean:
		return "clean"
	case StemGrew:
		return "stem_grew"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Candidate is the diff result for one word.
type Candidate struct {
	Word    string
	Stem    string
	Outcome Outcome
	// Suffix holds the deleted characters in order. Empty unless Clean.
	Suffix string
	// Markers lists "-x" and "+y" diff entries. Set only for StemGrew.
	Markers []string
}

// Accepted reports whether the candidate is a usable non-empty suffix.
func (c Candidate) Accepted() bool {
	return c.Outcome == Clean && c.Suffix != ""
}

// Extract diffs each word against its stem. Words are lower-cased first.
func Extract(words, stems []string) ([]Candidate, error) {
	if len(words) != len(stems) {
		return nil, fmt.Errorf("%w: %d words, %d stems", ErrLengthMismatch, len(words), len(stems))
	}
	out := make([]Candidate, len(words))
	for i := range words {
		out[i] = Diff(words[i], stems[i])
	}
	return out, nil
}

// Diff aligns a single word with its stem.
func Diff(word, stem string) Candidate {
	word = textutil.Fold(word)
	a, b := runeStrings(word), runeStrings(stem)

	var (
		deleted strings.Builder
		markers []string
		grew    bool
	)
	for _, op := range difflib.NewMatcher(a, b).GetOpCodes() {
		switch op.Tag {
		case 'd':
			markers = appendMarkers(markers, '-', a[op.I1:op.I2])
		case 'i':
			grew = true
			markers = appendMarkers(markers, '+', b[op.J1:op.J2])
		case 'r':
			grew = true
			// Shorter block first, deletions first on ties.
			if op.J2-op.J1 < op.I2-op.I1 {
				markers = appendMarkers(markers, '+', b[op.J1:op.J2])
				markers = appendMarkers(markers, '-', a[op.I1:op.I2])
			} else {
				markers = appendMarkers(markers, '-', a[op.I1:op.I2])
				markers = appendMarkers(markers, '+', b[op.J1:op.J2])
			}
		default:
			continue
		}
		if op.Tag == 'd' || op.Tag == 'r' {
			for _, ch := range a[op.I1:op.I2] {
				deleted.WriteString(ch)
			}
		}
	}

	c := Candidate{Word: word, Stem: stem}
	if grew {
		c.Outcome = StemGrew
		c.Markers = markers
		return c
	}
	c.Outcome = Clean
	c.Suffix = deleted.String()
	return c
}

func appendMarkers(markers []string, sign byte, chars []string) []string {
	for _, ch := range chars {
		markers = append(markers, string(sign)+ch)
	}
	return markers
}

func runeStrings(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
