package pipeline

import (
	"affixsplit/internal/affix"
	"affixsplit/internal/compound"
	"affixsplit/internal/stemdiff"
	"affixsplit/internal/stemmer"
)

// Analysis is the per-word breakdown behind the extraction stages.
type Analysis struct {
	Word         string             `json:"word"`
	Stem         string             `json:"snowball_stem"`
	CistemStem   string             `json:"cistem_stem"`
	Segments     stemmer.Segments   `json:"segments"`
	Position     string             `json:"position"`
	Affix        string             `json:"affix,omitempty"`
	Diff         stemdiff.Candidate `json:"-"`
	DiffValue    string             `json:"diff"`
	InVocabulary bool               `json:"in_vocabulary"`
	Parts        []string           `json:"parts,omitempty"`
	PartAffix    map[string]string  `json:"part_affixes,omitempty"`
	Error        string             `json:"decompose_error,omitempty"`
}

// Analyze runs the stemmers, diff and (when dict is non-nil) the compound
// decomposer over a single word.
func (p *Pipeline) Analyze(word string, dict *compound.Dictionary) Analysis {
	a := Analysis{
		Word:       word,
		Stem:       p.snowball.Stem(word),
		CistemStem: p.cistem.Stem(word),
		Segments:   p.cistem.Segment(word),
	}
	pos, af := affix.Classify(a.Segments)
	a.Position, a.Affix = pos.String(), af

	a.Diff = stemdiff.Diff(word, a.Stem)
	if a.Diff.Outcome == stemdiff.StemGrew {
		a.DiffValue = a.Diff.Outcome.String()
	} else {
		a.DiffValue = a.Diff.Suffix
	}

	if dict == nil {
		return a
	}
	a.InVocabulary = dict.Contains(word)
	parts, err := dict.Dissect(word)
	if err != nil {
		a.Error = err.Error()
		return a
	}
	a.Parts = parts
	for _, part := range parts {
		if pos, af := affix.Classify(p.cistem.Segment(part)); pos != affix.None {
			if a.PartAffix == nil {
				a.PartAffix = make(map[string]string)
			}
			a.PartAffix[part] = pos.String() + ":" + af
		}
	}
	return a
}
