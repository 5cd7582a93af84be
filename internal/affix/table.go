package affix

import (
	"cmp"
	"slices"
)

// Table maps an affix to its Zipf score.
type Table map[string]float64

// Entry is one row of a Table.
type Entry struct {
	Affix string  `json:"affix"`
	Score float64 `json:"score"`
}

// Sorted returns the entries by descending score, then by affix.
func (t Table) Sorted() []Entry {
	entries := make([]Entry, 0, len(t))
	for affix, score := range t {
		entries = append(entries, Entry{Affix: affix, Score: score})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Affix, b.Affix)
	})
	return entries
}

// Keys returns the affixes in lexical order.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// FromEntries builds a Table from entries. Later duplicates win.
func FromEntries(entries []Entry) Table {
	t := make(Table, len(entries))
	for _, e := range entries {
		t[e.Affix] = e.Score
	}
	return t
}
