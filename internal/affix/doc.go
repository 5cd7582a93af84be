// Package affix merges affix candidates from every discovery source and ranks
// them by corpus frequency.
//
// Candidates are kept in sets, so repeated insertions are absorbed. Ranking
// scores each distinct affix on its own through a frequency.Scorer and keeps
// only strictly positive scores.
package affix
