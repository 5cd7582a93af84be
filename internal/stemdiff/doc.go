// Package stemdiff recovers candidate suffixes by aligning each word with its
// rule-based stem.
//
// The alignment is a character-level SequenceMatcher diff. Characters present
// in the word but missing from the stem form the candidate suffix. When the
// stem contains characters the word lacks (Snowball rewrites umlauts and "ß",
// for instance) the candidate is reported as StemGrew and keeps the raw diff
// markers for inspection instead of guessing a merge.
package stemdiff
