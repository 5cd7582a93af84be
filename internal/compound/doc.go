// Package compound splits German compound words into dictionary words.
//
// A Dictionary indexes the reference vocabulary in an Aho-Corasick automaton
// so every vocabulary word occurring inside a compound is found in one pass.
// Dissect then chooses the cover of the whole word with the fewest parts,
// preferring a longer first part on ties, and tolerates the linking elements
// ("Fugenelemente") s, e, n, en and es between parts.
//
// Decomposer runs Dissect over a batch on a best-effort basis: a word that
// cannot be split (or that makes the matcher panic) yields a failed Result
// and the batch carries on.
package compound
