// Package wordlist loads the inputs of an extraction run: the primary word
// list, the reference vocabulary used for compound decomposition, and the
// optional frequency corpus.
//
// Input files are read fully, their character encoding is detected (or taken
// from configuration) and decoded to UTF-8 before parsing. The primary list is
// either a plain one-word-per-line file or a SUBTLEX-DE export; in the latter
// case only spell-checked rows contribute words while every row contributes
// to the frequency counts.
package wordlist
