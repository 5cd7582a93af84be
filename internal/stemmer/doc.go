// Package stemmer adapts the two German stemmers used for affix discovery.
//
// Snowball wraps the Snowball German algorithm and returns a single stem per
// word. Cistem implements the CISTEM segmenting stemmer, which splits a word
// into a stem and the ending it removed. Both are deterministic and never fail.
package stemmer
