// Package textutil provides the German-aware text normalization shared by
// every pipeline stage.
//
// Words are compared in a single canonical form: Unicode NFC (so a decomposed
// "a" + combining diaeresis matches the precomposed "ä") followed by German
// lower-casing. Stemmers, the compound dictionary, and the frequency corpus all
// fold through Fold so that lookups agree regardless of input source.
package textutil
