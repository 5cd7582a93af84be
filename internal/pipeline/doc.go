// Package pipeline wires the extraction stages together.
//
// LoadInputs reads the configured word list, vocabulary and frequency corpus.
// Pipeline.Run then stems, diffs, decomposes and segments the words, merges
// every candidate with the curated suffix list and ranks the result.
// Pipeline.Publish writes the reports and the optional snapshot. Stages run
// one after another; the context is checked between stages.
package pipeline
