// Package main hosts the affixsplit CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration once, builds the structured
// logger and hands off to internal/pipeline. `run` performs a full extraction,
// `show` prints a saved report or snapshot, `segment` explains how individual
// words are analysed, and `config` scaffolds and validates configuration.
//
// Keep this package lean: new behaviour belongs in the internal packages and
// is surfaced here through commands or flags.
package main
