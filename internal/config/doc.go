// Package config loads, normalizes, and validates affixsplit configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, loads an optional .env file, and honours
// environment fallbacks such as AFFIXSPLIT_WORDLIST. The Config type
// centralizes every input path, stage switch, and output location the
// extraction pipeline needs, so downstream stages receive explicit values
// instead of reading shared state.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
