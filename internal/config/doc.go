// Package config loads, normalizes, and validates labelnorm configuration.
//
// It supplies repository defaults, expands tilde paths, reads TOML files,
// and carries the class-name alias table as explicit configuration rather
// than a hard-coded literal. Always obtain settings through this package so
// downstream code receives sanitized extensions, canonical log formats, and
// clear validation errors.
package config
