// Package logging assembles the structured slog loggers used across
// labelnorm commands.
//
// It owns the console and JSON handlers, centralizes level parsing, and
// exposes typed attribute helpers so components emit log lines with a
// consistent shape. Prefer these constructors over hand-rolled slog setup.
package logging
