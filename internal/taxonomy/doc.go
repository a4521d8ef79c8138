// Package taxonomy normalizes class names and re-indexes a dataset's class
// taxonomy.
//
// Canonicalization is purely syntactic: case folding, separator unification,
// whitespace collapsing, and resolution against a configured alias table.
// Distinct concepts are never merged. BuildRemap deduplicates the resulting
// canonical names in first-occurrence order and produces a total mapping
// from every old class index to its new index.
package taxonomy
