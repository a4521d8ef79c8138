// Package normalize sequences a full taxonomy-normalization run: manifest
// load, remap construction, backup, per-split integrity scan and label
// rewrite, and the final manifest update.
//
// Splits are processed strictly one at a time, files within a split one at
// a time. A fatal precondition (missing or invalid manifest) aborts before
// any split is touched; everything after that point is recoverable and
// recorded as issues in the report.
package normalize
