// Package report accumulates per-split normalization results into a single
// immutable-after-assembly aggregate for rendering.
package report
