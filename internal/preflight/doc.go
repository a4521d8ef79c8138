// Package preflight provides readiness checks run before an apply-mode
// normalization touches the dataset.
//
// Apply mode copies every label tree into the backup directory before the
// first destructive write, so the checks verify the dataset root is
// writable and the volume has room for the snapshot. Dry runs skip all of
// this.
package preflight
