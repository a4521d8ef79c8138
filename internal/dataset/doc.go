// Package dataset walks a YOLO-layout dataset split, checks image/label
// pairing integrity, and rewrites label files against a class index remap.
//
// All per-file failures are recoverable: they are recorded as typed Issue
// values and processing continues with the next file. Nothing in this
// package aborts a run.
package dataset
