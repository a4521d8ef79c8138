// Package backup snapshots the taxonomy manifest and label trees before the
// first destructive write of an apply run.
//
// A snapshot is considered complete only once its marker file exists.
// Directory existence alone is not trusted: an interrupted run can leave a
// partial copy behind, and a later run must re-sync it rather than skip.
package backup
