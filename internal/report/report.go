package report

import (
	"labelnorm/internal/dataset"
)

// SplitStats are the counters collected for one split.
type SplitStats struct {
	Processed     int
	Empty         int
	MissingImages int
	MissingLabels int
	Rewritten     int
}

func (s SplitStats) add(other SplitStats) SplitStats {
	s.Processed += other.Processed
	s.Empty += other.Empty
	s.MissingImages += other.MissingImages
	s.MissingLabels += other.MissingLabels
	s.Rewritten += other.Rewritten
	return s
}

// SplitResult pairs a split name with its counters, preserving run order.
type SplitResult struct {
	Name  string
	Stats SplitStats
}

// Change is one class index whose name or position moved during the remap.
type Change struct {
	OldIndex int
	NewIndex int
	OldName  string
	NewName  string
}

// Report is the aggregate outcome of a full run.
type Report struct {
	OldNames []string
	NewNames []string
	Remap    []int

	Splits []SplitResult
	Issues []dataset.Issue

	Applied       bool
	BackupPath    string
	BackupCreated bool
}

// New seeds a report with the taxonomy outcome computed before any split
// processing.
func New(oldNames, newNames []string, remap []int) *Report {
	return &Report{OldNames: oldNames, NewNames: newNames, Remap: remap}
}

// AddSplit merges one split's counters and issues, keeping issue order
// stable across splits.
func (r *Report) AddSplit(name string, stats SplitStats, issues []dataset.Issue) {
	r.Splits = append(r.Splits, SplitResult{Name: name, Stats: stats})
	r.Issues = append(r.Issues, issues...)
}

// Totals sums the counters across all splits.
func (r *Report) Totals() SplitStats {
	var total SplitStats
	for _, split := range r.Splits {
		total = total.add(split.Stats)
	}
	return total
}

// Changes lists every old index whose new index differs, in ascending old
// index order.
func (r *Report) Changes() []Change {
	var changes []Change
	for oldIdx, newIdx := range r.Remap {
		if newIdx == oldIdx {
			continue
		}
		changes = append(changes, Change{
			OldIndex: oldIdx,
			NewIndex: newIdx,
			OldName:  r.OldNames[oldIdx],
			NewName:  r.NewNames[newIdx],
		})
	}
	return changes
}

// CappedIssues renders up to max issue messages verbatim and reports how
// many were suppressed. A max of zero or less means no cap.
func (r *Report) CappedIssues(max int) (shown []string, suppressed int) {
	limit := len(r.Issues)
	if max > 0 && limit > max {
		limit = max
	}
	shown = make([]string, 0, limit)
	for _, issue := range r.Issues[:limit] {
		shown = append(shown, issue.String())
	}
	return shown, len(r.Issues) - limit
}
