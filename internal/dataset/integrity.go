package dataset

import (
	"path/filepath"
	"sort"
)

// ScanSplit compares the image stem set against the label stem set and
// reports orphans on both sides. Output order is deterministic: missing
// labels first, then missing images, each sorted by stem. File contents are
// never touched.
func ScanSplit(split Split, imageStems, labelStems map[string]struct{}, imageExt, labelExt string) []Issue {
	var issues []Issue
	for _, stem := range sortedDifference(imageStems, labelStems) {
		issues = append(issues, Issue{
			Kind:  IssueMissingLabel,
			Split: split.Name,
			Path:  filepath.Join(split.ImagesDir, "**", stem+imageExt),
		})
	}
	for _, stem := range sortedDifference(labelStems, imageStems) {
		issues = append(issues, Issue{
			Kind:  IssueMissingImage,
			Split: split.Name,
			Path:  filepath.Join(split.LabelsDir, "**", stem+labelExt),
		})
	}
	return issues
}

func sortedDifference(from, without map[string]struct{}) []string {
	var stems []string
	for stem := range from {
		if _, ok := without[stem]; !ok {
			stems = append(stems, stem)
		}
	}
	sort.Strings(stems)
	return stems
}
