package dataset

import (
	"os"
	"strconv"
	"strings"
)

// RewriteStats counts the outcome of one RewriteSplit pass.
type RewriteStats struct {
	Processed int
	Empty     int
	Rewritten int
}

// RewriteSplit parses each label file and substitutes remapped class ids.
//
// Per file: blank content counts as empty and skips processing. Each
// non-blank line is split into whitespace tokens; token-less lines are
// dropped silently. A non-integer or out-of-domain first token records an
// issue and drops the line; geometry tokens are otherwise passed through
// unchanged in their original order. When apply is true, a file is
// overwritten only if at least one class id actually changed.
func RewriteSplit(splitName string, files []string, remap []int, apply bool) (RewriteStats, []Issue) {
	var stats RewriteStats
	var issues []Issue

	for _, path := range files {
		stats.Processed++
		data, err := os.ReadFile(path)
		if err != nil {
			issues = append(issues, Issue{Kind: IssueReadFailure, Split: splitName, Path: path, Err: err})
			continue
		}
		content := strings.TrimSpace(string(data))
		if content == "" {
			stats.Empty++
			continue
		}

		lines := strings.Split(content, "\n")
		newLines := make([]string, 0, len(lines))
		changed := false
		for _, line := range lines {
			tokens := strings.Fields(line)
			if len(tokens) == 0 {
				continue
			}
			oldID, err := strconv.Atoi(tokens[0])
			if err != nil {
				issues = append(issues, Issue{Kind: IssueUnparsableClassID, Split: splitName, Path: path, Token: tokens[0]})
				continue
			}
			if oldID < 0 || oldID >= len(remap) {
				issues = append(issues, Issue{Kind: IssueUnmappedClassID, Split: splitName, Path: path, ClassID: oldID})
				continue
			}
			if newID := remap[oldID]; newID != oldID {
				tokens[0] = strconv.Itoa(newID)
				changed = true
			}
			newLines = append(newLines, strings.Join(tokens, " "))
		}

		if apply && changed {
			output := strings.Join(newLines, "\n") + "\n"
			if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
				issues = append(issues, Issue{Kind: IssueWriteFailure, Split: splitName, Path: path, Err: err})
				continue
			}
			stats.Rewritten++
		}
	}

	return stats, issues
}
