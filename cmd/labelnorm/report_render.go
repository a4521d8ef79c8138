package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"labelnorm/internal/report"
)

const (
	ansiReset  = "\x1b[0m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

func renderReport(w io.Writer, rep *report.Report, maxIssues int, colorize bool) {
	writeSectionHeader(w, "Remap Summary", colorize)
	fmt.Fprintf(w, "Classes: %d -> %d\n", len(rep.OldNames), len(rep.NewNames))

	changes := rep.Changes()
	if len(changes) == 0 {
		fmt.Fprintln(w, "No class index changes.")
	} else {
		rows := make([][]string, 0, len(changes))
		for _, change := range changes {
			rows = append(rows, []string{
				strconv.Itoa(change.OldIndex),
				strconv.Itoa(change.NewIndex),
				change.OldName,
				change.NewName,
			})
		}
		fmt.Fprintln(w, renderTable([]string{"Old Idx", "New Idx", "Old Name", "New Name"}, rows, 0, 1))
	}

	rows := make([][]string, 0, len(rep.Splits)+1)
	for _, split := range rep.Splits {
		rows = append(rows, countsRow(split.Name, split.Stats))
	}
	rows = append(rows, countsRow("total", rep.Totals()))
	fmt.Fprintln(w, renderTable(
		[]string{"Split", "Processed", "Empty", "Missing Images", "Missing Labels", "Rewritten"},
		rows, 1, 2, 3, 4, 5))

	shown, suppressed := rep.CappedIssues(maxIssues)
	if len(shown) > 0 {
		writeSectionHeader(w, fmt.Sprintf("Issues (%d)", len(rep.Issues)), colorize)
		for _, msg := range shown {
			line := " - " + msg
			if colorize {
				line = ansiYellow + line + ansiReset
			}
			fmt.Fprintln(w, line)
		}
		if suppressed > 0 {
			fmt.Fprintf(w, " ... and %d more\n", suppressed)
		}
	}

	fmt.Fprintln(w)
	if rep.Applied {
		fmt.Fprintln(w, "Apply complete. Manifest and label indices updated.")
		if rep.BackupPath != "" {
			verb := "reused"
			if rep.BackupCreated {
				verb = "created"
			}
			fmt.Fprintf(w, "Backup %s at: %s\n", verb, rep.BackupPath)
		}
	} else {
		fmt.Fprintln(w, "Dry run complete. No changes were written. Re-run with --apply to write changes and update the manifest.")
	}
}

func countsRow(name string, stats report.SplitStats) []string {
	return []string{
		name,
		strconv.Itoa(stats.Processed),
		strconv.Itoa(stats.Empty),
		strconv.Itoa(stats.MissingImages),
		strconv.Itoa(stats.MissingLabels),
		strconv.Itoa(stats.Rewritten),
	}
}

func writeSectionHeader(w io.Writer, title string, colorize bool) {
	line := fmt.Sprintf("=== %s ===", strings.TrimSpace(title))
	if colorize {
		line = ansiBlue + line + ansiReset
	}
	fmt.Fprintln(w, line)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
