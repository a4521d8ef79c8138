package main

import (
	"bytes"
	"strings"
	"testing"

	"labelnorm/internal/dataset"
	"labelnorm/internal/report"
)

func sampleReport() *report.Report {
	rep := report.New(
		[]string{"Damaged Roof", "damaged-roof", "Window"},
		[]string{"damaged_roof", "window"},
		[]int{0, 0, 1},
	)
	rep.AddSplit("train", report.SplitStats{Processed: 3, Empty: 1, MissingLabels: 1}, []dataset.Issue{
		{Kind: dataset.IssueMissingLabel, Split: "train", Path: "train/images/**/foo.jpg"},
	})
	rep.AddSplit("valid", report.SplitStats{Processed: 2, Rewritten: 2}, nil)
	return rep
}

func TestRenderReportDryRun(t *testing.T) {
	var buf bytes.Buffer
	renderReport(&buf, sampleReport(), 200, false)
	out := buf.String()

	for _, want := range []string{
		"Classes: 3 -> 2",
		"damaged-roof",
		"damaged_roof",
		"Missing label for image: train/images/**/foo.jpg",
		"Dry run complete",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Apply complete") {
		t.Fatal("dry-run report claims apply")
	}
}

func TestRenderReportCapsIssues(t *testing.T) {
	rep := report.New(nil, nil, nil)
	var issues []dataset.Issue
	for i := 0; i < 7; i++ {
		issues = append(issues, dataset.Issue{Kind: dataset.IssueMissingImage, Path: "x"})
	}
	rep.AddSplit("train", report.SplitStats{}, issues)

	var buf bytes.Buffer
	renderReport(&buf, rep, 5, false)
	out := buf.String()

	if !strings.Contains(out, "... and 2 more") {
		t.Fatalf("expected suppression suffix:\n%s", out)
	}
	if got := strings.Count(out, "Missing image for label:"); got != 5 {
		t.Fatalf("expected 5 verbatim issues, got %d", got)
	}
}

func TestRenderReportApplyFooter(t *testing.T) {
	rep := sampleReport()
	rep.Applied = true
	rep.BackupPath = "/data/_backup_before_normalize"
	rep.BackupCreated = true

	var buf bytes.Buffer
	renderReport(&buf, rep, 200, false)
	out := buf.String()

	if !strings.Contains(out, "Apply complete") {
		t.Fatalf("missing apply footer:\n%s", out)
	}
	if !strings.Contains(out, "Backup created at: /data/_backup_before_normalize") {
		t.Fatalf("missing backup line:\n%s", out)
	}
}
