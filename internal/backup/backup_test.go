package backup

import (
	"os"
	"path/filepath"
	"testing"
)

func seedDataset(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	write := func(rel, content string) {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	write("data.yaml", "names: ['a']\nnc: 1\n")
	write("train/labels/a.txt", "0 0.5 0.5 0.2 0.2\n")
	write("train/labels/nested/b.txt", "0 0.1 0.1 0.1 0.1\n")
	write("train/images/a.jpg", "jpeg")
	write("valid/labels/c.txt", "0 0.2 0.2 0.2 0.2\n")
	return root
}

func testSpec(root string) Spec {
	return Spec{
		Root:          root,
		DirName:       "_backup_before_normalize",
		ManifestName:  "data.yaml",
		Splits:        []string{"train", "valid", "test"},
		LabelsDirName: "labels",
	}
}

func TestSnapshotCopiesManifestAndLabelTrees(t *testing.T) {
	root := seedDataset(t)

	dir, created, err := Snapshot(testSpec(root), "run-1")
	if err != nil {
		t.Fatalf("Snapshot returned error: %v", err)
	}
	if !created {
		t.Fatal("expected snapshot to be created")
	}

	for _, rel := range []string{
		"data.yaml.bak",
		filepath.Join("train", "labels", "a.txt"),
		filepath.Join("train", "labels", "nested", "b.txt"),
		filepath.Join("valid", "labels", "c.txt"),
		MarkerName,
	} {
		if _, err := os.Stat(filepath.Join(dir, rel)); err != nil {
			t.Fatalf("expected %s in snapshot: %v", rel, err)
		}
	}
	// Images never go into the snapshot.
	if _, err := os.Stat(filepath.Join(dir, "train", "images")); !os.IsNotExist(err) {
		t.Fatal("images were copied into the snapshot")
	}
}

func TestSnapshotSecondRunIsNoOp(t *testing.T) {
	root := seedDataset(t)
	spec := testSpec(root)

	first, created, err := Snapshot(spec, "run-1")
	if err != nil || !created {
		t.Fatalf("first snapshot: created=%v err=%v", created, err)
	}

	// Mutate a label after the snapshot; a repeat run must not re-copy it.
	mutated := filepath.Join(root, "train", "labels", "a.txt")
	if err := os.WriteFile(mutated, []byte("1 0.5 0.5 0.2 0.2\n"), 0o644); err != nil {
		t.Fatalf("mutate label: %v", err)
	}

	second, created, err := Snapshot(spec, "run-2")
	if err != nil {
		t.Fatalf("second snapshot returned error: %v", err)
	}
	if created {
		t.Fatal("expected second snapshot to be a no-op")
	}
	if second != first {
		t.Fatalf("expected same snapshot path, got %q and %q", first, second)
	}
	data, err := os.ReadFile(filepath.Join(first, "train", "labels", "a.txt"))
	if err != nil {
		t.Fatalf("read backed-up label: %v", err)
	}
	if string(data) != "0 0.5 0.5 0.2 0.2\n" {
		t.Fatalf("no-op snapshot overwrote backup content: %q", data)
	}
}

func TestSnapshotResyncsPartialBackup(t *testing.T) {
	root := seedDataset(t)
	spec := testSpec(root)

	// Simulate a run interrupted after creating the directory but before
	// finishing: no completion marker.
	partial := filepath.Join(root, spec.DirName)
	if err := os.MkdirAll(partial, 0o755); err != nil {
		t.Fatalf("mkdir partial: %v", err)
	}

	dir, created, err := Snapshot(spec, "run-2")
	if err != nil {
		t.Fatalf("Snapshot returned error: %v", err)
	}
	if !created {
		t.Fatal("expected partial backup to be re-synced")
	}
	if _, err := os.Stat(filepath.Join(dir, "data.yaml.bak")); err != nil {
		t.Fatalf("expected manifest in re-synced snapshot: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, MarkerName)); err != nil {
		t.Fatalf("expected marker after re-sync: %v", err)
	}
}

func TestSnapshotMissingManifestFails(t *testing.T) {
	root := t.TempDir()
	if _, _, err := Snapshot(testSpec(root), "run-1"); err == nil {
		t.Fatal("expected error when manifest is absent")
	}
}

func TestSnapshotSkipsAbsentSplits(t *testing.T) {
	root := seedDataset(t)
	// The seeded dataset has no test/ split at all; Snapshot must not fail.
	if _, _, err := Snapshot(testSpec(root), "run-1"); err != nil {
		t.Fatalf("Snapshot returned error: %v", err)
	}
}
