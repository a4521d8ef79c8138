package preflight

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckWritable(t *testing.T) {
	root := t.TempDir()
	if err := CheckWritable(root); err != nil {
		t.Fatalf("expected temp dir writable: %v", err)
	}
	if err := CheckWritable(filepath.Join(root, "absent")); err == nil {
		t.Fatal("expected error for missing root")
	}
	file := filepath.Join(root, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := CheckWritable(file); err == nil {
		t.Fatal("expected error for non-directory root")
	}
}

func TestCheckFreeSpace(t *testing.T) {
	orig := statfs
	t.Cleanup(func() { statfs = orig })

	statfs = func(string) (uint64, error) { return 1024, nil }
	if err := CheckFreeSpace("/data", 512); err != nil {
		t.Fatalf("expected enough space: %v", err)
	}
	if err := CheckFreeSpace("/data", 4096); err == nil {
		t.Fatal("expected insufficient-space error")
	}

	statfs = func(string) (uint64, error) { return 0, errors.New("boom") }
	if err := CheckFreeSpace("/data", 0); err == nil {
		t.Fatal("expected statfs error to propagate")
	}
}

func TestLabelTreeSize(t *testing.T) {
	root := t.TempDir()
	write := func(rel string, size int) {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	write("data.yaml", 100)
	write("train/labels/a.txt", 40)
	write("train/labels/nested/b.txt", 60)
	write("valid/labels/c.txt", 30)
	write("train/images/a.jpg", 9999) // images never counted

	total, err := LabelTreeSize(root, "data.yaml", []string{"train", "valid", "test"}, "labels")
	if err != nil {
		t.Fatalf("LabelTreeSize returned error: %v", err)
	}
	if total != 230 {
		t.Fatalf("unexpected total: %d", total)
	}
}
