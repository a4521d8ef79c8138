// Package testsupport builds dataset fixtures on disk for tests.
package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile creates path with the given content, creating parent
// directories as needed.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteManifest writes a data.yaml under root with the given raw class
// names and returns its path.
func WriteManifest(t testing.TB, root string, names []string) string {
	t.Helper()
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = "'" + name + "'"
	}
	content := fmt.Sprintf(
		"train: ../train/images\nval: ../valid/images\ntest: ../test/images\n\nnc: %d\nnames: [%s]\n\nroboflow:\n  workspace: acme\n  version: 7\n",
		len(names), strings.Join(quoted, ", "))
	path := filepath.Join(root, "data.yaml")
	WriteFile(t, path, content)
	return path
}

// WritePair creates an image/label pair in the named split.
func WritePair(t testing.TB, root, split, stem, labelContent string) {
	t.Helper()
	WriteFile(t, filepath.Join(root, split, "images", stem+".jpg"), "jpeg")
	WriteFile(t, filepath.Join(root, split, "labels", stem+".txt"), labelContent)
}
