package backup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// MarkerName is the completion marker written after all copies finish.
const MarkerName = ".complete"

// Spec names everything a snapshot covers.
type Spec struct {
	Root          string
	DirName       string
	ManifestName  string
	Splits        []string
	LabelsDirName string
}

// Snapshot copies the taxonomy manifest and each split's label tree into
// <root>/<dirname>. Images are never backed up. A directory carrying the
// completion marker is an existing snapshot; Snapshot returns its path
// without copying (created=false). A directory without the marker is a
// stale partial snapshot and is re-synced in place.
func Snapshot(spec Spec, runID string) (path string, created bool, err error) {
	if spec.Root == "" || spec.DirName == "" {
		return "", false, errors.New("backup: root and dirname are required")
	}
	dir := filepath.Join(spec.Root, spec.DirName)
	marker := filepath.Join(dir, MarkerName)

	if _, err := os.Stat(marker); err == nil {
		return dir, false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", false, fmt.Errorf("backup: stat marker: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", false, fmt.Errorf("backup: create %s: %w", dir, err)
	}

	manifestSrc := filepath.Join(spec.Root, spec.ManifestName)
	if err := copyFile(manifestSrc, filepath.Join(dir, spec.ManifestName+".bak")); err != nil {
		return "", false, fmt.Errorf("backup: manifest: %w", err)
	}

	for _, split := range spec.Splits {
		src := filepath.Join(spec.Root, split, spec.LabelsDirName)
		if _, err := os.Stat(src); errors.Is(err, os.ErrNotExist) {
			continue
		}
		dest := filepath.Join(dir, split, spec.LabelsDirName)
		if err := copyDir(src, dest); err != nil {
			return "", false, fmt.Errorf("backup: labels for split %s: %w", split, err)
		}
	}

	stamp := fmt.Sprintf("run_id=%s\ncompleted=%s\n", runID, time.Now().UTC().Format(time.RFC3339))
	if err := os.WriteFile(marker, []byte(stamp), 0o644); err != nil {
		return "", false, fmt.Errorf("backup: write marker: %w", err)
	}
	return dir, true, nil
}

func copyDir(src, dst string) error {
	if src == "" || dst == "" {
		return errors.New("copyDir: empty path")
	}
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return err
	}
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if info.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if info.Mode().Type() != 0 {
			// Skip special files.
			return nil
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
