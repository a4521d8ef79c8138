package preflight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// statfs is swappable in tests.
var statfs = realStatfs

// CheckWritable verifies the dataset root exists, is a directory, and is
// writable by the current user.
func CheckWritable(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("dataset root %s does not exist", root)
		}
		return fmt.Errorf("stat dataset root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("dataset root %s is not a directory", root)
	}
	if err := unix.Access(root, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return fmt.Errorf("dataset root %s: insufficient permissions: %w", root, err)
	}
	return nil
}

// CheckFreeSpace verifies the volume holding root has at least need bytes
// available.
func CheckFreeSpace(root string, need uint64) error {
	free, err := statfs(root)
	if err != nil {
		return fmt.Errorf("statfs %s: %w", root, err)
	}
	if free < need {
		return fmt.Errorf("insufficient free space on %s: need %d bytes for backup, have %d", root, need, free)
	}
	return nil
}

// LabelTreeSize sums the on-disk size of the manifest and every split's
// label tree — the data a backup snapshot will copy. Absent directories
// contribute nothing.
func LabelTreeSize(root, manifestName string, splits []string, labelsDirName string) (uint64, error) {
	var total uint64
	if info, err := os.Stat(filepath.Join(root, manifestName)); err == nil {
		total += uint64(info.Size())
	}
	for _, split := range splits {
		dir := filepath.Join(root, split, labelsDirName)
		if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
			continue
		}
		err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			info, err := entry.Info()
			if err != nil {
				return err
			}
			total += uint64(info.Size())
			return nil
		})
		if err != nil {
			return 0, fmt.Errorf("measure labels for split %s: %w", split, err)
		}
	}
	return total, nil
}

func realStatfs(path string) (uint64, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, err
	}
	return stat.Bavail * uint64(stat.Bsize), nil
}
