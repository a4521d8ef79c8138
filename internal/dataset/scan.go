package dataset

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Split describes one dataset partition on disk.
type Split struct {
	Name      string
	ImagesDir string
	LabelsDir string
}

// NewSplit resolves the image and label directories for a named split under
// the dataset root.
func NewSplit(root, name, imagesDirName, labelsDirName string) Split {
	return Split{
		Name:      name,
		ImagesDir: filepath.Join(root, name, imagesDirName),
		LabelsDir: filepath.Join(root, name, labelsDirName),
	}
}

// ImageStems collects the filename stems of all files under dir carrying the
// given extension. A missing directory yields an empty set.
func ImageStems(dir, ext string) (map[string]struct{}, error) {
	stems := make(map[string]struct{})
	err := walkFiles(dir, ext, func(path string) {
		stems[Stem(path)] = struct{}{}
	})
	return stems, err
}

// LabelFiles lists all label files under dir in sorted order. A missing
// directory yields an empty list.
func LabelFiles(dir, ext string) ([]string, error) {
	var files []string
	err := walkFiles(dir, ext, func(path string) {
		files = append(files, path)
	})
	sort.Strings(files)
	return files, err
}

// StemSet extracts the stems of a file list.
func StemSet(paths []string) map[string]struct{} {
	stems := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		stems[Stem(path)] = struct{}{}
	}
	return stems
}

// Stem returns the base filename without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func walkFiles(dir, ext string, visit func(path string)) error {
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ext {
			return nil
		}
		visit(path)
		return nil
	})
}
