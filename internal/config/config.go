package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Dataset describes the on-disk layout of a YOLO dataset.
type Dataset struct {
	ManifestName   string   `toml:"manifest_name"`
	Splits         []string `toml:"splits"`
	ImagesDirName  string   `toml:"images_dir"`
	LabelsDirName  string   `toml:"labels_dir"`
	ImageExtension string   `toml:"image_extension"`
	LabelExtension string   `toml:"label_extension"`
	BackupDirName  string   `toml:"backup_dirname"`
}

// Reporting controls summary rendering.
type Reporting struct {
	MaxIssues int `toml:"max_issues"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for labelnorm.
//
// Sections:
//   - Dataset: manifest name, split names, directory names, extensions
//   - Reporting: issue display cap
//   - Logging: log format and level
//   - Aliases: canonical class name to accepted variant spellings
type Config struct {
	Dataset   Dataset             `toml:"dataset"`
	Reporting Reporting           `toml:"reporting"`
	Logging   Logging             `toml:"logging"`
	Aliases   map[string][]string `toml:"aliases"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/labelnorm/config.toml")
}

// Load locates, parses, and validates a configuration file. A missing file
// is not an error; defaults are used. The returned bool reports whether a
// file was found at the resolved path.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// CreateSample writes the embedded sample configuration to path.
func CreateSample(path string) error {
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// ExpandPath resolves a leading tilde against the current user's home
// directory and returns an absolute path.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}
	return abs, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	candidate := strings.TrimSpace(path)
	if candidate == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return "", false, err
		}
		candidate = defaultPath
	} else {
		expanded, err := ExpandPath(candidate)
		if err != nil {
			return "", false, err
		}
		candidate = expanded
	}

	if _, err := os.Stat(candidate); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return candidate, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	return candidate, true, nil
}

func (c *Config) normalize() {
	c.Dataset.ManifestName = strings.TrimSpace(c.Dataset.ManifestName)
	if c.Dataset.ManifestName == "" {
		c.Dataset.ManifestName = defaultManifestName
	}
	if len(c.Dataset.Splits) == 0 {
		c.Dataset.Splits = defaultSplits()
	}
	c.Dataset.ImagesDirName = strings.TrimSpace(c.Dataset.ImagesDirName)
	if c.Dataset.ImagesDirName == "" {
		c.Dataset.ImagesDirName = defaultImagesDirName
	}
	c.Dataset.LabelsDirName = strings.TrimSpace(c.Dataset.LabelsDirName)
	if c.Dataset.LabelsDirName == "" {
		c.Dataset.LabelsDirName = defaultLabelsDirName
	}
	c.Dataset.ImageExtension = normalizeExtension(c.Dataset.ImageExtension, defaultImageExtension)
	c.Dataset.LabelExtension = normalizeExtension(c.Dataset.LabelExtension, defaultLabelExtension)
	c.Dataset.BackupDirName = strings.TrimSpace(c.Dataset.BackupDirName)
	if c.Dataset.BackupDirName == "" {
		c.Dataset.BackupDirName = defaultBackupDirName
	}
	if c.Reporting.MaxIssues == 0 {
		c.Reporting.MaxIssues = defaultMaxIssues
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Aliases == nil {
		c.Aliases = DefaultAliases()
	}
}

func normalizeExtension(ext, fallback string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" {
		return fallback
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.ToLower(ext)
}
