package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDataset(); err != nil {
		return err
	}
	if err := c.validateReporting(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDataset() error {
	if strings.ContainsAny(c.Dataset.ManifestName, "/\\") {
		return errors.New("dataset.manifest_name must be a bare file name")
	}
	if len(c.Dataset.Splits) == 0 {
		return errors.New("dataset.splits must list at least one split")
	}
	seen := make(map[string]struct{}, len(c.Dataset.Splits))
	for _, split := range c.Dataset.Splits {
		name := strings.TrimSpace(split)
		if name == "" {
			return errors.New("dataset.splits must not contain empty names")
		}
		if strings.ContainsAny(name, "/\\") {
			return fmt.Errorf("dataset.splits entry %q must be a bare directory name", split)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("dataset.splits entry %q is duplicated", name)
		}
		seen[name] = struct{}{}
	}
	if !strings.HasPrefix(c.Dataset.ImageExtension, ".") {
		return fmt.Errorf("dataset.image_extension %q must start with a dot", c.Dataset.ImageExtension)
	}
	if !strings.HasPrefix(c.Dataset.LabelExtension, ".") {
		return fmt.Errorf("dataset.label_extension %q must start with a dot", c.Dataset.LabelExtension)
	}
	if strings.ContainsAny(c.Dataset.BackupDirName, "/\\") {
		return errors.New("dataset.backup_dirname must be a bare directory name")
	}
	return nil
}

func (c *Config) validateReporting() error {
	if c.Reporting.MaxIssues < 0 {
		return errors.New("reporting.max_issues must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q must be console or json", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q must be debug, info, warn, or error", c.Logging.Level)
	}
	return nil
}
