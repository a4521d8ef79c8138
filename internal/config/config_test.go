package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"labelnorm/internal/config"
)

func TestLoadDefaultsWhenFileAbsent(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Dataset.ManifestName != "data.yaml" {
		t.Fatalf("unexpected manifest name: %q", cfg.Dataset.ManifestName)
	}
	if len(cfg.Dataset.Splits) != 3 || cfg.Dataset.Splits[1] != "valid" {
		t.Fatalf("unexpected splits: %v", cfg.Dataset.Splits)
	}
	if cfg.Dataset.ImageExtension != ".jpg" || cfg.Dataset.LabelExtension != ".txt" {
		t.Fatalf("unexpected extensions: %q %q", cfg.Dataset.ImageExtension, cfg.Dataset.LabelExtension)
	}
	if cfg.Dataset.BackupDirName != "_backup_before_normalize" {
		t.Fatalf("unexpected backup dirname: %q", cfg.Dataset.BackupDirName)
	}
	if cfg.Reporting.MaxIssues != 200 {
		t.Fatalf("unexpected issue cap: %d", cfg.Reporting.MaxIssues)
	}
	if len(cfg.Aliases["damaged_roof"]) == 0 {
		t.Fatal("expected default alias table populated")
	}
}

func TestLoadParsesFileAndNormalizesExtensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[dataset]
splits = ["train", "test"]
image_extension = "PNG"

[logging]
level = "debug"

[aliases]
mold = ["mould", "MOLD"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be found")
	}
	if cfg.Dataset.ImageExtension != ".png" {
		t.Fatalf("extension not normalized: %q", cfg.Dataset.ImageExtension)
	}
	if len(cfg.Dataset.Splits) != 2 {
		t.Fatalf("unexpected splits: %v", cfg.Dataset.Splits)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected level: %q", cfg.Logging.Level)
	}
	if len(cfg.Aliases["mold"]) != 2 {
		t.Fatalf("unexpected aliases: %v", cfg.Aliases)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"duplicate splits", "[dataset]\nsplits = [\"train\", \"train\"]\n"},
		{"split with separator", "[dataset]\nsplits = [\"tr/ain\"]\n"},
		{"bad log format", "[logging]\nformat = \"xml\"\n"},
		{"bad log level", "[logging]\nlevel = \"loud\"\n"},
		{"negative cap", "[reporting]\nmax_issues = -1\n"},
		{"manifest with path", "[dataset]\nmanifest_name = \"sub/data.yaml\"\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[dataset]") {
		t.Fatal("sample missing dataset section")
	}
	// The sample must itself load cleanly.
	if _, _, _, err := config.Load(path); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/datasets")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if got != filepath.Join(home, "datasets") {
		t.Fatalf("unexpected expansion: %q", got)
	}
}
