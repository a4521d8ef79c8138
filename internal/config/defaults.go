package config

const (
	defaultManifestName   = "data.yaml"
	defaultImagesDirName  = "images"
	defaultLabelsDirName  = "labels"
	defaultImageExtension = ".jpg"
	defaultLabelExtension = ".txt"
	defaultBackupDirName  = "_backup_before_normalize"
	defaultMaxIssues      = 200
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

func defaultSplits() []string {
	return []string{"train", "valid", "test"}
}

// DefaultAliases returns the built-in alias table: canonical class name to
// accepted variant spellings. Entries unify case and separator variants
// only, never distinct concepts.
func DefaultAliases() map[string][]string {
	return map[string][]string{
		"damaged_roof":  {"damagedroof", "damaged__roof"},
		"wall_leaking":  {"wall-leaking", "wall__leaking"},
		"broken_window": {"brokenwindow"},
		"building":      {},
		"roof":          {},
		"window":        {},
		"crack":         {},
		"damage":        {},
	}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Dataset: Dataset{
			ManifestName:   defaultManifestName,
			Splits:         defaultSplits(),
			ImagesDirName:  defaultImagesDirName,
			LabelsDirName:  defaultLabelsDirName,
			ImageExtension: defaultImageExtension,
			LabelExtension: defaultLabelExtension,
			BackupDirName:  defaultBackupDirName,
		},
		Reporting: Reporting{
			MaxIssues: defaultMaxIssues,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Aliases: DefaultAliases(),
	}
}
