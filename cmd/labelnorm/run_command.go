package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"labelnorm/internal/normalize"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var rootFlag string
	var applyFlag bool
	var backupDirFlag string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Normalize class names, remap label indices, and check integrity",
		Long: `Run normalizes the dataset taxonomy in the manifest, remaps every label
file's class indices to the deduplicated canonical taxonomy, and reports
orphaned images and labels across all splits.

Safe by default: without --apply nothing is written. With --apply the
manifest and label trees are snapshotted into the backup directory before
the first write.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			runner, err := normalize.NewRunner(cfg, logger)
			if err != nil {
				return err
			}
			rep, err := runner.Run(cmd.Context(), normalize.Options{
				Root:          rootFlag,
				Apply:         applyFlag,
				BackupDirName: backupDirFlag,
			})
			if err != nil {
				return fmt.Errorf("normalize: %w", err)
			}

			out := cmd.OutOrStdout()
			renderReport(out, rep, cfg.Reporting.MaxIssues, shouldColorize(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&rootFlag, "root", ".", "Dataset root containing the manifest and split directories")
	cmd.Flags().BoolVar(&applyFlag, "apply", false, "Apply changes. Without this flag, runs as dry-run")
	cmd.Flags().StringVar(&backupDirFlag, "backup-dirname", "", "Backup directory name created inside the dataset root")
	return cmd
}
