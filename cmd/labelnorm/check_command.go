package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"labelnorm/internal/dataset"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var rootFlag string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Scan splits for orphaned images and labels without touching files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			root, err := filepath.Abs(rootFlag)
			if err != nil {
				return fmt.Errorf("resolve dataset root: %w", err)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			total := 0
			for _, name := range cfg.Dataset.Splits {
				split := dataset.NewSplit(root, name, cfg.Dataset.ImagesDirName, cfg.Dataset.LabelsDirName)
				imageStems, err := dataset.ImageStems(split.ImagesDir, cfg.Dataset.ImageExtension)
				if err != nil {
					return fmt.Errorf("scan images for split %s: %w", name, err)
				}
				labelFiles, err := dataset.LabelFiles(split.LabelsDir, cfg.Dataset.LabelExtension)
				if err != nil {
					return fmt.Errorf("scan labels for split %s: %w", name, err)
				}

				issues := dataset.ScanSplit(split, imageStems, dataset.StemSet(labelFiles),
					cfg.Dataset.ImageExtension, cfg.Dataset.LabelExtension)
				total += len(issues)

				writeSectionHeader(out, fmt.Sprintf("%s: %d images, %d labels, %d orphans",
					name, len(imageStems), len(labelFiles), len(issues)), colorize)
				for _, issue := range issues {
					fmt.Fprintf(out, " - %s\n", issue)
				}
			}

			if total == 0 {
				fmt.Fprintln(out, "\nAll splits consistent: every image has a label and vice versa.")
			} else {
				fmt.Fprintf(out, "\n%d orphans found.\n", total)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rootFlag, "root", ".", "Dataset root containing the split directories")
	return cmd
}
