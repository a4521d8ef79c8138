package normalize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"labelnorm/internal/backup"
	"labelnorm/internal/config"
	"labelnorm/internal/dataset"
	"labelnorm/internal/logging"
	"labelnorm/internal/manifest"
	"labelnorm/internal/preflight"
	"labelnorm/internal/report"
	"labelnorm/internal/taxonomy"
)

// LockFileName guards apply runs. Dry runs never lock.
const LockFileName = ".labelnorm.lock"

// Options are the per-run knobs.
type Options struct {
	Root          string
	Apply         bool
	BackupDirName string
}

// Runner executes normalization runs against a dataset root.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewRunner constructs a runner. A nil logger falls back to a no-op logger.
func NewRunner(cfg *config.Config, logger *slog.Logger) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("normalize: config is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{cfg: cfg, logger: logger}, nil
}

// Run performs one full pass. The returned report is complete even when it
// carries issues; only fatal preconditions produce an error.
func (r *Runner) Run(ctx context.Context, opts Options) (*report.Report, error) {
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve dataset root: %w", err)
	}
	backupDirName := opts.BackupDirName
	if backupDirName == "" {
		backupDirName = r.cfg.Dataset.BackupDirName
	}

	manifestPath := filepath.Join(root, r.cfg.Dataset.ManifestName)
	man, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, err
	}
	names, err := man.Names()
	if err != nil {
		return nil, err
	}

	aliases := taxonomy.NewAliases(r.cfg.Aliases)
	canonical, remap := taxonomy.BuildRemap(names, aliases)

	runID := uuid.NewString()
	logger := r.logger.With(logging.String("run_id", runID))
	logger.Info("taxonomy remap built",
		logging.Int("old_classes", len(names)),
		logging.Int("new_classes", len(canonical)),
		logging.Bool("apply", opts.Apply))

	rep := report.New(names, canonical, remap)
	rep.Applied = opts.Apply

	if opts.Apply {
		if err := preflight.CheckWritable(root); err != nil {
			return nil, err
		}

		lock := flock.New(filepath.Join(root, LockFileName))
		locked, err := lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("acquire run lock: %w", err)
		}
		if !locked {
			return nil, fmt.Errorf("another labelnorm apply run holds %s", lock.Path())
		}
		defer func() {
			if err := lock.Unlock(); err != nil {
				logger.Warn("failed to release run lock", logging.Error(err))
			}
		}()

		need, err := preflight.LabelTreeSize(root, r.cfg.Dataset.ManifestName, r.cfg.Dataset.Splits, r.cfg.Dataset.LabelsDirName)
		if err != nil {
			return nil, err
		}
		if err := preflight.CheckFreeSpace(root, need); err != nil {
			return nil, err
		}

		backupPath, created, err := backup.Snapshot(backup.Spec{
			Root:          root,
			DirName:       backupDirName,
			ManifestName:  r.cfg.Dataset.ManifestName,
			Splits:        r.cfg.Dataset.Splits,
			LabelsDirName: r.cfg.Dataset.LabelsDirName,
		}, runID)
		if err != nil {
			return nil, err
		}
		rep.BackupPath = backupPath
		rep.BackupCreated = created
		logger.Info("backup ready", logging.String("path", backupPath), logging.Bool("created", created))

		if err := r.processSplits(ctx, root, remap, opts.Apply, rep, logger); err != nil {
			return nil, err
		}

		man.SetNames(canonical)
		if err := man.Save(manifestPath); err != nil {
			return nil, err
		}
		logger.Info("manifest updated", logging.String("path", manifestPath))
		return rep, nil
	}

	if err := r.processSplits(ctx, root, remap, opts.Apply, rep, logger); err != nil {
		return nil, err
	}
	return rep, nil
}

func (r *Runner) processSplits(ctx context.Context, root string, remap []int, apply bool, rep *report.Report, logger *slog.Logger) error {
	for _, name := range r.cfg.Dataset.Splits {
		if err := ctx.Err(); err != nil {
			return err
		}
		split := dataset.NewSplit(root, name, r.cfg.Dataset.ImagesDirName, r.cfg.Dataset.LabelsDirName)

		imageStems, err := dataset.ImageStems(split.ImagesDir, r.cfg.Dataset.ImageExtension)
		if err != nil {
			rep.AddSplit(name, report.SplitStats{}, []dataset.Issue{{
				Kind: dataset.IssueReadFailure, Split: name, Path: split.ImagesDir, Err: err,
			}})
			logger.Warn("skipping split: images unreadable", logging.String("split", name), logging.Error(err))
			continue
		}
		labelFiles, err := dataset.LabelFiles(split.LabelsDir, r.cfg.Dataset.LabelExtension)
		if err != nil {
			rep.AddSplit(name, report.SplitStats{}, []dataset.Issue{{
				Kind: dataset.IssueReadFailure, Split: name, Path: split.LabelsDir, Err: err,
			}})
			logger.Warn("skipping split: labels unreadable", logging.String("split", name), logging.Error(err))
			continue
		}

		scanIssues := dataset.ScanSplit(split, imageStems, dataset.StemSet(labelFiles),
			r.cfg.Dataset.ImageExtension, r.cfg.Dataset.LabelExtension)
		rwStats, rwIssues := dataset.RewriteSplit(name, labelFiles, remap, apply)

		stats := report.SplitStats{
			Processed: rwStats.Processed,
			Empty:     rwStats.Empty,
			Rewritten: rwStats.Rewritten,
		}
		for _, issue := range scanIssues {
			switch issue.Kind {
			case dataset.IssueMissingLabel:
				stats.MissingLabels++
			case dataset.IssueMissingImage:
				stats.MissingImages++
			}
		}

		rep.AddSplit(name, stats, append(scanIssues, rwIssues...))
		logger.Debug("split processed",
			logging.String("split", name),
			logging.Int("labels", rwStats.Processed),
			logging.Int("rewritten", rwStats.Rewritten),
			logging.Int("issues", len(scanIssues)+len(rwIssues)))
	}
	return nil
}
