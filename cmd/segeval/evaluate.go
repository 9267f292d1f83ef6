package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/jackzampolin/segeval/internal/annotations"
	"github.com/jackzampolin/segeval/internal/config"
	"github.com/jackzampolin/segeval/internal/output"
	"github.com/jackzampolin/segeval/internal/report"
	"github.com/jackzampolin/segeval/internal/segeval"
)

var (
	groundTruthPath string
	predictedPath   string
	watchFiles      bool
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score a predicted segmentation against ground truth",
	Long: `Evaluate loads two annotation files (JSON arrays of
{dossierName, startIdx, endIdx} records), deduplicates each into a set of
documents and reports strict precision, recall, IoU and F1.

With --watch, the evaluation re-runs whenever either file changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runEvaluation(); err != nil {
			return err
		}
		if watchFiles {
			// Config edits take effect mid-watch. The output format follows
			// the file unless the --output flag pinned it; runEvaluation
			// re-reads ValidateSchema on every run.
			cfgManager.OnChange(func(cfg *config.Config) {
				if outputFormat == "" {
					output.SetFormat(cfg.Output)
				}
				slog.Default().Info("config reloaded",
					"output", cfg.Output, "validate_schema", cfg.ValidateSchema)
			})
			cfgManager.WatchConfig()
			return watchAndReevaluate(cmd.Context())
		}
		return nil
	},
}

func init() {
	evaluateCmd.Flags().StringVarP(&groundTruthPath, "ground-truth", "g", "", "ground-truth annotation file (required)")
	evaluateCmd.Flags().StringVarP(&predictedPath, "predicted", "p", "", "predicted annotation file (required)")
	evaluateCmd.Flags().BoolVarP(&watchFiles, "watch", "w", false, "re-evaluate when either annotation file changes")
	evaluateCmd.MarkFlagRequired("ground-truth")
	evaluateCmd.MarkFlagRequired("predicted")
}

// runEvaluation performs one full load-evaluate-print cycle.
func runEvaluation() error {
	opts := annotations.Options{SkipValidation: !cfgManager.Get().ValidateSchema}

	gtDocs, err := annotations.LoadFile(groundTruthPath, opts)
	if err != nil {
		return fmt.Errorf("ground truth: %w", err)
	}
	predDocs, err := annotations.LoadFile(predictedPath, opts)
	if err != nil {
		return fmt.Errorf("predictions: %w", err)
	}

	r, err := report.New(segeval.New(gtDocs, predDocs), groundTruthPath, predictedPath)
	if err != nil {
		return err
	}
	return output.Print(r)
}

// watchAndReevaluate re-runs the evaluation when either annotation file is
// rewritten. Each run recomputes everything from scratch; errors are logged
// and the watch continues, since a half-written file is expected mid-save.
func watchAndReevaluate(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directories: editors replace files on save, which
	// drops watches registered on the files themselves.
	watched := map[string]bool{
		filepath.Clean(groundTruthPath): true,
		filepath.Clean(predictedPath):   true,
	}
	for dir := range map[string]bool{
		filepath.Dir(groundTruthPath): true,
		filepath.Dir(predictedPath):   true,
	} {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	log := slog.Default()
	log.Info("watching annotation files", "ground_truth", groundTruthPath, "predicted", predictedPath)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(event.Name)] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.Info("annotations changed", "path", event.Name)
			if err := runEvaluation(); err != nil {
				log.Error("evaluation failed", "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watch error", "error", err)
		}
	}
}
