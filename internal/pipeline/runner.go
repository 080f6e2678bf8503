package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kellegous/morning-on-the-charles/internal/config"
	"github.com/kellegous/morning-on-the-charles/internal/display"
	"github.com/kellegous/morning-on-the-charles/internal/logging"
	"github.com/kellegous/morning-on-the-charles/internal/naming"
	"github.com/kellegous/morning-on-the-charles/internal/stitcher"
)

// Run is the top-level batch entry point. It creates the output directory,
// discovers inputs, and stitches each consecutive pair in order. The first
// failure stops the batch: no later pair is attempted and the failure is
// returned. Outputs already written are left in place.
//
// The returned error is nil, *OutputDirectoryError, *stitcher.LaunchError,
// *stitcher.StitchFailure, ErrInterrupted, or a discovery error. Use
// [ExitCode] to turn it into a process status.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, runner stitcher.Runner) (RunStats, error) {
	var stats RunStats

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return stats, &OutputDirectoryError{Path: cfg.OutputDir, Err: err}
	}

	files, err := Discover(cfg.InputPattern, cfg.Order, func(path, reason string) {
		log.Debug("Ignoring %s: %s", path, reason)
	})
	if err != nil {
		return stats, fmt.Errorf("input discovery failed: %w", err)
	}

	pairs := Pairs(files)
	stats.Total = len(files)
	stats.Pairs = len(pairs)
	claims := naming.NewOutputClaims()

	logBatchHeader(cfg, log, &stats)

	for _, pair := range pairs {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			logSummary(cfg, log, &stats)
			return stats, ErrInterrupted
		}
		stats.Current = pair.Index + 1

		if err := processPair(ctx, cfg, log, runner, claims, pair, &stats); err != nil {
			logSummary(cfg, log, &stats)
			return stats, err
		}
	}

	logSummary(cfg, log, &stats)
	return stats, nil
}

// processPair handles one pair: name → skip check → invoke → update stats.
func processPair(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	runner stitcher.Runner,
	claims *naming.OutputClaims,
	pair Pair,
	stats *RunStats,
) error {
	output, holder := claims.Claim(pair.Index, naming.GetOutputPath(pair.A, pair.B, cfg.OutputDir, cfg.OutputExt))

	job := stitcher.Job{Index: pair.Index, InputA: pair.A, InputB: pair.B, Output: output}

	log.Info("[%d/%d] %s + %s", stats.Current, stats.Pairs, filepath.Base(pair.A), filepath.Base(pair.B))
	log.Info("  -> %s", output)
	if holder >= 0 {
		log.Warn("  Pair %d already writes this name; renamed to %s", holder+1, filepath.Base(output))
	}
	log.Debug("  $ %s", strings.Join(stitcher.Build(cfg, job), " "))

	if cfg.SkipExisting {
		if _, err := os.Stat(output); err == nil {
			log.Warn("Skip (exists): %s", filepath.Base(output))
			stats.Skipped++
			return nil
		}
	}

	if cfg.DryRun {
		log.Success("[DRY] Would stitch")
		stats.Stitched++
		return nil
	}

	res := runner.Run(ctx, job)
	if res.Err != nil {
		if ctx.Err() != nil {
			log.Warn("Interrupted while stitching %s", filepath.Base(output))
			return ErrInterrupted
		}
		stats.Failed++
		logFailure(log, res)
		return res.Err
	}

	var outSize int64
	if fi, err := os.Stat(output); err == nil {
		outSize = fi.Size()
	}
	stats.TotalOutputBytes += outSize
	stats.Stitched++

	log.Success("Stitched in %s (%s)", display.FormatElapsed(res.Elapsed), display.FormatBytes(outSize))
	return nil
}

func logFailure(log *logging.Logger, res stitcher.ExecResult) {
	var failure *stitcher.StitchFailure
	var launchErr *stitcher.LaunchError
	switch {
	case errors.As(res.Err, &failure):
		log.Error("Stitch failed with status %d after %s", failure.Code, display.FormatElapsed(res.Elapsed))
	case errors.As(res.Err, &launchErr):
		log.Error("%v", launchErr)
	default:
		log.Error("Stitch failed: %v", res.Err)
	}
	logStderr(log, res.Stderr)
}

// logStderr repeats the tail of the stitcher's stderr at debug level so it
// lands in the log file next to the failure.
func logStderr(log *logging.Logger, stderr string) {
	stderr = strings.TrimSpace(stderr)
	if stderr == "" {
		return
	}
	log.Debug("Last stitcher output:")
	lines := strings.Split(stderr, "\n")
	start := 0
	if len(lines) > 20 {
		start = len(lines) - 20
	}
	for _, l := range lines[start:] {
		log.Debug("  %s", l)
	}
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("Found %d files matching %s (%d pairs)", stats.Total, cfg.InputPattern, stats.Pairs)
	log.Info("Stitcher: %s", cfg.Stitcher)
	if cfg.Order == config.OrderNative {
		log.Info("Order: native enumeration order")
	}
	if cfg.SkipExisting {
		log.Info("Existing outputs: skip")
	}
	if stats.Pairs == 0 {
		log.Warn("Need at least 2 input files to stitch; nothing to do")
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d stitched, %d skipped, %d failed", stats.Stitched, stats.Skipped, stats.Failed)
	if n := stats.Remaining(); n > 0 {
		log.Warn("  Pairs not attempted: %d", n)
	}
	if cfg.DryRun {
		log.Info("  Total output: n/a (dry run)")
		return
	}
	log.Info("  Total output: %s", display.FormatBytes(stats.TotalOutputBytes))
}
