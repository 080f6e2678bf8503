// Command stitch-all is the CLI entrypoint for the batch photo stitcher.
//
// It parses flags, validates configuration, and either runs diagnostics
// (--check) or stitches every consecutive pair of input photos with the
// external stitcher, stopping at the first failure.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kellegous/morning-on-the-charles/internal/check"
	"github.com/kellegous/morning-on-the-charles/internal/config"
	"github.com/kellegous/morning-on-the-charles/internal/display"
	"github.com/kellegous/morning-on-the-charles/internal/logging"
	"github.com/kellegous/morning-on-the-charles/internal/pipeline"
	"github.com/kellegous/morning-on-the-charles/internal/stitcher"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version, args); err != nil {
		if errors.Is(err, config.ErrEarlyExit) {
			return pipeline.ExitOK
		}
		fmt.Fprintf(os.Stderr, "stitch-all: %v\n", err)
		return pipeline.ExitFailure
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "stitch-all: %v\n", err)
		return pipeline.ExitFailure
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stitch-all: %v\n", err)
		return pipeline.ExitFailure
	}
	defer log.Close()

	// Phase 2: Logger available. All output goes through log from here on.
	if cfg.CheckOnly {
		display.PrintBanner(os.Stderr)
		if !check.RunCheck(&cfg, log) {
			return pipeline.ExitFailure
		}
		return pipeline.ExitOK
	}

	log.Debug("stitch-all v%s (%s)", version, commit)
	if cfg.ConfigFile != "" {
		log.Debug("Config: %s", cfg.ConfigFile)
	}
	log.Info("In:  %s", cfg.InputPattern)
	log.Info("Out: %s", cfg.OutputDir)
	if cfg.DryRun {
		log.Warn("DRY RUN - the stitcher will not be invoked")
	}

	// Phase 3: Signal handling. Cancelling ctx kills the stitcher in flight
	// and stops the batch before the next pair.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Phase 4: Run pipeline (discover → pair → stitch).
	_, err = pipeline.Run(ctx, &cfg, log, stitcher.NewExecutor(&cfg))
	// Stitcher failures were already reported against their pair.
	var failure *stitcher.StitchFailure
	var launchErr *stitcher.LaunchError
	if err != nil && !errors.As(err, &failure) && !errors.As(err, &launchErr) {
		log.Error("%v", err)
	}
	return pipeline.ExitCode(err)
}
