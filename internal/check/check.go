// Package check provides system diagnostics (--check mode) and stitcher
// dependency validation (CheckDeps).
package check

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/kellegous/morning-on-the-charles/internal/config"
	"github.com/kellegous/morning-on-the-charles/internal/pipeline"
)

// Sentinel errors returned by CheckDeps when the stitcher is unusable.
var (
	ErrStitcherNotFound      = errors.New("stitcher not found")
	ErrStitcherNotExecutable = errors.New("stitcher is not executable")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains testable with a recording logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the --check flow: stitcher resolution, input matches, and
// output directory usability. It reports every problem it finds and returns
// false if any of them would make a real run fail.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkStitcher(cfg, log)
	checkInputs(cfg, log)
	if !checkOutputDir(cfg, log) {
		ok = false
	}
	return ok
}

// CheckDeps verifies that cfg.Stitcher resolves to an executable file. A
// name without a path separator is looked up on PATH. It returns the resolved
// path, or an error wrapping ErrStitcherNotFound or ErrStitcherNotExecutable.
func CheckDeps(cfg *config.Config) (string, error) {
	path, err := exec.LookPath(cfg.Stitcher)
	if err == nil {
		return path, nil
	}
	if errors.Is(err, fs.ErrPermission) {
		return "", fmt.Errorf("%w: %s", ErrStitcherNotExecutable, cfg.Stitcher)
	}
	return "", fmt.Errorf("%w: %s", ErrStitcherNotFound, cfg.Stitcher)
}

// checkStitcher resolves the stitcher and logs its absolute path.
func checkStitcher(cfg *config.Config, log Logger) bool {
	path, err := CheckDeps(cfg)
	if err != nil {
		log.Error("%v", err)
		return false
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	log.Success("stitcher: %s", path)
	return true
}

// checkInputs reports how many files and pairs the input pattern yields.
// Too few inputs is not an error: the run simply has nothing to do.
func checkInputs(cfg *config.Config, log Logger) {
	files, err := pipeline.Discover(cfg.InputPattern, cfg.Order, func(path, reason string) {
		log.Info("inputs: ignoring %s (%s)", path, reason)
	})
	if err != nil {
		log.Error("%v", err)
		return
	}
	pairs := len(pipeline.Pairs(files))
	if pairs == 0 {
		log.Warn("inputs: %d files match %s (nothing to stitch)", len(files), cfg.InputPattern)
		return
	}
	log.Success("inputs: %d files match %s (%d pairs)", len(files), cfg.InputPattern, pairs)
}

// checkOutputDir verifies the output directory exists and is writable, or
// that it can be created.
func checkOutputDir(cfg *config.Config, log Logger) bool {
	fi, err := os.Stat(cfg.OutputDir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Info("output: %s does not exist yet (will be created)", cfg.OutputDir)
		return true
	case err != nil:
		log.Error("output: %v", err)
		return false
	case !fi.IsDir():
		log.Error("output: %s exists and is not a directory", cfg.OutputDir)
		return false
	}

	probe, err := os.CreateTemp(cfg.OutputDir, ".stitch-all-check-*")
	if err != nil {
		log.Error("output: %s is not writable: %v", cfg.OutputDir, err)
		return false
	}
	probe.Close()
	os.Remove(probe.Name())
	log.Success("output: %s is writable", cfg.OutputDir)
	return true
}
