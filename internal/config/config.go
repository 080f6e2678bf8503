// Package config holds runtime configuration: defaults, an optional YAML file,
// CLI flag parsing, and validation. With nothing overridden, the defaults
// reproduce the classic fixed layout: photos/*.JPG in, out/ out.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// --- Enum types for validated string fields ---

// Order selects how discovered inputs are ordered before pairing.
type Order string

const (
	OrderSorted Order = "sorted" // Lexical sort by full path (default).
	OrderNative Order = "native" // Keep the glob enumeration order.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stderr is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by [LoadFile], then mutated by [ParseFlags] before being
// passed (by pointer) to packages that need it.
type Config struct {
	// Paths.
	InputPattern string // Default: "photos/*.JPG". Case-sensitive glob.
	OutputDir    string // Default: "out".
	OutputExt    string // Default: "jpg". Stored without a leading dot.

	// Stitcher executable, invoked as <Stitcher> <a> <b> <out>.
	Stitcher string // Default: "./stitch".

	// Behavior flags.
	Order        Order // Default: "sorted".
	DryRun       bool
	SkipExisting bool // Default: false. Every pair is stitched.

	// Display and logging.
	Verbose    bool
	ColorMode  ColorMode // Default: "auto".
	LogFile    string    // Optional log file path.
	CheckOnly  bool      // Run --check diagnostics and exit.
	ConfigFile string    // Optional YAML config path (--config).
}

// DefaultConfig returns the fixed layout: photos/*.JPG in, out/ out, and
// ./stitch as the stitcher.
func DefaultConfig() Config {
	return Config{
		InputPattern: "photos/*.JPG",
		OutputDir:    "out",
		OutputExt:    "jpg",
		Stitcher:     "./stitch",
		Order:        OrderSorted,
		ColorMode:    ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// NormalizeExt strips surrounding whitespace and leading dots from an output
// extension ("." + "JPG" style input is accepted).
func NormalizeExt(ext string) string {
	return strings.TrimLeft(strings.TrimSpace(ext), ".")
}

// Validate checks enum fields and required values and normalizes the output
// extension and directory in place.
func (c *Config) Validate() error {
	switch c.Order {
	case OrderSorted, OrderNative:
		// valid
	default:
		return errors.New("invalid order (use 'sorted' or 'native')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if strings.TrimSpace(c.Stitcher) == "" {
		return errors.New("stitcher path must not be empty")
	}

	c.OutputExt = NormalizeExt(c.OutputExt)
	if c.OutputExt == "" {
		return errors.New("output extension must not be empty")
	}
	if strings.ContainsRune(c.OutputExt, filepath.Separator) {
		return fmt.Errorf("invalid output extension %q", c.OutputExt)
	}

	if c.InputPattern == "" {
		return errors.New("input pattern must not be empty")
	}
	if _, err := filepath.Match(c.InputPattern, ""); err != nil {
		return fmt.Errorf("invalid input pattern %q: %w", c.InputPattern, err)
	}

	c.OutputDir = NormalizeDirArg(c.OutputDir)
	if c.OutputDir == "" {
		return errors.New("output directory must not be empty")
	}
	return nil
}
