package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into paths, behavior, display, and utility.
// --config is resolved in a first pass so the file sits between defaults and flags.

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// ErrEarlyExit is returned by [ParseFlags] after --help or --version has been
// printed. Callers should exit 0 without running anything.
var ErrEarlyExit = errors.New("early exit requested")

// ParseFlags parses args (without the program name) into cfg. Precedence is
// defaults < --config file < explicit flags.
func ParseFlags(cfg *Config, version string, args []string) error {
	if path, err := scanConfigFlag(args); err != nil {
		return err
	} else if path != "" {
		if err := LoadFile(path, cfg); err != nil {
			return err
		}
	}

	fs := pflag.NewFlagSet("stitch-all", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	var u utilityFlags
	definePathFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &u)
	defineUtilityFlags(fs, cfg, &u)

	if err := fs.Parse(args); err != nil {
		return err
	}

	applyUtilityFlags(cfg, &u)

	if u.showHelp {
		printUsage(os.Stderr, version)
		return ErrEarlyExit
	}
	if u.showVersion {
		fmt.Fprintln(os.Stdout, "stitch-all v"+version)
		return ErrEarlyExit
	}

	if rest := fs.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " "))
	}
	return nil
}

// scanConfigFlag finds --config in args without failing on the other flags,
// which are not registered yet.
func scanConfigFlag(args []string) (string, error) {
	pre := pflag.NewFlagSet("stitch-all", pflag.ContinueOnError)
	pre.SetOutput(io.Discard)
	pre.Usage = func() {}
	pre.ParseErrorsWhitelist.UnknownFlags = true

	var path string
	pre.StringVar(&path, "config", "", "")
	pre.BoolP("help", "h", false, "")
	if err := pre.Parse(args); err != nil {
		return "", err
	}
	return path, nil
}

// utilityFlags holds flags that are applied after Parse: color overrides and
// the early-exit switches.
type utilityFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// definePathFlags registers -i/--input, -o/--output, -s/--stitcher, --ext.
func definePathFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.InputPattern, "input", "i", cfg.InputPattern, "Input glob (case-sensitive)")
	fs.StringVarP(&cfg.OutputDir, "output", "o", cfg.OutputDir, "Output directory")
	fs.StringVarP(&cfg.Stitcher, "stitcher", "s", cfg.Stitcher, "Stitcher executable")
	fs.StringVar(&cfg.OutputExt, "ext", cfg.OutputExt, "Output file extension")
}

// defineBehaviorFlags registers --order, dry-run, skip-existing.
func defineBehaviorFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.Var(&orderValue{&cfg.Order}, "order", "Pairing order: sorted | native")
	fs.BoolVarP(&cfg.DryRun, "dry-run", "d", cfg.DryRun, "Print invocations without running the stitcher")
	fs.BoolVar(&cfg.SkipExisting, "skip-existing", cfg.SkipExisting, "Skip pairs whose output already exists")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, u *utilityFlags) {
	fs.BoolVar(&u.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&u.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")
	fs.BoolVarP(&cfg.CheckOnly, "check", "c", false, "Run system diagnostics and exit")
	fs.StringVarP(&cfg.LogFile, "log", "l", cfg.LogFile, "Append logs to file")
}

// defineUtilityFlags registers --config, --version and --help. The file named
// by --config is already loaded by scanConfigFlag; this pass only records the
// path so it is not rejected as unknown.
func defineUtilityFlags(fs *pflag.FlagSet, cfg *Config, u *utilityFlags) {
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "YAML config file")
	fs.BoolVarP(&u.showVersion, "version", "V", false, "Print version and exit")
	fs.BoolVarP(&u.showHelp, "help", "h", false, "Show this help and exit")
}

// applyUtilityFlags copies color overrides into cfg. --no-color wins over --color.
func applyUtilityFlags(cfg *Config, u *utilityFlags) {
	if u.noColor {
		cfg.ColorMode = ColorNever
	} else if u.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// printUsage writes the help text to w. Column-aligned for readability.
func printUsage(w io.Writer, version string) {
	const col1 = 30 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "stitch-all v" + version + " - stitch consecutive photo pairs"},
		{"", ""},
		{"  stitch-all [OPTIONS]", ""},
		{"", ""},
		{"Paths", ""},
		{"  -i, --input <glob>", "Input glob (default: photos/*.JPG)"},
		{"  -o, --output <dir>", "Output directory (default: out)"},
		{"  -s, --stitcher <path>", "Stitcher executable (default: ./stitch)"},
		{"  --ext <ext>", "Output extension (default: jpg)"},
		{"", ""},
		{"Behavior", ""},
		{"  --order <sorted|native>", "Pairing order (default: sorted)"},
		{"  -d, --dry-run", "Print invocations without running the stitcher"},
		{"  --skip-existing", "Skip pairs whose output already exists"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  --config <path>", "Read settings from a YAML file"},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (stitcher, inputs, output dir)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// pflag.Value adapters so we can use enum types (Order, ColorMode) with fs.Var.

type orderValue struct{ p *Order }

func (o *orderValue) String() string { return string(*o.p) }
func (o *orderValue) Type() string   { return "order" }
func (o *orderValue) Set(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sorted":
		*o.p = OrderSorted
	case "native":
		*o.p = OrderNative
	default:
		return fmt.Errorf("invalid order %q (use 'sorted' or 'native')", s)
	}
	return nil
}

type colorModeValue struct{ p *ColorMode }

func (c *colorModeValue) String() string { return string(*c.p) }
func (c *colorModeValue) Type() string   { return "color" }
func (c *colorModeValue) Set(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		*c.p = ColorAuto
	case "always":
		*c.p = ColorAlways
	case "never":
		*c.p = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}
