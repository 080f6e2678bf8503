// Package term holds the ANSI color codes used for log output and decides
// whether they are switched on. Log lines go to stderr, so stderr is the
// stream checked for a terminal.
package term

import (
	"os"
	"strings"

	xterm "golang.org/x/term"

	"github.com/kellegous/morning-on-the-charles/internal/config"
)

// Color codes, one per log level plus the reset. All empty while colors are
// off, so callers can concatenate them unconditionally.
var Red, Green, Yellow, Blue, Cyan, NC string

var palette = []struct {
	dst  *string
	code string
}{
	{&Red, "\033[1;91m"},    // ERROR
	{&Green, "\033[1;92m"},  // SUCCESS
	{&Yellow, "\033[1;93m"}, // WARN
	{&Blue, "\033[1;94m"},   // INFO
	{&Cyan, "\033[1;96m"},   // DEBUG, banner
	{&NC, "\033[0m"},
}

// Configure switches the color codes on or off for mode. It is called once
// by logging.NewLogger.
func Configure(mode config.ColorMode) {
	on := wantColor(mode, IsTerminal(os.Stderr), os.Getenv)
	for _, c := range palette {
		if on {
			*c.dst = c.code
		} else {
			*c.dst = ""
		}
	}
}

// Enabled reports whether colors are on.
func Enabled() bool { return NC != "" }

// wantColor applies mode. In auto mode colors need a terminal, an unset
// NO_COLOR (https://no-color.org) and a TERM other than "dumb".
func wantColor(mode config.ColorMode, tty bool, getenv func(string) string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return tty && getenv("NO_COLOR") == "" && !strings.EqualFold(getenv("TERM"), "dumb")
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && xterm.IsTerminal(int(f.Fd()))
}
