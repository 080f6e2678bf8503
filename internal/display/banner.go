// Package display holds console presentation helpers: the startup banner and
// human-readable formatting for sizes and durations.
package display

import (
	"fmt"
	"io"

	"github.com/kellegous/morning-on-the-charles/internal/term"
)

// PrintBanner writes the ASCII art banner to w, in cyan when colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Cyan)
	fmt.Fprint(w, `     _   _ _       _                 _ _
 ___| |_(_) |_ ___| |__         __ _| | |
/ __| __| | __/ __| '_ \ _____ / _`+"`"+` | | |
\__ \ |_| | || (__| | | |_____| (_| | | |
|___/\__|_|\__\___|_| |_|      \__,_|_|_|
`)
	if term.Enabled() {
		fmt.Fprintln(w, term.NC)
	}
}
