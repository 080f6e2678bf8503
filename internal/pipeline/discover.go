package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/kellegous/morning-on-the-charles/internal/config"
)

// DropFunc is told about each glob match Discover leaves out, with a short
// reason. It may be nil.
type DropFunc func(path, reason string)

// Discover expands pattern (case-sensitive, filepath.Match syntax) and orders
// the result. With OrderSorted paths are sorted lexically so "consecutive" is
// well defined; OrderNative keeps the order the glob produced.
//
// Directories and matches that cannot be stat'ed, such as dangling symlinks,
// never take part in pairing. Each one is passed to drop.
func Discover(pattern string, order config.Order, drop DropFunc) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("expand %q: %w", pattern, err)
	}

	files := matches[:0]
	for _, m := range matches {
		fi, err := os.Stat(m)
		switch {
		case err != nil:
			dropped(drop, m, err.Error())
			continue
		case fi.IsDir():
			dropped(drop, m, "directory")
			continue
		}
		files = append(files, m)
	}

	if order == config.OrderSorted {
		sort.Strings(files)
	}
	return files, nil
}

func dropped(drop DropFunc, path, reason string) {
	if drop != nil {
		drop(path, reason)
	}
}
