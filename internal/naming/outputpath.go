package naming

import (
	"path/filepath"
	"strings"
)

// Stem returns the base name of path without its final extension.
// A name with no extension, or a dotfile such as ".JPG", is returned whole.
//
//	Stem("photos/IMG_0001.JPG")  == "IMG_0001"
//	Stem("photos/pano.day1.jpeg") == "pano.day1"
func Stem(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		return base
	}
	return strings.TrimSuffix(base, ext)
}

// GetOutputPath builds the output path for the pair (a, b).
// ext is the file extension without dot (e.g. "jpg").
//
//	<outputDir>/<Stem(a)>-<Stem(b)>.<ext>
func GetOutputPath(a, b, outputDir, ext string) string {
	return filepath.Join(outputDir, Stem(a)+"-"+Stem(b)+"."+ext)
}
