package naming

import (
	"fmt"
	"path/filepath"
	"strings"
)

// OutputClaims records which pair writes each output path during one run.
// Pairs only land on the same path when their inputs share stems, such as
// A.JPG, A.jpeg and A.png under a broad input glob. The later pair is moved
// to a " - dupN" name so it cannot overwrite the earlier result.
//
// The zero value is not usable; call NewOutputClaims.
type OutputClaims struct {
	byPath map[string]int // output path → index of the pair writing it
}

// NewOutputClaims returns an empty claim set.
func NewOutputClaims() *OutputClaims {
	return &OutputClaims{byPath: make(map[string]int)}
}

// Claim reserves output for pair. When no earlier pair holds output it is
// returned unchanged with holder -1. Otherwise the first free
// "<name> - dupN<ext>" path is reserved and holder is the index of the pair
// that already writes output.
func (c *OutputClaims) Claim(pair int, output string) (path string, holder int) {
	prev, taken := c.byPath[output]
	if !taken {
		c.byPath[output] = pair
		return output, -1
	}

	ext := filepath.Ext(output)
	base := strings.TrimSuffix(output, ext)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s - dup%d%s", base, n, ext)
		if _, taken := c.byPath[candidate]; !taken {
			c.byPath[candidate] = pair
			return candidate, prev
		}
	}
}

// Holder reports which pair writes path, if any.
func (c *OutputClaims) Holder(path string) (int, bool) {
	pair, ok := c.byPath[path]
	return pair, ok
}
