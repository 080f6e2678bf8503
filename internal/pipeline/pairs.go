package pipeline

// Pair is two consecutive inputs in discovery order. Index is the pair's
// 0-based position, so pair i is (files[i], files[i+1]).
type Pair struct {
	Index int
	A     string
	B     string
}

// Pairs returns the max(len(files)-1, 0) consecutive pairs of files.
func Pairs(files []string) []Pair {
	if len(files) < 2 {
		return nil
	}
	pairs := make([]Pair, 0, len(files)-1)
	for i := 0; i+1 < len(files); i++ {
		pairs = append(pairs, Pair{Index: i, A: files[i], B: files[i+1]})
	}
	return pairs
}
