package pipeline

// RunStats tracks aggregate counters and byte totals across a batch run.
type RunStats struct {
	Total            int // Input files discovered.
	Pairs            int
	Current          int // 1-based position of the pair being processed.
	Stitched         int
	Skipped          int
	Failed           int
	TotalOutputBytes int64
}

// Remaining returns how many pairs were never attempted.
func (s *RunStats) Remaining() int {
	if n := s.Pairs - s.Current; n > 0 {
		return n
	}
	return 0
}
