package stitcher

import "github.com/kellegous/morning-on-the-charles/internal/config"

// Job is one stitcher invocation: the pair's position in the batch, its two
// inputs, and the output path they are stitched into.
type Job struct {
	Index  int
	InputA string
	InputB string
	Output string
}

// Build constructs the complete argument slice for job. The first element is
// the executable; the three positional arguments follow in stitcher order.
func Build(cfg *config.Config, job Job) []string {
	return []string{cfg.Stitcher, job.InputA, job.InputB, job.Output}
}
