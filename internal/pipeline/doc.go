// Package pipeline orchestrates a stitch run: input discovery, consecutive
// pairing, per-pair stitcher invocation with fail-fast semantics, and batch
// summary reporting.
package pipeline
