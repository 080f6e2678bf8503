// Package naming derives output file names for stitched pairs: extension-aware
// stem extraction, the "<stemA>-<stemB>.<ext>" output path, and the per-run
// claim set that keeps two pairs from writing the same file.
package naming
