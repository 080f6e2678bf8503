// Package stitcher builds and executes invocations of the external stitching
// executable and classifies their outcome.
//
// The stitcher is opaque: it is run as
//
//	<stitcher> <inputA> <inputB> <outputPath>
//
// and exit status 0 means the output was written. A process that cannot be
// started yields a [*LaunchError]; a non-zero exit yields a [*StitchFailure]
// carrying the status verbatim.
package stitcher
