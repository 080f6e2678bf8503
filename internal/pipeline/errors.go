package pipeline

import (
	"errors"
	"fmt"

	"github.com/kellegous/morning-on-the-charles/internal/stitcher"
)

// ErrInterrupted is returned by [Run] when ctx is cancelled (SIGINT/SIGTERM).
var ErrInterrupted = errors.New("interrupted")

// Process exit codes for the failures that don't carry their own.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitLaunchError = 127
	ExitInterrupted = 130
)

// OutputDirectoryError reports that the output directory could not be created
// (permissions, or a non-directory already at that path).
type OutputDirectoryError struct {
	Path string
	Err  error
}

func (e *OutputDirectoryError) Error() string {
	return fmt.Sprintf("cannot create output directory %s: %v", e.Path, e.Err)
}

func (e *OutputDirectoryError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by [Run] to the driver's process exit code.
// A stitcher failure propagates its own status verbatim.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var failure *stitcher.StitchFailure
	if errors.As(err, &failure) {
		return failure.Code
	}
	var launchErr *stitcher.LaunchError
	if errors.As(err, &launchErr) {
		return ExitLaunchError
	}
	if errors.Is(err, ErrInterrupted) {
		return ExitInterrupted
	}
	return ExitFailure
}
