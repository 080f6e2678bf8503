package stitcher

import (
	"errors"
	"fmt"
	"os/exec"
	"syscall"
)

// LaunchError reports that the stitcher could not be started at all
// (missing file, permission denied, not on PATH). It is distinct from a
// stitcher that ran and failed.
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("cannot launch stitcher %q: %v", e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// StitchFailure reports that the stitcher ran and exited non-zero for Job.
type StitchFailure struct {
	Job  Job
	Code int
}

func (e *StitchFailure) Error() string {
	return fmt.Sprintf("stitcher exited with status %d on pair %d (%s, %s)",
		e.Code, e.Job.Index, e.Job.InputA, e.Job.InputB)
}

// Classify converts the error returned by running the stitcher for job into
// the package taxonomy. A nil err stays nil.
func Classify(path string, job Job, err error) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &StitchFailure{Job: job, Code: exitCode(exitErr)}
	}
	return &LaunchError{Path: path, Err: err}
}

// exitCode returns the process status, mapping death-by-signal to the shell
// convention 128+signal. A non-zero status is always returned.
func exitCode(exitErr *exec.ExitError) int {
	if code := exitErr.ExitCode(); code > 0 {
		return code
	}
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return 1
}
