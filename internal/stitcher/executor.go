package stitcher

import (
	"context"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/kellegous/morning-on-the-charles/internal/config"
)

// stderrTailSize bounds how much stitcher stderr is kept for failure reports.
const stderrTailSize = 8 << 10

// killWait bounds how long Run waits for the child's output pipes to close
// after ctx cancellation kills it. A grandchild holding stderr open would
// otherwise block Wait.
const killWait = 5 * time.Second

// ExecResult holds the outcome of a single stitcher invocation.
type ExecResult struct {
	Stderr  string // Last stderrTailSize bytes of the stitcher's stderr.
	Elapsed time.Duration
	Err     error // nil, *LaunchError or *StitchFailure.
}

// Runner runs one stitcher job to completion.
type Runner interface {
	Run(ctx context.Context, job Job) ExecResult
}

// Executor runs the configured stitcher as a child process. The child's
// output streams pass through to Stdout and Stderr, which default to the
// driver's own.
type Executor struct {
	cfg    *config.Config
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecutor returns an Executor for cfg.Stitcher writing to os.Stdout and
// os.Stderr.
func NewExecutor(cfg *config.Config) *Executor {
	return &Executor{cfg: cfg, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run starts the stitcher for job and blocks until it exits. There is no
// timeout; only ctx cancellation kills the child.
func (e *Executor) Run(ctx context.Context, job Job) ExecResult {
	args := Build(e.cfg, job)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.WaitDelay = killWait
	tail := &tailBuffer{max: stderrTailSize}
	cmd.Stdout = e.Stdout
	cmd.Stderr = io.MultiWriter(e.Stderr, tail)

	start := time.Now()
	err := cmd.Run()
	return ExecResult{
		Stderr:  tail.String(),
		Elapsed: time.Since(start),
		Err:     Classify(args[0], job, err),
	}
}

// tailBuffer is an io.Writer that retains only the last max bytes written.
type tailBuffer struct {
	mu  sync.Mutex
	max int
	buf []byte
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.max; over > 0 {
		t.buf = append(t.buf[:0], t.buf[over:]...)
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return string(t.buf)
}
