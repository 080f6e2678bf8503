package stitcher

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kellegous/morning-on-the-charles/internal/config"
)

func TestBuild(t *testing.T) {
	cfg := config.DefaultConfig()
	job := Job{Index: 0, InputA: "photos/A.JPG", InputB: "photos/B.JPG", Output: "out/A-B.jpg"}

	assert.Equal(t,
		[]string{"./stitch", "photos/A.JPG", "photos/B.JPG", "out/A-B.jpg"},
		Build(&cfg, job))
}

func TestClassify(t *testing.T) {
	job := Job{Index: 3}

	assert.NoError(t, Classify("./stitch", job, nil))

	err := Classify("./stitch", job, fs.ErrNotExist)
	var launchErr *LaunchError
	require.ErrorAs(t, err, &launchErr)
	assert.Equal(t, "./stitch", launchErr.Path)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestTailBuffer(t *testing.T) {
	tb := &tailBuffer{max: 8}
	_, _ = tb.Write([]byte("0123"))
	assert.Equal(t, "0123", tb.String())
	_, _ = tb.Write([]byte("456789ab"))
	assert.Equal(t, "456789ab", tb.String())
	n, err := tb.Write([]byte("cdefghijklmn"))
	require.NoError(t, err)
	assert.Equal(t, 12, n)
	assert.Equal(t, "ghijklmn", tb.String())
}

// --- Executor tests against real child processes ---

func writeScript(t *testing.T, dir, name, body string, mode os.FileMode) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell-script stitchers need a POSIX shell")
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), mode))
	return path
}

func newTestExecutor(stitcher string) (*Executor, *bytes.Buffer, *bytes.Buffer) {
	cfg := config.DefaultConfig()
	cfg.Stitcher = stitcher
	var stdout, stderr bytes.Buffer
	e := NewExecutor(&cfg)
	e.Stdout = &stdout
	e.Stderr = &stderr
	return e, &stdout, &stderr
}

func TestExecutor_PassesArgumentsInOrder(t *testing.T) {
	dir := t.TempDir()
	record := filepath.Join(dir, "args.txt")
	script := writeScript(t, dir, "stitch",
		`printf '%s\n' "$1" "$2" "$3" > "`+record+`"
echo stitched
`, 0o755)

	e, stdout, _ := newTestExecutor(script)
	job := Job{InputA: "a.JPG", InputB: "b.JPG", Output: "out/a-b.jpg"}
	res := e.Run(context.Background(), job)

	require.NoError(t, res.Err)
	assert.Equal(t, "stitched\n", stdout.String())
	got, err := os.ReadFile(record)
	require.NoError(t, err)
	assert.Equal(t, "a.JPG\nb.JPG\nout/a-b.jpg\n", string(got))
}

func TestExecutor_NonZeroExit(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "stitch", "echo 'not enough overlap' >&2\nexit 2\n", 0o755)

	e, _, stderr := newTestExecutor(script)
	job := Job{Index: 4, InputA: "a.JPG", InputB: "b.JPG", Output: "out/a-b.jpg"}
	res := e.Run(context.Background(), job)

	var failure *StitchFailure
	require.ErrorAs(t, res.Err, &failure)
	assert.Equal(t, 2, failure.Code)
	assert.Equal(t, job, failure.Job)
	assert.Contains(t, res.Stderr, "not enough overlap")
	assert.Contains(t, stderr.String(), "not enough overlap", "stderr passes through")
}

func TestExecutor_MissingStitcher(t *testing.T) {
	e, _, _ := newTestExecutor(filepath.Join(t.TempDir(), "does-not-exist"))
	res := e.Run(context.Background(), Job{})

	var launchErr *LaunchError
	require.ErrorAs(t, res.Err, &launchErr)
	assert.True(t, errors.Is(res.Err, fs.ErrNotExist))
}

func TestExecutor_NotExecutable(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "stitch", "exit 0\n", 0o644)

	e, _, _ := newTestExecutor(script)
	res := e.Run(context.Background(), Job{})

	var launchErr *LaunchError
	require.ErrorAs(t, res.Err, &launchErr)
	assert.True(t, errors.Is(res.Err, fs.ErrPermission))
}

func TestExecutor_KilledBySignal(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "stitch", "kill -TERM $$\n", 0o755)

	e, _, _ := newTestExecutor(script)
	res := e.Run(context.Background(), Job{})

	var failure *StitchFailure
	require.ErrorAs(t, res.Err, &failure)
	assert.Equal(t, 128+15, failure.Code)
	assert.True(t, strings.HasPrefix(failure.Error(), "stitcher exited with status 143"))
}
