// Package probe executes single read-only inspections of the local system:
// command lookups, environment queries, filesystem stats, and bounded
// subprocess runs. Unavailability is always a result value, never a panic
// or an error that escapes to the caller.
package probe

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	envErrors "github.com/envcheck/envcheck/internal/errors"
)

// DefaultTimeout bounds each subprocess probe so a wedged interpreter
// cannot hang the run.
const DefaultTimeout = 10 * time.Second

// Execution is the raw observation from a subprocess probe.
type Execution struct {
	// Ran is true when the process started and exited on its own,
	// even with a non-zero status.
	Ran bool
	// ExitCode is the process exit status. Meaningful only when Ran.
	ExitCode int
	// Output is the trimmed combined stdout and stderr.
	Output string
	// Err is set when the process could not start or was killed on timeout.
	Err *envErrors.CheckError
}

// OK reports whether the process ran and exited zero.
func (e Execution) OK() bool {
	return e.Ran && e.ExitCode == 0
}

// Runner performs inspection probes.
type Runner struct {
	timeout time.Duration

	// For testing: override process and system access.
	execCommand func(ctx context.Context, name string, args ...string) *exec.Cmd
	lookPath    func(file string) (string, error)
	getenv      func(key string) string
	stat        func(path string) (os.FileInfo, error)
	tempBase    string
}

// Option configures a Runner.
type Option func(*Runner)

// WithTimeout sets the per-subprocess timeout.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithTempBase sets the base directory for scratch probes.
func WithTempBase(dir string) Option {
	return func(r *Runner) {
		r.tempBase = dir
	}
}

// NewRunner creates a Runner with the given options.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		timeout:     DefaultTimeout,
		execCommand: exec.CommandContext,
		lookPath:    exec.LookPath,
		getenv:      os.Getenv,
		stat:        os.Stat,
		tempBase:    os.TempDir(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// LookPath resolves a command name on PATH.
func (r *Runner) LookPath(name string) (string, bool) {
	path, err := r.lookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}

// Getenv reads an environment variable. The boolean is false when the
// variable is unset or empty.
func (r *Runner) Getenv(key string) (string, bool) {
	v := r.getenv(key)
	return v, v != ""
}

// DirExists reports whether path exists and is a directory.
func (r *Runner) DirExists(path string) bool {
	info, err := r.stat(path)
	return err == nil && info.IsDir()
}

// FileExists reports whether path exists and is a regular file.
func (r *Runner) FileExists(path string) bool {
	info, err := r.stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Run executes a subprocess probe with the configured timeout and returns
// its combined output. Failures are encoded in the Execution, never raised.
func (r *Runner) Run(ctx context.Context, name string, args ...string) Execution {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := r.execCommand(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	res := Execution{Output: strings.TrimSpace(string(out))}
	slog.Debug("probe subprocess", "cmd", name, "args", args, "err", err)

	if err == nil {
		res.Ran = true
		return res
	}

	if ctx.Err() == context.DeadlineExceeded {
		res.Err = envErrors.Timeout(name+" did not respond in time", err)
		return res
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.Ran = true
		res.ExitCode = exitErr.ExitCode()
		return res
	}

	res.Err = envErrors.ResourceMissing(name+" could not be started", err)
	return res
}

// ScratchWritable creates a disposable directory under the temp base, writes
// a file into it, and removes it unconditionally. A nil return means the
// location is writable.
func (r *Runner) ScratchWritable() error {
	dir, err := os.MkdirTemp(r.tempBase, "envcheck-*")
	if err != nil {
		return envErrors.PermissionDenied("cannot create scratch directory", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "probe")
	if err := os.WriteFile(path, []byte("ok"), 0o644); err != nil {
		return envErrors.PermissionDenied("cannot write to scratch directory", err)
	}
	return nil
}
