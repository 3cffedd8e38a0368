package preflight

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	envErrors "github.com/envcheck/envcheck/internal/errors"
	"github.com/envcheck/envcheck/internal/probe"
)

// versionScript prints the running interpreter version as "major.minor.patch".
const versionScript = `import sys; print(".".join(map(str, sys.version_info[:3])))`

// checkInterpreter resolves the Python interpreter from the configured
// command candidates. The resolved path is reused by every later probe.
func (c *Checker) checkInterpreter(_ context.Context) []Result {
	for _, name := range c.cfg.Interpreter.Candidates {
		if path, ok := c.probe.LookPath(name); ok {
			c.python = path
			return []Result{{
				Status:  StatusPass,
				Message: fmt.Sprintf("Python found at %s", path),
			}}
		}
	}
	return []Result{{
		Status: StatusFail,
		Code:   envErrors.ErrCodeResourceMissing,
		Message: fmt.Sprintf("no Python interpreter found (tried: %s)",
			strings.Join(c.cfg.Interpreter.Candidates, ", ")),
	}}
}

// checkInterpreterVersion asks the resolved interpreter for its version and
// compares it against the configured minimum.
func (c *Checker) checkInterpreterVersion(ctx context.Context) []Result {
	minMajor, minMinor, err := c.cfg.MinVersionParts()
	if err != nil {
		return []Result{{
			Status:  StatusFail,
			Message: fmt.Sprintf("invalid minimum version configured: %v", err),
		}}
	}

	res := c.probe.Run(ctx, c.python, "-c", versionScript)
	if !res.OK() {
		return []Result{{
			Status:  StatusFail,
			Code:    probeCode(res),
			Message: fmt.Sprintf("could not query interpreter version: %s", probeFailure(res)),
		}}
	}

	major, minor, ok := parseVersion(res.Output)
	if !ok {
		return []Result{{
			Status:  StatusFail,
			Code:    envErrors.ErrCodeVersionUnparsable,
			Message: fmt.Sprintf("unparsable interpreter version %q (need %s+)", res.Output, c.cfg.Interpreter.MinVersion),
		}}
	}

	if major < minMajor || (major == minMajor && minor < minMinor) {
		return []Result{{
			Status: StatusFail,
			Code:   envErrors.ErrCodeVersionIncompatible,
			Message: fmt.Sprintf("Python %s is too old (need %s+)",
				res.Output, c.cfg.Interpreter.MinVersion),
		}}
	}

	return []Result{{
		Status:  StatusPass,
		Message: fmt.Sprintf("Python %s (need %s+)", res.Output, c.cfg.Interpreter.MinVersion),
	}}
}

// parseVersion extracts major and minor from a "major.minor[.patch]" string.
func parseVersion(s string) (major, minor int, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(s), ".", 3)
	if len(parts) < 2 {
		return 0, 0, false
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minor, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return major, minor, true
}

// probeCode classifies a failed probe. A probe the runner could not start
// or had to kill carries its own code; a probe that ran and died is a crash.
func probeCode(res probe.Execution) string {
	if res.Err != nil {
		return envErrors.GetCode(res.Err)
	}
	return envErrors.ErrCodeSubprocessCrash
}

// probeFailure renders a subprocess probe failure for a check message.
func probeFailure(res probe.Execution) string {
	if res.Err != nil {
		return res.Err.Message
	}
	if res.Output != "" {
		return fmt.Sprintf("exit status %d: %s", res.ExitCode, firstLine(res.Output))
	}
	return fmt.Sprintf("exit status %d", res.ExitCode)
}

// firstLine truncates multi-line probe output to its first line.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
