package preflight

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	envErrors "github.com/envcheck/envcheck/internal/errors"
)

// externallyManagedSignature is the marker PEP 668 interpreters print when
// refusing a direct install outside an isolated environment.
const externallyManagedSignature = "externally-managed-environment"

// dryRunUnsupported matches pip versions (< 22.2) that do not know the
// --dry-run flag.
var dryRunUnsupported = []string{
	"no such option: --dry-run",
	"unrecognized arguments: --dry-run",
}

// checkPip verifies the pip module responds through the resolved interpreter.
func (c *Checker) checkPip(ctx context.Context) []Result {
	res := c.probe.Run(ctx, c.python, "-m", "pip", "--version")
	if !res.OK() {
		return []Result{{
			Status:  StatusFail,
			Code:    probeCode(res),
			Message: fmt.Sprintf("pip is not available: %s", probeFailure(res)),
		}}
	}
	return []Result{{
		Status:  StatusPass,
		Message: firstLine(res.Output),
	}}
}

// checkImports probes each optional package with a child-process import.
// Failures warn only; the setup script installs missing packages.
func (c *Checker) checkImports(ctx context.Context) []Result {
	results := make([]Result, 0, len(c.cfg.Packages.Optional))
	for _, module := range c.cfg.Packages.Optional {
		res := c.probe.Run(ctx, c.python, "-c", "import "+module)
		if res.OK() {
			results = append(results, Result{
				Status:  StatusPass,
				Message: fmt.Sprintf("package %q is importable", module),
			})
			continue
		}
		results = append(results, Result{
			Status:  StatusWarn,
			Code:    envErrors.ErrCodeResourceMissing,
			Message: fmt.Sprintf("package %q is not installed (setup installs it)", module),
		})
	}
	return results
}

// checkVersionGate verifies the gated dependency is at or above its minimum
// major version. Not installed is a warning; a pre-1.0 install of a package
// with an incompatible 1.0 API is a failure.
func (c *Checker) checkVersionGate(ctx context.Context) []Result {
	gated := c.cfg.Packages.Gated
	if gated.Module == "" {
		return []Result{{
			Status:  StatusPass,
			Message: "no version-gated dependency configured",
		}}
	}

	script := fmt.Sprintf("import %s; print(%s.__version__)", gated.Module, gated.Module)
	res := c.probe.Run(ctx, c.python, "-c", script)
	if !res.OK() {
		return []Result{{
			Status:  StatusWarn,
			Code:    envErrors.ErrCodeResourceMissing,
			Message: fmt.Sprintf("package %q is not installed (setup installs %d.0.0+)", gated.Module, gated.MinMajor),
		}}
	}

	version := firstLine(res.Output)
	major, ok := majorVersion(version)
	if !ok {
		return []Result{{
			Status:  StatusWarn,
			Code:    envErrors.ErrCodeVersionUnparsable,
			Message: fmt.Sprintf("cannot parse %s version %q", gated.Module, version),
		}}
	}

	if major < gated.MinMajor {
		return []Result{{
			Status: StatusFail,
			Code:   envErrors.ErrCodeVersionIncompatible,
			Message: fmt.Sprintf("%s %s is below the required major version %d",
				gated.Module, version, gated.MinMajor),
		}}
	}

	return []Result{{
		Status:  StatusPass,
		Message: fmt.Sprintf("%s %s (need %d.0.0+)", gated.Module, version, gated.MinMajor),
	}}
}

// checkSystemPolicy performs a disposable dry-run install probe to detect
// interpreters that refuse direct installs (PEP 668). The probe never
// mutates the environment.
func (c *Checker) checkSystemPolicy(ctx context.Context) []Result {
	res := c.probe.Run(ctx, c.python,
		"-m", "pip", "install", "--dry-run", "--no-input", "--disable-pip-version-check", "pip")

	if res.Err != nil {
		return []Result{{
			Status:  StatusFail,
			Code:    probeCode(res),
			Message: fmt.Sprintf("dry-run install probe failed: %s", probeFailure(res)),
		}}
	}

	lower := strings.ToLower(res.Output)
	if strings.Contains(lower, externallyManagedSignature) {
		return []Result{{
			Status:  StatusFail,
			Message: "this Python installation is externally managed and refuses direct installs",
		}}
	}

	for _, sig := range dryRunUnsupported {
		if strings.Contains(lower, sig) {
			return []Result{{
				Status:  StatusWarn,
				Code:    envErrors.ErrCodeProbeUnsupported,
				Message: "installed pip does not support dry-run probing (setup performs its own detection)",
			}}
		}
	}

	return []Result{{
		Status:  StatusPass,
		Message: "package installs are permitted",
	}}
}

// majorVersion extracts the leading major component of a version string.
func majorVersion(version string) (int, bool) {
	head := version
	if i := strings.IndexByte(head, '.'); i >= 0 {
		head = head[:i]
	}
	major, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0, false
	}
	return major, true
}
