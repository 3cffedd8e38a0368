package preflight

import (
	"context"
	"fmt"
	"path/filepath"

	envErrors "github.com/envcheck/envcheck/internal/errors"
)

// VenvMarker is the environment variable an activated virtual environment sets.
const VenvMarker = "VIRTUAL_ENV"

// checkVenv warns when no virtual environment is active. Not fatal: the
// setup script can create one, and some users install into user site-packages.
func (c *Checker) checkVenv(_ context.Context) []Result {
	if path, ok := c.probe.Getenv(VenvMarker); ok {
		return []Result{{
			Status:  StatusPass,
			Message: fmt.Sprintf("virtual environment active (%s)", path),
		}}
	}
	return []Result{{
		Status:  StatusWarn,
		Message: "no virtual environment active",
	}}
}

// checkLayout verifies the expected project layout relative to the root.
// Each required directory and manifest yields its own result; the optional
// directories warn only.
func (c *Checker) checkLayout(_ context.Context) []Result {
	var results []Result

	for _, dir := range c.cfg.Layout.RequiredDirs {
		if c.probe.DirExists(filepath.Join(c.root, dir)) {
			results = append(results, Result{
				Status:  StatusPass,
				Message: fmt.Sprintf("directory %s/ present", dir),
			})
			continue
		}
		results = append(results, Result{
			Status:  StatusFail,
			Message: fmt.Sprintf("required directory %s/ is missing", dir),
		})
	}

	for _, name := range c.cfg.Layout.Manifests {
		if c.probe.FileExists(filepath.Join(c.root, name)) {
			results = append(results, Result{
				Status:  StatusPass,
				Message: fmt.Sprintf("manifest %s present", name),
			})
			continue
		}
		results = append(results, Result{
			Status:  StatusFail,
			Message: fmt.Sprintf("required manifest %s is missing", name),
		})
	}

	for _, dir := range c.cfg.Layout.OptionalDirs {
		if c.probe.DirExists(filepath.Join(c.root, dir)) {
			results = append(results, Result{
				Status:  StatusPass,
				Message: fmt.Sprintf("directory %s/ present", dir),
			})
			continue
		}
		results = append(results, Result{
			Status:  StatusWarn,
			Message: fmt.Sprintf("optional directory %s/ is missing", dir),
		})
	}

	return results
}

// checkScratch verifies a disposable temp directory can be created and
// written. The probe removes the directory on every path.
func (c *Checker) checkScratch(_ context.Context) []Result {
	if err := c.probe.ScratchWritable(); err != nil {
		return []Result{{
			Status:  StatusFail,
			Code:    envErrors.GetCode(err),
			Message: fmt.Sprintf("scratch directory is not writable: %v", err),
		}}
	}
	return []Result{{
		Status:  StatusPass,
		Message: "scratch directory is writable",
	}}
}
