// Package preflight runs the ordered environment checklist: interpreter,
// package manager, virtual environment, project layout, installed packages,
// and known failure signatures. Results are pass/warn/fail with OS-aware
// remediation; one broken check never aborts the remaining ones.
package preflight

import "fmt"

// Status represents the result of a single check.
type Status int

const (
	// StatusPass indicates the check passed successfully.
	StatusPass Status = iota
	// StatusWarn indicates a non-critical finding; setup can proceed.
	StatusWarn
	// StatusFail indicates the check failed and setup should not proceed.
	StatusFail
)

// String returns the string representation of a Status.
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "PASS"
	case StatusWarn:
		return "WARN"
	case StatusFail:
		return "FAIL"
	default:
		return "UNKNOWN"
	}
}

// Result holds the outcome of one check.
type Result struct {
	// ID is the stable check identifier (e.g., "python.version").
	ID string `json:"id"`
	// Category is the section the check is reported under.
	Category string `json:"category"`
	// Status is the classification outcome.
	Status Status `json:"-"`
	// Message is the human-readable finding.
	Message string `json:"message"`
	// Code classifies a non-pass finding (e.g., "ERR_301_VERSION_INCOMPATIBLE").
	// Empty for passing results and for findings outside the error taxonomy.
	Code string `json:"code,omitempty"`
	// Remediation is the ordered list of suggested commands or doc links.
	// Empty exactly when the check passed.
	Remediation []string `json:"remediation,omitempty"`
	// Skipped marks a result produced because a prerequisite did not pass.
	Skipped bool `json:"skipped,omitempty"`
}

// Report is the ordered outcome of a full run. Insertion order is execution
// order; later checks may assume earlier ones passed.
type Report struct {
	Results []Result

	Passed int
	Warned int
	Failed int
}

// Append records a result and updates the counters.
func (r *Report) Append(res Result) {
	r.Results = append(r.Results, res)
	switch res.Status {
	case StatusPass:
		r.Passed++
	case StatusWarn:
		r.Warned++
	case StatusFail:
		r.Failed++
	}
}

// Status returns the aggregate status: Fail if anything failed, else Warn
// if anything warned, else Pass.
func (r *Report) Status() Status {
	if r.Failed > 0 {
		return StatusFail
	}
	if r.Warned > 0 {
		return StatusWarn
	}
	return StatusPass
}

// ExitCode maps the aggregate status to the process exit code.
// Warnings do not fail the run.
func (r *Report) ExitCode() int {
	if r.Status() == StatusFail {
		return 1
	}
	return 0
}

// HasFailures reports whether any check failed.
func (r *Report) HasFailures() bool {
	return r.Failed > 0
}

// Summary returns the three counts as a single line.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d passed, %d warnings, %d failures", r.Passed, r.Warned, r.Failed)
}
