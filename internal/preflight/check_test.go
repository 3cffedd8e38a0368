package preflight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusPass, "PASS"},
		{StatusWarn, "WARN"},
		{StatusFail, "FAIL"},
		{Status(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestReport_Append_CountsByStatus(t *testing.T) {
	report := &Report{}
	report.Append(Result{Status: StatusPass})
	report.Append(Result{Status: StatusPass})
	report.Append(Result{Status: StatusWarn})
	report.Append(Result{Status: StatusFail})

	assert.Equal(t, 2, report.Passed)
	assert.Equal(t, 1, report.Warned)
	assert.Equal(t, 1, report.Failed)
	assert.Len(t, report.Results, 4)
}

func TestReport_Status(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		want     Status
	}{
		{
			name:     "all pass",
			statuses: []Status{StatusPass, StatusPass},
			want:     StatusPass,
		},
		{
			name:     "warn only",
			statuses: []Status{StatusPass, StatusWarn},
			want:     StatusWarn,
		},
		{
			name:     "fail wins over warn",
			statuses: []Status{StatusWarn, StatusFail, StatusPass},
			want:     StatusFail,
		},
		{
			name:     "empty report passes",
			statuses: nil,
			want:     StatusPass,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := &Report{}
			for _, s := range tt.statuses {
				report.Append(Result{Status: s})
			}
			assert.Equal(t, tt.want, report.Status())
		})
	}
}

func TestReport_ExitCode(t *testing.T) {
	// Warnings do not fail the run; only failures map to exit code 1.
	warned := &Report{}
	warned.Append(Result{Status: StatusWarn})
	assert.Equal(t, 0, warned.ExitCode())

	failed := &Report{}
	failed.Append(Result{Status: StatusFail})
	assert.Equal(t, 1, failed.ExitCode())

	clean := &Report{}
	clean.Append(Result{Status: StatusPass})
	assert.Equal(t, 0, clean.ExitCode())
}

func TestReport_Summary(t *testing.T) {
	report := &Report{}
	report.Append(Result{Status: StatusPass})
	report.Append(Result{Status: StatusWarn})
	report.Append(Result{Status: StatusFail})

	assert.Equal(t, "1 passed, 1 warnings, 1 failures", report.Summary())
}
