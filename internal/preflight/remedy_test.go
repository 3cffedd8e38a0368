package preflight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/envcheck/envcheck/internal/platform"
)

func TestRemediation_PassGetsNothing(t *testing.T) {
	for id := range remedies {
		assert.Empty(t, Remediation(id, StatusPass, platform.Linux), "check %s", id)
	}
}

func TestRemediation_NonPassIsNeverEmpty(t *testing.T) {
	ids := []string{
		CheckInterpreter, CheckVersion, CheckPip, CheckVenv, CheckLayout,
		CheckImports, CheckVersionGate, CheckSystemPolicy, CheckScratch,
	}
	families := []platform.Family{platform.Darwin, platform.Linux, platform.Other}

	for _, id := range ids {
		for _, family := range families {
			assert.NotEmpty(t, Remediation(id, StatusFail, family), "check %s on %s", id, family)
			assert.NotEmpty(t, Remediation(id, StatusWarn, family), "check %s on %s", id, family)
		}
	}
}

func TestRemediation_OSSpecificEntries(t *testing.T) {
	darwin := Remediation(CheckInterpreter, StatusFail, platform.Darwin)
	require.NotEmpty(t, darwin)
	assert.Contains(t, darwin[0], "brew")

	linux := Remediation(CheckInterpreter, StatusFail, platform.Linux)
	require.NotEmpty(t, linux)
	assert.Contains(t, linux[0], "apt")
}

func TestRemediation_FallbackToOther(t *testing.T) {
	// The venv table only has an "other" entry; every family resolves to it.
	other := Remediation(CheckVenv, StatusWarn, platform.Other)
	assert.Equal(t, other, Remediation(CheckVenv, StatusWarn, platform.Darwin))
	assert.Equal(t, other, Remediation(CheckVenv, StatusWarn, platform.Linux))
	require.NotEmpty(t, other)
	assert.Contains(t, other[0], "venv")
}

func TestRemediation_VersionGateIsDeterministic(t *testing.T) {
	// One exact command, identical on every OS.
	want := []string{`python3 -m pip install --upgrade "openai>=1.0.0"`}
	for _, family := range []platform.Family{platform.Darwin, platform.Linux, platform.Other} {
		assert.Equal(t, want, Remediation(CheckVersionGate, StatusFail, family))
	}
}

func TestRemediation_SystemPolicyWarnSuggestsPipUpgrade(t *testing.T) {
	got := Remediation(CheckSystemPolicy, StatusWarn, platform.Linux)
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "--upgrade pip")
}

func TestRemediation_UnknownCheckGetsDocPointer(t *testing.T) {
	got := Remediation("nonexistent.check", StatusFail, platform.Linux)
	assert.Equal(t, []string{docFallback}, got)
}
